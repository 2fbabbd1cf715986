package httperr

import (
	"log/slog"
	"net/http"

	"store-offers-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Internal server error"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func newResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// Internal is the body of every 500; causes stay in the logs.
func Internal() Response {
	return newResponse(http.StatusInternalServerError, internalMessage, nil)
}

// AbortWithError records err on the context for the logging middleware and
// writes the error envelope.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := newResponse(status, msg, detail)
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError maps an error category to its HTTP status. Client
// errors carry the error message; anything uncategorised is logged with its
// stack and answered with a bare 500.
func AbortWithDomainError(c *gin.Context, err error, op string) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		slog.Error(op+" failed", "error", err, "stack", errs.ExtractStackLines(err, 8))
		AbortWithError(c, status, err, internalMessage, nil)
		return
	}
	AbortWithError(c, status, err, err.Error(), nil)
}

func StatusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrPermissionDenied):
		return http.StatusForbidden
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errs.Is(err, errs.ErrIdempotencyConflict):
		return http.StatusConflict
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
