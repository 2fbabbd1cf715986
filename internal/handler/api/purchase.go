package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "store-offers-api/internal/handler/dto/request"
	resdto "store-offers-api/internal/handler/dto/response"
	"store-offers-api/internal/handler/httperr"
	"store-offers-api/internal/handler/middleware"
	"store-offers-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	idempotencyKeyHeader  = "Idempotency-Key"
	replayedHeader        = "Idempotent-Replayed"
	maxIdempotencyKeySize = 255
)

var errIdempotencyKeyTooLong = errors.New("idempotency key too long")

type PurchaseHandler struct {
	cmds commands.PurchaseCommands
}

func NewPurchaseHandler(cmds commands.PurchaseCommands) *PurchaseHandler {
	return &PurchaseHandler{cmds: cmds}
}

// @Summary Buy virtual items
// @Description Debit the buyer's currencies and grant the items in one transaction.
// @Description With offerId the items must belong to that offer and use its prices.
// @Description An empty itemIds in the response means no allowed currency could pay.
// @Tags purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Replays the first result for a repeated key"
// @Param request body reqdto.BuyItemsRequest true "Items to buy"
// @Success 201 {object} resdto.PurchaseResponse
// @Success 200 {object} resdto.PurchaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/store/purchases/items [post]
func (h *PurchaseHandler) BuyVirtualItems(c *gin.Context) {
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}
	var req reqdto.BuyItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.BuyVirtualItems(c.Request.Context(), middleware.GetActor(c), req.ToCommand(key))
	if err != nil {
		httperr.AbortWithDomainError(c, err, "buy virtual items")
		return
	}
	writePurchaseResult(c, result)
}

// @Summary Buy store offer
// @Description Buy every item of an offer at the offer's prices. The body is optional.
// @Tags purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param Idempotency-Key header string false "Replays the first result for a repeated key"
// @Param request body reqdto.BuyOfferRequest false "Allowed currencies"
// @Success 201 {object} resdto.PurchaseResponse
// @Success 200 {object} resdto.PurchaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/store/purchases/offers/{id} [post]
func (h *PurchaseHandler) BuyStoreOffer(c *gin.Context) {
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}
	// the body is optional; an empty one of any length encoding binds to the zero request
	var req reqdto.BuyOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.BuyStoreOffer(c.Request.Context(), middleware.GetActor(c), req.ToCommand(c.Param("id"), key))
	if err != nil {
		httperr.AbortWithDomainError(c, err, "buy store offer")
		return
	}
	writePurchaseResult(c, result)
}

func idempotencyKey(c *gin.Context) (string, bool) {
	key := c.GetHeader(idempotencyKeyHeader)
	if len(key) > maxIdempotencyKeySize {
		httperr.AbortWithError(c, http.StatusBadRequest, errIdempotencyKeyTooLong, "Invalid Idempotency-Key header", nil)
		return "", false
	}
	return key, true
}

func writePurchaseResult(c *gin.Context, result *commands.PurchaseResult) {
	status := http.StatusCreated
	switch {
	case result.Replayed:
		c.Header(replayedHeader, "true")
		status = http.StatusOK
	case result.Rejected():
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromPurchaseResult(result))
}
