package api

import (
	"net/http"

	resdto "store-offers-api/internal/handler/dto/response"
	"store-offers-api/internal/handler/httperr"
	"store-offers-api/internal/handler/middleware"
	"store-offers-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	q queries.WalletQueries
}

func NewWalletHandler(q queries.WalletQueries) *WalletHandler {
	return &WalletHandler{q: q}
}

// @Summary List own balances
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BalanceResponse
// @Failure 401 {object} httperr.Response
// @Router /api/wallet/balances [get]
func (h *WalletHandler) ListBalances(c *gin.Context) {
	actor := middleware.GetActor(c)
	if err := actor.RequireAuthenticated(); err != nil {
		httperr.AbortWithDomainError(c, err, "list balances")
		return
	}
	views, err := h.q.ListBalances(c.Request.Context(), actor.UserID())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "list balances")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBalanceViews(views))
}

// @Summary Get own balance
// @Description A currency the caller has never held reads as zero
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Param currency path string true "Currency code"
// @Success 200 {object} resdto.BalanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/wallet/balances/{currency} [get]
func (h *WalletHandler) GetBalance(c *gin.Context) {
	actor := middleware.GetActor(c)
	if err := actor.RequireAuthenticated(); err != nil {
		httperr.AbortWithDomainError(c, err, "get balance")
		return
	}
	view, err := h.q.GetBalance(c.Request.Context(), actor.UserID(), c.Param("currency"))
	if err != nil {
		httperr.AbortWithDomainError(c, err, "get balance")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBalanceView(view))
}
