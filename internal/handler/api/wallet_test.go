//go:build unit

package api_test

import (
	"errors"
	"io"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"store-offers-api/internal/domain/access"
	"store-offers-api/internal/handler/api"
	resdto "store-offers-api/internal/handler/dto/response"
	"store-offers-api/internal/usecase/queries"
	"store-offers-api/tests/common/httptest"
	queriesmock "store-offers-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WalletHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockWalletQueries
	handler     *api.WalletHandler
	userID      uuid.UUID
}

func (s *WalletHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockWalletQueries(s.mockCtrl)
	s.handler = api.NewWalletHandler(s.mockQueries)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
			c.Set("user_role", access.RoleUser)
		}
		c.Next()
	}

	s.router.GET("/api/wallet/balances", authMiddleware, s.handler.ListBalances)
	s.router.GET("/api/wallet/balances/:currency", authMiddleware, s.handler.GetBalance)
}

func (s *WalletHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWalletHandlerSuite(t *testing.T) {
	suite.Run(t, new(WalletHandlerTestSuite))
}

func (s *WalletHandlerTestSuite) TestListBalances() {
	updated := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	s.Run("success: lists the caller's balances", func() {
		s.mockQueries.EXPECT().ListBalances(gomock.Any(), s.userID).Return([]*queries.BalanceView{
			{UserID: s.userID, Currency: "gems", Amount: 5, UpdatedAt: updated},
			{UserID: s.userID, Currency: "gold", Amount: 20, UpdatedAt: updated},
		}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/wallet/balances", nil, "bearer-token")

		var body []resdto.BalanceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("gems", body[0].Currency)
		s.Equal(int64(20), body[1].Amount)
	})

	s.Run("success: no balances is an empty array", func() {
		s.mockQueries.EXPECT().ListBalances(gomock.Any(), s.userID).Return(nil, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/wallet/balances", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 403 Forbidden for anonymous caller", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/wallet/balances", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "authenticated caller required")
	})

	s.Run("error: 500 on storage failure", func() {
		s.mockQueries.EXPECT().ListBalances(gomock.Any(), s.userID).Return(nil, errors.New("pool closed")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/wallet/balances", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *WalletHandlerTestSuite) TestGetBalance() {
	s.Run("success: returns one balance", func() {
		s.mockQueries.EXPECT().GetBalance(gomock.Any(), s.userID, "gold").
			Return(&queries.BalanceView{UserID: s.userID, Currency: "gold", Amount: 20}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/wallet/balances/gold", nil, "bearer-token")

		var body resdto.BalanceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("gold", body.Currency)
		s.Equal(int64(20), body.Amount)
	})

	s.Run("error: 400 Bad Request on blank currency", func() {
		s.mockQueries.EXPECT().GetBalance(gomock.Any(), s.userID, " ").
			Return(nil, queries.ErrBlankCurrency).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/wallet/balances/%20", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "currency is required")
	})
}

func performWithHeaders(router *gin.Engine, method, path string, body io.Reader, headers map[string]string) *nethttptest.ResponseRecorder {
	req := nethttptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := nethttptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
