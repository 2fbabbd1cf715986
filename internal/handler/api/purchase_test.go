//go:build unit

package api_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"store-offers-api/internal/domain/access"
	"store-offers-api/internal/domain/offer"
	"store-offers-api/internal/domain/purchase"
	"store-offers-api/internal/domain/wallet"
	"store-offers-api/internal/handler/api"
	resdto "store-offers-api/internal/handler/dto/response"
	"store-offers-api/internal/usecase/commands"
	"store-offers-api/tests/common/httptest"
	commandsmock "store-offers-api/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PurchaseHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPurchaseCommands
	handler      *api.PurchaseHandler
	buyer        access.Actor
}

func (s *PurchaseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPurchaseCommands(s.mockCtrl)
	s.handler = api.NewPurchaseHandler(s.mockCommands)
	s.buyer = access.NewActor(uuid.New(), access.RoleUser)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.buyer.UserID())
		c.Set("user_role", s.buyer.Role())
		c.Next()
	}

	s.router.POST("/api/store/purchases/items", authMiddleware, s.handler.BuyVirtualItems)
	s.router.POST("/api/store/purchases/offers/:id", authMiddleware, s.handler.BuyStoreOffer)
}

func (s *PurchaseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPurchaseHandlerSuite(t *testing.T) {
	suite.Run(t, new(PurchaseHandlerTestSuite))
}

func (s *PurchaseHandlerTestSuite) settled(offerID string, itemIDs ...string) *commands.PurchaseResult {
	return &commands.PurchaseResult{
		PurchaseID: uuid.New(),
		OfferID:    offerID,
		ItemIDs:    itemIDs,
		Charges:    []wallet.Charge{{Currency: "gold", Amount: 15}},
	}
}

// ================================================================================
// TestBuyVirtualItems
// ================================================================================

func (s *PurchaseHandlerTestSuite) TestBuyVirtualItems() {
	url := "/api/store/purchases/items"

	s.Run("success: returns 201 Created with charges", func() {
		result := s.settled("", "sword", "shield")
		s.mockCommands.EXPECT().
			BuyVirtualItems(gomock.Any(), s.buyer, commands.BuyItemsRequest{
				ItemIDs:    []string{"sword", "shield"},
				Currencies: []string{"gold"},
			}).
			Return(result, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"itemIds": []string{"sword", "shield"}, "currencies": []string{"gold"}}, "bearer-token")

		var body resdto.PurchaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Require().NotNil(body.PurchaseID)
		s.Equal(result.PurchaseID, *body.PurchaseID)
		s.Equal([]string{"sword", "shield"}, body.ItemIDs)
		s.Equal([]resdto.ChargeResponse{{Currency: "gold", Amount: 15}}, body.Charges)
		s.Empty(rec.Header().Get("Idempotent-Replayed"))
	})

	s.Run("success: omitted currencies reach the use case as nil", func() {
		s.mockCommands.EXPECT().
			BuyVirtualItems(gomock.Any(), s.buyer, commands.BuyItemsRequest{ItemIDs: []string{"sword"}}).
			Return(s.settled("", "sword"), nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"itemIds": []string{"sword"}}, "bearer-token")
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("success: soft rejection returns 200 with no items", func() {
		s.mockCommands.EXPECT().BuyVirtualItems(gomock.Any(), s.buyer, gomock.Any()).
			Return(&commands.PurchaseResult{}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"itemIds": []string{"sword"}, "currencies": []string{}}, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"itemIds":[],"charges":[]}`, rec.Body.String())
	})

	s.Run("success: replay returns 200 and marks the response", func() {
		result := s.settled("", "sword")
		result.Replayed = true
		s.mockCommands.EXPECT().
			BuyVirtualItems(gomock.Any(), s.buyer, commands.BuyItemsRequest{ItemIDs: []string{"sword"}, IdempotencyKey: "key-1"}).
			Return(result, nil).Times(1)

		body := strings.NewReader(`{"itemIds":["sword"]}`)
		rec := performWithHeaders(s.router, http.MethodPost, url, body, map[string]string{
			"Authorization":   "Bearer bearer-token",
			"Idempotency-Key": "key-1",
		})
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: 400 Bad Request on oversized idempotency key", func() {
		body := strings.NewReader(`{"itemIds":["sword"]}`)
		rec := performWithHeaders(s.router, http.MethodPost, url, body, map[string]string{
			"Authorization":   "Bearer bearer-token",
			"Idempotency-Key": strings.Repeat("k", 256),
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key")
	})

	s.Run("error: 400 Bad Request without items", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"itemIds": []string{}}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"itemIds": []string{"sword"}}, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 402 Payment Required on insufficient funds", func() {
		s.mockCommands.EXPECT().BuyVirtualItems(gomock.Any(), s.buyer, gomock.Any()).
			Return(nil, wallet.ErrInsufficientFunds).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"itemIds": []string{"sword"}}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusPaymentRequired, "balance too low")
	})

	s.Run("error: 404 Not Found for unknown item", func() {
		s.mockCommands.EXPECT().BuyVirtualItems(gomock.Any(), s.buyer, gomock.Any()).
			Return(nil, purchase.ErrItemNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"itemIds": []string{"nope"}}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "virtual item not found")
	})

	s.Run("error: 409 Conflict on reused idempotency key", func() {
		s.mockCommands.EXPECT().BuyVirtualItems(gomock.Any(), s.buyer, gomock.Any()).
			Return(nil, purchase.ErrKeyReused).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"itemIds": []string{"shield"}}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "idempotency key")
	})
}

// ================================================================================
// TestBuyStoreOffer
// ================================================================================

func (s *PurchaseHandlerTestSuite) TestBuyStoreOffer() {
	s.Run("success: body is optional", func() {
		result := s.settled("offer-1", "item1", "item2")
		s.mockCommands.EXPECT().
			BuyStoreOffer(gomock.Any(), s.buyer, commands.BuyOfferRequest{OfferID: "offer-1"}).
			Return(result, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/store/purchases/offers/offer-1", nil, "bearer-token")

		var body resdto.PurchaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("offer-1", body.OfferID)
		s.Equal([]string{"item1", "item2"}, body.ItemIDs)
	})

	s.Run("success: forwards the currency filter", func() {
		s.mockCommands.EXPECT().
			BuyStoreOffer(gomock.Any(), s.buyer, commands.BuyOfferRequest{OfferID: "offer-1", Currencies: []string{"gems"}}).
			Return(s.settled("offer-1", "item1"), nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/store/purchases/offers/offer-1",
			map[string]any{"currencies": []string{"gems"}}, "bearer-token")
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("error: 404 Not Found for unknown offer", func() {
		s.mockCommands.EXPECT().BuyStoreOffer(gomock.Any(), s.buyer, gomock.Any()).
			Return(nil, offer.ErrOfferNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/store/purchases/offers/missing", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "store offer not found")
	})

	s.Run("error: 400 Bad Request outside the availability window", func() {
		s.mockCommands.EXPECT().BuyStoreOffer(gomock.Any(), s.buyer, gomock.Any()).
			Return(nil, offer.ErrOfferUnavailable).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/store/purchases/offers/offer-1", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "not available")
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		rec := performWithHeaders(s.router, http.MethodPost, "/api/store/purchases/offers/offer-1",
			strings.NewReader(`{"currencies":`), map[string]string{"Authorization": "Bearer bearer-token"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("success: empty body of unknown length", func() {
		s.mockCommands.EXPECT().
			BuyStoreOffer(gomock.Any(), s.buyer, commands.BuyOfferRequest{OfferID: "offer-1"}).
			Return(s.settled("offer-1", "item1"), nil).Times(1)
		// a reader that is not a bytes or strings reader leaves ContentLength at -1, as with chunked uploads
		rec := performWithHeaders(s.router, http.MethodPost, "/api/store/purchases/offers/offer-1",
			io.MultiReader(), map[string]string{"Authorization": "Bearer bearer-token"})
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("success: body of unknown length is decoded", func() {
		s.mockCommands.EXPECT().
			BuyStoreOffer(gomock.Any(), s.buyer, commands.BuyOfferRequest{OfferID: "offer-1", Currencies: []string{"gems"}}).
			Return(s.settled("offer-1", "item1"), nil).Times(1)
		rec := performWithHeaders(s.router, http.MethodPost, "/api/store/purchases/offers/offer-1",
			io.MultiReader(strings.NewReader(`{"currencies":["gems"]}`)), map[string]string{"Authorization": "Bearer bearer-token"})
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})
}
