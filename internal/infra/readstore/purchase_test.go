//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"store-offers-api/internal/infra"
	"store-offers-api/internal/infra/readstore"
	sqlc "store-offers-api/internal/infra/sqlc/generated"
	"store-offers-api/internal/usecase/queries"
	readstoremock "store-offers-api/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPurchaseReadStore_FindByIdempotencyKey(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	purchaseID := uuid.New()
	createdAt := time.Date(2026, 3, 3, 3, 3, 3, 0, time.UTC)

	t.Run("success: offer purchase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockPurchaseReadQueries(ctrl)
		store := readstore.NewPurchaseReadStore(mockQueries, nil)

		mockQueries.EXPECT().GetPurchaseByIdempotencyKey(ctx, gomock.Any(), sqlc.GetPurchaseByIdempotencyKeyParams{
			UserID:         userID,
			IdempotencyKey: pgtype.Text{String: "key-1", Valid: true},
		}).Return(sqlc.Purchase{
			ID:             purchaseID,
			UserID:         userID,
			OfferID:        pgtype.Text{String: "offer-1", Valid: true},
			ItemIds:        []string{"item1", "item2"},
			Charges:        []byte(`[{"currency":"gold","amount":15}]`),
			IdempotencyKey: pgtype.Text{String: "key-1", Valid: true},
			CreatedAt:      pgtype.Timestamptz{Time: createdAt, Valid: true},
		}, nil)

		view, err := store.FindByIdempotencyKey(ctx, userID, "key-1")
		require.NoError(t, err)

		want := &queries.PurchaseView{
			ID:             purchaseID,
			UserID:         userID,
			OfferID:        "offer-1",
			ItemIDs:        []string{"item1", "item2"},
			Charges:        []queries.ChargeView{{Currency: "gold", Amount: 15}},
			IdempotencyKey: "key-1",
			CreatedAt:      createdAt,
		}
		if diff := cmp.Diff(want, view); diff != "" {
			t.Errorf("view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("success: catalog purchase has no offer id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockPurchaseReadQueries(ctrl)
		store := readstore.NewPurchaseReadStore(mockQueries, nil)

		mockQueries.EXPECT().GetPurchaseByIdempotencyKey(ctx, gomock.Any(), gomock.Any()).Return(sqlc.Purchase{
			ID:             purchaseID,
			UserID:         userID,
			ItemIds:        []string{"item1"},
			IdempotencyKey: pgtype.Text{String: "key-2", Valid: true},
		}, nil)

		view, err := store.FindByIdempotencyKey(ctx, userID, "key-2")
		require.NoError(t, err)
		assert.Empty(t, view.OfferID)
		assert.Equal(t, []queries.ChargeView{}, view.Charges)
	})

	t.Run("error: unknown key is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockPurchaseReadQueries(ctrl)
		store := readstore.NewPurchaseReadStore(mockQueries, nil)

		mockQueries.EXPECT().GetPurchaseByIdempotencyKey(ctx, gomock.Any(), gomock.Any()).Return(sqlc.Purchase{}, pgx.ErrNoRows)

		_, err := store.FindByIdempotencyKey(ctx, userID, "nope")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: corrupt charges", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockPurchaseReadQueries(ctrl)
		store := readstore.NewPurchaseReadStore(mockQueries, nil)

		mockQueries.EXPECT().GetPurchaseByIdempotencyKey(ctx, gomock.Any(), gomock.Any()).
			Return(sqlc.Purchase{Charges: []byte(`{`)}, nil)

		_, err := store.FindByIdempotencyKey(ctx, userID, "key-3")
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCatalogReadStore_FindByIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown ids are simply absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCatalogReadQueries(ctrl)
		store := readstore.NewCatalogReadStore(mockQueries, nil)

		mockQueries.EXPECT().GetVirtualItemsByIDs(ctx, gomock.Any(), []string{"item1", "ghost"}).Return([]sqlc.VirtualItem{
			{ID: "item1", Name: "Sword", Prices: []byte(`[{"itemId":"item1","currency":"gold","amount":10}]`)},
		}, nil)

		views, err := store.FindByIDs(ctx, []string{"item1", "ghost"})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "Sword", views[0].Name)
		assert.Equal(t, []queries.PriceView{{ItemID: "item1", Currency: "gold", Amount: 10}}, views[0].Prices)
	})

	t.Run("unpriced item decodes to an empty price list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCatalogReadQueries(ctrl)
		store := readstore.NewCatalogReadStore(mockQueries, nil)

		mockQueries.EXPECT().GetVirtualItemsByIDs(ctx, gomock.Any(), gomock.Any()).Return([]sqlc.VirtualItem{{ID: "free"}}, nil)

		views, err := store.FindByIDs(ctx, []string{"free"})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, []queries.PriceView{}, views[0].Prices)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCatalogReadQueries(ctrl)
		store := readstore.NewCatalogReadStore(mockQueries, nil)

		mockQueries.EXPECT().GetVirtualItemsByIDs(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.FindByIDs(ctx, []string{"item1"})
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
