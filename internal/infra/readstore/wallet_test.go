//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"store-offers-api/internal/infra"
	"store-offers-api/internal/infra/readstore"
	sqlc "store-offers-api/internal/infra/sqlc/generated"
	readstoremock "store-offers-api/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWalletReadStore(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	updated := pgtype.Timestamptz{Time: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), Valid: true}

	t.Run("FindBalances maps every row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockWalletReadQueries(ctrl)
		store := readstore.NewWalletReadStore(mockQueries, nil)

		mockQueries.EXPECT().GetWalletBalances(ctx, gomock.Any(), userID).Return([]sqlc.WalletBalance{
			{UserID: userID, Currency: "gems", Amount: 3, UpdatedAt: updated},
			{UserID: userID, Currency: "gold", Amount: 40, UpdatedAt: updated},
		}, nil)

		views, err := store.FindBalances(ctx, userID)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "gems", views[0].Currency)
		assert.Equal(t, int64(40), views[1].Amount)
		assert.True(t, views[1].UpdatedAt.Equal(updated.Time))
	})

	t.Run("FindBalances with no rows is empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockWalletReadQueries(ctrl)
		store := readstore.NewWalletReadStore(mockQueries, nil)

		mockQueries.EXPECT().GetWalletBalances(ctx, gomock.Any(), userID).Return(nil, nil)

		views, err := store.FindBalances(ctx, userID)
		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("FindBalance for a currency the user never held is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockWalletReadQueries(ctrl)
		store := readstore.NewWalletReadStore(mockQueries, nil)

		mockQueries.EXPECT().GetWalletBalance(ctx, gomock.Any(), sqlc.GetWalletBalanceParams{UserID: userID, Currency: "rubies"}).
			Return(sqlc.WalletBalance{}, pgx.ErrNoRows)

		_, err := store.FindBalance(ctx, userID, "rubies")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("FindBalance wraps database errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockWalletReadQueries(ctrl)
		store := readstore.NewWalletReadStore(mockQueries, nil)

		mockQueries.EXPECT().GetWalletBalance(ctx, gomock.Any(), gomock.Any()).Return(sqlc.WalletBalance{}, errDBConnectionLost)

		_, err := store.FindBalance(ctx, userID, "gold")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
