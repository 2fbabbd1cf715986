//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"store-offers-api/internal/domain/purchase"
	"store-offers-api/internal/domain/wallet"
	"store-offers-api/internal/infra"
	"store-offers-api/internal/infra/repository"
	sqlc "store-offers-api/internal/infra/sqlc/generated"
	"store-offers-api/internal/pkg/clock"
	repositorymock "store-offers-api/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPurchase(offerID, key string) *purchase.Purchase {
	clk := clock.NewMockClock(time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC))
	plan := &purchase.Plan{Charges: []wallet.Charge{{Currency: "gold", Amount: 15}}, Total: 15}
	return purchase.NewPurchase(clk, uuid.New(), offerID, []string{"item1", "item2"}, plan, key)
}

func TestPurchaseRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		offerID    string
		key        string
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: offer purchase with key", offerID: "offer-1", key: "key-1"},
		{name: "success: catalog purchase stores null offer and key"},
		{
			name:       "error: idempotency key already used",
			key:        "key-1",
			returnErr:  &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "error: database error occurs",
			returnErr:  errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockPurchaseWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPurchaseRepository(mockQueries, mockDB)
			p := newTestPurchase(tc.offerID, tc.key)

			mockQueries.EXPECT().CreatePurchase(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreatePurchaseParams) (sqlc.Purchase, error) {
					assert.Equal(t, p.ID(), arg.ID)
					assert.Equal(t, tc.offerID != "", arg.OfferID.Valid)
					assert.Equal(t, tc.key != "", arg.IdempotencyKey.Valid)
					assert.Equal(t, []string{"item1", "item2"}, arg.ItemIds)
					assert.JSONEq(t, `[{"currency":"gold","amount":15}]`, string(arg.Charges))
					return sqlc.Purchase{}, tc.returnErr
				})

			err := repo.Create(ctx, mockDB, p)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestInventoryRepository_Grant(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: one row per item", affected: 2},
		{name: "error: short insert", affected: 1, expectKind: infra.KindDBFailure},
		{
			name:       "error: unknown item violates foreign key",
			returnErr:  &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			expectKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockInventoryWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewInventoryRepository(mockQueries, mockDB)
			p := newTestPurchase("offer-1", "")

			mockQueries.EXPECT().CreateInventoryItems(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateInventoryItemsParams) (int64, error) {
					assert.Equal(t, p.ID(), arg.PurchaseID)
					assert.Equal(t, p.UserID(), arg.UserID)
					assert.Equal(t, []string{"item1", "item2"}, arg.ItemIds)
					return tc.affected, tc.returnErr
				})

			err := repo.Grant(ctx, mockDB, p)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
