//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"store-offers-api/internal/domain/wallet"
	"store-offers-api/internal/infra"
	"store-offers-api/internal/infra/repository"
	sqlc "store-offers-api/internal/infra/sqlc/generated"
	repositorymock "store-offers-api/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWalletRepository_LockBalances(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success: rows become a currency map", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockWalletWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewWalletRepository(mockQueries, mockDB)

		mockQueries.EXPECT().LockWalletBalances(ctx, mockDB, userID).Return([]sqlc.WalletBalance{
			{UserID: userID, Currency: "gold", Amount: 20},
			{UserID: userID, Currency: "gems", Amount: 0},
		}, nil)

		balances, err := repo.LockBalances(ctx, mockDB, userID)
		require.NoError(t, err)
		assert.Equal(t, wallet.Balances{"gold": 20, "gems": 0}, balances)
		assert.True(t, balances.Owns("gems"), "a zero balance row still counts as owned")
	})

	t.Run("success: no rows is an empty wallet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockWalletWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewWalletRepository(mockQueries, mockDB)

		mockQueries.EXPECT().LockWalletBalances(ctx, mockDB, userID).Return(nil, nil)

		balances, err := repo.LockBalances(ctx, mockDB, userID)
		require.NoError(t, err)
		assert.Empty(t, balances)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockWalletWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewWalletRepository(mockQueries, mockDB)

		mockQueries.EXPECT().LockWalletBalances(ctx, mockDB, userID).Return(nil, errors.New("lock timeout"))

		_, err := repo.LockBalances(ctx, mockDB, userID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestWalletRepository_Debit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	testCases := []struct {
		name       string
		charge     wallet.Charge
		setupMock  func(*repositorymock.MockWalletWriteQueries, sqlc.DBTX)
		expectErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:   "success: balance covers the charge",
			charge: wallet.Charge{Currency: "gold", Amount: 15},
			setupMock: func(mock *repositorymock.MockWalletWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().DebitWalletBalance(ctx, tx, sqlc.DebitWalletBalanceParams{
					Amount: 15, UserID: userID, Currency: "gold",
				}).Return(int64(1), nil)
			},
		},
		{
			name:      "success: zero charge skips the update",
			charge:    wallet.Charge{Currency: "gold", Amount: 0},
			setupMock: func(*repositorymock.MockWalletWriteQueries, sqlc.DBTX) {},
		},
		{
			name:   "error: guarded update touches no row",
			charge: wallet.Charge{Currency: "gold", Amount: 99},
			setupMock: func(mock *repositorymock.MockWalletWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().DebitWalletBalance(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectErr: wallet.ErrInsufficientFunds,
		},
		{
			name:      "error: negative charge is rejected before the query",
			charge:    wallet.Charge{Currency: "gold", Amount: -1},
			setupMock: func(*repositorymock.MockWalletWriteQueries, sqlc.DBTX) {},
			expectErr: wallet.ErrNegativeAmount,
		},
		{
			name:   "error: database error occurs",
			charge: wallet.Charge{Currency: "gold", Amount: 1},
			setupMock: func(mock *repositorymock.MockWalletWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().DebitWalletBalance(ctx, tx, gomock.Any()).Return(int64(0), errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockWalletWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewWalletRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			err := repo.Debit(ctx, mockDB, userID, tc.charge)

			switch {
			case tc.expectErr != nil:
				assert.ErrorIs(t, err, tc.expectErr)
			case tc.expectKind != "":
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
			default:
				assert.NoError(t, err)
			}
		})
	}
}
