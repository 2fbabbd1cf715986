package repository

import (
	"context"

	"store-offers-api/internal/domain/wallet"
	"store-offers-api/internal/infra"
	sqlc "store-offers-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type WalletWriteQueries interface {
	LockWalletBalances(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.WalletBalance, error)
	DebitWalletBalance(ctx context.Context, db sqlc.DBTX, arg sqlc.DebitWalletBalanceParams) (int64, error)
}

type WalletRepository struct {
	queries WalletWriteQueries
	db      sqlc.DBTX
}

func NewWalletRepository(queries WalletWriteQueries, db sqlc.DBTX) *WalletRepository {
	return &WalletRepository{
		queries: queries,
		db:      db,
	}
}

func (r *WalletRepository) LockBalances(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (wallet.Balances, error) {
	rows, err := r.queries.LockWalletBalances(ctx, tx, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock wallet balances", err)
	}
	balances := make(wallet.Balances, len(rows))
	for _, row := range rows {
		balances[row.Currency] = row.Amount
	}
	return balances, nil
}

// Debit takes the amount only if the balance covers it; otherwise it returns
// wallet.ErrInsufficientFunds and leaves the row untouched.
func (r *WalletRepository) Debit(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, charge wallet.Charge) error {
	if charge.Amount < 0 {
		return wallet.ErrNegativeAmount
	}
	if charge.Amount == 0 {
		return nil
	}
	affected, err := r.queries.DebitWalletBalance(ctx, tx, sqlc.DebitWalletBalanceParams{
		Amount:   charge.Amount,
		UserID:   userID,
		Currency: charge.Currency,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to debit wallet balance", err)
	}
	if affected == 0 {
		return wallet.ErrInsufficientFunds
	}
	return nil
}
