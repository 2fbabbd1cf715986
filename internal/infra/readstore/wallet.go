package readstore

import (
	"context"

	"store-offers-api/internal/infra"
	sqlc "store-offers-api/internal/infra/sqlc/generated"
	"store-offers-api/internal/pkg/pgconv"
	"store-offers-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type WalletReadQueries interface {
	GetWalletBalances(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.WalletBalance, error)
	GetWalletBalance(ctx context.Context, db sqlc.DBTX, arg sqlc.GetWalletBalanceParams) (sqlc.WalletBalance, error)
}

type WalletReadStore struct {
	queries WalletReadQueries
	db      sqlc.DBTX
}

func NewWalletReadStore(queries WalletReadQueries, db sqlc.DBTX) *WalletReadStore {
	return &WalletReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *WalletReadStore) FindBalances(ctx context.Context, userID uuid.UUID) ([]*queries.BalanceView, error) {
	rows, err := r.queries.GetWalletBalances(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get wallet balances", err)
	}
	views := make([]*queries.BalanceView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toBalanceView(row))
	}
	return views, nil
}

func (r *WalletReadStore) FindBalance(ctx context.Context, userID uuid.UUID, currency string) (*queries.BalanceView, error) {
	row, err := r.queries.GetWalletBalance(ctx, r.db, sqlc.GetWalletBalanceParams{
		UserID:   userID,
		Currency: currency,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("wallet balance not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get wallet balance", err)
	}
	return toBalanceView(row), nil
}

func toBalanceView(row sqlc.WalletBalance) *queries.BalanceView {
	return &queries.BalanceView{
		UserID:    row.UserID,
		Currency:  row.Currency,
		Amount:    row.Amount,
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
