package queries

import (
	"context"
	"strings"

	"store-offers-api/internal/infra"
	"store-offers-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBlankCurrency = errs.Category("currency is required", errs.ErrValidation)

type WalletReadStore interface {
	FindBalances(ctx context.Context, userID uuid.UUID) ([]*BalanceView, error)
	FindBalance(ctx context.Context, userID uuid.UUID, currency string) (*BalanceView, error)
}

type WalletQueries interface {
	// GetBalance reports zero for a currency the user never held.
	GetBalance(ctx context.Context, userID uuid.UUID, currency string) (*BalanceView, error)
	ListBalances(ctx context.Context, userID uuid.UUID) ([]*BalanceView, error)
}

type walletQueriesImpl struct {
	repo WalletReadStore
}

func NewWalletQueries(repo WalletReadStore) WalletQueries {
	return &walletQueriesImpl{repo: repo}
}

func (q *walletQueriesImpl) GetBalance(ctx context.Context, userID uuid.UUID, currency string) (*BalanceView, error) {
	if strings.TrimSpace(currency) == "" {
		return nil, ErrBlankCurrency
	}
	b, err := q.repo.FindBalance(ctx, userID, currency)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &BalanceView{UserID: userID, Currency: currency, Amount: 0}, nil
		}
		return nil, err
	}
	return b, nil
}

func (q *walletQueriesImpl) ListBalances(ctx context.Context, userID uuid.UUID) ([]*BalanceView, error) {
	return q.repo.FindBalances(ctx, userID)
}
