package repository

import (
	"context"

	"store-offers-api/internal/domain/purchase"
	"store-offers-api/internal/infra"
	"store-offers-api/internal/infra/repository/converter"
	sqlc "store-offers-api/internal/infra/sqlc/generated"
)

type PurchaseWriteQueries interface {
	CreatePurchase(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePurchaseParams) (sqlc.Purchase, error)
}

type PurchaseRepository struct {
	queries PurchaseWriteQueries
	db      sqlc.DBTX
}

func NewPurchaseRepository(queries PurchaseWriteQueries, db sqlc.DBTX) *PurchaseRepository {
	return &PurchaseRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PurchaseRepository) Create(ctx context.Context, tx sqlc.DBTX, p *purchase.Purchase) error {
	params, err := converter.PurchaseToCreateParams(p)
	if err != nil {
		return infra.WrapRepoErr("failed to encode purchase", err, infra.KindDBFailure)
	}
	if _, err := r.queries.CreatePurchase(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create purchase", err)
	}
	return nil
}
