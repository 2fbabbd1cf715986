package repository

import (
	"context"
	"fmt"

	"store-offers-api/internal/domain/purchase"
	"store-offers-api/internal/infra"
	"store-offers-api/internal/infra/repository/converter"
	sqlc "store-offers-api/internal/infra/sqlc/generated"
)

type InventoryWriteQueries interface {
	CreateInventoryItems(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateInventoryItemsParams) (int64, error)
}

type InventoryRepository struct {
	queries InventoryWriteQueries
	db      sqlc.DBTX
}

func NewInventoryRepository(queries InventoryWriteQueries, db sqlc.DBTX) *InventoryRepository {
	return &InventoryRepository{
		queries: queries,
		db:      db,
	}
}

// Grant inserts one inventory row per purchased item, in purchase order.
func (r *InventoryRepository) Grant(ctx context.Context, tx sqlc.DBTX, p *purchase.Purchase) error {
	want := int64(len(p.ItemIDs()))
	affected, err := r.queries.CreateInventoryItems(ctx, tx, converter.PurchaseToInventoryParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to grant inventory items", err)
	}
	if affected != want {
		return infra.WrapRepoErr(fmt.Sprintf("granted %d of %d inventory items", affected, want), nil, infra.KindDBFailure)
	}
	return nil
}
