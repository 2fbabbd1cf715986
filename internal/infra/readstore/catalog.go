package readstore

import (
	"context"

	"store-offers-api/internal/infra"
	sqlc "store-offers-api/internal/infra/sqlc/generated"
	"store-offers-api/internal/usecase/queries"
)

type CatalogReadQueries interface {
	GetVirtualItemsByIDs(ctx context.Context, db sqlc.DBTX, ids []string) ([]sqlc.VirtualItem, error)
}

type CatalogReadStore struct {
	queries CatalogReadQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByIDs returns the known items among ids; unknown ids are omitted.
func (r *CatalogReadStore) FindByIDs(ctx context.Context, ids []string) ([]*queries.VirtualItemView, error) {
	rows, err := r.queries.GetVirtualItemsByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get virtual items", err)
	}
	views := make([]*queries.VirtualItemView, 0, len(rows))
	for _, row := range rows {
		prices, err := decodePrices(row.Prices)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode virtual item prices", err, infra.KindDBFailure)
		}
		views = append(views, &queries.VirtualItemView{
			ID:     row.ID,
			Name:   row.Name,
			Prices: prices,
		})
	}
	return views, nil
}
