package readstore

import (
	"context"
	"encoding/json"
	"time"

	"store-offers-api/internal/infra"
	sqlc "store-offers-api/internal/infra/sqlc/generated"
	"store-offers-api/internal/pkg/pgconv"
	"store-offers-api/internal/usecase/queries"
)

type OfferReadQueries interface {
	GetOfferByID(ctx context.Context, db sqlc.DBTX, id string) (sqlc.Offer, error)
	GetOffersByIDs(ctx context.Context, db sqlc.DBTX, ids []string) ([]sqlc.Offer, error)
	GetOffersByTags(ctx context.Context, db sqlc.DBTX, tags []string) ([]sqlc.Offer, error)
	GetOffersByAppIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.GetOffersByAppIDsParams) ([]sqlc.Offer, error)
	GetOffersUpdatedSince(ctx context.Context, db sqlc.DBTX, arg sqlc.GetOffersUpdatedSinceParams) ([]sqlc.Offer, error)
	GetOfferTags(ctx context.Context, db sqlc.DBTX, id string) ([]string, error)
	GetOfferProperties(ctx context.Context, db sqlc.DBTX, id string) (string, error)
}

type OfferReadStore struct {
	queries OfferReadQueries
	db      sqlc.DBTX
}

func NewOfferReadStore(queries OfferReadQueries, db sqlc.DBTX) *OfferReadStore {
	return &OfferReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OfferReadStore) FindByID(ctx context.Context, id string) (*queries.OfferView, error) {
	row, err := r.queries.GetOfferByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get offer by id", err)
	}
	return toOfferView(row)
}

func (r *OfferReadStore) FindByIDs(ctx context.Context, ids []string) ([]*queries.OfferView, error) {
	rows, err := r.queries.GetOffersByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get offers by ids", err)
	}
	return toOfferViews(rows)
}

func (r *OfferReadStore) FindByTags(ctx context.Context, tags []string) ([]*queries.OfferView, error) {
	rows, err := r.queries.GetOffersByTags(ctx, r.db, tags)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get offers by tags", err)
	}
	return toOfferViews(rows)
}

func (r *OfferReadStore) FindByAppIDs(ctx context.Context, appIDs []string, limit int32) ([]*queries.OfferView, error) {
	rows, err := r.queries.GetOffersByAppIDs(ctx, r.db, sqlc.GetOffersByAppIDsParams{
		AppIds:   appIDs,
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get offers by app ids", err)
	}
	return toOfferViews(rows)
}

func (r *OfferReadStore) FindUpdatedSince(ctx context.Context, appID string, since time.Time) ([]*queries.OfferView, error) {
	rows, err := r.queries.GetOffersUpdatedSince(ctx, r.db, sqlc.GetOffersUpdatedSinceParams{
		AppID: appID,
		Since: pgconv.TimeToPgtype(since),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get offers updated since", err)
	}
	return toOfferViews(rows)
}

func (r *OfferReadStore) FindTags(ctx context.Context, id string) ([]string, error) {
	tags, err := r.queries.GetOfferTags(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get offer tags", err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

func (r *OfferReadStore) FindProperties(ctx context.Context, id string) (string, error) {
	props, err := r.queries.GetOfferProperties(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to get offer properties", err)
	}
	return props, nil
}

func toOfferViews(rows []sqlc.Offer) ([]*queries.OfferView, error) {
	views := make([]*queries.OfferView, 0, len(rows))
	for _, row := range rows {
		v, err := toOfferView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func toOfferView(row sqlc.Offer) (*queries.OfferView, error) {
	prices, err := decodePrices(row.Prices)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode offer prices", err, infra.KindDBFailure)
	}
	return &queries.OfferView{
		ID:          row.ID,
		AppIDs:      orEmpty(row.AppIds),
		ItemIDs:     orEmpty(row.ItemIds),
		Name:        row.Name,
		Description: row.Description,
		ImageURL:    row.ImageUrl,
		Tags:        orEmpty(row.Tags),
		Time: queries.TimeView{
			Start:            pgconv.Int64PtrFromPgtype(row.TimeStart),
			End:              pgconv.Int64PtrFromPgtype(row.TimeEnd),
			IntervalDuration: pgconv.Int64PtrFromPgtype(row.IntervalDuration),
			IntervalDelay:    pgconv.Int64PtrFromPgtype(row.IntervalDelay),
		},
		Prices:     prices,
		Properties: row.Properties,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func decodePrices(b []byte) ([]queries.PriceView, error) {
	prices := []queries.PriceView{}
	if len(b) == 0 {
		return prices, nil
	}
	if err := json.Unmarshal(b, &prices); err != nil {
		return nil, err
	}
	return prices, nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
