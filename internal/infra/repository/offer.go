package repository

import (
	"context"
	"time"

	"store-offers-api/internal/domain/offer"
	"store-offers-api/internal/infra"
	"store-offers-api/internal/infra/repository/converter"
	sqlc "store-offers-api/internal/infra/sqlc/generated"
	"store-offers-api/internal/pkg/pgconv"
)

type OfferWriteQueries interface {
	CreateOffer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOfferParams) (sqlc.Offer, error)
	DeleteOffer(ctx context.Context, db sqlc.DBTX, id string) error
	UpdateOfferName(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOfferNameParams) (sqlc.Offer, error)
	UpdateOfferDescription(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOfferDescriptionParams) (sqlc.Offer, error)
	UpdateOfferImageURL(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOfferImageURLParams) (sqlc.Offer, error)
	UpdateOfferTags(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOfferTagsParams) (sqlc.Offer, error)
	UpdateOfferPrices(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOfferPricesParams) (sqlc.Offer, error)
	UpdateOfferTime(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOfferTimeParams) (sqlc.Offer, error)
	UpdateOfferProperties(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOfferPropertiesParams) (sqlc.Offer, error)
}

type OfferRepository struct {
	queries OfferWriteQueries
	db      sqlc.DBTX
}

func NewOfferRepository(queries OfferWriteQueries, db sqlc.DBTX) *OfferRepository {
	return &OfferRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OfferRepository) Create(ctx context.Context, tx sqlc.DBTX, o *offer.Offer) error {
	params, err := converter.OfferToCreateParams(o)
	if err != nil {
		return infra.WrapRepoErr("failed to encode offer", err, infra.KindDBFailure)
	}
	if _, err := r.queries.CreateOffer(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create offer", err)
	}
	return nil
}

// Delete is idempotent: removing an unknown id is not an error.
func (r *OfferRepository) Delete(ctx context.Context, tx sqlc.DBTX, id string) error {
	if err := r.queries.DeleteOffer(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to delete offer", err)
	}
	return nil
}

func (r *OfferRepository) UpdateName(ctx context.Context, tx sqlc.DBTX, id, name string, at time.Time) (*offer.Offer, error) {
	row, err := r.queries.UpdateOfferName(ctx, tx, sqlc.UpdateOfferNameParams{
		ID:        id,
		Name:      name,
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	return fromUpdatedRow("name", row, err)
}

func (r *OfferRepository) UpdateDescription(ctx context.Context, tx sqlc.DBTX, id, description string, at time.Time) (*offer.Offer, error) {
	row, err := r.queries.UpdateOfferDescription(ctx, tx, sqlc.UpdateOfferDescriptionParams{
		ID:          id,
		Description: description,
		UpdatedAt:   pgconv.TimeToPgtype(at),
	})
	return fromUpdatedRow("description", row, err)
}

func (r *OfferRepository) UpdateImageURL(ctx context.Context, tx sqlc.DBTX, id, imageURL string, at time.Time) (*offer.Offer, error) {
	row, err := r.queries.UpdateOfferImageURL(ctx, tx, sqlc.UpdateOfferImageURLParams{
		ID:        id,
		ImageUrl:  imageURL,
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	return fromUpdatedRow("image url", row, err)
}

func (r *OfferRepository) UpdateTags(ctx context.Context, tx sqlc.DBTX, id string, tags offer.Tags, at time.Time) (*offer.Offer, error) {
	values := tags.Values()
	row, err := r.queries.UpdateOfferTags(ctx, tx, sqlc.UpdateOfferTagsParams{
		ID:        id,
		Tags:      values,
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	return fromUpdatedRow("tags", row, err)
}

func (r *OfferRepository) UpdatePrices(ctx context.Context, tx sqlc.DBTX, id string, prices offer.Prices, at time.Time) (*offer.Offer, error) {
	encoded, err := converter.PricesToJSON(prices)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode prices", err, infra.KindDBFailure)
	}
	row, err := r.queries.UpdateOfferPrices(ctx, tx, sqlc.UpdateOfferPricesParams{
		ID:        id,
		Prices:    encoded,
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	return fromUpdatedRow("prices", row, err)
}

func (r *OfferRepository) UpdateTime(ctx context.Context, tx sqlc.DBTX, id string, ti offer.TimeInfo, at time.Time) (*offer.Offer, error) {
	row, err := r.queries.UpdateOfferTime(ctx, tx, sqlc.UpdateOfferTimeParams{
		ID:               id,
		TimeStart:        pgconv.Int64PtrToPgtype(ti.Start),
		TimeEnd:          pgconv.Int64PtrToPgtype(ti.End),
		IntervalDuration: pgconv.Int64PtrToPgtype(ti.IntervalDuration),
		IntervalDelay:    pgconv.Int64PtrToPgtype(ti.IntervalDelay),
		UpdatedAt:        pgconv.TimeToPgtype(at),
	})
	return fromUpdatedRow("time", row, err)
}

func (r *OfferRepository) UpdateProperties(ctx context.Context, tx sqlc.DBTX, id string, props offer.Properties, at time.Time) (*offer.Offer, error) {
	row, err := r.queries.UpdateOfferProperties(ctx, tx, sqlc.UpdateOfferPropertiesParams{
		ID:         id,
		Properties: props.String(),
		UpdatedAt:  pgconv.TimeToPgtype(at),
	})
	return fromUpdatedRow("properties", row, err)
}

func fromUpdatedRow(field string, row sqlc.Offer, err error) (*offer.Offer, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update offer "+field, err)
	}
	o, err := converter.OfferFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode offer", err, infra.KindDBFailure)
	}
	return o, nil
}
