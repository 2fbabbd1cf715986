package converter

import (
	"encoding/json"

	"store-offers-api/internal/domain/offer"
	sqlc "store-offers-api/internal/infra/sqlc/generated"
	"store-offers-api/internal/pkg/errs"
	"store-offers-api/internal/pkg/pgconv"
)

func OfferToCreateParams(o *offer.Offer) (sqlc.CreateOfferParams, error) {
	prices, err := PricesToJSON(o.Prices())
	if err != nil {
		return sqlc.CreateOfferParams{}, err
	}
	ti := o.Time()
	return sqlc.CreateOfferParams{
		ID:               o.ID(),
		AppIds:           nonNil(o.AppIDs()),
		ItemIds:          nonNil(o.ItemIDs()),
		Name:             o.Name(),
		Description:      o.Description(),
		ImageUrl:         o.ImageURL(),
		Tags:             nonNil(o.Tags().Values()),
		Prices:           prices,
		TimeStart:        pgconv.Int64PtrToPgtype(ti.Start),
		TimeEnd:          pgconv.Int64PtrToPgtype(ti.End),
		IntervalDuration: pgconv.Int64PtrToPgtype(ti.IntervalDuration),
		IntervalDelay:    pgconv.Int64PtrToPgtype(ti.IntervalDelay),
		Properties:       o.Properties().String(),
		CreatedAt:        pgconv.TimeToPgtype(o.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(o.UpdatedAt()),
	}, nil
}

// OfferFromRow rebuilds the aggregate from a stored row.
func OfferFromRow(row sqlc.Offer) (*offer.Offer, error) {
	prices, err := PricesFromJSON(row.Prices)
	if err != nil {
		return nil, err
	}
	properties, err := offer.NewProperties(row.Properties)
	if err != nil {
		return nil, errs.Wrap(err, "stored offer properties are not valid JSON")
	}
	return offer.ReconstructOffer(
		row.ID,
		nonNil(row.AppIds),
		nonNil(row.ItemIds),
		row.Name,
		row.Description,
		row.ImageUrl,
		offer.Tags(nonNil(row.Tags)),
		TimeInfoFromRow(row),
		prices,
		properties,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func TimeInfoFromRow(row sqlc.Offer) offer.TimeInfo {
	return offer.TimeInfo{
		Start:            pgconv.Int64PtrFromPgtype(row.TimeStart),
		End:              pgconv.Int64PtrFromPgtype(row.TimeEnd),
		IntervalDuration: pgconv.Int64PtrFromPgtype(row.IntervalDuration),
		IntervalDelay:    pgconv.Int64PtrFromPgtype(row.IntervalDelay),
	}
}

func PricesToJSON(prices offer.Prices) ([]byte, error) {
	if prices == nil {
		prices = offer.Prices{}
	}
	b, err := json.Marshal(prices)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode prices")
	}
	return b, nil
}

func PricesFromJSON(b []byte) (offer.Prices, error) {
	prices := offer.Prices{}
	if len(b) == 0 {
		return prices, nil
	}
	if err := json.Unmarshal(b, &prices); err != nil {
		return nil, errs.Wrap(err, "failed to decode prices")
	}
	return prices, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
