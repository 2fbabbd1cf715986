package converter

import (
	"encoding/json"

	"store-offers-api/internal/domain/purchase"
	"store-offers-api/internal/domain/wallet"
	sqlc "store-offers-api/internal/infra/sqlc/generated"
	"store-offers-api/internal/pkg/errs"
	"store-offers-api/internal/pkg/pgconv"
)

func PurchaseToCreateParams(p *purchase.Purchase) (sqlc.CreatePurchaseParams, error) {
	charges, err := ChargesToJSON(p.Charges())
	if err != nil {
		return sqlc.CreatePurchaseParams{}, err
	}
	return sqlc.CreatePurchaseParams{
		ID:             p.ID(),
		UserID:         p.UserID(),
		OfferID:        pgconv.StringOrNullToPgtype(p.OfferID()),
		ItemIds:        nonNil(p.ItemIDs()),
		Charges:        charges,
		IdempotencyKey: pgconv.StringOrNullToPgtype(p.IdempotencyKey()),
		CreatedAt:      pgconv.TimeToPgtype(p.CreatedAt()),
	}, nil
}

func PurchaseToInventoryParams(p *purchase.Purchase) sqlc.CreateInventoryItemsParams {
	return sqlc.CreateInventoryItemsParams{
		UserID:     p.UserID(),
		OfferID:    pgconv.StringOrNullToPgtype(p.OfferID()),
		PurchaseID: p.ID(),
		CreatedAt:  pgconv.TimeToPgtype(p.CreatedAt()),
		ItemIds:    nonNil(p.ItemIDs()),
	}
}

func ChargesToJSON(charges []wallet.Charge) ([]byte, error) {
	if charges == nil {
		charges = []wallet.Charge{}
	}
	b, err := json.Marshal(charges)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode charges")
	}
	return b, nil
}

func ChargesFromJSON(b []byte) ([]wallet.Charge, error) {
	charges := []wallet.Charge{}
	if len(b) == 0 {
		return charges, nil
	}
	if err := json.Unmarshal(b, &charges); err != nil {
		return nil, errs.Wrap(err, "failed to decode charges")
	}
	return charges, nil
}
