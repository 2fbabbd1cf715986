package readstore

import (
	"context"
	"encoding/json"

	"store-offers-api/internal/infra"
	sqlc "store-offers-api/internal/infra/sqlc/generated"
	"store-offers-api/internal/pkg/pgconv"
	"store-offers-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type PurchaseReadQueries interface {
	GetPurchaseByIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPurchaseByIdempotencyKeyParams) (sqlc.Purchase, error)
}

type PurchaseReadStore struct {
	queries PurchaseReadQueries
	db      sqlc.DBTX
}

func NewPurchaseReadStore(queries PurchaseReadQueries, db sqlc.DBTX) *PurchaseReadStore {
	return &PurchaseReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PurchaseReadStore) FindByIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) (*queries.PurchaseView, error) {
	row, err := r.queries.GetPurchaseByIdempotencyKey(ctx, r.db, sqlc.GetPurchaseByIdempotencyKeyParams{
		UserID:         userID,
		IdempotencyKey: pgconv.StringToPgtype(key),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("purchase not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get purchase by idempotency key", err)
	}

	charges := []queries.ChargeView{}
	if len(row.Charges) > 0 {
		if err := json.Unmarshal(row.Charges, &charges); err != nil {
			return nil, infra.WrapRepoErr("failed to decode purchase charges", err, infra.KindDBFailure)
		}
	}

	view := &queries.PurchaseView{
		ID:        row.ID,
		UserID:    row.UserID,
		ItemIDs:   orEmpty(row.ItemIds),
		Charges:   charges,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
	if p := pgconv.StringPtrFromPgtype(row.OfferID); p != nil {
		view.OfferID = *p
	}
	if p := pgconv.StringPtrFromPgtype(row.IdempotencyKey); p != nil {
		view.IdempotencyKey = *p
	}
	return view, nil
}
