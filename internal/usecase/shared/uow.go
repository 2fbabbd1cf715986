package shared

import (
	"context"
	"time"

	"store-offers-api/internal/domain/offer"
	"store-offers-api/internal/domain/purchase"
	"store-offers-api/internal/domain/wallet"
	sqlc "store-offers-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

// UnitOfWork runs fn in one transaction, retrying it on deadlock or
// serialization failure.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Offers() OfferRepository
	Wallets() WalletRepository
	Inventory() InventoryRepository
	Purchases() PurchaseRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	OfferByID(ctx context.Context, id string) (*OfferSnapshot, error)
	CatalogItems(ctx context.Context, ids []string) ([]CatalogItemSnapshot, error)
	// PurchaseByIdempotencyKey returns nil without error when the key is unused.
	PurchaseByIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) (*PurchaseSnapshot, error)
}

type OfferRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *offer.Offer) error
	Delete(ctx context.Context, tx sqlc.DBTX, id string) error
	UpdateName(ctx context.Context, tx sqlc.DBTX, id, name string, at time.Time) (*offer.Offer, error)
	UpdateDescription(ctx context.Context, tx sqlc.DBTX, id, description string, at time.Time) (*offer.Offer, error)
	UpdateImageURL(ctx context.Context, tx sqlc.DBTX, id, imageURL string, at time.Time) (*offer.Offer, error)
	UpdateTags(ctx context.Context, tx sqlc.DBTX, id string, tags offer.Tags, at time.Time) (*offer.Offer, error)
	UpdatePrices(ctx context.Context, tx sqlc.DBTX, id string, prices offer.Prices, at time.Time) (*offer.Offer, error)
	UpdateTime(ctx context.Context, tx sqlc.DBTX, id string, ti offer.TimeInfo, at time.Time) (*offer.Offer, error)
	UpdateProperties(ctx context.Context, tx sqlc.DBTX, id string, props offer.Properties, at time.Time) (*offer.Offer, error)
}

type WalletRepository interface {
	// LockBalances reads every balance row of the user FOR UPDATE.
	LockBalances(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (wallet.Balances, error)
	Debit(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, charge wallet.Charge) error
}

type InventoryRepository interface {
	Grant(ctx context.Context, tx sqlc.DBTX, p *purchase.Purchase) error
}

type PurchaseRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *purchase.Purchase) error
}
