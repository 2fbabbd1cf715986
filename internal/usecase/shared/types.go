package shared

import (
	"time"

	"store-offers-api/internal/domain/offer"
	"store-offers-api/internal/domain/wallet"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations

type OfferSnapshot struct {
	ID      string
	ItemIDs []string
	Prices  []offer.Price
	Time    offer.TimeInfo
}

type CatalogItemSnapshot struct {
	ID     string
	Prices []offer.Price
}

type PurchaseSnapshot struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	OfferID        string
	ItemIDs        []string
	Charges        []wallet.Charge
	IdempotencyKey string
	CreatedAt      time.Time
}
