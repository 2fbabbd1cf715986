package queries

import (
	"time"

	"github.com/google/uuid"
)

// OfferView represents read-optimized store offer data
type OfferView struct {
	ID          string      `json:"id"`
	AppIDs      []string    `json:"appIds"`
	ItemIDs     []string    `json:"itemIds"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	ImageURL    string      `json:"imageUrl"`
	Tags        []string    `json:"tags"`
	Time        TimeView    `json:"time"`
	Prices      []PriceView `json:"prices"`
	Properties  string      `json:"properties"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type PriceView struct {
	ItemID   string `json:"itemId"`
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

// TimeView mirrors the stored availability window; nil means unbounded.
type TimeView struct {
	Start            *int64 `json:"start,omitempty"`
	End              *int64 `json:"end,omitempty"`
	IntervalDuration *int64 `json:"intervalDuration,omitempty"`
	IntervalDelay    *int64 `json:"intervalDelay,omitempty"`
}

// BalanceView represents one currency balance of a user
type BalanceView struct {
	UserID    uuid.UUID `json:"userId"`
	Currency  string    `json:"currency"`
	Amount    int64     `json:"amount"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VirtualItemView represents a catalog item with its default prices
type VirtualItemView struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Prices []PriceView `json:"prices"`
}

// PurchaseView represents a committed purchase
type PurchaseView struct {
	ID             uuid.UUID    `json:"id"`
	UserID         uuid.UUID    `json:"userId"`
	OfferID        string       `json:"offerId"`
	ItemIDs        []string     `json:"itemIds"`
	Charges        []ChargeView `json:"charges"`
	IdempotencyKey string       `json:"idempotencyKey,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
}

type ChargeView struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}
