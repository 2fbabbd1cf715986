package commands

import (
	"store-offers-api/internal/domain/offer"
	"store-offers-api/internal/domain/wallet"

	"github.com/google/uuid"
)

type AddOfferRequest struct {
	AppIDs      []string
	ItemIDs     []string
	Name        string
	Description string
	Tags        []string
}

type SetTagsRequest struct {
	Tags []string
	// AppID scopes every tag as "{tag}_{appId}" when set.
	AppID string
}

type SetTimeRequest struct {
	Time offer.TimeInfo
}

// BuyItemsRequest buys raw items, or a subset of an offer when OfferID is set.
// A nil Currencies means every currency the buyer owns.
type BuyItemsRequest struct {
	ItemIDs        []string
	Currencies     []string
	OfferID        string
	IdempotencyKey string
}

type BuyOfferRequest struct {
	OfferID        string
	Currencies     []string
	IdempotencyKey string
}

// PurchaseResult is empty (no ItemIDs, nil PurchaseID) when the purchase was
// softly rejected because no eligible currency could pay for it.
type PurchaseResult struct {
	PurchaseID uuid.UUID
	OfferID    string
	ItemIDs    []string
	Charges    []wallet.Charge
	Replayed   bool
}

func (r *PurchaseResult) Rejected() bool {
	return len(r.ItemIDs) == 0
}
