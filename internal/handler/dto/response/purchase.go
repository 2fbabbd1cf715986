package response

import (
	"store-offers-api/internal/usecase/commands"

	"github.com/google/uuid"
)

// PurchaseResponse lists the granted items; an empty itemIds means the
// purchase was declined and nothing was charged.
type PurchaseResponse struct {
	PurchaseID *uuid.UUID       `json:"purchaseId,omitempty"`
	OfferID    string           `json:"offerId,omitempty"`
	ItemIDs    []string         `json:"itemIds"`
	Charges    []ChargeResponse `json:"charges"`
}

type ChargeResponse struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

func FromPurchaseResult(r *commands.PurchaseResult) *PurchaseResponse {
	res := &PurchaseResponse{
		OfferID: r.OfferID,
		ItemIDs: orEmpty(r.ItemIDs),
		Charges: make([]ChargeResponse, 0, len(r.Charges)),
	}
	if r.PurchaseID != uuid.Nil {
		id := r.PurchaseID
		res.PurchaseID = &id
	}
	for _, c := range r.Charges {
		res.Charges = append(res.Charges, ChargeResponse(c))
	}
	return res
}
