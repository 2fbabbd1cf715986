package request

import "store-offers-api/internal/usecase/commands"

// Currencies left out of the body means every currency the buyer owns; an
// explicit empty list allows none.
type BuyItemsRequest struct {
	ItemIDs    []string `json:"itemIds" binding:"required,min=1,dive,required"`
	Currencies []string `json:"currencies" binding:"omitempty,dive,required"`
	OfferID    string   `json:"offerId"`
}

func (r *BuyItemsRequest) ToCommand(idempotencyKey string) commands.BuyItemsRequest {
	return commands.BuyItemsRequest{
		ItemIDs:        r.ItemIDs,
		Currencies:     r.Currencies,
		OfferID:        r.OfferID,
		IdempotencyKey: idempotencyKey,
	}
}

type BuyOfferRequest struct {
	Currencies []string `json:"currencies" binding:"omitempty,dive,required"`
}

func (r *BuyOfferRequest) ToCommand(offerID, idempotencyKey string) commands.BuyOfferRequest {
	return commands.BuyOfferRequest{
		OfferID:        offerID,
		Currencies:     r.Currencies,
		IdempotencyKey: idempotencyKey,
	}
}
