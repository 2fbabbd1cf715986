package request

import (
	"store-offers-api/internal/domain/offer"
	"store-offers-api/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type AddOfferRequest struct {
	AppIDs      []string `json:"appIds" binding:"omitempty,dive,required"`
	ItemIDs     []string `json:"itemIds" binding:"required,min=1,dive,required"`
	Name        string   `json:"name" binding:"required,max=200"`
	Description string   `json:"description"`
	Tags        []string `json:"tags" binding:"omitempty,dive,required"`
}

func (r *AddOfferRequest) ToCommand() (commands.AddOfferRequest, error) {
	var cmd commands.AddOfferRequest
	if err := copier.Copy(&cmd, r); err != nil {
		return commands.AddOfferRequest{}, err
	}
	return cmd, nil
}

type SetNameRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

type SetDescriptionRequest struct {
	Description string `json:"description"`
}

type SetImageURLRequest struct {
	ImageURL string `json:"imageUrl"`
}

type SetTagsRequest struct {
	Tags  []string `json:"tags" binding:"required,dive,required"`
	AppID string   `json:"appId"`
}

func (r *SetTagsRequest) ToCommand() commands.SetTagsRequest {
	return commands.SetTagsRequest{Tags: r.Tags, AppID: r.AppID}
}

type PriceRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	Currency string `json:"currency" binding:"required"`
	Amount   int64  `json:"amount" binding:"min=0"`
}

type SetPricesRequest struct {
	Prices []PriceRequest `json:"prices" binding:"required,dive"`
}

func (r *SetPricesRequest) ToDomain() ([]offer.Price, error) {
	prices := make([]offer.Price, 0, len(r.Prices))
	if err := copier.Copy(&prices, &r.Prices); err != nil {
		return nil, err
	}
	return prices, nil
}

// SetTimeRequest fields are Unix milliseconds; omitted fields clear the bound.
type SetTimeRequest struct {
	Start            *int64 `json:"start"`
	End              *int64 `json:"end"`
	IntervalDuration *int64 `json:"intervalDuration" binding:"omitempty,min=0"`
	IntervalDelay    *int64 `json:"intervalDelay" binding:"omitempty,min=0"`
}

func (r *SetTimeRequest) ToCommand() commands.SetTimeRequest {
	return commands.SetTimeRequest{Time: offer.TimeInfo{
		Start:            r.Start,
		End:              r.End,
		IntervalDuration: r.IntervalDuration,
		IntervalDelay:    r.IntervalDelay,
	}}
}
