package response

import (
	"encoding/json"
	"time"

	"store-offers-api/internal/domain/offer"
	"store-offers-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type OfferResponse struct {
	ID          string          `json:"id"`
	AppIDs      []string        `json:"appIds"`
	ItemIDs     []string        `json:"itemIds"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
	Tags        []string        `json:"tags"`
	Time        TimeResponse    `json:"time"`
	Prices      []PriceResponse `json:"prices"`
	Properties  json.RawMessage `json:"properties" copier:"-"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type PriceResponse struct {
	ItemID   string `json:"itemId"`
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

type TimeResponse struct {
	Start            *int64 `json:"start,omitempty"`
	End              *int64 `json:"end,omitempty"`
	IntervalDuration *int64 `json:"intervalDuration,omitempty"`
	IntervalDelay    *int64 `json:"intervalDelay,omitempty"`
}

func FromOfferView(v *queries.OfferView) (*OfferResponse, error) {
	res := &OfferResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	res.AppIDs = orEmpty(res.AppIDs)
	res.ItemIDs = orEmpty(res.ItemIDs)
	res.Tags = orEmpty(res.Tags)
	if res.Prices == nil {
		res.Prices = []PriceResponse{}
	}
	res.Properties = json.RawMessage(propertiesOrDefault(v.Properties))
	return res, nil
}

func FromOfferViews(views []*queries.OfferView) ([]*OfferResponse, error) {
	res := make([]*OfferResponse, len(views))
	for i, v := range views {
		r, err := FromOfferView(v)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}

func FromOffer(o *offer.Offer) *OfferResponse {
	ti := o.Time()
	prices := make([]PriceResponse, 0, len(o.Prices()))
	for _, p := range o.Prices() {
		prices = append(prices, PriceResponse(p))
	}
	return &OfferResponse{
		ID:          o.ID(),
		AppIDs:      orEmpty(o.AppIDs()),
		ItemIDs:     orEmpty(o.ItemIDs()),
		Name:        o.Name(),
		Description: o.Description(),
		ImageURL:    o.ImageURL(),
		Tags:        orEmpty(o.Tags().Values()),
		Time:        TimeResponse(ti),
		Prices:      prices,
		Properties:  json.RawMessage(o.Properties().String()),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}

type TagsResponse struct {
	ID   string   `json:"id"`
	Tags []string `json:"tags"`
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func propertiesOrDefault(raw string) string {
	if raw == "" {
		return offer.DefaultProperties
	}
	return raw
}
