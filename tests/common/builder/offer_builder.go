//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"store-offers-api/internal/domain/offer"
	reqdto "store-offers-api/internal/handler/dto/request"
	sqlc "store-offers-api/internal/infra/sqlc/generated"
	"store-offers-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OfferBuilder struct {
	ID          string
	AppIDs      []string
	ItemIDs     []string
	Name        string
	Description string
	ImageURL    string
	Tags        []string
	Prices      []offer.Price
	Time        offer.TimeInfo
	Properties  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewOfferBuilder() *OfferBuilder {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &OfferBuilder{
		ID:          uuid.NewString(),
		AppIDs:      []string{"app1", "app2"},
		ItemIDs:     []string{"item1", "item2"},
		Name:        "Starter Pack",
		Description: "Two items to get going",
		Tags:        []string{"testItemTag1", "testItemTag2"},
		Properties:  offer.DefaultProperties,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

func (b *OfferBuilder) WithID(id string) *OfferBuilder {
	b.ID = id
	return b
}

func (b *OfferBuilder) WithAppIDs(appIDs ...string) *OfferBuilder {
	b.AppIDs = appIDs
	return b
}

func (b *OfferBuilder) WithItemIDs(itemIDs ...string) *OfferBuilder {
	b.ItemIDs = itemIDs
	return b
}

func (b *OfferBuilder) WithName(name string) *OfferBuilder {
	b.Name = name
	return b
}

func (b *OfferBuilder) WithDescription(description string) *OfferBuilder {
	b.Description = description
	return b
}

func (b *OfferBuilder) WithTags(tags ...string) *OfferBuilder {
	b.Tags = tags
	return b
}

func (b *OfferBuilder) WithPrices(prices ...offer.Price) *OfferBuilder {
	b.Prices = prices
	return b
}

func (b *OfferBuilder) WithTime(t offer.TimeInfo) *OfferBuilder {
	b.Time = t
	return b
}

// Build methods
func (b *OfferBuilder) BuildDomain() *offer.Offer {
	props, err := offer.NewProperties(b.Properties)
	if err != nil {
		props, _ = offer.NewProperties(offer.DefaultProperties)
	}
	return offer.ReconstructOffer(
		b.ID,
		b.AppIDs, b.ItemIDs,
		b.Name, b.Description, b.ImageURL,
		offer.Tags(b.Tags),
		b.Time,
		offer.Prices(b.Prices),
		props,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *OfferBuilder) BuildAddRequestDTO() reqdto.AddOfferRequest {
	return reqdto.AddOfferRequest{
		AppIDs:      b.AppIDs,
		ItemIDs:     b.ItemIDs,
		Name:        b.Name,
		Description: b.Description,
		Tags:        b.Tags,
	}
}

func (b *OfferBuilder) BuildView() *queries.OfferView {
	prices := make([]queries.PriceView, 0, len(b.Prices))
	for _, p := range b.Prices {
		prices = append(prices, queries.PriceView{ItemID: p.ItemID, Currency: p.Currency, Amount: p.Amount})
	}
	return &queries.OfferView{
		ID:          b.ID,
		AppIDs:      b.AppIDs,
		ItemIDs:     b.ItemIDs,
		Name:        b.Name,
		Description: b.Description,
		ImageURL:    b.ImageURL,
		Tags:        b.Tags,
		Time: queries.TimeView{
			Start:            b.Time.Start,
			End:              b.Time.End,
			IntervalDuration: b.Time.IntervalDuration,
			IntervalDelay:    b.Time.IntervalDelay,
		},
		Prices:     prices,
		Properties: b.Properties,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (b *OfferBuilder) BuildInfra() sqlc.Offer {
	prices := b.Prices
	if prices == nil {
		prices = []offer.Price{}
	}
	pricesJSON, _ := json.Marshal(prices)
	return sqlc.Offer{
		ID:               b.ID,
		AppIds:           b.AppIDs,
		ItemIds:          b.ItemIDs,
		Name:             b.Name,
		Description:      b.Description,
		ImageUrl:         b.ImageURL,
		Tags:             b.Tags,
		Prices:           pricesJSON,
		TimeStart:        int8OrNull(b.Time.Start),
		TimeEnd:          int8OrNull(b.Time.End),
		IntervalDuration: int8OrNull(b.Time.IntervalDuration),
		IntervalDelay:    int8OrNull(b.Time.IntervalDelay),
		Properties:       b.Properties,
		CreatedAt:        pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:        pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func int8OrNull(v *int64) pgtype.Int8 {
	if v == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *v, Valid: true}
}
