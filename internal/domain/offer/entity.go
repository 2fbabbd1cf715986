package offer

import (
	"strings"
	"time"

	"store-offers-api/internal/pkg/clock"

	"github.com/google/uuid"
)

// Offer is a purchasable bundle of virtual items visible to a set of apps.
type Offer struct {
	id          string
	appIDs      []string
	itemIDs     []string
	name        string
	description string
	imageURL    string
	tags        Tags
	time        TimeInfo
	prices      Prices
	properties  Properties
	createdAt   time.Time
	updatedAt   time.Time
}

// NewOffer creates an offer with a fresh id, no prices, default properties and no time window.
func NewOffer(clk clock.Clock, appIDs, itemIDs []string, name, description string, tags []string) (*Offer, error) {
	if err := validateIDs(appIDs, ErrBlankAppID); err != nil {
		return nil, err
	}
	if len(itemIDs) == 0 {
		return nil, ErrEmptyItemIDs
	}
	if err := validateIDs(itemIDs, ErrBlankItemID); err != nil {
		return nil, err
	}
	validName, err := NewName(name)
	if err != nil {
		return nil, err
	}
	validTags, err := NewTags(tags, "")
	if err != nil {
		return nil, err
	}

	now := clk.Now()
	return &Offer{
		id:          uuid.NewString(),
		appIDs:      dedupe(appIDs),
		itemIDs:     append([]string{}, itemIDs...),
		name:        validName,
		description: description,
		tags:        validTags,
		prices:      Prices{},
		properties:  Properties{raw: DefaultProperties},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructOffer rebuilds an offer from storage without validation.
func ReconstructOffer(
	id string,
	appIDs, itemIDs []string,
	name, description, imageURL string,
	tags Tags,
	timeInfo TimeInfo,
	prices Prices,
	properties Properties,
	createdAt, updatedAt time.Time,
) *Offer {
	return &Offer{
		id:          id,
		appIDs:      appIDs,
		itemIDs:     itemIDs,
		name:        name,
		description: description,
		imageURL:    imageURL,
		tags:        tags,
		time:        timeInfo,
		prices:      prices,
		properties:  properties,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func NewName(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", ErrBlankName
	}
	if len(s) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return s, nil
}

func (o *Offer) ID() string             { return o.id }
func (o *Offer) AppIDs() []string       { return append([]string{}, o.appIDs...) }
func (o *Offer) ItemIDs() []string      { return append([]string{}, o.itemIDs...) }
func (o *Offer) Name() string           { return o.name }
func (o *Offer) Description() string    { return o.description }
func (o *Offer) ImageURL() string       { return o.imageURL }
func (o *Offer) Tags() Tags             { return o.tags }
func (o *Offer) Time() TimeInfo         { return o.time }
func (o *Offer) Prices() Prices         { return o.prices }
func (o *Offer) Properties() Properties { return o.properties }
func (o *Offer) CreatedAt() time.Time   { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time   { return o.updatedAt }

// RequireItems checks that every requested item is granted by the offer.
func (o *Offer) RequireItems(itemIDs []string) error {
	granted := make(map[string]struct{}, len(o.itemIDs))
	for _, id := range o.itemIDs {
		granted[id] = struct{}{}
	}
	for _, id := range itemIDs {
		if _, ok := granted[id]; !ok {
			return ErrItemNotInOffer
		}
	}
	return nil
}

func (o *Offer) RequireAvailableAt(nowMillis int64) error {
	if !o.time.IsAvailableAt(nowMillis) {
		return ErrOfferUnavailable
	}
	return nil
}

func validateIDs(ids []string, blankErr error) error {
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return blankErr
		}
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
