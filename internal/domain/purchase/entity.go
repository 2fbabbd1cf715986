package purchase

import (
	"slices"
	"strings"
	"time"

	"store-offers-api/internal/domain/wallet"
	"store-offers-api/internal/pkg/clock"

	"github.com/google/uuid"
)

// Purchase is the committed record of one settlement.
type Purchase struct {
	id             uuid.UUID
	userID         uuid.UUID
	offerID        string
	itemIDs        []string
	charges        []wallet.Charge
	idempotencyKey string
	createdAt      time.Time
}

func NewPurchase(clk clock.Clock, userID uuid.UUID, offerID string, itemIDs []string, plan *Plan, idempotencyKey string) *Purchase {
	var charges []wallet.Charge
	if plan != nil {
		charges = append(charges, plan.Charges...)
	}
	return &Purchase{
		id:             uuid.New(),
		userID:         userID,
		offerID:        offerID,
		itemIDs:        append([]string{}, itemIDs...),
		charges:        charges,
		idempotencyKey: idempotencyKey,
		createdAt:      clk.Now(),
	}
}

func ReconstructPurchase(id, userID uuid.UUID, offerID string, itemIDs []string, charges []wallet.Charge, idempotencyKey string, createdAt time.Time) *Purchase {
	return &Purchase{
		id:             id,
		userID:         userID,
		offerID:        offerID,
		itemIDs:        itemIDs,
		charges:        charges,
		idempotencyKey: idempotencyKey,
		createdAt:      createdAt,
	}
}

func (p *Purchase) ID() uuid.UUID            { return p.id }
func (p *Purchase) UserID() uuid.UUID        { return p.userID }
func (p *Purchase) OfferID() string          { return p.offerID }
func (p *Purchase) ItemIDs() []string        { return append([]string{}, p.itemIDs...) }
func (p *Purchase) Charges() []wallet.Charge { return append([]wallet.Charge{}, p.charges...) }
func (p *Purchase) IdempotencyKey() string   { return p.idempotencyKey }
func (p *Purchase) CreatedAt() time.Time     { return p.createdAt }

// Matches reports whether a retried request targets the same offer and items.
func (p *Purchase) Matches(offerID string, itemIDs []string) bool {
	return p.offerID == offerID && slices.Equal(p.itemIDs, itemIDs)
}

// ValidateItemIDs checks a requested item list against the per-request cap.
func ValidateItemIDs(itemIDs []string, maxItems int) error {
	if len(itemIDs) == 0 {
		return ErrEmptyItems
	}
	if maxItems > 0 && len(itemIDs) > maxItems {
		return ErrTooManyItems
	}
	for _, id := range itemIDs {
		if strings.TrimSpace(id) == "" {
			return ErrBlankItemID
		}
	}
	return nil
}

// ValidateCurrencies rejects blank names in an explicit currency filter.
func ValidateCurrencies(currencies []string) error {
	for _, c := range currencies {
		if strings.TrimSpace(c) == "" {
			return ErrBlankCurrency
		}
	}
	return nil
}
