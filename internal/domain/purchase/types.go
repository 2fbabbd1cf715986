package purchase

import "store-offers-api/internal/pkg/errs"

var (
	ErrEmptyItems    = errs.Category("purchase must request at least one item", errs.ErrValidation)
	ErrTooManyItems  = errs.Category("purchase requests too many items", errs.ErrValidation)
	ErrBlankItemID   = errs.Category("purchase item id must not be blank", errs.ErrValidation)
	ErrItemNotFound  = errs.Category("virtual item not found", errs.ErrNotFound)
	ErrKeyReused     = errs.Category("idempotency key already used for another purchase", errs.ErrIdempotencyConflict)
	ErrBlankCurrency = errs.Category("currency filter must not contain blank names", errs.ErrValidation)

	// ErrNoEligibleCurrency is a soft rejection: callers answer with an empty
	// grant instead of an error.
	ErrNoEligibleCurrency = errs.New("no eligible currency for a priced item")
)

// MaxExhaustiveCombinations bounds the exact search; larger purchases are
// planned greedily.
const MaxExhaustiveCombinations = 4096

// Stage is a step of the settlement state machine.
type Stage string

const (
	StageRequested     Stage = "requested"
	StagePriceResolved Stage = "price_resolved"
	StageFundsReserved Stage = "funds_reserved"
	StageItemsGranted  Stage = "items_granted"
	StageCommitted     Stage = "committed"
	StageRejected      Stage = "rejected"
)

func (s Stage) String() string {
	return string(s)
}
