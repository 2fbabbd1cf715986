package offer

import "store-offers-api/internal/pkg/errs"

var (
	ErrOfferNotFound = errs.Category("store offer not found", errs.ErrNotFound)

	ErrEmptyItemIDs      = errs.Category("offer must grant at least one item", errs.ErrValidation)
	ErrBlankItemID       = errs.Category("item id must not be blank", errs.ErrValidation)
	ErrBlankAppID        = errs.Category("app id must not be blank", errs.ErrValidation)
	ErrBlankName         = errs.Category("offer name must not be blank", errs.ErrValidation)
	ErrNameTooLong       = errs.Category("offer name exceeds maximum length", errs.ErrValidation)
	ErrBlankTag          = errs.Category("tag must not be blank", errs.ErrValidation)
	ErrInvalidPrice      = errs.Category("price entry is invalid", errs.ErrValidation)
	ErrInvalidTimeWindow = errs.Category("time window is invalid", errs.ErrValidation)
	ErrInvalidProperties = errs.Category("properties must be a JSON document", errs.ErrValidation)
	ErrItemNotInOffer    = errs.Category("requested item is not part of the offer", errs.ErrValidation)
	ErrOfferUnavailable  = errs.Category("offer is not available at this time", errs.ErrValidation)
)

const MaxNameLength = 200
