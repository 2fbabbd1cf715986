package commands

import (
	"context"
	"strings"

	"store-offers-api/internal/domain/access"
	"store-offers-api/internal/domain/offer"
	"store-offers-api/internal/infra"
	"store-offers-api/internal/pkg/clock"
	"store-offers-api/internal/usecase/shared"
)

// OfferCommands are the admin-only mutators of the offer store. Each one
// checks the actor before touching storage.
type OfferCommands interface {
	Add(ctx context.Context, actor access.Actor, req AddOfferRequest) (*offer.Offer, error)
	Delete(ctx context.Context, actor access.Actor, id string) error
	SetName(ctx context.Context, actor access.Actor, id, name string) (*offer.Offer, error)
	SetDescription(ctx context.Context, actor access.Actor, id, description string) (*offer.Offer, error)
	SetImageURL(ctx context.Context, actor access.Actor, id, imageURL string) (*offer.Offer, error)
	SetTags(ctx context.Context, actor access.Actor, id string, req SetTagsRequest) (*offer.Offer, error)
	SetPrices(ctx context.Context, actor access.Actor, id string, prices []offer.Price) (*offer.Offer, error)
	SetTime(ctx context.Context, actor access.Actor, id string, req SetTimeRequest) (*offer.Offer, error)
	// SetProperties stores raw verbatim and echoes the stored document.
	SetProperties(ctx context.Context, actor access.Actor, id, raw string) (string, error)
}

type offerUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOfferUseCase(uow shared.UnitOfWork, clk clock.Clock) OfferCommands {
	return &offerUseCaseImpl{uow: uow, clock: clk}
}

func (uc *offerUseCaseImpl) Add(ctx context.Context, actor access.Actor, req AddOfferRequest) (*offer.Offer, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	o, err := offer.NewOffer(uc.clock, req.AppIDs, req.ItemIDs, req.Name, req.Description, req.Tags)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Offers().Create(ctx, tx.DB(), o)
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (uc *offerUseCaseImpl) Delete(ctx context.Context, actor access.Actor, id string) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Offers().Delete(ctx, tx.DB(), id)
	})
}

func (uc *offerUseCaseImpl) SetName(ctx context.Context, actor access.Actor, id, name string) (*offer.Offer, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	validName, err := offer.NewName(name)
	if err != nil {
		return nil, err
	}
	return uc.update(ctx, func(ctx context.Context, tx shared.Tx) (*offer.Offer, error) {
		return tx.Offers().UpdateName(ctx, tx.DB(), id, validName, uc.clock.Now())
	})
}

func (uc *offerUseCaseImpl) SetDescription(ctx context.Context, actor access.Actor, id, description string) (*offer.Offer, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	return uc.update(ctx, func(ctx context.Context, tx shared.Tx) (*offer.Offer, error) {
		return tx.Offers().UpdateDescription(ctx, tx.DB(), id, description, uc.clock.Now())
	})
}

func (uc *offerUseCaseImpl) SetImageURL(ctx context.Context, actor access.Actor, id, imageURL string) (*offer.Offer, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	return uc.update(ctx, func(ctx context.Context, tx shared.Tx) (*offer.Offer, error) {
		return tx.Offers().UpdateImageURL(ctx, tx.DB(), id, imageURL, uc.clock.Now())
	})
}

func (uc *offerUseCaseImpl) SetTags(ctx context.Context, actor access.Actor, id string, req SetTagsRequest) (*offer.Offer, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	tags, err := offer.NewTags(req.Tags, req.AppID)
	if err != nil {
		return nil, err
	}
	return uc.update(ctx, func(ctx context.Context, tx shared.Tx) (*offer.Offer, error) {
		return tx.Offers().UpdateTags(ctx, tx.DB(), id, tags, uc.clock.Now())
	})
}

func (uc *offerUseCaseImpl) SetPrices(ctx context.Context, actor access.Actor, id string, prices []offer.Price) (*offer.Offer, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	validPrices, err := offer.NewPrices(prices)
	if err != nil {
		return nil, err
	}
	return uc.update(ctx, func(ctx context.Context, tx shared.Tx) (*offer.Offer, error) {
		return tx.Offers().UpdatePrices(ctx, tx.DB(), id, validPrices, uc.clock.Now())
	})
}

func (uc *offerUseCaseImpl) SetTime(ctx context.Context, actor access.Actor, id string, req SetTimeRequest) (*offer.Offer, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	ti, err := offer.NewTimeInfo(req.Time.Start, req.Time.End, req.Time.IntervalDuration, req.Time.IntervalDelay)
	if err != nil {
		return nil, err
	}
	return uc.update(ctx, func(ctx context.Context, tx shared.Tx) (*offer.Offer, error) {
		return tx.Offers().UpdateTime(ctx, tx.DB(), id, ti, uc.clock.Now())
	})
}

func (uc *offerUseCaseImpl) SetProperties(ctx context.Context, actor access.Actor, id, raw string) (string, error) {
	if err := actor.RequireAdmin(); err != nil {
		return "", err
	}
	// empty is not a document
	if strings.TrimSpace(raw) == "" {
		return "", offer.ErrInvalidProperties
	}
	props, err := offer.NewProperties(raw)
	if err != nil {
		return "", err
	}
	updated, err := uc.update(ctx, func(ctx context.Context, tx shared.Tx) (*offer.Offer, error) {
		return tx.Offers().UpdateProperties(ctx, tx.DB(), id, props, uc.clock.Now())
	})
	if err != nil {
		return "", err
	}
	return updated.Properties().String(), nil
}

// update runs a single-field write and maps a missing row to ErrOfferNotFound.
func (uc *offerUseCaseImpl) update(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) (*offer.Offer, error)) (*offer.Offer, error) {
	var updated *offer.Offer
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, derr := fn(ctx, tx)
		if derr != nil {
			return derr
		}
		updated = o
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, offer.ErrOfferNotFound
		}
		return nil, err
	}
	return updated, nil
}
