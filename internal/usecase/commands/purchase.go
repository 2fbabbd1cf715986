package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"store-offers-api/internal/domain/access"
	"store-offers-api/internal/domain/offer"
	"store-offers-api/internal/domain/purchase"
	"store-offers-api/internal/infra"
	"store-offers-api/internal/pkg/clock"
	"store-offers-api/internal/pkg/config"
	"store-offers-api/internal/pkg/tracing"
	"store-offers-api/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type PurchaseCommands interface {
	BuyVirtualItems(ctx context.Context, actor access.Actor, req BuyItemsRequest) (*PurchaseResult, error)
	BuyStoreOffer(ctx context.Context, actor access.Actor, req BuyOfferRequest) (*PurchaseResult, error)
}

type purchaseUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	tracer   *tracing.Tracer
	maxItems int
}

func NewPurchaseUseCase(uow shared.UnitOfWork, clk clock.Clock, tracer *tracing.Tracer, cfg config.StoreConfig) PurchaseCommands {
	return &purchaseUseCaseImpl{
		uow:      uow,
		clock:    clk,
		tracer:   tracer,
		maxItems: cfg.MaxPurchaseItems,
	}
}

// settlement carries one purchase through the transaction. itemIDs is nil for
// a whole-offer purchase until the offer has been loaded.
type settlement struct {
	userID     uuid.UUID
	offerID    string
	itemIDs    []string
	currencies []string
	key        string
	span       trace.Span
}

func (uc *purchaseUseCaseImpl) BuyVirtualItems(ctx context.Context, actor access.Actor, req BuyItemsRequest) (*PurchaseResult, error) {
	if err := actor.RequireAuthenticated(); err != nil {
		return nil, err
	}
	if err := purchase.ValidateItemIDs(req.ItemIDs, uc.maxItems); err != nil {
		return nil, err
	}
	if err := purchase.ValidateCurrencies(req.Currencies); err != nil {
		return nil, err
	}

	ctx, span := uc.tracer.StartSpan(ctx, "purchase.BuyVirtualItems", trace.WithAttributes(
		attribute.String("purchase.offer_id", req.OfferID),
		attribute.Int("purchase.item_count", len(req.ItemIDs)),
	))
	defer span.End()

	return uc.settle(ctx, &settlement{
		userID:     actor.UserID(),
		offerID:    req.OfferID,
		itemIDs:    append([]string{}, req.ItemIDs...),
		currencies: req.Currencies,
		key:        req.IdempotencyKey,
		span:       span,
	})
}

func (uc *purchaseUseCaseImpl) BuyStoreOffer(ctx context.Context, actor access.Actor, req BuyOfferRequest) (*PurchaseResult, error) {
	if err := actor.RequireAuthenticated(); err != nil {
		return nil, err
	}
	if req.OfferID == "" {
		return nil, offer.ErrOfferNotFound
	}
	if err := purchase.ValidateCurrencies(req.Currencies); err != nil {
		return nil, err
	}

	ctx, span := uc.tracer.StartSpan(ctx, "purchase.BuyStoreOffer", trace.WithAttributes(
		attribute.String("purchase.offer_id", req.OfferID),
	))
	defer span.End()

	return uc.settle(ctx, &settlement{
		userID:     actor.UserID(),
		offerID:    req.OfferID,
		currencies: req.Currencies,
		key:        req.IdempotencyKey,
		span:       span,
	})
}

func (uc *purchaseUseCaseImpl) settle(ctx context.Context, s *settlement) (*PurchaseResult, error) {
	s.span.AddEvent(purchase.StageRequested.String())

	var result *PurchaseResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil

		// Locking the buyer's balances serialises purchases per user.
		balances, derr := tx.Wallets().LockBalances(ctx, tx.DB(), s.userID)
		if derr != nil {
			return derr
		}

		if s.key != "" {
			prior, derr := tx.Reads().PurchaseByIdempotencyKey(ctx, s.userID, s.key)
			if derr != nil {
				return derr
			}
			if prior != nil {
				if !replayMatches(prior, s.offerID, s.itemIDs) {
					return purchase.ErrKeyReused
				}
				result = replayResult(prior)
				return nil
			}
		}

		itemIDs, prices, derr := uc.resolvePrices(ctx, tx, s)
		if derr != nil {
			return derr
		}

		plan, derr := purchase.PlanPurchase(
			purchase.GroupPrices(itemIDs, prices),
			purchase.EligibleCurrencies(s.currencies, balances),
			balances,
		)
		if errors.Is(derr, purchase.ErrNoEligibleCurrency) {
			s.span.AddEvent(purchase.StageRejected.String())
			result = &PurchaseResult{OfferID: s.offerID, ItemIDs: []string{}}
			return nil
		}
		if derr != nil {
			return derr
		}
		s.span.AddEvent(purchase.StagePriceResolved.String(), trace.WithAttributes(
			attribute.Int64("purchase.total", plan.Total),
		))

		for _, charge := range plan.Charges {
			if derr := tx.Wallets().Debit(ctx, tx.DB(), s.userID, charge); derr != nil {
				return derr
			}
		}
		s.span.AddEvent(purchase.StageFundsReserved.String())

		p := purchase.NewPurchase(uc.clock, s.userID, s.offerID, itemIDs, plan, s.key)
		if derr := tx.Purchases().Create(ctx, tx.DB(), p); derr != nil {
			return derr
		}
		if derr := tx.Inventory().Grant(ctx, tx.DB(), p); derr != nil {
			return derr
		}
		s.span.AddEvent(purchase.StageItemsGranted.String())

		result = &PurchaseResult{
			PurchaseID: p.ID(),
			OfferID:    p.OfferID(),
			ItemIDs:    p.ItemIDs(),
			Charges:    p.Charges(),
		}
		return nil
	})
	if err != nil && s.key != "" && infra.IsKind(err, infra.KindDuplicateKey) {
		// a concurrent request with the same key committed first
		result, err = uc.replayCommitted(ctx, s)
	}
	if err != nil {
		err = uc.mapSettleError(err, s)
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if !result.Rejected() && !result.Replayed {
		s.span.AddEvent(purchase.StageCommitted.String())
		slog.Info("purchase settled",
			"purchase_id", result.PurchaseID.String(),
			"user_id", s.userID.String(),
			"offer_id", result.OfferID,
			"item_count", len(result.ItemIDs))
	}
	return result, nil
}

// resolvePrices returns the items being bought and the price entries that may
// pay for them.
func (uc *purchaseUseCaseImpl) resolvePrices(ctx context.Context, tx shared.Tx, s *settlement) ([]string, []offer.Price, error) {
	if s.offerID != "" {
		snap, err := tx.Reads().OfferByID(ctx, s.offerID)
		if err != nil {
			return nil, nil, err
		}
		o := offer.ReconstructOffer(snap.ID, nil, snap.ItemIDs, "", "", "", nil, snap.Time, snap.Prices, offer.Properties{}, time.Time{}, time.Time{})

		itemIDs := s.itemIDs
		if itemIDs == nil {
			itemIDs = o.ItemIDs()
		}
		if err := o.RequireItems(itemIDs); err != nil {
			return nil, nil, err
		}
		if err := o.RequireAvailableAt(clock.NowMillis(uc.clock)); err != nil {
			return nil, nil, err
		}
		return itemIDs, o.Prices().ForItems(itemIDs), nil
	}

	items, err := tx.Reads().CatalogItems(ctx, s.itemIDs)
	if err != nil {
		return nil, nil, err
	}
	known := make(map[string]struct{}, len(items))
	var prices []offer.Price
	for _, item := range items {
		known[item.ID] = struct{}{}
		prices = append(prices, item.Prices...)
	}
	for _, id := range s.itemIDs {
		if _, ok := known[id]; !ok {
			return nil, nil, purchase.ErrItemNotFound
		}
	}
	return s.itemIDs, prices, nil
}

func (uc *purchaseUseCaseImpl) replayCommitted(ctx context.Context, s *settlement) (*PurchaseResult, error) {
	var result *PurchaseResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		prior, err := tx.Reads().PurchaseByIdempotencyKey(ctx, s.userID, s.key)
		if err != nil {
			return err
		}
		if prior == nil || !replayMatches(prior, s.offerID, s.itemIDs) {
			return purchase.ErrKeyReused
		}
		result = replayResult(prior)
		return nil
	})
	return result, err
}

func (uc *purchaseUseCaseImpl) mapSettleError(err error, s *settlement) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return offer.ErrOfferNotFound
	case s.key != "" && infra.IsKind(err, infra.KindDuplicateKey):
		return purchase.ErrKeyReused
	default:
		return err
	}
}

func replayMatches(prior *shared.PurchaseSnapshot, offerID string, itemIDs []string) bool {
	p := purchase.ReconstructPurchase(prior.ID, prior.UserID, prior.OfferID, prior.ItemIDs, prior.Charges, prior.IdempotencyKey, prior.CreatedAt)
	if itemIDs == nil {
		return p.OfferID() == offerID
	}
	return p.Matches(offerID, itemIDs)
}

func replayResult(prior *shared.PurchaseSnapshot) *PurchaseResult {
	return &PurchaseResult{
		PurchaseID: prior.ID,
		OfferID:    prior.OfferID,
		ItemIDs:    append([]string{}, prior.ItemIDs...),
		Charges:    prior.Charges,
		Replayed:   true,
	}
}
