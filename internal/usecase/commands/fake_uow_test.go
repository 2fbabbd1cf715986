//go:build unit

package commands_test

import (
	"context"
	"maps"
	"time"

	"store-offers-api/internal/domain/offer"
	"store-offers-api/internal/domain/purchase"
	"store-offers-api/internal/domain/wallet"
	"store-offers-api/internal/infra"
	sqlc "store-offers-api/internal/infra/sqlc/generated"
	"store-offers-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// memStore backs fakeUoW. Within rolls balances, purchases and inventory
// back when fn fails.
type memStore struct {
	offers    map[string]*offer.Offer
	catalog   map[string][]offer.Price
	balances  map[uuid.UUID]wallet.Balances
	purchases []*purchase.Purchase
	inventory map[uuid.UUID][]string

	debitErr  error
	createErr error
	attempts  int
	// afterRollback simulates a concurrent writer committing between attempts.
	afterRollback func(*memStore)
}

func newMemStore() *memStore {
	return &memStore{
		offers:    make(map[string]*offer.Offer),
		catalog:   make(map[string][]offer.Price),
		balances:  make(map[uuid.UUID]wallet.Balances),
		inventory: make(map[uuid.UUID][]string),
	}
}

type fakeUoW struct {
	store *memStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.store.attempts++
	balances := make(map[uuid.UUID]wallet.Balances, len(u.store.balances))
	for id, b := range u.store.balances {
		balances[id] = maps.Clone(b)
	}
	purchases := append([]*purchase.Purchase{}, u.store.purchases...)
	inventory := maps.Clone(u.store.inventory)

	if err := fn(ctx, &fakeTx{store: u.store}); err != nil {
		u.store.balances = balances
		u.store.purchases = purchases
		u.store.inventory = inventory
		if hook := u.store.afterRollback; hook != nil {
			u.store.afterRollback = nil
			hook(u.store)
		}
		return err
	}
	return nil
}

type fakeTx struct {
	store *memStore
}

func (t *fakeTx) Offers() shared.OfferRepository        { return &fakeOffers{store: t.store} }
func (t *fakeTx) Wallets() shared.WalletRepository      { return &fakeWallets{store: t.store} }
func (t *fakeTx) Inventory() shared.InventoryRepository { return &fakeInventory{store: t.store} }
func (t *fakeTx) Purchases() shared.PurchaseRepository  { return &fakePurchases{store: t.store} }
func (t *fakeTx) Reads() shared.CommandReads            { return &fakeReads{store: t.store} }
func (t *fakeTx) DB() sqlc.DBTX                         { return nil }

type fakeOffers struct {
	store *memStore
}

func (r *fakeOffers) Create(_ context.Context, _ sqlc.DBTX, o *offer.Offer) error {
	if _, ok := r.store.offers[o.ID()]; ok {
		return infra.WrapRepoErr("offer exists", nil, infra.KindDuplicateKey)
	}
	r.store.offers[o.ID()] = o
	return nil
}

func (r *fakeOffers) Delete(_ context.Context, _ sqlc.DBTX, id string) error {
	delete(r.store.offers, id)
	return nil
}

func (r *fakeOffers) modify(id string, at time.Time, set func(o *offer.Offer) *offer.Offer) (*offer.Offer, error) {
	o, ok := r.store.offers[id]
	if !ok {
		return nil, infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	next := set(o)
	next = offer.ReconstructOffer(next.ID(), next.AppIDs(), next.ItemIDs(), next.Name(), next.Description(), next.ImageURL(),
		next.Tags(), next.Time(), next.Prices(), next.Properties(), next.CreatedAt(), at)
	r.store.offers[id] = next
	return next, nil
}

func rebuild(o *offer.Offer, name, description, imageURL string, tags offer.Tags, ti offer.TimeInfo, prices offer.Prices, props offer.Properties) *offer.Offer {
	return offer.ReconstructOffer(o.ID(), o.AppIDs(), o.ItemIDs(), name, description, imageURL, tags, ti, prices, props, o.CreatedAt(), o.UpdatedAt())
}

func (r *fakeOffers) UpdateName(_ context.Context, _ sqlc.DBTX, id, name string, at time.Time) (*offer.Offer, error) {
	return r.modify(id, at, func(o *offer.Offer) *offer.Offer {
		return rebuild(o, name, o.Description(), o.ImageURL(), o.Tags(), o.Time(), o.Prices(), o.Properties())
	})
}

func (r *fakeOffers) UpdateDescription(_ context.Context, _ sqlc.DBTX, id, description string, at time.Time) (*offer.Offer, error) {
	return r.modify(id, at, func(o *offer.Offer) *offer.Offer {
		return rebuild(o, o.Name(), description, o.ImageURL(), o.Tags(), o.Time(), o.Prices(), o.Properties())
	})
}

func (r *fakeOffers) UpdateImageURL(_ context.Context, _ sqlc.DBTX, id, imageURL string, at time.Time) (*offer.Offer, error) {
	return r.modify(id, at, func(o *offer.Offer) *offer.Offer {
		return rebuild(o, o.Name(), o.Description(), imageURL, o.Tags(), o.Time(), o.Prices(), o.Properties())
	})
}

func (r *fakeOffers) UpdateTags(_ context.Context, _ sqlc.DBTX, id string, tags offer.Tags, at time.Time) (*offer.Offer, error) {
	return r.modify(id, at, func(o *offer.Offer) *offer.Offer {
		return rebuild(o, o.Name(), o.Description(), o.ImageURL(), tags, o.Time(), o.Prices(), o.Properties())
	})
}

func (r *fakeOffers) UpdatePrices(_ context.Context, _ sqlc.DBTX, id string, prices offer.Prices, at time.Time) (*offer.Offer, error) {
	return r.modify(id, at, func(o *offer.Offer) *offer.Offer {
		return rebuild(o, o.Name(), o.Description(), o.ImageURL(), o.Tags(), o.Time(), prices, o.Properties())
	})
}

func (r *fakeOffers) UpdateTime(_ context.Context, _ sqlc.DBTX, id string, ti offer.TimeInfo, at time.Time) (*offer.Offer, error) {
	return r.modify(id, at, func(o *offer.Offer) *offer.Offer {
		return rebuild(o, o.Name(), o.Description(), o.ImageURL(), o.Tags(), ti, o.Prices(), o.Properties())
	})
}

func (r *fakeOffers) UpdateProperties(_ context.Context, _ sqlc.DBTX, id string, props offer.Properties, at time.Time) (*offer.Offer, error) {
	return r.modify(id, at, func(o *offer.Offer) *offer.Offer {
		return rebuild(o, o.Name(), o.Description(), o.ImageURL(), o.Tags(), o.Time(), o.Prices(), props)
	})
}

type fakeWallets struct {
	store *memStore
}

func (r *fakeWallets) LockBalances(_ context.Context, _ sqlc.DBTX, userID uuid.UUID) (wallet.Balances, error) {
	return maps.Clone(r.store.balances[userID]), nil
}

func (r *fakeWallets) Debit(_ context.Context, _ sqlc.DBTX, userID uuid.UUID, charge wallet.Charge) error {
	if r.store.debitErr != nil {
		return r.store.debitErr
	}
	b := r.store.balances[userID]
	if b[charge.Currency] < charge.Amount {
		return wallet.ErrInsufficientFunds
	}
	b[charge.Currency] -= charge.Amount
	return nil
}

type fakePurchases struct {
	store *memStore
}

func (r *fakePurchases) Create(_ context.Context, _ sqlc.DBTX, p *purchase.Purchase) error {
	if r.store.createErr != nil {
		return r.store.createErr
	}
	r.store.purchases = append(r.store.purchases, p)
	return nil
}

type fakeInventory struct {
	store *memStore
}

func (r *fakeInventory) Grant(_ context.Context, _ sqlc.DBTX, p *purchase.Purchase) error {
	r.store.inventory[p.UserID()] = append(r.store.inventory[p.UserID()], p.ItemIDs()...)
	return nil
}

type fakeReads struct {
	store *memStore
}

func (r *fakeReads) OfferByID(_ context.Context, id string) (*shared.OfferSnapshot, error) {
	o, ok := r.store.offers[id]
	if !ok {
		return nil, infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return &shared.OfferSnapshot{
		ID:      o.ID(),
		ItemIDs: o.ItemIDs(),
		Prices:  o.Prices().Values(),
		Time:    o.Time(),
	}, nil
}

func (r *fakeReads) CatalogItems(_ context.Context, ids []string) ([]shared.CatalogItemSnapshot, error) {
	var out []shared.CatalogItemSnapshot
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if prices, ok := r.store.catalog[id]; ok {
			out = append(out, shared.CatalogItemSnapshot{ID: id, Prices: prices})
		}
	}
	return out, nil
}

func (r *fakeReads) PurchaseByIdempotencyKey(_ context.Context, userID uuid.UUID, key string) (*shared.PurchaseSnapshot, error) {
	for _, p := range r.store.purchases {
		if p.UserID() == userID && p.IdempotencyKey() == key {
			return &shared.PurchaseSnapshot{
				ID:             p.ID(),
				UserID:         p.UserID(),
				OfferID:        p.OfferID(),
				ItemIDs:        p.ItemIDs(),
				Charges:        p.Charges(),
				IdempotencyKey: p.IdempotencyKey(),
				CreatedAt:      p.CreatedAt(),
			}, nil
		}
	}
	return nil, nil
}
