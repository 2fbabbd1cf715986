package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"store-offers-api/internal/domain/offer"
	"store-offers-api/internal/domain/wallet"
	"store-offers-api/internal/infra"
	"store-offers-api/internal/infra/readstore"
	"store-offers-api/internal/infra/repository"
	sqlc "store-offers-api/internal/infra/sqlc/generated"
	"store-offers-api/internal/pkg/errs"
	"store-offers-api/internal/usecase/queries"
	"store-offers-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	defaultMaxRetries  = 3
	defaultBaseBackoff = 100 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// PostgresUoW runs write use cases in READ COMMITTED transactions. Purchases
// serialise on their wallet rows with SELECT ... FOR UPDATE, so the only
// retryable failures are deadlocks and serialization errors.
type PostgresUoW struct {
	pool        *pgxpool.Pool
	q           *sqlc.Queries
	maxRetries  int
	baseBackoff time.Duration
}

type Option func(*PostgresUoW)

func WithRetries(maxRetries int, baseBackoff time.Duration) Option {
	return func(u *PostgresUoW) {
		u.maxRetries = maxRetries
		u.baseBackoff = baseBackoff
	}
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return New(pool, q)
}

func New(pool *pgxpool.Pool, q *sqlc.Queries, opts ...Option) *PostgresUoW {
	u := &PostgresUoW{
		pool:        pool,
		q:           q,
		maxRetries:  defaultMaxRetries,
		baseBackoff: defaultBaseBackoff,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Within commits when fn returns nil and rolls back otherwise. fn may run
// more than once, so it must not have side effects outside tx.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	options := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	for attempt := 0; ; attempt++ {
		err := u.runOnce(ctx, options, fn)
		if err == nil {
			return nil
		}
		if !isRetryableError(err) {
			return err
		}
		if attempt >= u.maxRetries {
			slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		wait := backoff(attempt, u.baseBackoff)
		slog.Warn("retrying transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// runOnce keeps the rollback defer scoped to a single attempt.
func (u *PostgresUoW) runOnce(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rbErr.Error())
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

// backoff doubles per attempt with up to 20% jitter.
func backoff(attempt int, base time.Duration) time.Duration {
	wait := time.Duration(1<<attempt) * base
	if jitter := int64(wait / 5); jitter > 0 {
		wait += time.Duration(rand.Int64N(jitter))
	}
	return wait
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	offerRepo     shared.OfferRepository
	walletRepo    shared.WalletRepository
	inventoryRepo shared.InventoryRepository
	purchaseRepo  shared.PurchaseRepository
	commandReads  shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Offers() shared.OfferRepository {
	if t.offerRepo == nil {
		t.offerRepo = repository.NewOfferRepository(t.uow.q, t.dbtx)
	}
	return t.offerRepo
}

func (t *pgTx) Wallets() shared.WalletRepository {
	if t.walletRepo == nil {
		t.walletRepo = repository.NewWalletRepository(t.uow.q, t.dbtx)
	}
	return t.walletRepo
}

func (t *pgTx) Inventory() shared.InventoryRepository {
	if t.inventoryRepo == nil {
		t.inventoryRepo = repository.NewInventoryRepository(t.uow.q, t.dbtx)
	}
	return t.inventoryRepo
}

func (t *pgTx) Purchases() shared.PurchaseRepository {
	if t.purchaseRepo == nil {
		t.purchaseRepo = repository.NewPurchaseRepository(t.uow.q, t.dbtx)
	}
	return t.purchaseRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	offerStore    *readstore.OfferReadStore
	catalogStore  *readstore.CatalogReadStore
	purchaseStore *readstore.PurchaseReadStore
}

func (r *commandReads) OfferByID(ctx context.Context, id string) (*shared.OfferSnapshot, error) {
	if r.offerStore == nil {
		r.offerStore = readstore.NewOfferReadStore(r.uow.q, r.dbtx)
	}

	view, err := r.offerStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.OfferSnapshot{
		ID:      view.ID,
		ItemIDs: view.ItemIDs,
		Prices:  toDomainPrices(view.Prices),
		Time: offer.TimeInfo{
			Start:            view.Time.Start,
			End:              view.Time.End,
			IntervalDuration: view.Time.IntervalDuration,
			IntervalDelay:    view.Time.IntervalDelay,
		},
	}
	return snapshot, nil
}

func (r *commandReads) CatalogItems(ctx context.Context, ids []string) ([]shared.CatalogItemSnapshot, error) {
	if r.catalogStore == nil {
		r.catalogStore = readstore.NewCatalogReadStore(r.uow.q, r.dbtx)
	}

	items, err := r.catalogStore.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	snapshots := make([]shared.CatalogItemSnapshot, 0, len(items))
	for _, item := range items {
		snapshots = append(snapshots, shared.CatalogItemSnapshot{
			ID:     item.ID,
			Prices: toDomainPrices(item.Prices),
		})
	}
	return snapshots, nil
}

func (r *commandReads) PurchaseByIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) (*shared.PurchaseSnapshot, error) {
	if r.purchaseStore == nil {
		r.purchaseStore = readstore.NewPurchaseReadStore(r.uow.q, r.dbtx)
	}

	view, err := r.purchaseStore.FindByIdempotencyKey(ctx, userID, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}

	charges := make([]wallet.Charge, 0, len(view.Charges))
	for _, c := range view.Charges {
		charges = append(charges, wallet.Charge{Currency: c.Currency, Amount: c.Amount})
	}
	snapshot := &shared.PurchaseSnapshot{
		ID:             view.ID,
		UserID:         view.UserID,
		OfferID:        view.OfferID,
		ItemIDs:        view.ItemIDs,
		Charges:        charges,
		IdempotencyKey: view.IdempotencyKey,
		CreatedAt:      view.CreatedAt,
	}
	return snapshot, nil
}

func toDomainPrices(views []queries.PriceView) []offer.Price {
	prices := make([]offer.Price, 0, len(views))
	for _, p := range views {
		prices = append(prices, offer.Price{ItemID: p.ItemID, Currency: p.Currency, Amount: p.Amount})
	}
	return prices
}
