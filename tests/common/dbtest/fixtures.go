//go:build unit || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"store-offers-api/internal/domain/offer"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreditBalance sets a wallet balance, creating the row when missing.
func CreditBalance(t *testing.T, db DBLike, userID uuid.UUID, currency string, amount int64) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO wallet_balances (user_id, currency, amount) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, currency) DO UPDATE SET amount = EXCLUDED.amount, updated_at = now()`,
		userID, currency, amount)
	require.NoError(t, err)
}

func BalanceOf(t *testing.T, db DBLike, userID uuid.UUID, currency string) int64 {
	t.Helper()

	var amount int64
	err := db.QueryRow(context.Background(),
		"SELECT amount FROM wallet_balances WHERE user_id = $1 AND currency = $2", userID, currency).Scan(&amount)
	require.NoError(t, err)
	return amount
}

// CreateVirtualItem registers a catalog item with its default prices.
func CreateVirtualItem(t *testing.T, db DBLike, id string, prices ...offer.Price) {
	t.Helper()

	if prices == nil {
		prices = []offer.Price{}
	}
	b, err := json.Marshal(prices)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(),
		"INSERT INTO virtual_items (id, name, prices) VALUES ($1, $2, $3) ON CONFLICT (id) DO UPDATE SET prices = EXCLUDED.prices",
		id, id, b)
	require.NoError(t, err)
}

func CountInventory(t *testing.T, db DBLike, userID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM inventory_items WHERE user_id = $1", userID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountPurchases(t *testing.T, db DBLike, userID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM purchases WHERE user_id = $1", userID).Scan(&n)
	require.NoError(t, err)
	return n
}

// SeedReferenceData inserts the catalog items most purchase tests price against.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO virtual_items (id, name, prices) VALUES
		    ('item1', 'Item 1', '[{"itemId":"item1","currency":"gold","amount":10}]'::jsonb),
		    ('item2', 'Item 2', '[{"itemId":"item2","currency":"gold","amount":5}]'::jsonb)
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

// storeTables lists every table the store schema owns, children first.
var storeTables = []string{
	"inventory_items",
	"purchases",
	"wallet_balances",
	"virtual_items",
	"offers",
}

// ResetDB empties the store tables and reseeds the item catalog.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(storeTables, ", ")+" RESTART IDENTITY CASCADE"); err != nil {
		return fmt.Errorf("truncate store tables: %w", err)
	}
	return SeedReferenceData(pool)
}
