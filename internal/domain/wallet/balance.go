package wallet

import (
	"sort"
	"strings"

	"store-offers-api/internal/pkg/errs"
)

var (
	ErrInsufficientFunds = errs.Category("balance too low for debit", errs.ErrInsufficientFunds)
	ErrNegativeAmount    = errs.Category("amount must not be negative", errs.ErrValidation)
	ErrBlankCurrency     = errs.Category("currency must not be blank", errs.ErrValidation)
)

// Charge is an amount of one currency taken from a user's balance.
type Charge struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

func NewCharge(currency string, amount int64) (Charge, error) {
	if strings.TrimSpace(currency) == "" {
		return Charge{}, ErrBlankCurrency
	}
	if amount < 0 {
		return Charge{}, ErrNegativeAmount
	}
	return Charge{Currency: currency, Amount: amount}, nil
}

// Balances is a snapshot of one user's holdings keyed by currency.
// A currency is owned when a balance row exists for it, even at zero.
type Balances map[string]int64

func (b Balances) Owns(currency string) bool {
	_, ok := b[currency]
	return ok
}

func (b Balances) Get(currency string) int64 {
	return b[currency]
}

// Owned returns the owned currencies sorted by name.
func (b Balances) Owned() []string {
	out := make([]string, 0, len(b))
	for c := range b {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Covers reports whether every charge fits the balance of its currency.
func (b Balances) Covers(charges []Charge) bool {
	need := make(map[string]int64, len(charges))
	for _, c := range charges {
		need[c.Currency] += c.Amount
	}
	for currency, amount := range need {
		if amount > 0 && b[currency] < amount {
			return false
		}
	}
	return true
}

// Debit subtracts amount from the snapshot. The database debit is the
// authoritative one; this keeps the in-memory view in step with it.
func (b Balances) Debit(currency string, amount int64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	if b[currency] < amount {
		return ErrInsufficientFunds
	}
	b[currency] -= amount
	return nil
}

// SumCharges merges charges per currency, sorted by currency, skipping zero totals.
func SumCharges(charges []Charge) []Charge {
	totals := make(map[string]int64, len(charges))
	for _, c := range charges {
		totals[c.Currency] += c.Amount
	}
	out := make([]Charge, 0, len(totals))
	for currency, amount := range totals {
		if amount == 0 {
			continue
		}
		out = append(out, Charge{Currency: currency, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Currency < out[j].Currency })
	return out
}
