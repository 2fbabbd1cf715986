package purchase

import (
	"math"
	"sort"

	"store-offers-api/internal/domain/offer"
	"store-offers-api/internal/domain/wallet"
)

// Candidate is one way of paying for an item.
type Candidate struct {
	Currency string
	Amount   int64
}

// ItemPricing holds the alternatives for one requested item position.
// An empty Candidates slice means the item is free.
type ItemPricing struct {
	ItemID     string
	Candidates []Candidate
}

func (p ItemPricing) Priced() bool {
	return len(p.Candidates) > 0
}

// Selection is the candidate chosen for a priced item.
type Selection struct {
	ItemID   string
	Currency string
	Amount   int64
}

type Plan struct {
	Selections []Selection
	Charges    []wallet.Charge
	Total      int64
}

// GroupPrices builds one ItemPricing per requested item, in request order.
// Entries for the same currency collapse to the cheapest one.
func GroupPrices(itemIDs []string, prices []offer.Price) []ItemPricing {
	byItem := make(map[string]map[string]int64, len(itemIDs))
	for _, p := range prices {
		cands, ok := byItem[p.ItemID]
		if !ok {
			cands = make(map[string]int64)
			byItem[p.ItemID] = cands
		}
		if cur, seen := cands[p.Currency]; !seen || p.Amount < cur {
			cands[p.Currency] = p.Amount
		}
	}

	out := make([]ItemPricing, 0, len(itemIDs))
	for _, id := range itemIDs {
		cands := make([]Candidate, 0, len(byItem[id]))
		for currency, amount := range byItem[id] {
			cands = append(cands, Candidate{Currency: currency, Amount: amount})
		}
		sortByCurrency(cands)
		out = append(out, ItemPricing{ItemID: id, Candidates: cands})
	}
	return out
}

// EligibleCurrencies intersects the requested currencies with the owned ones.
// A nil request means every owned currency.
func EligibleCurrencies(requested []string, balances wallet.Balances) map[string]struct{} {
	out := make(map[string]struct{}, len(balances))
	if requested == nil {
		for c := range balances {
			out[c] = struct{}{}
		}
		return out
	}
	for _, c := range requested {
		if balances.Owns(c) {
			out[c] = struct{}{}
		}
	}
	return out
}

// PlanPurchase picks one candidate per priced item so that the total amount is
// minimal and every per-currency sum fits the balances. Among equal totals the
// currency sequence (in item order) that sorts first wins.
//
// Returns ErrNoEligibleCurrency when a priced item has no eligible candidate and
// wallet.ErrInsufficientFunds when no combination fits.
func PlanPurchase(items []ItemPricing, eligible map[string]struct{}, balances wallet.Balances) (*Plan, error) {
	priced := make([]ItemPricing, 0, len(items))
	combinations := 1
	for _, item := range items {
		if !item.Priced() {
			continue
		}
		cands := make([]Candidate, 0, len(item.Candidates))
		for _, c := range item.Candidates {
			if _, ok := eligible[c.Currency]; ok {
				cands = append(cands, c)
			}
		}
		if len(cands) == 0 {
			return nil, ErrNoEligibleCurrency
		}
		sortByCurrency(cands)
		priced = append(priced, ItemPricing{ItemID: item.ItemID, Candidates: cands})
		if combinations <= MaxExhaustiveCombinations {
			combinations *= len(cands)
		}
	}

	var chosen []Candidate
	if combinations > MaxExhaustiveCombinations {
		chosen = planGreedy(priced, balances)
	} else {
		chosen = planExhaustive(priced, balances)
	}
	if chosen == nil {
		return nil, wallet.ErrInsufficientFunds
	}
	return newPlan(priced, chosen), nil
}

type searchState struct {
	items    []ItemPricing
	balances wallet.Balances
	spent    map[string]int64
	current  []Candidate
	best     []Candidate
	bestSum  int64
}

func planExhaustive(items []ItemPricing, balances wallet.Balances) []Candidate {
	s := &searchState{
		items:    items,
		balances: balances,
		spent:    make(map[string]int64),
		current:  make([]Candidate, 0, len(items)),
	}
	s.search(0, 0)
	return s.best
}

// search walks candidates in currency order, so the first combination found
// at a given total is also the lexicographically smallest one.
func (s *searchState) search(i int, total int64) {
	if s.best != nil && total >= s.bestSum {
		return
	}
	if i == len(s.items) {
		s.best = append([]Candidate{}, s.current...)
		s.bestSum = total
		return
	}
	for _, c := range s.items[i].Candidates {
		if !fits(s.spent[c.Currency], c.Amount, s.balances.Get(c.Currency)) {
			continue
		}
		s.spent[c.Currency] += c.Amount
		s.current = append(s.current, c)

		s.search(i+1, addCapped(total, c.Amount))

		s.current = s.current[:len(s.current)-1]
		s.spent[c.Currency] -= c.Amount
	}
}

func planGreedy(items []ItemPricing, balances wallet.Balances) []Candidate {
	spent := make(map[string]int64)
	chosen := make([]Candidate, 0, len(items))
	for _, item := range items {
		cands := append([]Candidate{}, item.Candidates...)
		sort.Slice(cands, func(i, j int) bool {
			if cands[i].Amount != cands[j].Amount {
				return cands[i].Amount < cands[j].Amount
			}
			return cands[i].Currency < cands[j].Currency
		})
		picked := false
		for _, c := range cands {
			if fits(spent[c.Currency], c.Amount, balances.Get(c.Currency)) {
				spent[c.Currency] += c.Amount
				chosen = append(chosen, c)
				picked = true
				break
			}
		}
		if !picked {
			return nil
		}
	}
	return chosen
}

func newPlan(items []ItemPricing, chosen []Candidate) *Plan {
	plan := &Plan{Selections: make([]Selection, 0, len(chosen))}
	charges := make([]wallet.Charge, 0, len(chosen))
	for i, c := range chosen {
		plan.Selections = append(plan.Selections, Selection{ItemID: items[i].ItemID, Currency: c.Currency, Amount: c.Amount})
		charges = append(charges, wallet.Charge{Currency: c.Currency, Amount: c.Amount})
		plan.Total = addCapped(plan.Total, c.Amount)
	}
	plan.Charges = wallet.SumCharges(charges)
	return plan
}

// fits reports whether amount more can be spent in a currency. spent never
// exceeds balance, so the subtraction cannot wrap.
func fits(spent, amount, balance int64) bool {
	return amount >= 0 && amount <= balance-spent
}

// addCapped sums amounts of different currencies, saturating at MaxInt64.
func addCapped(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

func sortByCurrency(cands []Candidate) {
	sort.Slice(cands, func(i, j int) bool { return cands[i].Currency < cands[j].Currency })
}
