package offer

import (
	"strings"

	"github.com/tidwall/gjson"
)

const DefaultProperties = "{}"

// Tags keep caller order and duplicates.
type Tags []string

// NewTags validates tags and, when appID is set, scopes each one as "{tag}_{appID}".
func NewTags(tags []string, appID string) (Tags, error) {
	out := make(Tags, 0, len(tags))
	for _, t := range tags {
		if strings.TrimSpace(t) == "" {
			return nil, ErrBlankTag
		}
		if appID != "" {
			t = ScopedTag(t, appID)
		}
		out = append(out, t)
	}
	return out, nil
}

func ScopedTag(tag, appID string) string {
	return tag + "_" + appID
}

func (t Tags) Values() []string {
	return append([]string{}, t...)
}

type Price struct {
	ItemID   string `json:"itemId"`
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

func (p Price) Validate() error {
	if strings.TrimSpace(p.ItemID) == "" || strings.TrimSpace(p.Currency) == "" || p.Amount < 0 {
		return ErrInvalidPrice
	}
	return nil
}

// Prices keep caller order. Several entries for one item are alternative
// ways of paying for it.
type Prices []Price

func NewPrices(prices []Price) (Prices, error) {
	out := make(Prices, 0, len(prices))
	for _, p := range prices {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (p Prices) Values() []Price {
	return append([]Price{}, p...)
}

// ForItems returns the entries whose item is in itemIDs, in stored order.
func (p Prices) ForItems(itemIDs []string) Prices {
	wanted := make(map[string]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		wanted[id] = struct{}{}
	}
	out := make(Prices, 0, len(p))
	for _, price := range p {
		if _, ok := wanted[price.ItemID]; ok {
			out = append(out, price)
		}
	}
	return out
}

// TimeInfo is the availability window of an offer. Start and End are Unix
// epoch milliseconds; IntervalDuration and IntervalDelay are milliseconds.
// A nil field means unbounded or no repetition.
type TimeInfo struct {
	Start            *int64 `json:"start,omitempty"`
	End              *int64 `json:"end,omitempty"`
	IntervalDuration *int64 `json:"intervalDuration,omitempty"`
	IntervalDelay    *int64 `json:"intervalDelay,omitempty"`
}

func NewTimeInfo(start, end, intervalDuration, intervalDelay *int64) (TimeInfo, error) {
	ti := TimeInfo{Start: start, End: end, IntervalDuration: intervalDuration, IntervalDelay: intervalDelay}
	if err := ti.Validate(); err != nil {
		return TimeInfo{}, err
	}
	return ti, nil
}

func (t TimeInfo) Validate() error {
	if t.Start != nil && t.End != nil && *t.End < *t.Start {
		return ErrInvalidTimeWindow
	}
	if t.IntervalDuration != nil && *t.IntervalDuration < 0 {
		return ErrInvalidTimeWindow
	}
	if t.IntervalDelay != nil && *t.IntervalDelay < 0 {
		return ErrInvalidTimeWindow
	}
	return nil
}

func (t TimeInfo) IsZero() bool {
	return t.Start == nil && t.End == nil && t.IntervalDuration == nil && t.IntervalDelay == nil
}

// IsAvailableAt reports whether the offer can be bought at nowMillis.
// With a positive IntervalDuration the window repeats: it is open for
// IntervalDuration, then closed for IntervalDelay, counting from Start
// (or the epoch when Start is unset).
func (t TimeInfo) IsAvailableAt(nowMillis int64) bool {
	if t.Start != nil && nowMillis < *t.Start {
		return false
	}
	if t.End != nil && nowMillis > *t.End {
		return false
	}
	if t.IntervalDuration == nil || *t.IntervalDuration <= 0 {
		return true
	}

	var origin, delay int64
	if t.Start != nil {
		origin = *t.Start
	}
	if t.IntervalDelay != nil {
		delay = *t.IntervalDelay
	}
	cycle := *t.IntervalDuration + delay
	elapsed := nowMillis - origin
	if elapsed < 0 {
		return false
	}
	return elapsed%cycle < *t.IntervalDuration
}

// Properties is an opaque JSON document owned by the caller. It is stored
// and returned byte for byte.
type Properties struct {
	raw string
}

func NewProperties(raw string) (Properties, error) {
	if raw == "" {
		return Properties{raw: DefaultProperties}, nil
	}
	if !gjson.Valid(raw) {
		return Properties{}, ErrInvalidProperties
	}
	return Properties{raw: raw}, nil
}

func (p Properties) String() string {
	if p.raw == "" {
		return DefaultProperties
	}
	return p.raw
}
