package importer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"
)

const (
	colName        = "name"
	colDescription = "description"
	colAppIDs      = "appIds"
	colTags        = "tags"
	colImageURL    = "imageUrl"
	colTime        = "time"
	colProperties  = "properties"
	colItemIDs     = "itemIds"
	colPrices      = "prices"
)

var requiredColumns = []string{colName, colItemIDs}

var timeKeys = []string{"start", "end", "intervalDuration", "intervalDelay"}

type Price struct {
	ItemID   string `json:"itemId"`
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

// OfferInput is one CSV row decoded into API payloads. Time and Properties
// stay raw so they reach the server exactly as written.
type OfferInput struct {
	Name        string
	Description string
	AppIDs      []string
	Tags        []string
	ImageURL    string
	Time        json.RawMessage
	Properties  json.RawMessage
	ItemIDs     []string
	Prices      []Price
}

// Row carries either a decoded offer or the reason the line was rejected.
type Row struct {
	Line  int
	Offer OfferInput
	Err   error
}

// ReadRows decodes every data line of r. Malformed rows come back with Err
// set; only a missing or broken header fails the whole read.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("csv has no header")
		}
		return nil, errors.Wrap(err, "read csv header")
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, errors.Newf("csv header is missing column %q", col)
		}
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				rows = append(rows, Row{Line: perr.StartLine, Err: err})
				continue
			}
			return rows, errors.Wrap(err, "read csv")
		}
		if isBlank(record) {
			continue
		}
		line, _ := cr.FieldPos(0)
		in, err := decodeRecord(record, index)
		rows = append(rows, Row{Line: line, Offer: in, Err: err})
	}
	return rows, nil
}

func decodeRecord(record []string, index map[string]int) (OfferInput, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	in := OfferInput{
		Name:        field(colName),
		Description: field(colDescription),
		ImageURL:    field(colImageURL),
	}
	if in.Name == "" {
		return in, errors.New("name is required")
	}

	var err error
	if in.AppIDs, err = stringList(colAppIDs, field(colAppIDs)); err != nil {
		return in, err
	}
	if in.Tags, err = stringList(colTags, field(colTags)); err != nil {
		return in, err
	}
	if in.ItemIDs, err = stringList(colItemIDs, field(colItemIDs)); err != nil {
		return in, err
	}
	if len(in.ItemIDs) == 0 {
		return in, errors.New("itemIds must list at least one item")
	}
	if in.Prices, err = priceList(field(colPrices)); err != nil {
		return in, err
	}
	if in.Time, err = timeObject(field(colTime)); err != nil {
		return in, err
	}
	if raw := field(colProperties); raw != "" {
		if !gjson.Valid(raw) {
			return in, errors.New("properties is not valid JSON")
		}
		in.Properties = json.RawMessage(raw)
	}
	return in, nil
}

func stringList(col, raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	if !gjson.Valid(raw) {
		return nil, errors.Newf("%s is not valid JSON", col)
	}
	parsed := gjson.Parse(raw)
	if !parsed.IsArray() {
		return nil, errors.Newf("%s must be a JSON array", col)
	}
	var out []string
	var bad error
	parsed.ForEach(func(_, v gjson.Result) bool {
		if v.Type != gjson.String || v.Str == "" {
			bad = errors.Newf("%s must contain non-empty strings", col)
			return false
		}
		out = append(out, v.Str)
		return true
	})
	return out, bad
}

func priceList(raw string) ([]Price, error) {
	if raw == "" {
		return nil, nil
	}
	if !gjson.Valid(raw) || !gjson.Parse(raw).IsArray() {
		return nil, errors.New("prices must be a JSON array")
	}
	var out []Price
	var bad error
	gjson.Parse(raw).ForEach(func(_, v gjson.Result) bool {
		p := Price{
			ItemID:   v.Get("itemId").String(),
			Currency: v.Get("currency").String(),
			Amount:   v.Get("amount").Int(),
		}
		switch {
		case p.ItemID == "" || p.Currency == "":
			bad = errors.Newf("price %d needs itemId and currency", len(out))
		case v.Get("amount").Type != gjson.Number || p.Amount < 0:
			bad = errors.Newf("price %d needs a non-negative amount", len(out))
		}
		if bad != nil {
			return false
		}
		out = append(out, p)
		return true
	})
	return out, bad
}

func timeObject(raw string) (json.RawMessage, error) {
	if raw == "" {
		return nil, nil
	}
	if !gjson.Valid(raw) || !gjson.Parse(raw).IsObject() {
		return nil, errors.New("time must be a JSON object")
	}
	for _, key := range timeKeys {
		v := gjson.Get(raw, key)
		if v.Exists() && v.Type != gjson.Null && v.Type != gjson.Number {
			return nil, errors.Newf("time.%s must be a number", key)
		}
	}
	return json.RawMessage(raw), nil
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func (r Row) String() string {
	if r.Err != nil {
		return fmt.Sprintf("line %d: %v", r.Line, r.Err)
	}
	return fmt.Sprintf("line %d: %s", r.Line, r.Offer.Name)
}
