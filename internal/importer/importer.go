package importer

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

// OfferAPI is the subset of the store API an import drives.
type OfferAPI interface {
	AddOffer(ctx context.Context, in OfferInput) (string, error)
	SetImageURL(ctx context.Context, offerID, imageURL string) error
	SetTime(ctx context.Context, offerID string, timeInfo json.RawMessage) error
	SetProperties(ctx context.Context, offerID string, properties json.RawMessage) error
	SetPrices(ctx context.Context, offerID string, prices []Price) error
}

type Result struct {
	Line    int
	Name    string
	OfferID string
	Err     error
}

func (r Result) Failed() bool {
	return r.Err != nil
}

type Importer struct {
	api OfferAPI
	log *logrus.Logger
}

func New(api OfferAPI, log *logrus.Logger) *Importer {
	return &Importer{api: api, log: log}
}

// Run creates one offer per valid row and keeps going past failures. A row
// whose follow-up setter fails still reports the id that was created.
func (im *Importer) Run(ctx context.Context, rows []Row) []Result {
	results := make([]Result, 0, len(rows))
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			results = append(results, Result{Line: row.Line, Name: row.Offer.Name, Err: err})
			continue
		}
		res := im.importRow(ctx, row)
		if res.Failed() {
			im.log.WithFields(logrus.Fields{"line": res.Line, "offer": res.OfferID}).Errorf("import failed: %v", res.Err)
		} else {
			im.log.WithFields(logrus.Fields{"line": res.Line, "offer": res.OfferID}).Infof("imported %q", res.Name)
		}
		results = append(results, res)
	}
	return results
}

func (im *Importer) importRow(ctx context.Context, row Row) Result {
	res := Result{Line: row.Line, Name: row.Offer.Name}
	if row.Err != nil {
		res.Err = row.Err
		return res
	}
	in := row.Offer

	id, err := im.api.AddOffer(ctx, in)
	if err != nil {
		res.Err = errors.Wrap(err, "add offer")
		return res
	}
	res.OfferID = id

	if in.ImageURL != "" {
		if err := im.api.SetImageURL(ctx, id, in.ImageURL); err != nil {
			res.Err = errors.Wrap(err, "set image url")
			return res
		}
	}
	if len(in.Time) > 0 {
		if err := im.api.SetTime(ctx, id, in.Time); err != nil {
			res.Err = errors.Wrap(err, "set time")
			return res
		}
	}
	if len(in.Properties) > 0 {
		if err := im.api.SetProperties(ctx, id, in.Properties); err != nil {
			res.Err = errors.Wrap(err, "set properties")
			return res
		}
	}
	if len(in.Prices) > 0 {
		if err := im.api.SetPrices(ctx, id, in.Prices); err != nil {
			res.Err = errors.Wrap(err, "set prices")
			return res
		}
	}
	return res
}

// CountFailed reports how many results carry an error.
func CountFailed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Failed() {
			n++
		}
	}
	return n
}
