package queries

import (
	"context"
	"strings"
	"time"

	"store-offers-api/internal/infra"
	"store-offers-api/internal/pkg/config"
	"store-offers-api/internal/pkg/errs"
)

var (
	ErrOfferNotFound     = errs.Category("offer not found", errs.ErrNotFound)
	ErrEmptyFilter       = errs.Category("query filter must contain at least one value", errs.ErrValidation)
	ErrBlankFilterValue  = errs.Category("query filter values must not be blank", errs.ErrValidation)
	ErrTooManyFilterVals = errs.Category("query filter has too many values", errs.ErrValidation)
	ErrBlankAppID        = errs.Category("app id is required", errs.ErrValidation)
	ErrNegativeSince     = errs.Category("since must not be negative", errs.ErrValidation)
)

type OfferReadStore interface {
	FindByIDs(ctx context.Context, ids []string) ([]*OfferView, error)
	FindByTags(ctx context.Context, tags []string) ([]*OfferView, error)
	FindByAppIDs(ctx context.Context, appIDs []string, limit int32) ([]*OfferView, error)
	FindUpdatedSince(ctx context.Context, appID string, since time.Time) ([]*OfferView, error)
	FindTags(ctx context.Context, id string) ([]string, error)
	FindProperties(ctx context.Context, id string) (string, error)
}

type OfferQueries interface {
	GetByIDs(ctx context.Context, ids []string) ([]*OfferView, error)
	GetByTags(ctx context.Context, tags []string) ([]*OfferView, error)
	GetByAppIDs(ctx context.Context, appIDs []string, limit int) ([]*OfferView, error)
	// GetByTimestamp returns offers of appID updated at or after sinceMillis (Unix ms).
	GetByTimestamp(ctx context.Context, appID string, sinceMillis int64) ([]*OfferView, error)
	GetTags(ctx context.Context, id string) ([]string, error)
	GetProperties(ctx context.Context, id string) (string, error)
}

type offerQueriesImpl struct {
	repo      OfferReadStore
	maxFilter int
}

func NewOfferQueries(repo OfferReadStore, cfg config.StoreConfig) OfferQueries {
	return &offerQueriesImpl{repo: repo, maxFilter: cfg.MaxQueryIDs}
}

func (q *offerQueriesImpl) GetByIDs(ctx context.Context, ids []string) ([]*OfferView, error) {
	filter, err := q.normalizeFilter(ids)
	if err != nil {
		return nil, err
	}
	rows, err := q.repo.FindByIDs(ctx, filter)
	if err != nil {
		return nil, err
	}
	return uniqueByID(rows), nil
}

func (q *offerQueriesImpl) GetByTags(ctx context.Context, tags []string) ([]*OfferView, error) {
	filter, err := q.normalizeFilter(tags)
	if err != nil {
		return nil, err
	}
	rows, err := q.repo.FindByTags(ctx, filter)
	if err != nil {
		return nil, err
	}
	return uniqueByID(rows), nil
}

func (q *offerQueriesImpl) GetByAppIDs(ctx context.Context, appIDs []string, limit int) ([]*OfferView, error) {
	filter, err := q.normalizeFilter(appIDs)
	if err != nil {
		return nil, err
	}
	limit = ValidateLimit(limit)
	rows, err := q.repo.FindByAppIDs(ctx, filter, int32(limit))
	if err != nil {
		return nil, err
	}
	return uniqueByID(rows), nil
}

func (q *offerQueriesImpl) GetByTimestamp(ctx context.Context, appID string, sinceMillis int64) ([]*OfferView, error) {
	if strings.TrimSpace(appID) == "" {
		return nil, ErrBlankAppID
	}
	if sinceMillis < 0 {
		return nil, ErrNegativeSince
	}
	rows, err := q.repo.FindUpdatedSince(ctx, appID, time.UnixMilli(sinceMillis))
	if err != nil {
		return nil, err
	}
	return uniqueByID(rows), nil
}

func (q *offerQueriesImpl) GetTags(ctx context.Context, id string) ([]string, error) {
	tags, err := q.repo.FindTags(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	return tags, nil
}

func (q *offerQueriesImpl) GetProperties(ctx context.Context, id string) (string, error) {
	props, err := q.repo.FindProperties(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrOfferNotFound
		}
		return "", err
	}
	if props == "" {
		return "{}", nil
	}
	return props, nil
}

// normalizeFilter rejects empty or blank filters and drops repeated values.
func (q *offerQueriesImpl) normalizeFilter(values []string) ([]string, error) {
	if len(values) == 0 {
		return nil, ErrEmptyFilter
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return nil, ErrBlankFilterValue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if q.maxFilter > 0 && len(out) > q.maxFilter {
		return nil, ErrTooManyFilterVals
	}
	return out, nil
}

func uniqueByID(rows []*OfferView) []*OfferView {
	seen := make(map[string]struct{}, len(rows))
	out := make([]*OfferView, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}
	return out
}
