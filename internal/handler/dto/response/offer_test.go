//go:build unit

package response_test

import (
	"encoding/json"
	"testing"

	resdto "store-offers-api/internal/handler/dto/response"
	"store-offers-api/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromOfferViews(t *testing.T) {
	t.Run("maps views and fills empty collections", func(t *testing.T) {
		start := int64(1000)
		views := []*queries.OfferView{{
			ID:         "offer-1",
			ItemIDs:    []string{"sword"},
			Time:       queries.TimeView{Start: &start},
			Prices:     []queries.PriceView{{ItemID: "sword", Currency: "gold", Amount: 10}},
			Properties: `{"rarity":"epic"}`,
		}}

		res, err := resdto.FromOfferViews(views)
		require.NoError(t, err)
		require.Len(t, res, 1)

		got := res[0]
		assert.Equal(t, "offer-1", got.ID)
		assert.Equal(t, []string{}, got.AppIDs)
		assert.Equal(t, []string{}, got.Tags)
		assert.Equal(t, &start, got.Time.Start)
		assert.JSONEq(t, `{"rarity":"epic"}`, string(got.Properties))
		if diff := cmp.Diff([]resdto.PriceResponse{{ItemID: "sword", Currency: "gold", Amount: 10}}, got.Prices); diff != "" {
			t.Errorf("prices mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty properties fall back to the default object", func(t *testing.T) {
		res, err := resdto.FromOfferView(&queries.OfferView{ID: "offer-1"})
		require.NoError(t, err)
		assert.True(t, json.Valid(res.Properties))
	})

	t.Run("mapping failure is returned", func(t *testing.T) {
		res, err := resdto.FromOfferViews([]*queries.OfferView{nil})
		assert.Error(t, err)
		assert.Nil(t, res)
	})
}
