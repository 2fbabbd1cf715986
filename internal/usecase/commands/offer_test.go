//go:build unit

package commands_test

import (
	"context"
	"testing"

	"store-offers-api/internal/domain/access"
	"store-offers-api/internal/domain/offer"
	"store-offers-api/internal/pkg/clock"
	"store-offers-api/internal/pkg/ptr"
	"store-offers-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOfferFixture() (*memStore, commands.OfferCommands, *clock.MockClock) {
	store := newMemStore()
	clk := clock.NewMockClock(testNow)
	return store, commands.NewOfferUseCase(&fakeUoW{store: store}, clk), clk
}

func addRequest() commands.AddOfferRequest {
	return commands.AddOfferRequest{
		AppIDs:      []string{"app1", "app2", "app1"},
		ItemIDs:     []string{"item1", "item2"},
		Name:        "Starter Pack",
		Description: "first purchase bundle",
		Tags:        []string{"starter"},
	}
}

func TestOffer_Add(t *testing.T) {
	ctx := context.Background()
	admin := access.NewActor(uuid.New(), access.RoleAdmin)

	testCases := []struct {
		name      string
		actor     access.Actor
		mutate    func(r *commands.AddOfferRequest)
		expectErr error
	}{
		{name: "success: admin adds an offer", actor: admin},
		{name: "success: no app ids", actor: admin, mutate: func(r *commands.AddOfferRequest) { r.AppIDs = nil }},
		{name: "error: regular user", actor: access.NewActor(uuid.New(), access.RoleUser), expectErr: access.ErrPermissionDenied},
		{name: "error: anonymous", actor: access.Actor{}, expectErr: access.ErrPermissionDenied},
		{name: "error: no items", actor: admin, mutate: func(r *commands.AddOfferRequest) { r.ItemIDs = nil }, expectErr: offer.ErrEmptyItemIDs},
		{name: "error: blank name", actor: admin, mutate: func(r *commands.AddOfferRequest) { r.Name = "  " }, expectErr: offer.ErrBlankName},
		{name: "error: blank tag", actor: admin, mutate: func(r *commands.AddOfferRequest) { r.Tags = []string{""} }, expectErr: offer.ErrBlankTag},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, uc, _ := newOfferFixture()
			req := addRequest()
			if tc.mutate != nil {
				tc.mutate(&req)
			}

			o, err := uc.Add(ctx, tc.actor, req)

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				assert.Empty(t, store.offers)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, o.ID())
			assert.Contains(t, store.offers, o.ID())
			assert.Equal(t, "{}", o.Properties().String())
			assert.Empty(t, o.Prices())
			assert.True(t, o.Time().IsZero())
		})
	}

	t.Run("app ids are deduplicated", func(t *testing.T) {
		_, uc, _ := newOfferFixture()

		o, err := uc.Add(ctx, admin, addRequest())
		require.NoError(t, err)
		assert.Equal(t, []string{"app1", "app2"}, o.AppIDs())
	})
}

func TestOffer_Setters(t *testing.T) {
	ctx := context.Background()
	admin := access.NewActor(uuid.New(), access.RoleAdmin)

	seed := func(t *testing.T) (*memStore, commands.OfferCommands, *clock.MockClock, string) {
		t.Helper()
		store, uc, clk := newOfferFixture()
		o, err := uc.Add(ctx, admin, addRequest())
		require.NoError(t, err)
		return store, uc, clk, o.ID()
	}

	t.Run("SetName updates the name and timestamp", func(t *testing.T) {
		_, uc, clk, id := seed(t)
		clk.Add(1e9)

		o, err := uc.SetName(ctx, admin, id, "Mega Pack")
		require.NoError(t, err)
		assert.Equal(t, "Mega Pack", o.Name())
		assert.True(t, o.UpdatedAt().After(o.CreatedAt()))
	})

	t.Run("SetName rejects blank names", func(t *testing.T) {
		_, uc, _, id := seed(t)

		_, err := uc.SetName(ctx, admin, id, "")
		assert.ErrorIs(t, err, offer.ErrBlankName)
	})

	t.Run("SetDescription and SetImageURL", func(t *testing.T) {
		_, uc, _, id := seed(t)

		o, err := uc.SetDescription(ctx, admin, id, "new text")
		require.NoError(t, err)
		assert.Equal(t, "new text", o.Description())

		o, err = uc.SetImageURL(ctx, admin, id, "https://cdn.example.com/pack.png")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/pack.png", o.ImageURL())
	})

	t.Run("SetTags scopes tags by app id", func(t *testing.T) {
		_, uc, _, id := seed(t)

		o, err := uc.SetTags(ctx, admin, id, commands.SetTagsRequest{Tags: []string{"sale", "new"}, AppID: "app1"})
		require.NoError(t, err)
		assert.Equal(t, []string{"sale_app1", "new_app1"}, o.Tags().Values())
	})

	t.Run("SetPrices replaces the price list", func(t *testing.T) {
		_, uc, _, id := seed(t)
		prices := []offer.Price{{ItemID: "item1", Currency: "gold", Amount: 10}}

		o, err := uc.SetPrices(ctx, admin, id, prices)
		require.NoError(t, err)
		assert.Equal(t, prices, o.Prices().Values())

		_, err = uc.SetPrices(ctx, admin, id, []offer.Price{{ItemID: "item1", Currency: "gold", Amount: -1}})
		assert.ErrorIs(t, err, offer.ErrInvalidPrice)
	})

	t.Run("SetTime validates the window", func(t *testing.T) {
		_, uc, _, id := seed(t)

		o, err := uc.SetTime(ctx, admin, id, commands.SetTimeRequest{Time: offer.TimeInfo{Start: ptr.Of(int64(0)), End: ptr.Of(int64(1000))}})
		require.NoError(t, err)
		assert.Equal(t, int64(1000), *o.Time().End)

		_, err = uc.SetTime(ctx, admin, id, commands.SetTimeRequest{Time: offer.TimeInfo{Start: ptr.Of(int64(1000)), End: ptr.Of(int64(0))}})
		assert.ErrorIs(t, err, offer.ErrInvalidTimeWindow)
	})

	t.Run("SetProperties echoes the stored document", func(t *testing.T) {
		_, uc, _, id := seed(t)

		got, err := uc.SetProperties(ctx, admin, id, `{"color":"red"}`)
		require.NoError(t, err)
		assert.JSONEq(t, `{"color":"red"}`, got)

		_, err = uc.SetProperties(ctx, admin, id, `{broken`)
		assert.ErrorIs(t, err, offer.ErrInvalidProperties)
	})

	t.Run("SetProperties rejects an empty document and keeps the stored one", func(t *testing.T) {
		store, uc, _, id := seed(t)

		_, err := uc.SetProperties(ctx, admin, id, `{"color":"red"}`)
		require.NoError(t, err)

		for _, raw := range []string{"", "  \n"} {
			_, err = uc.SetProperties(ctx, admin, id, raw)
			assert.ErrorIs(t, err, offer.ErrInvalidProperties)
		}

		assert.JSONEq(t, `{"color":"red"}`, store.offers[id].Properties().String())
	})

	t.Run("setters on an unknown offer", func(t *testing.T) {
		_, uc, _, _ := seed(t)

		_, err := uc.SetName(ctx, admin, "missing", "Name")
		assert.ErrorIs(t, err, offer.ErrOfferNotFound)
		_, err = uc.SetProperties(ctx, admin, "missing", "{}")
		assert.ErrorIs(t, err, offer.ErrOfferNotFound)
	})

	t.Run("setters require admin", func(t *testing.T) {
		_, uc, _, id := seed(t)
		user := access.NewActor(uuid.New(), access.RoleUser)

		_, err := uc.SetDescription(ctx, user, id, "x")
		assert.ErrorIs(t, err, access.ErrPermissionDenied)
	})
}

func TestOffer_Delete(t *testing.T) {
	ctx := context.Background()
	admin := access.NewActor(uuid.New(), access.RoleAdmin)
	store, uc, _ := newOfferFixture()

	o, err := uc.Add(ctx, admin, addRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, admin, o.ID()))
	assert.NotContains(t, store.offers, o.ID())

	// deleting again is not an error
	assert.NoError(t, uc.Delete(ctx, admin, o.ID()))
	assert.ErrorIs(t, uc.Delete(ctx, access.Actor{}, o.ID()), access.ErrPermissionDenied)
}
