//go:build unit

package access_test

import (
	"testing"

	"store-offers-api/internal/domain/access"
	"store-offers-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	testCases := []struct {
		in      string
		want    access.Role
		wantErr bool
	}{
		{in: "admin", want: access.RoleAdmin},
		{in: "user", want: access.RoleUser},
		{in: "operator", wantErr: true},
		{in: "", wantErr: true},
		{in: "ADMIN", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := access.NewRole(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, access.ErrInvalidRole)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestActor_RequireAdmin(t *testing.T) {
	testCases := []struct {
		name    string
		actor   access.Actor
		allowed bool
	}{
		{name: "admin is allowed", actor: access.NewActor(uuid.New(), access.RoleAdmin), allowed: true},
		{name: "regular user is denied", actor: access.NewActor(uuid.New(), access.RoleUser)},
		{name: "admin role without user id is denied", actor: access.NewActor(uuid.Nil, access.RoleAdmin)},
		{name: "zero actor is denied", actor: access.Actor{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.actor.RequireAdmin()
			if tc.allowed {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, access.ErrPermissionDenied)
			assert.True(t, errs.Is(err, errs.ErrPermissionDenied))
		})
	}
}

func TestActor_RequireAuthenticated(t *testing.T) {
	assert.NoError(t, access.NewActor(uuid.New(), access.RoleUser).RequireAuthenticated())
	assert.NoError(t, access.NewActor(uuid.New(), access.RoleAdmin).RequireAuthenticated())
	assert.ErrorIs(t, access.Actor{}.RequireAuthenticated(), access.ErrAnonymous)
	assert.ErrorIs(t, access.NewActor(uuid.New(), access.Role("guest")).RequireAuthenticated(), access.ErrAnonymous)
}
