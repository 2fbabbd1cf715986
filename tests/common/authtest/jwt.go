//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"store-offers-api/internal/domain/access"
	"store-offers-api/internal/pkg/config"
	"store-offers-api/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role access.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := h.service(duration).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) AdminToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, uuid.New(), access.RoleAdmin)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role access.Role) string {
	t.Helper()
	token, err := h.service(-time.Minute).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// ForeignIssuerToken is signed with the right secret by an issuer the API does not trust.
func (h *JWTHelper) ForeignIssuerToken(t *testing.T, userID uuid.UUID, role access.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Hour, jwt.WithIssuer("someone-else")).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) service(d time.Duration) *jwt.Service {
	return jwt.NewService(h.cfg.Secret, d, jwt.WithIssuer(h.cfg.Issuer))
}
