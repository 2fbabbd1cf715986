//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"store-offers-api/internal/domain/access"
	"store-offers-api/internal/handler/httperr"
	"store-offers-api/internal/handler/middleware"
	"store-offers-api/internal/pkg/config"
	"store-offers-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	actor access.Actor
	err   error
}

func (s stubValidator) ValidateToken(string) (access.Actor, error) { return s.actor, s.err }

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	engine := gin.New()
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewLogger(cfg.Log).Middleware())
	engine.Use(middleware.ErrorHandler())
	return engine
}

func TestRequestID(t *testing.T) {
	engine := newEngine(t)
	var seen string
	engine.GET("/ping", func(c *gin.Context) {
		seen = middleware.GetRequestID(c)
		c.Status(http.StatusNoContent)
	})

	t.Run("upstream id is kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "edge-123")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, "edge-123", w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "edge-123", seen)
	})

	t.Run("malformed id is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "bad id\twith spaces")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		got := w.Header().Get(middleware.RequestIDHeader)
		require.NotEmpty(t, got)
		assert.NotEqual(t, "bad id\twith spaces", got)
		assert.Equal(t, got, seen)
	})
}

func TestErrorHandlerAndRecovery(t *testing.T) {
	engine := newEngine(t)
	engine.GET("/public", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusConflict}
		resp.Error.Message = "reused key"
		_ = c.Error(&gin.Error{Err: errs.ErrIdempotencyConflict, Type: gin.ErrorTypePublic, Meta: resp})
	})
	engine.GET("/private", func(c *gin.Context) {
		_ = c.Error(errs.New("boom"))
	})
	engine.GET("/panic", func(*gin.Context) { panic("kaboom") })

	for _, tc := range []struct {
		path   string
		status int
		body   string
	}{
		{"/public", http.StatusConflict, `{"error":{"message":"reused key"}}`},
		{"/private", http.StatusInternalServerError, `{"error":{"message":"Internal server error"}}`},
		{"/panic", http.StatusInternalServerError, `{"error":{"message":"Internal server error"}}`},
	} {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.status, w.Code)
			assert.JSONEq(t, tc.body, w.Body.String())
		})
	}
}

func TestAuth(t *testing.T) {
	userID := uuid.New()
	admin := access.NewActor(userID, access.RoleAdmin)

	handler := func(c *gin.Context) {
		actor := middleware.GetActor(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": actor.IsAuthenticated(), "admin": actor.IsAdmin()})
	}

	tests := []struct {
		name      string
		validator stubValidator
		optional  bool
		header    string
		status    int
		body      string
	}{
		{"required without token", stubValidator{actor: admin}, false, "", http.StatusUnauthorized, ""},
		{"required with bad token", stubValidator{err: errs.New("invalid token")}, false, "Bearer x", http.StatusUnauthorized, ""},
		{"required with token", stubValidator{actor: admin}, false, "Bearer x", http.StatusOK, `{"authenticated":true,"admin":true}`},
		{"optional without token", stubValidator{actor: admin}, true, "", http.StatusOK, `{"authenticated":false,"admin":false}`},
		{"optional with bad token", stubValidator{err: errs.New("invalid token")}, true, "Bearer x", http.StatusOK, `{"authenticated":false,"admin":false}`},
		{"non bearer scheme", stubValidator{actor: admin}, false, "Basic abc", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newEngine(t)
			auth := middleware.NewAuthMiddleware(tt.validator)
			mw := auth.RequireAuth()
			if tt.optional {
				mw = auth.OptionalAuth()
			}
			engine.GET("/me", mw, handler)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.JSONEq(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestCORSWildcardDropsCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet},
		AllowHeaders:     []string{"Authorization"},
		AllowCredentials: true,
	}

	engine := gin.New()
	engine.Use(middleware.NewCORSMiddleware(cfg))
	engine.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}
