package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"silva_storefront/internal/api"
	"silva_storefront/internal/auth"
	"silva_storefront/internal/cart"
	"silva_storefront/internal/middleware"
	"silva_storefront/internal/models"
	"silva_storefront/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestHandler() *Handler {
	return New(Deps{
		Sessions:       session.NewManager(time.Hour, nil),
		Cookies:        middleware.NewCookieStore("test-secret-0123456789abcdef0123", time.Hour, false),
		AllowedOrigins: []string{"http://localhost:5173"},
	})
}

func TestRespondErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "validation",
			err:      &cart.ValidationError{Field: "email", Message: "l'email est obligatoire"},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"l'email est obligatoire","field":"email"}`,
		},
		{
			name:     "wrapped validation",
			err:      fmt.Errorf("checkout: %w", &cart.ValidationError{Field: "items", Message: "le panier est vide"}),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"le panier est vide","field":"items"}`,
		},
		{
			name:     "backend message",
			err:      &api.RemoteError{Op: "create order", StatusCode: http.StatusUnprocessableEntity, Message: "Stock insuffisant"},
			wantCode: http.StatusUnprocessableEntity,
			wantBody: `{"error":"Stock insuffisant"}`,
		},
		{
			name:     "backend without message",
			err:      &api.RemoteError{Op: "create order", StatusCode: http.StatusInternalServerError},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"fallback"}`,
		},
		{
			name:     "transport failure",
			err:      &api.RemoteError{Op: "create order", Err: errors.New("connection refused")},
			wantCode: http.StatusBadGateway,
			wantBody: `{"error":"fallback"}`,
		},
		{
			name:     "unreadable success",
			err:      &api.RemoteError{Op: "list orders", StatusCode: http.StatusOK, Message: "réponse illisible"},
			wantCode: http.StatusBadGateway,
			wantBody: `{"error":"réponse illisible"}`,
		},
		{
			name:     "unexpected",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"fallback"}`,
		},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/buyer/checkout", nil)

			h.respondError(c, tt.err, "fallback")

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestCheckOrigin(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		origin string
		want   bool
	}{
		{"", true},
		{"http://example.com", true},
		{"http://localhost:5173", true},
		{"http://evil.test", false},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "http://example.com/buyer/cart/ws", nil)
		if tt.origin != "" {
			r.Header.Set("Origin", tt.origin)
		}
		assert.Equal(t, tt.want, h.checkOrigin(r), tt.origin)
	}
}

func TestRespondErrorUnauthorizedKeepsSession(t *testing.T) {
	h := newTestHandler()
	s, err := h.sessions.Create("tok", models.User{ID: 1, Role: "buyer"}, auth.TokenInfo{})
	require.NoError(t, err)
	require.NoError(t, s.WithCart(func(ct *cart.Cart) error {
		ct.Add(models.Product{ID: 1, Price: decimal.NewFromInt(3), Stock: 1})
		return nil
	}))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/buyer/checkout", nil)
	require.NoError(t, middleware.StartSession(c, h.cookies, s))

	h.respondError(c, &api.RemoteError{Op: "create order", StatusCode: http.StatusUnauthorized, Message: "Token expiré"}, "fallback")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	_, ok := h.sessions.Get(s.ID)
	assert.True(t, ok)
	assert.Equal(t, 1, s.CartSnapshot().Count)
}
