//go:build unit

package payment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripeGateway_CreateIntent(t *testing.T) {
	t.Run("posts form-encoded intent and parses response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/payment_intents", r.URL.Path)
			assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "12050", r.PostForm.Get("amount"))
			assert.Equal(t, "brl", r.PostForm.Get("currency"))
			assert.Equal(t, "abc123", r.PostForm.Get("metadata[confirmationId]"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"pi_1","client_secret":"pi_1_secret_x"}`))
		}))
		defer srv.Close()

		g := NewStripeGateway(srv.URL, "sk_test_123")
		intent, err := g.CreateIntent(context.Background(), 12050, "brl", map[string]string{"confirmationId": "abc123"})
		require.NoError(t, err)
		assert.Equal(t, "pi_1", intent.ID)
		assert.Equal(t, "pi_1_secret_x", intent.ClientSecret)
	})

	t.Run("surfaces provider error message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
			_, _ = w.Write([]byte(`{"error":{"message":"Your card was declined."}}`))
		}))
		defer srv.Close()

		g := NewStripeGateway(srv.URL, "sk_test_123")
		_, err := g.CreateIntent(context.Background(), 100, "brl", nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrGatewayRequest))
		assert.Contains(t, err.Error(), "declined")
	})
}
