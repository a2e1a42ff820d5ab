package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NahlBee97/komputama-kasir-frontend/internal/domain"
	"github.com/NahlBee97/komputama-kasir-frontend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokens struct {
	token   string
	cleared bool
}

func (f *fakeTokens) Token() string { return f.token }
func (f *fakeTokens) Clear()        { f.cleared = true }

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *fakeTokens) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	tokens := &fakeTokens{token: "test-token"}
	return NewClient(srv.URL, tokens, 2*time.Second, logger.Nop()), tokens
}

func TestGetCart_SendsBearerAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode(map[string]any{
			"cart": domain.Cart{ID: 7, UserID: 1, Items: []domain.CartItem{
				{ID: 10, CartID: 7, ProductID: 1, Quantity: 2},
			}},
		})
	})

	cart, err := client.GetCart(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.NotEmpty(t, gotReqID)
	require.NotNil(t, cart)
	assert.Equal(t, int64(7), cart.ID)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestAddItem_PostsPayload(t *testing.T) {
	var got AddItemRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/carts/items", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"cart": domain.Cart{ID: 7}})
	})

	_, err := client.AddItem(context.Background(), 5, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ProductID)
	assert.Equal(t, 1, got.Quantity)
}

func TestDo_DecodesErrorEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "cart item not found", Code: "not_found"})
	})

	_, err := client.UpdateQuantity(context.Background(), 99, 2)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "not_found", apiErr.Code)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDo_UnauthorizedClearsSession(t *testing.T) {
	client, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "token expired", Code: "unauthenticated"})
	})

	_, err := client.GetCart(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.True(t, tokens.cleared, "401 drops the local session")
}

func TestDo_TransportFailureMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore
	client := NewClient(srv.URL, &fakeTokens{}, time.Second, logger.Nop())

	_, err := client.GetCart(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := NewClient(srv.URL, &fakeTokens{}, time.Second, logger.Nop())

	for i := 0; i < 6; i++ {
		_, err := client.GetCart(context.Background())
		require.Error(t, err)
	}

	// By now the breaker is open and requests fail fast without dialing.
	start := time.Now()
	_, err := client.GetCart(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestLogin_ReturnsTokenAndUser(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "123456", req.PIN)
		json.NewEncoder(w).Encode(LoginResponse{
			Token: "fresh-token",
			User:  domain.User{ID: req.UserID, Name: "Sari", Role: domain.RoleCashier},
		})
	})

	resp, err := client.Login(context.Background(), 2, "123456")
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", resp.Token)
	assert.Equal(t, "Sari", resp.User.Name)
}

func TestCreateOrder_SendsIdempotencyKey(t *testing.T) {
	var key string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		key = r.Header.Get("Idempotency-Key")
		json.NewEncoder(w).Encode(map[string]any{"order": domain.Order{ID: 55, Status: domain.OrderCompleted}})
	})

	order, err := client.CreateOrder(context.Background(), domain.NewOrder{UserID: 1, TotalAmount: 30000}, "key-1")
	require.NoError(t, err)
	assert.Equal(t, "key-1", key)
	assert.Equal(t, int64(55), order.ID)
}

func TestGetOrders_EncodesDateRange(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/orders", r.URL.Path)
		require.Equal(t, "2026-08-01", r.URL.Query().Get("start"))
		require.Equal(t, "2026-08-31", r.URL.Query().Get("end"))
		json.NewEncoder(w).Encode(map[string]any{"orders": []domain.Order{{ID: 1}}})
	})

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	orders, err := client.GetOrders(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, orders, 1)
}
