package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/NahlBee97/komputama-kasir-frontend/internal/domain"
)

type orderEnvelope struct {
	Order *domain.Order `json:"order"`
}

type ordersEnvelope struct {
	Orders []domain.Order `json:"orders"`
}

type summaryEnvelope struct {
	Summary domain.OrderSummary `json:"summary"`
}

// CreateOrder submits the checkout payload. The idempotency key makes a
// retried submit (double-tap on the pay button, reconnect after timeout) land
// on the already-created order instead of a duplicate.
func (c *Client) CreateOrder(ctx context.Context, order domain.NewOrder, idempotencyKey string) (*domain.Order, error) {
	var env orderEnvelope
	headers := map[string]string{"Idempotency-Key": idempotencyKey}
	if err := c.call(ctx, http.MethodPost, "/api/orders", order, &env, headers); err != nil {
		return nil, err
	}
	return env.Order, nil
}

// GetTodayOrders lists today's completed sales for the cashier-facing history.
func (c *Client) GetTodayOrders(ctx context.Context) ([]domain.Order, error) {
	var env ordersEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/orders/today", nil, &env); err != nil {
		return nil, err
	}
	return env.Orders, nil
}

// GetOrders lists sales within [start, end] for the back office.
func (c *Client) GetOrders(ctx context.Context, start, end time.Time) ([]domain.Order, error) {
	q := url.Values{}
	q.Set("start", start.Format("2006-01-02"))
	q.Set("end", end.Format("2006-01-02"))

	var env ordersEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/orders?"+q.Encode(), nil, &env); err != nil {
		return nil, err
	}
	return env.Orders, nil
}

// GetOrderSummary fetches the aggregated report figures.
func (c *Client) GetOrderSummary(ctx context.Context) (domain.OrderSummary, error) {
	var env summaryEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/orders/summary", nil, &env); err != nil {
		return domain.OrderSummary{}, err
	}
	return env.Summary, nil
}
