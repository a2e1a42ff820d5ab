// Package checkout finalizes a sale: validates the payment, submits the order,
// clears the cart mirror, and prints the receipt.
package checkout

import (
	"context"
	"fmt"

	"github.com/NahlBee97/komputama-kasir-frontend/internal/domain"
	"github.com/NahlBee97/komputama-kasir-frontend/internal/receipt"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderAPI is the consumer-defined view of the order-creation endpoint.
type OrderAPI interface {
	CreateOrder(ctx context.Context, order domain.NewOrder, idempotencyKey string) (*domain.Order, error)
}

// Cart is what checkout needs from the cart store.
type Cart interface {
	Items() []domain.CartItem
	TotalAmount() int64
	FlushPending(ctx context.Context) error
	Refresh(ctx context.Context) error
}

type Request struct {
	UserID       int64
	CashReceived int64
}

type Result struct {
	Order   *domain.Order
	Receipt string
}

type Service interface {
	Checkout(ctx context.Context, req Request) (*Result, error)
}

type ServiceImpl struct {
	api      OrderAPI
	cart     Cart
	renderer *receipt.Renderer
	printer  receipt.Printer
	log      *zap.SugaredLogger
}

func NewService(api OrderAPI, cart Cart, renderer *receipt.Renderer, printer receipt.Printer, log *zap.SugaredLogger) *ServiceImpl {
	return &ServiceImpl{
		api:      api,
		cart:     cart,
		renderer: renderer,
		printer:  printer,
		log:      log,
	}
}

// Checkout submits the sale. The cart is left untouched on failure; on success
// it is refreshed from the server (which has cleared it) and the receipt is
// rendered and printed. Receipt and refresh problems after a created order are
// logged, not returned: the sale already happened.
func (s *ServiceImpl) Checkout(ctx context.Context, req Request) (*Result, error) {
	// Coalesced quantity updates must land before the total is computed.
	if err := s.cart.FlushPending(ctx); err != nil {
		return nil, fmt.Errorf("flush pending cart updates: %w", err)
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	total := s.cart.TotalAmount()
	if req.CashReceived < total {
		return nil, ErrInsufficientCash
	}

	order, err := s.api.CreateOrder(ctx, domain.NewOrder{
		UserID:        req.UserID,
		TotalAmount:   total,
		PaymentCash:   req.CashReceived,
		PaymentChange: req.CashReceived - total,
	}, uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if len(order.Items) == 0 {
		// Backend echoes only the order head; rebuild lines from the cart
		// mirror so the receipt can itemize.
		order.Items = orderItems(order.ID, items)
	}

	content := s.renderer.Render(order)
	if errPrint := s.printer.Print(order.ID, content); errPrint != nil {
		s.log.Warnw("receipt print failed", "order_id", order.ID, "error", errPrint)
	}

	if errRefresh := s.cart.Refresh(ctx); errRefresh != nil {
		s.log.Warnw("cart refresh after checkout failed", "error", errRefresh)
	}

	return &Result{Order: order, Receipt: content}, nil
}

func orderItems(orderID int64, items []domain.CartItem) []domain.OrderItem {
	out := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, domain.OrderItem{
			OrderID:   orderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.Product.Price,
			Product:   item.Product,
		})
	}
	return out
}
