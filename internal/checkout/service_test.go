package checkout

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/NahlBee97/komputama-kasir-frontend/internal/domain"
	"github.com/NahlBee97/komputama-kasir-frontend/internal/receipt"
	"github.com/NahlBee97/komputama-kasir-frontend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockOrderAPI struct {
	err      error
	created  *domain.NewOrder
	lastKey  string
	response *domain.Order
}

func (m *mockOrderAPI) CreateOrder(_ context.Context, order domain.NewOrder, key string) (*domain.Order, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = &order
	m.lastKey = key
	if m.response != nil {
		return m.response, nil
	}
	return &domain.Order{
		ID:            55,
		UserID:        order.UserID,
		TotalAmount:   order.TotalAmount,
		PaymentCash:   order.PaymentCash,
		PaymentChange: order.PaymentChange,
		Status:        domain.OrderCompleted,
	}, nil
}

type mockCart struct {
	items      []domain.CartItem
	flushErr   error
	flushed    bool
	refreshed  bool
	refreshErr error
}

func (m *mockCart) Items() []domain.CartItem { return m.items }

func (m *mockCart) TotalAmount() int64 {
	var total int64
	for _, item := range m.items {
		total += item.Product.Price * int64(item.Quantity)
	}
	return total
}

func (m *mockCart) FlushPending(context.Context) error {
	m.flushed = true
	return m.flushErr
}

func (m *mockCart) Refresh(context.Context) error {
	m.refreshed = true
	return m.refreshErr
}

type captivePrinter struct {
	orderID int64
	content string
	err     error
}

func (p *captivePrinter) Print(orderID int64, content string) error {
	p.orderID = orderID
	p.content = content
	return p.err
}

func testService(api *mockOrderAPI, cart *mockCart, printer receipt.Printer) *ServiceImpl {
	r := receipt.NewRenderer(receipt.Header{Name: "Diary Kasir"})
	return NewService(api, cart, r, printer, logger.Nop())
}

func cartWith(items ...domain.CartItem) *mockCart {
	return &mockCart{items: items}
}

func TestCheckout_Success(t *testing.T) {
	api := &mockOrderAPI{}
	cart := cartWith(domain.CartItem{ID: 10, ProductID: 1, Quantity: 2, Product: domain.Product{ID: 1, Name: "Ayam Goreng", Price: 15000}})
	printer := &captivePrinter{}
	svc := testService(api, cart, printer)

	res, err := svc.Checkout(context.Background(), Request{UserID: 1, CashReceived: 50000})
	require.NoError(t, err)

	require.NotNil(t, api.created)
	assert.Equal(t, int64(30000), api.created.TotalAmount)
	assert.Equal(t, int64(50000), api.created.PaymentCash)
	assert.Equal(t, int64(20000), api.created.PaymentChange)
	assert.NotEmpty(t, api.lastKey, "checkout submits an idempotency key")

	assert.True(t, cart.flushed)
	assert.True(t, cart.refreshed, "cart refreshed after checkout")

	assert.Equal(t, int64(55), printer.orderID)
	assert.Contains(t, printer.content, "Ayam Goreng x 2")
	assert.Contains(t, res.Receipt, "TOTAL")
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc := testService(&mockOrderAPI{}, cartWith(), &captivePrinter{})

	_, err := svc.Checkout(context.Background(), Request{UserID: 1, CashReceived: 50000})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckout_InsufficientCash(t *testing.T) {
	cart := cartWith(domain.CartItem{ID: 10, ProductID: 1, Quantity: 2, Product: domain.Product{Price: 15000}})
	api := &mockOrderAPI{}
	svc := testService(api, cart, &captivePrinter{})

	_, err := svc.Checkout(context.Background(), Request{UserID: 1, CashReceived: 25000})
	assert.ErrorIs(t, err, ErrInsufficientCash)
	assert.Nil(t, api.created, "no order submitted")
	assert.False(t, cart.refreshed)
}

func TestCheckout_SubmitFailureLeavesCart(t *testing.T) {
	cart := cartWith(domain.CartItem{ID: 10, ProductID: 1, Quantity: 1, Product: domain.Product{Price: 15000}})
	api := &mockOrderAPI{err: errors.New("backend down")}
	svc := testService(api, cart, &captivePrinter{})

	_, err := svc.Checkout(context.Background(), Request{UserID: 1, CashReceived: 15000})
	require.Error(t, err)
	assert.False(t, cart.refreshed, "cart untouched until success")
}

func TestCheckout_PrintFailureIsNonFatal(t *testing.T) {
	cart := cartWith(domain.CartItem{ID: 10, ProductID: 1, Quantity: 1, Product: domain.Product{Name: "Es Teh", Price: 5000}})
	printer := &captivePrinter{err: errors.New("printer offline")}
	svc := testService(&mockOrderAPI{}, cart, printer)

	res, err := svc.Checkout(context.Background(), Request{UserID: 1, CashReceived: 5000})
	require.NoError(t, err, "the sale already happened")
	assert.True(t, strings.Contains(res.Receipt, "Es Teh"))
}

func TestCheckout_FlushesPendingBeforeTotals(t *testing.T) {
	cart := cartWith(domain.CartItem{ID: 10, ProductID: 1, Quantity: 1, Product: domain.Product{Price: 5000}})
	cart.flushErr = errors.New("update failed")
	api := &mockOrderAPI{}
	svc := testService(api, cart, &captivePrinter{})

	_, err := svc.Checkout(context.Background(), Request{UserID: 1, CashReceived: 5000})
	require.Error(t, err)
	assert.Nil(t, api.created)
}
