package admin

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/NahlBee97/komputama-kasir-frontend/internal/domain"
	"github.com/NahlBee97/komputama-kasir-frontend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackoffice struct {
	products []domain.Product
	users    []domain.User
	orders   []domain.Order
	summary  domain.OrderSummary

	createdProduct *domain.NewProduct
	updatedUser    any
	deletedProduct int64
}

func (f *fakeBackoffice) GetProducts(context.Context) ([]domain.Product, error) {
	return f.products, nil
}

func (f *fakeBackoffice) GetTopProducts(context.Context) ([]domain.Product, error) {
	return f.products, nil
}

func (f *fakeBackoffice) CreateProduct(_ context.Context, p domain.NewProduct) (*domain.Product, error) {
	f.createdProduct = &p
	return &domain.Product{ID: 9, Name: p.Name, Category: p.Category, Price: p.Price, Stock: p.Stock, IsActive: true}, nil
}

func (f *fakeBackoffice) UpdateProduct(_ context.Context, id int64, p domain.UpdateProduct) (*domain.Product, error) {
	out := domain.Product{ID: id}
	if p.Name != nil {
		out.Name = *p.Name
	}
	return &out, nil
}

func (f *fakeBackoffice) DeleteProduct(_ context.Context, id int64) error {
	f.deletedProduct = id
	return nil
}

func (f *fakeBackoffice) GetAllUsers(context.Context) ([]domain.User, error) { return f.users, nil }

func (f *fakeBackoffice) GetUserByID(_ context.Context, id int64) (*domain.User, error) {
	return &domain.User{ID: id}, nil
}

func (f *fakeBackoffice) CreateUser(_ context.Context, u domain.NewUser) (*domain.User, error) {
	return &domain.User{ID: 3, Name: u.Name, Role: domain.RoleCashier, Shift: u.Shift}, nil
}

func (f *fakeBackoffice) UpdateUser(_ context.Context, id int64, update any) (*domain.User, error) {
	f.updatedUser = update
	return &domain.User{ID: id}, nil
}

func (f *fakeBackoffice) DeleteUser(context.Context, int64) error { return nil }

func (f *fakeBackoffice) GetTodayOrders(context.Context) ([]domain.Order, error) {
	return f.orders, nil
}

func (f *fakeBackoffice) GetOrders(context.Context, time.Time, time.Time) ([]domain.Order, error) {
	return f.orders, nil
}

func (f *fakeBackoffice) GetOrderSummary(context.Context) (domain.OrderSummary, error) {
	return f.summary, nil
}

type countingInvalidator struct{ calls int }

func (c *countingInvalidator) Invalidate(context.Context) { c.calls++ }

func TestCreateProduct_ValidatesInput(t *testing.T) {
	api := &fakeBackoffice{}
	svc := NewService(api, nil, logger.Nop())

	_, err := svc.CreateProduct(context.Background(), domain.NewProduct{Name: "", Category: "food", Price: 1000})
	require.Error(t, err, "name is required")

	_, err = svc.CreateProduct(context.Background(), domain.NewProduct{Name: "Ayam", Category: "food", Price: 0})
	require.Error(t, err, "price must be positive")

	_, err = svc.CreateProduct(context.Background(), domain.NewProduct{Name: "Ayam", Category: "food", Price: 15000, Stock: -1})
	require.Error(t, err, "stock cannot be negative")

	created, err := svc.CreateProduct(context.Background(), domain.NewProduct{Name: "Ayam", Category: "food", Price: 15000, Stock: 10})
	require.NoError(t, err)
	assert.Equal(t, "Ayam", created.Name)
}

func TestProductMutations_InvalidateCatalog(t *testing.T) {
	api := &fakeBackoffice{}
	inv := &countingInvalidator{}
	svc := NewService(api, inv, logger.Nop())

	_, err := svc.CreateProduct(context.Background(), domain.NewProduct{Name: "Ayam", Category: "food", Price: 15000})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteProduct(context.Background(), 9))

	assert.Equal(t, 2, inv.calls)
	assert.Equal(t, int64(9), api.deletedProduct)
}

func TestCreateUser_PinRules(t *testing.T) {
	svc := NewService(&fakeBackoffice{}, nil, logger.Nop())

	_, err := svc.CreateUser(context.Background(), domain.NewUser{Name: "Sari", Shift: "pagi", PIN: "12345"})
	require.Error(t, err, "pin must be 6 digits")

	_, err = svc.CreateUser(context.Background(), domain.NewUser{Name: "Sari", Shift: "pagi", PIN: "12a456"})
	require.Error(t, err, "pin must be numeric")

	u, err := svc.CreateUser(context.Background(), domain.NewUser{Name: "Sari", Shift: "pagi", PIN: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "Sari", u.Name)
}

func TestSetPin_ConfirmationMustMatch(t *testing.T) {
	api := &fakeBackoffice{}
	svc := NewService(api, nil, logger.Nop())

	_, err := svc.SetPin(context.Background(), 3, domain.SetPin{PIN: "123456", ConfirmPin: "654321"})
	require.Error(t, err)

	_, err = svc.SetPin(context.Background(), 3, domain.SetPin{PIN: "123456", ConfirmPin: "123456"})
	require.NoError(t, err)
	require.IsType(t, domain.SetPin{}, api.updatedUser)
}

func TestLowStock_FiltersInactiveAndAbundant(t *testing.T) {
	api := &fakeBackoffice{products: []domain.Product{
		{ID: 1, Name: "Ayam", Stock: 2, IsActive: true},
		{ID: 2, Name: "Es Teh", Stock: 50, IsActive: true},
		{ID: 3, Name: "Lama", Stock: 0, IsActive: false},
	}}
	svc := NewService(api, nil, logger.Nop())

	low, err := svc.LowStock(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Ayam", low[0].Name)
}

func TestSales_RejectsInvertedRange(t *testing.T) {
	svc := NewService(&fakeBackoffice{}, nil, logger.Nop())

	start := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -7)
	_, err := svc.Sales(context.Background(), start, end)
	require.Error(t, err)
}

func TestExportSales_WritesWorkbook(t *testing.T) {
	api := &fakeBackoffice{orders: []domain.Order{
		{
			ID: 1, UserID: 2, TotalAmount: 30000, PaymentCash: 50000, PaymentChange: 20000,
			Status:    domain.OrderCompleted,
			CreatedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
			Items:     []domain.OrderItem{{Quantity: 2, UnitPrice: 15000}},
		},
	}}
	svc := NewService(api, nil, logger.Nop())

	var buf bytes.Buffer
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	require.NoError(t, svc.ExportSales(context.Background(), start, end, &buf))
	assert.Greater(t, buf.Len(), 0)
	// xlsx is a zip container.
	assert.Equal(t, []byte("PK"), buf.Bytes()[:2])
}
