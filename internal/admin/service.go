// Package admin exposes the back-office operations: product and user
// management, sales history, and reporting. It is a thin, validated layer over
// the backend; all persistence and authorization live server-side.
package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/NahlBee97/komputama-kasir-frontend/internal/domain"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// BackofficeAPI is the consumer-defined view of the admin endpoints.
type BackofficeAPI interface {
	GetProducts(ctx context.Context) ([]domain.Product, error)
	GetTopProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, p domain.NewProduct) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, p domain.UpdateProduct) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	GetAllUsers(ctx context.Context) ([]domain.User, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	CreateUser(ctx context.Context, u domain.NewUser) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, update any) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error

	GetTodayOrders(ctx context.Context) ([]domain.Order, error)
	GetOrders(ctx context.Context, start, end time.Time) ([]domain.Order, error)
	GetOrderSummary(ctx context.Context) (domain.OrderSummary, error)
}

// Invalidator drops cached catalog state after product mutations. The cashier
// side plugs its catalog service in here.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

type noopInvalidator struct{}

func (noopInvalidator) Invalidate(context.Context) {}

type Service struct {
	api      BackofficeAPI
	catalog  Invalidator
	validate *validator.Validate
	log      *zap.SugaredLogger
}

func NewService(api BackofficeAPI, catalog Invalidator, log *zap.SugaredLogger) *Service {
	if catalog == nil {
		catalog = noopInvalidator{}
	}
	return &Service{
		api:      api,
		catalog:  catalog,
		validate: validator.New(),
		log:      log,
	}
}

// --- products ---

func (s *Service) Products(ctx context.Context) ([]domain.Product, error) {
	return s.api.GetProducts(ctx)
}

func (s *Service) CreateProduct(ctx context.Context, p domain.NewProduct) (*domain.Product, error) {
	if err := s.validate.Struct(p); err != nil {
		return nil, fmt.Errorf("invalid product: %w", err)
	}
	created, err := s.api.CreateProduct(ctx, p)
	if err != nil {
		return nil, err
	}
	s.catalog.Invalidate(ctx)
	return created, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id int64, p domain.UpdateProduct) (*domain.Product, error) {
	if err := s.validate.Struct(p); err != nil {
		return nil, fmt.Errorf("invalid product update: %w", err)
	}
	updated, err := s.api.UpdateProduct(ctx, id, p)
	if err != nil {
		return nil, err
	}
	s.catalog.Invalidate(ctx)
	return updated, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.api.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.catalog.Invalidate(ctx)
	return nil
}

// LowStock lists active products at or below the given threshold, for the
// dashboard's low-stock table.
func (s *Service) LowStock(ctx context.Context, threshold int) ([]domain.Product, error) {
	products, err := s.api.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	low := make([]domain.Product, 0)
	for _, p := range products {
		if p.IsActive && p.Stock <= threshold {
			low = append(low, p)
		}
	}
	return low, nil
}

// --- users ---

func (s *Service) Users(ctx context.Context) ([]domain.User, error) {
	return s.api.GetAllUsers(ctx)
}

func (s *Service) User(ctx context.Context, id int64) (*domain.User, error) {
	return s.api.GetUserByID(ctx, id)
}

func (s *Service) CreateUser(ctx context.Context, u domain.NewUser) (*domain.User, error) {
	if err := s.validate.Struct(u); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}
	return s.api.CreateUser(ctx, u)
}

func (s *Service) UpdateUser(ctx context.Context, id int64, u domain.UpdateUser) (*domain.User, error) {
	if err := s.validate.Struct(u); err != nil {
		return nil, fmt.Errorf("invalid user update: %w", err)
	}
	return s.api.UpdateUser(ctx, id, u)
}

// SetPin changes a user's PIN after checking the confirmation matches.
func (s *Service) SetPin(ctx context.Context, id int64, pin domain.SetPin) (*domain.User, error) {
	if err := s.validate.Struct(pin); err != nil {
		return nil, fmt.Errorf("invalid pin: %w", err)
	}
	return s.api.UpdateUser(ctx, id, pin)
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	return s.api.DeleteUser(ctx, id)
}

// --- sales & reporting ---

func (s *Service) TodaySales(ctx context.Context) ([]domain.Order, error) {
	return s.api.GetTodayOrders(ctx)
}

func (s *Service) Sales(ctx context.Context, start, end time.Time) ([]domain.Order, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("invalid range: end %s before start %s", end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	return s.api.GetOrders(ctx, start, end)
}

func (s *Service) Summary(ctx context.Context) (domain.OrderSummary, error) {
	return s.api.GetOrderSummary(ctx)
}

func (s *Service) TopSelling(ctx context.Context) ([]domain.Product, error) {
	return s.api.GetTopProducts(ctx)
}
