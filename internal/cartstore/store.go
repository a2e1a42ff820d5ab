// Package cartstore owns the locally mirrored shopping cart: it fetches the
// server cart, applies optimistic mutations for add/update/remove, and
// reconciles (commits or rolls back) once the remote outcome is known.
//
// Every mutation captures its own rollback snapshot at invocation time. Two
// mutations in flight for the same line can clobber each other; the view layer
// keeps that from happening by treating lines with an in-flight mutation
// (Pending) as inert.
package cartstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/NahlBee97/komputama-kasir-frontend/internal/domain"
	"github.com/NahlBee97/komputama-kasir-frontend/internal/notify"
	"go.uber.org/zap"
)

// ErrItemNotFound is returned when an operation references an item id that is
// not in the local cart, e.g. a stale placeholder id after reconciliation.
var ErrItemNotFound = errors.New("cart item not found")

// CartAPI is the consumer-defined view of the remote cart endpoints. Each
// mutation returns the updated authoritative cart, server-assigned line ids
// included.
type CartAPI interface {
	GetCart(ctx context.Context) (*domain.Cart, error)
	AddItem(ctx context.Context, productID int64, quantity int) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, itemID int64, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, itemID int64) (*domain.Cart, error)
}

type pendingUpdate struct {
	snapshot *domain.Cart
	quantity int
	deb      *debouncer
}

type Store struct {
	api      CartAPI
	notify   notify.Notifier
	log      *zap.SugaredLogger
	window   time.Duration
	onChange func()

	mu          sync.Mutex
	cart        *domain.Cart
	loading     bool
	errored     bool
	placeholder int64
	inflight    map[int64]int
	updates     map[int64]*pendingUpdate
}

// New builds a store. window is how long rapid quantity changes for one line
// are coalesced before a single remote update is issued; 0 disables coalescing
// and every update goes out synchronously.
func New(api CartAPI, n notify.Notifier, log *zap.SugaredLogger, window time.Duration) *Store {
	if n == nil {
		n = notify.Nop{}
	}
	return &Store{
		api:      api,
		notify:   n,
		log:      log,
		window:   window,
		inflight: make(map[int64]int),
		updates:  make(map[int64]*pendingUpdate),
	}
}

// SetOnChange registers a callback invoked after every state change, outside
// the store lock. The TUI uses it to repaint on async completions.
func (s *Store) SetOnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *Store) changed() {
	s.mu.Lock()
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Refresh replaces local state wholesale with the server cart. On failure the
// cart is dropped rather than left partial.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	s.changed()

	cart, err := s.api.GetCart(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.errored = true
		s.cart = nil
		s.mu.Unlock()
		s.changed()
		s.log.Warnw("cart refresh failed", "error", err)
		return err
	}
	s.errored = false
	s.cart = cart
	s.mu.Unlock()
	s.changed()
	return nil
}

// AddToCart optimistically adds one unit of product (incrementing an existing
// line, or inserting a new line under a placeholder id), then issues the
// remote add. On success the server cart replaces local state so placeholder
// ids never outlive the call; on failure the pre-mutation snapshot is
// restored.
func (s *Store) AddToCart(ctx context.Context, product domain.Product) error {
	s.mu.Lock()
	snapshot := s.cart.Clone()
	var affected int64
	if s.cart != nil {
		if idx := s.cart.FindProduct(product.ID); idx >= 0 {
			s.cart.Items[idx].Quantity++
			affected = s.cart.Items[idx].ID
		} else {
			s.placeholder--
			affected = s.placeholder
			s.cart.Items = append(s.cart.Items, domain.CartItem{
				ID:        affected,
				CartID:    s.cart.ID,
				ProductID: product.ID,
				Quantity:  1,
				Product:   product,
			})
		}
		s.inflight[affected]++
	}
	s.mu.Unlock()
	s.changed()

	updated, err := s.api.AddItem(ctx, product.ID, 1)

	s.mu.Lock()
	s.dropInflight(affected)
	if err != nil {
		s.cart = snapshot
		s.mu.Unlock()
		s.changed()
		s.log.Warnw("add item failed", "product_id", product.ID, "error", err)
		s.notify.Error("Gagal menyimpan")
		return err
	}
	if updated != nil {
		s.cart = updated
	}
	s.errored = false
	s.mu.Unlock()
	s.changed()
	return nil
}

// UpdateItem optimistically sets a line's quantity and schedules the remote
// update, coalescing rapid changes for the same line into one call carrying
// the final quantity. Quantities below 1 are a no-op; callers route those to
// RemoveFromCart.
func (s *Store) UpdateItem(ctx context.Context, itemID int64, quantity int) error {
	if quantity < 1 {
		return nil
	}

	s.mu.Lock()
	idx := s.cart.Find(itemID)
	if idx < 0 {
		s.mu.Unlock()
		return ErrItemNotFound
	}
	pu, ok := s.updates[itemID]
	if !ok {
		// First change of a burst: the rollback point is the state before
		// any of the coalesced changes.
		pu = &pendingUpdate{snapshot: s.cart.Clone(), deb: newDebouncer(s.window)}
		s.updates[itemID] = pu
	}
	pu.quantity = quantity
	s.cart.Items[idx].Quantity = quantity
	window := s.window
	s.mu.Unlock()
	s.changed()

	if window <= 0 {
		return s.flushItem(ctx, itemID)
	}
	pu.deb.debounce(func() {
		_ = s.flushItem(context.Background(), itemID)
	})
	return nil
}

// FlushPending fires all coalesced quantity updates immediately. Checkout
// calls this so the submitted total matches what the server has.
func (s *Store) FlushPending(ctx context.Context) error {
	s.mu.Lock()
	ids := make([]int64, 0, len(s.updates))
	for id, pu := range s.updates {
		pu.deb.cancel()
		ids = append(ids, id)
	}
	s.mu.Unlock()

	var firstErr error
	for _, id := range ids {
		if err := s.flushItem(ctx, id); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (s *Store) flushItem(ctx context.Context, itemID int64) error {
	s.mu.Lock()
	pu, ok := s.updates[itemID]
	if !ok {
		s.mu.Unlock()
		return nil
	}
	delete(s.updates, itemID)
	quantity := pu.quantity
	snapshot := pu.snapshot
	s.inflight[itemID]++
	s.mu.Unlock()

	updated, err := s.api.UpdateQuantity(ctx, itemID, quantity)

	s.mu.Lock()
	s.dropInflight(itemID)
	if err != nil {
		s.cart = snapshot
		s.mu.Unlock()
		s.changed()
		s.log.Warnw("update quantity failed", "item_id", itemID, "error", err)
		s.notify.Error("Gagal update")
		return err
	}
	if updated != nil {
		s.cart = updated
	}
	s.mu.Unlock()
	s.changed()
	return nil
}

// RemoveFromCart optimistically deletes the line, issues the remote delete,
// and re-inserts the snapshot on failure. The success notification waits for
// remote confirmation.
func (s *Store) RemoveFromCart(ctx context.Context, itemID int64) error {
	s.mu.Lock()
	// Removal supersedes any coalesced quantity update still waiting.
	if pu, ok := s.updates[itemID]; ok {
		pu.deb.cancel()
		delete(s.updates, itemID)
	}
	idx := s.cart.Find(itemID)
	if idx < 0 {
		s.mu.Unlock()
		return ErrItemNotFound
	}
	snapshot := s.cart.Clone()
	s.cart.Items = append(s.cart.Items[:idx], s.cart.Items[idx+1:]...)
	s.inflight[itemID]++
	s.mu.Unlock()
	s.changed()

	updated, err := s.api.RemoveItem(ctx, itemID)

	s.mu.Lock()
	s.dropInflight(itemID)
	if err != nil {
		s.cart = snapshot
		s.mu.Unlock()
		s.changed()
		s.log.Warnw("remove item failed", "item_id", itemID, "error", err)
		s.notify.Error("Gagal menghapus")
		return err
	}
	if updated != nil {
		s.cart = updated
	}
	s.mu.Unlock()
	s.changed()
	s.notify.Success("Item dihapus")
	return nil
}

func (s *Store) dropInflight(itemID int64) {
	if itemID == 0 {
		return
	}
	if s.inflight[itemID] <= 1 {
		delete(s.inflight, itemID)
	} else {
		s.inflight[itemID]--
	}
}

// Cart returns a copy of the mirrored cart, nil when absent or dropped.
func (s *Store) Cart() *domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Clone()
}

// Items returns the current lines, empty when no cart is mirrored.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		return nil
	}
	items := make([]domain.CartItem, len(s.cart.Items))
	copy(items, s.cart.Items)
	return items
}

// TotalAmount is always recomputed from the current lines.
func (s *Store) TotalAmount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalAmount()
}

// LineCount is the number of distinct lines in the cart.
func (s *Store) LineCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		return 0
	}
	return len(s.cart.Items)
}

// Loading reports whether a refresh is in progress.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Errored reports whether the last refresh failed.
func (s *Store) Errored() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errored
}

// Pending reports whether a mutation for the given line is in flight. The view
// layer disables the line's controls while this is true.
func (s *Store) Pending(itemID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight[itemID] > 0
}
