// Package tui is the cashier screen: product grid on the left, the live cart
// on the right, payment overlay on top. All cart state flows through the cart
// store; the screen never mutates cart data itself.
package tui

import (
	"context"
	"fmt"

	"github.com/NahlBee97/komputama-kasir-frontend/internal/cartstore"
	"github.com/NahlBee97/komputama-kasir-frontend/internal/catalog"
	"github.com/NahlBee97/komputama-kasir-frontend/internal/checkout"
	"github.com/NahlBee97/komputama-kasir-frontend/internal/domain"
	"github.com/NahlBee97/komputama-kasir-frontend/internal/notify"
	"github.com/NahlBee97/komputama-kasir-frontend/internal/receipt"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type mode int

const (
	modeSale mode = iota
	modePay
	modeReceipt
)

type focus int

const (
	focusProducts focus = iota
	focusCart
)

// Messages.

type productsMsg struct {
	products []domain.Product
	err      error
}

// CartChangedMsg repaints the screen when the store mutates asynchronously
// (debounced updates, rollbacks). Sent from the store's onChange hook.
type CartChangedMsg struct{}

type mutationMsg struct{ err error }

type checkoutMsg struct {
	result *checkout.Result
	err    error
}

type toastMsg notify.Notification

type productItem struct {
	product domain.Product
}

func (p productItem) Title() string { return p.product.Name }
func (p productItem) Description() string {
	return fmt.Sprintf("%s  stok %d", receipt.FormatRupiah(p.product.Price), p.product.Stock)
}
func (p productItem) FilterValue() string { return p.product.Name }

type Model struct {
	store    *cartstore.Store
	catalog  *catalog.Service
	checkout checkout.Service
	toasts   *notify.Memory
	user     domain.User
	styles   Styles

	products    list.Model
	cash        textinput.Model
	receiptView viewport.Model

	mode     mode
	focus    focus
	cursor   int // selected cart line
	width    int
	height   int
	toast    string
	toastErr bool
	loadErr  error
}

// New assembles the cashier screen. toasts is the sink the cart store writes
// its notifications into; the screen drains it every repaint.
func New(store *cartstore.Store, cat *catalog.Service, co checkout.Service, toasts *notify.Memory, user domain.User) Model {
	delegate := list.NewDefaultDelegate()
	products := list.New(nil, delegate, 40, 20)
	products.Title = "Produk"
	products.SetShowStatusBar(false)
	products.SetShowHelp(false)

	cash := textinput.New()
	cash.Placeholder = "0"
	cash.CharLimit = 12
	cash.Prompt = "Rp "

	return Model{
		store:       store,
		catalog:     cat,
		checkout:    co,
		toasts:      toasts,
		user:        user,
		styles:      DefaultStyles(),
		products:    products,
		cash:        cash,
		receiptView: viewport.New(40, 24),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadProducts(), m.refreshCart())
}

func (m Model) loadProducts() tea.Cmd {
	return func() tea.Msg {
		products, err := m.catalog.Products(context.Background())
		return productsMsg{products: products, err: err}
	}
}

func (m Model) refreshCart() tea.Cmd {
	return func() tea.Msg {
		return mutationMsg{err: m.store.Refresh(context.Background())}
	}
}

func (m Model) addProduct(p domain.Product) tea.Cmd {
	return func() tea.Msg {
		return mutationMsg{err: m.store.AddToCart(context.Background(), p)}
	}
}

func (m Model) changeQuantity(itemID int64, quantity int) tea.Cmd {
	return func() tea.Msg {
		return mutationMsg{err: m.store.UpdateItem(context.Background(), itemID, quantity)}
	}
}

func (m Model) removeLine(itemID int64) tea.Cmd {
	return func() tea.Msg {
		return mutationMsg{err: m.store.RemoveFromCart(context.Background(), itemID)}
	}
}

func (m Model) pay(cash int64) tea.Cmd {
	return func() tea.Msg {
		result, err := m.checkout.Checkout(context.Background(), checkout.Request{
			UserID:       m.user.ID,
			CashReceived: cash,
		})
		return checkoutMsg{result: result, err: err}
	}
}
