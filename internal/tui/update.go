package tui

import (
	"strconv"
	"strings"

	"github.com/NahlBee97/komputama-kasir-frontend/internal/domain"
	"github.com/NahlBee97/komputama-kasir-frontend/internal/notify"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func toListItems(products []domain.Product) []list.Item {
	items := make([]list.Item, 0, len(products))
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		items = append(items, productItem{product: p})
	}
	return items
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.products.SetSize(msg.Width/2-4, msg.Height-6)
		m.receiptView.Width = msg.Width - 8
		m.receiptView.Height = msg.Height - 6
		return m, nil

	case productsMsg:
		if msg.err != nil {
			m.loadErr = msg.err
			return m, nil
		}
		m.loadErr = nil
		m.products.SetItems(toListItems(msg.products))
		return m, nil

	case CartChangedMsg:
		m.drainToasts()
		return m, nil

	case mutationMsg:
		// The store already rolled back and raised a toast on failure.
		m.drainToasts()
		m.clampCursor()
		return m, nil

	case checkoutMsg:
		m.drainToasts()
		if msg.err != nil {
			m.toast = "Pembayaran gagal: " + msg.err.Error()
			m.toastErr = true
			m.mode = modeSale
			return m, nil
		}
		m.mode = modeReceipt
		m.receiptView.SetContent(msg.result.Receipt)
		m.toast = "Transaksi selesai"
		m.toastErr = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateChildren(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modePay:
		return m.handlePayKey(msg)
	case modeReceipt:
		m.mode = modeSale
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		if m.focus == focusProducts && m.products.FilterState() == list.Filtering {
			break // typing in the list filter
		}
		return m, tea.Quit
	case "tab":
		if m.focus == focusProducts {
			m.focus = focusCart
		} else {
			m.focus = focusProducts
		}
		m.clampCursor()
		return m, nil
	case "r":
		if m.focus == focusCart {
			return m, tea.Batch(m.loadProducts(), m.refreshCart())
		}
	case "f5":
		return m, tea.Batch(m.loadProducts(), m.refreshCart())
	case "f8":
		return m.openPayment()
	}

	if m.focus == focusCart {
		return m.handleCartKey(msg)
	}

	if msg.String() == "enter" {
		if item, ok := m.products.SelectedItem().(productItem); ok {
			return m, m.addProduct(item.product)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.products, cmd = m.products.Update(msg)
	return m, cmd
}

func (m Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.store.Items()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(items)-1 {
			m.cursor++
		}
		return m, nil
	case "p":
		return m.openPayment()
	}

	if len(items) == 0 || m.cursor >= len(items) {
		return m, nil
	}
	line := items[m.cursor]
	if m.store.Pending(line.ID) {
		// A mutation for this line is in flight; its controls are inert.
		return m, nil
	}

	switch msg.String() {
	case "+", "=", "right":
		return m, m.changeQuantity(line.ID, line.Quantity+1)
	case "-", "left":
		if line.Quantity <= 1 {
			// Going below one is a removal, not an update.
			return m, m.removeLine(line.ID)
		}
		return m, m.changeQuantity(line.ID, line.Quantity-1)
	case "d", "x", "delete", "backspace":
		return m, m.removeLine(line.ID)
	}
	return m, nil
}

func (m Model) openPayment() (tea.Model, tea.Cmd) {
	if m.store.LineCount() == 0 {
		m.toast = "Keranjang kosong"
		m.toastErr = true
		return m, nil
	}
	m.mode = modePay
	m.cash.SetValue("")
	m.cash.Focus()
	return m, nil
}

func (m Model) handlePayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeSale
		m.cash.Blur()
		return m, nil
	case "enter":
		cash := m.cashValue()
		if cash < m.store.TotalAmount() {
			// Confirm stays disabled until the cash covers the total.
			return m, nil
		}
		m.cash.Blur()
		return m, m.pay(cash)
	}

	var cmd tea.Cmd
	m.cash, cmd = m.cash.Update(msg)
	return m, cmd
}

func (m Model) updateChildren(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch m.mode {
	case modeReceipt:
		m.receiptView, cmd = m.receiptView.Update(msg)
		cmds = append(cmds, cmd)
	case modePay:
		m.cash, cmd = m.cash.Update(msg)
		cmds = append(cmds, cmd)
	default:
		m.products, cmd = m.products.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// cashValue parses the cash input, ignoring separators.
func (m Model) cashValue() int64 {
	raw := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, m.cash.Value())
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func (m *Model) drainToasts() {
	for _, n := range m.toasts.Drain() {
		m.toast = n.Message
		m.toastErr = n.Level == notify.LevelError
	}
}

func (m *Model) clampCursor() {
	if count := m.store.LineCount(); m.cursor >= count && count > 0 {
		m.cursor = count - 1
	} else if count == 0 {
		m.cursor = 0
	}
}
