package tui

import (
	"fmt"
	"strings"

	"github.com/NahlBee97/komputama-kasir-frontend/internal/receipt"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	switch m.mode {
	case modePay:
		return m.payView()
	case modeReceipt:
		return m.receiptViewRender()
	}
	return m.saleView()
}

func (m Model) saleView() string {
	var b strings.Builder

	title := fmt.Sprintf("KASIR — %s", m.user.Name)
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")

	left := m.products.View()
	if m.loadErr != nil {
		left = "Gagal memuat produk.\nTekan f5 untuk mencoba lagi."
	}

	productPane := m.styles.Pane
	cartPane := m.styles.Pane
	if m.focus == focusProducts {
		productPane = m.styles.ActivePane
	} else {
		cartPane = m.styles.ActivePane
	}

	b.WriteString(lipgloss.JoinHorizontal(
		lipgloss.Top,
		productPane.Render(left),
		cartPane.Render(m.cartView()),
	))
	b.WriteString("\n")

	if m.toast != "" {
		style := m.styles.ToastOK
		if m.toastErr {
			style = m.styles.ToastErr
		}
		b.WriteString(style.Render(m.toast))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("tab panel · enter tambah · +/- jumlah · d hapus · f8 bayar · f5 muat ulang · q keluar"))
	return b.String()
}

func (m Model) cartView() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Keranjang"))
	b.WriteString("\n\n")

	if m.store.Loading() {
		b.WriteString("Memuat...\n")
		return b.String()
	}
	if m.store.Errored() {
		b.WriteString("Keranjang tidak tersedia.\nTekan f5 untuk mencoba lagi.\n")
		return b.String()
	}

	items := m.store.Items()
	if len(items) == 0 {
		b.WriteString("Keranjang kosong.\n")
		return b.String()
	}

	for i, item := range items {
		line := fmt.Sprintf("%-18s x%-3d %12s",
			truncateName(item.Product.Name, 18),
			item.Quantity,
			receipt.FormatRupiah(item.Product.Price*int64(item.Quantity)),
		)
		style := m.styles.CartLine
		if m.focus == focusCart && i == m.cursor {
			style = m.styles.Selected
		}
		b.WriteString(style.Render(line))
		if m.store.Pending(item.ID) {
			b.WriteString(m.styles.PendingTag.Render(" …"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Total.Render(fmt.Sprintf("TOTAL %s", receipt.FormatRupiah(m.store.TotalAmount()))))
	b.WriteString("\n")
	return b.String()
}

func (m Model) payView() string {
	total := m.store.TotalAmount()
	cash := m.cashValue()
	change := cash - total
	if change < 0 {
		change = 0
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("PEMBAYARAN"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Total:  %s\n", receipt.FormatRupiah(total)))
	b.WriteString(fmt.Sprintf("Tunai:  %s\n", m.cash.View()))
	b.WriteString(fmt.Sprintf("Kembali: %s\n\n", receipt.FormatRupiah(change)))
	if cash < total {
		b.WriteString(m.styles.Help.Render("Tunai belum mencukupi."))
	} else {
		b.WriteString(m.styles.Help.Render("enter bayar & cetak struk"))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("esc batal"))

	return m.styles.Overlay.Render(b.String())
}

func (m Model) receiptViewRender() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("STRUK"))
	b.WriteString("\n")
	b.WriteString(m.receiptView.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("tekan tombol apa saja untuk kembali"))
	return b.String()
}

func truncateName(s string, max int) string {
	if len(s) <= max || max < 4 {
		return s
	}
	return s[:max-3] + "..."
}
