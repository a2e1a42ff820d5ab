// Package receipt renders the printable sales receipt for a completed order.
// Output is plain monospace text sized for a 32-column thermal roll.
package receipt

import (
	"fmt"
	"strings"
	"time"

	"github.com/NahlBee97/komputama-kasir-frontend/internal/domain"
)

const width = 32

// Header identifies the store on top of every receipt.
type Header struct {
	Name  string
	Line1 string
	Line2 string
}

type Renderer struct {
	header Header
}

func NewRenderer(header Header) *Renderer {
	return &Renderer{header: header}
}

// Render builds the receipt text for an order.
func (r *Renderer) Render(order *domain.Order) string {
	var sb strings.Builder

	sb.WriteString(center(strings.ToUpper(r.header.Name)))
	if r.header.Line1 != "" {
		sb.WriteString(center(r.header.Line1))
	}
	if r.header.Line2 != "" {
		sb.WriteString(center(r.header.Line2))
	}
	sb.WriteString(rule())

	when := order.CreatedAt
	if when.IsZero() {
		when = time.Now()
	}
	sb.WriteString(row("Date:", when.Format("02/01/2006 15:04")))
	sb.WriteString(row("Order #:", fmt.Sprintf("%d", order.ID)))
	sb.WriteString(rule())

	for _, item := range order.Items {
		name := fmt.Sprintf("%s x %d", item.Product.Name, item.Quantity)
		sb.WriteString(row(truncate(name, width-10), FormatRupiah(item.UnitPrice*int64(item.Quantity))))
	}
	sb.WriteString(rule())

	sb.WriteString(row("TOTAL", FormatRupiah(order.TotalAmount)))
	sb.WriteString(row("CASH", FormatRupiah(order.PaymentCash)))
	sb.WriteString(row("CHANGE", FormatRupiah(order.PaymentChange)))
	sb.WriteString(rule())

	sb.WriteString(center("Terima kasih!"))
	return sb.String()
}

// FormatRupiah renders a whole-rupiah amount with dot thousands separators.
func FormatRupiah(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := fmt.Sprintf("%d", amount)

	var sb strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(d)
	}
	if neg {
		return "Rp -" + sb.String()
	}
	return "Rp " + sb.String()
}

func center(s string) string {
	if len(s) >= width {
		return s + "\n"
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s + "\n"
}

func row(left, right string) string {
	gap := width - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right + "\n"
}

func rule() string {
	return strings.Repeat("-", width) + "\n"
}

func truncate(s string, max int) string {
	if len(s) <= max || max < 4 {
		return s
	}
	return s[:max-3] + "..."
}
