package receipt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/NahlBee97/komputama-kasir-frontend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 0", FormatRupiah(0))
	assert.Equal(t, "Rp 500", FormatRupiah(500))
	assert.Equal(t, "Rp 15.000", FormatRupiah(15000))
	assert.Equal(t, "Rp 1.250.000", FormatRupiah(1250000))
}

func TestRender_ContainsOrderLinesAndTotals(t *testing.T) {
	r := NewRenderer(Header{Name: "Diary Kasir", Line1: "Fried Chicken Expert", Line2: "Jl. Sudirman No. 10"})
	order := &domain.Order{
		ID:            42,
		TotalAmount:   35000,
		PaymentCash:   50000,
		PaymentChange: 15000,
		CreatedAt:     time.Date(2026, 8, 30, 18, 45, 0, 0, time.Local),
		Items: []domain.OrderItem{
			{Quantity: 2, UnitPrice: 15000, Product: domain.Product{Name: "Ayam Goreng"}},
			{Quantity: 1, UnitPrice: 5000, Product: domain.Product{Name: "Es Teh"}},
		},
	}

	out := r.Render(order)

	assert.Contains(t, out, "DIARY KASIR")
	assert.Contains(t, out, "Order #:")
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "Ayam Goreng x 2")
	assert.Contains(t, out, "Rp 30.000")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "Rp 35.000")
	assert.Contains(t, out, "CHANGE")
	assert.Contains(t, out, "Rp 15.000")

	// Nothing wider than the paper roll.
	for _, line := range strings.Split(out, "\n") {
		require.LessOrEqual(t, len(line), 32, "line %q", line)
	}
}

func TestFilePrinter_WritesSpoolFile(t *testing.T) {
	dir := t.TempDir()
	p, err := NewFilePrinter(dir)
	require.NoError(t, err)

	require.NoError(t, p.Print(7, "receipt body"))

	entries, err := filepath.Glob(filepath.Join(dir, "order-7-*.txt"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	body, err := os.ReadFile(entries[0])
	require.NoError(t, err)
	assert.Equal(t, "receipt body", string(body))
}
