package admin

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/NahlBee97/komputama-kasir-frontend/internal/domain"
	"github.com/tealeg/xlsx"
)

// ExportSales writes the sales in [start, end] as an Excel workbook, one row
// per order.
func (s *Service) ExportSales(ctx context.Context, start, end time.Time, w io.Writer) error {
	orders, err := s.Sales(ctx, start, end)
	if err != nil {
		return fmt.Errorf("fetch sales: %w", err)
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Sales")
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	headers := []string{"ID", "Cashier", "Total", "Cash", "Change", "Status", "Items", "CreatedAt"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, o := range orders {
		row := sheet.AddRow()
		row.AddCell().SetValue(o.ID)
		row.AddCell().SetValue(o.UserID)
		row.AddCell().SetValue(o.TotalAmount)
		row.AddCell().SetValue(o.PaymentCash)
		row.AddCell().SetValue(o.PaymentChange)
		row.AddCell().SetValue(string(o.Status))
		row.AddCell().SetValue(itemCount(o))
		row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func itemCount(o domain.Order) int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}
