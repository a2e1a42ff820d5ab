package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/NahlBee97/komputama-kasir-frontend/internal/domain"
	"github.com/NahlBee97/komputama-kasir-frontend/internal/receipt"
	"github.com/spf13/cobra"
)

var (
	flagStart string
	flagEnd   string
	flagOut   string
)

var salesCmd = &cobra.Command{
	Use:   "sales",
	Short: "Browse sales history",
}

var salesTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List today's orders",
	RunE:  runSalesToday,
}

var salesRangeCmd = &cobra.Command{
	Use:   "range",
	Short: "List orders between --start and --end (YYYY-MM-DD)",
	RunE:  runSalesRange,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Sales reports and exports",
}

var reportSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show aggregate sales figures",
	RunE:  runReportSummary,
}

var reportTopCmd = &cobra.Command{
	Use:   "top",
	Short: "List best-selling products",
	RunE:  runReportTop,
}

var reportExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export sales between --start and --end to an xlsx file",
	RunE:  runReportExport,
}

func init() {
	salesRangeCmd.Flags().StringVar(&flagStart, "start", "", "start date (YYYY-MM-DD)")
	salesRangeCmd.Flags().StringVar(&flagEnd, "end", "", "end date (YYYY-MM-DD)")

	reportExportCmd.Flags().StringVar(&flagStart, "start", "", "start date (YYYY-MM-DD)")
	reportExportCmd.Flags().StringVar(&flagEnd, "end", "", "end date (YYYY-MM-DD)")
	reportExportCmd.Flags().StringVar(&flagOut, "out", "sales.xlsx", "output file")

	salesCmd.AddCommand(salesTodayCmd)
	salesCmd.AddCommand(salesRangeCmd)

	reportCmd.AddCommand(reportSummaryCmd)
	reportCmd.AddCommand(reportTopCmd)
	reportCmd.AddCommand(reportExportCmd)
}

func runSalesToday(cmd *cobra.Command, args []string) error {
	svc, _, err := newService(cmd.Context())
	if err != nil {
		return err
	}
	orders, err := svc.TodaySales(cmd.Context())
	if err != nil {
		return err
	}
	printOrders(orders)
	return nil
}

func runSalesRange(cmd *cobra.Command, args []string) error {
	start, end, err := parseRange()
	if err != nil {
		return err
	}
	svc, _, err := newService(cmd.Context())
	if err != nil {
		return err
	}
	orders, err := svc.Sales(cmd.Context(), start, end)
	if err != nil {
		return err
	}
	printOrders(orders)
	return nil
}

func runReportSummary(cmd *cobra.Command, args []string) error {
	svc, _, err := newService(cmd.Context())
	if err != nil {
		return err
	}
	summary, err := svc.Summary(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Printf("Total revenue:  %s\n", receipt.FormatRupiah(summary.TotalRevenue))
	fmt.Printf("Total sales:    %d\n", summary.TotalSales)
	fmt.Printf("Average sale:   %s\n", receipt.FormatRupiah(summary.AverageSaleValue))
	fmt.Printf("Items sold:     %d\n", summary.ItemsSold)
	return nil
}

func runReportTop(cmd *cobra.Command, args []string) error {
	svc, _, err := newService(cmd.Context())
	if err != nil {
		return err
	}
	products, err := svc.TopSelling(cmd.Context())
	if err != nil {
		return err
	}
	printProducts(products)
	return nil
}

func runReportExport(cmd *cobra.Command, args []string) error {
	start, end, err := parseRange()
	if err != nil {
		return err
	}
	svc, _, err := newService(cmd.Context())
	if err != nil {
		return err
	}

	f, err := os.Create(flagOut)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := svc.ExportSales(cmd.Context(), start, end, f); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", flagOut)
	return nil
}

func parseRange() (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", flagStart)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --start: %v", err)
	}
	end, err := time.Parse("2006-01-02", flagEnd)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --end: %v", err)
	}
	return start, end, nil
}

func printOrders(orders []domain.Order) {
	if len(orders) == 0 {
		fmt.Println("No orders.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCASHIER\tTOTAL\tCASH\tCHANGE\tSTATUS\tCREATED")
	var total int64
	for _, o := range orders {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%s\n",
			o.ID, o.UserID,
			receipt.FormatRupiah(o.TotalAmount),
			receipt.FormatRupiah(o.PaymentCash),
			receipt.FormatRupiah(o.PaymentChange),
			o.Status,
			o.CreatedAt.Format("2006-01-02 15:04"))
		if o.Status == domain.OrderCompleted {
			total += o.TotalAmount
		}
	}
	w.Flush()
	fmt.Printf("\n%d orders, completed total %s\n", len(orders), receipt.FormatRupiah(total))
}
