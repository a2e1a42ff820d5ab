package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/NahlBee97/komputama-kasir-frontend/internal/domain"
	"github.com/NahlBee97/komputama-kasir-frontend/internal/receipt"
	"github.com/spf13/cobra"
)

var (
	flagName     string
	flagCategory string
	flagPrice    int64
	flagStock    int
	flagImage    string

	flagThreshold int
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage the product catalog",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all products",
	RunE:  runProductsList,
}

var productsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a product to the catalog",
	RunE:  runProductsCreate,
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a product; only the given flags change",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductsUpdate,
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a product from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductsDelete,
}

var productsLowStockCmd = &cobra.Command{
	Use:   "low-stock",
	Short: "List active products at or below the stock threshold",
	RunE:  runProductsLowStock,
}

func init() {
	productsCreateCmd.Flags().StringVar(&flagName, "name", "", "product name")
	productsCreateCmd.Flags().StringVar(&flagCategory, "category", "", "product category")
	productsCreateCmd.Flags().Int64Var(&flagPrice, "price", 0, "price in rupiah")
	productsCreateCmd.Flags().IntVar(&flagStock, "stock", 0, "initial stock")
	productsCreateCmd.Flags().StringVar(&flagImage, "image", "", "image URL")

	productsUpdateCmd.Flags().StringVar(&flagName, "name", "", "product name")
	productsUpdateCmd.Flags().StringVar(&flagCategory, "category", "", "product category")
	productsUpdateCmd.Flags().Int64Var(&flagPrice, "price", 0, "price in rupiah")
	productsUpdateCmd.Flags().IntVar(&flagStock, "stock", -1, "stock")
	productsUpdateCmd.Flags().StringVar(&flagImage, "image", "", "image URL")

	productsLowStockCmd.Flags().IntVar(&flagThreshold, "threshold", 5, "stock threshold")

	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsCreateCmd)
	productsCmd.AddCommand(productsUpdateCmd)
	productsCmd.AddCommand(productsDeleteCmd)
	productsCmd.AddCommand(productsLowStockCmd)
}

func runProductsList(cmd *cobra.Command, args []string) error {
	svc, _, err := newService(cmd.Context())
	if err != nil {
		return err
	}
	products, err := svc.Products(cmd.Context())
	if err != nil {
		return err
	}
	printProducts(products)
	return nil
}

func runProductsCreate(cmd *cobra.Command, args []string) error {
	svc, _, err := newService(cmd.Context())
	if err != nil {
		return err
	}
	created, err := svc.CreateProduct(cmd.Context(), domain.NewProduct{
		Name:     flagName,
		Category: flagCategory,
		Price:    flagPrice,
		Stock:    flagStock,
		Image:    flagImage,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Created product %d: %s\n", created.ID, created.Name)
	return nil
}

func runProductsUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	svc, _, err := newService(cmd.Context())
	if err != nil {
		return err
	}

	var update domain.UpdateProduct
	if cmd.Flags().Changed("name") {
		update.Name = &flagName
	}
	if cmd.Flags().Changed("category") {
		update.Category = &flagCategory
	}
	if cmd.Flags().Changed("price") {
		update.Price = &flagPrice
	}
	if cmd.Flags().Changed("stock") {
		update.Stock = &flagStock
	}
	if cmd.Flags().Changed("image") {
		update.Image = &flagImage
	}

	updated, err := svc.UpdateProduct(cmd.Context(), id, update)
	if err != nil {
		return err
	}
	fmt.Printf("Updated product %d: %s\n", updated.ID, updated.Name)
	return nil
}

func runProductsDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	svc, _, err := newService(cmd.Context())
	if err != nil {
		return err
	}
	if err := svc.DeleteProduct(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Printf("Deleted product %d\n", id)
	return nil
}

func runProductsLowStock(cmd *cobra.Command, args []string) error {
	svc, _, err := newService(cmd.Context())
	if err != nil {
		return err
	}
	products, err := svc.LowStock(cmd.Context(), flagThreshold)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		fmt.Println("No products at or below the threshold.")
		return nil
	}
	printProducts(products)
	return nil
}

func printProducts(products []domain.Product) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK\tSOLD\tACTIVE")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%t\n",
			p.ID, p.Name, p.Category, receipt.FormatRupiah(p.Price), p.Stock, p.Sale, p.IsActive)
	}
	w.Flush()
}
