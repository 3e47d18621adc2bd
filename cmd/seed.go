package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ashwi.GO/config"
	catalogService "ashwi.GO/service/catalog"
)

var seedCmd = &cobra.Command{
	Use:   "catalog:seed",
	Short: "Seed the catalog with the starter fixture (idempotent)",
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadAppConfig()
		config.InitRedis()

		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			os.Exit(1)
		}

		res, err := catalogService.Seed(db)
		if err != nil {
			fmt.Printf("Seed failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf(`
=== Seed Report ===
Categories:    %d created
Subcategories: %d created
Products:      %d created, %d already present
`, res.CategoriesCreated, res.SubcategoriesCreated, res.ProductsCreated, res.Skipped)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
