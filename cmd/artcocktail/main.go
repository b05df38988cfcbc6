package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register migrations and seeders via their init() funcs.
	_ "github.com/artcocktail/artcocktail/database/migrations"
	_ "github.com/artcocktail/artcocktail/database/seeders"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "artcocktail",
	Short: "ArtCocktail — art storefront API",
	Long:  "ArtCocktail serves the online art gallery: catalog, orders and the admin dashboard API.",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)
}
