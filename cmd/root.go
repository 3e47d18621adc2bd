// Package cmd holds the CLI. Commands are named module:verb and extra
// commands register themselves through Register from init().
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ashwi",
	Short: "Ashwi Furniture catalog CLI",
	Long:  "Management commands for the Ashwi Furniture catalog: migrations, seeding, search indexing, media processing and cron.",
}

// Execute runs the CLI. Registered extension commands are applied first.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
