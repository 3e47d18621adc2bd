package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ashwi.GO/cron/jobs"
)

var reindexCmd = &cobra.Command{
	Use:   "search:reindex",
	Short: "Rebuild the Elasticsearch product index",
	Run: func(cmd *cobra.Command, args []string) {
		n, err := jobs.ReindexProducts()
		if err != nil {
			fmt.Printf("Reindex failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Indexed %d products.\n", n)
	},
}

func init() {
	rootCmd.AddCommand(reindexCmd)
}
