package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ashwi.GO/config"
	mediaService "ashwi.GO/service/media"
)

var mediaDir string

var mediaCmd = &cobra.Command{
	Use:   "media:process",
	Short: "Derive thumbnail and listing renditions (JPEG + WebP) for product images",
	Run: func(cmd *cobra.Command, args []string) {
		dir := mediaDir
		if dir == "" {
			config.LoadAppConfig()
			dir = config.AppConfig.MediaDir
		}

		res, err := mediaService.ProcessDir(dir, mediaService.DefaultVariants)
		if err != nil {
			fmt.Printf("Media processing failed: %v\n", err)
			os.Exit(1)
		}
		for _, w := range res.Warnings {
			fmt.Printf("  [warn] %s\n", w)
		}
		fmt.Printf("Processed %d images, skipped %d files.\n", res.Processed, res.Skipped)
	},
}

func init() {
	mediaCmd.Flags().StringVarP(&mediaDir, "dir", "d", "", "Media directory (defaults to MEDIA_DIR)")
	rootCmd.AddCommand(mediaCmd)
}
