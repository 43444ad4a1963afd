package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "photobatch",
	Short: "photobatch - batch resize, crop and convert images",
	Long:  "photobatch transforms every image in a directory: proportional resizing,\ncenter cropping, cover-fit renditions and format conversion (jpeg/png/webp).",
}

// Execute runs the CLI. Validation failures exit non-zero; a completed batch
// exits zero even when individual files failed (those are itemized on
// stdout).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}
