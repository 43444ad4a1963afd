package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/menta2k/photobatch/internal/batch"
	"github.com/menta2k/photobatch/internal/tui"
	"github.com/menta2k/photobatch/pkg/geometry"
	"github.com/menta2k/photobatch/pkg/imageio"
)

var (
	coverInputDir string
	coverWidth    int
	coverHeight   int
	coverQuality  int
	coverLossless bool
	coverWorkers  int
)

// cover produces fixed-size webp renditions: every image is scaled to fully
// cover the target rectangle and the overshoot is cropped away, so the
// output is always exactly width x height. Files are named <name>-1.webp,
// <name>-2.webp, ... in sorted input order, in a sibling directory
// {name}_{width}x{height}.
var coverCmd = &cobra.Command{
	Use:   "cover <name>",
	Short: "Produce exact-size webp renditions (scale to cover, then center-crop)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return fmt.Errorf("name must not be empty")
		}
		info, err := os.Stat(coverInputDir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("input directory not found: %s", coverInputDir)
		}
		if coverWidth <= 0 || coverHeight <= 0 {
			return fmt.Errorf("--width and --height must be positive")
		}
		if coverQuality < 0 || coverQuality > 100 {
			return fmt.Errorf("quality must be in range 0-100, got %d", coverQuality)
		}

		target := geometry.Dimension{Width: coverWidth, Height: coverHeight}
		outputDir := filepath.Join(filepath.Dir(filepath.Clean(coverInputDir)),
			fmt.Sprintf("%s_%dx%d", name, coverWidth, coverHeight))

		updates := make(chan batch.ProgressUpdate, 64)
		program := tea.NewProgram(tui.NewModel(updates))

		uiDone := make(chan struct{})
		go func() {
			_, _ = program.Run()
			close(uiDone)
		}()

		saveOpts := imageio.SaveOptions{Quality: coverQuality, Lossless: coverLossless}
		summary, outcomes, err := batch.RunCover(context.Background(), coverInputDir, outputDir,
			name, target, imageio.WEBP, saveOpts, coverWorkers, updates)
		close(updates)
		<-uiDone
		if err != nil {
			return err
		}

		if summary.Attempted == 0 {
			fmt.Fprintln(os.Stdout, "No images found in the input directory.")
			fmt.Fprintln(os.Stdout, "Supported formats: jpg, jpeg, png, webp")
			return nil
		}

		reportRun(summary, outcomes, outputDir)
		return nil
	},
}

func init() {
	coverCmd.Flags().StringVarP(&coverInputDir, "input", "i", ".", "input directory with images")
	coverCmd.Flags().IntVar(&coverWidth, "width", 0, "exact output width in px")
	coverCmd.Flags().IntVar(&coverHeight, "height", 0, "exact output height in px")
	coverCmd.Flags().IntVarP(&coverQuality, "quality", "q", 100, "webp quality 0-100")
	coverCmd.Flags().BoolVar(&coverLossless, "lossless", true, "lossless webp encoding")
	coverCmd.Flags().IntVar(&coverWorkers, "workers", 0, "concurrent workers (default: one per CPU)")
	_ = coverCmd.MarkFlagRequired("width")
	_ = coverCmd.MarkFlagRequired("height")

	rootCmd.AddCommand(coverCmd)
}
