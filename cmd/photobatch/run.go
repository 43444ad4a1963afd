package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/menta2k/photobatch/internal/batch"
	"github.com/menta2k/photobatch/internal/config"
	"github.com/menta2k/photobatch/internal/tui"
	"github.com/menta2k/photobatch/pkg/imageio"
	"github.com/menta2k/photobatch/pkg/transform"
)

var (
	runInputDir   string
	runOutputDir  string
	runWidth      int
	runHeight     int
	runMaxSide    int
	runFormat     string
	runQuality    int
	runCropCenter bool
	runLossless   bool
	runWorkers    int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Transform all images in a directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := os.Stat(runInputDir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("input directory not found: %s", runInputDir)
		}

		var format imageio.Format
		if runFormat != "" {
			if format, err = imageio.ParseFormat(runFormat); err != nil {
				return err
			}
		}

		opts := batch.Options{
			Transform: transform.Options{
				Width:      runWidth,
				Height:     runHeight,
				MaxSide:    runMaxSide,
				Format:     format,
				Quality:    runQuality,
				CropCenter: runCropCenter,
				Lossless:   runLossless,
			},
			Workers: runWorkers,
		}
		if err := opts.Transform.Validate(); err != nil {
			return err
		}

		outputDir := runOutputDir
		if outputDir == "" {
			outputDir = config.DefaultOutputDir(runInputDir)
		}

		updates := make(chan batch.ProgressUpdate, 64)
		program := tea.NewProgram(tui.NewModel(updates))

		uiDone := make(chan struct{})
		go func() {
			_, _ = program.Run()
			close(uiDone)
		}()

		summary, outcomes, err := batch.Run(context.Background(), runInputDir, outputDir, opts, updates)
		close(updates)
		<-uiDone
		if err != nil {
			return err
		}

		if summary.Attempted == 0 {
			fmt.Fprintln(os.Stdout, "No images found in the input directory.")
			return nil
		}

		reportRun(summary, outcomes, outputDir)
		return nil
	},
}

func reportRun(summary batch.Summary, outcomes []batch.Outcome, outputDir string) {
	rows := []tui.SummaryRow{
		{Label: "Images attempted", Value: fmt.Sprintf("%d", summary.Attempted)},
		{Label: "Succeeded", Value: fmt.Sprintf("%d", summary.Succeeded)},
		{Label: "Failed", Value: fmt.Sprintf("%d", summary.Failed)},
	}
	fmt.Fprintln(os.Stdout, tui.RenderSummary(rows))

	if failures := tui.RenderFailures(outcomes); failures != "" {
		fmt.Fprintln(os.Stdout, failures)
	}

	outPath := outputDir
	if abs, err := filepath.Abs(outputDir); err == nil {
		outPath = abs
	}
	fmt.Fprintf(os.Stdout, "Results written to: %s\n", outPath)
}

func init() {
	runCmd.Flags().StringVarP(&runInputDir, "input", "i", "", "input directory with images")
	runCmd.Flags().StringVarP(&runOutputDir, "output", "o", "", "output directory (default: {input}_processed)")
	runCmd.Flags().IntVar(&runWidth, "width", 0, "target width in px")
	runCmd.Flags().IntVar(&runHeight, "height", 0, "target height in px")
	runCmd.Flags().IntVar(&runMaxSide, "max-side", 0, "maximum side in px, preserves aspect ratio")
	runCmd.Flags().StringVarP(&runFormat, "format", "f", "", "output format: jpeg|png|webp (default: keep source format)")
	runCmd.Flags().IntVarP(&runQuality, "quality", "q", config.DefaultQuality, "encoder quality 0-100")
	runCmd.Flags().BoolVar(&runCropCenter, "crop-center", false, "center-crop to --width x --height after resize")
	runCmd.Flags().BoolVar(&runLossless, "lossless", false, "lossless webp encoding")
	runCmd.Flags().IntVar(&runWorkers, "workers", 0, "concurrent workers (default: one per CPU)")
	_ = runCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(runCmd)
}
