// Package batch walks a flat input directory and applies one transformation
// per eligible image, isolating per-file failures so a corrupt file never
// aborts the rest of the run.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/menta2k/photobatch/pkg/geometry"
	"github.com/menta2k/photobatch/pkg/imageio"
	"github.com/menta2k/photobatch/pkg/transform"
)

// supportedExtensions is fixed at startup; lookups are case-insensitive.
var supportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Eligible reports whether a file name has a supported image extension.
func Eligible(name string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(name))]
}

// CollectImages lists the eligible image files directly inside dir
// (non-recursive), sorted by name so runs over the same input set are
// reproducible.
func CollectImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if Eligible(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Run transforms every eligible image in inputDir into outputDir. Option
// validation and output-directory creation happen before any file is
// touched and abort the run; per-file errors are recorded in the outcomes
// and the batch continues. Progress counters stream over updates when it is
// non-nil.
func Run(ctx context.Context, inputDir, outputDir string, opts Options, updates chan<- ProgressUpdate) (Summary, []Outcome, error) {
	if err := opts.Transform.Validate(); err != nil {
		return Summary{}, nil, err
	}

	return run(ctx, inputDir, outputDir, opts.Workers, updates, func(name string, _ int) (string, error) {
		return transform.File(filepath.Join(inputDir, name), outputDir, opts.Transform)
	})
}

// RunCover applies the cover-fit preset: every image becomes exactly target
// pixels, named baseName-<n> with 1-based n following sorted input order.
func RunCover(ctx context.Context, inputDir, outputDir, baseName string, target geometry.Dimension, format imageio.Format, saveOpts imageio.SaveOptions, workers int, updates chan<- ProgressUpdate) (Summary, []Outcome, error) {
	return run(ctx, inputDir, outputDir, workers, updates, func(name string, index int) (string, error) {
		outName := fmt.Sprintf("%s-%d%s", baseName, index+1, format.Extension())
		if err := transform.CoverFile(filepath.Join(inputDir, name), filepath.Join(outputDir, outName), target, format, saveOpts); err != nil {
			return "", err
		}
		return outName, nil
	})
}

type job struct {
	index int
	name  string
}

func run(ctx context.Context, inputDir, outputDir string, workers int, updates chan<- ProgressUpdate, transformOne func(name string, index int) (string, error)) (Summary, []Outcome, error) {
	info, err := os.Stat(inputDir)
	if err != nil {
		return Summary{}, nil, fmt.Errorf("input directory: %w", err)
	}
	if !info.IsDir() {
		return Summary{}, nil, fmt.Errorf("input path %s is not a directory", inputDir)
	}

	// Idempotent: an existing output directory is fine.
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Summary{}, nil, fmt.Errorf("create output directory: %w", err)
	}

	names, err := CollectImages(inputDir)
	if err != nil {
		return Summary{}, nil, err
	}
	if len(names) == 0 {
		return Summary{}, nil, nil
	}

	if updates != nil {
		updates <- ProgressUpdate{TotalDelta: len(names)}
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(names) {
		workers = len(names)
	}

	jobs := make(chan job)
	outcomes := make([]Outcome, len(names))

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				output, err := transformOne(j.name, j.index)
				if err != nil {
					outcomes[j.index] = Outcome{Input: j.name, Err: fmt.Errorf("%s: %w", j.name, err)}
					if updates != nil {
						updates <- ProgressUpdate{ProcessedDelta: 1, ErrorDelta: 1}
					}
					continue
				}
				outcomes[j.index] = Outcome{Input: j.name, Output: output}
				if updates != nil {
					updates <- ProgressUpdate{ProcessedDelta: 1}
				}
			}
		}()
	}

	for i, name := range names {
		select {
		case jobs <- job{index: i, name: name}:
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return Summary{}, nil, ctx.Err()
		}
	}
	close(jobs)
	wg.Wait()

	summary := Summary{Attempted: len(names)}
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary, outcomes, nil
}
