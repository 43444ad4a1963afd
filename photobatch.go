// Package photobatch batch-transforms raster images in a directory:
// proportional resizing, center cropping, cover-fit renditions and
// format/color-mode conversion, with per-file failure isolation.
//
// Basic usage:
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//		"log"
//
//		"github.com/menta2k/photobatch"
//	)
//
//	func main() {
//		opts := photobatch.Options{MaxSide: 1200, Quality: 80}
//
//		summary, results, err := photobatch.ProcessDirectory(
//			context.Background(), "./photos", "./photos_processed", opts, 0)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		fmt.Printf("done: %d/%d\n", summary.Succeeded, summary.Attempted)
//		for _, r := range results {
//			if r.Err != nil {
//				fmt.Printf("failed: %v\n", r.Err)
//			}
//		}
//	}
//
// The package consists of four main components:
//
// 1. Geometry (pkg/geometry): target sizes, center-crop and cover-fit rectangles
// 2. Mode normalization (pkg/imagemode): color-mode decisions per output format
// 3. Codec boundary (pkg/imageio): decode/encode via imaging and chai2010/webp
// 4. Transform (pkg/transform): the per-file pipeline composing the above
//
// Resizing preserves aspect ratio unless both width and height are given,
// which is an explicit stretch. Converting transparent images to JPEG
// deliberately discards the alpha channel. Scaled dimensions round half away
// from zero and never drop below 1px.
package photobatch

import (
	"context"

	"github.com/menta2k/photobatch/internal/batch"
	"github.com/menta2k/photobatch/pkg/geometry"
	"github.com/menta2k/photobatch/pkg/imageio"
	"github.com/menta2k/photobatch/pkg/transform"
)

// Version of the photobatch library
const Version = "1.0.0"

// Options bundles the per-run transformation settings; see
// transform.Options.
type Options = transform.Options

// Result is the outcome for one input file. Output is the produced file
// name on success; Err carries the file name and cause on failure.
type Result struct {
	Input  string
	Output string
	Err    error
}

// Summary holds the run totals.
type Summary struct {
	Attempted int
	Succeeded int
	Failed    int
}

// ProcessFile transforms a single image file into dstDir and returns the
// output file name.
func ProcessFile(srcPath, dstDir string, opts Options) (string, error) {
	return transform.File(srcPath, dstDir, opts)
}

// ProcessDirectory transforms every eligible image in inputDir into
// outputDir. Results follow sorted input order; per-file failures are
// recorded without aborting the run. workers bounds concurrency (0 means
// one per CPU).
func ProcessDirectory(ctx context.Context, inputDir, outputDir string, opts Options, workers int) (Summary, []Result, error) {
	summary, outcomes, err := batch.Run(ctx, inputDir, outputDir, batch.Options{Transform: opts, Workers: workers}, nil)
	return Summary(summary), results(outcomes), err
}

// CoverDirectory renders every eligible image in inputDir as an exact
// width x height webp in outputDir, named baseName-<n> in sorted input
// order.
func CoverDirectory(ctx context.Context, inputDir, outputDir, baseName string, width, height int, saveOpts imageio.SaveOptions, workers int) (Summary, []Result, error) {
	target := geometry.Dimension{Width: width, Height: height}
	summary, outcomes, err := batch.RunCover(ctx, inputDir, outputDir, baseName, target, imageio.WEBP, saveOpts, workers, nil)
	return Summary(summary), results(outcomes), err
}

func results(outcomes []batch.Outcome) []Result {
	if outcomes == nil {
		return nil
	}
	out := make([]Result, len(outcomes))
	for i, o := range outcomes {
		out[i] = Result(o)
	}
	return out
}
