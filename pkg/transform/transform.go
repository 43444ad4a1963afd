// Package transform turns one decoded image into one output image: optional
// resize, optional center crop, format resolution and color-mode
// normalization. Geometry comes from pkg/geometry, mode decisions from
// pkg/imagemode, pixel work from disintegration/imaging, encoding from
// pkg/imageio.
package transform

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/menta2k/photobatch/pkg/geometry"
	"github.com/menta2k/photobatch/pkg/imageio"
	"github.com/menta2k/photobatch/pkg/imagemode"
)

// Options bundles the per-run transformation settings. Zero width/height/
// max-side mean unset; Format "" means "infer from the source extension".
// Options are validated once before a batch starts and shared read-only by
// every item.
type Options struct {
	Width      int
	Height     int
	MaxSide    int
	Format     imageio.Format
	Quality    int
	CropCenter bool
	Lossless   bool
}

// Validate rejects option combinations before any file is touched.
func (o Options) Validate() error {
	if o.Quality < 0 || o.Quality > 100 {
		return fmt.Errorf("quality must be in range 0-100, got %d", o.Quality)
	}
	if o.CropCenter && (o.Width <= 0 || o.Height <= 0) {
		return fmt.Errorf("crop-center requires both width and height")
	}
	return nil
}

// SizeSpec derives the resize strategy from the options.
func (o Options) SizeSpec() geometry.SizeSpec {
	return geometry.FromOptions(o.Width, o.Height, o.MaxSide)
}

// Size returns the pixel dimensions of a decoded image.
func Size(img image.Image) geometry.Dimension {
	b := img.Bounds()
	return geometry.Dimension{Width: b.Dx(), Height: b.Dy()}
}

// ResolveFormat picks the output format: explicit override first, then the
// source file's extension, then JPEG for anything unrecognized.
func ResolveFormat(srcPath string, override imageio.Format) imageio.Format {
	if override != "" {
		return override
	}
	if f, ok := imageio.FormatFromPath(srcPath); ok {
		return f
	}
	return imageio.JPEG
}

// OutputName derives the output file name: source base name plus the
// resolved format's extension ("photo.JPG" converted to webp becomes
// "photo.webp").
func OutputName(srcPath string, format imageio.Format) string {
	base := filepath.Base(srcPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + format.Extension()
}

// Apply runs the pixel pipeline on a decoded image: resize per the size
// spec, then the optional center crop, then color-mode normalization for
// the target format. Steps are applied in this fixed order.
func Apply(img image.Image, opts Options, format imageio.Format) (image.Image, error) {
	if spec := opts.SizeSpec(); !spec.IsZero() {
		target := geometry.ComputeTargetSize(Size(img), spec)
		img = imaging.Resize(img, target.Width, target.Height, imaging.Lanczos)
	}

	if opts.CropCenter && opts.Width > 0 && opts.Height > 0 {
		rect, err := geometry.CenterCrop(Size(img), geometry.Dimension{Width: opts.Width, Height: opts.Height})
		if err != nil {
			return nil, err
		}
		img = imaging.Crop(img, image.Rect(rect.Left, rect.Top, rect.Left+rect.Width, rect.Top+rect.Height))
	}

	mode := imagemode.Classify(img)
	img = imagemode.Convert(img, imagemode.Normalize(mode, format.SupportsAlpha()))
	return img, nil
}

// Cover scales the image to fully cover the target size, then center-crops
// the overshoot away, yielding exactly target. This is the cover-fit preset
// used for fixed-size renditions.
func Cover(img image.Image, target geometry.Dimension, format imageio.Format) (image.Image, error) {
	scaled := geometry.CoverFit(Size(img), target)
	img = imaging.Resize(img, scaled.Width, scaled.Height, imaging.Lanczos)

	rect, err := geometry.CenterCrop(scaled, target)
	if err != nil {
		return nil, err
	}
	img = imaging.Crop(img, image.Rect(rect.Left, rect.Top, rect.Left+rect.Width, rect.Top+rect.Height))

	mode := imagemode.Classify(img)
	img = imagemode.Convert(img, imagemode.Normalize(mode, format.SupportsAlpha()))
	return img, nil
}

// File transforms one file on disk into one file in dstDir and returns the
// output file name. The source is never modified; any decode, geometry or
// encode error propagates to the caller untouched so the batch layer can
// attach the file name and keep going.
func File(srcPath, dstDir string, opts Options) (string, error) {
	img, err := imageio.Load(srcPath)
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}

	format := ResolveFormat(srcPath, opts.Format)
	out, err := Apply(img, opts, format)
	if err != nil {
		return "", err
	}

	name := OutputName(srcPath, format)
	saveOpts := imageio.SaveOptions{Quality: opts.Quality, Lossless: opts.Lossless}
	if err := imageio.Save(out, filepath.Join(dstDir, name), format, saveOpts); err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}
	return name, nil
}

// CoverFile is the per-file entry point for the cover-fit preset: the result
// is always exactly target pixels, written to dstPath in the given format.
func CoverFile(srcPath, dstPath string, target geometry.Dimension, format imageio.Format, saveOpts imageio.SaveOptions) error {
	img, err := imageio.Load(srcPath)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	out, err := Cover(img, target, format)
	if err != nil {
		return err
	}

	if err := imageio.Save(out, dstPath, format, saveOpts); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
