// Package imageio is the codec boundary: decoding images from disk and
// encoding them back with per-format options. Everything above it works on
// image.Image values and never touches encoder details.
package imageio

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// Format is an output image format.
type Format string

const (
	JPEG Format = "jpeg"
	PNG  Format = "png"
	WEBP Format = "webp"
)

// ParseFormat normalizes a user-supplied format name. "jpg" is an alias for
// "jpeg".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "jpg", "jpeg":
		return JPEG, nil
	case "png":
		return PNG, nil
	case "webp":
		return WEBP, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want jpeg, png or webp)", name)
	}
}

// FormatFromPath infers the format from a file extension. The second return
// is false when the extension is not a supported image format.
func FormatFromPath(path string) (Format, bool) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", false
	}
	f, err := ParseFormat(ext[1:])
	if err != nil {
		return "", false
	}
	return f, true
}

// Extension returns the file extension including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// SupportsAlpha reports whether the format can encode an alpha channel.
func (f Format) SupportsAlpha() bool {
	return f != JPEG
}

// SaveOptions carries encoder tuning. Quality applies to JPEG and lossy
// WebP; Lossless switches WebP to its lossless coder and is ignored by the
// other formats.
type SaveOptions struct {
	Quality  int
	Lossless bool
}

// Load reads and decodes an image file. imaging.Open handles the formats it
// has decoders registered for; WebP files that slip past it are decoded
// explicitly.
func Load(path string) (image.Image, error) {
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if img, err := webp.Decode(f); err == nil {
		return img, nil
	}
	if _, err := f.Seek(0, 0); err == nil {
		if img, _, err := image.Decode(f); err == nil {
			return img, nil
		}
	}
	return nil, fmt.Errorf("image: unknown format for %s", path)
}

// Save encodes an image to path in the given format.
func Save(img image.Image, path string, format Format, opts SaveOptions) error {
	switch format {
	case WEBP:
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return webp.Encode(f, img, &webp.Options{Lossless: opts.Lossless, Quality: float32(opts.Quality)})
	case PNG:
		return imaging.Save(img, path)
	case JPEG:
		return imaging.Save(img, path, imaging.JPEGQuality(opts.Quality))
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
