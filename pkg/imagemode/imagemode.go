// Package imagemode classifies the color mode of decoded images and decides
// whether pixels must be re-encoded in a different mode before saving in a
// given output format.
package imagemode

import (
	"image"
	"image/draw"
)

// ColorMode is the pixel-encoding scheme of a decoded image.
type ColorMode int

const (
	ModeOther ColorMode = iota
	ModeRGB
	ModeRGBA
	ModePaletted
	ModeGrayAlpha
)

func (m ColorMode) String() string {
	switch m {
	case ModeRGB:
		return "rgb"
	case ModeRGBA:
		return "rgba"
	case ModePaletted:
		return "paletted"
	case ModeGrayAlpha:
		return "gray+alpha"
	default:
		return "other"
	}
}

// Conversion is the normalization decision for one image/format pair.
type Conversion int

const (
	Keep Conversion = iota
	ToRGB
	ToRGBA
)

// Classify inspects the concrete decoded image type. JPEG decodes arrive as
// YCbCr, PNG as NRGBA/Gray/Paletted, WebP as YCbCr or NYCbCrA.
func Classify(img image.Image) ColorMode {
	switch img.(type) {
	case *image.Paletted:
		return ModePaletted
	case *image.YCbCr, *image.Gray, *image.Gray16, *image.CMYK:
		return ModeRGB
	case *image.NRGBA, *image.NRGBA64, *image.RGBA, *image.RGBA64, *image.NYCbCrA:
		return ModeRGBA
	case *image.Alpha, *image.Alpha16:
		return ModeGrayAlpha
	default:
		return ModeOther
	}
}

// Normalize decides how a decoded image's mode must change before encoding
// in the target format. JPEG carries neither alpha nor a palette, so those
// modes flatten to RGB — the alpha channel is deliberately discarded, with
// transparent regions rendering black. Every other format keeps true
// RGB/RGBA untouched; only palette data is expanded to RGBA so any encoder
// can take it.
func Normalize(mode ColorMode, alphaSupported bool) Conversion {
	if !alphaSupported {
		switch mode {
		case ModeRGBA, ModePaletted, ModeGrayAlpha:
			return ToRGB
		}
		return Keep
	}
	if mode == ModePaletted {
		return ToRGBA
	}
	return Keep
}

// Convert applies a normalization decision, redrawing pixels into a fresh
// canvas. Keep returns the input unchanged.
func Convert(img image.Image, c Conversion) image.Image {
	bounds := img.Bounds()
	switch c {
	case ToRGB:
		dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
		return dst
	case ToRGBA:
		dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
		return dst
	default:
		return img
	}
}
