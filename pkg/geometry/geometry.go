// Package geometry computes target sizes and crop rectangles for image
// transformations. All functions are pure: they never touch pixel data.
//
// Rounding policy: scaled dimensions are rounded half away from zero
// (math.Round) and floored at 1px per axis, so extreme aspect ratios can
// never collapse a dimension to zero.
package geometry

import (
	"fmt"
	"math"
)

// Dimension is a pixel size. Both components are always >= 1.
type Dimension struct {
	Width  int
	Height int
}

// String returns the conventional WxH rendering, e.g. "1920x1080".
func (d Dimension) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// MaxSide returns the larger of the two components.
func (d Dimension) MaxSide() int {
	if d.Width > d.Height {
		return d.Width
	}
	return d.Height
}

// CropRect is a rectangle within a source image. Invariants:
// Left+Width <= source width, Top+Height <= source height, offsets >= 0.
type CropRect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// SizeSpec selects exactly one resizing strategy. The zero value means "no
// resize". Callers construct it once via FromOptions (or a constructor), so
// strategy precedence is decided in one place instead of being re-derived
// from nullable fields at every use site.
type SizeSpec struct {
	kind   specKind
	width  int
	height int
	side   int
}

type specKind int

const (
	specNone specKind = iota
	specMaxSide
	specExact
	specWidth
	specHeight
)

// NoResize returns the spec that leaves images untouched.
func NoResize() SizeSpec { return SizeSpec{} }

// ByMaxSide constrains the larger side to n, preserving aspect ratio.
func ByMaxSide(n int) SizeSpec { return SizeSpec{kind: specMaxSide, side: n} }

// Exact requests verbatim dimensions. Aspect ratio is not preserved; this is
// an explicit stretch.
func Exact(w, h int) SizeSpec { return SizeSpec{kind: specExact, width: w, height: h} }

// ByWidth scales to the given width, preserving aspect ratio.
func ByWidth(w int) SizeSpec { return SizeSpec{kind: specWidth, width: w} }

// ByHeight scales to the given height, preserving aspect ratio.
func ByHeight(h int) SizeSpec { return SizeSpec{kind: specHeight, height: h} }

// FromOptions builds a SizeSpec from optional width/height/max-side values
// (0 means unset). Priority: max-side > width+height > width > height > none.
func FromOptions(width, height, maxSide int) SizeSpec {
	switch {
	case maxSide > 0:
		return ByMaxSide(maxSide)
	case width > 0 && height > 0:
		return Exact(width, height)
	case width > 0:
		return ByWidth(width)
	case height > 0:
		return ByHeight(height)
	default:
		return NoResize()
	}
}

// IsZero reports whether the spec requests no resize.
func (s SizeSpec) IsZero() bool { return s.kind == specNone }

// ComputeTargetSize resolves the spec against an original size. The first
// matching strategy wins; the rest are ignored.
func ComputeTargetSize(original Dimension, spec SizeSpec) Dimension {
	switch spec.kind {
	case specMaxSide:
		ratio := float64(spec.side) / float64(original.MaxSide())
		return applyRatio(original, ratio)
	case specExact:
		return Dimension{Width: spec.width, Height: spec.height}
	case specWidth:
		ratio := float64(spec.width) / float64(original.Width)
		return applyRatio(original, ratio)
	case specHeight:
		ratio := float64(spec.height) / float64(original.Height)
		return applyRatio(original, ratio)
	default:
		return original
	}
}

// CenterCrop computes the centered rectangle of the target size within the
// source. The target must fit inside the source on both axes, i.e. callers
// resize first and crop second.
func CenterCrop(source, target Dimension) (CropRect, error) {
	if target.Width > source.Width || target.Height > source.Height {
		return CropRect{}, fmt.Errorf("crop %s does not fit inside %s", target, source)
	}
	return CropRect{
		Left:   (source.Width - target.Width) / 2,
		Top:    (source.Height - target.Height) / 2,
		Width:  target.Width,
		Height: target.Height,
	}, nil
}

// CoverFit scales the original so it fully covers the target rectangle,
// possibly overshooting one axis. Composing CoverFit with CenterCrop yields
// exactly the target size for any aspect-ratio combination (CSS
// object-fit: cover).
func CoverFit(original, target Dimension) Dimension {
	scale := math.Max(
		float64(target.Width)/float64(original.Width),
		float64(target.Height)/float64(original.Height),
	)
	scaled := applyRatio(original, scale)
	// Floating-point undershoot must never leave the target uncovered.
	if scaled.Width < target.Width {
		scaled.Width = target.Width
	}
	if scaled.Height < target.Height {
		scaled.Height = target.Height
	}
	return scaled
}

func applyRatio(d Dimension, ratio float64) Dimension {
	return Dimension{
		Width:  atLeastOne(math.Round(float64(d.Width) * ratio)),
		Height: atLeastOne(math.Round(float64(d.Height) * ratio)),
	}
}

func atLeastOne(v float64) int {
	if v < 1 {
		return 1
	}
	return int(v)
}
