package imagemode

import (
	"image"
	"image/color"
	"testing"
)

func TestClassify(t *testing.T) {
	rect := image.Rect(0, 0, 4, 4)
	palette := color.Palette{color.Black, color.White}

	cases := []struct {
		name string
		img  image.Image
		want ColorMode
	}{
		{"nrgba", image.NewNRGBA(rect), ModeRGBA},
		{"rgba", image.NewRGBA(rect), ModeRGBA},
		{"ycbcr", image.NewYCbCr(rect, image.YCbCrSubsampleRatio420), ModeRGB},
		{"gray", image.NewGray(rect), ModeRGB},
		{"paletted", image.NewPaletted(rect, palette), ModePaletted},
		{"alpha", image.NewAlpha(rect), ModeGrayAlpha},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.img); got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestNormalizeForJPEG(t *testing.T) {
	// JPEG supports no alpha: anything carrying alpha or a palette flattens.
	cases := []struct {
		mode ColorMode
		want Conversion
	}{
		{ModeRGBA, ToRGB},
		{ModePaletted, ToRGB},
		{ModeGrayAlpha, ToRGB},
		{ModeRGB, Keep},
		{ModeOther, Keep},
	}

	for _, tc := range cases {
		if got := Normalize(tc.mode, false); got != tc.want {
			t.Errorf("Normalize(%s, jpeg): expected %v, got %v", tc.mode, tc.want, got)
		}
	}
}

func TestNormalizeForAlphaFormats(t *testing.T) {
	if got := Normalize(ModeRGBA, true); got != Keep {
		t.Errorf("rgba into png/webp must pass through, got %v", got)
	}
	if got := Normalize(ModeRGB, true); got != Keep {
		t.Errorf("rgb into png/webp must pass through, got %v", got)
	}
	if got := Normalize(ModePaletted, true); got != ToRGBA {
		t.Errorf("paletted into png/webp must expand to rgba, got %v", got)
	}
}

func TestConvertToRGBDropsAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	src.SetNRGBA(1, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 0})

	out := Convert(src, ToRGB)
	if _, ok := out.(*image.RGBA); !ok {
		t.Fatalf("expected *image.RGBA, got %T", out)
	}

	r, g, b, _ := out.At(0, 0).RGBA()
	if r>>8 != 200 || g>>8 != 100 || b>>8 != 50 {
		t.Errorf("opaque pixel changed: got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}

	// Fully transparent source pixels flatten to black.
	r, g, b, _ = out.At(1, 1).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("transparent pixel should flatten to black, got (%d,%d,%d)", r, g, b)
	}
}

func TestConvertPalettedToRGBA(t *testing.T) {
	palette := color.Palette{color.Black, color.NRGBA{R: 10, G: 20, B: 30, A: 255}}
	src := image.NewPaletted(image.Rect(0, 0, 2, 2), palette)
	src.SetColorIndex(0, 0, 1)

	out := Convert(src, ToRGBA)
	if _, ok := out.(*image.NRGBA); !ok {
		t.Fatalf("expected *image.NRGBA, got %T", out)
	}
	r, g, b, a := out.At(0, 0).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 || a>>8 != 255 {
		t.Errorf("palette entry lost: got (%d,%d,%d,%d)", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestConvertKeepIsIdentity(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	if out := Convert(src, Keep); out != image.Image(src) {
		t.Error("Keep must return the same image")
	}
}
