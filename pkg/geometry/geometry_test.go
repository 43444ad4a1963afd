package geometry

import "testing"

func TestComputeTargetSizeNoSpec(t *testing.T) {
	got := ComputeTargetSize(Dimension{1920, 1080}, NoResize())
	if got != (Dimension{1920, 1080}) {
		t.Errorf("expected original size back, got %s", got)
	}
}

func TestComputeTargetSizeWidthKeepsAspect(t *testing.T) {
	got := ComputeTargetSize(Dimension{1920, 1080}, ByWidth(960))
	if got != (Dimension{960, 540}) {
		t.Errorf("expected 960x540, got %s", got)
	}
}

func TestComputeTargetSizeHeightKeepsAspect(t *testing.T) {
	got := ComputeTargetSize(Dimension{1920, 1080}, ByHeight(540))
	if got != (Dimension{960, 540}) {
		t.Errorf("expected 960x540, got %s", got)
	}
}

func TestComputeTargetSizeExactStretches(t *testing.T) {
	got := ComputeTargetSize(Dimension{1920, 1080}, Exact(800, 600))
	if got != (Dimension{800, 600}) {
		t.Errorf("expected verbatim 800x600, got %s", got)
	}
}

func TestComputeTargetSizeMaxSide(t *testing.T) {
	cases := []struct {
		name     string
		original Dimension
		side     int
		want     Dimension
	}{
		{"landscape", Dimension{1920, 1080}, 960, Dimension{960, 540}},
		{"portrait", Dimension{800, 1200}, 600, Dimension{400, 600}},
		{"square", Dimension{1000, 1000}, 500, Dimension{500, 500}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeTargetSize(tc.original, ByMaxSide(tc.side))
			if got != tc.want {
				t.Errorf("maxSide=%d on %s: expected %s, got %s", tc.side, tc.original, tc.want, got)
			}
		})
	}
}

func TestFromOptionsPriority(t *testing.T) {
	// max-side beats width+height when all three are set.
	got := ComputeTargetSize(Dimension{1920, 1080}, FromOptions(100, 100, 960))
	if got != (Dimension{960, 540}) {
		t.Errorf("expected max-side to win: 960x540, got %s", got)
	}

	if !FromOptions(0, 0, 0).IsZero() {
		t.Error("expected zero spec when nothing is set")
	}
	if FromOptions(100, 0, 0).IsZero() {
		t.Error("expected non-zero spec for width-only options")
	}
}

func TestComputeTargetSizeNeverBelowOnePixel(t *testing.T) {
	got := ComputeTargetSize(Dimension{10000, 1}, ByMaxSide(1))
	if got.Width < 1 || got.Height < 1 {
		t.Errorf("dimensions must stay >= 1px, got %s", got)
	}
}

func TestCenterCropBasic(t *testing.T) {
	rect, err := CenterCrop(Dimension{1000, 800}, Dimension{500, 400})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := CropRect{Left: 250, Top: 200, Width: 500, Height: 400}
	if rect != want {
		t.Errorf("expected %+v, got %+v", want, rect)
	}
}

func TestCenterCropNoOp(t *testing.T) {
	rect, err := CenterCrop(Dimension{500, 500}, Dimension{500, 500})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := CropRect{Left: 0, Top: 0, Width: 500, Height: 500}
	if rect != want {
		t.Errorf("expected full-frame rect, got %+v", rect)
	}
}

func TestCenterCropOddMargins(t *testing.T) {
	// 1920-397 = 1523, halved with truncation.
	rect, err := CenterCrop(Dimension{1920, 1080}, Dimension{397, 1080})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rect.Left != 761 || rect.Top != 0 {
		t.Errorf("expected offsets (761,0), got (%d,%d)", rect.Left, rect.Top)
	}
}

func TestCenterCropRejectsOversizedTarget(t *testing.T) {
	if _, err := CenterCrop(Dimension{100, 100}, Dimension{200, 100}); err == nil {
		t.Error("expected error for target wider than source")
	}
	if _, err := CenterCrop(Dimension{100, 100}, Dimension{100, 101}); err == nil {
		t.Error("expected error for target taller than source")
	}
}

func TestCoverFitCovers(t *testing.T) {
	cases := []struct {
		name     string
		original Dimension
		target   Dimension
	}{
		{"square from wide", Dimension{1920, 1080}, Dimension{370, 370}},
		{"square from tall", Dimension{800, 1200}, Dimension{370, 370}},
		{"banner from wide", Dimension{1920, 1080}, Dimension{1920, 398}},
		{"banner from tall", Dimension{600, 900}, Dimension{1920, 398}},
		{"same aspect", Dimension{3840, 2160}, Dimension{1920, 1080}},
		{"tiny original", Dimension{3, 5}, Dimension{100, 40}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			scaled := CoverFit(tc.original, tc.target)
			if scaled.Width < tc.target.Width || scaled.Height < tc.target.Height {
				t.Fatalf("cover %s -> %s does not cover target %s", tc.original, scaled, tc.target)
			}

			rect, err := CenterCrop(scaled, tc.target)
			if err != nil {
				t.Fatalf("center crop after cover fit: %v", err)
			}
			if rect.Width != tc.target.Width || rect.Height != tc.target.Height {
				t.Errorf("composed cover+crop yielded %dx%d, want %s", rect.Width, rect.Height, tc.target)
			}
		})
	}
}

func TestCoverFitSameAspectIsPlainResize(t *testing.T) {
	got := CoverFit(Dimension{3840, 2160}, Dimension{1920, 1080})
	if got != (Dimension{1920, 1080}) {
		t.Errorf("expected exact 1920x1080, got %s", got)
	}
}
