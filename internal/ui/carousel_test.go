package ui

import (
	"image"
	"math"
	"testing"
	"time"

	"github.com/depeter/jellyreel/internal/carousel"
)

func TestCoverCrop(t *testing.T) {
	tests := []struct {
		name      string
		iw, ih    int
		w, h      float64
		wantRect  image.Rectangle
		wantScale float64
	}{
		{"same aspect", 1600, 1000, 800, 500, image.Rect(0, 0, 1600, 1000), 0.5},
		{"wider image crops sides", 2000, 1000, 800, 500, image.Rect(200, 0, 1800, 1000), 0.5},
		{"taller image crops top and bottom", 1600, 2000, 800, 500, image.Rect(0, 500, 1600, 1500), 0.5},
		{"upscale", 400, 250, 800, 500, image.Rect(0, 0, 400, 250), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, scale := coverCrop(tt.iw, tt.ih, tt.w, tt.h)
			if r != tt.wantRect {
				t.Errorf("rect = %v, want %v", r, tt.wantRect)
			}
			if math.Abs(scale-tt.wantScale) > 1e-9 {
				t.Errorf("scale = %v, want %v", scale, tt.wantScale)
			}
			// The scaled crop covers the box.
			if float64(r.Dx())*scale < tt.w-1 || float64(r.Dy())*scale < tt.h-1 {
				t.Errorf("crop %v at %v does not cover %vx%v", r, scale, tt.w, tt.h)
			}
		})
	}
}

func TestCoverCropDegenerate(t *testing.T) {
	if _, scale := coverCrop(0, 100, 10, 10); scale != 0 {
		t.Errorf("scale = %v for empty image, want 0", scale)
	}
	if _, scale := coverCrop(100, 100, 0, 10); scale != 0 {
		t.Errorf("scale = %v for empty box, want 0", scale)
	}
}

func TestDotCenters(t *testing.T) {
	got := dotCenters(4, 100, 20)
	want := []float64{70, 90, 110, 130}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("dot %d at %v, want %v", i, got[i], want[i])
		}
	}
	if one := dotCenters(1, 50, 20); one[0] != 50 {
		t.Errorf("single dot at %v, want 50", one[0])
	}
}

func TestIsTap(t *testing.T) {
	if !isTap(100, 110) || !isTap(100, 90) {
		t.Error("moves within the slop should be taps")
	}
	if isTap(100, 111) || isTap(100, 89) {
		t.Error("moves past the slop should be drags")
	}
}

func TestNewFeaturedCarouselEmpty(t *testing.T) {
	fc, err := NewFeaturedCarousel(nil, carousel.DefaultOptions(), nil)
	if fc != nil || !IsEmpty(err) {
		t.Fatalf("got %v, %v; want nil, ErrNoItems", fc, err)
	}
}

func TestFeaturedCarouselHitAndBounds(t *testing.T) {
	var now time.Duration
	opts := carousel.DefaultOptions()
	opts.Interval = 0
	slides := []SlideView{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	fc, err := NewFeaturedCarousel(slides, opts, func() time.Duration { return now })
	if err != nil {
		t.Fatalf("NewFeaturedCarousel: %v", err)
	}
	fc.SetBounds(0, 100, 1600, 500)

	// The active slide is centred in the strip.
	cx, cy := 800, 350
	pos := fc.hit(cx, cy)
	if pos < 0 || !fc.Engine().Item(pos).Active {
		t.Fatalf("hit(%d, %d) = %d, want the active slide", cx, cy, pos)
	}
	if got := fc.hit(cx, 50); got != -1 {
		t.Errorf("hit above the strip = %d, want -1", got)
	}
	if len(fc.dots) != 3 {
		t.Errorf("dots = %d, want one per slide", len(fc.dots))
	}
	if !fc.prevBtn.Contains(SectionPadding, cy) || !fc.nextBtn.Contains(1600-SectionPadding, cy) {
		t.Error("arrow buttons not at the strip edges")
	}

	fc.SetImage(7, nil) // out of range is ignored
	fc.SetImage(1, nil)
}

func TestSlideViews(t *testing.T) {
	items := testItems()
	backdrop := slideViews(items, false)
	primary := slideViews(items, true)
	for i := range items {
		if backdrop[i].Aspect != 0 {
			t.Errorf("backdrop slide %d aspect = %v, want 0", i, backdrop[i].Aspect)
		}
		if primary[i].Aspect != items[i].PrimaryAspect {
			t.Errorf("primary slide %d aspect = %v, want %v", i, primary[i].Aspect, items[i].PrimaryAspect)
		}
		if backdrop[i].ID != items[i].ID || backdrop[i].Title != items[i].Name {
			t.Errorf("slide %d = %+v", i, backdrop[i])
		}
	}
}
