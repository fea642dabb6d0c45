package icon

import (
	"image"
	"image/color"
	"testing"
)

func TestGenerateSizes(t *testing.T) {
	imgs := Generate()
	if len(imgs) != 2 {
		t.Fatalf("Generate returned %d images, want 2", len(imgs))
	}
	for i, want := range []int{64, 32} {
		b := imgs[i].Bounds()
		if b.Dx() != want || b.Dy() != want {
			t.Errorf("image %d is %dx%d, want %dx%d", i, b.Dx(), b.Dy(), want, want)
		}
	}
}

func TestGenerateActiveSlide(t *testing.T) {
	img := Generate()[0].(*image.RGBA)
	// Centre of the active slide, between the sprocket rows.
	if got := img.RGBAAt(32, 26); got != jellyfinBlue {
		t.Errorf("active slide pixel = %v, want %v", got, jellyfinBlue)
	}
	if got := img.RGBAAt(0, 63); got != darkBG {
		t.Errorf("corner pixel = %v, want %v", got, darkBG)
	}
}

func TestBlendPixel(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{A: 0xFF})
	// Half-transparent white over black is mid grey.
	blendPixel(img, 0, 0, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x80})
	got := img.RGBAAt(0, 0)
	if got.R < 0x7E || got.R > 0x81 || got.A != 0xFF {
		t.Errorf("blend = %v, want ~0x80 grey", got)
	}
}
