package icon

import (
	"image"
	"image/color"
)

var (
	jellyfinBlue = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	darkBG       = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	sideSlide    = color.RGBA{R: 0x00, G: 0x3C, B: 0x52, A: 0xFF}
	dotMuted     = color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF}
	frameHole    = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xB0}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

// generate draws three slides of a carousel, the middle one active, over
// a row of indicator dots.
func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRect(img, 0, 0, size, size, darkBG)

	slideW, slideH := s*0.46, s*0.52
	top := s * 0.16
	gap := s * 0.06
	cx := s / 2

	// Neighbours peek in from the edges.
	fillRoundedRect(img, cx-slideW/2-gap-slideW, top+s*0.04, slideW, slideH-s*0.08, s*0.05, sideSlide)
	fillRoundedRect(img, cx+slideW/2+gap, top+s*0.04, slideW, slideH-s*0.08, s*0.05, sideSlide)
	fillRoundedRect(img, cx-slideW/2, top, slideW, slideH, s*0.06, jellyfinBlue)

	// Sprocket holes on the active slide.
	hole := s * 0.035
	for i := 0; i < 4; i++ {
		x := cx - slideW/2 + slideW*(0.17+0.22*float64(i))
		fillCircle(img, x, top+s*0.06, hole, frameHole)
		fillCircle(img, x, top+slideH-s*0.06, hole, frameHole)
	}

	dotY := top + slideH + s*0.13
	dotR := s * 0.035
	for i := -1; i <= 1; i++ {
		c := dotMuted
		if i == 0 {
			c = jellyfinBlue
		}
		fillCircle(img, cx+float64(i)*s*0.12, dotY, dotR, c)
	}
	return img
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := y0; y < y0+h && y < bounds.Max.Y; y++ {
		for x := x0; x < x0+w && x < bounds.Max.X; x++ {
			if x >= 0 && y >= 0 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// fillRoundedRect fills the rect, skipping pixels outside the corner arcs.
func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, r float64, c color.Color) {
	bounds := img.Bounds()
	for y := int(yf); y <= int(yf+hf) && y < bounds.Max.Y; y++ {
		for x := int(xf); x <= int(xf+wf) && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			fx, fy := float64(x), float64(y)
			// Nearest point of the inner rect shrunk by r.
			nx := min(max(fx, xf+r), xf+wf-r)
			ny := min(max(fy, yf+r), yf+hf-r)
			dx, dy := fx-nx, fy-ny
			if dx*dx+dy*dy <= r*r {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	bounds := img.Bounds()
	r2 := r * r
	for y := int(cy - r); y <= int(cy+r+1) && y < bounds.Max.Y; y++ {
		for x := int(cx - r); x <= int(cx+r+1) && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel composites c over the existing opaque pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	// c.RGBA is alpha-premultiplied.
	existing := img.RGBAAt(x, y)
	inv := 0xFFFF - a0
	blend := func(src uint32, dst uint8) uint8 {
		return uint8((src + uint32(dst)*257*inv/0xFFFF) >> 8)
	}
	img.SetRGBA(x, y, color.RGBA{
		R: blend(r0, existing.R),
		G: blend(g0, existing.G),
		B: blend(b0, existing.B),
		A: 0xFF,
	})
}
