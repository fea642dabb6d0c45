package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawChevron draws a "<" (left) or ">" chevron centred at (cx, cy).
func drawChevron(dst *ebiten.Image, cx, cy, r float32, left bool, clr color.Color) {
	dx := r * 0.35
	if left {
		dx = -dx
	}
	vector.StrokeLine(dst, cx-dx, cy-r*0.6, cx+dx, cy, 3, clr, true)
	vector.StrokeLine(dst, cx+dx, cy, cx-dx, cy+r*0.6, 3, clr, true)
}

// drawPlayIcon draws an outlined play triangle centred at (cx, cy).
func drawPlayIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	x0, x1 := cx-r*0.5, cx+r*0.7
	top, bottom := cy-r*0.7, cy+r*0.7
	vector.StrokeLine(dst, x0, top, x1, cy, 2, clr, true)
	vector.StrokeLine(dst, x1, cy, x0, bottom, 2, clr, true)
	vector.StrokeLine(dst, x0, bottom, x0, top, 2, clr, true)
}

// drawArrowButton draws a round prev/next button filling b.
func drawArrowButton(dst *ebiten.Image, b ButtonRect, left, hovered bool) {
	bg := color.Color(ColorOverlay)
	fg := color.Color(ColorText)
	if hovered {
		bg = ColorPrimary
		fg = ColorBackground
	}
	r := float32(b.W / 2)
	cx, cy := float32(b.X)+r, float32(b.Y)+r
	vector.DrawFilledCircle(dst, cx, cy, r, bg, true)
	vector.StrokeCircle(dst, cx, cy, r, 1.5, ColorTextMuted, true)
	drawChevron(dst, cx, cy, r*0.6, left, fg)
}
