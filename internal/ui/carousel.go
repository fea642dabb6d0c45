package ui

import (
	"errors"
	"image"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/jellyreel/internal/carousel"
)

// SlideView is what the carousel draws for one original slide.
type SlideView struct {
	ID     string
	Title  string
	Aspect float64
	Image  *ebiten.Image
}

// pointer tracks the mouse button or touch that started a gesture.
type pointer struct {
	down           bool
	touch          bool
	id             ebiten.TouchID
	startX, startY int
	lastX, lastY   int
}

// FeaturedCarousel hosts a carousel engine: it feeds it viewport size,
// time and input, and draws the slides at the boxes the engine lays out.
type FeaturedCarousel struct {
	engine *carousel.Carousel
	slides []SlideView
	now    func() time.Duration

	bounds           ButtonRect
	prevBtn, nextBtn ButtonRect
	dots             []ButtonRect

	ptr      pointer
	touchIDs []ebiten.TouchID

	// OnActivate is called with the original index of the active slide
	// when it is clicked or tapped.
	OnActivate func(index int)
}

// NewFeaturedCarousel builds the engine over slides. It returns
// carousel.ErrNoItems when slides is empty.
func NewFeaturedCarousel(slides []SlideView, opts carousel.Options, now func() time.Duration) (*FeaturedCarousel, error) {
	specs := make([]carousel.Slide, len(slides))
	for i, s := range slides {
		specs[i] = carousel.Slide{Aspect: s.Aspect}
	}
	engine, err := carousel.New(specs, opts)
	if err != nil {
		return nil, err
	}
	if now == nil {
		start := time.Now()
		now = func() time.Duration { return time.Since(start) }
	}
	return &FeaturedCarousel{
		engine: engine,
		slides: slides,
		now:    now,
	}, nil
}

// IsEmpty reports whether err means there was nothing to show.
func IsEmpty(err error) bool {
	return errors.Is(err, carousel.ErrNoItems)
}

// Engine exposes the underlying carousel.
func (fc *FeaturedCarousel) Engine() *carousel.Carousel { return fc.engine }

// Active returns the original index of the active slide.
func (fc *FeaturedCarousel) Active() int { return fc.engine.ActiveIndicator() }

// SetImage attaches artwork to original slide i.
func (fc *FeaturedCarousel) SetImage(i int, img *ebiten.Image) {
	if i >= 0 && i < len(fc.slides) {
		fc.slides[i].Image = img
	}
}

// SetBounds places the slide strip on screen. The engine is re-measured
// only when the size changes.
func (fc *FeaturedCarousel) SetBounds(x, y, w, h float64) {
	old := fc.bounds
	fc.bounds = ButtonRect{X: x, Y: y, W: w, H: h}
	if old.W != w || old.H != h {
		fc.engine.Resize(w, h)
	}
	fc.layoutControls()
}

func (fc *FeaturedCarousel) layoutControls() {
	b := fc.bounds
	r := float64(ArrowButtonRadius)
	cy := b.Y + b.H/2
	fc.prevBtn = ButtonRect{X: b.X + SectionPadding - r, Y: cy - r, W: 2 * r, H: 2 * r}
	fc.nextBtn = ButtonRect{X: b.X + b.W - SectionPadding - r, Y: cy - r, W: 2 * r, H: 2 * r}

	centers := dotCenters(fc.engine.Indicators(), b.X+b.W/2, DotSpacing)
	dy := b.Y + b.H + DotRowHeight/2
	fc.dots = fc.dots[:0]
	for _, cx := range centers {
		fc.dots = append(fc.dots, ButtonRect{
			X: cx - DotSpacing/2, Y: dy - DotSpacing/2, W: DotSpacing, H: DotSpacing,
		})
	}
}

// dotCenters returns the x centres of n indicator dots spaced evenly
// around cx.
func dotCenters(n int, cx, spacing float64) []float64 {
	out := make([]float64, n)
	left := cx - spacing*float64(n-1)/2
	for i := range out {
		out[i] = left + spacing*float64(i)
	}
	return out
}

// Prev moves back one slide.
func (fc *FeaturedCarousel) Prev() { fc.engine.Prev() }

// Next moves forward one slide.
func (fc *FeaturedCarousel) Next() { fc.engine.Next() }

// Update routes this frame's pointer and wheel input and advances time.
func (fc *FeaturedCarousel) Update() {
	fc.updatePointer()
	fc.updateWheel()
	fc.engine.Tick(fc.now())
}

func (fc *FeaturedCarousel) updatePointer() {
	mx, my := ebiten.CursorPosition()
	if !fc.ptr.down && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		fc.pointerDown(mx, my, false, 0)
	}
	fc.touchIDs = inpututil.AppendJustPressedTouchIDs(fc.touchIDs[:0])
	if !fc.ptr.down && len(fc.touchIDs) > 0 {
		id := fc.touchIDs[0]
		tx, ty := ebiten.TouchPosition(id)
		fc.pointerDown(tx, ty, true, id)
	}
	if !fc.ptr.down {
		return
	}

	if fc.ptr.touch {
		if inpututil.IsTouchJustReleased(fc.ptr.id) {
			fc.pointerUp(fc.ptr.lastX, fc.ptr.lastY)
			return
		}
		tx, ty := ebiten.TouchPosition(fc.ptr.id)
		fc.pointerMove(tx, ty)
		return
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		fc.pointerUp(mx, my)
		return
	}
	fc.pointerMove(mx, my)
}

func (fc *FeaturedCarousel) pointerDown(x, y int, touch bool, id ebiten.TouchID) {
	switch {
	case fc.prevBtn.Contains(x, y):
		fc.engine.Prev()
		return
	case fc.nextBtn.Contains(x, y):
		fc.engine.Next()
		return
	}
	for i, d := range fc.dots {
		if d.Contains(x, y) {
			fc.engine.GoTo(i)
			return
		}
	}
	if !fc.bounds.Contains(x, y) {
		return
	}

	fc.ptr = pointer{down: true, touch: touch, id: id, startX: x, startY: y, lastX: x, lastY: y}
	fc.engine.Press(float64(x)-fc.bounds.X, float64(y)-fc.bounds.Y)
}

func (fc *FeaturedCarousel) pointerMove(x, y int) {
	if x == fc.ptr.lastX && y == fc.ptr.lastY {
		return
	}
	fc.ptr.lastX, fc.ptr.lastY = x, y
	if fc.engine.Dragging() {
		fc.engine.DragTo(float64(x) - fc.bounds.X)
	}
}

func (fc *FeaturedCarousel) pointerUp(x, y int) {
	fc.ptr.down = false
	if fc.engine.Dragging() {
		fc.engine.Release()
	}
	if !isTap(fc.ptr.startX, x) {
		return
	}

	pos := fc.hit(x, y)
	if pos < 0 || fc.engine.Animating() {
		return
	}
	it := fc.engine.Item(pos)
	switch {
	case it.Active:
		if fc.OnActivate != nil {
			fc.OnActivate(it.Origin)
		}
	case it.Slot < carousel.Reach:
		fc.engine.Prev()
	default:
		fc.engine.Next()
	}
}

// isTap reports whether a press and release were close enough to count
// as a click rather than a drag.
func isTap(startX, endX int) bool {
	return math.Abs(float64(endX-startX)) <= carousel.TapSlop
}

// hit returns the ring position of the slide under (x, y), or -1.
func (fc *FeaturedCarousel) hit(x, y int) int {
	for pos, r := range fc.engine.Rects() {
		if PointInRect(x, y, fc.bounds.X+r.X, fc.bounds.Y+r.Y, r.W, r.H) {
			return pos
		}
	}
	return -1
}

func (fc *FeaturedCarousel) updateWheel() {
	mx, my := ebiten.CursorPosition()
	if !fc.bounds.Contains(mx, my) {
		return
	}
	// Ebitengine reports scrolling down as negative.
	if _, wy := MouseWheelDelta(); wy != 0 {
		fc.engine.Wheel(-wy)
	}
}

// Draw renders the slides, focus border, arrow buttons and indicator dots.
func (fc *FeaturedCarousel) Draw(dst *ebiten.Image) {
	screenW := float64(dst.Bounds().Dx())
	for pos, r := range fc.engine.Rects() {
		x := fc.bounds.X + r.X
		if x+r.W < 0 || x > screenW {
			continue
		}
		it := fc.engine.Item(pos)
		fc.drawSlide(dst, fc.slides[it.Origin], x, fc.bounds.Y+r.Y, r.W, r.H, it.Active)
	}

	mx, my := ebiten.CursorPosition()
	drawArrowButton(dst, fc.prevBtn, true, fc.prevBtn.Contains(mx, my))
	drawArrowButton(dst, fc.nextBtn, false, fc.nextBtn.Contains(mx, my))

	active := fc.engine.ActiveIndicator()
	for i, d := range fc.dots {
		clr := ColorTextMuted
		if i == active {
			clr = ColorPrimary
		}
		vector.DrawFilledCircle(dst, float32(d.X+d.W/2), float32(d.Y+d.H/2), DotRadius, clr, true)
	}
}

func (fc *FeaturedCarousel) drawSlide(dst *ebiten.Image, s SlideView, x, y, w, h float64, active bool) {
	if s.Image == nil {
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), ColorSurface, false)
		DrawTextCentered(dst, s.Title, x+w/2, y+h/2, FontSizeHeading, ColorTextSecondary)
	} else {
		b := s.Image.Bounds()
		src, scale := coverCrop(b.Dx(), b.Dy(), w, h)
		if scale > 0 {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(x, y)
			op.Filter = ebiten.FilterLinear
			if !active {
				op.ColorScale.Scale(DimFactor, DimFactor, DimFactor, 1)
			}
			dst.DrawImage(s.Image.SubImage(src.Add(b.Min)).(*ebiten.Image), op)
		}
	}
	if active {
		vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), FocusBorderWidth, ColorFocusBorder, false)
	}
}

// coverCrop picks the centred region of an iw×ih image that, scaled by
// the returned factor, exactly covers a w×h box.
func coverCrop(iw, ih int, w, h float64) (image.Rectangle, float64) {
	if iw <= 0 || ih <= 0 || w <= 0 || h <= 0 {
		return image.Rectangle{}, 0
	}
	scale := math.Max(w/float64(iw), h/float64(ih))
	cw := min(iw, int(math.Round(w/scale)))
	ch := min(ih, int(math.Round(h/scale)))
	x0 := (iw - cw) / 2
	y0 := (ih - ch) / 2
	return image.Rect(x0, y0, x0+cw, y0+ch), scale
}
