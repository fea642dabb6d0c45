package ui

import "github.com/hajimehoshi/ebiten/v2"

// MessageScreen shows a static notice, e.g. when no server is configured.
type MessageScreen struct {
	Title  string
	Detail string
}

func NewMessageScreen(title, detail string) *MessageScreen {
	return &MessageScreen{Title: title, Detail: detail}
}

func (ms *MessageScreen) Name() string { return "Message" }
func (ms *MessageScreen) OnEnter()     {}
func (ms *MessageScreen) OnExit()      {}

func (ms *MessageScreen) Update() (*ScreenTransition, error) {
	return nil, nil
}

func (ms *MessageScreen) Draw(dst *ebiten.Image) {
	b := dst.Bounds()
	w := float64(b.Dx())
	cx, cy := w/2, float64(b.Dy())/2
	DrawTextCentered(dst, ms.Title, cx, cy-24, FontSizeHeading, ColorText)
	if ms.Detail == "" {
		return
	}
	tw, _ := MeasureText(ms.Detail, FontSizeBody)
	maxW := w - 4*SectionPadding
	if tw <= maxW {
		DrawTextCentered(dst, ms.Detail, cx, cy+16, FontSizeBody, ColorTextSecondary)
		return
	}
	DrawTextWrapped(dst, ms.Detail, 2*SectionPadding, cy+8, maxW, FontSizeBody, 4, ColorTextSecondary)
}
