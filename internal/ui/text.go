package ui

import (
	"bytes"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontSource *text.GoTextFaceSource
	fontFaces  map[float64]*text.GoTextFace
)

// InitFonts loads the UI typeface. Nil ttfData selects Go Regular.
func InitFonts(ttfData []byte) error {
	if ttfData == nil {
		ttfData = goregular.TTF
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return err
	}
	fontSource = src
	fontFaces = make(map[float64]*text.GoTextFace)
	return nil
}

func GetFace(size float64) *text.GoTextFace {
	if face, ok := fontFaces[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source: fontSource,
		Size:   size,
	}
	fontFaces[size] = face
	return face
}

func DrawText(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color) {
	face := GetFace(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, txt, face, op)
}

func DrawTextCentered(dst *ebiten.Image, txt string, cx, cy float64, size float64, clr color.Color) {
	face := GetFace(size)
	w, h := text.Measure(txt, face, 0)
	DrawText(dst, txt, cx-w/2, cy-h/2, size, clr)
}

func MeasureText(txt string, size float64) (float64, float64) {
	face := GetFace(size)
	return text.Measure(txt, face, 0)
}

// DrawTextWrapped draws txt word-wrapped to maxWidth, stopping after
// maxLines lines when maxLines > 0. It returns the height used.
func DrawTextWrapped(dst *ebiten.Image, txt string, x, y, maxWidth float64, size float64, maxLines int, clr color.Color) float64 {
	face := GetFace(size)
	lineHeight := face.Size * 1.4
	lines := wrapLines(txt, maxWidth, maxLines, func(s string) float64 {
		w, _ := text.Measure(s, face, 0)
		return w
	})
	for i, line := range lines {
		DrawText(dst, line, x, y+float64(i)*lineHeight, size, clr)
	}
	return float64(len(lines)) * lineHeight
}

// wrapLines breaks txt into lines no wider than maxWidth as measured by
// measure. A truncated last line ends with an ellipsis.
func wrapLines(txt string, maxWidth float64, maxLines int, measure func(string) float64) []string {
	words := strings.Fields(txt)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		test := line + " " + word
		if measure(test) <= maxWidth {
			line = test
			continue
		}
		lines = append(lines, line)
		line = word
		if maxLines > 0 && len(lines) == maxLines {
			lines[maxLines-1] = ellipsize(lines[maxLines-1], maxWidth, measure)
			return lines
		}
	}
	return append(lines, line)
}

func ellipsize(s string, maxWidth float64, measure func(string) float64) string {
	for measure(s+"…") > maxWidth {
		i := strings.LastIndexByte(s, ' ')
		if i < 0 {
			break
		}
		s = s[:i]
	}
	return s + "…"
}
