package ui

import (
	"bytes"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontSource *text.GoTextFaceSource
	boldSource *text.GoTextFaceSource
	fontFaces  map[float64]*text.GoTextFace
	boldFaces  map[float64]*text.GoTextFace
)

// InitFonts loads the body font from ttfData, or the bundled Go font when
// ttfData is empty. Bold text always uses Go Bold.
func InitFonts(ttfData []byte) error {
	if len(ttfData) == 0 {
		ttfData = goregular.TTF
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return err
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return err
	}
	fontSource = src
	boldSource = bold
	fontFaces = make(map[float64]*text.GoTextFace)
	boldFaces = make(map[float64]*text.GoTextFace)
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

func GetBoldFace(size float64) *text.GoTextFace {
	if face, ok := boldFaces[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source: boldSource,
		Size:   size,
	}
	boldFaces[size] = face
	return face
}

func drawWithFace(dst *ebiten.Image, txt string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, txt, face, op)
}

func DrawText(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color) {
	drawWithFace(dst, txt, GetFace(size), x, y, clr)
}

func DrawBoldText(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color) {
	drawWithFace(dst, txt, GetBoldFace(size), x, y, clr)
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

func DrawTextWrapped(dst *ebiten.Image, txt string, x, y, maxWidth float64, size float64, clr color.Color) float64 {
	face := GetFace(size)
	lineHeight := face.Size * 1.4
	words := strings.Fields(txt)
	if len(words) == 0 {
		return 0
	}

	line := words[0]
	cy := y
	for _, word := range words[1:] {
		test := line + " " + word
		w, _ := text.Measure(test, face, 0)
		if w > maxWidth {
			DrawText(dst, line, x, cy, size, clr)
			cy += lineHeight
			line = word
		} else {
			line = test
		}
	}
	DrawText(dst, line, x, cy, size, clr)
	cy += lineHeight
	return cy - y
}

// DrawTextOnArc lays txt along the top of a circle centered at (cx, cy),
// spreading it over span radians around twelve o'clock.
func DrawTextOnArc(dst *ebiten.Image, txt string, cx, cy, radius, span float64, size float64, clr color.Color) {
	runes := []rune(txt)
	if len(runes) == 0 {
		return
	}
	face := GetBoldFace(size)
	step := 0.0
	if len(runes) > 1 {
		step = span / float64(len(runes)-1)
	}
	start := -math.Pi/2 - span/2
	for i, r := range runes {
		glyph := string(r)
		w, h := text.Measure(glyph, face, 0)
		angle := start + float64(i)*step

		op := &text.DrawOptions{}
		op.GeoM.Translate(-w/2, -h/2)
		op.GeoM.Rotate(angle + math.Pi/2)
		op.GeoM.Translate(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle))
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(dst, glyph, face, op)
	}
}

// truncateText shortens s with an ellipsis until it fits maxWidth.
func truncateText(s string, maxWidth float64, fontSize float64) string {
	w, _ := MeasureText(s, fontSize)
	if w <= maxWidth {
		return s
	}
	runes := []rune(s)
	for i := len(runes) - 1; i > 0; i-- {
		candidate := string(runes[:i]) + "…"
		w, _ = MeasureText(candidate, fontSize)
		if w <= maxWidth {
			return candidate
		}
	}
	return "…"
}
