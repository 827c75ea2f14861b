package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawFilledRoundRect draws a filled rectangle with rounded corners.
func DrawFilledRoundRect(dst *ebiten.Image, r Rect, radius float64, clr color.Color) {
	if r.Empty() {
		return
	}
	radius = math.Min(radius, math.Min(r.W, r.H)/2)
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	rad := float32(radius)

	vector.DrawFilledRect(dst, x+rad, y, w-2*rad, h, clr, true)
	vector.DrawFilledRect(dst, x, y+rad, w, h-2*rad, clr, true)
	vector.DrawFilledCircle(dst, x+rad, y+rad, rad, clr, true)
	vector.DrawFilledCircle(dst, x+w-rad, y+rad, rad, clr, true)
	vector.DrawFilledCircle(dst, x+rad, y+h-rad, rad, clr, true)
	vector.DrawFilledCircle(dst, x+w-rad, y+h-rad, rad, clr, true)
}

// DrawCard draws a rounded card background.
func DrawCard(dst *ebiten.Image, r Rect, clr color.Color) {
	DrawFilledRoundRect(dst, r, CardRadius, clr)
}

// DrawImageCover scales img to fill r, cropping the overflow.
func DrawImageCover(dst, img *ebiten.Image, r Rect) {
	if img == nil || r.Empty() {
		return
	}
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 {
		return
	}
	scale := math.Max(r.W/iw, r.H/ih)

	clip := image.Rect(int(r.X), int(r.Y), int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)))
	sub, ok := dst.SubImage(clip).(*ebiten.Image)
	if !ok {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(r.X+(r.W-iw*scale)/2, r.Y+(r.H-ih*scale)/2)
	op.Filter = ebiten.FilterLinear
	sub.DrawImage(img, op)
}

// DrawPlaceholder fills r with the placeholder color and a label.
func DrawPlaceholder(dst *ebiten.Image, r Rect, label string) {
	DrawCard(dst, r, ColorPlaceholder)
	if label != "" {
		DrawTextCentered(dst, truncateText(label, r.W-24, FontSizeSmall), r.X+r.W/2, r.Y+r.H/2, FontSizeSmall, ColorTextMuted)
	}
}
