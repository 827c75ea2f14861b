package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawArrowIcon draws a north-east arrow centered at (cx, cy).
func drawArrowIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	x0, y0 := cx-r*0.7, cy+r*0.7
	x1, y1 := cx+r*0.7, cy-r*0.7
	vector.StrokeLine(dst, x0, y0, x1, y1, 2, clr, true)
	vector.StrokeLine(dst, x1-r*0.9, y1, x1, y1, 2, clr, true)
	vector.StrokeLine(dst, x1, y1, x1, y1+r*0.9, 2, clr, true)
}

// drawFlowerIcon draws a six petal flower at (cx, cy) with given radius.
func drawFlowerIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	petals := 6
	for i := 0; i < petals; i++ {
		angle := float64(i) * 2 * math.Pi / float64(petals)
		px := cx + r*0.5*float32(math.Cos(angle))
		py := cy + r*0.5*float32(math.Sin(angle))
		vector.DrawFilledCircle(dst, px, py, r*0.45, clr, true)
	}
	vector.DrawFilledCircle(dst, cx, cy, r*0.3, ColorCard, true)
}

// drawRingIcon draws a ring with a filled center dot.
func drawRingIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeCircle(dst, cx, cy, r, 1.5, clr, true)
	vector.DrawFilledCircle(dst, cx, cy, r*0.35, clr, true)
}

// drawChevron draws a left or right pointing chevron.
func drawChevron(dst *ebiten.Image, cx, cy, r float32, left bool, clr color.Color) {
	dx := r * 0.5
	if left {
		dx = -dx
	}
	vector.StrokeLine(dst, cx-dx, cy-r, cx+dx, cy, 2, clr, true)
	vector.StrokeLine(dst, cx+dx, cy, cx-dx, cy+r, 2, clr, true)
}

// drawDots draws n position dots centered on (cx, cy), filling the active one.
func drawDots(dst *ebiten.Image, cx, cy float32, n, active int, clr, inactive color.Color) {
	if n <= 1 {
		return
	}
	const (
		dotR   = 3.5
		dotGap = 14
	)
	start := cx - float32(n-1)*dotGap/2
	for i := 0; i < n; i++ {
		x := start + float32(i)*dotGap
		if i == active {
			vector.DrawFilledCircle(dst, x, cy, dotR+1, clr, true)
		} else {
			vector.DrawFilledCircle(dst, x, cy, dotR, inactive, true)
		}
	}
}
