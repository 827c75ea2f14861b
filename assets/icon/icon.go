// Package icon draws the window icon: a small bento grid in the page colours.
package icon

import (
	"image"
	"image/color"
	"math"
)

var (
	pageBG    = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	tileBlush = color.RGBA{R: 0xFA, G: 0xDC, B: 0xD9, A: 0xFF}
	tileCoral = color.RGBA{R: 0xF8, G: 0xAF, B: 0xA6, A: 0xFF}
	tileDark  = color.RGBA{R: 0x1E, G: 0x1E, B: 0x1E, A: 0xFF}
	petalCol  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xD0}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRect(img, 0, 0, size, size, pageBG)
	drawTiles(img, s)
	drawFlower(img, s*0.30, s*0.30, s*0.12)

	return img
}

// drawTiles lays out four cards: a wide title tile, a tall portrait tile and
// two small ones, mirroring the page grid.
func drawTiles(img *image.RGBA, s float64) {
	gap := s * 0.06
	r := s * 0.08
	half := (s - 3*gap) / 2

	fillRoundedRect(img, gap, gap, half, half, r, tileBlush)
	fillRoundedRect(img, 2*gap+half, gap, half, s-2*gap, r, tileCoral)
	fillRoundedRect(img, gap, 2*gap+half, half*0.45, half, r*0.6, tileDark)
	fillRoundedRect(img, gap+half*0.55, 2*gap+half, half*0.45, half, r*0.6, tileBlush)

	// Arrow on the dark tile
	ax := gap + half*0.225
	ay := 2*gap + half*1.5
	for i := -2; i <= 2; i++ {
		blendPixel(img, int(ax)+i, int(ay)-i, pageBG)
	}
}

// drawFlower places five petals around a dark centre.
func drawFlower(img *image.RGBA, cx, cy, r float64) {
	for i := 0; i < 5; i++ {
		a := float64(i) * 2 * math.Pi / 5
		fillCircle(img, cx+math.Cos(a)*r*0.6, cy+math.Sin(a)*r*0.6, r*0.45, petalCol)
	}
	fillCircle(img, cx, cy, r*0.3, tileDark)
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

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	x0 := int(xf)
	y0 := int(yf)
	x1 := int(xf + wf)
	y1 := int(yf + hf)
	r := rf
	bounds := img.Bounds()

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			// Check if inside rounded rect
			fx := float64(x)
			fy := float64(y)
			inside := true

			// Check corners
			if fx < xf+r && fy < yf+r {
				// Top-left corner
				dx := xf + r - fx
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy < yf+r {
				// Top-right corner
				dx := fx - (xf + wf - r)
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx < xf+r && fy > yf+hf-r {
				// Bottom-left corner
				dx := xf + r - fx
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy > yf+hf-r {
				// Bottom-right corner
				dx := fx - (xf + wf - r)
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			}

			if inside {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	bounds := img.Bounds()
	x0 := int(cx - r)
	y0 := int(cy - r)
	x1 := int(cx + r + 1)
	y1 := int(cy + r + 1)
	r2 := r * r

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
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

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	// Existing pixel
	existing := img.RGBAAt(x, y)
	er := uint32(existing.R) * 257
	eg := uint32(existing.G) * 257
	eb := uint32(existing.B) * 257

	// Alpha blend
	alpha := a0
	invAlpha := 0xFFFF - alpha
	nr := (r0*alpha + er*invAlpha) / 0xFFFF
	ng := (g0*alpha + eg*invAlpha) / 0xFFFF
	nb := (b0*alpha + eb*invAlpha) / 0xFFFF

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(nr >> 8),
		G: uint8(ng >> 8),
		B: uint8(nb >> 8),
		A: 0xFF,
	})
}
