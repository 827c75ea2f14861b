package ui

import "math"

// BentoLayout holds the card rectangles of the page in content coordinates
// (before scrolling).
type BentoLayout struct {
	Header      Rect
	Title       Rect
	Portrait    Rect
	Description Rect
	Contact     Rect
	Showcase    Rect
	Socials     Rect

	// Height is the total content height including bottom padding.
	Height float64
}

const (
	maxContentWidth = 1200
	gridColumns     = 9

	headerH   = 72
	heroRowH  = 420
	infoRowH  = 220
	socialsH  = 96
	compactH  = 380
	showcaseH = 460
)

// Cards returns the rectangles in drawing order.
func (l BentoLayout) Cards() []Rect {
	return []Rect{l.Header, l.Title, l.Portrait, l.Description, l.Contact, l.Showcase, l.Socials}
}

// ComputeLayout arranges the cards for a window of the given width. Wide
// windows use a nine column grid with the showcase on the right; narrow
// ones stack everything.
func ComputeLayout(width float64) BentoLayout {
	if width < CompactWidth {
		return compactLayout(width)
	}

	cw := math.Min(width-2*PagePadding, maxContentWidth)
	x0 := (width - cw) / 2
	colW := (cw - (gridColumns-1)*CardGap) / gridColumns
	span := func(n int) float64 {
		return float64(n)*colW + float64(n-1)*CardGap
	}
	colX := func(i int) float64 {
		return x0 + float64(i)*(colW+CardGap)
	}

	var l BentoLayout
	y := float64(PagePadding)
	l.Header = Rect{X: x0, Y: y, W: cw, H: headerH}
	y += headerH + CardGap

	l.Title = Rect{X: colX(0), Y: y, W: span(4), H: heroRowH}
	l.Portrait = Rect{X: colX(4), Y: y, W: span(2), H: heroRowH}
	row2 := y + heroRowH + CardGap
	l.Description = Rect{X: colX(0), Y: row2, W: span(3), H: infoRowH}
	l.Contact = Rect{X: colX(3), Y: row2, W: span(3), H: infoRowH}

	rightH := float64(heroRowH + CardGap + infoRowH)
	l.Showcase = Rect{X: colX(6), Y: y, W: span(3), H: rightH - socialsH - CardGap}
	l.Socials = Rect{X: colX(6), Y: y + l.Showcase.H + CardGap, W: span(3), H: socialsH}

	l.Height = y + rightH + PagePadding
	return l
}

func compactLayout(width float64) BentoLayout {
	pad := float64(PagePadding) / 2
	w := math.Max(width-2*pad, 0)
	y := pad
	next := func(h float64) Rect {
		r := Rect{X: pad, Y: y, W: w, H: h}
		y += h + CardGap
		return r
	}

	var l BentoLayout
	l.Header = next(headerH)
	l.Title = next(compactH)
	l.Portrait = next(compactH)
	l.Description = next(infoRowH)
	l.Contact = next(infoRowH)
	l.Showcase = next(showcaseH)
	l.Socials = next(socialsH)
	l.Height = y - CardGap + pad
	return l
}
