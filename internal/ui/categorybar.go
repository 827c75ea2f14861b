package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/bentolio/internal/catalog"
	"github.com/depeter/bentolio/internal/locale"
)

// CategorySelector is the part of carousel.Controller the bar drives.
type CategorySelector interface {
	SetCategory(key string)
	Category() string
}

// CategoryBar is a row of pills, one per catalog category. Selecting a
// pill switches the carousel's category.
type CategoryBar struct {
	cat  *catalog.Catalog
	ctrl CategorySelector
	loc  *locale.Locale
	keys []string

	pillRects []Rect
}

const (
	categoryBarHeight = 34.0
	categoryPillGap   = 10.0
	categoryPillPadX  = 14.0
)

// NewCategoryBar creates a bar over the catalog's category cycle.
func NewCategoryBar(cat *catalog.Catalog, ctrl CategorySelector, loc *locale.Locale) *CategoryBar {
	keys := cat.Cycle()
	return &CategoryBar{
		cat:       cat,
		ctrl:      ctrl,
		loc:       loc,
		keys:      keys,
		pillRects: make([]Rect, len(keys)),
	}
}

// Visible reports whether there is more than one category to pick from.
func (cb *CategoryBar) Visible() bool {
	return len(cb.keys) > 1
}

// Label returns the pill text for key.
func (cb *CategoryBar) Label(key string) string {
	if key == "" {
		return cb.loc.T(locale.AllProjects)
	}
	return cb.loc.Title(cb.cat.Label(key))
}

// Next selects the category after the current one.
func (cb *CategoryBar) Next() {
	cb.ctrl.SetCategory(cb.cat.Next(cb.ctrl.Category()))
}

// HandleClick selects the pill under (mx, my) and reports whether one was hit.
func (cb *CategoryBar) HandleClick(mx, my float64) bool {
	for i, r := range cb.pillRects {
		if r.Contains(mx, my) {
			cb.ctrl.SetCategory(cb.keys[i])
			return true
		}
	}
	return false
}

// clearHits forgets the pill hit boxes while the bar is not drawn.
func (cb *CategoryBar) clearHits() {
	for i := range cb.pillRects {
		cb.pillRects[i] = Rect{}
	}
}

// Width returns the total width the pills need.
func (cb *CategoryBar) Width() float64 {
	total := 0.0
	for i, k := range cb.keys {
		tw, _ := MeasureText(cb.Label(k), FontSizeSmall)
		total += tw + categoryPillPadX*2
		if i > 0 {
			total += categoryPillGap
		}
	}
	return total
}

// Draw renders the pills starting at (x, y) and records their hit boxes.
func (cb *CategoryBar) Draw(dst *ebiten.Image, x, y float64) {
	curX := x
	current := cb.ctrl.Category()
	for i, key := range cb.keys {
		label := cb.Label(key)
		tw, _ := MeasureText(label, FontSizeSmall)
		r := Rect{X: curX, Y: y, W: tw + categoryPillPadX*2, H: categoryBarHeight}

		if key == current {
			DrawFilledRoundRect(dst, r, categoryBarHeight/2, ColorDark)
			DrawTextCentered(dst, label, r.X+r.W/2, r.Y+r.H/2, FontSizeSmall, ColorSurface)
		} else {
			DrawFilledRoundRect(dst, r, categoryBarHeight/2, ColorSecondary)
			DrawTextCentered(dst, label, r.X+r.W/2, r.Y+r.H/2, FontSizeSmall, ColorSecondaryText)
		}

		cb.pillRects[i] = r
		curX += r.W + categoryPillGap
	}
	if len(cb.keys) > 0 {
		vector.DrawFilledRect(dst, float32(x), float32(y+categoryBarHeight+4), float32(curX-x-categoryPillGap), 1, ColorSecondary, false)
	}
}
