package term

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/depeter/bentolio/internal/carousel"
	"github.com/depeter/bentolio/internal/locale"
)

// Styles
var (
	styleDefault = tcell.StyleDefault
	styleName    = tcell.StyleDefault.Bold(true)
	styleAccent  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xF8, 0xAF, 0xA6))
	styleMuted   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleActive  = tcell.StyleDefault.Reverse(true).Bold(true)
)

type cell struct {
	r     rune
	style tcell.Style
}

// canvas is an off-screen grid of cells flushed to a tcell.Screen in one pass.
type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: max(w, 0), h: max(h, 0)}
	c.cells = make([]cell, c.w*c.h)
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', style: styleDefault}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, style: style}
}

// put writes s at (x, y), clipped to maxW columns, and returns the columns used.
func (c *canvas) put(x, y int, s string, maxW int, style tcell.Style) int {
	used := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if used+rw > maxW {
			break
		}
		c.set(x+used, y, r, style)
		used += rw
	}
	return used
}

// line returns row y as text, trailing blanks trimmed.
func (c *canvas) line(y int) string {
	if y < 0 || y >= c.h {
		return ""
	}
	var b strings.Builder
	for x := 0; x < c.w; x++ {
		b.WriteRune(c.cells[y*c.w+x].r)
	}
	return strings.TrimRight(b.String(), " ")
}

func (c *canvas) box(r rect, style tcell.Style) {
	if r.w < 2 || r.h < 2 {
		return
	}
	x1, y1 := r.x+r.w-1, r.y+r.h-1
	for x := r.x + 1; x < x1; x++ {
		c.set(x, r.y, '─', style)
		c.set(x, y1, '─', style)
	}
	for y := r.y + 1; y < y1; y++ {
		c.set(r.x, y, '│', style)
		c.set(x1, y, '│', style)
	}
	c.set(r.x, r.y, '╭', style)
	c.set(x1, r.y, '╮', style)
	c.set(r.x, y1, '╰', style)
	c.set(x1, y1, '╯', style)
}

// flush copies the canvas to screen.
func (c *canvas) flush(screen tcell.Screen) {
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			cl := c.cells[y*c.w+x]
			screen.SetContent(x, y, cl.r, nil, cl.style)
		}
	}
}

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// View lays out the terminal page.
type View struct {
	Header    string
	Labels    func(key string) string
	Keys      []string
	Loc       *locale.Locale
	MaxPanelW int
}

// panelRect places the showcase box inside a w×h terminal.
func (v *View) panelRect(w, h int) rect {
	pw := w - 4
	if v.MaxPanelW > 0 && pw > v.MaxPanelW {
		pw = v.MaxPanelW
	}
	return rect{x: 2, y: 2, w: max(pw, 0), h: max(h-4, 0)}
}

// Render draws st into a w×h canvas and returns it along with the panel
// rectangle used for mouse hit testing.
func (v *View) Render(st carousel.State, items []carousel.Item, w, h int) (*canvas, rect) {
	c := newCanvas(w, h)
	panel := v.panelRect(w, h)

	c.put(2, 0, v.Header, w-2, styleName)
	v.renderCategories(c, st.Category, w)

	if panel.w < 8 || panel.h < 5 {
		return c, panel
	}
	c.box(panel, styleAccent)

	inner := panel.w - 4
	x := panel.x + 2
	y := panel.y + 1
	bottom := panel.y + panel.h - 1

	if st.Item == nil {
		c.put(x, y+1, v.Loc.T(locale.Empty), inner, styleMuted)
		v.renderFooter(c, w, h)
		return c, panel
	}

	hint := "↗"
	switch {
	case st.Dragging && st.DragDirection == carousel.DirectionLeft:
		hint = "▶"
	case st.Dragging && st.DragDirection == carousel.DirectionRight:
		hint = "◀"
	}
	c.put(x, y, st.Item.Name, inner-2, styleName)
	c.put(x+inner-1, y, hint, 1, styleName)
	y++
	if st.Item.Image != "" && y < bottom {
		c.put(x, y, st.Item.Image, inner, styleMuted)
	}
	y += 2

	for _, it := range upcoming(items, st.Index, bottom-y-2) {
		c.put(x, y, strings.Repeat("─", inner), inner, styleAccent)
		y++
		c.put(x, y, it.Name, inner, styleDefault)
		y++
	}

	statusY := bottom - 1
	if statusY > panel.y+1 {
		used := c.put(x, statusY, v.Loc.Position(st.Index, st.Total)+"  ", inner, styleMuted)
		used += c.put(x+used, statusY, dots(st.Index, st.Total), inner-used, styleDefault)
		if !st.AutoPlaying && st.Total > 1 {
			p := v.Loc.T(locale.Paused)
			if pw := runewidth.StringWidth(p); used+pw+1 <= inner {
				c.put(x+inner-pw, statusY, p, pw, styleMuted)
			}
		}
	}

	v.renderFooter(c, w, h)
	return c, panel
}

func (v *View) renderCategories(c *canvas, current string, w int) {
	if len(v.Keys) < 2 {
		return
	}
	labels := make([]string, len(v.Keys))
	total := 0
	for i, k := range v.Keys {
		labels[i] = " " + v.Labels(k) + " "
		total += runewidth.StringWidth(labels[i]) + 1
	}
	x := w - total - 1
	if x < runewidth.StringWidth(v.Header)+4 {
		return
	}
	for i, k := range v.Keys {
		style := styleMuted
		if k == current {
			style = styleActive
		}
		x += c.put(x, 0, labels[i], w-x, style) + 1
	}
}

func (v *View) renderFooter(c *canvas, w, h int) {
	hint := v.Loc.T(locale.BrowseHint)
	if len(v.Keys) > 1 {
		hint += " · " + v.Loc.T(locale.CategoryHint)
	}
	hint += " · q"
	c.put(2, h-1, hint, w-2, styleMuted)
}

// dots renders a position indicator like "○●○○".
func dots(index, total int) string {
	if total <= 1 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < total; i++ {
		if i == index {
			b.WriteRune('●')
		} else {
			b.WriteRune('○')
		}
	}
	return b.String()
}

// upcoming returns up to limit items following index, wrapping around and
// excluding the item at index.
func upcoming(items []carousel.Item, index, limit int) []carousel.Item {
	n := len(items)
	if n <= 1 || limit <= 0 {
		return nil
	}
	limit = min(limit/2, n-1)
	out := make([]carousel.Item, 0, limit)
	i := index
	for len(out) < limit {
		i = carousel.Forward(i, n)
		out = append(out, items[i])
	}
	return out
}
