package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/bentolio/internal/cache"
	"github.com/depeter/bentolio/internal/carousel"
	"github.com/depeter/bentolio/internal/locale"
)

// Carousel is the part of carousel.Controller the showcase drives.
type Carousel interface {
	DragTarget
	OnWheel(deltaY float64)
	State() carousel.State
	Items() []carousel.Item
}

const (
	showcasePad    = 24.0
	showcaseImageH = 200.0
	showcaseRowH   = 64.0
	showcaseDotsH  = 28.0
)

// Showcase is the projects card. It renders the carousel state and turns
// wheel and pointer input over the card into carousel calls.
type Showcase struct {
	ctrl    Carousel
	images  *cache.ImageCache
	loc     *locale.Locale
	tracker *PointerTracker

	bounds    Rect
	arrowRect Rect
	requested map[string]bool
}

// NewShowcase wires a showcase to ctrl. The tracker must be the one passed
// to the controller as its PointerCapture.
func NewShowcase(ctrl Carousel, tracker *PointerTracker, images *cache.ImageCache, loc *locale.Locale) *Showcase {
	tracker.SetTarget(ctrl)
	return &Showcase{
		ctrl:      ctrl,
		images:    images,
		loc:       loc,
		tracker:   tracker,
		requested: make(map[string]bool),
	}
}

// SetBounds places the card in screen coordinates.
func (s *Showcase) SetBounds(r Rect) {
	s.bounds = r
	s.tracker.Bounds = r
}

// Bounds returns the card rectangle in screen coordinates.
func (s *Showcase) Bounds() Rect { return s.bounds }

// HandleWheel forwards a wheel event at (x, y) to the carousel when it is
// over the card and reports whether it was consumed. dy follows ebiten's
// sign, where scrolling down is negative.
func (s *Showcase) HandleWheel(x, y, dy float64) bool {
	if dy == 0 || !s.bounds.Contains(x, y) {
		return false
	}
	s.ctrl.OnWheel(WheelToDeltaY(dy))
	return true
}

// WheelToDeltaY converts an ebiten wheel delta into a DOM style deltaY,
// positive when scrolling down.
func WheelToDeltaY(dy float64) float64 {
	return -dy
}

// UpdatePointer feeds one frame of pointer state to the gesture tracker.
func (s *Showcase) UpdatePointer(in PointerInput) {
	s.tracker.Update(in)
}

// ArrowHit reports whether (x, y) is on the current item's open arrow.
func (s *Showcase) ArrowHit(x, y float64) bool {
	return !s.arrowRect.Empty() && s.arrowRect.Contains(x, y)
}

// Cancel abandons any gesture in progress.
func (s *Showcase) Cancel() {
	s.tracker.Cancel()
}

// upcoming returns up to limit items following index, wrapping around and
// excluding the item at index.
func upcoming(items []carousel.Item, index, limit int) []carousel.Item {
	n := len(items)
	if n <= 1 || limit <= 0 {
		return nil
	}
	limit = min(limit, n-1)
	out := make([]carousel.Item, 0, limit)
	i := index
	for len(out) < limit {
		i = carousel.Forward(i, n)
		out = append(out, items[i])
	}
	return out
}

func (s *Showcase) image(ref string) *ebiten.Image {
	if ref == "" || s.images == nil {
		return nil
	}
	if img := s.images.Get(ref); img != nil {
		return img
	}
	if !s.requested[ref] {
		s.requested[ref] = true
		s.images.LoadAsync(ref, func(*ebiten.Image) {})
	}
	return nil
}

// Draw renders the card.
func (s *Showcase) Draw(dst *ebiten.Image) {
	r := s.bounds
	DrawCard(dst, r, ColorCard)

	st := s.ctrl.State()
	x := r.X + showcasePad
	w := r.W - 2*showcasePad
	y := r.Y + showcasePad

	s.arrowRect = Rect{}
	if st.Item == nil {
		DrawTextCentered(dst, s.loc.T(locale.Empty), r.X+r.W/2, r.Y+r.H/2, FontSizeBody, ColorTextMuted)
		return
	}

	// Current item: name, arrow, image.
	name := truncateText(st.Item.Name, w-40, FontSizeHeading)
	DrawBoldText(dst, name, x, y, FontSizeHeading, ColorText)
	drawArrowIcon(dst, float32(x+w-10), float32(y+FontSizeHeading/2+2), 9, ColorText)
	s.arrowRect = Rect{X: x + w - 28, Y: y - 6, W: 36, H: FontSizeHeading + 16}
	y += FontSizeHeading + 18

	imgRect := Rect{X: x, Y: y, W: w, H: showcaseImageH}
	if img := s.image(st.Item.Image); img != nil {
		DrawImageCover(dst, img, imgRect)
	} else {
		DrawPlaceholder(dst, imgRect, s.loc.T(locale.Loading))
	}
	if st.Dragging {
		s.drawDragHint(dst, imgRect, st.DragDirection)
	}
	y += showcaseImageH + 10

	// Remaining items as bordered rows, as many as fit above the dots.
	bottom := r.Y + r.H - showcasePad - showcaseDotsH
	rows := int((bottom - y) / showcaseRowH)
	for _, it := range upcoming(s.ctrl.Items(), st.Index, rows) {
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), 2, ColorSecondary, false)
		DrawText(dst, truncateText(it.Name, w, FontSizeHeading), x, y+(showcaseRowH-FontSizeHeading)/2, FontSizeHeading, ColorText)
		y += showcaseRowH
	}

	dotsY := r.Y + r.H - showcasePad - showcaseDotsH/2
	drawDots(dst, float32(r.X+r.W/2), float32(dotsY), st.Total, st.Index, ColorText, ColorSecondary)
	DrawText(dst, s.loc.Position(st.Index, st.Total), x, dotsY-FontSizeCaption/2-2, FontSizeCaption, ColorTextMuted)
	if !st.AutoPlaying && st.Total > 1 {
		pw, _ := MeasureText(s.loc.T(locale.Paused), FontSizeCaption)
		DrawText(dst, s.loc.T(locale.Paused), x+w-pw, dotsY-FontSizeCaption/2-2, FontSizeCaption, ColorTextMuted)
	}
}

func (s *Showcase) drawDragHint(dst *ebiten.Image, r Rect, dir carousel.Direction) {
	cy := float32(r.Y + r.H/2)
	switch dir {
	case carousel.DirectionLeft:
		vector.DrawFilledCircle(dst, float32(r.X+r.W-28), cy, 18, ColorOverlay, true)
		drawChevron(dst, float32(r.X+r.W-28), cy, 7, false, ColorSurface)
	case carousel.DirectionRight:
		vector.DrawFilledCircle(dst, float32(r.X+28), cy, 18, ColorOverlay, true)
		drawChevron(dst, float32(r.X+28), cy, 7, true, ColorSurface)
	}
}
