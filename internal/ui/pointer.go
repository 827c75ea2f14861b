package ui

// DragTarget receives one gesture at a time from a PointerTracker.
type DragTarget interface {
	BeginDrag(x float64)
	UpdateDrag(x float64)
	EndDrag()
}

// PointerTracker turns per-frame pointer samples into drag calls. A gesture
// starts with a press inside Bounds; moves are forwarded only while the
// target holds the capture, so a committed swipe ignores the rest of the
// motion until the button is released.
//
// PointerTracker implements carousel.PointerCapture.
type PointerTracker struct {
	Bounds Rect

	target   DragTarget
	active   bool
	captured bool
	lastX    float64

	captures int
	releases int
}

// NewPointerTracker returns a tracker with no target. Call SetTarget before
// feeding it input.
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// SetTarget sets where gestures are delivered.
func (p *PointerTracker) SetTarget(t DragTarget) {
	p.target = t
}

// Capture is called by the target when it starts listening for moves.
func (p *PointerTracker) Capture() {
	p.captured = true
	p.captures++
}

// Release is called by the target when the gesture is finished.
func (p *PointerTracker) Release() {
	p.captured = false
	p.releases++
}

// Update feeds one frame of pointer state.
func (p *PointerTracker) Update(in PointerInput) {
	if p.target == nil {
		return
	}

	switch {
	case !p.active && in.JustPressed:
		if !p.Bounds.Contains(in.X, in.Y) {
			return
		}
		p.active = true
		p.lastX = in.X
		p.target.BeginDrag(in.X)

	case p.active && in.Pressed:
		if p.captured && in.X != p.lastX {
			p.lastX = in.X
			p.target.UpdateDrag(in.X)
		}

	case p.active && !in.Pressed:
		p.finish()
	}
}

// Cancel ends the gesture in progress, if any.
func (p *PointerTracker) Cancel() {
	if p.active {
		p.finish()
	}
}

func (p *PointerTracker) finish() {
	p.active = false
	if p.captured {
		p.target.EndDrag()
	}
}

// Active reports whether the pointer went down inside Bounds and is still held.
func (p *PointerTracker) Active() bool { return p.active }

// Captured reports whether the target currently holds the capture.
func (p *PointerTracker) Captured() bool { return p.captured }

// CaptureCounts returns how many times the capture was taken and released.
func (p *PointerTracker) CaptureCounts() (captures, releases int) {
	return p.captures, p.releases
}
