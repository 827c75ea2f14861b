package ui

// ScrollState provides vertical page scroll tracking with smooth animation.
type ScrollState struct {
	ScrollY       float64
	TargetScrollY float64
	MaxScrollY    float64
}

// HandleWheel moves the target by a wheel delta. Positive dy scrolls up,
// matching ebiten.Wheel.
func (s *ScrollState) HandleWheel(dy float64) {
	if dy == 0 {
		return
	}
	s.TargetScrollY -= dy * ScrollWheelSpeed
	s.clamp()
}

// SetContentHeight updates the scroll range for content of height h shown
// in a viewport of height view.
func (s *ScrollState) SetContentHeight(h, view float64) {
	s.MaxScrollY = h - view
	if s.MaxScrollY < 0 {
		s.MaxScrollY = 0
	}
	s.clamp()
}

func (s *ScrollState) clamp() {
	if s.TargetScrollY > s.MaxScrollY {
		s.TargetScrollY = s.MaxScrollY
	}
	if s.TargetScrollY < 0 {
		s.TargetScrollY = 0
	}
}

// Animate performs smooth scroll interpolation. Call this once per frame.
func (s *ScrollState) Animate() {
	s.ScrollY = Lerp(s.ScrollY, s.TargetScrollY, ScrollAnimSpeed)
}

// Reset sets scroll position back to top.
func (s *ScrollState) Reset() {
	s.ScrollY = 0
	s.TargetScrollY = 0
}
