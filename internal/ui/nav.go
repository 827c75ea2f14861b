package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (px, py) lies inside r, edges included.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// IsModifierPressed reports whether any modifier key (Alt, Ctrl, Shift, Meta) is held.
func IsModifierPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyAlt) ||
		ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// UpdateInputState must be called at the end of each Update() to track key state.
func UpdateInputState() {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if ebiten.IsKeyPressed(k) {
			keyHoldFrames[k]++
		} else {
			delete(keyHoldFrames, k)
		}
	}
}

var keyHoldFrames = make(map[ebiten.Key]int)

const (
	repeatDelay    = 18 // frames before repeat starts (~300ms at 60fps)
	repeatInterval = 4  // frames between repeats (~67ms at 60fps)
)

// KeyRepeating reports a key press on the first frame and then at the
// repeat rate while the key stays held.
func KeyRepeating(key ebiten.Key) bool {
	if !ebiten.IsKeyPressed(key) {
		return false
	}
	frames, held := keyHoldFrames[key]
	if !held || frames == 0 {
		return true
	}
	return frames >= repeatDelay && (frames-repeatDelay)%repeatInterval == 0
}

// PointerInput is one frame of primary pointer state.
type PointerInput struct {
	X, Y        float64
	Pressed     bool
	JustPressed bool
}

var touchIDs []ebiten.TouchID

// ReadPointer samples the left mouse button, or the first touch when the
// mouse is idle.
func ReadPointer() PointerInput {
	mx, my := ebiten.CursorPosition()
	in := PointerInput{
		X:           float64(mx),
		Y:           float64(my),
		Pressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
	if in.Pressed {
		return in
	}

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) == 0 {
		return in
	}
	id := touchIDs[0]
	tx, ty := ebiten.TouchPosition(id)
	return PointerInput{
		X:           float64(tx),
		Y:           float64(ty),
		Pressed:     true,
		JustPressed: inpututil.TouchPressDuration(id) == 1,
	}
}

// MouseJustClicked returns the cursor position and whether the left mouse button was just clicked.
func MouseJustClicked() (x, y int, clicked bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		clicked = true
	}
	return
}

// CursorPosition returns the cursor as floats.
func CursorPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

// MouseWheelDelta returns the mouse wheel scroll delta.
func MouseWheelDelta() (dx, dy float64) {
	return ebiten.Wheel()
}

// Lerp for smooth scrolling
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
