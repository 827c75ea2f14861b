package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/bentolio/internal/cache"
	"github.com/depeter/bentolio/internal/carousel"
)

var debugOverlayVisible bool

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// DebugInfo is what the overlay shows.
type DebugInfo struct {
	State             carousel.State
	AutoplayScheduled bool
	ResumePending     bool
	PendingTimers     int
	Captures          int
	Releases          int
	Images            cache.Stats
	Now               time.Time
}

// Lines formats the overlay text.
func (d DebugInfo) Lines() []string {
	name := "(none)"
	if d.State.Item != nil {
		name = d.State.Item.Name
	}
	category := d.State.Category
	if category == "" {
		category = "(default)"
	}
	return []string{
		fmt.Sprintf("category   %s", category),
		fmt.Sprintf("index      %d / %d  %s", d.State.Index, d.State.Total, name),
		fmt.Sprintf("autoplay   playing=%t scheduled=%t", d.State.AutoPlaying, d.AutoplayScheduled),
		fmt.Sprintf("resume     pending=%t", d.ResumePending),
		fmt.Sprintf("drag       dragging=%t dir=%s", d.State.Dragging, d.State.DragDirection),
		fmt.Sprintf("capture    taken=%d released=%d", d.Captures, d.Releases),
		fmt.Sprintf("timers     %d pending", d.PendingTimers),
		fmt.Sprintf("images     loaded=%d failed=%d", d.Images.Loaded, d.Images.Failed),
		fmt.Sprintf("clock      %s", d.Now.Format("15:04:05.000")),
	}
}

// DrawDebugOverlay draws the debug overlay if visible.
func DrawDebugOverlay(screen *ebiten.Image, info DebugInfo) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = 20.0
	)

	lines := info.Lines()
	panelH := float64(len(lines)+1)*lineH + padY*2
	panelW := 420.0
	px := float64(screen.Bounds().Dx()) - panelW - marginR
	py := marginT

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY

	DrawText(screen, "Debug: carousel (F12 to close)", x, y, FontSizeSmall, ColorPrimary)
	y += lineH

	for _, line := range lines {
		DrawText(screen, line, x, y, FontSizeSmall, ColorSurface)
		y += lineH
	}
}
