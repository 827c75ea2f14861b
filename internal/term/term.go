// Package term hosts the carousel in a terminal using tcell.
package term

import (
	"context"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/depeter/bentolio/internal/carousel"
	"github.com/depeter/bentolio/internal/catalog"
	"github.com/depeter/bentolio/internal/config"
	"github.com/depeter/bentolio/internal/locale"
)

const (
	// ColumnWidth converts terminal columns into the pixel-like units the
	// drag thresholds are expressed in.
	ColumnWidth = 8.0

	// FrameInterval is the redraw and timer resolution.
	FrameInterval = 16 * time.Millisecond
)

// Host runs a carousel on a tcell screen. All carousel calls happen on
// the goroutine running Run.
type Host struct {
	screen tcell.Screen
	sched  *carousel.Scheduler
	ctrl   *carousel.Controller
	cat    *catalog.Catalog
	view   *View
	log    *zap.Logger

	panel    rect
	buttons  tcell.ButtonMask
	dragging bool
	captured bool

	running *atomic.Bool
	frames  *atomic.Int64
}

// New mounts a controller on cat. screen must already be initialised. A
// nil clock uses the system clock.
func New(screen tcell.Screen, cfg *config.Config, cat *catalog.Catalog, loc *locale.Locale, logger *zap.Logger, clock carousel.Clock) *Host {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Host{
		screen:  screen,
		sched:   carousel.NewScheduler(clock),
		cat:     cat,
		log:     logger.Named("term"),
		running: atomic.NewBool(false),
		frames:  atomic.NewInt64(0),
	}

	opts := cfg.CarouselOptions(logger)
	opts.Capture = h
	h.ctrl = carousel.New(cat, h.sched, opts)
	if initial := cat.Initial(cfg.Catalog.Category); initial != carousel.DefaultCategory {
		h.ctrl.SetCategory(initial)
	}

	p := cfg.Profile
	h.view = &View{
		Header: loc.Upper(strings.TrimSpace(p.FirstName + " " + p.LastName)),
		Keys:   cat.Cycle(),
		Labels: func(key string) string {
			if key == carousel.DefaultCategory {
				return loc.T(locale.AllProjects)
			}
			return loc.Title(cat.Label(key))
		},
		Loc:       loc,
		MaxPanelW: 60,
	}
	return h
}

// Controller returns the mounted carousel.
func (h *Host) Controller() *carousel.Controller { return h.ctrl }

// Scheduler returns the scheduler Run advances.
func (h *Host) Scheduler() *carousel.Scheduler { return h.sched }

// Running reports whether Run is active.
func (h *Host) Running() bool { return h.running.Load() }

// Frames returns how many frames have been drawn.
func (h *Host) Frames() int64 { return h.frames.Load() }

// Capture is called by the carousel when a drag starts listening.
func (h *Host) Capture() { h.captured = true }

// Release is called by the carousel when a drag finishes.
func (h *Host) Release() { h.captured = false }

// Run polls events and advances timers until ctx is done or the user
// quits. The caller owns the screen and must Fini it after Run returns.
func (h *Host) Run(ctx context.Context) error {
	h.running.Store(true)
	defer h.running.Store(false)
	defer h.ctrl.Close()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			if !h.HandleEvent(ev) {
				h.log.Info("quit requested")
				return nil
			}
			h.Draw()

		case <-ticker.C:
			h.sched.Advance()
			h.Draw()
		}
	}
}

// HandleEvent applies one input event and reports whether the host should
// keep running.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)

	case *tcell.EventMouse:
		h.handleMouse(ev)

	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		h.ctrl.OnWheel(-1)
	case tcell.KeyRight:
		h.ctrl.OnWheel(1)
	case tcell.KeyTab:
		h.ctrl.SetCategory(h.cat.Next(h.ctrl.Category()))
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'h':
			h.ctrl.OnWheel(-1)
		case 'l':
			h.ctrl.OnWheel(1)
		}
	}
	return true
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	btn := ev.Buttons()
	prev := h.buttons
	h.buttons = btn

	if btn&tcell.WheelUp != 0 && h.panel.contains(x, y) {
		h.ctrl.OnWheel(-1)
	}
	if btn&tcell.WheelDown != 0 && h.panel.contains(x, y) {
		h.ctrl.OnWheel(1)
	}

	pressed := btn&tcell.Button1 != 0
	wasPressed := prev&tcell.Button1 != 0
	px := float64(x) * ColumnWidth

	switch {
	case pressed && !wasPressed:
		if !h.panel.contains(x, y) {
			return
		}
		h.dragging = true
		h.ctrl.BeginDrag(px)

	case pressed && h.dragging:
		if h.captured {
			h.ctrl.UpdateDrag(px)
		}

	case !pressed && h.dragging:
		h.dragging = false
		if h.captured {
			h.ctrl.EndDrag()
		}
	}
}

// Draw renders the current state and shows it.
func (h *Host) Draw() {
	w, ht := h.screen.Size()
	c, panel := h.view.Render(h.ctrl.State(), h.ctrl.Items(), w, ht)
	h.panel = panel
	h.screen.Clear()
	c.flush(h.screen)
	h.screen.Show()
	h.frames.Inc()
}
