package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/depeter/bentolio/internal/cache"
	"github.com/depeter/bentolio/internal/carousel"
	"github.com/depeter/bentolio/internal/catalog"
	"github.com/depeter/bentolio/internal/config"
	"github.com/depeter/bentolio/internal/locale"
	"github.com/depeter/bentolio/internal/ui"
)

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config   *config.Config
	Catalog  *catalog.Catalog
	Cache    *cache.ImageCache
	Sched    *carousel.Scheduler
	Carousel *carousel.Controller
	Tracker  *ui.PointerTracker
	Bar      *ui.CategoryBar
	Screens  *ui.ScreenManager

	Width, Height int

	log    *zap.Logger
	closed bool
}

// action is a keyboard command on the page.
type action int

const (
	actionNone action = iota
	actionNext
	actionPrev
	actionNextCategory
)

// NewGame mounts the carousel on the catalog and pushes the page. A nil
// clock uses the system clock.
func NewGame(cfg *config.Config, cat *catalog.Catalog, imgCache *cache.ImageCache, loc *locale.Locale, logger *zap.Logger, clock carousel.Clock) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Game{
		Config:  cfg,
		Catalog: cat,
		Cache:   imgCache,
		Sched:   carousel.NewScheduler(clock),
		Tracker: ui.NewPointerTracker(),
		Screens: ui.NewScreenManager(),
		Width:   cfg.UI.Width,
		Height:  cfg.UI.Height,
		log:     logger.Named("app"),
	}

	opts := cfg.CarouselOptions(logger)
	opts.Capture = g.Tracker
	g.Carousel = carousel.New(cat, g.Sched, opts)
	if initial := cat.Initial(cfg.Catalog.Category); initial != carousel.DefaultCategory {
		g.Carousel.SetCategory(initial)
	}

	if len(cat.Cycle()) > 1 {
		g.Bar = ui.NewCategoryBar(cat, g.Carousel, loc)
	}

	showcase := ui.NewShowcase(g.Carousel, g.Tracker, imgCache, loc)
	g.Screens.Push(ui.NewBentoScreen(cfg.Profile, showcase, g.Bar, g.Carousel, imgCache, loc, logger))

	g.log.Info("carousel mounted",
		zap.String("category", g.Carousel.Category()),
		zap.Int("items", g.Carousel.Len()),
		zap.Duration("autoplay_interval", cfg.Carousel.AutoplayInterval),
		zap.Duration("resume_delay", cfg.Carousel.ResumeDelay))
	return g
}

func (g *Game) Update() error {
	// Timers fire here, on the game goroutine.
	g.Sched.Advance()

	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	} else if !ui.IsModifierPressed() && keyJustPressed(g.Config.Keybinds.Fullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles debug overlay
	ui.ToggleDebugOverlay()

	if cur := g.Screens.Current(); cur != nil && cur.Name() == "Bento" {
		g.perform(g.keyAction())
	}

	if err := g.Screens.Update(); err != nil {
		return err
	}

	ui.UpdateInputState()
	return nil
}

func (g *Game) keyAction() action {
	kb := g.Config.Keybinds
	switch {
	case keyRepeating(kb.Next):
		return actionNext
	case keyRepeating(kb.Prev):
		return actionPrev
	case keyJustPressed(kb.NextCategory):
		return actionNextCategory
	}
	return actionNone
}

// perform runs a keyboard action. Next and previous behave like a wheel
// step so they pause autoplay the same way.
func (g *Game) perform(a action) {
	switch a {
	case actionNext:
		g.Carousel.OnWheel(1)
	case actionPrev:
		g.Carousel.OnWheel(-1)
	case actionNextCategory:
		if g.Bar != nil {
			g.Bar.Next()
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)
	ui.DrawDebugOverlay(screen, g.DebugInfo())
}

// DebugInfo snapshots the carousel for the debug overlay.
func (g *Game) DebugInfo() ui.DebugInfo {
	captures, releases := g.Tracker.CaptureCounts()
	info := ui.DebugInfo{
		State:             g.Carousel.State(),
		AutoplayScheduled: g.Carousel.AutoplayScheduled(),
		ResumePending:     g.Carousel.ResumePending(),
		PendingTimers:     g.Sched.Pending(),
		Captures:          captures,
		Releases:          releases,
		Now:               g.Sched.Now(),
	}
	if g.Cache != nil {
		info.Images = g.Cache.Stats()
	}
	return info
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.Width, g.Height = outsideWidth, outsideHeight
	}
	return g.Width, g.Height
}

// Close unmounts the page and the carousel. Safe to call more than once.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.Screens.ClearStack()
	g.Carousel.Close()
	g.log.Info("carousel unmounted", zap.Int("pending_timers", g.Sched.Pending()))
}
