package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/depeter/bentolio/assets/icon"
	"github.com/depeter/bentolio/internal/app"
	"github.com/depeter/bentolio/internal/cache"
	"github.com/depeter/bentolio/internal/catalog"
	"github.com/depeter/bentolio/internal/config"
	"github.com/depeter/bentolio/internal/locale"
	"github.com/depeter/bentolio/internal/logging"
	"github.com/depeter/bentolio/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "config file (default: $XDG_CONFIG_HOME/bentolio/config.toml)")
	category := flag.String("category", "", "category to open on")
	flag.Parse()

	// Load config
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *category != "" {
		cfg.Catalog.Category = *category
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Path, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cat := catalog.Builtin()
	if path := cfg.CatalogPath(); path != "" {
		if cat, err = catalog.Load(path); err != nil {
			logger.Fatal("failed to load catalog", zap.String("path", path), zap.Error(err))
		}
	}

	loc, err := locale.New(cfg.UI.Language)
	if err != nil {
		logger.Fatal("failed to load messages", zap.Error(err))
	}

	// Init fonts
	if err := ui.InitFonts(nil); err != nil {
		logger.Fatal("failed to init fonts", zap.Error(err))
	}
	ui.ApplyProfileTheme(cfg.Profile)

	imgCache := cache.NewImageCache(assetRoot(cfg), logger)

	game := app.NewGame(cfg, cat, imgCache, loc, logger, nil)
	defer game.Close()

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle(cfg.Profile.FirstName + " " + cfg.Profile.LastName)
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game loop exited", zap.Error(err))
	}
}

// assetRoot is where relative image paths resolve: next to the catalog
// file when there is one, else the config directory.
func assetRoot(cfg *config.Config) string {
	if path := cfg.CatalogPath(); path != "" {
		return filepath.Dir(path)
	}
	if dir, err := config.ConfigDir(); err == nil {
		return dir
	}
	return "."
}
