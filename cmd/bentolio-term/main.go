package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/depeter/bentolio/internal/catalog"
	"github.com/depeter/bentolio/internal/config"
	"github.com/depeter/bentolio/internal/locale"
	"github.com/depeter/bentolio/internal/logging"
	"github.com/depeter/bentolio/internal/term"
)

func main() {
	configPath := flag.String("config", "", "config file (default: $XDG_CONFIG_HOME/bentolio/config.toml)")
	category := flag.String("category", "", "category to open on")
	flag.Parse()

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

	// The terminal owns stdout and stderr; only a log file is written.
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Path, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cat := catalog.Builtin()
	if path := cfg.CatalogPath(); path != "" {
		if cat, err = catalog.Load(path); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load catalog: %v\n", err)
			os.Exit(1)
		}
	}

	loc, err := locale.New(cfg.UI.Language)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load messages: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	host := term.New(screen, cfg, cat, loc, logger, nil)
	err = host.Run(ctx)
	screen.Fini()

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("terminal host exited", zap.Error(err))
		os.Exit(1)
	}
}
