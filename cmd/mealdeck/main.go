package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"mealdeck/internal/catalog"
	"mealdeck/internal/config"
	"mealdeck/internal/eventbus"
	"mealdeck/internal/loader"
	"mealdeck/internal/mealdb"
	"mealdeck/internal/ui"
)

// forwardedEvents are the bus events the UI reacts to
var forwardedEvents = []eventbus.EventType{
	eventbus.EventLoadStarted,
	eventbus.EventLoadCompleted,
	eventbus.EventLoadFailed,
	eventbus.EventCatalogReplaced,
	eventbus.EventCatalogExtended,
	eventbus.EventViewChanged,
	eventbus.EventAreasLoaded,
	eventbus.EventDetailOpened,
	eventbus.EventDetailClosed,
}

func main() {
	// Parse command line arguments
	var configPath, baseURL, logPath string
	flag.StringVar(&configPath, "config", "", "Path to the config file (default: user config dir)")
	flag.StringVar(&baseURL, "base-url", "", "TheMealDB API base URL override")
	flag.StringVar(&logPath, "log", "mealdeck.log", "Log file")
	flag.Parse()

	logger, err := newLogger(logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()

	// Load configuration
	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	logger.Info("config loaded", zap.String("path", configSvc.Path()), zap.String("base_url", cfg.BaseURL))

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := eventbus.New(logger)
	defer bus.Close()

	client := mealdb.NewHTTPClient(cfg.BaseURL,
		mealdb.WithTimeout(cfg.RequestTimeout.Duration),
		mealdb.WithLogger(logger),
	)
	store := catalog.New(client,
		catalog.WithRatings(catalog.RandomRatings{}),
		catalog.WithBus(bus),
		catalog.WithLogger(logger),
		catalog.WithLetters(cfg.Seeds(), cfg.Letters()),
		catalog.WithConcurrency(cfg.FetchConcurrency),
		catalog.WithComposedSearch(cfg.ComposeSearch),
		catalog.WithDefaults(cfg.DefaultArea, cfg.Sort()),
	)
	loaderSvc := loader.NewLoaderService(store, bus, logger)

	uiModel := ui.NewModel(store, loaderSvc, cfg, logger)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward store events to the UI. The bus delivers from its own
	// goroutine so Send never blocks a publisher.
	for _, eventType := range forwardedEvents {
		unsubscribe := bus.Subscribe(eventType, func(e eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: e})
		})
		defer unsubscribe()
	}

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			cancel()
			p.Quit()
		case <-ctx.Done():
		}
	}()

	if err := loaderSvc.Start(ctx); err != nil {
		logger.Error("initial load not started", zap.Error(err))
	}

	// Run the UI
	logger.Info("starting UI")
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", zap.Error(err))
		fmt.Printf("Error running program: %v\n", err)
		loaderSvc.Stop()
		os.Exit(1)
	}
	logger.Info("UI exited normally")

	// Cleanup
	cancel()
	loaderSvc.Stop()
}

// newLogger writes JSON logs to path; the terminal belongs to the TUI
func newLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	return cfg.Build()
}
