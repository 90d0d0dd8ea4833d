// Package app wires the application together: configuration, logging,
// catalog content, and the Fyne lifecycle.
package app

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"

	"github.com/soder/veld/internal/catalog"
	"github.com/soder/veld/internal/logging"
)

// App coordinates application-level dependencies for the UI layer.
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	config  *Config
	logger  *slog.Logger
	catalog *catalog.Catalog
}

// New performs all startup wiring: logger, embedded catalog, theme.
func New(fyneApp fyne.App, cfg *Config) (*App, error) {
	logger, err := logging.New("veld", cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	logger.Info("initializing veld",
		slog.Bool("debug", cfg.Debug),
		slog.String("theme", cfg.Theme),
	)

	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	logger.Info("catalog loaded",
		slog.Int("sections", len(cat.Sections)),
		slog.Int("places", len(cat.Places)),
	)

	return &App{
		fyneApp: fyneApp,
		config:  cfg,
		logger:  logger,
		catalog: cat,
	}, nil
}

// Run shows the window and enters the Fyne event loop. Blocking.
func (a *App) Run(window fyne.Window) {
	a.window = window
	a.logger.Info("starting application")
	window.ShowAndRun()
}

// Config returns the active configuration.
func (a *App) Config() *Config { return a.config }

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger { return a.logger }

// Catalog returns the loaded demo content.
func (a *App) Catalog() *catalog.Catalog { return a.catalog }

// FyneApp returns the underlying Fyne application.
func (a *App) FyneApp() fyne.App { return a.fyneApp }
