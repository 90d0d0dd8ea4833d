package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	fyneapp "fyne.io/fyne/v2/app"

	veldapp "github.com/soder/veld/internal/app"
	"github.com/soder/veld/internal/ui"
)

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// runApp is the application entry point with panic recovery.
func runApp() (err error) {
	bootLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	defer func() {
		if r := recover(); r != nil {
			bootLogger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	bootLogger.Info("starting veld field guide")

	cfg := veldapp.ConfigFromEnv()
	fyneApp := fyneapp.NewWithID("com.soder.veld")

	application, err := veldapp.New(fyneApp, cfg)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	ui.ApplyTheme(fyneApp, cfg.Theme)

	window := ui.NewMainWindow(fyneApp, application.Catalog(), application.Logger())
	application.Run(window.Window())

	application.Logger().Info("application shutdown complete")
	return nil
}
