package main

import (
	"log/slog"
	"os"

	"github.com/gourmetdelight/diner/internal/console"
	"github.com/gourmetdelight/diner/internal/menu"
	"github.com/gourmetdelight/diner/pkg/logging"
)

func main() {
	// Keep log noise off the prompt; warnings and errors still surface.
	logging.SetupWithLevel(slog.LevelWarn)

	session := console.NewSession(os.Stdin, os.Stdout, menu.Default())
	if err := session.Run(); err != nil {
		slog.Error("Ordering session failed", "error", err)
		os.Exit(1)
	}
}
