package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/embeddedci/boardcat/internal/boarddb"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	db     *boarddb.Database
}

// NewApp is the constructor for the main application. Results are written
// to outW; the application's isolated logger writes to logW, so command
// output stays machine-readable.
func NewApp(outW, logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	mode, err := boarddb.ParseMode(cfg.DatabaseMode)
	if err != nil {
		return nil, err
	}

	offline, err := boarddb.Offline()
	if err != nil {
		return nil, fmt.Errorf("failed to load the offline board database: %w", err)
	}

	client := boarddb.NewClient("", os.Getenv(boarddb.AuthTokenEnvVar))
	logger.Debug("Board database configured.", "mode", mode.String())

	return &App{
		outW:   outW,
		logger: logger,
		db:     boarddb.New(mode, offline, client),
	}, nil
}

// Database returns the application's board database. This is primarily
// for testing.
func (a *App) Database() *boarddb.Database {
	return a.db
}
