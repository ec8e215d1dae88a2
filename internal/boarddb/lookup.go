package boarddb

import (
	"context"
	"errors"
	"strings"

	"github.com/embeddedci/boardcat/internal/board"
	"github.com/embeddedci/boardcat/internal/ctxlog"
)

// Database is the mode-aware lookup layer over the offline snapshot and
// the online client.
type Database struct {
	mode    Mode
	offline *Store
	client  *Client
}

// New creates a Database that consults the given offline store and
// online client according to mode.
func New(mode Mode, offline *Store, client *Client) *Database {
	return &Database{mode: mode, offline: offline, client: client}
}

// ByProductCode returns the first board matching the given product code.
func (d *Database) ByProductCode(ctx context.Context, productCode string) (board.Board, error) {
	return d.find(ctx, func(b board.Board) bool {
		return b.ProductCode == productCode
	})
}

// ByOnlineID returns the first board matching the given slug and target
// type. Slugs are compared case-insensitively; the online database is
// inconsistent about their casing.
func (d *Database) ByOnlineID(ctx context.Context, slug, targetType string) (board.Board, error) {
	wantSlug := strings.ToLower(slug)
	return d.find(ctx, func(b board.Board) bool {
		return strings.ToLower(b.Slug) == wantSlug && b.TargetType == targetType
	})
}

// List returns every board visible in the configured mode. ModeAuto
// lists the offline snapshot; listing is a browsing aid and does not
// warrant a network round trip.
func (d *Database) List(ctx context.Context) ([]board.Board, error) {
	if d.mode == ModeOnline {
		boards, err := d.client.FetchBoards(ctx)
		if err != nil {
			return nil, err
		}
		return boards, nil
	}
	return d.offline.All(), nil
}

// find runs a matching function against the database selected by the
// configured mode. In ModeAuto an offline miss triggers one online
// retry; any other offline failure is surfaced directly.
func (d *Database) find(ctx context.Context, matching func(board.Board) bool) (board.Board, error) {
	logger := ctxlog.FromContext(ctx)

	switch d.mode {
	case ModeOffline:
		logger.Debug("Using the offline database (only) to identify the board.")
		return d.offline.Lookup(matching)

	case ModeOnline:
		logger.Debug("Using the online database (only) to identify the board.")
		return d.findOnline(ctx, matching)

	default:
		logger.Debug("Using the offline database to identify the board.")
		b, err := d.offline.Lookup(matching)
		if errors.Is(err, ErrUnknownBoard) {
			logger.Debug("Board not found in the offline database, trying the online database.")
			return d.findOnline(ctx, matching)
		}
		return b, err
	}
}

// findOnline fetches the online board list and runs the matching
// function over it.
func (d *Database) findOnline(ctx context.Context, matching func(board.Board) bool) (board.Board, error) {
	boards, err := d.client.FetchBoards(ctx)
	if err != nil {
		return board.Board{}, err
	}
	return NewStore(boards).Lookup(matching)
}
