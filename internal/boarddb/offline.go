package boarddb

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/embeddedci/boardcat/internal/board"
)

// snapshotJSON is the board database snapshot bundled into the binary.
// It contains public boards only; private boards require the online
// database and an API auth token.
//
//go:embed snapshot/boards.json
var snapshotJSON []byte

// Offline returns a Store backed by the bundled database snapshot.
func Offline() (*Store, error) {
	var boards []board.Board
	if err := json.Unmarshal(snapshotJSON, &boards); err != nil {
		return nil, fmt.Errorf("failed to decode bundled board database snapshot: %w", err)
	}
	return NewStore(boards), nil
}
