package boarddb

import (
	"errors"

	"github.com/embeddedci/boardcat/internal/board"
)

// ErrUnknownBoard indicates no board in the consulted database matched
// the lookup criteria.
var ErrUnknownBoard = errors.New("board not found in database")

// Store is an immutable, in-memory collection of boards from one
// database source.
type Store struct {
	boards []board.Board
}

// NewStore wraps a board list in a Store. The caller must not modify the
// slice afterwards.
func NewStore(boards []board.Board) *Store {
	return &Store{boards: boards}
}

// Lookup returns the first board for which matching reports true.
func (s *Store) Lookup(matching func(board.Board) bool) (board.Board, error) {
	for _, b := range s.boards {
		if matching(b) {
			return b, nil
		}
	}
	return board.Board{}, ErrUnknownBoard
}

// All returns a copy of every board in the store.
func (s *Store) All() []board.Board {
	out := make([]board.Board, len(s.boards))
	copy(out, s.boards)
	return out
}
