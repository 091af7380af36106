package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// Piece is the colour of a tile. There is no empty piece; emptiness is a
// property of a Cell.
type Piece int

const (
	Black Piece = iota + 1
	White
)

func (p Piece) Valid() bool {
	return p == Black || p == White
}

// Opposite returns the other colour.
func (p Piece) Opposite() Piece {
	switch p {
	case Black:
		return White
	case White:
		return Black
	default:
		panic(fmt.Sprintf("invalid receiver for Piece.Opposite: %d", int(p)))
	}
}

// Rune is the single character used in board renderings.
func (p Piece) Rune() rune {
	switch p {
	case Black:
		return 'B'
	case White:
		return 'W'
	default:
		panic(fmt.Sprintf("invalid receiver for Piece.Rune: %d", int(p)))
	}
}

func (p Piece) String() string {
	switch p {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return fmt.Sprintf("Piece(%d)", int(p))
	}
}

// ParsePiece is the inverse of String.
func ParsePiece(s string) (Piece, error) {
	switch s {
	case "black", "B", "b":
		return Black, nil
	case "white", "W", "w":
		return White, nil
	default:
		return 0, errors.Errorf("invalid piece %q", s)
	}
}

func checkPiece(p Piece) {
	if !p.Valid() {
		panic(fmt.Sprintf("piece must be set, got %d", int(p)))
	}
}
