package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/pkg/errors"
)

// Dimension is the number of rows and columns on the board.
const Dimension = 8

// Grid is a row-major matrix of cells. Being an array, assigning a Grid copies
// every cell.
type Grid [Dimension][Dimension]Cell

// Board is an immutable board position. Boards are only produced by NewBoard,
// FromGrid, ParseBoard, Builder.Build or PlacePiece and are never modified
// afterwards, so they can be shared freely between goroutines and game trees.
type Board struct {
	grid Grid
}

// NewBoard returns the starting position: black on the main diagonal of the
// centre square, white on the anti-diagonal.
func NewBoard() *Board {
	b := NewEmptyBuilder()
	top, bottom := Dimension/2-1, Dimension/2
	left, right := Dimension/2-1, Dimension/2
	b.SetCell(Coordinate{Row: top, Col: left}, Black)
	b.SetCell(Coordinate{Row: top, Col: right}, White)
	b.SetCell(Coordinate{Row: bottom, Col: left}, White)
	b.SetCell(Coordinate{Row: bottom, Col: right}, Black)
	return b.Build()
}

// FromGrid reconstructs a board from a grid snapshot. Every cell must carry
// the coordinate of its position in the grid.
func FromGrid(grid Grid) (*Board, error) {
	for row := 0; row < Dimension; row++ {
		for col := 0; col < Dimension; col++ {
			cell := grid[row][col]
			want := Coordinate{Row: row, Col: col}
			if cell.coordinate != want {
				return nil, errors.Errorf("cell at %v has coordinate %v", want, cell.coordinate)
			}
			if cell.occupant != 0 && !cell.occupant.Valid() {
				return nil, errors.Errorf("cell at %v has invalid occupant %d", want, int(cell.occupant))
			}
		}
	}
	return &Board{grid: grid}, nil
}

// ParseBoard is the inverse of Board.String. Blank lines and surrounding
// whitespace are ignored.
func ParseBoard(s string) (*Board, error) {
	rows := make([]string, 0, Dimension)
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != Dimension {
		return nil, errors.Errorf("expected %d rows, got %d", Dimension, len(rows))
	}

	b := NewEmptyBuilder()
	for row, line := range rows {
		runes := []rune(line)
		if len(runes) != Dimension {
			return nil, errors.Errorf("row %d: expected %d cells, got %d", row+1, Dimension, len(runes))
		}
		for col, r := range runes {
			coordinate := Coordinate{Row: row, Col: col}
			switch r {
			case emptyRune:
			case 'B', 'b':
				b.SetCell(coordinate, Black)
			case 'W', 'w':
				b.SetCell(coordinate, White)
			default:
				return nil, errors.Errorf("row %d: unexpected cell %q", row+1, r)
			}
		}
	}
	return b.Build(), nil
}

// CellAt returns the cell at the coordinate, or false if it is off the board.
func (b *Board) CellAt(coordinate Coordinate) (Cell, bool) {
	if !isWithinBoard(coordinate) {
		return Cell{}, false
	}
	return b.grid[coordinate.Row][coordinate.Col], true
}

// Grid returns a copy of the board's cells.
func (b *Board) Grid() Grid {
	return b.grid
}

// PlacePiece returns the board that results from placing piece at coordinate,
// or false if the placement captures nothing. The receiver is never modified.
func (b *Board) PlacePiece(coordinate Coordinate, piece Piece) (*Board, bool) {
	checkPiece(piece)

	cell := NewOccupiedCell(coordinate, piece)
	if !b.grid.scan(cell, validateMode) {
		return nil, false
	}

	next := NewBuilder(b)
	next.SetCell(coordinate, piece)
	next.grid.scan(cell, applyMode)
	return next.Build(), true
}

// PotentialMoves lists every coordinate where piece may legally be placed, in
// row-major order.
func (b *Board) PotentialMoves(piece Piece) []Coordinate {
	checkPiece(piece)

	var moves []Coordinate
	for row := 0; row < Dimension; row++ {
		for col := 0; col < Dimension; col++ {
			coordinate := Coordinate{Row: row, Col: col}
			if b.grid.scan(NewOccupiedCell(coordinate, piece), validateMode) {
				moves = append(moves, coordinate)
			}
		}
	}
	return moves
}

// ValidChildBoards returns the board after each of PotentialMoves(piece), in
// the same order.
func (b *Board) ValidChildBoards(piece Piece) []*Board {
	moves := b.PotentialMoves(piece)
	children := make([]*Board, 0, len(moves))
	for _, move := range moves {
		child, ok := b.PlacePiece(move, piece)
		if !ok {
			panic(fmt.Sprintf("potential move %v for %v could not be placed", move, piece))
		}
		children = append(children, child)
	}
	return children
}

// IsEnd reports whether neither colour has a legal move. Empty cells may
// remain on an ended board.
func (b *Board) IsEnd() bool {
	for row := 0; row < Dimension; row++ {
		for col := 0; col < Dimension; col++ {
			coordinate := Coordinate{Row: row, Col: col}
			if b.grid.scan(NewOccupiedCell(coordinate, Black), validateMode) ||
				b.grid.scan(NewOccupiedCell(coordinate, White), validateMode) {
				return false
			}
		}
	}
	return true
}

// Winner never determines a winner. Deciding the outcome from tile counts is
// left to the game loop (see Count).
func (b *Board) Winner() (Piece, bool) {
	return 0, false
}

// Count returns the number of cells occupied by piece.
func (b *Board) Count(piece Piece) int {
	checkPiece(piece)

	count := 0
	for row := range b.grid {
		for _, cell := range b.grid[row] {
			if cell.occupant == piece {
				count++
			}
		}
	}
	return count
}

// Empty returns the number of unoccupied cells.
func (b *Board) Empty() int {
	return Dimension*Dimension - b.Count(Black) - b.Count(White)
}

// Equal reports whether both boards hold the same cells.
func (b *Board) Equal(other *Board) bool {
	if other == nil {
		panic("board must be set")
	}
	return b.grid == other.grid
}

// Hash returns an FNV-1a digest of the cell occupants.
func (b *Board) Hash() uint64 {
	hasher := fnv.New64a()
	for row := range b.grid {
		for _, cell := range b.grid[row] {
			_ = binary.Write(hasher, binary.LittleEndian, int8(cell.occupant))
		}
	}
	return hasher.Sum64()
}

// String renders one rune per cell with rows separated by newlines.
func (b *Board) String() string {
	var builder strings.Builder
	builder.Grow(Dimension * (Dimension + 1))
	for row := range b.grid {
		for _, cell := range b.grid[row] {
			builder.WriteRune(cell.Rune())
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}
