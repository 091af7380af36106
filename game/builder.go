package game

import "fmt"

// Builder is the mutable construction phase of a Board. Nothing a Builder
// does is visible through a Board it has already built.
type Builder struct {
	grid Grid
}

// NewBuilder starts from a copy of an existing board.
func NewBuilder(from *Board) *Builder {
	if from == nil {
		panic("board must be set")
	}
	return &Builder{grid: from.grid}
}

// NewEmptyBuilder starts from a board with every cell empty.
func NewEmptyBuilder() *Builder {
	b := &Builder{}
	for row := 0; row < Dimension; row++ {
		for col := 0; col < Dimension; col++ {
			b.grid[row][col] = NewCell(Coordinate{Row: row, Col: col})
		}
	}
	return b
}

func (b *Builder) CellAt(coordinate Coordinate) (Cell, bool) {
	cell, ok := b.grid.cellAt(coordinate)
	if !ok {
		return Cell{}, false
	}
	return *cell, true
}

// SetCell installs piece on the cell at coordinate and returns the updated
// cell. It panics if the coordinate is off the board.
func (b *Builder) SetCell(coordinate Coordinate, piece Piece) Cell {
	checkPiece(piece)

	cell, ok := b.grid.cellAt(coordinate)
	if !ok {
		panic(fmt.Sprintf("%v is not a valid coordinate", coordinate))
	}
	cell.setOccupant(piece)
	return *cell
}

// Build publishes a copy of the grid as a Board.
func (b *Builder) Build() *Board {
	return &Board{grid: b.grid}
}
