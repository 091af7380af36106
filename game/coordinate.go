package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// Coordinate is a (row, column) pair on the board. Coordinates outside the
// board are representable; range checks belong to Board.
type Coordinate struct {
	Row int
	Col int
}

// Add offsets the coordinate by a direction.
func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// String renders the coordinate in algebraic form (column letter, row number),
// e.g. (2, 3) is "d3". Off-board coordinates fall back to "(row,col)".
func (c Coordinate) String() string {
	if !isWithinBoard(c) {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+rune(c.Col), c.Row+1)
}

// ParseCoordinate parses the algebraic form produced by String.
func ParseCoordinate(s string) (Coordinate, error) {
	if len(s) != 2 {
		return Coordinate{}, errors.Errorf("invalid coordinate %q", s)
	}
	col := int(s[0] - 'a')
	if s[0] >= 'A' && s[0] <= 'Z' {
		col = int(s[0] - 'A')
	}
	row := int(s[1] - '1')
	c := Coordinate{Row: row, Col: col}
	if !isWithinBoard(c) {
		return Coordinate{}, errors.Errorf("coordinate %q is off the board", s)
	}
	return c, nil
}

// The 3x3 neighbourhood minus the centre.
var directions = [8]Coordinate{
	// Above row
	{Row: -1, Col: -1},
	{Row: -1, Col: 0},
	{Row: -1, Col: 1},
	// Current row
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
	// Below row
	{Row: 1, Col: -1},
	{Row: 1, Col: 0},
	{Row: 1, Col: 1},
}

func isWithinBoard(c Coordinate) bool {
	return c.Row >= 0 && c.Row < Dimension && c.Col >= 0 && c.Col < Dimension
}
