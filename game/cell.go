package game

const emptyRune = '.'

// Cell is a board coordinate paired with an optional occupant.
type Cell struct {
	coordinate Coordinate
	occupant   Piece // zero when empty
}

func NewCell(coordinate Coordinate) Cell {
	return Cell{coordinate: coordinate}
}

func NewOccupiedCell(coordinate Coordinate, piece Piece) Cell {
	checkPiece(piece)
	return Cell{coordinate: coordinate, occupant: piece}
}

func (c Cell) Coordinate() Coordinate {
	return c.coordinate
}

// Occupant returns the piece on the cell, if any.
func (c Cell) Occupant() (Piece, bool) {
	return c.occupant, c.occupant.Valid()
}

func (c Cell) IsEmpty() bool {
	return !c.occupant.Valid()
}

func (c Cell) Rune() rune {
	if c.IsEmpty() {
		return emptyRune
	}
	return c.occupant.Rune()
}

func (c Cell) String() string {
	return string(c.Rune())
}

// setOccupant is only reachable through Builder and the capture scan running
// on an unpublished grid.
func (c *Cell) setOccupant(piece Piece) {
	c.occupant = piece
}
