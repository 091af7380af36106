package game

import "fmt"

type scanMode int

const (
	// validateMode stops at the first capturing line and reports it.
	validateMode scanMode = iota
	// applyMode flips every capturing line.
	applyMode
)

func (g *Grid) cellAt(coordinate Coordinate) (*Cell, bool) {
	if !isWithinBoard(coordinate) {
		return nil, false
	}
	return &g[coordinate.Row][coordinate.Col], true
}

// scan walks the eight directions from a hypothetical cell that has not been
// placed yet. Validation fails unless the target cell is empty. A direction captures when a run of opposing tiles is closed by
// a tile of the cell's colour. In validateMode the first capturing direction
// returns true. In applyMode every capturing run is flipped and the result is
// always false; it must only run on a grid that has not been published.
func (g *Grid) scan(cell Cell, mode scanMode) bool {
	piece, ok := cell.Occupant()
	if !ok {
		return false
	}
	origin := cell.Coordinate()
	if mode == validateMode {
		// Only an empty on-board cell can receive a tile
		target, ok := g.cellAt(origin)
		if !ok || !target.IsEmpty() {
			return false
		}
	}

	for _, direction := range directions {
		neighbour, ok := g.cellAt(origin.Add(direction))
		if !ok || neighbour.IsEmpty() || neighbour.occupant == piece {
			continue
		}

		for next := neighbour.coordinate.Add(direction); ; next = next.Add(direction) {
			current, ok := g.cellAt(next)
			if !ok || current.IsEmpty() {
				break
			}
			if current.occupant != piece {
				continue
			}
			if mode == validateMode {
				return true
			}
			g.flip(origin, current.coordinate, direction, piece)
			break
		}
	}

	return false
}

// flip recolours every cell strictly between start and end.
func (g *Grid) flip(start, end, direction Coordinate, piece Piece) {
	for current := start.Add(direction); current != end; current = current.Add(direction) {
		cell, ok := g.cellAt(current)
		if !ok || cell.IsEmpty() {
			panic(fmt.Sprintf("empty cell in the line of %v - %v with direction %v", start, end, direction))
		}
		cell.setOccupant(piece)
	}
}
