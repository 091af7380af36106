package game

// Placement is a move: either a tile placed at Coordinate, or a pass when the
// side to move is blocked.
type Placement struct {
	Coordinate Coordinate
	Pass       bool
}

// PassMove is the only legal move of a blocked side.
var PassMove = Placement{Pass: true}

func (p Placement) IsPass() bool {
	return p.Pass
}

func (p Placement) String() string {
	if p.Pass {
		return "pass"
	}
	return p.Coordinate.String()
}
