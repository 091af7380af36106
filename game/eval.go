package game

var corners = [4]Coordinate{
	{Row: 0, Col: 0},
	{Row: 0, Col: Dimension - 1},
	{Row: Dimension - 1, Col: 0},
	{Row: Dimension - 1, Col: Dimension - 1},
}

// Classic positional weights: corners are stable, the cells next to them give
// corners away.
var weights = [Dimension][Dimension]float64{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

// Evaluations names every evaluation function so that configs can refer to them
var Evaluations = map[string]Evaluate{
	"discs":    EvaluateDiscs,
	"mobility": EvaluateMobility,
	"corners":  EvaluateCorners,
	"weighted": EvaluateWeighted,
	"combined": EvaluateCombined,
}

// EvaluateDiscs compares tile counts, producing a score between -1 and 1 from the current player's perspective
func EvaluateDiscs(s State) float64 {
	gs := mustGameState(s)
	return normalize(float64(gs.Board.Count(gs.Turn)), float64(gs.Board.Count(gs.Turn.Opposite())))
}

// EvaluateMobility compares the number of legal placements of each side
func EvaluateMobility(s State) float64 {
	gs := mustGameState(s)
	return gs.calculateMobilityScore()
}

// EvaluateCorners compares the number of corners held by each side
func EvaluateCorners(s State) float64 {
	gs := mustGameState(s)
	return gs.calculateCornerScore()
}

// EvaluateWeighted scores occupied cells by the positional weight table
func EvaluateWeighted(s State) float64 {
	gs := mustGameState(s)
	return gs.calculateWeightedScore()
}

// EvaluateCombined averages disc, mobility and corner scores
func EvaluateCombined(s State) float64 {
	gs := mustGameState(s)
	discScore := normalize(float64(gs.Board.Count(gs.Turn)), float64(gs.Board.Count(gs.Turn.Opposite())))
	mobilityScore := gs.calculateMobilityScore()
	cornerScore := gs.calculateCornerScore()

	return (discScore + mobilityScore + cornerScore) / 3.0
}

func mustGameState(s State) *GameState {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	return gs
}

func (gs *GameState) calculateMobilityScore() float64 {
	current := len(gs.Board.PotentialMoves(gs.Turn))
	opponent := len(gs.Board.PotentialMoves(gs.Turn.Opposite()))
	return normalize(float64(current), float64(opponent))
}

func (gs *GameState) calculateCornerScore() float64 {
	held := make(map[Piece]float64)
	for _, corner := range corners {
		cell, _ := gs.Board.CellAt(corner)
		if piece, ok := cell.Occupant(); ok {
			held[piece]++
		}
	}
	return normalize(held[gs.Turn], held[gs.Turn.Opposite()])
}

func (gs *GameState) calculateWeightedScore() float64 {
	score, total := 0.0, 0.0
	for row := 0; row < Dimension; row++ {
		for col := 0; col < Dimension; col++ {
			cell, _ := gs.Board.CellAt(Coordinate{Row: row, Col: col})
			piece, ok := cell.Occupant()
			if !ok {
				continue
			}
			weight := weights[row][col]
			if weight < 0 {
				total -= weight
			} else {
				total += weight
			}
			if piece == gs.Turn {
				score += weight
			} else {
				score -= weight
			}
		}
	}
	if total == 0 {
		return 0
	}
	return score / total
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
