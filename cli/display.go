package cli

import (
	"fmt"
	"reversi/game"
	"strings"
)

// Terminal color codes
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	White  = "\033[37m"
	Bold   = "\033[1m"
)

const hintRune = '*'

type palette struct {
	enabled bool
}

func (p palette) paint(color, s string) string {
	if !p.enabled {
		return s
	}
	return color + s + Reset
}

func (p palette) piece(piece game.Piece) string {
	if piece == game.Black {
		return p.paint(Red, string(piece.Rune()))
	}
	return p.paint(Bold+White, string(piece.Rune()))
}

// RenderBoard draws the board with file letters and rank numbers, marking
// hints with an asterisk.
func RenderBoard(board *game.Board, hints []game.Coordinate, color bool) string {
	p := palette{enabled: color}
	hinted := make(map[game.Coordinate]bool, len(hints))
	for _, hint := range hints {
		hinted[hint] = true
	}

	var sb strings.Builder
	files := make([]string, game.Dimension)
	for col := range files {
		files[col] = string(rune('a' + col))
	}
	header := "  " + p.paint(Cyan, strings.Join(files, " "))
	sb.WriteString(header + "\n")

	for row := 0; row < game.Dimension; row++ {
		sb.WriteString(p.paint(Cyan, fmt.Sprintf("%d", row+1)))
		for col := 0; col < game.Dimension; col++ {
			coordinate := game.Coordinate{Row: row, Col: col}
			cell, _ := board.CellAt(coordinate)
			sb.WriteByte(' ')
			if piece, ok := cell.Occupant(); ok {
				sb.WriteString(p.piece(piece))
			} else if hinted[coordinate] {
				sb.WriteString(p.paint(Yellow, string(hintRune)))
			} else {
				sb.WriteRune(cell.Rune())
			}
		}
		sb.WriteString(" " + p.paint(Cyan, fmt.Sprintf("%d", row+1)) + "\n")
	}
	sb.WriteString(header + "\n")
	return sb.String()
}

func formatScore(state *game.GameState, color bool) string {
	p := palette{enabled: color}
	black, white := state.Score()
	return fmt.Sprintf("%s %d - %d %s", p.piece(game.Black), black, white, p.piece(game.White))
}
