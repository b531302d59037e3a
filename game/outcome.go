package game

import "math"

// Outcome is the result of a finished playout. A zero Outcome is a draw.
type Outcome struct {
	Winner Player
	// DeadEnd is set when play stopped without the game being over.
	DeadEnd bool
}

func (o Outcome) IsDraw() bool {
	return o.Winner == ""
}

// WonBy reports whether player won outright.
func (o Outcome) WonBy(player Player) bool {
	return player != "" && o.Winner == player
}

// NewOutcome picks the player whose score is strictly greater than every other
// player's score. A tie at the top is a draw.
func NewOutcome(points map[Player]float64) Outcome {
	top := math.Inf(-1)
	var leader Player
	leaders := 0
	for player, score := range points {
		switch {
		case score > top:
			top = score
			leader = player
			leaders = 1
		case score == top:
			leaders++
		}
	}
	if leaders != 1 {
		return Outcome{}
	}
	return Outcome{Winner: leader}
}

// DeadEndOutcome is the outcome of a playout that ran out of legal actions
// before the game was over.
func DeadEndOutcome() Outcome {
	return Outcome{DeadEnd: true}
}
