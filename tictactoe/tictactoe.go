// Package tictactoe implements noughts and crosses as a game.Adapter.
// Red plays first. Actions are cell indices 0-8, row by row.
package tictactoe

import (
	"fmt"
	"strings"

	"mcts/game"
)

const (
	Red  game.Player = "red"
	Blue game.Player = "blue"
)

type Cell uint8

const (
	Empty Cell = iota
	RedMark
	BlueMark
)

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // Rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // Columns
	{0, 4, 8}, {2, 4, 6}, // Diagonals
}

// State is an immutable position.
type State struct {
	Board [9]Cell
	Turn  game.Player
}

func NewState() State {
	return State{Turn: Red}
}

// ParseState reads nine cells row by row: '.' or '-' for empty, 'x' or 'r'
// for red and 'o' or 'b' for blue. Red is to move when both players have
// placed the same number of marks.
func ParseState(s string) (State, error) {
	s = strings.Join(strings.Fields(s), "")
	if len(s) != 9 {
		return State{}, fmt.Errorf("board %q: want 9 cells, got %d", s, len(s))
	}

	var state State
	reds, blues := 0, 0
	for i, c := range strings.ToLower(s) {
		switch c {
		case '.', '-':
		case 'x', 'r':
			state.Board[i] = RedMark
			reds++
		case 'o', 'b':
			state.Board[i] = BlueMark
			blues++
		default:
			return State{}, fmt.Errorf("board %q: unknown cell %q", s, c)
		}
	}

	switch reds - blues {
	case 0:
		state.Turn = Red
	case 1:
		state.Turn = Blue
	default:
		return State{}, fmt.Errorf("board %q: %d red and %d blue marks", s, reds, blues)
	}
	return state, nil
}

func (s State) String() string {
	var b strings.Builder
	for _, c := range s.Board {
		switch c {
		case RedMark:
			b.WriteByte('x')
		case BlueMark:
			b.WriteByte('o')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

// Winner returns the player owning a full line, or "" if there is none.
func (s State) Winner() game.Player {
	for _, line := range lines {
		c := s.Board[line[0]]
		if c != Empty && c == s.Board[line[1]] && c == s.Board[line[2]] {
			return owner(c)
		}
	}
	return ""
}

func (s State) full() bool {
	for _, c := range s.Board {
		if c == Empty {
			return false
		}
	}
	return true
}

func owner(c Cell) game.Player {
	if c == RedMark {
		return Red
	}
	return Blue
}

func mark(player game.Player) Cell {
	if player == Red {
		return RedMark
	}
	return BlueMark
}

func Opponent(player game.Player) game.Player {
	if player == Red {
		return Blue
	}
	return Red
}

// Rules is the game.Adapter for tic-tac-toe.
type Rules struct{}

var _ game.Adapter[State, int] = Rules{}

func (Rules) LegalActions(state State) []int {
	if state.Winner() != "" {
		return nil
	}
	actions := make([]int, 0, len(state.Board))
	for i, c := range state.Board {
		if c == Empty {
			actions = append(actions, i)
		}
	}
	return actions
}

func (r Rules) NextState(state State, action int) (State, error) {
	if action < 0 || action >= len(state.Board) || state.Board[action] != Empty || r.IsEnded(state) {
		return state, &game.InvalidActionError{Action: action}
	}
	state.Board[action] = mark(state.Turn)
	state.Turn = Opponent(state.Turn)
	return state, nil
}

func (Rules) IsEnded(state State) bool {
	return state.Winner() != "" || state.full()
}

func (Rules) CurrentPlayer(state State) game.Player {
	return state.Turn
}

func (Rules) PointsValues(state State) map[game.Player]float64 {
	switch winner := state.Winner(); winner {
	case "":
		return map[game.Player]float64{Red: 0, Blue: 0}
	default:
		return map[game.Player]float64{winner: 1, Opponent(winner): -1}
	}
}
