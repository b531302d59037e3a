package game

import (
	"errors"
	"fmt"
)

// Player identifies a seat at the table, e.g. "red" or "blue".
type Player string

var ErrInvalidAction = errors.New("invalid action")

// InvalidActionError reports an action that is not legal in the state it was
// applied to. It unwraps to ErrInvalidAction.
type InvalidActionError struct {
	Action any
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("action %v is not legal in this state", e.Action)
}

func (e *InvalidActionError) Unwrap() error {
	return ErrInvalidAction
}

// Adapter is the rules of a two-player, perfect-information game.
// States are treated as immutable values: NextState never modifies its input
// from the caller's point of view.
type Adapter[S any, A comparable] interface {
	// LegalActions lists the actions of the player to move, always in the same
	// order for the same state. Empty iff the game is over or stuck.
	LegalActions(state S) []A
	NextState(state S, action A) (S, error)
	IsEnded(state S) bool
	CurrentPlayer(state S) Player
	// PointsValues scores a terminal state per player.
	PointsValues(state S) map[Player]float64
}
