package game

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewOutcome(t *testing.T) {
	t.Run("unique top score wins", func(t *testing.T) {
		got := NewOutcome(map[Player]float64{"red": 1, "blue": -1})

		require.Equal(t, Player("red"), got.Winner, "Player with the highest score should win")
		require.True(t, got.WonBy("red"))
		require.False(t, got.WonBy("blue"))
		require.False(t, got.IsDraw())
	})

	t.Run("tied top score is a draw", func(t *testing.T) {
		got := NewOutcome(map[Player]float64{"red": 0, "blue": 0})

		require.True(t, got.IsDraw(), "Equal scores should not produce a winner")
		require.False(t, got.WonBy("red"))
		require.False(t, got.WonBy("blue"))
	})

	t.Run("tie below the top still has a winner", func(t *testing.T) {
		got := NewOutcome(map[Player]float64{"red": 2, "blue": 1, "green": 1})

		require.Equal(t, Player("red"), got.Winner)
	})

	t.Run("no scores is a draw", func(t *testing.T) {
		require.True(t, NewOutcome(nil).IsDraw())
	})

	t.Run("nobody wins a dead end", func(t *testing.T) {
		got := DeadEndOutcome()

		require.True(t, got.DeadEnd)
		require.True(t, got.IsDraw())
		require.False(t, got.WonBy(""), "Empty player should never be credited")
	})
}

func TestInvalidActionError(t *testing.T) {
	err := fmt.Errorf("playing: %w", &InvalidActionError{Action: 7})

	require.True(t, errors.Is(err, ErrInvalidAction), "Should unwrap to the sentinel")
	require.Contains(t, err.Error(), "action 7")

	var target *InvalidActionError
	require.True(t, errors.As(err, &target))
	require.Equal(t, 7, target.Action)
}
