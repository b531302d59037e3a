package searcher

import (
	"fmt"
	"strings"
)

// FinalPolicy decides which root action is played once the search is over.
type FinalPolicy int

const (
	// WinRate plays the child with the highest wins/visits.
	WinRate FinalPolicy = iota
	// MostVisits plays the child the search spent the most simulations on.
	MostVisits
)

func (p FinalPolicy) String() string {
	switch p {
	case WinRate:
		return "winrate"
	case MostVisits:
		return "visits"
	default:
		return fmt.Sprintf("FinalPolicy(%d)", int(p))
	}
}

func ParseFinalPolicy(s string) (FinalPolicy, error) {
	switch strings.ToLower(s) {
	case "winrate", "win-rate":
		return WinRate, nil
	case "visits", "most-visits":
		return MostVisits, nil
	}
	return 0, fmt.Errorf("unknown final policy %q", s)
}

// ActionStats are the statistics of one root child.
type ActionStats[A comparable] struct {
	Action A
	Visits int
	Wins   float64
}

func (s ActionStats[A]) WinRate() float64 {
	if s.Visits == 0 {
		return 0
	}
	return s.Wins / float64(s.Visits)
}

// findBestAction applies policy to the root's children. Unvisited children are
// skipped and ties go to the earliest child. ok is false when no child
// qualifies.
func findBestAction[A comparable](t *tree[A], policy FinalPolicy) (action A, ok bool) {
	best := noNode
	bestValue := -1.0
	for _, id := range t.root().children {
		child := t.get(id)
		if child.visits == 0 {
			continue
		}

		var value float64
		switch policy {
		case MostVisits:
			value = float64(child.visits)
		default:
			value = child.wins / float64(child.visits)
		}
		if value > bestValue {
			best = id
			bestValue = value
		}
	}

	if best == noNode {
		return action, false
	}
	return t.get(best).action, true
}

func rootStats[A comparable](t *tree[A]) []ActionStats[A] {
	root := t.root()
	stats := make([]ActionStats[A], 0, len(root.children))
	for _, id := range root.children {
		child := t.get(id)
		stats = append(stats, ActionStats[A]{
			Action: child.action,
			Visits: child.visits,
			Wins:   child.wins,
		})
	}
	return stats
}
