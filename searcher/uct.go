package searcher

import (
	"fmt"
	"math"
)

type uct struct {
	c   float64
	lnN float64
}

func newUCT(c float64, parentVisits int) (uct, error) {
	if parentVisits == 0 {
		return uct{}, fmt.Errorf("parent: %w", ErrDegenerateUCB)
	}
	return uct{c: c, lnN: math.Log(float64(parentVisits))}, nil
}

// evaluate scores a child with UCB1 = exploit + c*sqrt(ln(N)/n). The exploit
// term is the child's win rate when maximizing and its complement otherwise.
func (u uct) evaluate(wins float64, visits int, maximizing bool) (float64, error) {
	if visits == 0 {
		return 0, fmt.Errorf("child: %w", ErrDegenerateUCB)
	}
	n := float64(visits)
	exploit := wins / n
	if !maximizing {
		exploit = 1 - exploit
	}
	return exploit + u.c*math.Sqrt(u.lnN/n), nil
}
