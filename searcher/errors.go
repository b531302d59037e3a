package searcher

import "errors"

var (
	ErrEmptyRoot     = errors.New("root state has no legal actions")
	ErrDegenerateUCB = errors.New("cannot compute UCB1: 0 visits")
)
