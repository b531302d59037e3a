package searcher

import (
	"fmt"
	"time"

	"mcts/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(s *settings)

type settings struct {
	simulations int
	duration    time.Duration
	exploration float64
	policy      FinalPolicy
	seed        uint64
	metrics     MetricsCollector
}

// WithSimulations sets the number of simulations per search.
func WithSimulations(simulations int) Option {
	return func(s *settings) {
		if simulations > 0 {
			s.simulations = simulations
		}
	}
}

// WithDuration adds a wall-clock budget. The search stops at whichever budget
// runs out first, always between two simulations.
func WithDuration(duration time.Duration) Option {
	return func(s *settings) {
		if duration > 0 {
			s.duration = duration
		}
	}
}

// WithExploration sets C in the UCB1 exploration term.
func WithExploration(c float64) Option {
	return func(s *settings) {
		s.exploration = max(0, c)
	}
}

func WithFinalPolicy(policy FinalPolicy) Option {
	return func(s *settings) {
		s.policy = policy
	}
}

// WithSeed makes every search of the searcher reproducible. The generator is
// reseeded at the start of each Think.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = NewMetricsCollector()
	}
}

// MCTS picks moves with vanilla Monte Carlo tree search. A fresh tree is built
// for every call to Think. It must not be used from several goroutines at once.
type MCTS[S any, A comparable] struct {
	settings
	adapter game.Adapter[S, A]
	rng     *rand.Rand
	tree    *tree[A]
	last    SearchMetrics
}

func NewMCTS[S any, A comparable](adapter game.Adapter[S, A], options ...Option) *MCTS[S, A] {
	s := settings{ // Default values
		simulations: DefaultSimulations,
		exploration: DefaultExploration,
		policy:      WinRate,
		seed:        uint64(time.Now().UnixNano()),
		metrics:     NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	if adapter == nil {
		panic("Must specify game adapter")
	}

	return &MCTS[S, A]{
		settings: s,
		adapter:  adapter,
		rng:      rand.New(rand.NewSource(s.seed)),
	}
}

// Think runs the search from state and returns the action to play.
// ErrEmptyRoot is returned without simulating when state has no legal actions.
func (m *MCTS[S, A]) Think(state S) (A, error) {
	var none A

	actions := m.adapter.LegalActions(state)
	if len(actions) == 0 {
		return none, ErrEmptyRoot
	}
	m.rng.Seed(m.seed)
	m.tree = newTree(actions)
	rootPlayer := m.adapter.CurrentPlayer(state)

	// Run simulations to collect statistics
	m.metrics.Start()
	start := time.Now()
	for i := 0; i < m.simulations; i++ {
		if i > 0 && m.duration > 0 && time.Since(start) >= m.duration {
			break
		}
		if err := m.simulate(state, rootPlayer); err != nil {
			return none, err
		}
	}
	m.last = m.metrics.Complete(m.tree.size())

	action, err := m.decide()
	if err != nil {
		return none, err
	}

	log.Debug().
		Str("player", string(rootPlayer)).
		Int("simulations", m.tree.root().visits).
		Int("nodes", m.tree.size()).
		Dur("elapsed", time.Since(start)).
		Msgf("picked %v", action)
	return action, nil
}

// decide applies the final policy to the current tree.
func (m *MCTS[S, A]) decide() (A, error) {
	action, ok := findBestAction(m.tree, m.policy)
	if !ok {
		return action, fmt.Errorf("no visited root child: %w", ErrDegenerateUCB)
	}
	return action, nil
}

// simulate runs one selection, expansion, rollout and backup pass.
func (m *MCTS[S, A]) simulate(state S, rootPlayer game.Player) error {
	id, state, depth, err := selectFrontier(m.tree, m.adapter, m.exploration, state, rootPlayer)
	if err != nil {
		return err
	}

	child, state, err := expand(m.tree, m.adapter, m.rng, id, state)
	if err != nil {
		return err
	}
	if child != id {
		depth++
	}

	final, _, err := rollout(m.adapter, m.rng, state)
	if err != nil {
		return err
	}
	outcome := score(m.adapter, final)
	if outcome.DeadEnd {
		m.metrics.AddDeadEnd()
	} else {
		m.metrics.AddFullPlayout()
	}

	backup(m.tree, child, outcome)
	m.metrics.AddSimulation(depth)
	return nil
}

// RootStats reports the root children of the last search in the order they
// were expanded.
func (m *MCTS[S, A]) RootStats() []ActionStats[A] {
	if m.tree == nil {
		return nil
	}
	return rootStats(m.tree)
}

// LastMetrics returns the metrics of the last search. It is empty unless the
// searcher was built WithMetrics.
func (m *MCTS[S, A]) LastMetrics() SearchMetrics {
	return m.last
}
