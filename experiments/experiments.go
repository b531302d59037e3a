package experiments

import (
	"context"
	"fmt"
	"math"

	"mcts/engine"
	"mcts/experiments/metrics"
	"mcts/game"
	"mcts/meta"
	"mcts/searcher"
	"mcts/tictactoe"
	"mcts/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Experiment pits agent configurations against each other at tic-tac-toe.
type Experiment struct {
	Name     string
	Configs  []metrics.AgentConfig
	MatchUps [][2]metrics.AgentConfig
	Games    int // Per match up
	// Parallelism caps the number of games played at once.
	Parallelism int
	// Seed makes the agents reproducible when non-zero.
	Seed uint64
}

type result struct {
	game  metrics.GameRecord
	moves []metrics.MoveRecord
}

// Exploration pairs a baseline agent against agents with other exploration
// constants.
func Exploration(games int) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Simulations: meta.SIMULATIONS, Exploration: meta.EXPLORATION}
	configs := []metrics.AgentConfig{
		{ID: 1, Simulations: meta.SIMULATIONS, Exploration: 0.5},
		{ID: 2, Simulations: meta.SIMULATIONS, Exploration: 1},
		{ID: 3, Simulations: meta.SIMULATIONS, Exploration: math.Sqrt2},
		{ID: 4, Simulations: meta.SIMULATIONS, Exploration: 4},
	}
	return againstBaseline("exploration", baseline, configs, games)
}

// Budget pairs a baseline agent against agents with fewer or more
// simulations.
func Budget(games int) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Simulations: meta.SIMULATIONS, Exploration: meta.EXPLORATION}
	configs := []metrics.AgentConfig{
		{ID: 1, Simulations: 10, Exploration: meta.EXPLORATION},
		{ID: 2, Simulations: 100, Exploration: meta.EXPLORATION},
		{ID: 3, Simulations: 5000, Exploration: meta.EXPLORATION},
	}
	return againstBaseline("budget", baseline, configs, games)
}

// Policy compares the two final action policies.
func Policy(games int) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Simulations: meta.SIMULATIONS, Exploration: meta.EXPLORATION, Policy: searcher.WinRate}
	configs := []metrics.AgentConfig{
		{ID: 1, Simulations: meta.SIMULATIONS, Exploration: meta.EXPLORATION, Policy: searcher.MostVisits},
	}
	return againstBaseline("policy", baseline, configs, games)
}

func againstBaseline(name string, baseline metrics.AgentConfig, configs []metrics.AgentConfig, games int) Experiment {
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}
	return Experiment{
		Name:        name,
		Configs:     append([]metrics.AgentConfig{baseline}, configs...),
		MatchUps:    matchUps,
		Games:       games,
		Parallelism: meta.GO_ROUTINES,
	}
}

// Play runs every game of the experiment and returns the records ordered by
// game ID. The first error cancels the games not yet started.
func (e Experiment) Play(ctx context.Context) ([]metrics.GameRecord, []metrics.MoveRecord, error) {
	total := len(e.MatchUps) * e.Games
	results := make([]result, total)

	log.Info().Msgf("starting %s experiment with %d games...", e.Name, total)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, e.Parallelism))
	for mi, matchup := range e.MatchUps {
		for i := 0; i < e.Games; i++ {
			id := mi*e.Games + i + 1
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				// Swap seats every game so both agents start equally often
				seat := tictactoe.Red
				if i%2 == 1 {
					seat = tictactoe.Blue
				}
				r, err := e.playGame(id, matchup[0], matchup[1], seat)
				if err != nil {
					return fmt.Errorf("game %d: %w", id, err)
				}
				results[id-1] = r
				log.Info().Msgf("completed matchup %d of %d game %d of %d", mi+1, len(e.MatchUps), i+1, e.Games)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	gameRecords := make([]metrics.GameRecord, 0, total)
	moveRecords := []metrics.MoveRecord{}
	for _, r := range results {
		gameRecords = append(gameRecords, r.game)
		moveRecords = append(moveRecords, r.moves...)
	}

	for mi, tally := range metrics.TallyMatchups(gameRecords) {
		log.Info().Msgf("matchup %d: agent %d won %d, agent %d won %d, %d draws",
			mi+1, tally.Agent1, tally.Wins1, tally.Agent2, tally.Wins2, tally.Draws)
	}

	log.Info().Msgf("completed %s experiment", e.Name)
	return gameRecords, moveRecords, nil
}

// Run plays the experiment and stores configs, records and a chart under
// root. It returns the directory written to.
func (e Experiment) Run(ctx context.Context, root string) (string, error) {
	gameRecords, moveRecords, err := e.Play(ctx)
	if err != nil {
		return "", err
	}

	writer, err := metrics.NewWriter(root, e.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(e.Configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	err = writer.WriteChart(e.Name, gameRecords)
	if err != nil {
		return "", err
	}
	log.Info().Msgf("stored results in %s", writer.Dir())

	return writer.Dir(), nil
}

// playGame plays one game with agent1 in the given seat.
func (e Experiment) playGame(id int, config1, config2 metrics.AgentConfig, seat game.Player) (result, error) {
	seats := []game.Player{seat, tictactoe.Opponent(seat)}
	configs := []metrics.AgentConfig{config1, config2}

	agents := map[game.Player]engine.Agent[tictactoe.State, int]{}
	for k, config := range configs {
		options := config.Options()
		if e.Seed != 0 {
			options = append(options, searcher.WithSeed(e.Seed+uint64(2*id+k)))
		}
		agents[seats[k]] = engine.NewMCTSAgent(tictactoe.Rules{}, options...)
	}

	eng := engine.LocalEngine(tictactoe.Rules{}, tictactoe.NewState(), agents)
	outcome, gameMetric, moveMetrics, err := eng.Run()
	if err != nil {
		return result{}, err
	}

	winnerAgent := metrics.NoWinner
	if i := utils.FindIndex(seats, outcome.Winner); i >= 0 && !outcome.IsDraw() {
		winnerAgent = configs[i].ID
	}

	r := result{
		game: metrics.GameRecord{
			ID:          id,
			Agent1:      config1.ID,
			Agent2:      config2.ID,
			Agent1Seat:  seat,
			WinnerAgent: winnerAgent,
			GameMetric:  gameMetric,
		},
	}
	for _, mm := range moveMetrics {
		r.moves = append(r.moves, metrics.MoveRecord{
			Game:       id,
			MoveMetric: mm,
		})
	}
	return r, nil
}
