package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"mcts/engine"
	"mcts/experiments"
	"mcts/game"
	"mcts/meta"
	"mcts/searcher"
	"mcts/tictactoe"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "think", "One of think, play or experiment")
	board := flag.String("board", ".........", "Tic-tac-toe board to think about, row by row (. x o)")
	simulations := flag.Int("sims", meta.SIMULATIONS, "Number of simulations per move")
	exploration := flag.Float64("c", meta.EXPLORATION, "UCB1 exploration constant")
	duration := flag.Duration("duration", 0, "Wall-clock budget per move, 0 for none")
	seed := flag.Uint64("seed", 0, "Random seed, 0 for a time based seed")
	policy := flag.String("policy", "winrate", "Final action policy: winrate or visits")
	name := flag.String("experiment", "exploration", "Experiment to run: exploration, budget or policy")
	games := flag.Int("games", meta.GAMES, "Games per experiment matchup")
	out := flag.String("out", "results", "Directory to store experiment results in")
	verbose := flag.Bool("v", false, "Log search details")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	finalPolicy, err := searcher.ParseFinalPolicy(*policy)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -policy")
	}
	options := []searcher.Option{
		searcher.WithSimulations(*simulations),
		searcher.WithDuration(*duration),
		searcher.WithExploration(*exploration),
		searcher.WithFinalPolicy(finalPolicy),
		searcher.WithMetrics(),
	}
	if *seed != 0 {
		options = append(options, searcher.WithSeed(*seed))
	}

	switch *mode {
	case "think":
		err = think(*board, options)
	case "play":
		err = play(options)
	case "experiment":
		err = experiment(*name, *games, *out)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func think(board string, options []searcher.Option) error {
	state, err := tictactoe.ParseState(board)
	if err != nil {
		return err
	}
	colors := tictactoe.ColorsSupported(os.Stdout)
	if err := tictactoe.Render(os.Stdout, state, colors); err != nil {
		return err
	}

	mcts := searcher.NewMCTS(tictactoe.Rules{}, options...)
	move, err := mcts.Think(state)
	if err != nil {
		return err
	}

	fmt.Printf("\n%-6s %8s %8s %8s\n", "cell", "visits", "wins", "rate")
	for _, stats := range mcts.RootStats() {
		fmt.Printf("%-6d %8d %8.0f %8.3f\n", stats.Action, stats.Visits, stats.Wins, stats.WinRate())
	}
	metrics := mcts.LastMetrics()
	fmt.Printf("\n%s plays %d after %d simulations in %s (%d nodes, depth %d)\n",
		state.Turn, move, metrics.Simulations, metrics.Duration, metrics.TreeSize, metrics.MaxDepth)
	return nil
}

func play(options []searcher.Option) error {
	agents := map[game.Player]engine.Agent[tictactoe.State, int]{
		tictactoe.Red:  engine.NewMCTSAgent(tictactoe.Rules{}, options...),
		tictactoe.Blue: engine.NewMCTSAgent(tictactoe.Rules{}, options...),
	}
	e := engine.LocalEngine(tictactoe.Rules{}, tictactoe.NewState(), agents)
	outcome, gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}

	if err := tictactoe.Render(os.Stdout, e.State, tictactoe.ColorsSupported(os.Stdout)); err != nil {
		return err
	}
	if outcome.IsDraw() {
		fmt.Printf("\ndraw after %d moves\n", gameMetric.TotalMoves)
	} else {
		fmt.Printf("\n%s wins after %d moves\n", outcome.Winner, gameMetric.TotalMoves)
	}
	return nil
}

func experiment(name string, games int, out string) error {
	var e experiments.Experiment
	switch name {
	case "exploration":
		e = experiments.Exploration(games)
	case "budget":
		e = experiments.Budget(games)
	case "policy":
		e = experiments.Policy(games)
	default:
		return fmt.Errorf("unknown experiment %q", name)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dir, err := e.Run(ctx, out)
	if err != nil {
		return err
	}
	fmt.Println(dir)
	return nil
}
