package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"mcts/utils"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Tally is the score of one matchup.
type Tally struct {
	Agent1 int
	Agent2 int
	Wins1  int
	Wins2  int
	Draws  int
}

func (t Tally) Games() int {
	return t.Wins1 + t.Wins2 + t.Draws
}

type seatResult int

const (
	draw seatResult = iota
	agent1Won
	agent2Won
)

type matchupResult struct {
	matchup [2]int
	result  seatResult
}

// TallyMatchups groups game records by matchup, keeping first-seen order.
func TallyMatchups(records []GameRecord) []Tally {
	matchups := [][2]int{}
	results := make([]matchupResult, 0, len(records))
	for _, record := range records {
		key := [2]int{record.Agent1, record.Agent2}
		if utils.FindIndex(matchups, key) < 0 {
			matchups = append(matchups, key)
		}

		result := agent2Won
		switch record.Winner {
		case "":
			result = draw
		case record.Agent1Seat:
			result = agent1Won
		}
		results = append(results, matchupResult{matchup: key, result: result})
	}

	counts := utils.Tally(results)
	tallies := make([]Tally, 0, len(matchups))
	for _, key := range matchups {
		tallies = append(tallies, Tally{
			Agent1: key[0],
			Agent2: key[1],
			Wins1:  counts[matchupResult{key, agent1Won}],
			Wins2:  counts[matchupResult{key, agent2Won}],
			Draws:  counts[matchupResult{key, draw}],
		})
	}
	return tallies
}

// WriteChart renders a stacked bar per matchup into chart.html.
func (w *Writer) WriteChart(title string, records []GameRecord) error {
	tallies := TallyMatchups(records)

	labels := make([]string, 0, len(tallies))
	wins1 := make([]opts.BarData, 0, len(tallies))
	wins2 := make([]opts.BarData, 0, len(tallies))
	draws := make([]opts.BarData, 0, len(tallies))
	for _, t := range tallies {
		labels = append(labels, fmt.Sprintf("%d vs %d", t.Agent1, t.Agent2))
		wins1 = append(wins1, opts.BarData{Value: t.Wins1})
		wins2 = append(wins2, opts.BarData{Value: t.Wins2})
		draws = append(draws, opts.BarData{Value: t.Draws})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)
	bar.SetXAxis(labels).
		AddSeries("agent1 wins", wins1, charts.WithBarChartOpts(opts.BarChart{Stack: "games"})).
		AddSeries("draws", draws, charts.WithBarChartOpts(opts.BarChart{Stack: "games"})).
		AddSeries("agent2 wins", wins2, charts.WithBarChartOpts(opts.BarChart{Stack: "games"}))

	page := components.NewPage()
	page.AddCharts(bar)

	path := filepath.Join(w.baseDir, "chart.html")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	err = page.Render(f)
	if err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
