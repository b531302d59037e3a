package searcher

import "time"

type SearchMetrics struct {
	StartTime    time.Time
	Duration     time.Duration
	Simulations  int
	FullPlayouts int // Rollouts that reached the end of the game
	DeadEnds     int // Rollouts stuck without legal actions
	TreeSize     int
	MaxDepth     int
}

type MetricsCollector interface {
	Start()
	AddSimulation(depth int)
	AddFullPlayout()
	AddDeadEnd()
	Complete(treeSize int) SearchMetrics
}

type metricsCollector struct {
	startTime    time.Time
	simulations  int
	fullPlayouts int
	deadEnds     int
	maxDepth     int
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	*m = metricsCollector{startTime: time.Now()}
}

func (m *metricsCollector) AddSimulation(depth int) {
	m.simulations++
	m.maxDepth = max(m.maxDepth, depth)
}

func (m *metricsCollector) AddFullPlayout() {
	m.fullPlayouts++
}

func (m *metricsCollector) AddDeadEnd() {
	m.deadEnds++
}

func (m *metricsCollector) Complete(treeSize int) SearchMetrics {
	return SearchMetrics{
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		Simulations:  m.simulations,
		FullPlayouts: m.fullPlayouts,
		DeadEnds:     m.deadEnds,
		TreeSize:     treeSize,
		MaxDepth:     m.maxDepth,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                     {}
func (m *noMetricsCollector) AddSimulation(int)          {}
func (m *noMetricsCollector) AddFullPlayout()            {}
func (m *noMetricsCollector) AddDeadEnd()                {}
func (m *noMetricsCollector) Complete(int) SearchMetrics { return SearchMetrics{} }
