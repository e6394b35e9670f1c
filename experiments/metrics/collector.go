package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth    int // Minimax depth, or MCTS rollout cutoff
	Duration time.Duration
	Nodes    int // Positions expanded by minimax
	Leaves   int // Positions scored by the static evaluator
	Cutoffs  int
	Episodes int // MCTS only
	Playouts int // MCTS rollouts that reached the end of the game
	Value    int // From White's point of view: minimax value, or MCTS estimate in thousandths
}

type MoveMetric struct {
	Step   int
	Player string // "White" or "Black"
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" if the game was stopped without a winner
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type AgentConfig struct {
	ID         int
	Kind       string        // see agent.Kinds
	Depth      int           // Search depth, minimax agents only
	Seed       uint64        // Random and MCTS agents
	Goroutines int           // MCTS only
	Episodes   int           // MCTS only
	Duration   time.Duration // MCTS only
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	AddEpisode()
	AddFullPlayout()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     atomic.Int32
	leaves    atomic.Int32
	cutoffs   atomic.Int32
	episodes  atomic.Int32
	playouts  atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
	m.episodes.Store(0)
	m.playouts.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddFullPlayout() {
	m.playouts.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Leaves:   int(m.leaves.Load()),
		Cutoffs:  int(m.cutoffs.Load()),
		Episodes: int(m.episodes.Load()),
		Playouts: int(m.playouts.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)        {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddLeaf()               {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) AddEpisode()            {}
func (m *dummyCollector) AddFullPlayout()        {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
