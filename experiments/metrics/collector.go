package metrics

import "time"

// MoveMetric captures one search: how long the solver thought and what the
// cache looked like afterwards.
type MoveMetric struct {
	Game         int
	Turn         int
	Duration     time.Duration
	Value        float64
	CacheHits    int
	CacheMisses  int
	CacheEntries int
	Evaluations  int
}

// GameMetric summarizes one finished game.
type GameMetric struct {
	ID       int
	Depth    int // contemplation limit, 0 = unbounded
	Winner   string
	Moves    int
	Duration time.Duration
}

// Collector accumulates move metrics for a single game.
type Collector struct {
	gameStart time.Time
	moveStart time.Time
	moves     []MoveMetric
}

func NewCollector() *Collector {
	return &Collector{gameStart: time.Now()}
}

func (c *Collector) StartMove() {
	c.moveStart = time.Now()
}

// CompleteMove stamps the duration since StartMove and records the metric.
func (c *Collector) CompleteMove(m MoveMetric) {
	m.Duration = time.Since(c.moveStart)
	c.moves = append(c.moves, m)
}

// CompleteGame summarizes the game so far.
func (c *Collector) CompleteGame(id, depth int, winner string, moves int) GameMetric {
	return GameMetric{
		ID:       id,
		Depth:    depth,
		Winner:   winner,
		Moves:    moves,
		Duration: time.Since(c.gameStart),
	}
}

func (c *Collector) Moves() []MoveMetric {
	return c.moves
}
