// Package experiments benchmarks the solver by playing tic-tac-toe games
// against a random opponent across contemplation-depth configurations,
// recording per-move search cost and cache behavior.
package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"solver/experiments/metrics"
	"solver/searcher"
	"solver/tictactoe"
)

type Config struct {
	Games  int
	Depths []int // contemplation limits to sweep; 0 = unbounded
	Seed   uint64
	OutDir string
}

// limitedEval is tictactoe's evaluator with its exhaustive contemplation
// swapped for a depth limit.
type limitedEval struct {
	tictactoe.Eval
	limit searcher.DepthLimit[tictactoe.Board]
}

func (e limitedEval) Contemplate(b tictactoe.Board, depth int) bool {
	return e.limit.Contemplate(b, depth)
}

// Run sweeps the configured depths, playing cfg.Games games per depth, and
// writes games.csv and moves.csv under cfg.OutDir.
func Run(cfg Config) error {
	if cfg.Games <= 0 {
		return fmt.Errorf("need a positive game count, got %d", cfg.Games)
	}
	if len(cfg.Depths) == 0 {
		cfg.Depths = []int{0}
	}

	writer, err := metrics.NewWriter(cfg.OutDir)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	var games []metrics.GameMetric
	var moves []metrics.MoveMetric
	id := 0
	for _, depth := range cfg.Depths {
		// One cache per depth configuration, shared across its games, so the
		// sweep also measures how much a warm cache helps.
		cache := searcher.NewCache[tictactoe.Board, tictactoe.Move, searcher.Score]()
		for i := 0; i < cfg.Games; i++ {
			id++
			game, gameMoves := playGame(id, depth, cache, rng)
			games = append(games, game)
			moves = append(moves, gameMoves...)
		}
		log.Info().Int("depth", depth).Int("games", cfg.Games).
			Int("cached", cache.Len()).Msg("depth configuration finished")
	}

	if err := writer.WriteGames(games); err != nil {
		return err
	}
	if err := writer.WriteMoves(moves); err != nil {
		return err
	}
	log.Info().Str("dir", writer.BaseDir()).Msg("experiment results written")
	return nil
}

// playGame pits a solver playing X against a random O and meters every
// solver search.
func playGame(id, depth int, cache *searcher.Cache[tictactoe.Board, tictactoe.Move, searcher.Score], rng *rand.Rand) (metrics.GameMetric, []metrics.MoveMetric) {
	board := tictactoe.NewBoard()
	var eval searcher.Evaluator[tictactoe.Board, tictactoe.Move, searcher.Score]
	if depth > 0 {
		eval = limitedEval{
			Eval:  tictactoe.Eval{Us: tictactoe.X},
			limit: searcher.DepthLimit[tictactoe.Board]{Max: depth},
		}
	} else {
		eval = tictactoe.Eval{Us: tictactoe.X}
	}
	s := tictactoe.NewSolver(eval, board, searcher.WithCache(cache))
	collector := metrics.NewCollector()

	turn := 0
	for !board.Over() {
		var move tictactoe.Move
		if board.Turn() == tictactoe.X {
			collector.StartMove()
			value, chosen, ok := s.Choose()
			if !ok {
				break
			}
			stats := s.CacheStats()
			collector.CompleteMove(metrics.MoveMetric{
				Game:         id,
				Turn:         turn,
				Value:        float64(value),
				CacheHits:    stats.Hits,
				CacheMisses:  stats.Misses,
				CacheEntries: stats.Entries,
				Evaluations:  stats.Evaluations,
			})
			move = chosen
		} else {
			legal := make([]tictactoe.Move, 0, 9)
			for w := range board.Changes() {
				legal = append(legal, w.Change)
			}
			if len(legal) == 0 {
				break
			}
			move = legal[rng.Intn(len(legal))]
		}
		s.Select(move)
		board = board.Apply(move)
		turn++
	}

	winner := board.Winner().String()
	if board.Winner() == tictactoe.None {
		winner = "draw"
	}
	return collector.CompleteGame(id, depth, winner, turn), collector.Moves()
}
