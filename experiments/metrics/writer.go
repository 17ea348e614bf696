package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists experiment records as CSV files under a timestamped
// directory.
type Writer struct {
	baseDir string
}

func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) BaseDir() string {
	return w.baseDir
}

func (w *Writer) WriteGames(records []GameMetric) error {
	f, err := os.Create(filepath.Join(w.baseDir, "games.csv"))
	if err != nil {
		return fmt.Errorf("failed to create games file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "depth", "winner", "moves", "duration_ms"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write games header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.Depth),
			r.Winner,
			strconv.Itoa(r.Moves),
			strconv.FormatFloat(float64(r.Duration.Milliseconds()), 'f', -1, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record: %w", err)
		}
	}
	return nil
}

func (w *Writer) WriteMoves(records []MoveMetric) error {
	f, err := os.Create(filepath.Join(w.baseDir, "moves.csv"))
	if err != nil {
		return fmt.Errorf("failed to create moves file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{
		"game", "turn", "duration_us", "value",
		"cache_hits", "cache_misses", "cache_entries", "evaluations",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write moves header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Turn),
			strconv.FormatInt(r.Duration.Microseconds(), 10),
			strconv.FormatFloat(r.Value, 'f', -1, 64),
			strconv.Itoa(r.CacheHits),
			strconv.Itoa(r.CacheMisses),
			strconv.Itoa(r.CacheEntries),
			strconv.Itoa(r.Evaluations),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write move record: %w", err)
		}
	}
	return nil
}
