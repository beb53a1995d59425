package report

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"ProposalEngine/internal/model"
)

// Writer renders a comparison into files under Dir.
type Writer struct {
	Dir    string
	Charts bool
}

// NewWriter creates a Writer for dir. Charts are skipped when charts is false.
func NewWriter(dir string, charts bool) *Writer {
	return &Writer{Dir: dir, Charts: charts}
}

// Write renders summary.md and metrics.json, plus the PNG charts when enabled,
// and returns the paths written. A chart that fails to render is logged and
// skipped; the text outputs are required.
func (w *Writer) Write(c *model.Comparison) ([]string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var written []string
	summary := filepath.Join(w.Dir, "summary.md")
	if err := os.WriteFile(summary, []byte(FormatSummary(c)), 0o644); err != nil {
		return written, fmt.Errorf("write summary: %w", err)
	}
	written = append(written, summary)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, c); err != nil {
		return written, err
	}
	metrics := filepath.Join(w.Dir, "metrics.json")
	if err := os.WriteFile(metrics, buf.Bytes(), 0o644); err != nil {
		return written, fmt.Errorf("write metrics: %w", err)
	}
	written = append(written, metrics)

	if !w.Charts {
		return written, nil
	}

	charts := []struct {
		file   string
		render func() ([]byte, error)
	}{
		{"growth.png", func() ([]byte, error) { return GrowthChart(c) }},
		{"rolling_portfolio.png", func() ([]byte, error) {
			return HistogramChart(&c.Portfolio, c.Portfolio.Name+"\nRolling 12-Month Returns")
		}},
		{"rolling_benchmark.png", func() ([]byte, error) {
			return HistogramChart(&c.Benchmark, c.Benchmark.Name+"\nRolling 12-Month Returns")
		}},
	}
	for _, ch := range charts {
		img, err := ch.render()
		if errors.Is(err, ErrNoChartData) {
			log.Printf("[WARN] %s: nothing to plot", ch.file)
			continue
		}
		if err != nil {
			log.Printf("[ERROR] %s: %v", ch.file, err)
			continue
		}
		path := filepath.Join(w.Dir, ch.file)
		if err := os.WriteFile(path, img, 0o644); err != nil {
			log.Printf("[ERROR] write %s: %v", ch.file, err)
			continue
		}
		written = append(written, path)
	}
	return written, nil
}
