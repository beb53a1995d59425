package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ProposalEngine/internal/config"
	"ProposalEngine/internal/store"
)

func writeCSV(t *testing.T, dir, name string, months int, value float64) {
	t.Helper()
	var b strings.Builder
	b.WriteString("date,value\n")
	for i := 0; i < months; i++ {
		fmt.Fprintf(&b, "%04d-%02d,%g\n", 2010+i/12, i%12+1, value)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".csv"), []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.Proposal.Name = "Test proposal"
	cfg.Proposal.FeePercent = 1
	cfg.Proposal.Portfolio = []config.Component{{Series: "equity", Weight: 0.6}, {Series: "bond", Weight: 0.4}}
	cfg.Proposal.Benchmark = []config.Component{{Series: "index", Weight: 1}}
	cfg.Output.Dir = t.TempDir()
	cfg.Output.Charts = false
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestGenerate_FromCSVDir(t *testing.T) {
	ctx := context.Background()
	data := t.TempDir()
	writeCSV(t, data, "equity", 36, 0.01)
	writeCSV(t, data, "bond", 36, 0.003)
	writeCSV(t, data, "index", 36, 0.006)

	cfg := testConfig(t)
	st := store.NewMemoryStore()
	if err := importDir(ctx, st, data); err != nil {
		t.Fatal(err)
	}
	names, err := st.ListSeries(ctx)
	if err != nil || len(names) != 3 {
		t.Fatalf("expected 3 imported series, got %v (%v)", names, err)
	}

	p, err := buildProposal(ctx, cfg, st)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Portfolio) != 2 || p.Portfolio[0].Weight != 0.6 || p.AnnualFeePct != 1 {
		t.Errorf("unexpected proposal %+v", p)
	}
	if p.ClientOptions.Simulations != 100 || p.ClientOptions.TargetAge != 95 {
		t.Errorf("expected simulation defaults, got %+v", p.ClientOptions)
	}

	written, err := generate(ctx, cfg, st)
	if err != nil {
		t.Fatal(err)
	}
	if len(written) != 2 {
		t.Fatalf("expected summary and metrics, got %v", written)
	}
	summary, err := os.ReadFile(filepath.Join(cfg.Output.Dir, "summary.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(summary), "# Test proposal") {
		t.Errorf("unexpected summary:\n%s", summary)
	}
}

func TestBuildProposal_MissingSeries(t *testing.T) {
	cfg := testConfig(t)
	_, err := buildProposal(context.Background(), cfg, store.NewMemoryStore())
	if !errors.Is(err, store.ErrSeriesNotFound) {
		t.Errorf("expected ErrSeriesNotFound, got %v", err)
	}
}

func TestImportFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	if err := os.WriteFile(path, []byte("date,value\n2020-01,abc\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := importFile(context.Background(), store.NewMemoryStore(), "bad", path); err == nil {
		t.Error("expected error for malformed CSV")
	}
}
