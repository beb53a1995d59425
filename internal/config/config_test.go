package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleYAML = `
proposal:
  name: Smith household
  fee_percent: 1.0
  portfolio:
    - series: Core Equity
      weight: 0.6
    - series: Core Bond
      weight: 0.4
  benchmark:
    - series: 60/40 Index
      weight: 1
  client:
    investment: 1000000
    annual_distribution: 40000
    age: 64
database:
  sqlite_path: data/proposals.db
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "proposal.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
	if cfg.Proposal.Name != "Smith household" || len(cfg.Proposal.Portfolio) != 2 {
		t.Errorf("unexpected proposal %+v", cfg.Proposal)
	}
	if cfg.Proposal.Client.Age != 64 || cfg.Proposal.Client.AnnualDistribution != 40000 {
		t.Errorf("unexpected client %+v", cfg.Proposal.Client)
	}
	if cfg.Simulation.Runs != 100 || cfg.Simulation.TargetAge != 95 {
		t.Errorf("expected default simulation 100 runs to age 95, got %+v", cfg.Simulation)
	}
	if cfg.Output.Dir != "out" || !cfg.Output.Charts {
		t.Errorf("unexpected output defaults %+v", cfg.Output)
	}
	if cfg.Proposal.PortfolioName != "Proposed Portfolio" || cfg.Proposal.BenchmarkName != "Benchmark" {
		t.Errorf("unexpected display names %q / %q", cfg.Proposal.PortfolioName, cfg.Proposal.BenchmarkName)
	}
	if cfg.Schedule.ReportCron != "0 0 6 1 * *" {
		t.Errorf("unexpected cron default %q", cfg.Schedule.ReportCron)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SQLITE_PATH", "/tmp/other.db")
	t.Setenv("SIMULATION_RUNS", "500")
	t.Setenv("SIMULATION_SEED", "7")
	t.Setenv("REPORT_OUTPUT_DIR", "/tmp/reports")
	cfg, err := Load(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Database.SQLitePath != "/tmp/other.db" || cfg.Simulation.Runs != 500 ||
		cfg.Simulation.Seed != 7 || cfg.Output.Dir != "/tmp/reports" {
		t.Errorf("overrides not applied: %+v", cfg)
	}

	t.Setenv("SIMULATION_RUNS", "many")
	if _, err := Load(writeConfig(t, sampleYAML)); err == nil {
		t.Error("expected error for non-numeric SIMULATION_RUNS")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty proposal")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		msg    string
	}{
		{"weights", func(c *Config) { c.Proposal.Portfolio[0].Weight = 0.5 }, "weights sum to 0.9000"},
		{"zero weight", func(c *Config) { c.Proposal.Benchmark[0].Weight = 0 }, "weight must be positive"},
		{"no series", func(c *Config) { c.Proposal.Portfolio[1].Series = "" }, "series is required"},
		{"fee", func(c *Config) { c.Proposal.FeePercent = -1 }, "fee_percent"},
		{"client", func(c *Config) { c.Proposal.Client.Age = -3 }, "client"},
		{"no benchmark", func(c *Config) { c.Proposal.Benchmark = nil }, "benchmark"},
	}
	for _, tt := range tests {
		cfg, err := Load(writeConfig(t, sampleYAML))
		if err != nil {
			t.Fatal(err)
		}
		tt.mutate(cfg)
		err = cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), tt.msg) {
			t.Errorf("%s: expected error containing %q, got %v", tt.name, tt.msg, err)
		}
	}
}
