package config

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Component is one weighted series of a blend, referenced by its stored name.
type Component struct {
	Series string  `yaml:"series"`
	Weight float64 `yaml:"weight"`
}

// Config holds all application configuration.
type Config struct {
	Proposal struct {
		Name          string      `yaml:"name"`
		FeePercent    float64     `yaml:"fee_percent"`
		PortfolioName string      `yaml:"portfolio_name"`
		BenchmarkName string      `yaml:"benchmark_name"`
		Portfolio     []Component `yaml:"portfolio"`
		Benchmark     []Component `yaml:"benchmark"`
		Client        struct {
			Investment         float64 `yaml:"investment"`
			AnnualDistribution float64 `yaml:"annual_distribution"`
			Age                int     `yaml:"age"`
		} `yaml:"client"`
	} `yaml:"proposal"`
	Simulation struct {
		Runs      int   `yaml:"runs"`
		TargetAge int   `yaml:"target_age"`
		Seed      int64 `yaml:"seed"`
	} `yaml:"simulation"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Output struct {
		Dir    string `yaml:"dir"`
		Charts bool   `yaml:"charts"`
	} `yaml:"output"`
	Schedule struct {
		ReportCron string `yaml:"report_cron"`
	} `yaml:"schedule"`
}

// weightTolerance is how far blend weights may drift from summing to one.
const weightTolerance = 1e-6

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file yields a config made of defaults and overrides only.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Output.Charts = true

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("REPORT_OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("CRON_REPORT"); v != "" {
		cfg.Schedule.ReportCron = v
	}
	if v := os.Getenv("SIMULATION_RUNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("SIMULATION_RUNS: %w", err)
		}
		cfg.Simulation.Runs = n
	}
	if v := os.Getenv("SIMULATION_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("SIMULATION_SEED: %w", err)
		}
		cfg.Simulation.Seed = n
	}

	// Defaults
	if cfg.Proposal.PortfolioName == "" {
		cfg.Proposal.PortfolioName = "Proposed Portfolio"
	}
	if cfg.Proposal.BenchmarkName == "" {
		cfg.Proposal.BenchmarkName = "Benchmark"
	}
	if cfg.Simulation.Runs == 0 {
		cfg.Simulation.Runs = 100
	}
	if cfg.Simulation.TargetAge == 0 {
		cfg.Simulation.TargetAge = 95
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "out"
	}
	if cfg.Schedule.ReportCron == "" {
		cfg.Schedule.ReportCron = "0 0 6 1 * *"
	}

	return cfg, nil
}

// Validate checks the proposal before any report is built.
func (c *Config) Validate() error {
	p := c.Proposal
	if p.Name == "" {
		return fmt.Errorf("proposal.name is required")
	}
	if len(p.Portfolio) == 0 {
		return fmt.Errorf("proposal.portfolio needs at least one component")
	}
	if len(p.Benchmark) == 0 {
		return fmt.Errorf("proposal.benchmark needs at least one component")
	}
	if err := validateBlend("proposal.portfolio", p.Portfolio); err != nil {
		return err
	}
	if err := validateBlend("proposal.benchmark", p.Benchmark); err != nil {
		return err
	}
	if p.FeePercent < 0 {
		return fmt.Errorf("proposal.fee_percent must not be negative")
	}
	if p.Client.Investment < 0 || p.Client.AnnualDistribution < 0 || p.Client.Age < 0 {
		return fmt.Errorf("proposal.client values must not be negative")
	}
	if c.Simulation.Runs <= 0 {
		return fmt.Errorf("simulation.runs must be positive")
	}
	if c.Simulation.TargetAge <= 0 {
		return fmt.Errorf("simulation.target_age must be positive")
	}
	return nil
}

func validateBlend(field string, components []Component) error {
	sum := 0.0
	for i, comp := range components {
		if comp.Series == "" {
			return fmt.Errorf("%s[%d].series is required", field, i)
		}
		if comp.Weight <= 0 {
			return fmt.Errorf("%s[%d].weight must be positive", field, i)
		}
		sum += comp.Weight
	}
	if math.Abs(sum-1) > weightTolerance {
		return fmt.Errorf("%s weights sum to %.4f, expected 1", field, sum)
	}
	return nil
}
