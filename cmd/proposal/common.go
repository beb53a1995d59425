package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"ProposalEngine/internal/config"
	"ProposalEngine/internal/metrics"
	"ProposalEngine/internal/model"
	"ProposalEngine/internal/report"
	"ProposalEngine/internal/store"
)

const defaultConfigPath = "configs/proposal.yaml"

func configPath() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return defaultConfigPath
}

// openStore opens the SQLite store when a path is configured and falls back
// to an in-memory store otherwise.
func openStore(cfg *config.Config) (store.Store, error) {
	if cfg.Database.SQLitePath == "" {
		log.Println("[INFO] no sqlite_path configured, using in-memory store")
		return store.NewMemoryStore(), nil
	}
	if dir := filepath.Dir(cfg.Database.SQLitePath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}
	s, err := store.NewSQLiteStore(cfg.Database.SQLitePath)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// importDir saves every <name>.csv file of dir as series <name>.
func importDir(ctx context.Context, st store.Store, dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return fmt.Errorf("list csv files: %w", err)
	}
	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		if err := importFile(ctx, st, name, file); err != nil {
			return err
		}
	}
	return nil
}

func importFile(ctx context.Context, st store.Store, name, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("open %s: %w", file, err)
	}
	defer f.Close()

	series, err := store.ReadCSV(f)
	if err != nil {
		return fmt.Errorf("import %s: %w", file, err)
	}
	if err := st.SaveSeries(ctx, name, series); err != nil {
		return err
	}
	log.Printf("[INFO] imported %d months into %q", len(series), name)
	return nil
}

// buildProposal resolves the configured components against the store.
func buildProposal(ctx context.Context, cfg *config.Config, st store.Store) (metrics.Proposal, error) {
	p := cfg.Proposal
	portfolio, err := loadComponents(ctx, st, p.Portfolio)
	if err != nil {
		return metrics.Proposal{}, fmt.Errorf("load portfolio: %w", err)
	}
	benchmark, err := loadComponents(ctx, st, p.Benchmark)
	if err != nil {
		return metrics.Proposal{}, fmt.Errorf("load benchmark: %w", err)
	}
	return metrics.Proposal{
		Name:          p.Name,
		PortfolioName: p.PortfolioName,
		BenchmarkName: p.BenchmarkName,
		Portfolio:     portfolio,
		Benchmark:     benchmark,
		AnnualFeePct:  p.FeePercent,
		ClientOptions: metrics.Options{
			InvestmentAmount:   p.Client.Investment,
			AnnualDistribution: p.Client.AnnualDistribution,
			ClientAge:          p.Client.Age,
			TargetAge:          cfg.Simulation.TargetAge,
			Simulations:        cfg.Simulation.Runs,
			Seed:               cfg.Simulation.Seed,
		},
	}, nil
}

func loadComponents(ctx context.Context, st store.Store, components []config.Component) ([]model.WeightedComponent, error) {
	out := make([]model.WeightedComponent, 0, len(components))
	for _, c := range components {
		series, err := st.LoadSeries(ctx, c.Series)
		if err != nil {
			return nil, err
		}
		out = append(out, model.WeightedComponent{Name: c.Series, Series: series, Weight: c.Weight})
	}
	return out, nil
}

// generate builds the comparison and writes every report file.
func generate(ctx context.Context, cfg *config.Config, st store.Store) ([]string, error) {
	p, err := buildProposal(ctx, cfg, st)
	if err != nil {
		return nil, err
	}
	c, err := metrics.Compare(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("compare: %w", err)
	}
	return report.NewWriter(cfg.Output.Dir, cfg.Output.Charts).Write(c)
}
