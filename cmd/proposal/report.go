package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"ProposalEngine/internal/config"
)

// reportCmd implements the "report" command.
type reportCmd struct {
	dataDir string
	outDir  string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "generates the proposal report" }
func (*reportCmd) Usage() string {
	return `report [-data <dir>] [-out <dir>]:

Computes portfolio and benchmark metrics for the configured proposal and
writes summary.md, metrics.json and the PNG charts to the output directory.
With -data, every <series>.csv in the directory is imported first.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dataDir, "data", "", "directory of <series>.csv files to import before reporting")
	f.StringVar(&c.outDir, "out", "", "output directory, overrides output.dir")
}

func (c *reportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.outDir != "" {
		cfg.Output.Dir = c.outDir
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config: %v\n", err)
		return subcommands.ExitUsageError
	}

	st, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	if c.dataDir != "" {
		if err := importDir(ctx, st, c.dataDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	written, err := generate(ctx, cfg, st)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, path := range written {
		fmt.Println(path)
	}
	return subcommands.ExitSuccess
}
