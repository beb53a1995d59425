package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"

	"ProposalEngine/internal/config"
)

// importCmd implements the "import" command.
type importCmd struct {
	name string
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "imports a monthly return series from CSV" }
func (*importCmd) Usage() string {
	return `import -file <csv> [-name <series>]:

Stores a date,value CSV of monthly returns under a series name, replacing any
previous series of that name. The name defaults to the file's base name.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "series name")
	f.StringVar(&c.file, "file", "", "CSV file with date,value rows")
}

func (c *importCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		return subcommands.ExitUsageError
	}
	name := c.name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(c.file), filepath.Ext(c.file))
	}

	cfg, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if cfg.Database.SQLitePath == "" {
		fmt.Fprintln(os.Stderr, "Error: import needs database.sqlite_path (or SQLITE_PATH)")
		return subcommands.ExitFailure
	}
	st, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	if err := importFile(ctx, st, name, c.file); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// listCmd implements the "list" command.
type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "lists stored return series" }
func (*listCmd) Usage() string {
	return `list:

Prints the name and month range of every stored series.
`
}

func (*listCmd) SetFlags(*flag.FlagSet) {}

func (*listCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	st, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	names, err := st.ListSeries(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, name := range names {
		series, err := st.LoadSeries(ctx, name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if len(series) == 0 {
			fmt.Printf("%s\t(empty)\n", name)
			continue
		}
		fmt.Printf("%s\t%s..%s\t%d months\n", name, series[0].Date, series[len(series)-1].Date, len(series))
	}
	return subcommands.ExitSuccess
}
