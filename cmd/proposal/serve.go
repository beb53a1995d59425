package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"

	"ProposalEngine/internal/config"
	"ProposalEngine/internal/scheduler"
)

// serveCmd implements the "serve" command.
type serveCmd struct {
	dataDir string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "regenerates the report on a schedule" }
func (*serveCmd) Usage() string {
	return `serve [-data <dir>]:

Regenerates the proposal report on schedule.report_cron until interrupted.
Set RUN_ON_START=true to also generate it immediately.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dataDir, "data", "", "directory of <series>.csv files to import before each run")
}

func (c *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log.Println("[INFO] proposal report service starting...")

	cfg, err := config.Load(configPath())
	if err != nil {
		log.Printf("[FATAL] load config: %v", err)
		return subcommands.ExitFailure
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("[FATAL] config validation: %v", err)
		return subcommands.ExitUsageError
	}

	st, err := openStore(cfg)
	if err != nil {
		log.Printf("[FATAL] open store: %v", err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sched := scheduler.New(ctx, func(ctx context.Context) error {
		if c.dataDir != "" {
			if err := importDir(ctx, st, c.dataDir); err != nil {
				return err
			}
		}
		written, err := generate(ctx, cfg, st)
		if err != nil {
			return err
		}
		log.Printf("[INFO] report written: %d files in %s", len(written), cfg.Output.Dir)
		return nil
	})
	if err := sched.Register(cfg.Schedule.ReportCron); err != nil {
		log.Printf("[FATAL] %v", err)
		return subcommands.ExitFailure
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, generating report now")
		go func() {
			if err := sched.RunNow(); err != nil {
				log.Printf("[ERROR] report task: %v", err)
			}
		}()
	}

	fmt.Fprintf(os.Stderr, "Regenerating report on %q. Press Ctrl+C to stop.\n", cfg.Schedule.ReportCron)

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	return subcommands.ExitSuccess
}
