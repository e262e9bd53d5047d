// Command logquery aggregates access-log records per (client, actor, query).
//
// Usage:
//
//	logquery [--config path] [--format text|json] [--store-dir dir] [input-file]
//
// Without input-file the built-in sample is processed.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"log-query/internal/app"
	"log-query/internal/shared/configs"

	"github.com/spf13/pflag"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := pflag.NewFlagSet("logquery", pflag.ContinueOnError)
	configPath := flags.String("config", "", "path to a YAML config file (optional)")
	format := flags.String("format", "", "output format: text or json (overrides output.format)")
	storeDir := flags.String("store-dir", "", "persist the result under this directory (overrides output.store_dir)")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: logquery [--config path] [--format text|json] [--store-dir dir] [input-file]")
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}
	if flags.NArg() > 1 {
		flags.Usage()
		return exitUsage
	}

	cfg, err := configs.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return exitError
	}
	if flags.Changed("format") {
		cfg.Output.Format = *format
	}
	if flags.Changed("store-dir") {
		cfg.Output.StoreDir = *storeDir
	}

	runner, err := app.NewRunner(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		return exitError
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx, flags.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Aggregation failed: %v\n", err)
		return exitError
	}
	return exitOK
}
