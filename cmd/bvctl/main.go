// Command bvctl runs a bit-vector scenario file and prints each step's result.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/hupe1980/bitvec/internal/logging"
	"github.com/hupe1980/bitvec/internal/scenario"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "bvctl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("bvctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("scenario", "", "path to a scenario TOML file")
	level := fs.String("log-level", "", "log level, overrides the scenario (debug, info, warn, error)")
	format := fs.String("log-format", "", "log format, overrides the scenario (text, json)")
	stats := fs.Bool("stats", false, "print step counters after the run")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("-scenario is required")
	}

	sc, err := scenario.Load(*path)
	if err != nil {
		return err
	}

	if *level == "" {
		*level = sc.LogLevel
	}
	if *format == "" {
		*format = sc.LogFormat
	}
	logger, err := logging.New(stderr, *format, *level)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	metrics := &scenario.BasicMetricsCollector{}
	rep, err := scenario.Run(ctx, sc, scenario.WithLogger(logger), scenario.WithMetrics(metrics))
	for _, res := range rep.Results {
		if res.Err != nil {
			fmt.Fprintf(stdout, "%3d %-10s error: %v\n", res.Step, res.Op, res.Err)
		} else {
			fmt.Fprintf(stdout, "%3d %-10s %s\n", res.Step, res.Op, res.Value)
		}
	}
	if *stats {
		st := metrics.GetStats()
		fmt.Fprintf(stdout, "stats mutations=%d reads=%d shifts=%d errors=%d\n",
			st.MutationCount, st.ReadCount, st.ShiftCount, st.StepErrors)
	}
	if err != nil {
		return err
	}

	if rep.Built {
		fmt.Fprintf(stdout, "final %s\n", rep.Final.String())
	} else {
		fmt.Fprintf(stdout, "construction failed as expected (%s)\n", sc.ExpectError)
	}
	return nil
}
