package main

import (
	"bytes"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/mediasort/pkg/mediasort/config"
	"github.com/jamesainslie/mediasort/pkg/mediasort/engine"
	"github.com/jamesainslie/mediasort/pkg/mediasort/logging"
	"github.com/jamesainslie/mediasort/pkg/mediasort/movelog"
	"github.com/jamesainslie/mediasort/pkg/mediasort/output"
	"github.com/jamesainslie/mediasort/pkg/mediasort/types"
)

// resolveMode maps the mode flags onto a run mode. Report-only wins
// over dry-run when both are given.
func resolveMode(reportOnly, dryRun bool) types.RunMode {
	switch {
	case reportOnly:
		return types.ModeReport
	case dryRun:
		return types.ModeDryRun
	default:
		return types.ModeOrganize
	}
}

// runOrganize is the main command handler.
func runOrganize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	mode := resolveMode(v.GetBool("report_only"), v.GetBool("dry_run"))

	source := args[0]
	target := ""
	if len(args) > 1 {
		target = args[1]
	}
	if mode != types.ModeReport && target == "" {
		return fmt.Errorf("target directory is required for %s mode", mode)
	}

	if err := initLogging(cfg); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	defer func() { _ = logging.Close() }()

	eng, err := engine.New(engine.Options{
		Source: source,
		Target: target,
		Mode:   mode,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printInfo("Scanning %s...", source)

	res, err := eng.Run(ctx)
	if err != nil {
		return err
	}

	formatName := cfg.Output
	if formatName == "" {
		formatName = config.DefaultOutput
	}
	formatter, err := output.Get(formatName)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, &output.Result{
		RunID:     res.RunID,
		Mode:      res.Mode,
		Source:    res.Source,
		Target:    res.Target,
		Stats:     res.Stats,
		FilesSeen: res.FilesSeen,
		Elapsed:   res.Elapsed,
	}); err != nil {
		return fmt.Errorf("formatting report: %w", err)
	}
	fmt.Print(buf.String())

	if mode != types.ModeReport {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("determining working directory: %w", err)
		}
		if err := movelog.Write(cwd, res.Stats.Moves()); err != nil {
			return fmt.Errorf("writing move log: %w", err)
		}
		printInfo("\nDetailed log written to %s", movelog.FileName)
	}

	return nil
}

// initLogging wires the logging subsystem from config and flags.
// Verbose forces debug, quiet limits the console to errors.
func initLogging(cfg *config.Config) error {
	levelStr := cfg.Logging.Level
	if v.GetBool("verbose") {
		levelStr = "debug"
	}
	if _, err := logging.ParseLevel(levelStr); err != nil {
		return err
	}

	path := cfg.Logging.Path
	if path == "" {
		path = logging.DefaultLogPath()
	}

	consoleLevel := "warn"
	if getQuiet() {
		consoleLevel = "error"
	}

	return logging.Init(logging.Config{
		Level:        levelStr,
		Path:         path,
		Components:   cfg.Logging.Components,
		ConsoleLevel: consoleLevel,
	})
}
