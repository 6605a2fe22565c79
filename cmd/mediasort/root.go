package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/mediasort/pkg/mediasort/config"
)

var (
	v = config.New()

	rootCmd = &cobra.Command{
		Use:   "mediasort <source> [target]",
		Short: "Organize photos and videos into a date-based hierarchy",
		Long: `Mediasort scans a directory tree, classifies every file as a photo,
video, or non-media file, and sorts media into {target}/{category}/{year}/{month}
folders based on the embedded capture date. Non-media files keep their relative
layout under a NonMedia folder, and media without a readable capture date lands
in an UnknownDate folder.

Examples:
  mediasort ~/Camera --report-only        # Statistics only, nothing is touched
  mediasort ~/Camera ~/Sorted --dry-run   # Show what would move, move nothing
  mediasort ~/Camera ~/Sorted             # Organize for real
  mediasort ~/Camera ~/Sorted -o json     # Machine-readable report`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  false,
		SilenceErrors: true,
		RunE:          runOrganize,
	}
)

func init() {
	rootCmd.Flags().Bool("report-only", false, "compute statistics only, never touch the filesystem")
	rootCmd.Flags().Bool("dry-run", false, "plan moves and write the log without moving anything")
	rootCmd.Flags().StringP("output", "o", "", "report format: plain, pretty, json")
	rootCmd.Flags().BoolP("quiet", "q", false, "suppress progress output")
	rootCmd.Flags().BoolP("verbose", "v", false, "debug output")
	rootCmd.Flags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.Flags().String("log-file", "", "log file path (default: XDG state dir)")

	_ = v.BindPFlag("report_only", rootCmd.Flags().Lookup("report-only"))
	_ = v.BindPFlag("dry_run", rootCmd.Flags().Lookup("dry-run"))
	_ = v.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	_ = v.BindPFlag("quiet", rootCmd.Flags().Lookup("quiet"))
	_ = v.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
	_ = v.BindPFlag("logging.level", rootCmd.Flags().Lookup("log-level"))
	_ = v.BindPFlag("logging.path", rootCmd.Flags().Lookup("log-file"))
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// getQuiet returns true if quiet mode is enabled.
func getQuiet() bool {
	return v.GetBool("quiet")
}

// printInfo prints a message unless quiet mode is enabled.
func printInfo(format string, args ...interface{}) {
	if !getQuiet() {
		fmt.Printf(format+"\n", args...)
	}
}
