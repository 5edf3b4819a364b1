// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"

	"github.com/H0llyW00dzZ/console-trace-logger/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/console-trace-logger/src/logger"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flag values shared by all subcommands.
type rootOptions struct {
	configFile   string
	level        string
	noColor      bool
	noTimestamps bool
	noFilters    bool
}

// Execute runs the root command with the process arguments.
func Execute(ctx context.Context, version string, log *logger.Logger) error {
	return newRootCmd(version, log).ExecuteContext(ctx)
}

// newRootCmd builds the root command. The logger is configured in
// PersistentPreRunE so flags and the optional config file apply to every
// subcommand.
func newRootCmd(version string, log *logger.Logger) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           posix.GetExecutableName(),
		Short:         "Color-coded console logger with stack-trace filtering",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configure(log, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "logger configuration file (.json, .yaml, .yml)")
	rootCmd.PersistentFlags().StringVarP(&opts.level, "level", "l", "", "minimum level to emit (trace, debug, info, warn, error, off)")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored level tags")
	rootCmd.PersistentFlags().BoolVar(&opts.noTimestamps, "no-timestamps", false, "disable the timestamp prefix")
	rootCmd.PersistentFlags().BoolVar(&opts.noFilters, "no-filters", false, "disable trace filtering")

	rootCmd.AddCommand(newDemoCmd(log), newFiltersCmd(log))
	return rootCmd
}

// configure applies the config file first, then flags, so flags win.
func configure(log *logger.Logger, opts *rootOptions) error {
	if opts.configFile != "" {
		cfg, err := logger.LoadConfig(opts.configFile)
		if err != nil {
			return err
		}
		if err := log.ApplyConfig(cfg); err != nil {
			return err
		}
	}
	if opts.level != "" {
		level, err := logger.ParseLevel(opts.level)
		if err != nil {
			return err
		}
		log.SetLevel(level)
	}
	if opts.noColor {
		log.SetColorMode(logger.ColorNever)
	}
	if opts.noTimestamps {
		log.SetTimestamps(false)
	}
	if opts.noFilters {
		log.SetTraceFiltersEnabled(false)
	}
	return nil
}
