// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"errors"

	"github.com/H0llyW00dzZ/console-trace-logger/src/logger"
	"github.com/spf13/cobra"
)

// newDemoCmd builds the demo subcommand. It emits a sample line at every
// level so colors, timestamps, call-site annotation and trace filtering can
// be verified by eye.
func newDemoCmd(log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Emit a sample log line at every level",
		Run: func(cmd *cobra.Command, args []string) {
			log.Trace("trace message, filtered stack below")
			log.Debug("debug message")
			log.Info("info message")
			log.Warn("warn message", map[string]any{"feature": "demo"})
			log.Error("error message:", errors.New("something broke"))
		},
	}
}
