// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/console-trace-logger/src/internal/trace"
	"github.com/H0llyW00dzZ/console-trace-logger/src/logger"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

// newFiltersCmd builds the filters subcommand, listing the registered trace
// filters (including those loaded from --config) as a markdown table.
func newFiltersCmd(log *logger.Logger) *cobra.Command {
	var enabledOnly, disabledOnly bool

	cmd := &cobra.Command{
		Use:   "filters",
		Short: "List registered trace filters",
		Run: func(cmd *cobra.Command, args []string) {
			var data []trace.FilterData
			switch {
			case enabledOnly:
				data = log.GetAllFilterData(true)
			case disabledOnly:
				data = log.GetAllFilterData(false)
			default:
				data = log.GetAllFilterData()
			}
			cmd.Print(renderFilterTable(data))
		},
	}

	cmd.Flags().BoolVar(&enabledOnly, "enabled", false, "show enabled filters only")
	cmd.Flags().BoolVar(&disabledOnly, "disabled", false, "show disabled filters only")
	cmd.MarkFlagsMutuallyExclusive("enabled", "disabled")
	return cmd
}

// renderFilterTable renders filter snapshots as a formatted markdown table
// using tablewriter.
func renderFilterTable(data []trace.FilterData) string {
	if len(data) == 0 {
		return "No filters registered\n"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Type", "Name", "Pattern", "Enabled"})

	var rows [][]string
	for _, d := range data {
		rows = append(rows, []string{
			string(d.Type),
			d.Name,
			d.FilterString,
			strconv.FormatBool(d.Enabled),
		})
	}
	table.Bulk(rows)
	table.Render()
	return buf.String()
}
