// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"strconv"

	"ir-verbs/internal/logger"
	"ir-verbs/internal/verb"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	listHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	listCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	listIndexStyle  = listCellStyle.Foreground(lipgloss.Color("8")).Align(lipgloss.Right)
)

func newListCmd(opts *rootOptions) *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the verb table the quiz would use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := tableLoader(opts.cfg)()
			if err != nil {
				logger.Error("Failed to load verbs", "error", err)
				return fmt.Errorf("error loading verbs: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(tbl))
			statusColor.Fprintf(cmd.OutOrStdout(), "%d verbs\n", len(tbl))
			return nil
		},
	}

	listCmd.Flags().StringVarP(&opts.dataFile, "data", "d", "", "CSV file with base,past_simple,past_participle rows")
	listCmd.Flags().BoolVar(&opts.strict, "strict", false, "reject data rows with missing forms")

	return listCmd
}

// renderTable lays the verbs out one per row, numbered from 1.
func renderTable(tbl verb.Table) string {
	headers := append([]string{"#"}, verb.FormNames()...)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("238"))).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return listHeaderStyle
			case col == 0:
				return listIndexStyle
			default:
				return listCellStyle
			}
		})

	for i, v := range tbl {
		t.Row(strconv.Itoa(i+1), v.Base, v.PastSimple, v.PastParticiple)
	}

	return t.Render()
}
