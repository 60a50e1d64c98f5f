// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"

	"ir-verbs/internal/verb"

	"github.com/spf13/cobra"
)

func newFormsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forms",
		Short: "List the verb form names accepted as arguments",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, name := range verb.FormNames() {
				fmt.Fprintln(out, identifierColor.Sprint(name))
			}
		},
	}
}
