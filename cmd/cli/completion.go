// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"slices"

	"ir-verbs/internal/verb"

	"github.com/spf13/cobra"
)

// formCompletionFunc completes form names for the positional arguments,
// leaving out names already given and stopping after three.
func formCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) >= 3 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var suggestions []string
	for _, name := range verb.FormsWithPrefix(toComplete) {
		if !slices.Contains(args, name) {
			suggestions = append(suggestions, name)
		}
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp
}
