// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"ir-verbs/internal/verb"

	tea "github.com/charmbracelet/bubbletea"
)

// loadVerbsCmd runs the table loader off the UI loop.
func loadVerbsCmd(load func() (verb.Table, error)) tea.Cmd {
	return func() tea.Msg {
		table, err := load()
		if err != nil {
			return loadErrorMsg{err}
		}
		return verbsLoadedMsg{table}
	}
}
