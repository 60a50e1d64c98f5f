// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tui

import (
	"fmt"

	"ir-verbs/internal/quiz"
	"ir-verbs/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// RunTUI runs the Bubble Tea quiz until the user quits and returns the result.
func RunTUI(opts ui.Options) (quiz.Result, error) {
	m := ui.InitialModel(opts)
	p := tea.NewProgram(&m)
	final, err := p.Run()
	if err != nil {
		return quiz.Result{}, fmt.Errorf("alas, there's been an error: %w", err)
	}
	return ui.Outcome(final)
}
