// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"ir-verbs/internal/logger"
	"ir-verbs/internal/quiz"
	"ir-verbs/internal/verb"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Update Handlers ---
// These methods handle key presses and state changes for specific UI states.

// startQuiz creates a fresh engine over table and shows the first question.
func (m *model) startQuiz(table verb.Table) tea.Cmd {
	m.engine = quiz.NewEngine(m.opts.Mode, table, m.opts.EngineOptions...)
	m.engine.Start()
	m.last = nil
	if m.engine.Done() {
		m.finish()
		return nil
	}
	m.state = stateAsking
	m.syncPrompt()
	return m.input.Focus()
}

func (m *model) handleAskingKeys(msg tea.KeyMsg) []tea.Cmd {
	var cmds []tea.Cmd

	switch {
	case key.Matches(msg, m.keymap.Submit):
		fb, err := m.engine.Submit(m.input.Value())
		m.input.Reset()
		if err != nil {
			logger.Error("Answer rejected by engine", "error", err)
			m.err = err
			m.finish()
			return nil
		}
		if !fb.Exit {
			m.last = &fb
		}
		if m.engine.Done() {
			m.finish()
			return nil
		}
		m.syncPrompt()

	case key.Matches(msg, m.keymap.Abort):
		m.engine.Abort()
		m.finish()

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return cmds
}

func (m *model) handleQuitKeys(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keymap.Quit) {
		return tea.Quit
	}
	return nil
}

// syncPrompt points the answer field at the form currently asked for.
func (m *model) syncPrompt() {
	m.input.Prompt = m.engine.Question().Target.String() + " >> "
}

// finish freezes the result and switches to the summary.
func (m *model) finish() {
	m.result = m.engine.Result()
	m.state = stateSummary
	m.input.Blur()
}
