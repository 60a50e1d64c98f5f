// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui implements the interactive Bubble Tea front-end of the quiz.
// It renders the same quiz.Engine the line-oriented session uses.
package ui

import (
	"errors"

	"ir-verbs/internal/quiz"
	"ir-verbs/internal/verb"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the TUI model.
type Options struct {
	Mode          quiz.Mode
	Load          func() (verb.Table, error)
	EngineOptions []quiz.EngineOption
	MaxAnswerLen  int
}

type model struct {
	state  state
	keymap KeyMap
	opts   Options

	engine  *quiz.Engine
	last    *quiz.Feedback // outcome of the most recent answer, shown above the question
	result  quiz.Result
	err     error
	spinner spinner.Model
	input   textinput.Model
	width   int
	height  int
}

// InitialModel builds the model in its loading state.
func InitialModel(opts Options) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = statusStyle

	limit := opts.MaxAnswerLen
	if limit <= 0 {
		limit = quiz.DefaultMaxAnswerLen
	}
	ti := textinput.New()
	ti.CharLimit = limit
	ti.Width = inputWidth

	return model{
		state:   stateLoadingVerbs,
		keymap:  DefaultKeyMap,
		opts:    opts,
		spinner: s,
		input:   ti,
	}
}

// Outcome extracts the quiz result from the model returned by tea.Program.Run.
func Outcome(m tea.Model) (quiz.Result, error) {
	qm, ok := m.(*model)
	if !ok {
		return quiz.Result{}, errors.New("unexpected model type")
	}
	return qm.result, qm.err
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadVerbsCmd(m.opts.Load))
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch m.state {
		case stateAsking:
			cmds = append(cmds, m.handleAskingKeys(msg)...)
		case stateSummary, stateLoadError:
			if cmd := m.handleQuitKeys(msg); cmd != nil {
				return m, cmd
			}
		default: // Loading verbs
			if key.Matches(msg, m.keymap.Abort) {
				return m, tea.Quit
			}
		}

	case spinner.TickMsg:
		if m.state == stateLoadingVerbs {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case verbsLoadedMsg:
		cmds = append(cmds, m.startQuiz(msg.table))

	case loadErrorMsg:
		m.err = msg.err
		m.state = stateLoadError

	default:
		// Cursor blink and other textinput internals.
		if m.state == stateAsking {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *model) View() string {
	var body, footer string

	switch m.state {
	case stateLoadingVerbs:
		body, footer = m.renderLoadingView()
	case stateAsking:
		body, footer = m.renderAskingView()
	case stateSummary:
		body, footer = m.renderSummaryView()
	case stateLoadError:
		body, footer = m.renderLoadErrorView()
	}

	return m.layout(body, footer)
}
