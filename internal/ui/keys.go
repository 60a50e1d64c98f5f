// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// This file defines the keyboard bindings for the TUI application.

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application.
// Letter keys are never bound while a question is open, they belong to the answer.
type KeyMap struct {
	Submit key.Binding // Check the typed answer
	Abort  key.Binding // End the session early, like typing the exit code
	Quit   key.Binding // Leave the summary or error view
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "check answer"),
	),
	Abort: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "finish"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "enter", "esc", "ctrl+c"),
		key.WithHelp("q/enter", "quit"),
	),
}
