// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

// state represents the different views of the TUI.
type state int

const (
	stateLoadingVerbs state = iota
	stateAsking
	stateSummary
	stateLoadError
)

const (
	inputWidth       = 30 // Visible width of the answer field.
	maxMistakesShown = 10 // Summary lists at most this many missed verbs.
)
