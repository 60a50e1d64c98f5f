// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui's messages.go file defines the message types used in the Bubble Tea
// Model-View-Update architecture.

package ui

import "ir-verbs/internal/verb"

// Verb table loading messages
type verbsLoadedMsg struct{ table verb.Table } // Sent when the table is ready
type loadErrorMsg struct{ err error }          // Sent when the table could not be loaded
