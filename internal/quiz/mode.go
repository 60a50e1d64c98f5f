// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package quiz implements the irregular verb interrogation: the mode chosen
// on the command line, random selection without repetition, answer checking
// and the question/answer state machine.
package quiz

import (
	"errors"
	"fmt"
	"strings"

	"ir-verbs/internal/verb"
)

var (
	ErrTooFewArguments  = errors.New("too few arguments")
	ErrTooManyArguments = errors.New("too many arguments")
)

// DuplicateFormError is returned when a form name is listed more than once.
type DuplicateFormError struct {
	Form verb.Form
}

func (e *DuplicateFormError) Error() string {
	return fmt.Sprintf("'%s' form name is already listed", e.Form)
}

// Mode is the quiz direction: the form shown and the one or two forms asked for.
type Mode struct {
	From verb.Form
	To   []verb.Form
}

// ParseMode builds a Mode from two or three form names. All names must be
// valid and pairwise distinct.
func ParseMode(args []string) (Mode, error) {
	if len(args) < 2 {
		return Mode{}, ErrTooFewArguments
	}
	if len(args) > 3 {
		return Mode{}, ErrTooManyArguments
	}

	forms := make([]verb.Form, 0, len(args))
	for _, name := range args {
		f, err := verb.ParseForm(name)
		if err != nil {
			return Mode{}, err
		}
		for _, seen := range forms {
			if seen == f {
				return Mode{}, &DuplicateFormError{Form: f}
			}
		}
		forms = append(forms, f)
	}

	return Mode{From: forms[0], To: forms[1:]}, nil
}

// Targets is the number of forms asked for per question.
func (m Mode) Targets() int { return len(m.To) }

// String renders the mode as "base -> past simple -> past participle".
func (m Mode) String() string {
	parts := []string{m.From.String()}
	for _, f := range m.To {
		parts = append(parts, f.String())
	}
	return strings.Join(parts, " -> ")
}
