// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package verb

import (
	"fmt"
	"strings"
)

// Form identifies one of the three conjugation slots of an irregular verb.
type Form int

const (
	Base Form = iota
	PastSimple
	PastParticiple
)

var formNames = [...]string{
	Base:           "base",
	PastSimple:     "past simple",
	PastParticiple: "past participle",
}

// Forms returns every form in table column order.
func Forms() []Form {
	return []Form{Base, PastSimple, PastParticiple}
}

// FormNames returns the accepted command-line spelling of every form.
func FormNames() []string {
	names := make([]string, 0, len(formNames))
	for _, f := range Forms() {
		names = append(names, f.String())
	}
	return names
}

func (f Form) String() string {
	if !f.Valid() {
		return fmt.Sprintf("form(%d)", int(f))
	}
	return formNames[f]
}

// Valid reports whether f is one of the known forms.
func (f Form) Valid() bool {
	return f >= Base && f <= PastParticiple
}

// InvalidFormError is returned when a form name is not one of FormNames.
type InvalidFormError struct {
	Name string
}

func (e *InvalidFormError) Error() string {
	return fmt.Sprintf("'%s' is invalid form name", e.Name)
}

// ParseForm maps a form name such as "past simple" to its Form.
// Matching is exact: "Past Simple" or "past  simple" are rejected.
func ParseForm(name string) (Form, error) {
	for _, f := range Forms() {
		if formNames[f] == name {
			return f, nil
		}
	}
	return 0, &InvalidFormError{Name: name}
}

// FormsWithPrefix returns the form names starting with prefix, for shell completion.
func FormsWithPrefix(prefix string) []string {
	var out []string
	for _, name := range FormNames() {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}
