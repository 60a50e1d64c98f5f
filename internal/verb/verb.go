// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package verb defines the irregular verb record, the closed set of verb
// forms, and the loader that reads a verb table from CSV.
package verb

// Verb holds the three forms of an irregular verb. Any field may carry two
// accepted spellings joined by '/', e.g. "dreamed/dreamt".
type Verb struct {
	Base           string
	PastSimple     string
	PastParticiple string
}

// Form returns the stored spelling of v for the requested form.
// Unknown forms yield the empty string.
func (v Verb) Form(f Form) string {
	switch f {
	case Base:
		return v.Base
	case PastSimple:
		return v.PastSimple
	case PastParticiple:
		return v.PastParticiple
	default:
		return ""
	}
}

// Table is the ordered list of verbs in file order.
type Table []Verb
