// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package quiz

import "strings"

// alternativeSeparator joins two accepted spellings of one form.
const alternativeSeparator = "/"

// Alternatives splits a canonical form on its first '/' into the accepted
// spellings. A form without '/' has a single alternative.
func Alternatives(canonical string) []string {
	primary, secondary, found := strings.Cut(canonical, alternativeSeparator)
	if !found {
		return []string{canonical}
	}
	return []string{primary, secondary}
}

// Check reports whether input matches canonical. The input is trimmed of
// surrounding whitespace; the comparison itself is exact and case sensitive.
func Check(input, canonical string) bool {
	answer := strings.TrimSpace(input)
	for _, alt := range Alternatives(canonical) {
		if answer == alt {
			return true
		}
	}
	return false
}
