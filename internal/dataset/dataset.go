// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package dataset provides access to the verb table embedded in the binary.
package dataset

import (
	"bytes"
	_ "embed"
	"io"
)

//go:embed verbs.csv
var verbsCSV []byte

// Open returns a reader over the embedded verbs.csv.
func Open() io.Reader {
	return bytes.NewReader(verbsCSV)
}
