// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package verb

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"ir-verbs/internal/dataset"
	"ir-verbs/internal/logger"
)

// fieldsPerRow is the number of comma-separated columns in a data row.
const fieldsPerRow = 3

// ErrEmptyTable is returned when a data source contains no verb rows.
var ErrEmptyTable = errors.New("verb table is empty")

// RowError reports a row with fewer than three fields when loading in strict mode.
type RowError struct {
	Line   int
	Fields int
	Text   string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: expected %d fields, got %d: %q", e.Line, fieldsPerRow, e.Fields, e.Text)
}

type loadOptions struct {
	strict bool
}

// LoadOption configures Parse and Load.
type LoadOption func(*loadOptions)

// Strict makes rows with missing fields a load error instead of leaving the
// missing forms empty.
func Strict() LoadOption {
	return func(o *loadOptions) {
		o.strict = true
	}
}

// WithStrict is Strict controlled by a boolean, convenient for flag wiring.
func WithStrict(strict bool) LoadOption {
	return func(o *loadOptions) {
		o.strict = strict
	}
}

// Parse reads "base,past_simple,past_participle" rows from r.
// There is no header and no quoting. Blank lines are skipped and fields past
// the third are ignored.
func Parse(r io.Reader, opts ...LoadOption) (Table, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	var table Table
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < fieldsPerRow {
			if o.strict {
				return nil, &RowError{Line: lineNo, Fields: len(fields), Text: line}
			}
			logger.Debug("Short verb row, missing forms left empty", "line", lineNo, "fields", len(fields))
		}

		table = append(table, Verb{
			Base:           field(fields, 0),
			PastSimple:     field(fields, 1),
			PastParticiple: field(fields, 2),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read verb rows: %w", err)
	}

	if len(table) == 0 {
		return nil, ErrEmptyTable
	}
	return table, nil
}

// field returns the trimmed i-th field, or "" when the row is too short.
func field(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}

// Load reads a verb table from the CSV file at path.
func Load(path string, opts ...LoadOption) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open verb file %s: %w", path, err)
	}
	defer f.Close()

	table, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load verb file %s: %w", path, err)
	}
	logger.Info("Loaded verb table", "path", path, "verbs", len(table))
	return table, nil
}

// LoadDefault parses the verb table embedded in the binary.
func LoadDefault(opts ...LoadOption) (Table, error) {
	table, err := Parse(dataset.Open(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded verb table: %w", err)
	}
	logger.Info("Loaded embedded verb table", "verbs", len(table))
	return table, nil
}
