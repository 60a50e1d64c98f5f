// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package quiz

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultMaxAnswerLen bounds how many characters of an answer line are kept.
const DefaultMaxAnswerLen = 32

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithMaxAnswerLen truncates each answer to n characters. Values below 1
// keep the default.
func WithMaxAnswerLen(n int) SessionOption {
	return func(s *Session) {
		if n > 0 {
			s.maxAnswerLen = n
		}
	}
}

// Session drives an Engine over line-oriented console I/O.
type Session struct {
	engine       *Engine
	in           *bufio.Reader
	out          io.Writer
	maxAnswerLen int
}

// NewSession wires engine to in and out.
func NewSession(engine *Engine, in io.Reader, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		engine:       engine,
		in:           bufio.NewReader(in),
		out:          out,
		maxAnswerLen: DefaultMaxAnswerLen,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run starts the engine and asks questions until the table is exhausted, the
// user types the exit code, input ends, or ctx is cancelled. The partial
// result is returned in every case.
func (s *Session) Run(ctx context.Context) (Result, error) {
	s.engine.Start()

	for !s.engine.Done() {
		if err := ctx.Err(); err != nil {
			return s.engine.Result(), err
		}

		q := s.engine.Question()
		if q.Part == 0 {
			printQuestion(s.out, q)
		}
		printPrompt(s.out, q)

		answer, err := s.readAnswer()
		if errors.Is(err, io.EOF) {
			// Closed input ends the session like the exit code.
			fmt.Fprintln(s.out)
			s.engine.Abort()
			break
		}
		if err != nil {
			return s.engine.Result(), fmt.Errorf("failed to read answer: %w", err)
		}

		fb, err := s.engine.Submit(answer)
		if err != nil {
			return s.engine.Result(), err
		}
		if fb.Exit {
			break
		}
		printFeedback(s.out, fb)
	}

	return s.engine.Result(), nil
}

// readAnswer reads one line and keeps at most maxAnswerLen characters of it.
// A final line without a newline is still returned; io.EOF is only reported
// when nothing was read.
func (s *Session) readAnswer() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")

	runes := []rune(line)
	if len(runes) > s.maxAnswerLen {
		line = string(runes[:s.maxAnswerLen])
	}
	return line, nil
}
