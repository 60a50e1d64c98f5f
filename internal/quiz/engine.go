// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package quiz

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"
	"unicode"

	"ir-verbs/internal/logger"
	"ir-verbs/internal/verb"
)

// DefaultExitCode is the number that ends a session when typed at any prompt.
const DefaultExitCode = 0

var (
	ErrNotStarted = errors.New("quiz has not been started")
	ErrFinished   = errors.New("quiz is already finished")
)

// State is the position of an Engine in the question/answer cycle.
type State int

const (
	StateIdle State = iota
	StatePromptFirst
	StatePromptSecond
	StateScoring
	StateExhausted
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePromptFirst:
		return "prompting first"
	case StatePromptSecond:
		return "prompting second"
	case StateScoring:
		return "scoring"
	case StateExhausted:
		return "exhausted"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Question is what the user is currently being asked.
type Question struct {
	Verb   verb.Verb
	From   verb.Form
	Target verb.Form
	Part   int // 0 for the first target form, 1 for the second
	Number int // 1-based position in the run
	Total  int // size of the verb table
}

// Prompt is the verb shown to the user, in the source form.
func (q Question) Prompt() string { return q.Verb.Form(q.From) }

// Feedback describes the outcome of one Submit call.
type Feedback struct {
	Verb     verb.Verb
	From     verb.Form
	Target   verb.Form
	Answer   string // trimmed input
	Expected string // canonical form, possibly with '/' alternatives
	Correct  bool

	// Exit is set when the input was the exit code; nothing was scored.
	Exit bool
	// QuestionDone is set when this answer completed the question.
	QuestionDone bool
	// QuestionCorrect is meaningful only with QuestionDone: every part was right.
	QuestionCorrect bool
}

// Mistake records one wrong answer.
type Mistake struct {
	Verb     verb.Verb
	From     verb.Form
	Target   verb.Form
	Answer   string
	Expected string
}

// Result holds the totals of a run.
type Result struct {
	Questions int
	Correct   int
	Aborted   bool
	Mistakes  []Mistake
}

// Incorrect is the number of questions with at least one wrong part.
func (r Result) Incorrect() int { return r.Questions - r.Correct }

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithRand sets the PRNG used to shuffle the table.
func WithRand(rng *rand.Rand) EngineOption {
	return func(e *Engine) { e.rng = rng }
}

// WithExitCode changes the number that aborts the session.
func WithExitCode(code int) EngineOption {
	return func(e *Engine) { e.exitCode = code }
}

// Engine runs the interrogation as a state machine driven by Submit. It does
// no I/O, so a line-oriented Session and the TUI share it.
type Engine struct {
	mode     Mode
	table    verb.Table
	rng      *rand.Rand
	exitCode int

	sel          *Selector
	state        State
	current      verb.Verb
	part         int
	partsCorrect bool
	pending      []Mistake
	result       Result
}

// NewEngine creates an engine over table. Call Start before Submit.
func NewEngine(mode Mode, table verb.Table, opts ...EngineOption) *Engine {
	e := &Engine{
		mode:     mode,
		table:    table,
		exitCode: DefaultExitCode,
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start resets the counts and the selection state and draws the first verb.
func (e *Engine) Start() {
	e.sel = NewSelector(e.table, e.rng)
	e.result = Result{}
	logger.Info("Interrogation started", "mode", e.mode.String(), "verbs", e.sel.Len())
	e.advance()
}

// advance draws the next verb or moves to StateExhausted.
func (e *Engine) advance() {
	v, ok := e.sel.Next()
	if !ok {
		e.state = StateExhausted
		logger.Info("Verb table exhausted", "questions", e.result.Questions, "correct", e.result.Correct)
		return
	}
	e.current = v
	e.part = 0
	e.partsCorrect = true
	e.pending = e.pending[:0]
	e.state = StatePromptFirst
}

// Mode returns the mode the engine was created with.
func (e *Engine) Mode() Mode { return e.mode }

// ExitCode is the number that aborts the run.
func (e *Engine) ExitCode() int { return e.exitCode }

// State returns the current state.
func (e *Engine) State() State { return e.state }

// Done reports whether the run is over, by exhaustion or by the exit code.
func (e *Engine) Done() bool {
	return e.state == StateExhausted || e.state == StateAborted
}

// Question returns the pending question. It is only meaningful while
// prompting.
func (e *Engine) Question() Question {
	q := Question{
		Verb: e.current,
		From: e.mode.From,
		Part: e.part,
	}
	if e.part < len(e.mode.To) {
		q.Target = e.mode.To[e.part]
	}
	if e.sel != nil {
		q.Number = e.sel.Presented()
		q.Total = e.sel.Len()
	}
	return q
}

// Submit answers the pending prompt with input.
func (e *Engine) Submit(input string) (Feedback, error) {
	switch {
	case e.state == StateIdle:
		return Feedback{}, ErrNotStarted
	case e.Done():
		return Feedback{}, ErrFinished
	}

	q := e.Question()
	if WantsExit(input, e.exitCode) {
		e.Abort()
		return Feedback{Verb: q.Verb, From: q.From, Target: q.Target, Exit: true}, nil
	}

	expected := q.Verb.Form(q.Target)
	fb := Feedback{
		Verb:     q.Verb,
		From:     q.From,
		Target:   q.Target,
		Answer:   strings.TrimSpace(input),
		Expected: expected,
		Correct:  Check(input, expected),
	}
	logger.Debug("Answer checked", "verb", q.Verb.Base, "form", q.Target.String(), "correct", fb.Correct)

	if !fb.Correct {
		e.partsCorrect = false
		e.pending = append(e.pending, Mistake{
			Verb:     q.Verb,
			From:     q.From,
			Target:   q.Target,
			Answer:   fb.Answer,
			Expected: expected,
		})
	}

	e.part++
	if e.part < e.mode.Targets() {
		e.state = StatePromptSecond
		return fb, nil
	}

	e.state = StateScoring
	e.result.Questions++
	if e.partsCorrect {
		e.result.Correct++
	}
	e.result.Mistakes = append(e.result.Mistakes, e.pending...)
	fb.QuestionDone = true
	fb.QuestionCorrect = e.partsCorrect

	e.advance()
	return fb, nil
}

// Abort ends the run without scoring the pending question. It does nothing
// on a finished or unstarted engine.
func (e *Engine) Abort() {
	if e.state == StateIdle || e.Done() {
		return
	}
	e.state = StateAborted
	e.result.Aborted = true
	logger.Info("Interrogation aborted", "questions", e.result.Questions, "correct", e.result.Correct)
}

// Result returns a copy of the totals so far.
func (e *Engine) Result() Result {
	r := e.result
	r.Mistakes = append([]Mistake(nil), e.result.Mistakes...)
	return r
}

// WantsExit reports whether input starts with an integer equal to code.
// Leading whitespace and a sign are accepted and anything after the digits
// is ignored, so " 0 " and "0." both match code 0.
func WantsExit(input string, code int) bool {
	s := strings.TrimLeftFunc(input, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return false
	}
	return n == code
}
