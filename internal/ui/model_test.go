package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ir-verbs/internal/quiz"
	"ir-verbs/internal/verb"
)

func testTable() verb.Table {
	return verb.Table{
		{Base: "go", PastSimple: "went", PastParticiple: "gone"},
		{Base: "be", PastSimple: "was", PastParticiple: "been"},
	}
}

func newTestModel(t *testing.T, mode quiz.Mode) *model {
	t.Helper()
	m := InitialModel(Options{
		Mode:          mode,
		Load:          func() (verb.Table, error) { return testTable(), nil },
		EngineOptions: []quiz.EngineOption{quiz.WithRand(quiz.NewRand(4))},
	})
	msg := loadVerbsCmd(m.opts.Load)()
	m.Update(msg)
	require.Equal(t, stateAsking, m.state)
	return &m
}

func typeAnswer(m *model, answer string) {
	if answer != "" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(answer)})
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestModel_FullRun(t *testing.T) {
	// --- Arrange ---
	m := newTestModel(t, quiz.Mode{From: verb.Base, To: []verb.Form{verb.PastSimple}})
	assert.Equal(t, "past simple >> ", m.input.Prompt)

	// --- Act ---
	first := m.engine.Question().Verb
	typeAnswer(m, first.PastSimple)
	require.Equal(t, stateAsking, m.state)
	require.NotNil(t, m.last)
	assert.True(t, m.last.Correct)
	assert.Empty(t, m.input.Value(), "input is cleared after each answer")
	assert.Contains(t, m.View(), "Correct!")

	typeAnswer(m, "wrong")

	// --- Assert ---
	require.Equal(t, stateSummary, m.state)
	result, err := Outcome(m)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Questions)
	assert.Equal(t, 1, result.Correct)
	assert.False(t, result.Aborted)
	require.Len(t, result.Mistakes, 1)

	view := m.View()
	assert.Contains(t, view, "Interrogation status:")
	assert.Contains(t, view, "Worth another look:")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_TwoTargets(t *testing.T) {
	m := newTestModel(t, quiz.Mode{From: verb.PastParticiple, To: []verb.Form{verb.Base, verb.PastSimple}})
	v := m.engine.Question().Verb

	typeAnswer(m, v.Base)

	assert.Equal(t, quiz.StatePromptSecond, m.engine.State())
	assert.Equal(t, "past simple >> ", m.input.Prompt)
	assert.Contains(t, m.View(), v.PastParticiple)
}

func TestModel_ExitCodeEndsSession(t *testing.T) {
	m := newTestModel(t, quiz.Mode{From: verb.Base, To: []verb.Form{verb.PastSimple}})

	typeAnswer(m, "0")

	require.Equal(t, stateSummary, m.state)
	result, err := Outcome(m)
	require.NoError(t, err)
	assert.True(t, result.Aborted)
	assert.Zero(t, result.Questions)
	assert.Contains(t, m.View(), "Session ended early.")
}

func TestModel_EscEndsSession(t *testing.T) {
	m := newTestModel(t, quiz.Mode{From: verb.Base, To: []verb.Form{verb.PastSimple}})

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.Equal(t, stateSummary, m.state)
	assert.True(t, m.result.Aborted)
}

func TestModel_LetterKeysGoToTheAnswer(t *testing.T) {
	m := newTestModel(t, quiz.Mode{From: verb.Base, To: []verb.Form{verb.PastSimple}})

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	assert.Equal(t, stateAsking, m.state)
	assert.Equal(t, "q", m.input.Value())
}

func TestModel_LoadError(t *testing.T) {
	m := InitialModel(Options{
		Mode: quiz.Mode{From: verb.Base, To: []verb.Form{verb.PastSimple}},
		Load: func() (verb.Table, error) { return nil, errors.New("no such file") },
	})

	m.Update(loadVerbsCmd(m.opts.Load)())

	assert.Equal(t, stateLoadError, m.state)
	assert.Contains(t, m.View(), "Could not load verbs: no such file")
	_, err := Outcome(&m)
	require.EqualError(t, err, "no such file")
}

func TestOutcome_WrongModel(t *testing.T) {
	_, err := Outcome(nil)
	require.Error(t, err)
}
