package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ir-verbs/internal/verb"
)

func TestEngine_SubmitBeforeStart(t *testing.T) {
	e := NewEngine(Mode{From: verb.Base, To: []verb.Form{verb.PastSimple}}, threeVerbs())

	_, err := e.Submit("went")

	require.ErrorIs(t, err, ErrNotStarted)
	assert.Equal(t, StateIdle, e.State())
}

func TestEngine_SingleTargetRun(t *testing.T) {
	// --- Arrange ---
	table := threeVerbs()
	answers := pastSimpleOf(table)
	e := NewEngine(Mode{From: verb.Base, To: []verb.Form{verb.PastSimple}}, table, WithRand(NewRand(3)))

	// --- Act ---
	e.Start()
	var asked []string
	for !e.Done() {
		require.Equal(t, StatePromptFirst, e.State())
		q := e.Question()
		asked = append(asked, q.Prompt())
		assert.Equal(t, len(asked), q.Number)
		assert.Equal(t, 3, q.Total)
		assert.Equal(t, verb.PastSimple, q.Target)

		fb, err := e.Submit(answers[q.Prompt()])
		require.NoError(t, err)
		assert.True(t, fb.Correct)
		assert.True(t, fb.QuestionDone)
		assert.True(t, fb.QuestionCorrect)
	}

	// --- Assert ---
	assert.ElementsMatch(t, []string{"go", "be", "do"}, asked)
	assert.Equal(t, StateExhausted, e.State())
	r := e.Result()
	assert.Equal(t, 3, r.Questions)
	assert.Equal(t, 3, r.Correct)
	assert.Zero(t, r.Incorrect())
	assert.False(t, r.Aborted)

	_, err := e.Submit("anything")
	require.ErrorIs(t, err, ErrFinished)
}

func TestEngine_TwoTargetsBothMustBeRight(t *testing.T) {
	table := verb.Table{{Base: "dream", PastSimple: "dreamed/dreamt", PastParticiple: "dreamed/dreamt"}}
	e := NewEngine(Mode{From: verb.Base, To: []verb.Form{verb.PastSimple, verb.PastParticiple}}, table)
	e.Start()

	fb, err := e.Submit("dreamt")
	require.NoError(t, err)
	assert.True(t, fb.Correct)
	assert.False(t, fb.QuestionDone)
	assert.Equal(t, StatePromptSecond, e.State())
	assert.Equal(t, verb.PastParticiple, e.Question().Target)
	assert.Equal(t, 1, e.Question().Part)

	fb, err = e.Submit("dreamd")
	require.NoError(t, err)
	assert.False(t, fb.Correct)
	assert.True(t, fb.QuestionDone)
	assert.False(t, fb.QuestionCorrect)
	assert.Equal(t, "dreamed/dreamt", fb.Expected)

	r := e.Result()
	assert.Equal(t, 1, r.Questions)
	assert.Equal(t, 0, r.Correct)
	require.Len(t, r.Mistakes, 1)
	assert.Equal(t, Mistake{
		Verb:     table[0],
		From:     verb.Base,
		Target:   verb.PastParticiple,
		Answer:   "dreamd",
		Expected: "dreamed/dreamt",
	}, r.Mistakes[0])
}

func TestEngine_ExitDoesNotCountQuestion(t *testing.T) {
	table := threeVerbs()
	e := NewEngine(Mode{From: verb.Base, To: []verb.Form{verb.PastSimple, verb.PastParticiple}}, table, WithRand(NewRand(9)))
	e.Start()

	// Wrong first part, then exit on the second prompt.
	_, err := e.Submit("nope")
	require.NoError(t, err)
	fb, err := e.Submit(" 0 ")
	require.NoError(t, err)

	assert.True(t, fb.Exit)
	assert.Equal(t, StateAborted, e.State())
	assert.True(t, e.Done())
	r := e.Result()
	assert.Zero(t, r.Questions)
	assert.Zero(t, r.Correct)
	assert.True(t, r.Aborted)
	assert.Empty(t, r.Mistakes, "mistakes of the unfinished question are dropped")
}

func TestEngine_CustomExitCode(t *testing.T) {
	e := NewEngine(Mode{From: verb.Base, To: []verb.Form{verb.PastSimple}}, threeVerbs(), WithExitCode(9))
	e.Start()

	fb, err := e.Submit("0")
	require.NoError(t, err)
	assert.False(t, fb.Exit)

	fb, err = e.Submit("9")
	require.NoError(t, err)
	assert.True(t, fb.Exit)
	assert.Equal(t, 1, e.Result().Questions)
}

func TestEngine_StartResetsRun(t *testing.T) {
	e := NewEngine(Mode{From: verb.Base, To: []verb.Form{verb.PastSimple}}, threeVerbs())
	e.Start()
	_, err := e.Submit("0")
	require.NoError(t, err)
	require.True(t, e.Done())

	e.Start()

	assert.Equal(t, StatePromptFirst, e.State())
	assert.Equal(t, 1, e.Question().Number)
	assert.Equal(t, Result{}, e.Result())
}

func TestEngine_EmptyTableIsExhaustedImmediately(t *testing.T) {
	e := NewEngine(Mode{From: verb.Base, To: []verb.Form{verb.PastSimple}}, nil)

	e.Start()

	assert.Equal(t, StateExhausted, e.State())
	assert.Zero(t, e.Result().Questions)
}

func TestEngine_Abort(t *testing.T) {
	e := NewEngine(Mode{From: verb.Base, To: []verb.Form{verb.PastSimple}}, threeVerbs())
	e.Abort()
	assert.Equal(t, StateIdle, e.State(), "abort before start is ignored")

	e.Start()
	e.Abort()

	assert.Equal(t, StateAborted, e.State())
	assert.True(t, e.Result().Aborted)
	assert.Equal(t, DefaultExitCode, e.ExitCode())
}
