package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ir-verbs/internal/verb"
)

func TestParseMode_Accepted(t *testing.T) {
	mode, err := ParseMode([]string{"base", "past simple", "past participle"})

	require.NoError(t, err)
	assert.Equal(t, verb.Base, mode.From)
	assert.Equal(t, []verb.Form{verb.PastSimple, verb.PastParticiple}, mode.To)
	assert.Equal(t, 2, mode.Targets())
	assert.Equal(t, "base -> past simple -> past participle", mode.String())
}

func TestParseMode_TwoForms(t *testing.T) {
	mode, err := ParseMode([]string{"past participle", "base"})

	require.NoError(t, err)
	assert.Equal(t, Mode{From: verb.PastParticiple, To: []verb.Form{verb.Base}}, mode)
}

func TestParseMode_Rejected(t *testing.T) {
	_, err := ParseMode([]string{"base", "base"})
	var dup *DuplicateFormError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, verb.Base, dup.Form)
	assert.EqualError(t, err, "'base' form name is already listed")

	_, err = ParseMode([]string{"base", "past simple", "base"})
	require.ErrorAs(t, err, &dup)

	_, err = ParseMode([]string{"base", "past tense"})
	var invalid *verb.InvalidFormError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "past tense", invalid.Name)

	_, err = ParseMode([]string{"base"})
	require.ErrorIs(t, err, ErrTooFewArguments)

	_, err = ParseMode(nil)
	require.ErrorIs(t, err, ErrTooFewArguments)

	_, err = ParseMode([]string{"base", "past simple", "past participle", "base"})
	require.ErrorIs(t, err, ErrTooManyArguments)
}
