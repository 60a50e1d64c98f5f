package verb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseForm(t *testing.T) {
	for _, f := range Forms() {
		got, err := ParseForm(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	for _, name := range []string{"past tense", "Base", "past  simple", ""} {
		_, err := ParseForm(name)
		var invalid *InvalidFormError
		require.ErrorAs(t, err, &invalid, "name %q", name)
		assert.Equal(t, name, invalid.Name)
	}
}

func TestFormNames(t *testing.T) {
	assert.Equal(t, []string{"base", "past simple", "past participle"}, FormNames())
	assert.Equal(t, []string{"past simple", "past participle"}, FormsWithPrefix("past"))
	assert.Empty(t, FormsWithPrefix("x"))
}

func TestVerbForm(t *testing.T) {
	v := Verb{Base: "go", PastSimple: "went", PastParticiple: "gone"}

	assert.Equal(t, "go", v.Form(Base))
	assert.Equal(t, "went", v.Form(PastSimple))
	assert.Equal(t, "gone", v.Form(PastParticiple))
	assert.Equal(t, "", v.Form(Form(7)))
	assert.False(t, Form(7).Valid())
	assert.Equal(t, "form(7)", Form(7).String())
}
