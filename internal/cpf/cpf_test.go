package cpf_test

import (
	"testing"

	"nexshop/internal/cpf"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "52998224725", cpf.Strip("529.982.247-25"))
	assert.Equal(t, "12345", cpf.Strip("1a2b3c4d5"))
	assert.Equal(t, "", cpf.Strip("abc"))
}

func TestFormatProgressiveMask(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":               "",
		"529":            "529",
		"5299":           "529.9",
		"529982":         "529.982",
		"5299822":        "529.982.2",
		"529982247":      "529.982.247",
		"5299822472":     "529.982.247-2",
		"52998224725":    "529.982.247-25",
		"529982247259999": "529.982.247-25", // extra digits truncated
	}
	for in, want := range cases {
		assert.Equal(t, want, cpf.Format(in), "input %q", in)
	}
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, cpf.IsValid("529.982.247-25"))
	assert.True(t, cpf.IsValid("52998224725"))

	assert.False(t, cpf.IsValid("529.982.247-26"), "wrong check digit")
	assert.False(t, cpf.IsValid("111.111.111-11"), "repeated digits verify but are rejected")
	assert.False(t, cpf.IsValid("000.000.000-00"))
	assert.False(t, cpf.IsValid("529.982.247"), "too short")
	assert.False(t, cpf.IsValid(""))
}
