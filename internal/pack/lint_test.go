package pack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLint_CleanPack(t *testing.T) {
	assert.Empty(t, Lint(samplePack()))
}

func TestLint_Issues(t *testing.T) {
	p := &Pack{Questions: []Question{
		{ID: "a", Type: TypeMCQ, Prompt: "p", Choices: []string{"x"}, Answer: "x"},
		{ID: "a", Type: TypeFill, Prompt: "p", Answer: ""},
		{ID: "c", Type: TypeMCQ, Prompt: "p", Choices: []string{"Yes", "No"}, Answer: "maybe"},
		{ID: "d", Type: TypeFill, Prompt: "  ", Answer: "x"},
		{ID: "e", Type: TypeFill, Prompt: "p", Answer: "x", Difficulty: 8},
		{ID: "f", Type: TypeMCQ, Prompt: "p", Choices: []string{" YES ", "no"}, Answer: "yes"},
	}}
	before := *p

	issues := Lint(p)

	got := map[string][]string{}
	for _, i := range issues {
		got[i.QuestionID] = append(got[i.QuestionID], i.Validator)
	}
	assert.Equal(t, map[string][]string{
		"a": {"choices", "unique-id", "answer"},
		"c": {"answer"},
		"d": {"structural"},
		"e": {"difficulty"},
	}, got)
	assert.True(t, HasErrors(issues))
	assert.Equal(t, before, *p, "Lint must not modify the pack")
}

func TestLint_WarningsOnly(t *testing.T) {
	p := &Pack{Questions: []Question{{ID: "a", Type: TypeFill, Prompt: "p"}}}
	issues := Lint(p)
	if assert.Len(t, issues, 1) {
		assert.Equal(t, SeverityWarning, issues[0].Severity)
		assert.Equal(t, "a [warning/answer] answer is not filled in yet", issues[0].String())
	}
	assert.False(t, HasErrors(issues))
}

func TestNormalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"  Paris ", "paris"},
		{"PARIS", "paris"},
		{"\tA\n", "a"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in))
	}
}
