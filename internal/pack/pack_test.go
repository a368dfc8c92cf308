package pack

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/dungeonquiz/internal/catalog"
)

func samplePack() *Pack {
	return &Pack{
		Meta: Meta{ID: "g2-1-mid-math", Title: "Midterm math", Grade: 2, Term: "2-1", Phase: catalog.PhaseMidterm, Dungeon: "math_mine"},
		Questions: []Question{
			{ID: "q-001", Type: TypeMCQ, Difficulty: 2, Prompt: "What is 2+2?", Choices: []string{"3", "4"}, Answer: "4", Explain: "Two and two make four."},
			{ID: "q-002", Type: TypeFill, Prompt: "Spell the word for 🐱", Answer: "cat"},
			{ID: "q-003", Type: TypeMCQ, Difficulty: 5, Prompt: "Biggest?", Choices: []string{"1", "10", "100"}, Answer: "100"},
		},
	}
}

func TestParse_RoundTrip(t *testing.T) {
	want := samplePack()

	data, err := Marshal(want)
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMarshal_TwoSpaceIndent(t *testing.T) {
	data, err := Marshal(&Pack{Meta: Meta{ID: "x"}})
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"meta\": {\n    \"id\": \"x\"")
	assert.Contains(t, string(data), `"questions": []`)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{"meta":`},
		{"no questions", `{"meta":{}}`},
		{"questions not array", `{"questions":{}}`},
		{"unknown type", `{"questions":[{"id":"a","type":"essay","prompt":"p","answer":"x"}]}`},
		{"missing answer", `{"questions":[{"id":"a","type":"fill","prompt":"p"}]}`},
		{"choices not strings", `{"questions":[{"id":"a","type":"mcq","prompt":"p","answer":"1","choices":[1,2]}]}`},
		{"fractional difficulty", `{"questions":[{"id":"a","type":"fill","prompt":"p","answer":"x","difficulty":2.5}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			var se *SchemaError
			assert.ErrorAs(t, err, &se)
		})
	}
}

func TestParse_ToleratesOutOfRangeDifficulty(t *testing.T) {
	p, err := Parse([]byte(`{"questions":[{"id":"a","type":"fill","prompt":"p","answer":"x","difficulty":9}]}`))
	require.NoError(t, err)
	q := p.Questions[0]
	assert.Equal(t, 9, q.Difficulty)
	assert.Equal(t, 1, q.EffectiveDifficulty())
	assert.Equal(t, 9, q.RewardDifficulty())
}

func TestQuestion_Difficulty(t *testing.T) {
	assert.Equal(t, 1, Question{}.EffectiveDifficulty())
	assert.Equal(t, 1, Question{}.RewardDifficulty())
	assert.Equal(t, 4, Question{Difficulty: 4}.EffectiveDifficulty())
	assert.Equal(t, 1, Question{Difficulty: -2}.EffectiveDifficulty())
	assert.Equal(t, -2, Question{Difficulty: -2}.RewardDifficulty())
}

func TestIndexEntry(t *testing.T) {
	d := IndexEntry(samplePack().Meta)
	assert.Equal(t, catalog.Descriptor{
		ID: "g2-1-mid-math", Grade: 2, Term: "2-1", Phase: catalog.PhaseMidterm,
		Dungeon: "math_mine", Title: "Midterm math", File: "g2-1-mid-math.json",
	}, d)
}

type memSource struct {
	files map[string][]byte
}

func (m memSource) Index(context.Context) (*catalog.Index, error) {
	return nil, errors.New("no index")
}

func (m memSource) Pack(_ context.Context, file string) ([]byte, error) {
	data, ok := m.files[file]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func TestLoad(t *testing.T) {
	good, err := Marshal(samplePack())
	require.NoError(t, err)
	src := memSource{files: map[string][]byte{
		"good.json": good,
		"bad.json":  []byte(`{"questions": 3}`),
	}}
	ctx := context.Background()

	p, err := Load(ctx, src, catalog.Descriptor{File: "good.json"})
	require.NoError(t, err)
	assert.Len(t, p.Questions, 3)

	var ue *catalog.UnavailableError
	_, err = Load(ctx, src, catalog.Descriptor{File: "bad.json"})
	require.ErrorAs(t, err, &ue)
	var se *SchemaError
	assert.ErrorAs(t, err, &se)

	_, err = Load(ctx, src, catalog.Descriptor{File: "gone.json"})
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "gone.json", ue.Ref)

	_, err = LoadIndex(ctx, src)
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, catalog.IndexFile, ue.Ref)
}
