package questions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/provider"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/types"
)

type stubProvider struct {
	name string
	text string
	err  error
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Generate(_ context.Context, _ provider.Request) (types.RawProviderOutput, error) {
	if s.err != nil {
		return types.RawProviderOutput{}, s.err
	}
	return types.TextOutput(s.text), nil
}

const tenQuestions = `1. Describe a distributed system you designed and the trade-offs you made.
2. How do you approach schema migrations on a live database?
3. Walk me through debugging a memory leak in production.
4. What does idiomatic error handling look like in your primary language?
5. How do you decide between synchronous and asynchronous communication?
6. Describe your approach to load testing a new service.
7. How do you keep secrets out of your codebase and build pipeline?
8. Explain a caching strategy you implemented and its invalidation rules.
9. What metrics do you monitor for a user-facing API?
10. How do you structure integration tests for external dependencies?`

func TestGenerate_ParsesProviderOutput(t *testing.T) {
	g := NewGenerator([]provider.Client{&stubProvider{name: "primary", text: tenQuestions}})

	qs := g.Generate(context.Background(), "Backend Engineer", "Mid", types.CategoryTechnical, 10)

	require.Len(t, qs, 10)
	assert.Equal(t, 0, qs[0].Ordinal)
	assert.Equal(t, "Describe a distributed system you designed and the trade-offs you made.", qs[0].Text)
	assert.Equal(t, 9, qs[9].Ordinal)
}

func TestGenerate_TooFewQuestionsFallsBack(t *testing.T) {
	short := "1. Only one real interview question about your career so far?"
	g := NewGenerator([]provider.Client{&stubProvider{name: "primary", text: short}})

	qs := g.Generate(context.Background(), "Backend Engineer", "Mid", types.CategoryTechnical, 5)

	require.Len(t, qs, 5)
	// Canned fallback, role-substituted.
	assert.Contains(t, qs[0].Text, "Backend Engineer")
}

func TestGenerate_AllProvidersDown_CannedTechnicalList(t *testing.T) {
	g := NewGenerator([]provider.Client{
		&stubProvider{name: "primary", err: errors.New("quota")},
		&stubProvider{name: "secondary", err: errors.New("quota")},
	})

	qs := g.Generate(context.Background(), "Backend Engineer", "Mid", types.CategoryTechnical, 5)

	require.Len(t, qs, 5)
	assert.Contains(t, qs[0].Text, "system design as a Backend Engineer")
	for i, q := range qs {
		assert.Equal(t, i, q.Ordinal)
		assert.Greater(t, len(q.Text), 10)
	}
}

func TestGenerate_NoProvidersConfigured(t *testing.T) {
	g := NewGenerator(nil)

	qs := g.Generate(context.Background(), "Data Scientist", "Senior", types.CategoryBehavioral, 7)

	require.Len(t, qs, 7)
	assert.Contains(t, qs[2].Text, "Data Scientist")
}

func TestGenerate_CapsAtTenQuestions(t *testing.T) {
	long := tenQuestions + "\n11. Eleventh question that should be dropped from the output entirely?"
	g := NewGenerator([]provider.Client{&stubProvider{name: "primary", text: long}})

	qs := g.Generate(context.Background(), "Backend Engineer", "Mid", types.CategoryTechnical, 10)

	assert.Len(t, qs, 10)
}

func TestGenerate_CountClampedToMinimum(t *testing.T) {
	g := NewGenerator(nil)

	qs := g.Generate(context.Background(), "QA Engineer", "Junior", types.CategoryMixed, 2)

	assert.Len(t, qs, 5)
}

func TestCannedList_MixedHalvesBothCategories(t *testing.T) {
	qs := CannedList("SRE", types.CategoryMixed, 10)

	require.Len(t, qs, 10)
	assert.Contains(t, qs[0].Text, "system design") // technical half
	assert.Contains(t, qs[5].Text, "team")          // behavioral half
}

func TestCannedProvider_RendersNumberedList(t *testing.T) {
	out, err := CannedProvider{}.Generate(context.Background(), provider.Request{
		Kind:     provider.KindQuestions,
		Role:     "Platform Engineer",
		Category: types.CategoryTechnical,
		Count:    5,
	})

	require.NoError(t, err)
	assert.Contains(t, out.Text, "1. ")
	assert.Contains(t, out.Text, "Platform Engineer")

	parsed, err := parseQuestionList(out)
	require.NoError(t, err)
	assert.NoError(t, validateQuestionList(parsed))
}

func TestCannedProvider_RejectsOtherKinds(t *testing.T) {
	_, err := CannedProvider{}.Generate(context.Background(), provider.Request{Kind: provider.KindEvaluation})
	assert.ErrorIs(t, err, provider.ErrUnsupported)
}

func TestStripListMarkup(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1. What is your greatest strength?", "What is your greatest strength?"},
		{"12) Describe a hard bug.", "Describe a hard bug."},
		{"- Tell me about a project.", "Tell me about a project."},
		{"* **Bolded question here**", "Bolded question here"},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripListMarkup(tt.in), "input %q", tt.in)
	}
}
