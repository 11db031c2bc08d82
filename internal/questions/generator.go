// Package questions generates interview questions through the provider
// fallback chain, degrading to a category-keyed canned list when every
// provider is unavailable.
package questions

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/fallback"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/prompts"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/provider"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/types"
)

const (
	// minQuestions is the smallest acceptable question set; provider
	// output with fewer valid items is rejected.
	minQuestions = 5
	// maxQuestions caps the provider's item count.
	maxQuestions = 10
	// minQuestionLength filters out numbering debris and trivial lines.
	minQuestionLength = 10
)

// Generator produces interview question sets. Construct with NewGenerator;
// the zero value has no providers and always returns the canned list.
type Generator struct {
	providers []provider.Client
	timeout   time.Duration
	observer  fallback.Observer
	seed      func() int
}

// Option configures a Generator.
type Option func(*Generator)

// WithTimeout bounds each provider call.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) { g.timeout = d }
}

// WithObserver receives per-attempt diagnostics.
func WithObserver(obs fallback.Observer) Option {
	return func(g *Generator) { g.observer = obs }
}

// WithSeed overrides the prompt randomization seed source, for tests.
func WithSeed(seed func() int) Option {
	return func(g *Generator) { g.seed = seed }
}

// NewGenerator builds a Generator over the ordered provider chain.
func NewGenerator(providers []provider.Client, opts ...Option) *Generator {
	g := &Generator{
		providers: providers,
		seed:      func() int { return rand.Intn(10000) + 1 },
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns an ordered question set for the given role, experience
// band, and category. It never fails: when every provider is exhausted or
// none are configured, the canned list sized to count is returned. Provider
// output is capped at maxQuestions items.
func (g *Generator) Generate(ctx context.Context, role, experience string, category types.Category, count int) []types.Question {
	if count < minQuestions {
		count = minQuestions
	}
	if count > maxQuestions {
		count = maxQuestions
	}

	req := provider.Request{
		Kind:       provider.KindQuestions,
		Prompt:     g.buildPrompt(role, experience, category, count),
		Role:       role,
		Experience: experience,
		Category:   category,
		Count:      count,
	}

	return fallback.Execute(ctx, g.providers, req,
		parseQuestionList,
		validateQuestionList,
		CannedList(role, category, count),
		fallback.Options{Timeout: g.timeout, Observer: g.observer},
	)
}

// buildPrompt renders the question generation prompt. A random seed keeps
// repeated sessions from getting identical question sets.
func (g *Generator) buildPrompt(role, experience string, category types.Category, count int) string {
	template := prompts.MustGet("generate-questions")
	return prompts.Format(template, map[string]string{
		"Count":      strconv.Itoa(count),
		"Category":   string(category),
		"Role":       role,
		"Experience": experience,
		"Focus":      category.FocusDescription(),
		"Seed":       strconv.Itoa(g.seed()),
	})
}

// parseQuestionList extracts question strings from provider free text:
// numbered or bulleted lines, numbering and markup stripped, short lines
// dropped.
func parseQuestionList(out types.RawProviderOutput) ([]types.Question, error) {
	lines := strings.Split(out.Text, "\n")

	var questions []types.Question
	for _, line := range lines {
		text := stripListMarkup(line)
		if len(text) <= minQuestionLength {
			continue
		}
		questions = append(questions, types.Question{
			Ordinal: len(questions),
			Text:    text,
		})
		if len(questions) == maxQuestions {
			break
		}
	}

	return questions, nil
}

// validateQuestionList rejects provider output with fewer than minQuestions
// usable items.
func validateQuestionList(questions []types.Question) error {
	if len(questions) < minQuestions {
		return fmt.Errorf("only %d valid questions extracted, need at least %d", len(questions), minQuestions)
	}
	return nil
}

// stripListMarkup removes leading numbering ("3. ", "3) "), bullets, and
// markdown emphasis from a line.
func stripListMarkup(line string) string {
	text := strings.TrimSpace(line)
	text = strings.TrimLeft(text, "•·*-")
	text = strings.TrimSpace(text)

	// Strip a "12." or "12)" prefix.
	i := 0
	for i < len(text) && unicode.IsDigit(rune(text[i])) {
		i++
	}
	if i > 0 && i < len(text) && (text[i] == '.' || text[i] == ')') {
		text = text[i+1:]
	}

	text = strings.Trim(text, "* ")
	return strings.TrimSpace(text)
}
