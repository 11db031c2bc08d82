// Package feedback synthesizes the final structured evaluation of a
// completed interview: one batched provider request over every
// question/answer pair, strict structural validation of the payload, and a
// deterministic heuristic evaluation when every provider fails.
package feedback

import (
	_ "embed"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/fallback"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/llm"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/prompts"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/provider"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/scoring"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/types"
)

//go:embed evaluation_payload.schema.json
var payloadSchema string

// maxListItems bounds the strengths/weaknesses/suggestions lists.
const maxListItems = 5

// rawEvaluation mirrors the provider payload before normalization.
type rawEvaluation struct {
	OverallScore float64               `json:"overall_score"`
	GradeLabel   string                `json:"grade_label"`
	Summary      string                `json:"summary"`
	Strengths    []string              `json:"strengths"`
	Weaknesses   []string              `json:"weaknesses"`
	Suggestions  []string              `json:"suggestions"`
	Questions    []rawQuestionFeedback `json:"questions"`
}

type rawQuestionFeedback struct {
	ID       string  `json:"id"`
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// Synthesizer produces EvaluationResults through the provider fallback
// chain. It never returns an error: the worst case is the heuristic
// evaluation.
type Synthesizer struct {
	providers []provider.Client
	scale     scoring.Scale
	timeout   time.Duration
	observer  fallback.Observer
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithTimeout bounds each provider call.
func WithTimeout(d time.Duration) Option {
	return func(s *Synthesizer) { s.timeout = d }
}

// WithObserver receives per-attempt diagnostics.
func WithObserver(obs fallback.Observer) Option {
	return func(s *Synthesizer) { s.observer = obs }
}

// WithScale overrides the default grading thresholds.
func WithScale(scale scoring.Scale) Option {
	return func(s *Synthesizer) { s.scale = scale }
}

// NewSynthesizer builds a Synthesizer over the ordered provider chain.
func NewSynthesizer(providers []provider.Client, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		providers: providers,
		scale:     scoring.DefaultScale(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize evaluates the full question/answer set in a single batched
// request and returns a finalized evaluation. The overall score is
// canonical (0-100) and the grade label is always derived from it, so the
// two can never disagree.
func (s *Synthesizer) Synthesize(ctx context.Context, role, experience string, category types.Category, qas []types.QA) *types.EvaluationResult {
	req := provider.Request{
		Kind:       provider.KindEvaluation,
		Prompt:     buildEvaluationPrompt(role, experience, category, qas),
		Role:       role,
		Experience: experience,
		Category:   category,
	}

	raw := fallback.Execute(ctx, s.providers, req,
		parseEvaluationPayload,
		nil, // the schema check inside parse is the validation step
		heuristicEvaluation(role, qas),
		fallback.Options{Timeout: s.timeout, Observer: s.observer},
	)

	return s.finalize(raw, qas)
}

// buildEvaluationPrompt renders the batched evaluation prompt containing
// every question/answer pair. Feedback synthesis is deliberately one call
// per session, never one per question.
func buildEvaluationPrompt(role, experience string, category types.Category, qas []types.QA) string {
	var pairs strings.Builder
	for _, qa := range qas {
		pairs.WriteString(qa.String())
		pairs.WriteString("\n\n")
	}

	template := prompts.MustGet("synthesize-evaluation")
	return prompts.Format(template, map[string]string{
		"Role":       role,
		"Experience": experience,
		"Category":   string(category),
		"QAPairs":    strings.TrimSpace(pairs.String()),
	})
}

// parseEvaluationPayload strips code-fence wrappers, checks the payload
// against the embedded JSON schema, and decodes it. Any failure rejects the
// provider's output and moves the chain to the next link.
func parseEvaluationPayload(out types.RawProviderOutput) (rawEvaluation, error) {
	var doc gojsonschema.JSONLoader
	var raw rawEvaluation

	if out.IsStructured() {
		doc = gojsonschema.NewGoLoader(out.Structured)
	} else {
		doc = gojsonschema.NewStringLoader(llm.CleanJSONBlock(out.Text))
	}

	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(payloadSchema), doc)
	if err != nil {
		return raw, fmt.Errorf("evaluation payload is not valid JSON: %w", err)
	}
	if !result.Valid() {
		var sb strings.Builder
		for i, desc := range result.Errors() {
			if i > 0 {
				sb.WriteString("; ")
			}
			sb.WriteString(desc.String())
		}
		return raw, fmt.Errorf("evaluation payload failed schema validation: %s", sb.String())
	}

	if out.IsStructured() {
		// Round-trip the mapping through JSON into the typed payload.
		data, err := json.Marshal(out.Structured)
		if err != nil {
			return raw, fmt.Errorf("failed to re-encode structured payload: %w", err)
		}
		err = json.Unmarshal(data, &raw)
		return raw, err
	}

	err = json.Unmarshal([]byte(llm.CleanJSONBlock(out.Text)), &raw)
	return raw, err
}

// finalize turns a schema-valid payload into the immutable result handed to
// the caller. Scores are normalized, the grade is recomputed from the
// canonical score, lists are clamped, and the per-question breakdown is
// re-aligned with the session's own questions and answers.
func (s *Synthesizer) finalize(raw rawEvaluation, qas []types.QA) *types.EvaluationResult {
	overall := scoring.Normalize(raw.OverallScore)

	questions := make([]types.QuestionFeedback, len(qas))
	for i, qa := range qas {
		qf := types.QuestionFeedback{
			ID:       fmt.Sprintf("q%d", qa.Question.Ordinal+1),
			Question: qa.Question.Text,
			Answer:   qa.Answer.Text,
			Score:    overall,
			Feedback: "No feedback available for this question.",
		}
		if i < len(raw.Questions) {
			qf.Score = scoring.Normalize(raw.Questions[i].Score)
			if f := strings.TrimSpace(raw.Questions[i].Feedback); f != "" {
				qf.Feedback = f
			}
		}
		questions[i] = qf
	}

	return &types.EvaluationResult{
		OverallScore: overall,
		GradeLabel:   s.scale.Grade(overall),
		Summary:      strings.TrimSpace(raw.Summary),
		Strengths:    clampList(raw.Strengths, "Completed the interview"),
		Weaknesses:   clampList(raw.Weaknesses, "Not enough signal to assess"),
		Suggestions:  clampList(raw.Suggestions, "Keep practicing mock interviews"),
		Questions:    questions,
		CreatedAt:    time.Now().UTC(),
	}
}

// clampList trims entries, drops blanks, caps the list at maxListItems, and
// substitutes a placeholder when nothing usable remains.
func clampList(items []string, placeholder string) []string {
	cleaned := make([]string, 0, maxListItems)
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			cleaned = append(cleaned, trimmed)
			if len(cleaned) == maxListItems {
				break
			}
		}
	}
	if len(cleaned) == 0 {
		cleaned = append(cleaned, placeholder)
	}
	return cleaned
}
