// Package types provides type definitions for structured data used throughout the interview agent.
package types

import (
	"fmt"
	"strings"
)

// Category is the requested interview category.
type Category string

// Supported interview categories.
const (
	CategoryTechnical  Category = "technical"
	CategoryBehavioral Category = "behavioral"
	CategoryMixed      Category = "mixed"
)

// ParseCategory normalizes a user-supplied category string.
// Unrecognized values default to a mixed interview.
func ParseCategory(s string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryTechnical:
		return CategoryTechnical
	case CategoryBehavioral:
		return CategoryBehavioral
	default:
		return CategoryMixed
	}
}

// FocusDescription returns the prompt-facing description of what the
// category emphasizes.
func (c Category) FocusDescription() string {
	switch c {
	case CategoryTechnical:
		return "technical skills like coding, system design, algorithms"
	case CategoryBehavioral:
		return "soft skills like teamwork, leadership, communication"
	default:
		return "both technical and behavioral aspects"
	}
}

// Question is an immutable interview question with a stable ordinal
// position within its session.
type Question struct {
	Ordinal int    `json:"ordinal"`
	Text    string `json:"text"`
}

// Provenance records how an Answer's text was obtained.
type Provenance string

// Answer provenance tags.
const (
	// ProvenanceDirectText marks text typed or supplied directly by the caller.
	ProvenanceDirectText Provenance = "direct-text"
	// ProvenanceTranscribed marks text produced by a speech-to-text provider.
	ProvenanceTranscribed Provenance = "transcribed"
	// ProvenanceUnavailable marks the fixed placeholder used when no
	// transcription source produced usable text.
	ProvenanceUnavailable Provenance = "transcription-unavailable"
)

// Answer is the caller's response to a single question. At most one Answer
// exists per ordinal and its ordinal always matches an existing Question.
type Answer struct {
	Ordinal    int        `json:"ordinal"`
	Text       string     `json:"text"`
	AudioRef   string     `json:"audio_ref,omitempty"`
	Provenance Provenance `json:"provenance"`
}

// QA pairs a question with its recorded answer for feedback synthesis.
type QA struct {
	Question Question
	Answer   Answer
}

// String renders the pair the way it is embedded into prompts.
func (qa QA) String() string {
	return fmt.Sprintf("Q%d: %s\nA%d: %s", qa.Question.Ordinal+1, qa.Question.Text, qa.Answer.Ordinal+1, qa.Answer.Text)
}
