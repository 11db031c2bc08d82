// Package provider defines the uniform client interface to external
// generation and transcription capabilities, plus the concrete
// implementations used by the fallback chains.
package provider

import (
	"context"
	"errors"

	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/types"
)

// Kind identifies the capability a request exercises.
type Kind string

// Request kinds.
const (
	KindQuestions     Kind = "questions"
	KindTranscription Kind = "transcription"
	KindEvaluation    Kind = "evaluation"
)

// Request carries everything a provider may need to serve a call. Prompt is
// set for text/JSON generation; Audio for transcription. Role, Experience,
// Category and Count let deterministic providers synthesize content without
// parsing the prompt.
type Request struct {
	Kind       Kind
	Prompt     string
	Audio      []byte
	AudioMIME  string
	Role       string
	Experience string
	Category   types.Category
	Count      int
}

// ErrUnsupported is returned by providers that do not serve a request kind,
// e.g. a text-only endpoint asked for transcription. The fallback chain
// treats it like any other provider fault and moves on.
var ErrUnsupported = errors.New("request kind not supported by this provider")

// Client is the uniform interface to an external generative or
// transcription capability. Implementations return explicit errors for
// every fault; none of them panic or retry internally.
type Client interface {
	// Name identifies the provider in diagnostics.
	Name() string
	// Generate serves one request. The returned output is loosely typed;
	// callers parse and validate it before use.
	Generate(ctx context.Context, req Request) (types.RawProviderOutput, error)
}
