// Package transcription resolves recorded speech into answer text through
// the provider fallback chain, tagging every result with its provenance.
package transcription

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/fallback"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/provider"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/types"
)

// Placeholder is the fixed text recorded when no transcription source
// produced usable output.
const Placeholder = "Transcription unavailable."

// Pipeline transcribes audio through an ordered provider chain (cloud
// first, local model next), then degrades to the caller-supplied fallback
// text and finally to a fixed placeholder. It is a pure function of its
// inputs: re-invoking it never mutates previously recorded answers.
type Pipeline struct {
	providers []provider.Client
	timeout   time.Duration
	observer  fallback.Observer
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTimeout bounds each provider call.
func WithTimeout(d time.Duration) Option {
	return func(p *Pipeline) { p.timeout = d }
}

// WithObserver receives per-attempt diagnostics.
func WithObserver(obs fallback.Observer) Option {
	return func(p *Pipeline) { p.observer = obs }
}

// NewPipeline builds a Pipeline over the ordered transcription chain.
func NewPipeline(providers []provider.Client, opts ...Option) *Pipeline {
	p := &Pipeline{providers: providers}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// transcript is the chain's intermediate value: text plus how it was obtained.
type transcript struct {
	text       string
	provenance types.Provenance
}

// Transcribe resolves audio into text. The returned provenance is
// "transcribed" when a provider produced the text, "direct-text" when the
// caller's fallbackText was used, and "transcription-unavailable" for the
// placeholder. It never returns an error.
func (p *Pipeline) Transcribe(ctx context.Context, audio []byte, mimeType, fallbackText string) (string, types.Provenance) {
	req := provider.Request{
		Kind:      provider.KindTranscription,
		Audio:     audio,
		AudioMIME: mimeType,
	}

	// The caller's own text, or the placeholder, is the chain default.
	def := transcript{text: strings.TrimSpace(fallbackText), provenance: types.ProvenanceDirectText}
	if def.text == "" {
		def = transcript{text: Placeholder, provenance: types.ProvenanceUnavailable}
	}

	providers := p.providers
	if len(audio) == 0 {
		// Nothing to transcribe; don't burn provider calls.
		providers = nil
	}

	result := fallback.Execute(ctx, providers, req,
		parseTranscript,
		validateTranscript,
		def,
		fallback.Options{Timeout: p.timeout, Observer: p.observer},
	)

	return result.text, result.provenance
}

// parseTranscript trims provider output into a transcript value.
func parseTranscript(out types.RawProviderOutput) (transcript, error) {
	return transcript{
		text:       strings.TrimSpace(out.Text),
		provenance: types.ProvenanceTranscribed,
	}, nil
}

// validateTranscript rejects transcripts that are empty after trimming.
func validateTranscript(t transcript) error {
	if t.text == "" {
		return fmt.Errorf("empty transcript")
	}
	return nil
}
