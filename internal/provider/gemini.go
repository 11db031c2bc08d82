package provider

import (
	"context"
	"fmt"

	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/llm"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/types"
)

// Gemini adapts an llm.Client to the provider interface at a fixed model
// tier. Two instances of this type back the primary/secondary links of the
// generation chains (advanced tier first, fast tier next).
type Gemini struct {
	name   string
	client llm.Client
	tier   llm.ModelTier
}

var _ Client = (*Gemini)(nil)

// NewGemini wraps client at the given tier. The name should identify both
// the provider and the tier, e.g. "gemini-advanced".
func NewGemini(name string, client llm.Client, tier llm.ModelTier) *Gemini {
	return &Gemini{name: name, client: client, tier: tier}
}

// Name identifies the provider in diagnostics.
func (g *Gemini) Name() string {
	return g.name
}

// Generate serves question, evaluation, and transcription requests.
func (g *Gemini) Generate(ctx context.Context, req Request) (types.RawProviderOutput, error) {
	switch req.Kind {
	case KindQuestions:
		text, err := g.client.GenerateContent(ctx, req.Prompt, g.tier)
		if err != nil {
			return types.RawProviderOutput{}, fmt.Errorf("gemini question generation: %w", err)
		}
		return types.TextOutput(text), nil

	case KindEvaluation:
		text, err := g.client.GenerateJSON(ctx, req.Prompt, g.tier)
		if err != nil {
			return types.RawProviderOutput{}, fmt.Errorf("gemini evaluation: %w", err)
		}
		return types.TextOutput(text), nil

	case KindTranscription:
		text, err := g.client.Transcribe(ctx, req.Audio, req.AudioMIME, g.tier)
		if err != nil {
			return types.RawProviderOutput{}, fmt.Errorf("gemini transcription: %w", err)
		}
		return types.TextOutput(text), nil

	default:
		return types.RawProviderOutput{}, ErrUnsupported
	}
}
