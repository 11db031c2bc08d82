package main

import (
	"context"
	"fmt"
	"time"

	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/config"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/fallback"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/feedback"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/llm"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/provider"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/questions"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/session"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/transcription"
)

// buildRegistry constructs the ordered provider chains from configuration.
// Generation order: Gemini standard tier, Gemini fast tier, the local
// endpoint, then the canned generator. Transcription order: Gemini, then
// the local endpoint's Whisper-style audio API; the caller's typed text
// and the placeholder are the remaining links of that ladder.
// The returned closer releases the hosted client, if one was created.
func buildRegistry(ctx context.Context, cfg config.Config) (*provider.Registry, func(), error) {
	var generation []provider.Client
	var transcribers []provider.Client
	closer := func() {}

	if cfg.APIKey != "" {
		client, err := llm.NewGeminiClient(ctx, nil, cfg.APIKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		closer = func() { _ = client.Close() }

		generation = append(generation,
			provider.NewGemini("gemini-standard", client, llm.TierStandard),
			provider.NewGemini("gemini-fast", client, llm.TierFast),
		)
		transcribers = append(transcribers,
			provider.NewGemini("gemini-standard", client, llm.TierStandard),
		)
	}

	if cfg.LocalURL != "" {
		model := cfg.LocalModel
		if model == "" {
			model = "llama3"
		}
		local := provider.NewLocal(cfg.LocalURL, model)
		generation = append(generation, local)
		transcribers = append(transcribers, local)
	}

	// Last link of question generation; other request kinds pass through it.
	generation = append(generation, questions.CannedProvider{})

	return provider.NewRegistry(generation, transcribers), closer, nil
}

// buildManager assembles the session manager over the registry's chains.
func buildManager(reg *provider.Registry, cfg config.Config, observer fallback.Observer, opts ...session.Option) *session.Manager {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	gen := questions.NewGenerator(reg.Generation,
		questions.WithTimeout(timeout),
		questions.WithObserver(observer),
	)
	tr := transcription.NewPipeline(reg.Transcription,
		transcription.WithTimeout(timeout),
		transcription.WithObserver(observer),
	)
	synth := feedback.NewSynthesizer(reg.Generation,
		feedback.WithTimeout(timeout),
		feedback.WithObserver(observer),
	)

	if cfg.QuestionCount > 0 {
		opts = append(opts, session.WithQuestionCount(cfg.QuestionCount))
	}
	return session.NewManager(gen, tr, synth, opts...)
}
