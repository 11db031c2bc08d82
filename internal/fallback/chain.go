// Package fallback implements the chain-of-fallback executor: an ordered
// list of providers tried in sequence until one produces output that parses
// and validates, with a deterministic default when every link fails. The
// executor never propagates a fault to its caller.
package fallback

import (
	"context"
	"time"

	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/provider"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/types"
)

// Outcome classifies a single provider attempt.
type Outcome string

// Attempt outcomes.
const (
	// OutcomeOK means the provider's output parsed and validated.
	OutcomeOK Outcome = "ok"
	// OutcomeFault means the provider call itself failed (timeout,
	// transport, throttling, empty output).
	OutcomeFault Outcome = "fault"
	// OutcomeInvalid means the provider answered but the output failed
	// parsing or validation.
	OutcomeInvalid Outcome = "invalid"
	// OutcomeSkipped means the chain stopped before calling the provider
	// because the session context was cancelled.
	OutcomeSkipped Outcome = "skipped"
)

// Attempt is the diagnostic record of one provider call within a chain
// execution. It is handed to the observer and then discarded; nothing in
// the core retains it.
type Attempt struct {
	Provider    string
	RequestKind provider.Kind
	Outcome     Outcome
	Latency     time.Duration
	Err         error
}

// Observer receives one Attempt per provider call. Optional; correctness
// never depends on it.
type Observer func(Attempt)

// Options tune a chain execution.
type Options struct {
	// Timeout bounds each individual provider call. Zero means no
	// per-call bound beyond the caller's context.
	Timeout time.Duration
	// Observer receives per-attempt diagnostics.
	Observer Observer
}

func (o Options) observe(a Attempt) {
	if o.Observer != nil {
		o.Observer(a)
	}
}

// Execute tries each provider in order against req. Raw output is parsed
// into a T and validated; the first value that passes both is returned.
// Provider faults, parse failures, and validation failures all continue to
// the next link. When the provider list is exhausted (or empty, or the
// context is cancelled), the deterministic fallback value is returned.
//
// Execute never returns an error: the worst case is always the fallback,
// a fully formed, schema-valid value.
func Execute[T any](
	ctx context.Context,
	providers []provider.Client,
	req provider.Request,
	parse func(types.RawProviderOutput) (T, error),
	validate func(T) error,
	fallback T,
	opts Options,
) T {
	for _, p := range providers {
		if ctx.Err() != nil {
			opts.observe(Attempt{Provider: p.Name(), RequestKind: req.Kind, Outcome: OutcomeSkipped, Err: ctx.Err()})
			return fallback
		}

		out, latency, err := callProvider(ctx, p, req, opts.Timeout)
		if err != nil {
			opts.observe(Attempt{Provider: p.Name(), RequestKind: req.Kind, Outcome: OutcomeFault, Latency: latency, Err: err})
			continue
		}

		value, err := parse(out)
		if err == nil && validate != nil {
			err = validate(value)
		}
		if err != nil {
			opts.observe(Attempt{Provider: p.Name(), RequestKind: req.Kind, Outcome: OutcomeInvalid, Latency: latency, Err: err})
			continue
		}

		opts.observe(Attempt{Provider: p.Name(), RequestKind: req.Kind, Outcome: OutcomeOK, Latency: latency})
		return value
	}

	return fallback
}

// callProvider runs one provider call under the per-call timeout and
// normalizes empty output into a fault.
func callProvider(ctx context.Context, p provider.Client, req provider.Request, timeout time.Duration) (types.RawProviderOutput, time.Duration, error) {
	callCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	out, err := p.Generate(callCtx, req)
	latency := time.Since(start)

	if err != nil {
		return types.RawProviderOutput{}, latency, err
	}
	if out.Empty() {
		return types.RawProviderOutput{}, latency, errEmptyOutput
	}
	return out, latency, nil
}

type chainError string

func (e chainError) Error() string { return string(e) }

const errEmptyOutput = chainError("provider returned empty output")
