package fallback

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/provider"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/types"
)

// fakeProvider returns a fixed output or error for every request.
type fakeProvider struct {
	name  string
	text  string
	err   error
	calls int
	slow  time.Duration
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Generate(ctx context.Context, _ provider.Request) (types.RawProviderOutput, error) {
	f.calls++
	if f.slow > 0 {
		select {
		case <-time.After(f.slow):
		case <-ctx.Done():
			return types.RawProviderOutput{}, ctx.Err()
		}
	}
	if f.err != nil {
		return types.RawProviderOutput{}, f.err
	}
	return types.TextOutput(f.text), nil
}

func parseText(out types.RawProviderOutput) (string, error) {
	return out.Text, nil
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("empty result")
	}
	return nil
}

func TestExecute_FirstProviderWins(t *testing.T) {
	first := &fakeProvider{name: "first", text: "hello"}
	second := &fakeProvider{name: "second", text: "unused"}

	result := Execute(context.Background(),
		[]provider.Client{first, second},
		provider.Request{Kind: provider.KindQuestions},
		parseText, validateNonEmpty, "default", Options{})

	assert.Equal(t, "hello", result)
	assert.Equal(t, 1, first.calls)
	assert.Zero(t, second.calls)
}

func TestExecute_FaultContinuesToNextLink(t *testing.T) {
	var attempts []Attempt
	first := &fakeProvider{name: "first", err: errors.New("quota exceeded")}
	second := &fakeProvider{name: "second", text: "recovered"}

	result := Execute(context.Background(),
		[]provider.Client{first, second},
		provider.Request{Kind: provider.KindQuestions},
		parseText, validateNonEmpty, "default",
		Options{Observer: func(a Attempt) { attempts = append(attempts, a) }})

	assert.Equal(t, "recovered", result)
	require.Len(t, attempts, 2)
	assert.Equal(t, OutcomeFault, attempts[0].Outcome)
	assert.Equal(t, OutcomeOK, attempts[1].Outcome)
}

func TestExecute_InvalidOutputContinues(t *testing.T) {
	var attempts []Attempt
	first := &fakeProvider{name: "first", text: "   "}
	second := &fakeProvider{name: "second", text: "valid"}

	result := Execute(context.Background(),
		[]provider.Client{first, second},
		provider.Request{Kind: provider.KindEvaluation},
		parseText, validateNonEmpty, "default",
		Options{Observer: func(a Attempt) { attempts = append(attempts, a) }})

	assert.Equal(t, "valid", result)
	require.Len(t, attempts, 2)
	assert.Equal(t, OutcomeInvalid, attempts[0].Outcome)
}

func TestExecute_AllExhaustedReturnsDefault(t *testing.T) {
	first := &fakeProvider{name: "first", err: errors.New("down")}
	second := &fakeProvider{name: "second", err: errors.New("also down")}

	result := Execute(context.Background(),
		[]provider.Client{first, second},
		provider.Request{Kind: provider.KindQuestions},
		parseText, validateNonEmpty, "default", Options{})

	assert.Equal(t, "default", result)
}

func TestExecute_EmptyProviderListReturnsDefault(t *testing.T) {
	result := Execute(context.Background(), nil,
		provider.Request{Kind: provider.KindQuestions},
		parseText, validateNonEmpty, "default", Options{})

	assert.Equal(t, "default", result)
}

func TestExecute_EmptyProviderOutputIsFault(t *testing.T) {
	var attempts []Attempt
	empty := &fakeProvider{name: "empty", text: ""}

	result := Execute(context.Background(),
		[]provider.Client{empty},
		provider.Request{Kind: provider.KindTranscription},
		parseText, validateNonEmpty, "default",
		Options{Observer: func(a Attempt) { attempts = append(attempts, a) }})

	assert.Equal(t, "default", result)
	require.Len(t, attempts, 1)
	assert.Equal(t, OutcomeFault, attempts[0].Outcome)
}

func TestExecute_PerCallTimeout(t *testing.T) {
	slow := &fakeProvider{name: "slow", text: "late", slow: 200 * time.Millisecond}
	fast := &fakeProvider{name: "fast", text: "quick"}

	result := Execute(context.Background(),
		[]provider.Client{slow, fast},
		provider.Request{Kind: provider.KindQuestions},
		parseText, validateNonEmpty, "default",
		Options{Timeout: 20 * time.Millisecond})

	assert.Equal(t, "quick", result)
}

func TestExecute_CancelledContextStopsConsumingProviders(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	untouched := &fakeProvider{name: "untouched", text: "x"}

	result := Execute(ctx,
		[]provider.Client{untouched},
		provider.Request{Kind: provider.KindQuestions},
		parseText, validateNonEmpty, "default", Options{})

	assert.Equal(t, "default", result)
	assert.Zero(t, untouched.calls)
}

func TestExecute_ParseErrorContinues(t *testing.T) {
	bad := &fakeProvider{name: "bad", text: "not-a-number"}
	good := &fakeProvider{name: "good", text: "42"}

	parse := func(out types.RawProviderOutput) (int, error) {
		var n int
		_, err := fmt.Sscanf(out.Text, "%d", &n)
		return n, err
	}

	result := Execute(context.Background(),
		[]provider.Client{bad, good},
		provider.Request{Kind: provider.KindEvaluation},
		parse, nil, -1, Options{})

	assert.Equal(t, 42, result)
}
