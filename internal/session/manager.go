package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/feedback"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/questions"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/transcription"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/types"
)

// defaultQuestionCount is the number of questions requested per session
// when the caller does not configure one.
const defaultQuestionCount = 10

// CompletionHandler receives each finalized evaluation exactly once, at the
// moment the session completes. It runs on the submitting caller's
// goroutine; keep it cheap or hand off.
type CompletionHandler func(sessionID uuid.UUID, result *types.EvaluationResult)

// AnswerInput carries one answer submission. Audio, when present, is routed
// through the transcription pipeline with Text as the caller-supplied
// fallback; otherwise Text is recorded directly.
type AnswerInput struct {
	Ordinal   int
	Text      string
	Audio     []byte
	AudioMIME string
	AudioRef  string
}

// Manager owns every live session and serializes operations per session.
// Independent sessions share nothing and may progress concurrently.
type Manager struct {
	generator   *questions.Generator
	transcriber *transcription.Pipeline
	synthesizer *feedback.Synthesizer

	questionCount int
	onCompleted   CompletionHandler

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
	locks    map[uuid.UUID]*sync.Mutex
}

// Option configures a Manager.
type Option func(*Manager)

// WithQuestionCount sets how many questions each session requests. The
// generator clamps the value to its supported range.
func WithQuestionCount(n int) Option {
	return func(m *Manager) { m.questionCount = n }
}

// WithCompletionHandler registers the push-style completion event. Results
// remain claimable through Result either way.
func WithCompletionHandler(h CompletionHandler) Option {
	return func(m *Manager) { m.onCompleted = h }
}

// NewManager wires the session coordinator over the three pipelines.
func NewManager(gen *questions.Generator, tr *transcription.Pipeline, synth *feedback.Synthesizer, opts ...Option) *Manager {
	m := &Manager{
		generator:     gen,
		transcriber:   tr,
		synthesizer:   synth,
		questionCount: defaultQuestionCount,
		sessions:      make(map[uuid.UUID]*session),
		locks:         make(map[uuid.UUID]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// StartSession creates a session, generates its questions, and leaves it
// waiting on the first answer. Question generation degrades through the
// fallback chain, so this fails only on caller misuse, never on provider
// trouble.
func (m *Manager) StartSession(ctx context.Context, candidateID, role, experience string, category types.Category) (Snapshot, error) {
	s := &session{
		id:          uuid.New(),
		candidateID: strings.TrimSpace(candidateID),
		role:        strings.TrimSpace(role),
		experience:  strings.TrimSpace(experience),
		category:    category,
		state:       StateCreated,
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())

	lock := &sync.Mutex{}
	lock.Lock()
	defer lock.Unlock()

	m.mu.Lock()
	m.sessions[s.id] = s
	m.locks[s.id] = lock
	m.mu.Unlock()

	s.state = StateQuestioning
	callCtx, stop := m.callContext(ctx, s)
	s.questions = m.generator.Generate(callCtx, s.role, s.experience, s.category, m.questionCount)
	stop()

	s.state = StateAnswering
	s.current = 0
	return s.snapshot(), nil
}

// SubmitAnswer records the answer for the session's current ordinal and
// advances. Submissions must arrive strictly in order, one per question; an
// ordinal other than the current one is rejected with a StateViolationError
// and the session is left untouched. The last answer triggers finalization
// before returning.
func (m *Manager) SubmitAnswer(ctx context.Context, id uuid.UUID, in AnswerInput) (Snapshot, error) {
	s, lock, err := m.acquire(id)
	if err != nil {
		return Snapshot{}, err
	}
	defer lock.Unlock()

	if s.state != StateAnswering {
		return Snapshot{}, &StateViolationError{
			SessionID: id, State: s.state, Op: "submit-answer",
			Reason: "session is not accepting answers",
		}
	}
	if in.Ordinal != s.current {
		return Snapshot{}, &StateViolationError{
			SessionID: id, State: s.state, Op: "submit-answer",
			Reason: "answers must be submitted in order, one per question",
		}
	}

	callCtx, stop := m.callContext(ctx, s)
	defer stop()

	answer := types.Answer{
		Ordinal:    in.Ordinal,
		Text:       strings.TrimSpace(in.Text),
		AudioRef:   in.AudioRef,
		Provenance: types.ProvenanceDirectText,
	}
	if len(in.Audio) > 0 {
		answer.Text, answer.Provenance = m.transcriber.Transcribe(callCtx, in.Audio, in.AudioMIME, in.Text)
	}

	s.answers = append(s.answers, answer)
	s.current++

	if s.current < len(s.questions) {
		return s.snapshot(), nil
	}

	m.finalize(callCtx, s)
	return s.snapshot(), nil
}

// finalize runs the single batched feedback synthesis for the session.
// The state machine reaches Finalizing exactly once, so the synthesizer is
// invoked exactly once per session regardless of question count.
func (m *Manager) finalize(ctx context.Context, s *session) {
	s.state = StateFinalizing

	result := m.synthesizer.Synthesize(ctx, s.role, s.experience, s.category, s.qaPairs())
	result.SessionID = s.id
	result.CandidateID = s.candidateID
	result.Role = s.role
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now().UTC()
	}

	s.result = result
	s.state = StateCompleted
	s.cancel()

	if m.onCompleted != nil {
		m.onCompleted(s.id, result)
	}
}

// AbandonSession terminates a session from any non-terminal state. It
// cancels the session's context first, so provider chains already running
// on its behalf stop consuming providers, then clears the session's data.
func (m *Manager) AbandonSession(id uuid.UUID) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return ErrUnknownSession
	}

	// Cancel before taking the session lock: an in-flight submission
	// holds the lock while it talks to providers, and cancelling is what
	// unblocks it.
	s.cancel()

	_, lock, err := m.acquire(id)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	if s.state.terminal() {
		return &StateViolationError{
			SessionID: id, State: s.state, Op: "abandon",
			Reason: "session already finished",
		}
	}

	s.state = StateAbandoned
	s.questions = nil
	s.answers = nil
	s.result = nil
	m.remove(id)
	return nil
}

// Result claims a completed session's evaluation. The hand-off is
// exactly-once: the session is destroyed and a second call reports
// ErrUnknownSession. The caller owns the result from then on.
func (m *Manager) Result(id uuid.UUID) (*types.EvaluationResult, error) {
	s, lock, err := m.acquire(id)
	if err != nil {
		return nil, err
	}
	defer lock.Unlock()

	if s.state != StateCompleted {
		return nil, &StateViolationError{
			SessionID: id, State: s.state, Op: "result",
			Reason: "session has not completed",
		}
	}
	if s.result == nil {
		// A racing claim won between lookup and lock.
		return nil, ErrUnknownSession
	}

	result := s.result
	s.result = nil
	m.remove(id)
	return result, nil
}

// Snapshot returns the current read-only view of a live session.
func (m *Manager) Snapshot(id uuid.UUID) (Snapshot, error) {
	s, lock, err := m.acquire(id)
	if err != nil {
		return Snapshot{}, err
	}
	defer lock.Unlock()
	return s.snapshot(), nil
}

// acquire looks up a live session and takes its per-session lock.
func (m *Manager) acquire(id uuid.UUID) (*session, *sync.Mutex, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	lock := m.locks[id]
	m.mu.Unlock()
	if !ok {
		return nil, nil, ErrUnknownSession
	}
	lock.Lock()
	return s, lock, nil
}

// remove drops a session from the registry. Callers hold the session lock.
func (m *Manager) remove(id uuid.UUID) {
	m.mu.Lock()
	delete(m.sessions, id)
	delete(m.locks, id)
	m.mu.Unlock()
}

// callContext bounds a provider-facing call by both the caller's context
// and the session's lifetime, so an abandon signal interrupts it.
func (m *Manager) callContext(ctx context.Context, s *session) (context.Context, context.CancelFunc) {
	callCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(s.ctx, func() { cancel() })
	return callCtx, func() {
		stop()
		cancel()
	}
}
