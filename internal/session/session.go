// Package session implements the interview lifecycle: question generation
// at start, strictly ordered answer collection, and exactly-once feedback
// synthesis at finalize. It is the only writer of session state; the
// generation, transcription, and evaluation components are invoked from
// here and never mutate a session themselves.
package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/types"
)

// State is a session's lifecycle position.
type State string

// Session lifecycle states. Answering carries the current ordinal in
// Session.current; Completed and Abandoned are terminal.
const (
	StateCreated     State = "created"
	StateQuestioning State = "questioning"
	StateAnswering   State = "answering"
	StateFinalizing  State = "finalizing"
	StateCompleted   State = "completed"
	StateAbandoned   State = "abandoned"
)

func (s State) String() string { return string(s) }

// terminal reports whether no further transitions are possible.
func (s State) terminal() bool {
	return s == StateCompleted || s == StateAbandoned
}

// session is the mutable aggregate behind a live interview. All access goes
// through the Manager, which serializes operations per session.
type session struct {
	id          uuid.UUID
	candidateID string
	role        string
	experience  string
	category    types.Category

	state     State
	questions []types.Question
	answers   []types.Answer
	current   int

	result *types.EvaluationResult

	// ctx is cancelled on abandon so in-flight provider chains stop
	// consuming providers for this session.
	ctx    context.Context
	cancel context.CancelFunc
}

// qaPairs zips questions with their answers for feedback synthesis.
func (s *session) qaPairs() []types.QA {
	qas := make([]types.QA, len(s.answers))
	for i, a := range s.answers {
		qas[i] = types.QA{Question: s.questions[i], Answer: a}
	}
	return qas
}

// snapshot returns the caller-facing copy of the session.
func (s *session) snapshot() Snapshot {
	questions := make([]types.Question, len(s.questions))
	copy(questions, s.questions)
	answers := make([]types.Answer, len(s.answers))
	copy(answers, s.answers)

	return Snapshot{
		ID:          s.id,
		CandidateID: s.candidateID,
		Role:        s.role,
		Experience:  s.experience,
		Category:    s.category,
		State:       s.state,
		Questions:   questions,
		Answers:     answers,
		Current:     s.current,
	}
}

// Snapshot is a read-only copy of a session's state, safe to retain after
// the call that produced it.
type Snapshot struct {
	ID          uuid.UUID
	CandidateID string
	Role        string
	Experience  string
	Category    types.Category
	State       State
	Questions   []types.Question
	Answers     []types.Answer
	// Current is the ordinal the session is waiting on while answering.
	Current int
}

// Remaining is the number of questions still unanswered.
func (s Snapshot) Remaining() int {
	return len(s.Questions) - len(s.Answers)
}
