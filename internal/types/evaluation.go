package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// QuestionFeedback is the per-question breakdown inside an EvaluationResult.
type QuestionFeedback struct {
	ID       string `json:"id" validate:"required"`
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer"`
	Score    int    `json:"score" validate:"min=0,max=100"`
	Feedback string `json:"feedback" validate:"required"`
}

// EvaluationResult is the finalized, immutable evaluation of a completed
// session. The core hands it to the caller at finalize and keeps no
// reference afterwards.
type EvaluationResult struct {
	SessionID    uuid.UUID          `json:"session_id"`
	CandidateID  string             `json:"candidate_id"`
	Role         string             `json:"role"`
	OverallScore int                `json:"overall_score" validate:"min=0,max=100"`
	GradeLabel   string             `json:"grade_label" validate:"required"`
	Summary      string             `json:"summary" validate:"required"`
	Strengths    []string           `json:"strengths" validate:"min=1,max=5,dive,required"`
	Weaknesses   []string           `json:"weaknesses" validate:"min=1,max=5,dive,required"`
	Suggestions  []string           `json:"suggestions" validate:"min=1,max=5,dive,required"`
	Questions    []QuestionFeedback `json:"questions" validate:"dive"`
	CreatedAt    time.Time          `json:"created_at"`
}

// Validate validates the EvaluationResult using the validator.
func (r *EvaluationResult) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
