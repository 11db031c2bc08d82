package feedback

import (
	"fmt"
	"strings"

	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/types"
)

// genericKeywords signal that an answer draws on real experience. The
// candidate's role tokens are checked alongside these.
var genericKeywords = []string{"experience", "worked", "developed", "learned", "team", "project"}

// heuristicEvaluation builds a deterministic evaluation payload from simple
// signals over the raw answers: answer length and presence of role-relevant
// keywords. It is the last resort when every evaluation provider failed,
// and is always schema-valid.
func heuristicEvaluation(role string, qas []types.QA) rawEvaluation {
	keywords := relevantKeywords(role)

	questions := make([]rawQuestionFeedback, len(qas))
	total := 0
	answered := 0
	withKeywords := 0

	for i, qa := range qas {
		score, hasKeywords := heuristicAnswerScore(qa.Answer.Text, keywords)
		total += score
		if strings.TrimSpace(qa.Answer.Text) != "" {
			answered++
		}
		if hasKeywords {
			withKeywords++
		}

		questions[i] = rawQuestionFeedback{
			ID:       fmt.Sprintf("q%d", qa.Question.Ordinal+1),
			Question: qa.Question.Text,
			Answer:   qa.Answer.Text,
			Score:    float64(score),
			Feedback: heuristicAnswerFeedback(qa.Answer.Text, hasKeywords),
		}
	}

	overall := 0
	if len(qas) > 0 {
		overall = total / len(qas)
	}

	strengths := []string{"Clear and direct responses"}
	if withKeywords > len(qas)/2 {
		strengths = append(strengths, "Answers draw on concrete experience")
	}
	if answered == len(qas) && len(qas) > 0 {
		strengths = append(strengths, "Every question received an answer")
	}

	weaknesses := []string{"Automated review could not assess depth of technical detail"}
	if answered < len(qas) {
		weaknesses = append(weaknesses, "Some questions were left unanswered")
	}

	suggestions := []string{
		"Add specific examples with measurable outcomes",
		fmt.Sprintf("Practice structuring answers around your %s experience", role),
	}

	return rawEvaluation{
		OverallScore: float64(overall),
		Summary: fmt.Sprintf(
			"Automated assessment of %d answers for the %s interview. Scores are based on answer length and relevant experience signals; a reviewer-grade evaluation was unavailable.",
			len(qas), role),
		Strengths:   strengths,
		Weaknesses:  weaknesses,
		Suggestions: suggestions,
		Questions:   questions,
	}
}

// heuristicAnswerScore scores one answer on the canonical 0-100 scale.
// Base 50, +20 for substantial length, +10 for experience keywords, +10 for
// a comprehensive answer; very short answers are demoted with a floor of 30.
func heuristicAnswerScore(answer string, keywords []string) (int, bool) {
	trimmed := strings.TrimSpace(answer)
	lower := strings.ToLower(trimmed)

	hasKeywords := false
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			hasKeywords = true
			break
		}
	}

	score := 50
	if len(trimmed) > 100 {
		score += 20
	}
	if hasKeywords {
		score += 10
	}
	if len(trimmed) > 200 {
		score += 10
	}
	if score > 100 {
		score = 100
	}
	if len(trimmed) < 50 {
		score -= 10
		if score < 30 {
			score = 30
		}
	}

	return score, hasKeywords
}

// heuristicAnswerFeedback produces the per-question feedback line.
func heuristicAnswerFeedback(answer string, hasKeywords bool) string {
	trimmed := strings.TrimSpace(answer)
	switch {
	case trimmed == "":
		return "No answer was provided for this question."
	case len(trimmed) < 50:
		return "The response is very brief; expand it with specific examples and outcomes."
	case hasKeywords:
		return "The response addresses the question and references relevant experience; consider quantifying the impact."
	default:
		return "The response addresses the question; tie it more directly to your own experience."
	}
}

// relevantKeywords returns the generic experience keywords plus the
// lowercase tokens of the target role.
func relevantKeywords(role string) []string {
	keywords := make([]string, 0, len(genericKeywords)+2)
	keywords = append(keywords, genericKeywords...)
	for _, token := range strings.Fields(strings.ToLower(role)) {
		if len(token) > 2 {
			keywords = append(keywords, token)
		}
	}
	return keywords
}
