package questions

import (
	"context"
	"fmt"
	"strings"

	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/prompts"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/provider"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/types"
)

// Canned question templates, keyed by category. {{.Role}} is substituted
// with the caller's target role at generation time. Mixed interviews take
// the first half of each list.
var technicalTemplates = []string{
	"Describe your experience with system design as a {{.Role}} and how you approach building scalable applications.",
	"Walk me through a challenging technical problem you solved. How did you approach it?",
	"Explain the key concepts you use for database optimization in your projects.",
	"What design patterns do you use most frequently in your {{.Role}} work and why?",
	"Describe your experience with code review and how you provide constructive feedback.",
	"How do you handle debugging complex issues in production environments?",
	"What tools and practices do you use for version control and collaboration?",
	"Explain a time when you had to refactor legacy code. What was your approach?",
	"How do you ensure code quality and maintainability in your projects?",
	"Describe your experience with testing strategies and automation.",
}

var behavioralTemplates = []string{
	"Tell me about a time you worked in a team and how you contributed to the project.",
	"Describe a conflict with a colleague and how you resolved it.",
	"Tell me about your greatest professional achievement as a {{.Role}}.",
	"How do you handle working under pressure and tight deadlines?",
	"Describe a time you had to learn something new quickly.",
	"Tell me about a failure and what you learned from it.",
	"How do you approach mentoring or helping junior team members?",
	"Describe your communication style and how you handle disagreements.",
	"Tell me about a time you took initiative on a project.",
	"How do you stay motivated and engaged in your work as a {{.Role}}?",
}

// cannedTemplates returns the template list for a category.
func cannedTemplates(category types.Category) []string {
	switch category {
	case types.CategoryTechnical:
		return technicalTemplates
	case types.CategoryBehavioral:
		return behavioralTemplates
	default:
		mixed := make([]string, 0, 10)
		mixed = append(mixed, technicalTemplates[:5]...)
		mixed = append(mixed, behavioralTemplates[:5]...)
		return mixed
	}
}

// CannedList renders the category-keyed canned question list with the role
// substituted, sized to count (clamped to the available list).
func CannedList(role string, category types.Category, count int) []types.Question {
	templates := cannedTemplates(category)
	if count < minQuestions {
		count = minQuestions
	}
	if count > len(templates) {
		count = len(templates)
	}

	questions := make([]types.Question, count)
	for i := 0; i < count; i++ {
		questions[i] = types.Question{
			Ordinal: i,
			Text:    prompts.Format(templates[i], map[string]string{"Role": role}),
		}
	}
	return questions
}

// CannedProvider is the deterministic last link of the question generation
// chain. It renders the canned list as numbered-list text so its output
// flows through the same parse and validation path as real providers.
type CannedProvider struct{}

var _ provider.Client = (*CannedProvider)(nil)

// Name identifies the provider in diagnostics.
func (CannedProvider) Name() string { return "canned" }

// Generate serves question requests only.
func (CannedProvider) Generate(_ context.Context, req provider.Request) (types.RawProviderOutput, error) {
	if req.Kind != provider.KindQuestions {
		return types.RawProviderOutput{}, provider.ErrUnsupported
	}

	list := CannedList(req.Role, req.Category, req.Count)
	var sb strings.Builder
	for _, q := range list {
		fmt.Fprintf(&sb, "%d. %s\n", q.Ordinal+1, q.Text)
	}
	return types.TextOutput(sb.String()), nil
}
