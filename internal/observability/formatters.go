// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/fallback"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintQuestions outputs the generated question set.
func (p *Printer) PrintQuestions(questions []types.Question) {
	if len(questions) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generated %d questions:\n\n", len(questions)))

	count := min(len(questions), maxItemsToShow)
	for i := 0; i < count; i++ {
		text := questions[i].Text
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", questions[i].Ordinal+1, text))
	}

	if len(questions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more questions", len(questions)-maxItemsToShow))
	}

	p.printBox("INTERVIEW QUESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnswer outputs one recorded answer with its provenance tag.
func (p *Printer) PrintAnswer(answer types.Answer) {
	var sb strings.Builder

	text := answer.Text
	if len(text) > 50 {
		text = text[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("Answer:     %s\n", text))
	sb.WriteString(fmt.Sprintf("Provenance: %s", answer.Provenance))
	if answer.AudioRef != "" {
		sb.WriteString(fmt.Sprintf("\nAudio:      %s", answer.AudioRef))
	}

	p.printBox(fmt.Sprintf("ANSWER %d RECORDED", answer.Ordinal+1), sb.String())
}

// PrintEvaluation outputs the finalized evaluation result.
func (p *Printer) PrintEvaluation(result *types.EvaluationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:   %d/100\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Grade:   %s\n", result.GradeLabel))
	sb.WriteString("\n")

	summary := result.Summary
	if len(summary) > 50 {
		summary = summary[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("Summary: %s\n", summary))

	if len(result.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		for _, s := range result.Strengths {
			if len(s) > 50 {
				s = s[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}

	if len(result.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		count := min(len(result.Suggestions), 3)
		for i := 0; i < count; i++ {
			s := result.Suggestions[i]
			if len(s) > 50 {
				s = s[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
		if len(result.Suggestions) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Suggestions)-3))
		}
	}

	if len(result.Questions) > 0 {
		sb.WriteString("\nPer-question scores:\n")
		count := min(len(result.Questions), maxItemsToShow)
		for i := 0; i < count; i++ {
			qf := result.Questions[i]
			sb.WriteString(fmt.Sprintf("  %s: %d/100\n", qf.ID, qf.Score))
		}
		if len(result.Questions) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Questions)-maxItemsToShow))
		}
	}

	p.printBox("INTERVIEW EVALUATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSessionHeader outputs the session parameters at start.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSessionHeader(role, experience string, category types.Category, count int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:       %s\n", role))
	sb.WriteString(fmt.Sprintf("Experience: %s\n", experience))
	sb.WriteString(fmt.Sprintf("Category:   %s\n", category))
	sb.WriteString(fmt.Sprintf("Questions:  %d", count))

	p.printBox("MOCK INTERVIEW SESSION", sb.String())
}

// AttemptObserver returns a fallback.Observer that prints one diagnostic
// line per provider attempt: provider, request kind, outcome, latency.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) AttemptObserver() fallback.Observer {
	return func(a fallback.Attempt) {
		line := fmt.Sprintf("[provider] %-14s %-13s %-7s %s",
			a.Provider, a.RequestKind, a.Outcome, a.Latency.Round(time.Millisecond))
		if a.Err != nil {
			line += fmt.Sprintf("  (%v)", a.Err)
		}
		fmt.Fprintln(p.out, line)
	}
}
