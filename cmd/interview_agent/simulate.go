package main

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/observability"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/session"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/types"
)

var simulateCommand = &cobra.Command{
	Use:   "simulate",
	Short: "Run concurrent self-driving sessions against the configured providers",
	Long: `Drives N complete interview sessions concurrently with synthetic answers.
Sessions share nothing, so this exercises provider fallback and the
state machine under parallel load. With no providers configured it runs
entirely on the deterministic canned content.`,
	RunE: simulateCmd,
}

var simulateSessions int

func init() {
	simulateCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	simulateCommand.Flags().IntVarP(&simulateSessions, "sessions", "n", 4, "Number of concurrent sessions")
	simulateCommand.Flags().StringVarP(&runRole, "role", "r", "", "Target role")
	simulateCommand.Flags().StringVarP(&runExperience, "experience", "e", "", "Experience band")
	simulateCommand.Flags().StringVar(&runCategory, "category", "", "Interview category: technical, behavioral, or mixed")
	simulateCommand.Flags().IntVarP(&runQuestionCount, "questions", "q", 0, "Number of questions per session (5-10)")
	simulateCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	simulateCommand.Flags().StringVar(&runLocalURL, "local-url", "", "Local OpenAI-compatible endpoint")
	simulateCommand.Flags().StringVar(&runLocalModel, "local-model", "", "Model name served by the local endpoint")
	simulateCommand.Flags().IntVar(&runTimeoutSecs, "timeout", 0, "Per-provider-call timeout in seconds")
	simulateCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(simulateCommand)
}

func simulateCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if simulateSessions < 1 {
		return fmt.Errorf("--sessions must be at least 1")
	}

	reg, closeProviders, err := buildRegistry(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeProviders()

	manager := buildManager(reg, cfg, nil)
	printer := observability.NewPrinter(os.Stdout)
	category := types.ParseCategory(cfg.Category)

	var completed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)

	for i := 0; i < simulateSessions; i++ {
		i := i
		g.Go(func() error {
			candidate := fmt.Sprintf("sim-%d", i)
			snap, err := manager.StartSession(gctx, candidate, cfg.Role, cfg.Experience, category)
			if err != nil {
				return fmt.Errorf("session %s failed to start: %w", candidate, err)
			}

			for q, question := range snap.Questions {
				answer := fmt.Sprintf(
					"As a %s I worked through a situation much like %q on a past project; my team and I developed a fix and learned from the outcome.",
					cfg.Role, question.Text)
				if _, err := manager.SubmitAnswer(gctx, snap.ID, session.AnswerInput{Ordinal: q, Text: answer}); err != nil {
					return fmt.Errorf("session %s answer %d: %w", candidate, q, err)
				}
			}

			result, err := manager.Result(snap.ID)
			if err != nil {
				return fmt.Errorf("session %s result: %w", candidate, err)
			}

			completed.Add(1)
			fmt.Printf("session %-8s score=%3d grade=%s\n", candidate, result.OverallScore, result.GradeLabel)
			if cfg.Verbose {
				printer.PrintEvaluation(result)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("\n%d/%d sessions completed\n", completed.Load(), simulateSessions)
	return nil
}
