package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/fallback"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/observability"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/questions"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/types"
)

var questionsCommand = &cobra.Command{
	Use:   "questions",
	Short: "Generate an interview question set without starting a session",
	Long:  "Generates questions for the target role and prints them. Useful for previewing what a session would ask and for checking provider connectivity.",
	RunE:  generateQuestionsCmd,
}

func init() {
	questionsCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	questionsCommand.Flags().StringVarP(&runRole, "role", "r", "", "Target role, e.g. \"Backend Engineer\"")
	questionsCommand.Flags().StringVarP(&runExperience, "experience", "e", "", "Experience band, e.g. Junior, Mid, Senior")
	questionsCommand.Flags().StringVar(&runCategory, "category", "", "Interview category: technical, behavioral, or mixed")
	questionsCommand.Flags().IntVarP(&runQuestionCount, "questions", "q", 0, "Number of questions (5-10)")
	questionsCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	questionsCommand.Flags().StringVar(&runLocalURL, "local-url", "", "Local OpenAI-compatible endpoint")
	questionsCommand.Flags().StringVar(&runLocalModel, "local-model", "", "Model name served by the local endpoint")
	questionsCommand.Flags().IntVar(&runTimeoutSecs, "timeout", 0, "Per-provider-call timeout in seconds")
	questionsCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(questionsCommand)
}

func generateQuestionsCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	reg, closeProviders, err := buildRegistry(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeProviders()

	printer := observability.NewPrinter(os.Stdout)
	var observer fallback.Observer
	if cfg.Verbose {
		observer = printer.AttemptObserver()
	}

	gen := questions.NewGenerator(reg.Generation, questions.WithObserver(observer))
	list := gen.Generate(ctx, cfg.Role, cfg.Experience, types.ParseCategory(cfg.Category), cfg.QuestionCount)

	for _, q := range list {
		fmt.Printf("%d. %s\n", q.Ordinal+1, q.Text)
	}
	return nil
}
