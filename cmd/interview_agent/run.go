package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/config"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/fallback"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/observability"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/session"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/store"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/types"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Conduct an interactive mock interview",
	Long: `Starts a mock interview session: generates questions for the target role,
reads answers from stdin one question at a time, and prints the structured
evaluation when the last answer is in. Type /audio <path> instead of an
answer to submit a recorded answer for transcription; type /quit to abandon.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runInterviewCmd,
}

var (
	runConfigPath    string
	runRole          string
	runExperience    string
	runCategory      string
	runCandidateID   string
	runQuestionCount int
	runAPIKey        string
	runLocalURL      string
	runLocalModel    string
	runDatabaseURL   string
	runTimeoutSecs   int
	runVerbose       bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runRole, "role", "r", "", "Target role, e.g. \"Backend Engineer\"")
	runCommand.Flags().StringVarP(&runExperience, "experience", "e", "", "Experience band, e.g. Junior, Mid, Senior")
	runCommand.Flags().StringVar(&runCategory, "category", "", "Interview category: technical, behavioral, or mixed")
	runCommand.Flags().StringVar(&runCandidateID, "candidate-id", "", "Candidate identifier recorded on the result")
	runCommand.Flags().IntVarP(&runQuestionCount, "questions", "q", 0, "Number of questions per session (5-10)")
	runCommand.Flags().StringVar(&runLocalURL, "local-url", "", "Local OpenAI-compatible endpoint, e.g. http://localhost:11434")
	runCommand.Flags().StringVar(&runLocalModel, "local-model", "", "Model name served by the local endpoint")
	runCommand.Flags().IntVar(&runTimeoutSecs, "timeout", 0, "Per-provider-call timeout in seconds")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for result persistence
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

// resolveConfig loads the optional config file, applies explicit CLI
// overrides, fills defaults, and validates. Shared by run and simulate.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// CLI overrides: only apply when the flag was explicitly set
	if cmd.Flags().Changed("role") {
		cfg.Role = runRole
	}
	if cmd.Flags().Changed("experience") {
		cfg.Experience = runExperience
	}
	if cmd.Flags().Changed("category") {
		cfg.Category = runCategory
	}
	if cmd.Flags().Changed("candidate-id") {
		cfg.CandidateID = runCandidateID
	}
	if cmd.Flags().Changed("questions") {
		cfg.QuestionCount = runQuestionCount
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("local-url") {
		cfg.LocalURL = runLocalURL
	}
	if cmd.Flags().Changed("local-model") {
		cfg.LocalModel = runLocalModel
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSecs = runTimeoutSecs
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	defaults := config.Config{
		Role:          "Software Engineer",
		Experience:    "Mid",
		Category:      "mixed",
		CandidateID:   "anonymous",
		QuestionCount: 10,
		TimeoutSecs:   60,
	}
	cfg = cfg.MergeWithDefaults(defaults)

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	return cfg, cfg.Validate()
}

func runInterviewCmd(cmd *cobra.Command, _ []string) error {
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

	// Optional persistence: results are stored as they complete.
	var opts []session.Option
	if cfg.DatabaseURL != "" {
		database, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		opts = append(opts, session.WithCompletionHandler(newStoreHandler(ctx, database)))
	}

	manager := buildManager(reg, cfg, observer, opts...)

	category := types.ParseCategory(cfg.Category)
	printer.PrintSessionHeader(cfg.Role, cfg.Experience, category, cfg.QuestionCount)

	snap, err := manager.StartSession(ctx, cfg.CandidateID, cfg.Role, cfg.Experience, category)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	for i, q := range snap.Questions {
		fmt.Printf("\nQ%d/%d: %s\n> ", i+1, len(snap.Questions), q.Text)

		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("failed to read answer: %w", err)
		}
		line = strings.TrimSpace(line)

		if line == "/quit" {
			if err := manager.AbandonSession(snap.ID); err != nil {
				return err
			}
			fmt.Println("Interview abandoned.")
			return nil
		}

		input := session.AnswerInput{Ordinal: i, Text: line}
		if path, ok := strings.CutPrefix(line, "/audio "); ok {
			audio, readErr := os.ReadFile(strings.TrimSpace(path))
			if readErr != nil {
				return fmt.Errorf("failed to read audio file: %w", readErr)
			}
			input.Text = ""
			input.Audio = audio
			input.AudioMIME = "audio/webm"
			input.AudioRef = path
		}

		next, err := manager.SubmitAnswer(ctx, snap.ID, input)
		if err != nil {
			return err
		}
		if cfg.Verbose {
			printer.PrintAnswer(next.Answers[len(next.Answers)-1])
		}
		snap = next
	}

	result, err := manager.Result(snap.ID)
	if err != nil {
		return err
	}

	printer.PrintEvaluation(result)
	return nil
}
