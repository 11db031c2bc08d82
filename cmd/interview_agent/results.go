package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/store"
)

var resultsCommand = &cobra.Command{
	Use:   "results",
	Short: "List stored interview results",
	Long:  "Lists recent evaluations from the results database, newest first. Requires a database URL via --db-url, config, or DATABASE_URL.",
	RunE:  listResultsCmd,
}

var (
	resultsCandidateID string
	resultsLimit       int
)

func init() {
	resultsCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file")
	resultsCommand.Flags().StringVar(&resultsCandidateID, "candidate-id", "", "Filter by candidate identifier")
	resultsCommand.Flags().IntVar(&resultsLimit, "limit", 20, "Maximum number of results to list")
	resultsCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(resultsCommand)
}

func listResultsCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	database, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	records, err := database.ListRecent(ctx, resultsCandidateID, resultsLimit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No stored results.")
		return nil
	}

	w := os.Stdout
	fmt.Fprintf(w, "%-36s  %-16s  %-24s  %5s  %5s  %s\n", "SESSION", "CANDIDATE", "ROLE", "SCORE", "GRADE", "WHEN")
	for _, r := range records {
		fmt.Fprintf(w, "%-36s  %-16s  %-24s  %5d  %5s  %s\n",
			r.SessionID, r.CandidateID, r.Role, r.OverallScore, r.GradeLabel,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
