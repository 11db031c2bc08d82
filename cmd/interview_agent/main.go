// Package main provides the entry point for the AI Interview Mocker CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "interview_agent",
	Short: "AI-powered mock interview agent",
	Long:  "AI Interview Mocker conducts multi-step simulated interviews: it generates role-specific questions, collects typed or spoken answers, and synthesizes a structured evaluation with a score and letter grade.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
