package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/session"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/store"
	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/types"
)

// newStoreHandler adapts the results store to the session manager's
// completion event. A storage failure is reported but never blocks the
// candidate from receiving their evaluation.
func newStoreHandler(ctx context.Context, database *store.DB) session.CompletionHandler {
	return func(sessionID uuid.UUID, result *types.EvaluationResult) {
		if err := database.SaveResult(ctx, result); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to store result for session %s: %v\n", sessionID, err)
		}
	}
}
