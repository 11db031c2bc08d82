package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_HasAllTiers(t *testing.T) {
	config := DefaultConfig()

	assert.NotEmpty(t, config.GetModel(TierFast))
	assert.NotEmpty(t, config.GetModel(TierStandard))
	assert.NotEmpty(t, config.GetModel(TierAdvanced))
}

func TestGetModel_FallsBackToCheaperTier(t *testing.T) {
	config := &Config{
		Models: map[ModelTier]string{
			TierFast: "fast-model",
		},
	}

	assert.Equal(t, "fast-model", config.GetModel(TierAdvanced))
	assert.Equal(t, "fast-model", config.GetModel(TierStandard))
}

func TestGetModel_EmptyConfig(t *testing.T) {
	config := &Config{Models: map[ModelTier]string{}}
	assert.Empty(t, config.GetModel(TierStandard))
}

func TestWithModel_DoesNotMutateOriginal(t *testing.T) {
	original := DefaultConfig()
	originalAdvanced := original.GetModel(TierAdvanced)

	modified := original.WithModel(TierAdvanced, "custom-model")

	assert.Equal(t, "custom-model", modified.GetModel(TierAdvanced))
	assert.Equal(t, originalAdvanced, original.GetModel(TierAdvanced))
}

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain json", `{"score": 8}`, `{"score": 8}`},
		{"json fence", "```json\n{\"score\": 8}\n```", `{"score": 8}`},
		{"bare fence", "```\n{\"score\": 8}\n```", `{"score": 8}`},
		{"surrounding whitespace", "  {\"score\": 8}  ", `{"score": 8}`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), DefaultConfig(), "")
	assert.Error(t, err)
}
