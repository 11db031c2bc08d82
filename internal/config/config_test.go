package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"role": "Backend Engineer",
		"experience": "Mid",
		"category": "technical",
		"question_count": 7,
		"local_url": "http://localhost:11434",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "Backend Engineer", cfg.Role)
	assert.Equal(t, "Mid", cfg.Experience)
	assert.Equal(t, "technical", cfg.Category)
	assert.Equal(t, 7, cfg.QuestionCount)
	assert.Equal(t, "http://localhost:11434", cfg.LocalURL)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_BadCategory(t *testing.T) {
	cfg := &Config{Category: "trivia"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "category")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{QuestionCount: -1}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "question_count")
}

func TestValidate_BadLocalURL(t *testing.T) {
	cfg := &Config{LocalURL: "localhost without scheme"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "local_url")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Role:          "Backend Engineer",
		Category:      "mixed",
		QuestionCount: 10,
		TimeoutSecs:   30,
		LocalURL:      "http://localhost:11434",
	}

	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Role: "Data Engineer", Verbose: true}
	defaults := Config{
		Role:          "Backend Engineer",
		Experience:    "Mid",
		Category:      "technical",
		QuestionCount: 10,
		APIKey:        "key-from-file",
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "Data Engineer", merged.Role, "explicit value wins")
	assert.Equal(t, "Mid", merged.Experience)
	assert.Equal(t, "technical", merged.Category)
	assert.Equal(t, 10, merged.QuestionCount)
	assert.Equal(t, "key-from-file", merged.APIKey)
	assert.True(t, merged.Verbose)
}
