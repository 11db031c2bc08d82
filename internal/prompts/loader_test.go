package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownKeys(t *testing.T) {
	for _, key := range []string{"generate-questions", "synthesize-evaluation", "transcribe-audio"} {
		prompt, err := Get(key)
		require.NoError(t, err, "key %s", key)
		assert.NotEmpty(t, prompt)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("no-such-prompt")
	assert.Error(t, err)
}

func TestMustGet_PanicsOnMissingKey(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("no-such-prompt")
	})
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	result := Format("Generate {{.Count}} questions for a {{.Role}}.", map[string]string{
		"Count": "10",
		"Role":  "Backend Engineer",
	})

	assert.Equal(t, "Generate 10 questions for a Backend Engineer.", result)
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	result := Format("Hello {{.Name}}", map[string]string{"Other": "x"})
	assert.Equal(t, "Hello {{.Name}}", result)
}

func TestKeys_ListsEverything(t *testing.T) {
	keys, err := Keys()
	require.NoError(t, err)
	assert.Contains(t, keys, "generate-questions")
	assert.Contains(t, keys, "synthesize-evaluation")
	assert.Contains(t, keys, "transcribe-audio")
}

func TestTranscriptionPromptAsksForTranscriptOnly(t *testing.T) {
	prompt := MustGet("transcribe-audio")
	assert.Contains(t, prompt, "transcript")
}

func TestQuestionPromptMentionsNumberedList(t *testing.T) {
	prompt := MustGet("generate-questions")
	assert.Contains(t, prompt, "Numbered list")
	assert.Contains(t, prompt, "{{.Role}}")
	assert.Contains(t, prompt, "{{.Seed}}")
}
