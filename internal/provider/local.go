package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/types"
)

// Local calls an OpenAI-compatible endpoint (Ollama, LM Studio, vLLM,
// speaches, etc.). Text generation goes through the chat completions API;
// transcription goes through the Whisper-style audio transcriptions API.
type Local struct {
	url    string // e.g. "http://localhost:11434"
	model  string // e.g. "qwen3-8b"
	client *http.Client
}

var _ Client = (*Local)(nil)

// NewLocal creates a provider that calls the given local LLM endpoint.
func NewLocal(url, model string) *Local {
	return &Local{
		url:   url,
		model: model,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// Name identifies the provider in diagnostics.
func (l *Local) Name() string {
	return "local-" + l.model
}

// Generate serves question and evaluation requests through the chat
// completions API and transcription requests through the audio API.
func (l *Local) Generate(ctx context.Context, req Request) (types.RawProviderOutput, error) {
	switch req.Kind {
	case KindQuestions, KindEvaluation:
	case KindTranscription:
		text, err := l.transcribe(ctx, req.Audio, req.AudioMIME)
		if err != nil {
			return types.RawProviderOutput{}, err
		}
		return types.TextOutput(text), nil
	default:
		return types.RawProviderOutput{}, ErrUnsupported
	}

	content, err := l.chat(ctx, req.Prompt)
	if err != nil {
		return types.RawProviderOutput{}, err
	}

	if req.Kind == KindEvaluation {
		// Small local models wrap JSON in prose; extract the outermost object.
		if obj := extractJSON(content); obj != "" {
			content = obj
		}
	}

	return types.TextOutput(content), nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// chat sends a single request to the endpoint and returns the raw text response.
func (l *Local) chat(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: l.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: 0,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.url+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("local LLM request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("local LLM returned status %d", resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode local LLM response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("local LLM returned no choices")
	}

	content := chatResp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("local LLM returned empty content")
	}

	return content, nil
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

// transcribe posts the audio to the Whisper-style transcriptions endpoint
// and returns the transcript text.
func (l *Local) transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("no audio data provided")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "answer"+audioExt(mimeType))
	if err != nil {
		return "", fmt.Errorf("failed to build form file: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("failed to write audio data: %w", err)
	}
	if err := writer.WriteField("model", l.model); err != nil {
		return "", fmt.Errorf("failed to write model field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finish form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.url+"/v1/audio/transcriptions", &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("local transcription request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("local transcription returned status %d", resp.StatusCode)
	}

	var tr transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("failed to decode transcription response: %w", err)
	}
	if tr.Text == "" {
		return "", fmt.Errorf("local transcription returned empty text")
	}

	return tr.Text, nil
}

// audioExt picks a filename extension for the upload form; some servers
// sniff the container format from it.
func audioExt(mimeType string) string {
	switch mimeType {
	case "audio/wav", "audio/x-wav":
		return ".wav"
	case "audio/mpeg", "audio/mp3":
		return ".mp3"
	case "audio/ogg":
		return ".ogg"
	default:
		return ".webm"
	}
}

// extractJSON finds the outermost JSON object in a string. It handles
// nested braces correctly and skips braces inside quoted strings.
func extractJSON(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, ch := range s {
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		if ch == '{' {
			if depth == 0 {
				start = i
			}
			depth++
		} else if ch == '}' {
			depth--
			if depth == 0 && start != -1 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
