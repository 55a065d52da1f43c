package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Decolo/translate-note-web/internal/common"
)

const deepSeekBaseURL = "https://api.deepseek.com"

// translateSystemPrompt keeps LLM providers from adding commentary.
const translateSystemPrompt = "You are a professional translator. Translate the given text accurately and naturally. Only return the translation, no explanations."

// llmTemperature is kept low for deterministic output.
const llmTemperature = 0.3

// deepSeekBackend calls the DeepSeek chat-completions API. Requires an API key.
type deepSeekBackend struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (b *deepSeekBackend) translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if b.apiKey == "" {
		return "", fmt.Errorf("%w: DeepSeek API key", common.ErrNotConfigured)
	}

	base := b.baseURL
	if base == "" {
		base = deepSeekBaseURL
	}

	payload := chatCompletionRequest{
		Model: "deepseek-chat",
		Messages: []chatMessage{
			{Role: "system", Content: translateSystemPrompt},
			{Role: "user", Content: fmt.Sprintf("Translate from %s to %s: %s", langName(sourceLang), langName(targetLang), text)},
		},
		Temperature: llmTemperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+b.apiKey)

	resp, err := b.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("DeepSeek API error: %s - %s", resp.Status, detail)
	}

	var out chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("invalid response from DeepSeek: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("invalid response from DeepSeek: no choices")
	}

	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
