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

const geminiBaseURL = "https://generativelanguage.googleapis.com"

const geminiModel = "gemini-2.0-flash-lite"

// geminiBackend calls the Gemini generateContent API. Requires an API key.
type geminiBackend struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

type geminiRequest struct {
	Contents []struct {
		Parts []geminiPart `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		Temperature float64 `json:"temperature"`
	} `json:"generationConfig"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (b *geminiBackend) translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if b.apiKey == "" {
		return "", fmt.Errorf("%w: Gemini API key", common.ErrNotConfigured)
	}

	base := b.baseURL
	if base == "" {
		base = geminiBaseURL
	}

	prompt := fmt.Sprintf("Translate from %s to %s. Only return the translation, no explanations:\n\n%s",
		langName(sourceLang), langName(targetLang), text)

	var payload geminiRequest
	payload.Contents = make([]struct {
		Parts []geminiPart `json:"parts"`
	}, 1)
	payload.Contents[0].Parts = []geminiPart{{Text: prompt}}
	payload.GenerationConfig.Temperature = llmTemperature

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/v1/models/%s:generateContent?key=%s", base, geminiModel, b.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Gemini API error: %s - %s", resp.Status, detail)
	}

	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("invalid response from Gemini: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("invalid response from Gemini: no candidates")
	}

	return strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text), nil
}
