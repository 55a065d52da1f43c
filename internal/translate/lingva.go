package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const lingvaBaseURL = "https://lingva.ml"

// lingvaBackend calls the Lingva public GET API.
type lingvaBackend struct {
	client  *http.Client
	baseURL string
}

type lingvaResponse struct {
	Translation string `json:"translation"`
}

func (b *lingvaBackend) translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	base := b.baseURL
	if base == "" {
		base = lingvaBaseURL
	}

	endpoint := fmt.Sprintf("%s/api/v1/%s/%s/%s", base, sourceLang, targetLang, url.PathEscape(text))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Lingva API error: %s", resp.Status)
	}

	var body lingvaResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("invalid response from Lingva: %w", err)
	}
	if body.Translation == "" {
		return "", fmt.Errorf("invalid response from Lingva: missing translation")
	}

	return body.Translation, nil
}
