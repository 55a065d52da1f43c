package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const googleWebBaseURL = "https://translate.googleapis.com"

// googleWebBackend calls the public web-translate endpoint. The response is a
// nested array-of-arrays; long input is chunked across multiple segments that
// must be reassembled in order.
type googleWebBackend struct {
	client  *http.Client
	baseURL string
}

func (b *googleWebBackend) translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	base := b.baseURL
	if base == "" {
		base = googleWebBaseURL
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", sourceLang)
	params.Set("tl", targetLang)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/translate_a/single?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Google Translate API error: %s", resp.Status)
	}

	var payload []any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("invalid response from Google Translate: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("invalid response from Google Translate")
	}

	segments, ok := payload[0].([]any)
	if !ok {
		return "", fmt.Errorf("invalid response from Google Translate")
	}

	var sb strings.Builder
	found := 0
	for _, seg := range segments {
		parts, ok := seg.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if s, ok := parts[0].(string); ok {
			sb.WriteString(s)
			found++
		}
	}
	if found == 0 {
		return "", fmt.Errorf("invalid response from Google Translate")
	}

	return sb.String(), nil
}
