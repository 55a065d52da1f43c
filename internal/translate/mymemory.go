package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const myMemoryBaseURL = "https://api.mymemory.translated.net"

// myMemoryBackend calls the MyMemory free-tier GET API.
type myMemoryBackend struct {
	client  *http.Client
	baseURL string
}

type myMemoryResponse struct {
	ResponseStatus  int    `json:"responseStatus"`
	ResponseDetails string `json:"responseDetails"`
	ResponseData    struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
}

func (b *myMemoryBackend) translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	base := b.baseURL
	if base == "" {
		base = myMemoryBaseURL
	}

	params := url.Values{}
	params.Set("q", text)
	params.Set("langpair", sourceLang+"|"+targetLang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/get?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("MyMemory API error: %s", resp.Status)
	}

	var body myMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("invalid response from MyMemory: %w", err)
	}
	if body.ResponseStatus != http.StatusOK {
		if body.ResponseDetails != "" {
			return "", fmt.Errorf("MyMemory: %s", body.ResponseDetails)
		}
		return "", fmt.Errorf("MyMemory: translation failed with status %d", body.ResponseStatus)
	}

	return body.ResponseData.TranslatedText, nil
}
