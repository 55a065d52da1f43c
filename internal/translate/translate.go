// Package translate routes a translation request to one of several outbound
// provider adapters and normalizes the response and error shapes. Adapters are
// stateless; there is no retry and no fallback between providers.
package translate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Decolo/translate-note-web/internal/common"
)

// Provider selects a translation backend.
type Provider string

const (
	ProviderMyMemory  Provider = "mymemory"
	ProviderLingva    Provider = "lingva"
	ProviderGoogleWeb Provider = "googletranslate"
	ProviderDeepSeek  Provider = "deepseek"
	ProviderGemini    Provider = "gemini"
)

// DefaultProvider is used when a request does not name one.
const DefaultProvider = ProviderGoogleWeb

// Request describes one translation call.
type Request struct {
	Text       string
	SourceLang string
	TargetLang string
	Provider   Provider
}

// Result is the normalized response shape.
type Result struct {
	TranslatedText string
	Provider       Provider
}

// Config carries the optional provider secrets. Empty keys leave the
// corresponding LLM adapter unconfigured.
type Config struct {
	DeepSeekAPIKey string
	GeminiAPIKey   string
}

// backend is the capability each provider adapter implements.
type backend interface {
	translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// Translator dispatches requests over a per-provider adapter table.
type Translator struct {
	backends map[Provider]backend
}

// New builds a Translator with all five adapters registered.
func New(cfg Config) *Translator {
	client := &http.Client{Timeout: 30 * time.Second}
	return &Translator{
		backends: map[Provider]backend{
			ProviderMyMemory:  &myMemoryBackend{client: client},
			ProviderLingva:    &lingvaBackend{client: client},
			ProviderGoogleWeb: &googleWebBackend{client: client},
			ProviderDeepSeek:  &deepSeekBackend{client: client, apiKey: cfg.DeepSeekAPIKey},
			ProviderGemini:    &geminiBackend{client: client, apiKey: cfg.GeminiAPIKey},
		},
	}
}

// Translate resolves the provider (DefaultProvider when unset) and runs its
// adapter. Adapter failures surface as a single error carrying the original
// message; missing-key configuration errors pass through unchanged.
func (t *Translator) Translate(ctx context.Context, req Request) (*Result, error) {
	provider := req.Provider
	if provider == "" {
		provider = DefaultProvider
	}

	b, ok := t.backends[provider]
	if !ok {
		return nil, fmt.Errorf("%w: unknown provider %q", common.ErrValidation, provider)
	}

	text, err := b.translate(ctx, req.Text, req.SourceLang, req.TargetLang)
	if err != nil {
		if errors.Is(err, common.ErrNotConfigured) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}

	return &Result{TranslatedText: text, Provider: provider}, nil
}
