package llm

import "fmt"

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// openrouterModels maps the same friendly names the native providers use to
// their OpenRouter slugs, so switching providers does not mean relearning
// model names. Anything else is passed through as a raw slug.
var openrouterModels = map[string]string{
	"claude-haiku":      "anthropic/claude-haiku-4.5",
	"gemini-flash":      "google/gemini-2.0-flash-001",
	"gemini-flash-lite": "google/gemini-2.0-flash-lite-001",
	"gpt-4o-mini":       "openai/gpt-4o-mini",
}

// OpenRouterProvider routes judge traffic through OpenRouter. The API is
// OpenAI-compatible, so the OpenAI transport is reused underneath.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	oaiCfg := OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   resolveModel(cfg.Model, openrouterModels),
		BaseURL: baseURL,
	}

	inner, err := newOpenAIProviderRaw(oaiCfg)
	if err != nil {
		return nil, err
	}

	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}
