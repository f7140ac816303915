package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider speaks the OpenAI chat completions API. It also serves
// Ollama and other OpenAI-compatible servers through a custom base URL.
type OpenAIProvider struct {
	name   string
	model  string
	client *openai.Client
}

func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	return &OpenAIProvider{
		name:   "openai",
		model:  model,
		client: openai.NewClient(apiKey),
	}
}

// NewOllamaProvider targets an Ollama server via its OpenAI-compatible
// endpoint. No API key is required; Ollama ignores the auth header.
func NewOllamaProvider(baseURL, model string) *OpenAIProvider {
	cfg := openai.DefaultConfig("ollama")
	cfg.BaseURL = normalizeBaseURL(baseURL)
	return &OpenAIProvider{
		name:   "ollama",
		model:  model,
		client: openai.NewClientWithConfig(cfg),
	}
}

func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasSuffix(baseURL, "/v1") {
		baseURL += "/v1"
	}
	return baseURL
}

// Name identifies the provider and model, e.g. "openai/gpt-3.5-turbo".
func (p *OpenAIProvider) Name() string {
	return p.name + "/" + p.model
}

func (p *OpenAIProvider) Generate(ctx context.Context, system, user string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
	})
	if err != nil {
		return "", p.classifyError(err)
	}
	if len(resp.Choices) == 0 {
		return "", newTransientError(p.name, fmt.Errorf("no choices in response"))
	}
	return resp.Choices[0].Message.Content, nil
}

// classifyError maps API failures onto the transient/permanent split.
// Timeouts, rate limits and 5xx are worth retrying; auth and malformed
// requests are not.
func (p *OpenAIProvider) classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return p.classifyStatus(apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return p.classifyStatus(reqErr.HTTPStatusCode, err)
	}
	// Network-level failures and context timeouts are transient.
	return newTransientError(p.name, err)
}

func (p *OpenAIProvider) classifyStatus(status int, err error) error {
	switch {
	case status == http.StatusTooManyRequests:
		return newTransientError(p.name, err)
	case status >= 500:
		return newTransientError(p.name, err)
	case status == http.StatusUnauthorized,
		status == http.StatusForbidden,
		status == http.StatusBadRequest,
		status == http.StatusNotFound:
		return newPermanentError(p.name, err)
	default:
		return newPermanentError(p.name, err)
	}
}
