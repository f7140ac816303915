package ai

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"todoapp/internal/config"
	"todoapp/internal/model"
)

var (
	_ Provider = (*OpenAIProvider)(nil)
	_ Provider = (*AnthropicProvider)(nil)
)

const (
	defaultAttemptTimeout = 30 * time.Second
	defaultMaxRetries     = 2
	defaultRetryInterval  = 500 * time.Millisecond
)

// Result is the outcome of one generation request.
type Result struct {
	Success      bool
	Title        string
	Description  string
	Priority     model.Priority
	FallbackUsed bool
	ProviderUsed string
	ErrorMessage string
}

// Service turns free text into a structured todo. It walks the provider
// chain in order and falls back to keyword heuristics when every
// provider fails.
type Service struct {
	providers     []Provider
	timeout       time.Duration
	maxRetries    uint64
	retryInterval time.Duration
}

// Option adjusts Service construction.
type Option func(*Service)

// WithAttemptTimeout bounds each individual provider call.
func WithAttemptTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// WithMaxRetries sets how many times a transient provider failure is
// retried after the first attempt.
func WithMaxRetries(n uint64) Option {
	return func(s *Service) { s.maxRetries = n }
}

// WithRetryInterval sets the initial backoff interval between retries.
func WithRetryInterval(d time.Duration) Option {
	return func(s *Service) { s.retryInterval = d }
}

// NewService creates an AI generation service over the given provider
// chain. An empty chain is valid; every request then uses the fallback.
func NewService(providers []Provider, opts ...Option) *Service {
	s := &Service{
		providers:     providers,
		timeout:       defaultAttemptTimeout,
		maxRetries:    defaultMaxRetries,
		retryInterval: defaultRetryInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BuildProviders assembles the provider chain from the environment.
// Order is fixed: OpenAI first, then Anthropic, then a local Ollama.
func BuildProviders(cfg *config.Config) []Provider {
	var providers []Provider
	if cfg.OpenAIAPIKey != "" {
		providers = append(providers, NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel))
	}
	if cfg.AnthropicAPIKey != "" {
		providers = append(providers, NewAnthropicProvider(cfg.AnthropicAPIKey, cfg.AnthropicModel))
	}
	if cfg.OllamaBaseURL != "" {
		providers = append(providers, NewOllamaProvider(cfg.OllamaBaseURL, cfg.OllamaModel))
	}
	return providers
}

// Generate converts user input into todo fields. Validation failures are
// returned as errors; provider failures are absorbed and answered by the
// fallback, so a nil error does not imply a provider succeeded.
func (s *Service) Generate(ctx context.Context, userInput string) (Result, error) {
	trimmed := strings.TrimSpace(userInput)
	if trimmed == "" {
		return Result{}, ErrEmptyInput
	}
	if len([]rune(trimmed)) > maxInputRunes {
		return Result{}, ErrInputTooLong
	}

	userPrompt := buildUserPrompt(trimmed)
	for _, provider := range s.providers {
		reply, err := s.tryProvider(ctx, provider, userPrompt)
		if err != nil {
			log.Printf("⚠️ AI provider %s failed: %v", provider.Name(), err)
			continue
		}
		todo, err := parseReply(reply)
		if err != nil {
			log.Printf("⚠️ AI provider %s reply unusable: %v", provider.Name(), err)
			continue
		}
		log.Printf("✅ Todo generated via %s", provider.Name())
		return Result{
			Success:      true,
			Title:        todo.Title,
			Description:  todo.Description,
			Priority:     todo.Priority,
			ProviderUsed: provider.Name(),
		}, nil
	}

	if len(s.providers) > 0 {
		log.Println("⚠️ All AI providers failed, using keyword fallback")
	}
	todo, ok := fallbackGenerate(trimmed)
	if !ok {
		return Result{
			Success:      false,
			FallbackUsed: true,
			ProviderUsed: "fallback",
			ErrorMessage: "input contains no usable words",
		}, nil
	}
	return Result{
		Success:      true,
		Title:        todo.Title,
		Description:  todo.Description,
		Priority:     todo.Priority,
		FallbackUsed: true,
		ProviderUsed: "fallback",
	}, nil
}

// tryProvider runs one provider with retries. Transient failures back
// off exponentially; permanent ones stop the retry loop right away.
func (s *Service) tryProvider(ctx context.Context, provider Provider, userPrompt string) (string, error) {
	var reply string
	attempt := func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		out, err := provider.Generate(attemptCtx, todoSystemPrompt, userPrompt)
		if err != nil {
			if !isRetryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		reply = out
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.retryInterval

	err := backoff.Retry(attempt, backoff.WithContext(backoff.WithMaxRetries(policy, s.maxRetries), ctx))
	if err != nil {
		return "", err
	}
	return reply, nil
}
