package writing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
)

// ErrNoProvider is returned when no evaluation provider is configured at all.
var ErrNoProvider = errors.New("no evaluation provider configured")

// ProviderError carries the HTTP status of a failed provider call so the
// client can route: 401 abandons the provider, 404/429 tries the next model.
type ProviderError struct {
	Provider   string
	Model      string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s (%s) status %d: %v", e.Provider, e.Model, e.StatusCode, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Provider is one external judgment backend. Evaluate returns the raw
// response text; structure recovery is the extractor's job.
type Provider interface {
	Name() string
	Models() []string
	Evaluate(ctx context.Context, model, systemPrompt, userPrompt string) (string, error)
}

// Client attempts providers in priority order, trying each provider's model
// list before falling to the next. There are no blind retries: the
// provider/model chain is the whole retry policy, since re-sending an
// identical request does not change auth or rate-limit outcomes.
type Client struct {
	providers []Provider
	timeout   time.Duration
}

const defaultAttemptTimeout = 120 * time.Second

func NewClient(providers []Provider, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultAttemptTimeout
	}
	return &Client{providers: providers, timeout: timeout}
}

// NewClientFromEnv assembles the provider chain from environment config:
// Anthropic first when ANTHROPIC_API_KEY is set, then any OpenAI-compatible
// endpoint configured via OPENAI_API_KEY. MOCK_EVALUATOR=true prepends the
// mock provider for local development.
func NewClientFromEnv() *Client {
	var providers []Provider

	if os.Getenv("MOCK_EVALUATOR") == "true" {
		providers = append(providers, NewMockProvider())
		log.Println("Evaluator using mock provider")
	}

	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		models := []string{"claude-sonnet-4-5-20250929", "claude-3-5-haiku-20241022"}
		if m := os.Getenv("ANTHROPIC_MODEL"); m != "" {
			models = append([]string{m}, models...)
		}
		providers = append(providers, NewAnthropicProvider(key, models))
		log.Println("Evaluator using Anthropic API, models:", strings.Join(models, ", "))
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		baseURL := getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1")
		models := []string{getEnv("OPENAI_MODEL", "gpt-4o-mini")}
		providers = append(providers, NewChatCompletionsProvider(key, baseURL, models))
		log.Println("Evaluator using OpenAI-compatible API:", baseURL)
	}

	if len(providers) == 0 {
		log.Println("No AI evaluator configured — algorithmic scoring only")
	}

	timeout := defaultAttemptTimeout
	if v := os.Getenv("EVALUATOR_TIMEOUT_SECONDS"); v != "" {
		if d, err := time.ParseDuration(v + "s"); err == nil && d > 0 {
			timeout = d
		}
	}

	return NewClient(providers, timeout)
}

// Configured reports whether at least one provider is available.
func (c *Client) Configured() bool { return len(c.providers) > 0 }

// Evaluate runs one combined call for the whole submission through the
// fallback chain and returns the first raw response plus the provider that
// produced it. Every attempt is bounded by the client timeout.
func (c *Client) Evaluate(ctx context.Context, systemPrompt, userPrompt string) (string, string, error) {
	if len(c.providers) == 0 {
		return "", "", ErrNoProvider
	}

	var lastErr error
	for _, p := range c.providers {
		for _, model := range p.Models() {
			attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
			raw, err := p.Evaluate(attemptCtx, model, systemPrompt, userPrompt)
			cancel()

			if err == nil {
				return raw, p.Name(), nil
			}
			lastErr = err
			log.Printf("WARN: evaluator %s model %s failed: %v", p.Name(), model, err)

			var perr *ProviderError
			if errors.As(err, &perr) && perr.StatusCode == http.StatusUnauthorized {
				// Bad credentials fail for every model of this provider.
				break
			}
			if ctx.Err() != nil {
				return "", "", fmt.Errorf("evaluation cancelled: %w", ctx.Err())
			}
		}
	}
	return "", "", fmt.Errorf("all evaluation providers failed: %w", lastErr)
}

// ── Anthropic provider ─────────────────────────────────────

type AnthropicProvider struct {
	client *anthropic.Client
	models []string
}

func NewAnthropicProvider(apiKey string, models []string) *AnthropicProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)
	return &AnthropicProvider{client: &client, models: models}
}

func (p *AnthropicProvider) Name() string     { return "anthropic" }
func (p *AnthropicProvider) Models() []string { return p.models }

func (p *AnthropicProvider) Evaluate(ctx context.Context, model, systemPrompt, userPrompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   4096,
		Temperature: param.NewOpt(0.2),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}

	message, err := p.client.Messages.New(ctx, params)
	if err != nil {
		status := 0
		var apierr *anthropic.Error
		if errors.As(err, &apierr) {
			status = apierr.StatusCode
		}
		return "", &ProviderError{Provider: p.Name(), Model: model, StatusCode: status, Err: err}
	}

	for _, block := range message.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}
	return "", &ProviderError{Provider: p.Name(), Model: model, Err: errors.New("no text content in response")}
}

// ── OpenAI-compatible provider ─────────────────────────────

// ChatCompletionsProvider talks to any chat-completions style HTTP endpoint.
type ChatCompletionsProvider struct {
	apiKey  string
	baseURL string
	models  []string
	http    *http.Client
}

func NewChatCompletionsProvider(apiKey, baseURL string, models []string) *ChatCompletionsProvider {
	return &ChatCompletionsProvider{
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		models:  models,
		http:    &http.Client{},
	}
}

func (p *ChatCompletionsProvider) Name() string     { return "openai" }
func (p *ChatCompletionsProvider) Models() []string { return p.models }

func (p *ChatCompletionsProvider) Evaluate(ctx context.Context, model, systemPrompt, userPrompt string) (string, error) {
	body := map[string]interface{}{
		"model":       model,
		"temperature": 0.2,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", &ProviderError{Provider: p.Name(), Model: model, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", &ProviderError{Provider: p.Name(), Model: model, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.http.Do(req)
	if err != nil {
		return "", &ProviderError{Provider: p.Name(), Model: model, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Provider: p.Name(), Model: model, StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &ProviderError{
			Provider:   p.Name(),
			Model:      model,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(data))),
		}
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", &ProviderError{Provider: p.Name(), Model: model, StatusCode: resp.StatusCode, Err: err}
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", &ProviderError{Provider: p.Name(), Model: model, StatusCode: resp.StatusCode, Err: errors.New("empty completion")}
	}
	return parsed.Choices[0].Message.Content, nil
}

// ── Mock provider (local development) ──────────────────────

type MockProvider struct{}

func NewMockProvider() *MockProvider { return &MockProvider{} }

func (m *MockProvider) Name() string     { return "mock" }
func (m *MockProvider) Models() []string { return []string{"mock"} }

func (m *MockProvider) Evaluate(ctx context.Context, model, systemPrompt, userPrompt string) (string, error) {
	return `{
  "task1": {"score": 6, "content": "[Mock] Addresses the task adequately.", "organization": "[Mock] Clear structure.", "language": "[Mock] Reasonable range.", "accuracy": "[Mock] Some errors."},
  "task2": {"score": 6, "content": "[Mock] Addresses the task adequately.", "organization": "[Mock] Clear structure.", "language": "[Mock] Reasonable range.", "accuracy": "[Mock] Some errors."},
  "essay": {"score": 6.5, "task_achievement": "[Mock] Responds to the question.", "coherence_cohesion": "[Mock] Logical flow.", "lexical_resource": "[Mock] Adequate vocabulary.", "grammatical_range": "[Mock] Mix of structures."},
  "general_feedback": "[Mock] A competent performance overall."
}`, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
