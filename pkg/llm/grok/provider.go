package grok

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"law-agent-be/pkg/llm"
)

const defaultBaseURL = "https://api.x.ai/v1"

// Provider calls the Grok (x.ai) chat-completions API. Every call is
// single-shot with an explicit timeout; a circuit breaker short-circuits
// requests while the provider is flapping so callers fail fast into
// their local fallback.
type Provider struct {
	BaseURL   string
	APIKey    string
	ModelName string
	Client    *http.Client
	breaker   *gobreaker.CircuitBreaker
}

var _ llm.Provider = &Provider{}

// New creates a Grok provider. Timeout bounds the whole HTTP exchange.
func New(apiKey, modelName string, timeout time.Duration) *Provider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "grok",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	return &Provider{
		BaseURL:   defaultBaseURL,
		APIKey:    apiKey,
		ModelName: modelName,
		Client:    &http.Client{Timeout: timeout},
		breaker:   cb,
	}
}

// Configured reports whether an API key is present. An unconfigured
// provider always returns llm.ErrUnavailable, which callers mask with
// their local templates.
func (p *Provider) Configured() bool {
	return p.APIKey != ""
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (p *Provider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	if !p.Configured() {
		return "", llm.ErrUnavailable
	}

	options := &llm.Options{Temperature: 0.3}
	for _, opt := range opts {
		opt(options)
	}

	model := p.ModelName
	if options.Model != "" {
		model = options.Model
	}

	messages := make([]chatMessage, len(history))
	for i, msg := range history {
		role := msg.Role
		if role == "model" {
			role = "assistant"
		}
		messages[i] = chatMessage{Role: role, Content: msg.Content}
	}

	payload, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: options.Temperature,
		MaxTokens:   options.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	result, err := p.breaker.Execute(func() (interface{}, error) {
		return p.send(ctx, payload)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", llm.ErrUnavailable
		}
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return "", llm.ErrUnavailable
		}
		return "", err
	}
	return result.(string), nil
}

func (p *Provider) send(ctx context.Context, payload []byte) (string, error) {
	url := p.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.APIKey)

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("grok request failed: %w", llm.ErrUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("grok error: status %d: %w", resp.StatusCode, llm.ErrUnavailable)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("grok error: empty choices: %w", llm.ErrUnavailable)
	}
	return parsed.Choices[0].Message.Content, nil
}

func (p *Provider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}
