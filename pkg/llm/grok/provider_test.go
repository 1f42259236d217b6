package grok

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"law-agent-be/pkg/llm"
)

func TestUnconfiguredProviderIsUnavailable(t *testing.T) {
	p := New("", "grok-beta", time.Second)

	if p.Configured() {
		t.Fatal("Configured() = true, want false without an API key")
	}

	_, err := p.Generate(context.Background(), "hello")
	if !errors.Is(err, llm.ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}

func TestChatParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q, want /chat/completions", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"answer text"}}]}`))
	}))
	defer srv.Close()

	p := New("test-key", "grok-beta", time.Second)
	p.BaseURL = srv.URL

	got, err := p.Generate(context.Background(), "question")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "answer text" {
		t.Errorf("Generate = %q, want %q", got, "answer text")
	}
}

func TestChatServerErrorWrapsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := New("test-key", "grok-beta", time.Second)
	p.BaseURL = srv.URL

	_, err := p.Generate(context.Background(), "question")
	if !errors.Is(err, llm.ErrUnavailable) {
		t.Errorf("err = %v, want wrapped ErrUnavailable", err)
	}
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := New("test-key", "grok-beta", time.Second)
	p.BaseURL = srv.URL

	for i := 0; i < 5; i++ {
		if _, err := p.Generate(context.Background(), "q"); err == nil {
			t.Fatal("expected failure")
		}
	}

	// The breaker is now open: calls fail fast without reaching the server.
	srv.Close()
	_, err := p.Generate(context.Background(), "q")
	if !errors.Is(err, llm.ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable from open breaker", err)
	}
}
