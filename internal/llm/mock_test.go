package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMock_RepliesInOrder(t *testing.T) {
	m := NewMockProvider(
		MockReply{JSON: json.RawMessage(`{"hint":"one"}`), Tokens: Tokens{In: 3, Out: 1}},
		MockReply{JSON: json.RawMessage(`{"hint":"two"}`)},
	)
	for _, want := range []string{`{"hint":"one"}`, `{"hint":"two"}`} {
		c, err := m.Complete(context.Background(), hintPrompt())
		if err != nil {
			t.Fatalf("Complete: %v", err)
		}
		if string(c.JSON) != want {
			t.Errorf("JSON = %s, want %s", c.JSON, want)
		}
	}
	if _, err := m.Complete(context.Background(), hintPrompt()); !IsKind(err, KindUnavailable) {
		t.Fatalf("empty script should be unavailable, got %v", err)
	}
	if got := len(m.Prompts()); got != 3 {
		t.Errorf("recorded %d prompts, want 3", got)
	}
}

func TestMock_ChecksSchema(t *testing.T) {
	m := NewMockProvider(MockReply{JSON: json.RawMessage(`{"nope":true}`)})
	if _, err := m.Complete(context.Background(), hintPrompt()); !IsKind(err, KindMalformed) {
		t.Fatalf("expected malformed, got %v", err)
	}
}

func TestMock_ScriptedError(t *testing.T) {
	boom := errors.New("boom")
	m := NewMockProvider()
	m.Queue(MockReply{Err: boom, JSON: json.RawMessage(`{"hint":"ignored"}`)})
	if _, err := m.Complete(context.Background(), Prompt{}); !errors.Is(err, boom) {
		t.Fatalf("expected scripted error, got %v", err)
	}
	if m.Model() != "mock" {
		t.Errorf("Model() = %q", m.Model())
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("anthropic without a key should not validate")
	}
	cfg.Anthropic.APIKey = "k"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	cfg.Provider = "mock"
	cfg.Anthropic.APIKey = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock needs no key: %v", err)
	}
	cfg.Provider = "llama"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown provider should not validate")
	}
}

func TestNewProvider_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	p, err := NewProvider(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.Model() != "mock" {
		t.Errorf("Model() = %q", p.Model())
	}

	cfg.Provider = "llama"
	if _, err := NewProvider(context.Background(), cfg, nil, nil); err == nil {
		t.Error("expected unknown provider error")
	}
}
