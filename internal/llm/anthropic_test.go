package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func anthropicAgainst(t *testing.T, h http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "k", Model: "claude-haiku", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewAnthropicProvider: %v", err)
	}
	return p
}

func anthropicReply(text, stop string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":          "msg_1",
			"type":        "message",
			"role":        "assistant",
			"model":       "claude-haiku-4-5-20251001",
			"content":     []map[string]any{{"type": "text", "text": text}},
			"stop_reason": stop,
			"usage":       map[string]any{"input_tokens": 40, "output_tokens": 9},
		})
	}
}

func TestAnthropic_Complete(t *testing.T) {
	var body map[string]any
	p := anthropicAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		anthropicReply(`{"hint":"Count up from 4."}`, "end_turn")(w, r)
	})

	c, err := p.Complete(context.Background(), hintPrompt())
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if string(c.JSON) != `{"hint":"Count up from 4."}` {
		t.Errorf("JSON = %s", c.JSON)
	}
	if c.Tokens != (Tokens{In: 40, Out: 9}) || c.Tokens.Total() != 49 {
		t.Errorf("Tokens = %+v", c.Tokens)
	}
	if body["model"] != "claude-haiku-4-5-20251001" {
		t.Errorf("alias not resolved, sent model %v", body["model"])
	}
	if body["system"] == nil {
		t.Error("instructions were not sent as the system prompt")
	}
}

func TestAnthropic_SchemaMismatchIsMalformed(t *testing.T) {
	p := anthropicAgainst(t, anthropicReply(`{"tip":"wrong key"}`, "end_turn"))

	_, err := p.Complete(context.Background(), hintPrompt())
	if !IsKind(err, KindMalformed) {
		t.Fatalf("expected malformed, got %v", err)
	}
}

func TestAnthropic_MaxTokensIsTruncated(t *testing.T) {
	p := anthropicAgainst(t, anthropicReply(`{"hint":"Count`, "max_tokens"))

	_, err := p.Complete(context.Background(), hintPrompt())
	if !IsKind(err, KindTruncated) {
		t.Fatalf("expected truncated, got %v", err)
	}
}

func TestAnthropic_StatusClassification(t *testing.T) {
	for status, want := range map[int]ErrorKind{
		http.StatusTooManyRequests:     KindRateLimited,
		http.StatusInternalServerError: KindUnavailable,
		http.StatusUnauthorized:        KindUnavailable,
	} {
		p := anthropicAgainst(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"nope"}}`))
		})
		if _, err := p.Complete(context.Background(), hintPrompt()); !IsKind(err, want) {
			t.Errorf("status %d: expected %s, got %v", status, want, err)
		}
	}
}

func TestAnthropic_RequiresKey(t *testing.T) {
	if _, err := NewAnthropicProvider(AnthropicConfig{}); err == nil {
		t.Fatal("expected an error without an API key")
	}
}
