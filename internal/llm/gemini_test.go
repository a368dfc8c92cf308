package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func TestGemini_Complete(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": `{"hint":"Start at 4."}`}},
				},
				"finishReason": "STOP",
			}},
			"usageMetadata": map[string]any{"promptTokenCount": 21, "candidatesTokenCount": 6, "totalTokenCount": 27},
		})
	}))
	t.Cleanup(srv.Close)

	p, err := NewGeminiProvider(context.Background(), GeminiConfig{APIKey: "k", Model: "gemini-flash", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewGeminiProvider: %v", err)
	}
	c, err := p.Complete(context.Background(), hintPrompt())
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !strings.Contains(path, "gemini-2.0-flash") {
		t.Errorf("path %q does not name the resolved model", path)
	}
	if string(c.JSON) != `{"hint":"Start at 4."}` || c.Tokens != (Tokens{In: 21, Out: 6}) {
		t.Errorf("completion = %+v", c)
	}
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":     map[string]any{"type": "integer"},
			"answer": map[string]any{"type": "string", "description": "the expected answer"},
			"kind":   map[string]any{"type": "string", "enum": []string{"mcq", "fill"}},
			"items": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "boolean"},
			},
		},
		"required": []any{"id", "answer"},
	})

	if s.Type != genai.TypeObject || len(s.Properties) != 4 {
		t.Fatalf("top level = %+v", s)
	}
	if s.Properties["id"].Type != genai.TypeInteger {
		t.Errorf("id type = %s", s.Properties["id"].Type)
	}
	if s.Properties["answer"].Description != "the expected answer" {
		t.Errorf("description lost: %+v", s.Properties["answer"])
	}
	if got := s.Properties["kind"].Enum; len(got) != 2 || got[1] != "fill" {
		t.Errorf("enum = %v", got)
	}
	if s.Properties["items"].Items.Type != genai.TypeBoolean {
		t.Errorf("items = %+v", s.Properties["items"].Items)
	}
	if len(s.Required) != 2 {
		t.Errorf("required = %v", s.Required)
	}
}

func TestResolveModel(t *testing.T) {
	cases := []struct{ provider, name, want string }{
		{"gemini", "gemini-flash", "gemini-2.0-flash"},
		{"anthropic", "claude-sonnet", "claude-sonnet-4-20250514"},
		{"openai", "gpt-mini", "gpt-4o-mini"},
		{"openai", "o3", "o3"},
		{"gemini", "claude-haiku", "claude-haiku"},
	}
	for _, c := range cases {
		if got := resolveModel(c.provider, c.name); got != c.want {
			t.Errorf("resolveModel(%q, %q) = %q, want %q", c.provider, c.name, got, c.want)
		}
	}
}
