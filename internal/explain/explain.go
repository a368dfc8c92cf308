// Package explain drafts the short explanations shown after a question is
// answered. It only ever fills the explain field of a question.
package explain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/dungeonquiz/internal/llm"
	"github.com/abhisek/dungeonquiz/internal/pack"
)

// ErrUnresolved is returned for questions whose answer is still empty.
var ErrUnresolved = errors.New("question has no answer yet")

// Service asks an LLM provider for explanations.
type Service struct {
	provider llm.Provider
	config   Config
}

// New creates a Service with the given provider and config.
func New(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, config: cfg}
}

type explainOutput struct {
	Explain string `json:"explain"`
}

// Suggest returns a one-sentence explanation for q.
func (s *Service) Suggest(ctx context.Context, q pack.Question) (string, error) {
	return s.suggest(ctx, pack.Meta{}, q)
}

func (s *Service) suggest(ctx context.Context, meta pack.Meta, q pack.Question) (string, error) {
	if strings.TrimSpace(q.Answer) == "" {
		return "", fmt.Errorf("question %s: %w", q.ID, ErrUnresolved)
	}

	c, err := s.provider.Complete(ctx, llm.Prompt{
		Purpose:      "explain",
		Instructions: systemPrompt,
		Input:        buildUserMessage(meta, q),
		Schema:       ExplainSchema,
		MaxTokens:    s.config.MaxTokens,
		Temperature:  s.config.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("LLM explain failed: %w", err)
	}

	var out explainOutput
	if err := json.Unmarshal(c.JSON, &out); err != nil {
		return "", &llm.Error{Kind: llm.KindMalformed, Provider: s.provider.Model(), Content: c.JSON, Err: err}
	}

	text := strings.TrimSpace(out.Explain)
	if text == "" {
		return "", &llm.Error{Kind: llm.KindMalformed, Provider: s.provider.Model(), Content: c.JSON,
			Err: errors.New("empty explanation")}
	}
	if s.config.MaxRunes > 0 && utf8.RuneCountInString(text) > s.config.MaxRunes {
		return "", &llm.Error{Kind: llm.KindMalformed, Provider: s.provider.Model(), Content: c.JSON,
			Err: fmt.Errorf("explanation longer than %d characters", s.config.MaxRunes)}
	}
	return text, nil
}

// FillMissing writes an explanation into every question of p that has an
// answer but no explanation. It returns how many were filled. Questions
// without an answer are skipped. On error, questions filled so far keep
// their new text.
func (s *Service) FillMissing(ctx context.Context, p *pack.Pack) (int, error) {
	filled := 0
	for i := range p.Questions {
		q := &p.Questions[i]
		if q.Explain != "" || strings.TrimSpace(q.Answer) == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return filled, err
		}
		text, err := s.suggest(ctx, p.Meta, *q)
		if err != nil {
			return filled, fmt.Errorf("question %s: %w", q.ID, err)
		}
		q.Explain = text
		filled++
	}
	return filled, nil
}
