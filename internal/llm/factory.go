package llm

import (
	"context"
	"fmt"
	"log"

	"github.com/abhisek/dungeonquiz/internal/store"
)

// NewProvider builds the configured provider behind retry and logging.
// Each retry attempt is logged separately. logger and requests may be nil.
func NewProvider(ctx context.Context, cfg Config, logger *log.Logger, requests store.RequestLog) (Provider, error) {
	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	return WithRetry(WithLogging(base, cfg.Provider, logger, requests), cfg.Retry, cfg.Timeout), nil
}
