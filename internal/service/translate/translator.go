package translate

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

//go:generate mockgen -source=translator.go -destination=mock/translator.go -package=mock

// Translator is the port the orchestrator calls to localize content.
// Implementations fail with an opaque error and never return partial
// results.
type Translator interface {
	TranslateText(ctx context.Context, text, sourceLocale, targetLocale string) (string, error)
	TranslateFields(ctx context.Context, fields map[string]string, sourceLocale, targetLocale string) (map[string]string, error)
}

// Factory builds a Translator from a provider config. Injected into the
// orchestrator so tests can swap the external provider out.
type Factory func(cfg Config) (Translator, error)

// DefaultTimeout bounds a single provider call.
const DefaultTimeout = 30 * time.Second

type translator struct {
	provider Provider
	limiter  *RateLimiter
	timeout  time.Duration
}

// NewTranslator wraps a provider with rate limiting and a per-call
// timeout. A timeout surfaces as an ordinary error to the caller.
func NewTranslator(cfg Config, limiter *RateLimiter, timeout time.Duration) (Translator, error) {
	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &translator{
		provider: provider,
		limiter:  limiter,
		timeout:  timeout,
	}, nil
}

// NewFactory returns a Factory bound to a shared rate limiter.
func NewFactory(limiter *RateLimiter, timeout time.Duration) Factory {
	return func(cfg Config) (Translator, error) {
		return NewTranslator(cfg, limiter, timeout)
	}
}

func (t *translator) TranslateText(ctx context.Context, text, sourceLocale, targetLocale string) (string, error) {
	return t.translateField(ctx, "text", text, sourceLocale, targetLocale)
}

func (t *translator) TranslateFields(ctx context.Context, fields map[string]string, sourceLocale, targetLocale string) (map[string]string, error) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	translated := make(map[string]string, len(fields))
	for _, name := range names {
		if fields[name] == "" {
			translated[name] = ""
			continue
		}
		out, err := t.translateField(ctx, name, fields[name], sourceLocale, targetLocale)
		if err != nil {
			return nil, fmt.Errorf("translate %s: %w", name, err)
		}
		translated[name] = out
	}
	return translated, nil
}

func (t *translator) translateField(ctx context.Context, fieldName, text, sourceLocale, targetLocale string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limit: %w", err)
		}
	}

	prompt := GetTranslatePrompt(fieldName, sourceLocale, targetLocale)
	out, err := t.provider.Complete(ctx, prompt, text)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
