package service

import (
	"context"
	"fmt"
	"strconv"

	"gathr/backend/internal/repository"
	"gathr/backend/internal/service/translate"
)

// TranslateSettings holds the translation provider configuration.
type TranslateSettings struct {
	Provider      string `json:"provider"`
	APIKey        string `json:"apiKey"`
	BaseURL       string `json:"baseUrl"`
	Model         string `json:"model"`
	RateLimit     int    `json:"rateLimit"`
	AutoTranslate bool   `json:"autoTranslate"`
}

// SettingsService provides settings management.
type SettingsService interface {
	// GetTranslateSettings returns the provider configuration with a
	// masked API key.
	GetTranslateSettings(ctx context.Context) (*TranslateSettings, error)
	// SetTranslateSettings updates the provider configuration. An
	// empty or masked apiKey keeps the stored key.
	SetTranslateSettings(ctx context.Context, settings *TranslateSettings) error
	// TestTranslator tests the provider connection with the given
	// configuration.
	TestTranslator(ctx context.Context, provider, apiKey, baseURL, model string) (string, error)
}

type settingsService struct {
	repo    repository.SettingsRepository
	limiter *translate.RateLimiter
}

// NewSettingsService creates a new settings service. limiter may be nil
// when no shared rate limiter should track the configured limit.
func NewSettingsService(repo repository.SettingsRepository, limiter *translate.RateLimiter) SettingsService {
	return &settingsService{repo: repo, limiter: limiter}
}

func (s *settingsService) GetTranslateSettings(ctx context.Context) (*TranslateSettings, error) {
	settings := &TranslateSettings{
		Provider:      translate.ProviderOpenAI,
		RateLimit:     translate.DefaultRateLimit,
		AutoTranslate: true,
	}

	if val, err := s.getString(ctx, KeyTranslateProvider); err == nil && val != "" {
		settings.Provider = val
	}
	if val, err := s.getString(ctx, KeyTranslateAPIKey); err == nil && val != "" {
		settings.APIKey = maskAPIKey(val)
	}
	if val, err := s.getString(ctx, KeyTranslateBaseURL); err == nil {
		settings.BaseURL = val
	}
	if val, err := s.getString(ctx, KeyTranslateModel); err == nil {
		settings.Model = val
	}
	if val, err := s.getString(ctx, KeyTranslateRateLimit); err == nil && val != "" {
		if qps, convErr := strconv.Atoi(val); convErr == nil && qps > 0 {
			settings.RateLimit = qps
		}
	}
	if val, err := s.getString(ctx, KeyTranslateAuto); err == nil && val == "false" {
		settings.AutoTranslate = false
	}

	return settings, nil
}

func (s *settingsService) SetTranslateSettings(ctx context.Context, settings *TranslateSettings) error {
	if settings.Provider != "" {
		if settings.Provider != translate.ProviderOpenAI && settings.Provider != translate.ProviderAnthropic {
			return fmt.Errorf("%w: unknown provider %q", ErrInvalid, settings.Provider)
		}
		if err := s.repo.Set(ctx, KeyTranslateProvider, settings.Provider); err != nil {
			return fmt.Errorf("set provider: %w", err)
		}
	}
	if err := s.setAPIKey(ctx, KeyTranslateAPIKey, settings.APIKey); err != nil {
		return fmt.Errorf("set api key: %w", err)
	}
	if err := s.repo.Set(ctx, KeyTranslateBaseURL, settings.BaseURL); err != nil {
		return fmt.Errorf("set base url: %w", err)
	}
	if err := s.repo.Set(ctx, KeyTranslateModel, settings.Model); err != nil {
		return fmt.Errorf("set model: %w", err)
	}
	if settings.RateLimit > 0 {
		if err := s.repo.Set(ctx, KeyTranslateRateLimit, strconv.Itoa(settings.RateLimit)); err != nil {
			return fmt.Errorf("set rate limit: %w", err)
		}
		if s.limiter != nil {
			s.limiter.SetLimit(settings.RateLimit)
		}
	}
	autoVal := "false"
	if settings.AutoTranslate {
		autoVal = "true"
	}
	if err := s.repo.Set(ctx, KeyTranslateAuto, autoVal); err != nil {
		return fmt.Errorf("set auto translate: %w", err)
	}
	return nil
}

func (s *settingsService) TestTranslator(ctx context.Context, provider, apiKey, baseURL, model string) (string, error) {
	// A masked key means "use the stored one".
	if isMaskedKey(apiKey) {
		storedKey, err := s.getString(ctx, KeyTranslateAPIKey)
		if err != nil {
			return "", fmt.Errorf("get stored api key: %w", err)
		}
		apiKey = storedKey
	}

	p, err := translate.NewProvider(translate.Config{
		Provider: provider,
		APIKey:   apiKey,
		BaseURL:  baseURL,
		Model:    model,
	})
	if err != nil {
		return "", err
	}

	return p.Test(ctx)
}

func (s *settingsService) getString(ctx context.Context, key string) (string, error) {
	setting, err := s.repo.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if setting == nil {
		return "", nil
	}
	return setting.Value, nil
}

// setAPIKey stores a key unless the caller passed an empty or masked
// value, which keeps the existing key.
func (s *settingsService) setAPIKey(ctx context.Context, key, value string) error {
	if value == "" || isMaskedKey(value) {
		return nil
	}
	return s.repo.Set(ctx, key, value)
}

// maskAPIKey returns a masked version of the API key for display.
func maskAPIKey(apiKey string) string {
	if apiKey == "" {
		return ""
	}
	if len(apiKey) <= 8 {
		return "***"
	}
	prefixEnd := 0
	for i, c := range apiKey {
		if c == '-' {
			prefixEnd = i + 1
			break
		}
		if i >= 4 {
			break
		}
	}
	prefix := apiKey[:prefixEnd]
	suffix := apiKey[len(apiKey)-3:]
	return prefix + "***" + suffix
}

// isMaskedKey checks if a string looks like a masked API key.
func isMaskedKey(key string) bool {
	if len(key) == 0 || len(key) >= 20 {
		return false
	}
	for i := 0; i <= len(key)-3; i++ {
		if key[i:i+3] == "***" {
			return true
		}
	}
	return false
}
