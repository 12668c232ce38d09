package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gathr/backend/internal/model"
	"gathr/backend/internal/service"
	"gathr/backend/internal/service/translate"
)

type settingsRepoStub struct {
	data map[string]string
}

func newSettingsRepoStub() *settingsRepoStub {
	return &settingsRepoStub{data: map[string]string{}}
}

func (s *settingsRepoStub) Get(ctx context.Context, key string) (*model.Setting, error) {
	value, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return &model.Setting{Key: key, Value: value}, nil
}

func (s *settingsRepoStub) Set(ctx context.Context, key, value string) error {
	s.data[key] = value
	return nil
}

func (s *settingsRepoStub) GetByPrefix(ctx context.Context, prefix string) ([]model.Setting, error) {
	var settings []model.Setting
	for key, value := range s.data {
		if strings.HasPrefix(key, prefix) {
			settings = append(settings, model.Setting{Key: key, Value: value})
		}
	}
	return settings, nil
}

func (s *settingsRepoStub) Delete(ctx context.Context, key string) error {
	delete(s.data, key)
	return nil
}

func TestSettingsService_Defaults(t *testing.T) {
	svc := service.NewSettingsService(newSettingsRepoStub(), nil)

	settings, err := svc.GetTranslateSettings(context.Background())
	require.NoError(t, err)
	require.Equal(t, translate.ProviderOpenAI, settings.Provider)
	require.Equal(t, translate.DefaultRateLimit, settings.RateLimit)
	require.True(t, settings.AutoTranslate)
	require.Empty(t, settings.APIKey)
}

func TestSettingsService_MasksAPIKey(t *testing.T) {
	repo := newSettingsRepoStub()
	repo.data[service.KeyTranslateAPIKey] = "sk-proj-1234567890abcdef"
	svc := service.NewSettingsService(repo, nil)

	settings, err := svc.GetTranslateSettings(context.Background())
	require.NoError(t, err)
	require.NotEqual(t, "sk-proj-1234567890abcdef", settings.APIKey)
	require.Contains(t, settings.APIKey, "***")
	require.True(t, strings.HasSuffix(settings.APIKey, "def"))
}

func TestSettingsService_MaskedKeyKeepsStored(t *testing.T) {
	repo := newSettingsRepoStub()
	repo.data[service.KeyTranslateAPIKey] = "sk-original-key-value"
	svc := service.NewSettingsService(repo, nil)

	err := svc.SetTranslateSettings(context.Background(), &service.TranslateSettings{
		Provider: translate.ProviderAnthropic,
		APIKey:   "sk-***lue",
		Model:    "claude-sonnet-4-5",
	})
	require.NoError(t, err)
	require.Equal(t, "sk-original-key-value", repo.data[service.KeyTranslateAPIKey])
	require.Equal(t, translate.ProviderAnthropic, repo.data[service.KeyTranslateProvider])
	require.Equal(t, "claude-sonnet-4-5", repo.data[service.KeyTranslateModel])
}

func TestSettingsService_RejectsUnknownProvider(t *testing.T) {
	svc := service.NewSettingsService(newSettingsRepoStub(), nil)

	err := svc.SetTranslateSettings(context.Background(), &service.TranslateSettings{Provider: "deepl"})
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestSettingsService_RateLimitUpdatesLimiter(t *testing.T) {
	limiter := translate.NewRateLimiter(5)
	svc := service.NewSettingsService(newSettingsRepoStub(), limiter)

	err := svc.SetTranslateSettings(context.Background(), &service.TranslateSettings{RateLimit: 20})
	require.NoError(t, err)
	require.Equal(t, 20, limiter.GetLimit())
}
