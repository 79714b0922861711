package provider

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/osa030/tilawah/internal/domain/verse"
	"github.com/osa030/tilawah/internal/infra/qf"
)

// QuranFoundationProviderConfig represents Quran Foundation provider settings.
// Credentials are usually supplied through QF_CLIENT_ID and QF_CLIENT_SECRET.
type QuranFoundationProviderConfig struct {
	ClientID     string `yaml:"client_id" mapstructure:"client_id" validate:"required"`
	ClientSecret string `yaml:"client_secret" mapstructure:"client_secret" validate:"required"`
	TokenURL     string `yaml:"token_url" mapstructure:"token_url" default:"https://oauth2.quran.foundation/oauth2/token" validate:"url"`
	BaseURL      string `yaml:"base_url" mapstructure:"base_url" default:"https://apis.quran.foundation/content/api/v4" validate:"url"`
	Translation  int    `yaml:"translation" mapstructure:"translation" default:"20" validate:"gte=0"`
	TimeoutMs    int    `yaml:"timeout_ms" mapstructure:"timeout_ms" default:"10000" validate:"gte=100"`
}

// QuranFoundationProvider provides verses from the Quran Foundation content API.
type QuranFoundationProvider struct {
	client *qf.Client
}

// NewQuranFoundationProvider creates a new QuranFoundationProvider.
func NewQuranFoundationProvider(ctx context.Context, settings map[string]any) (*QuranFoundationProvider, error) {
	if len(settings) == 0 {
		return nil, errors.New("settings are required")
	}

	var config QuranFoundationProviderConfig
	if err := decodeSettings(settings, &config); err != nil {
		return nil, err
	}

	client, err := qf.New(ctx, qf.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		TokenURL:     config.TokenURL,
		BaseURL:      config.BaseURL,
		Translation:  config.Translation,
		Timeout:      time.Duration(config.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create quran foundation client")
	}
	return &QuranFoundationProvider{client: client}, nil
}

// ListChapters implements Provider.
func (p *QuranFoundationProvider) ListChapters(ctx context.Context) ([]verse.ChapterInfo, error) {
	return p.client.ListChapters(ctx)
}

// GetChapter implements Provider.
func (p *QuranFoundationProvider) GetChapter(ctx context.Context, number int) (*verse.Chapter, error) {
	return p.client.GetChapter(ctx, number)
}

// Name implements Provider.
func (p *QuranFoundationProvider) Name() string {
	return "quranfoundation"
}
