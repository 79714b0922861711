package provider

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"

	"github.com/osa030/tilawah/internal/domain/verse"
	"github.com/osa030/tilawah/internal/infra/alquran"
)

// AlQuranProviderConfig represents alquran.cloud provider settings.
type AlQuranProviderConfig struct {
	BaseURL            string `yaml:"base_url" mapstructure:"base_url" default:"https://api.alquran.cloud/v1" validate:"url"`
	TextEdition        string `yaml:"text_edition" mapstructure:"text_edition" default:"ar.alafasy" validate:"required"`
	TranslationEdition string `yaml:"translation_edition" mapstructure:"translation_edition" default:"en.asad"`
	TimeoutMs          int    `yaml:"timeout_ms" mapstructure:"timeout_ms" default:"10000" validate:"gte=100"`
}

// AlQuranProvider provides verses from alquran.cloud.
type AlQuranProvider struct {
	client *alquran.Client
}

// NewAlQuranProvider creates a new AlQuranProvider. settings may be empty.
func NewAlQuranProvider(settings map[string]any) (*AlQuranProvider, error) {
	var config AlQuranProviderConfig
	if err := decodeSettings(settings, &config); err != nil {
		return nil, err
	}

	client, err := alquran.New(alquran.Config{
		BaseURL:            config.BaseURL,
		TextEdition:        config.TextEdition,
		TranslationEdition: config.TranslationEdition,
		Timeout:            time.Duration(config.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create alquran client")
	}
	return &AlQuranProvider{client: client}, nil
}

// ListChapters implements Provider.
func (p *AlQuranProvider) ListChapters(ctx context.Context) ([]verse.ChapterInfo, error) {
	return p.client.ListChapters(ctx)
}

// GetChapter implements Provider.
func (p *AlQuranProvider) GetChapter(ctx context.Context, number int) (*verse.Chapter, error) {
	return p.client.GetChapter(ctx, number)
}

// Name implements Provider.
func (p *AlQuranProvider) Name() string {
	return "alquran"
}

// decodeSettings decodes provider settings, applies defaults and validates.
func decodeSettings(settings map[string]any, out any) error {
	if err := mapstructure.Decode(settings, out); err != nil {
		return errors.Wrap(err, "failed to decode settings")
	}
	if err := defaults.Set(out); err != nil {
		return errors.Wrap(err, "failed to set defaults")
	}
	if err := validator.New().Struct(out); err != nil {
		return errors.Wrap(err, "validation failed")
	}
	return nil
}
