package provider

import (
	"context"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/tilawah/internal/domain/verse"
)

// ProviderWithMetadata wraps a provider with its metadata.
type ProviderWithMetadata struct {
	Provider    Provider
	DisplayName string
}

// Chain tries providers in order until one succeeds.
type Chain struct {
	providers []ProviderWithMetadata
}

// NewChain creates a new provider chain.
func NewChain(providers []ProviderWithMetadata) *Chain {
	return &Chain{
		providers: providers,
	}
}

// ListChapters returns the chapter list of the first provider that succeeds.
func (c *Chain) ListChapters(ctx context.Context) ([]verse.ChapterInfo, error) {
	var lastErr error
	for i, pm := range c.providers {
		zlog.Debug().Msgf("provider: listing chapters: index=%d total=%d name=%s provider_type=%s",
			i+1, len(c.providers), pm.DisplayName, pm.Provider.Name())

		chapters, err := pm.Provider.ListChapters(ctx)
		if err != nil {
			zlog.Warn().Msgf("provider: failed, trying next: provider=%s error=%v", pm.DisplayName, err)
			lastErr = err
			continue
		}
		if len(chapters) == 0 {
			zlog.Debug().Msgf("provider: returned no chapters: provider=%s", pm.DisplayName)
			continue
		}
		return chapters, nil
	}

	if lastErr != nil {
		return nil, errors.Wrap(lastErr, "all providers failed to list chapters")
	}
	return nil, errors.New("all providers failed to list chapters")
}

// GetChapter returns the chapter from the first provider that succeeds.
// An invalid chapter number is not retried.
func (c *Chain) GetChapter(ctx context.Context, number int) (*verse.Chapter, error) {
	if !verse.ValidChapterNumber(number) {
		return nil, errors.Wrapf(verse.ErrInvalidChapter, "chapter %d", number)
	}

	var lastErr error
	for i, pm := range c.providers {
		zlog.Debug().Msgf("provider: fetching chapter: chapter=%d index=%d total=%d name=%s",
			number, i+1, len(c.providers), pm.DisplayName)

		ch, err := pm.Provider.GetChapter(ctx, number)
		if err != nil {
			if errors.Is(err, verse.ErrInvalidChapter) {
				return nil, err
			}
			zlog.Warn().Msgf("provider: failed, trying next: provider=%s chapter=%d error=%v", pm.DisplayName, number, err)
			lastErr = err
			continue
		}
		if len(ch.Verses) == 0 {
			zlog.Debug().Msgf("provider: returned no verses: provider=%s chapter=%d", pm.DisplayName, number)
			continue
		}

		zlog.Info().Msgf("provider: loaded chapter: provider=%s chapter=%d verses=%d", pm.DisplayName, number, len(ch.Verses))
		return ch, nil
	}

	if lastErr != nil {
		return nil, errors.Wrapf(lastErr, "all providers failed to fetch chapter %d", number)
	}
	return nil, errors.Newf("all providers failed to fetch chapter %d", number)
}

// Providers returns the chained providers in order.
func (c *Chain) Providers() []ProviderWithMetadata {
	return c.providers
}

// Name returns the chain name.
func (c *Chain) Name() string {
	return "provider_chain"
}
