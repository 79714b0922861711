package provider

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/tilawah/internal/domain/verse"
	"github.com/osa030/tilawah/internal/infra/config"
)

type fakeProvider struct {
	name     string
	chapters []verse.ChapterInfo
	chapter  *verse.Chapter
	err      error
	calls    int
}

func (f *fakeProvider) ListChapters(ctx context.Context) ([]verse.ChapterInfo, error) {
	f.calls++
	return f.chapters, f.err
}

func (f *fakeProvider) GetChapter(ctx context.Context, number int) (*verse.Chapter, error) {
	f.calls++
	return f.chapter, f.err
}

func (f *fakeProvider) Name() string { return f.name }

func testChapter() *verse.Chapter {
	info := verse.ChapterInfo{Number: 112, EnglishName: "Al-Ikhlaas", NumberOfVerses: 1}
	return &verse.Chapter{
		ChapterInfo: info,
		Verses:      []verse.Verse{{Number: 6222, NumberInChapter: 1, Chapter: info}},
	}
}

func TestChain_FallsBack(t *testing.T) {
	failing := &fakeProvider{name: "a", err: errors.New("timeout")}
	empty := &fakeProvider{name: "b", chapter: &verse.Chapter{}}
	working := &fakeProvider{name: "c", chapter: testChapter(), chapters: []verse.ChapterInfo{{Number: 1}}}
	unused := &fakeProvider{name: "d", chapter: testChapter()}

	chain := NewChain([]ProviderWithMetadata{
		{Provider: failing, DisplayName: "A"},
		{Provider: empty, DisplayName: "B"},
		{Provider: working, DisplayName: "C"},
		{Provider: unused, DisplayName: "D"},
	})

	ch, err := chain.GetChapter(context.Background(), 112)
	require.NoError(t, err)
	assert.Equal(t, 112, ch.Number)
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, empty.calls)
	assert.Equal(t, 1, working.calls)
	assert.Zero(t, unused.calls)

	chapters, err := chain.ListChapters(context.Background())
	require.NoError(t, err)
	assert.Len(t, chapters, 1)
}

func TestChain_AllFail(t *testing.T) {
	chain := NewChain([]ProviderWithMetadata{
		{Provider: &fakeProvider{name: "a", err: errors.New("timeout")}, DisplayName: "A"},
		{Provider: &fakeProvider{name: "b", err: errors.New("503")}, DisplayName: "B"},
	})

	_, err := chain.GetChapter(context.Background(), 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")

	_, err = chain.ListChapters(context.Background())
	assert.Error(t, err)

	_, err = NewChain(nil).ListChapters(context.Background())
	assert.Error(t, err)
}

func TestChain_InvalidChapterNotRetried(t *testing.T) {
	first := &fakeProvider{name: "a", err: errors.Wrap(verse.ErrInvalidChapter, "not listed")}
	second := &fakeProvider{name: "b", chapter: testChapter()}
	chain := NewChain([]ProviderWithMetadata{
		{Provider: first, DisplayName: "A"},
		{Provider: second, DisplayName: "B"},
	})

	_, err := chain.GetChapter(context.Background(), 200)
	assert.True(t, errors.Is(err, verse.ErrInvalidChapter))
	assert.Zero(t, first.calls)

	_, err = chain.GetChapter(context.Background(), 112)
	assert.True(t, errors.Is(err, verse.ErrInvalidChapter))
	assert.Zero(t, second.calls)
}

func TestNewChainFromConfig(t *testing.T) {
	cfg := &config.Config{
		Providers: []config.ProviderConfig{
			{Type: config.ProviderQuranFoundation, DisplayName: "Quran Foundation", Settings: map[string]any{
				"client_id":     "id",
				"client_secret": "secret",
				"translation":   85,
			}},
			{Type: config.ProviderAlQuran, DisplayName: "alquran.cloud"},
		},
	}

	chain, err := NewChainFromConfig(context.Background(), cfg)
	require.NoError(t, err)

	providers := chain.Providers()
	require.Len(t, providers, 2)
	assert.Equal(t, "quranfoundation", providers[0].Provider.Name())
	assert.Equal(t, "Quran Foundation", providers[0].DisplayName)
	assert.Equal(t, "alquran", providers[1].Provider.Name())
	assert.Equal(t, "provider_chain", chain.Name())
}

func TestNewChainFromConfig_Errors(t *testing.T) {
	tests := []struct {
		name      string
		providers []config.ProviderConfig
	}{
		{"no providers", nil},
		{"unknown type", []config.ProviderConfig{{Type: "tanzil", DisplayName: "Tanzil"}}},
		{"missing credentials", []config.ProviderConfig{{Type: config.ProviderQuranFoundation, DisplayName: "QF"}}},
		{"invalid setting", []config.ProviderConfig{{Type: config.ProviderAlQuran, DisplayName: "alquran", Settings: map[string]any{
			"base_url": "not a url",
		}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewChainFromConfig(context.Background(), &config.Config{Providers: tt.providers})
			assert.Error(t, err)
		})
	}
}

func TestDecodeSettings_Defaults(t *testing.T) {
	var cfg AlQuranProviderConfig
	require.NoError(t, decodeSettings(map[string]any{"translation_edition": "en.sahih"}, &cfg))
	assert.Equal(t, "https://api.alquran.cloud/v1", cfg.BaseURL)
	assert.Equal(t, "ar.alafasy", cfg.TextEdition)
	assert.Equal(t, "en.sahih", cfg.TranslationEdition)
	assert.Equal(t, 10000, cfg.TimeoutMs)
}
