// Package alquran provides a client for the alquran.cloud API.
package alquran

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/osa030/tilawah/internal/domain/verse"
)

// Defaults.
const (
	DefaultBaseURL            = "https://api.alquran.cloud/v1"
	DefaultTextEdition        = "ar.alafasy"
	DefaultTranslationEdition = "en.asad"
	DefaultTimeout            = 10 * time.Second
)

// Client is an alquran.cloud API client.
type Client struct {
	baseURL            string
	textEdition        string
	translationEdition string
	httpClient         *http.Client

	// Cache for the chapter list and loaded chapters
	chapters     []verse.ChapterInfo
	chapterCache map[int]*verse.Chapter

	// Mutex for cache access
	cacheMu sync.RWMutex
}

// Config represents alquran.cloud client configuration.
type Config struct {
	BaseURL            string
	TextEdition        string
	TranslationEdition string // Empty disables translations
	Timeout            time.Duration
}

// chapterJSON is a chapter as returned by the API.
type chapterJSON struct {
	Number                 int    `json:"number"`
	Name                   string `json:"name"`
	EnglishName            string `json:"englishName"`
	EnglishNameTranslation string `json:"englishNameTranslation"`
	NumberOfAyahs          int    `json:"numberOfAyahs"`
	RevelationType         string `json:"revelationType"`
}

func (c chapterJSON) info() verse.ChapterInfo {
	return verse.ChapterInfo{
		Number:                 c.Number,
		Name:                   c.Name,
		EnglishName:            c.EnglishName,
		EnglishNameTranslation: c.EnglishNameTranslation,
		NumberOfVerses:         c.NumberOfAyahs,
		RevelationType:         c.RevelationType,
	}
}

// ListChaptersResponse represents the response from the /surah endpoint.
type ListChaptersResponse struct {
	Code   int           `json:"code"`
	Status string        `json:"status"`
	Data   []chapterJSON `json:"data"`
}

// GetEditionResponse represents the response from the /surah/{n}/{edition}
// endpoint.
type GetEditionResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   struct {
		chapterJSON
		Ayahs []struct {
			Number        int    `json:"number"`
			Text          string `json:"text"`
			NumberInSurah int    `json:"numberInSurah"`
			Juz           int    `json:"juz"`
		} `json:"ayahs"`
	} `json:"data"`
}

// envelope is the part of every response used to detect API errors.
type envelope struct {
	Code   int             `json:"code"`
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// New creates a new alquran.cloud client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.TextEdition == "" {
		return nil, errors.New("alquran text edition is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		baseURL:            cfg.BaseURL,
		textEdition:        cfg.TextEdition,
		translationEdition: cfg.TranslationEdition,
		httpClient:         &http.Client{Timeout: cfg.Timeout},
		chapterCache:       make(map[int]*verse.Chapter),
	}, nil
}

// ListChapters retrieves the chapter list.
// Reference: https://alquran.cloud/api (Surah endpoint)
func (c *Client) ListChapters(ctx context.Context) ([]verse.ChapterInfo, error) {
	c.cacheMu.RLock()
	if c.chapters != nil {
		chapters := c.chapters
		c.cacheMu.RUnlock()
		zlog.Debug().Msg("alquran: using cached chapter list")
		return chapters, nil
	}
	c.cacheMu.RUnlock()

	var response ListChaptersResponse
	if err := c.get(ctx, "/surah", &response); err != nil {
		return nil, err
	}

	chapters := make([]verse.ChapterInfo, 0, len(response.Data))
	for _, ch := range response.Data {
		chapters = append(chapters, ch.info())
	}

	c.cacheMu.Lock()
	c.chapters = chapters
	c.cacheMu.Unlock()
	zlog.Debug().Msgf("alquran: cached chapter list: count=%d", len(chapters))

	return chapters, nil
}

// GetChapter retrieves a chapter's verses with their translation. The text
// and translation editions are fetched concurrently.
func (c *Client) GetChapter(ctx context.Context, number int) (*verse.Chapter, error) {
	if !verse.ValidChapterNumber(number) {
		return nil, errors.Wrapf(verse.ErrInvalidChapter, "chapter %d", number)
	}

	c.cacheMu.RLock()
	if ch, ok := c.chapterCache[number]; ok {
		c.cacheMu.RUnlock()
		zlog.Debug().Msgf("alquran: using cached chapter: chapter=%d", number)
		return ch, nil
	}
	c.cacheMu.RUnlock()

	var text, translation GetEditionResponse
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.get(gctx, fmt.Sprintf("/surah/%d/%s", number, c.textEdition), &text)
	})
	if c.translationEdition != "" {
		g.Go(func() error {
			return c.get(gctx, fmt.Sprintf("/surah/%d/%s", number, c.translationEdition), &translation)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "failed to fetch chapter %d", number)
	}

	translations := make(map[int]string, len(translation.Data.Ayahs))
	for _, a := range translation.Data.Ayahs {
		translations[a.NumberInSurah] = a.Text
	}

	info := text.Data.info()
	ch := &verse.Chapter{
		ChapterInfo: info,
		Verses:      make([]verse.Verse, 0, len(text.Data.Ayahs)),
	}
	missing := 0
	for _, a := range text.Data.Ayahs {
		v := verse.Verse{
			Number:          a.Number,
			NumberInChapter: a.NumberInSurah,
			Text:            verse.StripBismillah(number, a.NumberInSurah, a.Text),
			Juz:             a.Juz,
			Chapter:         info,
		}
		if t, ok := translations[a.NumberInSurah]; ok {
			v.Translation = t
		} else if c.translationEdition != "" {
			missing++
		}
		ch.Verses = append(ch.Verses, v)
	}
	if missing > 0 {
		zlog.Warn().Msgf("alquran: translation edition is missing verses: chapter=%d edition=%s missing=%d", number, c.translationEdition, missing)
	}

	c.cacheMu.Lock()
	c.chapterCache[number] = ch
	c.cacheMu.Unlock()
	zlog.Debug().Msgf("alquran: cached chapter: chapter=%d verses=%d", number, len(ch.Verses))

	return ch, nil
}

// get fetches path and decodes a successful envelope into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	// Check for API errors
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return errors.Wrapf(err, "failed to parse response (status %d)", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK || env.Code != http.StatusOK {
		return errors.Errorf("alquran API error %d: %s", env.Code, env.Status)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "failed to parse response")
	}
	return nil
}
