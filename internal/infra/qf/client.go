// Package qf provides a client for the Quran Foundation content API.
package qf

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/osa030/tilawah/internal/domain/verse"
)

// Defaults.
const (
	DefaultBaseURL     = "https://apis.quran.foundation/content/api/v4"
	DefaultTokenURL    = "https://oauth2.quran.foundation/oauth2/token"
	DefaultTranslation = 20 // Saheeh International
	DefaultTimeout     = 10 * time.Second

	perPage = 50
)

// Client is a Quran Foundation content API client.
type Client struct {
	baseURL     string
	clientID    string
	translation int
	tokens      oauth2.TokenSource
	httpClient  *http.Client
	maxRetries  int
	retryDelay  time.Duration

	// Cache for the chapter list and loaded chapters
	chapters     []verse.ChapterInfo
	chapterCache map[int]*verse.Chapter

	// Mutex for cache access
	cacheMu sync.RWMutex
}

// Config represents Quran Foundation client configuration.
type Config struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	BaseURL      string
	Translation  int // Translation resource id; 0 disables translations
	Timeout      time.Duration
}

// apiError is a non-2xx response.
type apiError struct {
	StatusCode int
	Message    string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("quran foundation API error %d: %s", e.StatusCode, e.Message)
}

// ListChaptersResponse represents the response from the /chapters endpoint.
type ListChaptersResponse struct {
	Chapters []struct {
		ID              int    `json:"id"`
		RevelationPlace string `json:"revelation_place"`
		NameSimple      string `json:"name_simple"`
		NameArabic      string `json:"name_arabic"`
		VersesCount     int    `json:"verses_count"`
		TranslatedName  struct {
			Name string `json:"name"`
		} `json:"translated_name"`
	} `json:"chapters"`
}

// VersesResponse represents one page of the /verses/by_chapter endpoint.
type VersesResponse struct {
	Verses []struct {
		ID           int    `json:"id"`
		VerseNumber  int    `json:"verse_number"`
		VerseKey     string `json:"verse_key"`
		JuzNumber    int    `json:"juz_number"`
		TextUthmani  string `json:"text_uthmani"`
		Translations []struct {
			ResourceID int    `json:"resource_id"`
			Text       string `json:"text"`
		} `json:"translations"`
	} `json:"verses"`
	Pagination struct {
		CurrentPage int  `json:"current_page"`
		NextPage    *int `json:"next_page"`
		TotalPages  int  `json:"total_pages"`
	} `json:"pagination"`
}

// New creates a new Quran Foundation client. Access tokens are obtained with
// the client-credentials grant and refreshed as they expire.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, errors.New("quran foundation client credentials are required")
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = DefaultTokenURL
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		Scopes:       []string{"content"},
	}
	tokenCtx := context.WithValue(ctx, oauth2.HTTPClient, httpClient)

	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		clientID:     cfg.ClientID,
		translation:  cfg.Translation,
		tokens:       cc.TokenSource(tokenCtx),
		httpClient:   httpClient,
		maxRetries:   3,
		retryDelay:   time.Second,
		chapterCache: make(map[int]*verse.Chapter),
	}, nil
}

// CheckCredentials obtains an access token and returns its expiry.
func (c *Client) CheckCredentials(ctx context.Context) (time.Time, error) {
	tok, err := c.tokens.Token()
	if err != nil {
		return time.Time{}, errors.Wrap(err, "failed to obtain access token")
	}
	return tok.Expiry, nil
}

// ListChapters retrieves the chapter list.
func (c *Client) ListChapters(ctx context.Context) ([]verse.ChapterInfo, error) {
	c.cacheMu.RLock()
	if c.chapters != nil {
		chapters := c.chapters
		c.cacheMu.RUnlock()
		zlog.Debug().Msg("qf: using cached chapter list")
		return chapters, nil
	}
	c.cacheMu.RUnlock()

	var response ListChaptersResponse
	if err := c.get(ctx, "/chapters", nil, &response); err != nil {
		return nil, errors.Wrap(err, "failed to list chapters")
	}

	chapters := make([]verse.ChapterInfo, 0, len(response.Chapters))
	for _, ch := range response.Chapters {
		chapters = append(chapters, verse.ChapterInfo{
			Number:                 ch.ID,
			Name:                   ch.NameArabic,
			EnglishName:            ch.NameSimple,
			EnglishNameTranslation: ch.TranslatedName.Name,
			NumberOfVerses:         ch.VersesCount,
			RevelationType:         revelationType(ch.RevelationPlace),
		})
	}

	c.cacheMu.Lock()
	c.chapters = chapters
	c.cacheMu.Unlock()
	zlog.Debug().Msgf("qf: cached chapter list: count=%d", len(chapters))

	return chapters, nil
}

// GetChapter retrieves a chapter's verses, following pagination.
func (c *Client) GetChapter(ctx context.Context, number int) (*verse.Chapter, error) {
	if !verse.ValidChapterNumber(number) {
		return nil, errors.Wrapf(verse.ErrInvalidChapter, "chapter %d", number)
	}

	c.cacheMu.RLock()
	if ch, ok := c.chapterCache[number]; ok {
		c.cacheMu.RUnlock()
		zlog.Debug().Msgf("qf: using cached chapter: chapter=%d", number)
		return ch, nil
	}
	c.cacheMu.RUnlock()

	chapters, err := c.ListChapters(ctx)
	if err != nil {
		return nil, err
	}
	var info verse.ChapterInfo
	for _, ch := range chapters {
		if ch.Number == number {
			info = ch
			break
		}
	}
	if info.Number == 0 {
		return nil, errors.Wrapf(verse.ErrInvalidChapter, "chapter %d not listed", number)
	}

	ch := &verse.Chapter{ChapterInfo: info}
	for page := 1; page > 0; {
		params := url.Values{}
		params.Set("fields", "text_uthmani")
		params.Set("per_page", strconv.Itoa(perPage))
		params.Set("page", strconv.Itoa(page))
		if c.translation > 0 {
			params.Set("translations", strconv.Itoa(c.translation))
		}

		var response VersesResponse
		if err := c.get(ctx, fmt.Sprintf("/verses/by_chapter/%d", number), params, &response); err != nil {
			return nil, errors.Wrapf(err, "failed to fetch chapter %d page %d", number, page)
		}

		for _, v := range response.Verses {
			var translation string
			if len(v.Translations) > 0 {
				translation = CleanTranslation(v.Translations[0].Text)
			}
			ch.Verses = append(ch.Verses, verse.Verse{
				Number:          v.ID,
				NumberInChapter: v.VerseNumber,
				Text:            v.TextUthmani,
				Translation:     translation,
				Juz:             v.JuzNumber,
				Chapter:         info,
			})
		}

		page = 0
		if response.Pagination.NextPage != nil {
			page = *response.Pagination.NextPage
		}
	}

	c.cacheMu.Lock()
	c.chapterCache[number] = ch
	c.cacheMu.Unlock()
	zlog.Debug().Msgf("qf: cached chapter: chapter=%d verses=%d", number, len(ch.Verses))

	return ch, nil
}

// get performs an authenticated GET, retrying rate limits and server errors.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	return c.retry(ctx, func() error {
		token, err := c.tokens.Token()
		if err != nil {
			return errors.Wrap(err, "failed to obtain access token")
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return errors.Wrap(err, "failed to create request")
		}
		req.Header.Set("x-auth-token", token.AccessToken)
		req.Header.Set("x-client-id", c.clientID)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return errors.Wrap(err, "failed to send request")
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrap(err, "failed to read response body")
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			var apiErr struct {
				Message string `json:"message"`
			}
			_ = json.Unmarshal(body, &apiErr)
			return &apiError{StatusCode: resp.StatusCode, Message: apiErr.Message}
		}

		if err := json.Unmarshal(body, out); err != nil {
			return errors.Wrap(err, "failed to parse response")
		}
		return nil
	})
}

// retry retries an operation with linear backoff.
func (c *Client) retry(ctx context.Context, fn func() error) error {
	var lastErr error
	for i := 0; i < c.maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !isRetryable(err) {
			return err
		}

		if i < c.maxRetries-1 {
			select {
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), "retry aborted")
			case <-time.After(c.retryDelay * time.Duration(i+1)):
			}
		}
	}
	return errors.Wrap(lastErr, "max retries exceeded")
}

// isRetryable checks if an error is retryable.
func isRetryable(err error) bool {
	var apiErr *apiError
	if !errors.As(err, &apiErr) {
		return false
	}
	// Rate limit errors and server errors are retryable
	return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500
}

// revelationType maps the API's revelation place to a revelation type.
func revelationType(place string) string {
	switch strings.ToLower(place) {
	case "makkah", "mecca", "meccan":
		return verse.RevelationMeccan
	case "madinah", "medina", "medinan":
		return verse.RevelationMedinan
	default:
		return place
	}
}

var (
	footnotePattern = regexp.MustCompile(`(?s)<sup[^>]*>.*?</sup>`)
	tagPattern      = regexp.MustCompile(`<[^>]+>`)
)

// CleanTranslation removes footnote markers and HTML tags from a translation.
func CleanTranslation(text string) string {
	text = footnotePattern.ReplaceAllString(text, "")
	text = tagPattern.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}
