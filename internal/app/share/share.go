// Package share publishes a verse through a share target, falling back to the
// system clipboard.
package share

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/atotto/clipboard"
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/tilawah/internal/domain/verse"
)

// ErrShareAborted is returned when the user dismissed the share.
// It is not a failure and produces no notice.
var ErrShareAborted = errors.New("share aborted")

// statusClientClosed is the status a share target answers with when the user
// dismissed the share sheet.
const statusClientClosed = 499

// appName is appended to share titles.
const appName = "Al-Quran Digital"

// Method is how a verse was shared.
type Method int

const (
	MethodShare     Method = iota // Delivered to the share target
	MethodClipboard               // Copied to the clipboard
)

// String returns the string representation of the method.
func (m Method) String() string {
	switch m {
	case MethodShare:
		return "share"
	case MethodClipboard:
		return "clipboard"
	default:
		return "unknown"
	}
}

// Payload is what a share target receives.
type Payload struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// reference returns "{Chapter} [{n}]".
func reference(v verse.Verse) string {
	return fmt.Sprintf("%s [%d]", verse.NormalizeName(v.Chapter.EnglishName), v.NumberInChapter)
}

// body returns the translation, or the source text when no translation was
// loaded.
func body(v verse.Verse) string {
	if v.Translation != "" {
		return v.Translation
	}
	return v.Text
}

// NewPayload builds the share payload for a verse.
func NewPayload(v verse.Verse, url string) Payload {
	ref := reference(v)
	return Payload{
		Title: ref + " - " + appName,
		Text:  body(v) + "\n\n" + ref,
		URL:   url,
	}
}

// ClipboardText builds the text copied when no share target exists.
func ClipboardText(v verse.Verse, url string) string {
	return fmt.Sprintf("%s\n\nRead more at: %s\n\n%s - %s", body(v), url, reference(v), appName)
}

// Target delivers a share payload.
type Target interface {
	Share(ctx context.Context, p Payload) error
}

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard is the host clipboard.
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard is not supported on this host")
	}
	return errors.Wrap(clipboard.WriteAll(text), "failed to write clipboard")
}

// HTTPTarget posts share payloads as JSON to an endpoint.
type HTTPTarget struct {
	endpoint   string
	httpClient *http.Client
}

// NewHTTPTarget creates a share target posting to endpoint.
func NewHTTPTarget(endpoint string, timeout time.Duration) *HTTPTarget {
	return &HTTPTarget{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Share implements Target.
func (t *HTTPTarget) Share(ctx context.Context, p Payload) error {
	data, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "failed to encode share payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(data))
	if err != nil {
		return errors.Wrap(err, "failed to create share request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return ErrShareAborted
		}
		return errors.Wrap(err, "share request failed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == statusClientClosed:
		return ErrShareAborted
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return errors.Newf("share target returned status %d", resp.StatusCode)
	}
	return nil
}

// Sharer shares verses.
type Sharer struct {
	target    Target // nil when no share target is configured
	clipboard Clipboard
	url       string
}

// NewSharer creates a sharer. target may be nil, in which case verses are
// copied to the clipboard.
func NewSharer(target Target, cb Clipboard, url string) *Sharer {
	if cb == nil {
		cb = SystemClipboard{}
	}
	return &Sharer{
		target:    target,
		clipboard: cb,
		url:       url,
	}
}

// CanShare reports whether a share target is configured.
func (s *Sharer) CanShare() bool {
	return s.target != nil
}

// Share shares the verse and reports which method was used.
func (s *Sharer) Share(ctx context.Context, v verse.Verse) (Method, error) {
	if s.target != nil {
		err := s.target.Share(ctx, NewPayload(v, s.url))
		if errors.Is(err, ErrShareAborted) {
			zlog.Debug().Msgf("share: aborted: verse=%d", v.Number)
			return MethodShare, ErrShareAborted
		}
		if err != nil {
			return MethodShare, errors.Wrapf(err, "failed to share verse %s", v.Key())
		}
		zlog.Info().Msgf("share: shared: verse=%d", v.Number)
		return MethodShare, nil
	}

	if err := s.clipboard.WriteAll(ClipboardText(v, s.url)); err != nil {
		return MethodClipboard, errors.Wrapf(err, "failed to copy verse %s", v.Key())
	}
	zlog.Info().Msgf("share: copied to clipboard: verse=%d", v.Number)
	return MethodClipboard, nil
}
