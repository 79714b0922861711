package share

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/tilawah/internal/domain/verse"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func testVerse() verse.Verse {
	return verse.Verse{
		Number:          262,
		NumberInChapter: 255,
		Text:            "arabic",
		Translation:     "God: there is no deity save Him",
		Chapter:         verse.ChapterInfo{Number: 2, EnglishName: "Al-Baqara"},
	}
}

const readerURL = "https://reader.test/surah/2"

func TestNewPayload(t *testing.T) {
	p := NewPayload(testVerse(), readerURL)
	assert.Equal(t, "Al-Baqara [255] - Al-Quran Digital", p.Title)
	assert.Equal(t, "God: there is no deity save Him\n\nAl-Baqara [255]", p.Text)
	assert.Equal(t, readerURL, p.URL)
}

func TestClipboardText(t *testing.T) {
	assert.Equal(t,
		"God: there is no deity save Him\n\nRead more at: https://reader.test/surah/2\n\nAl-Baqara [255] - Al-Quran Digital",
		ClipboardText(testVerse(), readerURL))

	v := testVerse()
	v.Translation = ""
	assert.Equal(t,
		"arabic\n\nRead more at: https://reader.test/surah/2\n\nAl-Baqara [255] - Al-Quran Digital",
		ClipboardText(v, readerURL))
}

func TestSharer_HTTPTarget(t *testing.T) {
	var got Payload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	cb := &fakeClipboard{}
	s := NewSharer(NewHTTPTarget(server.URL, time.Second), cb, readerURL)
	assert.True(t, s.CanShare())

	method, err := s.Share(context.Background(), testVerse())
	require.NoError(t, err)
	assert.Equal(t, MethodShare, method)
	assert.Equal(t, NewPayload(testVerse(), readerURL), got)
	assert.Empty(t, cb.text)
}

func TestSharer_Aborted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(statusClientClosed)
	}))
	defer server.Close()

	s := NewSharer(NewHTTPTarget(server.URL, time.Second), &fakeClipboard{}, readerURL)
	_, err := s.Share(context.Background(), testVerse())
	assert.ErrorIs(t, err, ErrShareAborted)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Share(ctx, testVerse())
	assert.ErrorIs(t, err, ErrShareAborted)
}

func TestSharer_TargetFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	s := NewSharer(NewHTTPTarget(server.URL, time.Second), &fakeClipboard{}, readerURL)
	_, err := s.Share(context.Background(), testVerse())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrShareAborted))
}

func TestSharer_ClipboardFallback(t *testing.T) {
	cb := &fakeClipboard{}
	s := NewSharer(nil, cb, readerURL)
	assert.False(t, s.CanShare())

	method, err := s.Share(context.Background(), testVerse())
	require.NoError(t, err)
	assert.Equal(t, MethodClipboard, method)
	assert.Equal(t, ClipboardText(testVerse(), readerURL), cb.text)

	cb.err = errors.New("no display")
	_, err = s.Share(context.Background(), testVerse())
	assert.Error(t, err)
}

func TestMethod_String(t *testing.T) {
	assert.Equal(t, "share", MethodShare.String())
	assert.Equal(t, "clipboard", MethodClipboard.String())
}
