package qf

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/tilawah/internal/domain/verse"
)

const chaptersResponse = `{
	"chapters": [
		{"id": 1, "revelation_place": "makkah", "name_simple": "Al-Fatihah", "name_arabic": "الفاتحة", "verses_count": 7, "translated_name": {"language_name": "english", "name": "The Opener"}},
		{"id": 2, "revelation_place": "madinah", "name_simple": "Al-Baqarah", "name_arabic": "البقرة", "verses_count": 286, "translated_name": {"language_name": "english", "name": "The Cow"}}
	]
}`

// newTestServer serves a token endpoint and the content API.
func newTestServer(t *testing.T, content http.HandlerFunc) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var tokenCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.Form.Get("grant_type"))
		assert.Equal(t, "content", r.Form.Get("scope"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token": "test-token", "token_type": "bearer", "expires_in": 3600}`)
	})
	mux.HandleFunc("/content/api/v4/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-token", r.Header.Get("x-auth-token"))
		assert.Equal(t, "test-client", r.Header.Get("x-client-id"))
		content(w, r)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &tokenCalls
}

func newTestClient(t *testing.T, server *httptest.Server, translation int) *Client {
	t.Helper()
	client, err := New(context.Background(), Config{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		TokenURL:     server.URL + "/oauth2/token",
		BaseURL:      server.URL + "/content/api/v4",
		Translation:  translation,
	})
	require.NoError(t, err)
	client.retryDelay = time.Millisecond
	return client
}

func TestListChapters(t *testing.T) {
	server, tokenCalls := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/content/api/v4/chapters", r.URL.Path)
		fmt.Fprint(w, chaptersResponse)
	})
	client := newTestClient(t, server, DefaultTranslation)

	chapters, err := client.ListChapters(context.Background())
	require.NoError(t, err)
	require.Len(t, chapters, 2)
	assert.Equal(t, verse.ChapterInfo{
		Number:                 2,
		Name:                   "البقرة",
		EnglishName:            "Al-Baqarah",
		EnglishNameTranslation: "The Cow",
		NumberOfVerses:         286,
		RevelationType:         verse.RevelationMedinan,
	}, chapters[1])
	assert.Equal(t, verse.RevelationMeccan, chapters[0].RevelationType)

	_, err = client.ListChapters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), tokenCalls.Load(), "the token is reused until it expires")
}

func TestCheckCredentials(t *testing.T) {
	server, tokenCalls := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected content request: %s", r.URL.Path)
	})
	client := newTestClient(t, server, 0)

	expiry, err := client.CheckCredentials(context.Background())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiry, time.Minute)
	assert.Equal(t, int32(1), tokenCalls.Load())
}

func TestCheckCredentials_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error": "invalid_client"}`)
	}))
	t.Cleanup(server.Close)

	client, err := New(context.Background(), Config{
		ClientID:     "test-client",
		ClientSecret: "wrong",
		TokenURL:     server.URL,
		BaseURL:      server.URL,
	})
	require.NoError(t, err)

	_, err = client.CheckCredentials(context.Background())
	assert.Error(t, err)
}

func TestGetChapter_FollowsPagination(t *testing.T) {
	var pages []string
	server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/content/api/v4/chapters":
			fmt.Fprint(w, chaptersResponse)
		case "/content/api/v4/verses/by_chapter/1":
			q := r.URL.Query()
			assert.Equal(t, "text_uthmani", q.Get("fields"))
			assert.Equal(t, "50", q.Get("per_page"))
			assert.Equal(t, "20", q.Get("translations"))
			pages = append(pages, q.Get("page"))

			if q.Get("page") == "1" {
				fmt.Fprint(w, `{
					"verses": [{"id": 1, "verse_number": 1, "verse_key": "1:1", "juz_number": 1, "text_uthmani": "بِسْمِ ٱللَّهِ",
						"translations": [{"resource_id": 20, "text": "In the Name of Allah<sup foot_note=\"1\">1</sup>, the <i>Most</i> Compassionate"}]}],
					"pagination": {"current_page": 1, "next_page": 2, "total_pages": 2}
				}`)
				return
			}
			fmt.Fprint(w, `{
				"verses": [{"id": 2, "verse_number": 2, "verse_key": "1:2", "juz_number": 1, "text_uthmani": "ٱلْحَمْدُ لِلَّهِ", "translations": []}],
				"pagination": {"current_page": 2, "next_page": null, "total_pages": 2}
			}`)
		default:
			http.NotFound(w, r)
		}
	})
	client := newTestClient(t, server, DefaultTranslation)

	ch, err := client.GetChapter(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, pages)

	assert.Equal(t, "Al-Fatihah", ch.EnglishName)
	require.Len(t, ch.Verses, 2)
	assert.Equal(t, "بِسْمِ ٱللَّهِ", ch.Verses[0].Text, "chapter 1 keeps its opening verse")
	assert.Equal(t, "In the Name of Allah, the Most Compassionate", ch.Verses[0].Translation)
	assert.Equal(t, 2, ch.Verses[1].Number)
	assert.Empty(t, ch.Verses[1].Translation)
	assert.Equal(t, 1, ch.Verses[1].Chapter.Number)

	// Cached
	_, err = client.GetChapter(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, pages, 2)
}

func TestGetChapter_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprint(w, `{"message": "try again"}`)
			return
		}
		fmt.Fprint(w, chaptersResponse)
	})
	client := newTestClient(t, server, 0)

	chapters, err := client.ListChapters(context.Background())
	require.NoError(t, err)
	assert.Len(t, chapters, 2)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetChapter_ClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"message": "forbidden"}`)
	})
	client := newTestClient(t, server, 0)

	_, err := client.ListChapters(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Equal(t, int32(1), calls.Load())
}

func TestGetChapter_InvalidNumber(t *testing.T) {
	server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request: %s", r.URL.Path)
	})
	client := newTestClient(t, server, 0)

	_, err := client.GetChapter(context.Background(), 115)
	assert.True(t, errors.Is(err, verse.ErrInvalidChapter))
}

func TestNew_RequiresCredentials(t *testing.T) {
	_, err := New(context.Background(), Config{ClientID: "id"})
	assert.Error(t, err)
}

func TestCleanTranslation(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"with<sup foot_note=\"77\">1</sup> note", "with note"},
		{"<b>bold</b>  and   spaced", "bold and spaced"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanTranslation(tt.in))
	}
}
