package connect

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/osa030/tilawah/internal/app/bookmarks"
	"github.com/osa030/tilawah/internal/app/playback"
	"github.com/osa030/tilawah/internal/app/reader"
	"github.com/osa030/tilawah/internal/app/share"
	"github.com/osa030/tilawah/internal/domain/verse"
	readerv1 "github.com/osa030/tilawah/internal/gen/tilawah/reader/v1"
	"github.com/osa030/tilawah/internal/gen/tilawah/reader/v1/readerv1connect"
	"github.com/osa030/tilawah/internal/infra/config"
	"github.com/osa030/tilawah/internal/infra/kv"
)

const adminToken = "test-admin-token"

type stubProvider struct{}

func (stubProvider) ListChapters(ctx context.Context) ([]verse.ChapterInfo, error) {
	return []verse.ChapterInfo{
		{Number: 1, EnglishName: "Al-Faatiha", EnglishNameTranslation: "The Opening", NumberOfVerses: 7},
		{Number: 2, EnglishName: "Al-Baqara", EnglishNameTranslation: "The Cow", NumberOfVerses: 286},
	}, nil
}

func (stubProvider) GetChapter(ctx context.Context, number int) (*verse.Chapter, error) {
	info := verse.ChapterInfo{Number: number, EnglishName: fmt.Sprintf("Chapter-%d", number), NumberOfVerses: 2}
	ch := &verse.Chapter{ChapterInfo: info}
	for i := 1; i <= 2; i++ {
		ch.Verses = append(ch.Verses, verse.Verse{
			Number:          number*100 + i,
			NumberInChapter: i,
			Text:            "text",
			Translation:     "translation",
			Chapter:         info,
		})
	}
	return ch, nil
}

func (stubProvider) Name() string { return "stub" }

type stubOpener struct{}

func (stubOpener) Open(url string, cb playback.MediaCallbacks) (playback.Media, error) {
	return stubMedia{}, nil
}

type stubMedia struct{}

func (stubMedia) Play(ctx context.Context) error { return nil }
func (stubMedia) Close() error                   { return nil }

type memClipboard struct {
	mu   sync.Mutex
	text string
}

func (c *memClipboard) WriteAll(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	return nil
}

type testServer struct {
	url    string
	reader readerv1connect.ReaderServiceClient
	admin  readerv1connect.AdminServiceClient
	mgr    *reader.Manager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	t.Setenv("ADMIN_TOKEN", "")

	cfg, err := config.Parse([]byte(`
admin:
  token: ` + adminToken + `
providers:
  - type: alquran
    display_name: alquran.cloud
`))
	require.NoError(t, err)

	store, err := kv.OpenFile(filepath.Join(t.TempDir(), "bookmarks.json"))
	require.NoError(t, err)

	clock := clockwork.NewFakeClock()
	mgr, err := reader.NewManager(cfg, reader.Deps{
		Provider:  stubProvider{},
		Opener:    stubOpener{},
		Gate:      playback.NewGate(playback.PlatformFunc(func() bool { return true }), nil),
		Bookmarks: bookmarks.NewService(store, clock),
		Sharer:    share.NewSharer(nil, &memClipboard{}, "https://reader.test/"),
		Clock:     clock,
	})
	require.NoError(t, err)

	srv := httptest.NewServer(NewRouter(mgr, cfg))
	t.Cleanup(srv.Close)
	t.Cleanup(func() {
		mgr.Close()
		_ = store.Close()
	})

	return &testServer{
		url:    srv.URL,
		reader: readerv1connect.NewReaderServiceClient(srv.Client(), srv.URL),
		admin:  readerv1connect.NewAdminServiceClient(srv.Client(), srv.URL),
		mgr:    mgr,
	}
}

func (s *testServer) start(t *testing.T) {
	t.Helper()
	require.NoError(t, s.mgr.Start(context.Background()))
}

func empty() *connect.Request[emptypb.Empty] {
	return connect.NewRequest(&emptypb.Empty{})
}

func TestRouter_Healthz(t *testing.T) {
	s := newTestServer(t)

	resp, err := http.Get(s.url + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}

func TestReaderService_ListChapters(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	resp, err := s.reader.ListChapters(ctx, connect.NewRequest(&readerv1.ListChaptersRequest{Query: "opening"}))
	require.NoError(t, err)
	require.Len(t, resp.Msg.Chapters, 1)
	assert.Equal(t, int32(1), resp.Msg.Chapters[0].Number)
	assert.Equal(t, int32(7), resp.Msg.Chapters[0].NumberOfVerses)
}

func TestReaderService_WireFormats(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	clients := map[string]readerv1connect.ReaderServiceClient{
		"proto":     s.reader,
		"protojson": readerv1connect.NewReaderServiceClient(http.DefaultClient, s.url, connect.WithProtoJSON()),
		"grpcweb":   readerv1connect.NewReaderServiceClient(http.DefaultClient, s.url, connect.WithGRPCWeb()),
	}
	for name, client := range clients {
		t.Run(name, func(t *testing.T) {
			resp, err := client.ListChapters(ctx, connect.NewRequest(&readerv1.ListChaptersRequest{Query: "cow"}))
			require.NoError(t, err)
			require.Len(t, resp.Msg.GetChapters(), 1)
			assert.Equal(t, "Al-Baqara", resp.Msg.GetChapters()[0].GetEnglishName())
		})
	}

	// Plain JSON over HTTP uses the protojson field names
	resp, err := http.Post(
		s.url+readerv1connect.ReaderServiceListChaptersProcedure,
		"application/json",
		strings.NewReader(`{"query":"opening"}`),
	)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"chapters":[{"number":1,"englishName":"Al-Faatiha","englishNameTranslation":"The Opening","numberOfVerses":7}]}`, string(body))
}

func TestReaderService_Chapters(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, err := s.reader.GetChapter(ctx, empty())
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	resp, err := s.reader.SelectChapter(ctx, connect.NewRequest(&readerv1.SelectChapterRequest{Number: 2}))
	require.NoError(t, err)
	assert.Equal(t, int32(2), resp.Msg.Chapter.Number)
	require.Len(t, resp.Msg.Verses, 2)
	assert.Equal(t, int32(201), resp.Msg.Verses[0].Number)

	resp, err = s.reader.SelectChapter(ctx, connect.NewRequest(&readerv1.SelectChapterRequest{Direction: readerv1.Direction_DIRECTION_PREV}))
	require.NoError(t, err)
	assert.Equal(t, int32(1), resp.Msg.Chapter.Number)

	_, err = s.reader.SelectChapter(ctx, connect.NewRequest(&readerv1.SelectChapterRequest{Direction: readerv1.Direction_DIRECTION_PREV}))
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	_, err = s.reader.SelectChapter(ctx, connect.NewRequest(&readerv1.SelectChapterRequest{Number: 0}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = s.reader.SelectChapter(ctx, connect.NewRequest(&readerv1.SelectChapterRequest{Direction: readerv1.Direction(7)}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	got, err := s.reader.GetChapter(ctx, empty())
	require.NoError(t, err)
	assert.Equal(t, int32(1), got.Msg.Chapter.Number)
}

func TestReaderService_PlayAndInteract(t *testing.T) {
	s := newTestServer(t)
	s.start(t)
	ctx := context.Background()

	// No gesture yet: the verse is parked
	resp, err := s.reader.Play(ctx, connect.NewRequest(&readerv1.PlayRequest{VerseNumber: 102}))
	require.NoError(t, err)
	assert.Equal(t, "pending_permission", resp.Msg.State)
	assert.Equal(t, int32(102), resp.Msg.ActiveVerse)

	interact, err := s.reader.Interact(ctx, connect.NewRequest(&readerv1.InteractRequest{
		Interaction: &readerv1.Interaction{Gesture: "touchstart"},
	}))
	require.NoError(t, err)
	assert.False(t, interact.Msg.Qualifies)
	assert.Equal(t, "pending_permission", interact.Msg.State)

	interact, err = s.reader.Interact(ctx, connect.NewRequest(&readerv1.InteractRequest{
		Interaction: &readerv1.Interaction{Gesture: "click"},
	}))
	require.NoError(t, err)
	assert.True(t, interact.Msg.Qualifies)
	assert.Equal(t, "playing", interact.Msg.State)

	chapter, err := s.reader.GetChapter(ctx, empty())
	require.NoError(t, err)
	assert.True(t, chapter.Msg.Verses[1].Playing)

	stop, err := s.reader.Stop(ctx, empty())
	require.NoError(t, err)
	assert.Equal(t, "idle", stop.Msg.State)

	_, err = s.reader.Play(ctx, connect.NewRequest(&readerv1.PlayRequest{VerseNumber: 999}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = s.reader.Play(ctx, connect.NewRequest(&readerv1.PlayRequest{
		VerseNumber: 101,
		Interaction: &readerv1.Interaction{Gesture: "wave"},
	}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = s.reader.Interact(ctx, connect.NewRequest(&readerv1.InteractRequest{}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestReaderService_Bookmarks(t *testing.T) {
	s := newTestServer(t)
	s.start(t)
	ctx := context.Background()

	added, err := s.reader.AddBookmark(ctx, connect.NewRequest(&readerv1.BookmarkRequest{VerseNumber: 101}))
	require.NoError(t, err)
	assert.True(t, added.Msg.Added)
	assert.Equal(t, "Chapter-1", added.Msg.Bookmark.ChapterName)

	toggled, err := s.reader.ToggleBookmark(ctx, connect.NewRequest(&readerv1.BookmarkRequest{VerseNumber: 102}))
	require.NoError(t, err)
	assert.True(t, toggled.Msg.Bookmarked)

	list, err := s.reader.ListBookmarks(ctx, empty())
	require.NoError(t, err)
	require.Len(t, list.Msg.Bookmarks, 2)
	assert.Equal(t, int32(102), list.Msg.Bookmarks[0].VerseNumber)

	chapter, err := s.reader.GetChapter(ctx, empty())
	require.NoError(t, err)
	assert.True(t, chapter.Msg.Verses[0].Bookmarked)

	removed, err := s.reader.RemoveBookmark(ctx, connect.NewRequest(&readerv1.BookmarkRequest{VerseNumber: 101}))
	require.NoError(t, err)
	assert.True(t, removed.Msg.Removed)

	removed, err = s.reader.RemoveBookmark(ctx, connect.NewRequest(&readerv1.BookmarkRequest{VerseNumber: 101}))
	require.NoError(t, err)
	assert.False(t, removed.Msg.Removed)

	focus, err := s.reader.SelectBookmark(ctx, connect.NewRequest(&readerv1.SelectBookmarkRequest{
		ChapterNumber:   2,
		NumberInChapter: 2,
	}))
	require.NoError(t, err)
	assert.Equal(t, int32(202), focus.Msg.VerseNumber)

	status, err := s.reader.GetStatus(ctx, empty())
	require.NoError(t, err)
	assert.Equal(t, int32(2), status.Msg.ChapterNumber)
	assert.Equal(t, int32(202), status.Msg.FocusVerse)
	assert.Equal(t, "ready", status.Msg.Phase)
	assert.Equal(t, "stub", status.Msg.Provider)
}

func TestReaderService_Share(t *testing.T) {
	s := newTestServer(t)
	s.start(t)

	resp, err := s.reader.Share(context.Background(), connect.NewRequest(&readerv1.ShareRequest{VerseNumber: 101}))
	require.NoError(t, err)
	assert.Equal(t, "clipboard", resp.Msg.Method)
	assert.False(t, resp.Msg.Aborted)
}

func TestReaderService_SubscribeNotices(t *testing.T) {
	s := newTestServer(t)
	s.start(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := s.reader.SubscribeNotices(ctx, empty())
	require.NoError(t, err)
	defer stream.Close()

	require.True(t, stream.Receive(), "initial message: %v", stream.Err())
	assert.True(t, stream.Msg().Initial)

	require.Eventually(t, func() bool {
		return s.mgr.Notices().SubscriberCount() == 1
	}, time.Second, 5*time.Millisecond)

	_, err = s.reader.AddBookmark(ctx, connect.NewRequest(&readerv1.BookmarkRequest{VerseNumber: 101}))
	require.NoError(t, err)

	require.True(t, stream.Receive(), "notice: %v", stream.Err())
	msg := stream.Msg()
	assert.Equal(t, "Bookmark added", msg.Text)
	assert.Equal(t, "bookmark", msg.Action)
	assert.Equal(t, int32(101), msg.VerseNumber)
	assert.False(t, msg.Initial)
}

func TestAdminService_Auth(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, err := s.admin.GetStatus(ctx, empty())
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	req := empty()
	req.Header().Set(AdminTokenHeader, "wrong")
	_, err = s.admin.GetStatus(ctx, req)
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	req = empty()
	req.Header().Set(AdminTokenHeader, adminToken)
	resp, err := s.admin.GetStatus(ctx, req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Msg.SessionId)
}

func TestAdminService_ResetPlayback(t *testing.T) {
	s := newTestServer(t)
	s.start(t)
	ctx := context.Background()

	_, err := s.reader.Play(ctx, connect.NewRequest(&readerv1.PlayRequest{
		VerseNumber: 101,
		Interaction: &readerv1.Interaction{Gesture: "click"},
	}))
	require.NoError(t, err)

	req := empty()
	req.Header().Set(AdminTokenHeader, adminToken)
	resp, err := s.admin.ResetPlayback(ctx, req)
	require.NoError(t, err)
	assert.True(t, resp.Msg.Success)

	status, err := s.reader.GetStatus(ctx, empty())
	require.NoError(t, err)
	assert.Equal(t, "idle", status.Msg.PlaybackState)
	assert.Zero(t, status.Msg.ActiveVerse)
}
