package connect

import (
	"context"
	"sync"

	"connectrpc.com/connect"
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/osa030/tilawah/internal/app/notice"
	"github.com/osa030/tilawah/internal/app/reader"
	"github.com/osa030/tilawah/internal/domain/verse"
	readerv1 "github.com/osa030/tilawah/internal/gen/tilawah/reader/v1"
	"github.com/osa030/tilawah/internal/gen/tilawah/reader/v1/readerv1connect"
	"github.com/osa030/tilawah/internal/infra/config"
)

// ReaderService implements the ReaderService RPC.
type ReaderService struct {
	reader *reader.Manager
	config *config.Config
}

// NewReaderService creates a new ReaderService.
func NewReaderService(reader *reader.Manager, cfg *config.Config) *ReaderService {
	return &ReaderService{
		reader: reader,
		config: cfg,
	}
}

// Ensure ReaderService implements the interface.
var _ readerv1connect.ReaderServiceHandler = (*ReaderService)(nil)

// ListChapters lists chapters matching the query.
func (s *ReaderService) ListChapters(
	ctx context.Context,
	req *connect.Request[readerv1.ListChaptersRequest],
) (*connect.Response[readerv1.ListChaptersResponse], error) {
	chapters, err := s.reader.ListChapters(ctx, req.Msg.Query)
	if err != nil {
		return nil, toConnectError(err)
	}

	resp := &readerv1.ListChaptersResponse{
		Chapters: make([]*readerv1.ChapterSummary, len(chapters)),
	}
	for i, c := range chapters {
		resp.Chapters[i] = toChapterSummary(c)
	}
	return connect.NewResponse(resp), nil
}

// GetChapter returns the selected chapter with its verses.
func (s *ReaderService) GetChapter(
	ctx context.Context,
	req *connect.Request[emptypb.Empty],
) (*connect.Response[readerv1.ChapterResponse], error) {
	ch, err := s.reader.CurrentChapter()
	if err != nil {
		return nil, toConnectError(err)
	}
	resp, err := s.chapterResponse(ctx, ch)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(resp), nil
}

// SelectChapter loads a chapter by number or relative to the current one.
func (s *ReaderService) SelectChapter(
	ctx context.Context,
	req *connect.Request[readerv1.SelectChapterRequest],
) (*connect.Response[readerv1.ChapterResponse], error) {
	var (
		ch  *verse.Chapter
		err error
	)
	switch req.Msg.Direction {
	case readerv1.Direction_DIRECTION_UNSPECIFIED:
		ch, err = s.reader.SelectChapter(ctx, int(req.Msg.GetNumber()))
	case readerv1.Direction_DIRECTION_NEXT:
		ch, err = s.reader.NextChapter(ctx)
	case readerv1.Direction_DIRECTION_PREV:
		ch, err = s.reader.PrevChapter(ctx)
	default:
		return nil, connect.NewError(connect.CodeInvalidArgument,
			errors.Newf("unknown direction: %v", req.Msg.GetDirection()))
	}
	if err != nil {
		return nil, toConnectError(err)
	}

	resp, err := s.chapterResponse(ctx, ch)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(resp), nil
}

// Play plays a verse, or stops it when it is the active one.
func (s *ReaderService) Play(
	ctx context.Context,
	req *connect.Request[readerv1.PlayRequest],
) (*connect.Response[readerv1.PlaybackResponse], error) {
	in, err := toInteraction(req.Msg.Interaction)
	if err != nil {
		return nil, err
	}
	// Playback outlives the request
	if err := s.reader.Play(context.WithoutCancel(ctx), int(req.Msg.VerseNumber), in); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(s.playbackResponse()), nil
}

// Stop stops recitation.
func (s *ReaderService) Stop(
	ctx context.Context,
	req *connect.Request[emptypb.Empty],
) (*connect.Response[readerv1.PlaybackResponse], error) {
	s.reader.Stop()
	return connect.NewResponse(s.playbackResponse()), nil
}

// Interact forwards a user interaction to the permission gate.
func (s *ReaderService) Interact(
	ctx context.Context,
	req *connect.Request[readerv1.InteractRequest],
) (*connect.Response[readerv1.InteractResponse], error) {
	if req.Msg.Interaction == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("interaction is required"))
	}
	in, err := toInteraction(req.Msg.Interaction)
	if err != nil {
		return nil, err
	}

	qualifies := s.reader.Interact(context.WithoutCancel(ctx), *in)
	return connect.NewResponse(&readerv1.InteractResponse{
		Qualifies: qualifies,
		State:     s.reader.GetStatus().Playback.State.String(),
	}), nil
}

// AddBookmark bookmarks a verse of the current chapter.
func (s *ReaderService) AddBookmark(
	ctx context.Context,
	req *connect.Request[readerv1.BookmarkRequest],
) (*connect.Response[readerv1.AddBookmarkResponse], error) {
	b, added, err := s.reader.AddBookmark(ctx, int(req.Msg.VerseNumber))
	if err != nil {
		return nil, toConnectError(err)
	}

	resp := &readerv1.AddBookmarkResponse{Added: added}
	if added {
		resp.Bookmark = toBookmarkInfo(b)
	}
	return connect.NewResponse(resp), nil
}

// RemoveBookmark deletes a bookmark.
func (s *ReaderService) RemoveBookmark(
	ctx context.Context,
	req *connect.Request[readerv1.BookmarkRequest],
) (*connect.Response[readerv1.RemoveBookmarkResponse], error) {
	removed, err := s.reader.RemoveBookmark(ctx, int(req.Msg.VerseNumber))
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&readerv1.RemoveBookmarkResponse{Removed: removed}), nil
}

// ToggleBookmark flips the bookmark of a verse of the current chapter.
func (s *ReaderService) ToggleBookmark(
	ctx context.Context,
	req *connect.Request[readerv1.BookmarkRequest],
) (*connect.Response[readerv1.ToggleBookmarkResponse], error) {
	bookmarked, err := s.reader.ToggleBookmark(ctx, int(req.Msg.VerseNumber))
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&readerv1.ToggleBookmarkResponse{Bookmarked: bookmarked}), nil
}

// ListBookmarks lists bookmarks, newest first.
func (s *ReaderService) ListBookmarks(
	ctx context.Context,
	req *connect.Request[emptypb.Empty],
) (*connect.Response[readerv1.ListBookmarksResponse], error) {
	list, err := s.reader.Bookmarks(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	resp := &readerv1.ListBookmarksResponse{
		Bookmarks: make([]*readerv1.BookmarkInfo, len(list)),
	}
	for i, b := range list {
		resp.Bookmarks[i] = toBookmarkInfo(b)
	}
	return connect.NewResponse(resp), nil
}

// SelectBookmark brings a bookmarked verse into sight.
func (s *ReaderService) SelectBookmark(
	ctx context.Context,
	req *connect.Request[readerv1.SelectBookmarkRequest],
) (*connect.Response[readerv1.SelectBookmarkResponse], error) {
	n, err := s.reader.SelectBookmark(ctx, int(req.Msg.ChapterNumber), int(req.Msg.NumberInChapter))
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&readerv1.SelectBookmarkResponse{VerseNumber: int32(n)}), nil
}

// Share shares a verse of the current chapter.
func (s *ReaderService) Share(
	ctx context.Context,
	req *connect.Request[readerv1.ShareRequest],
) (*connect.Response[readerv1.ShareResponse], error) {
	res, err := s.reader.Share(ctx, int(req.Msg.VerseNumber))
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&readerv1.ShareResponse{
		Method:  res.Method.String(),
		Aborted: res.Aborted,
	}), nil
}

// GetStatus returns the current reader status.
func (s *ReaderService) GetStatus(
	ctx context.Context,
	req *connect.Request[emptypb.Empty],
) (*connect.Response[readerv1.StatusResponse], error) {
	return connect.NewResponse(toStatusResponse(s.reader.GetStatus())), nil
}

// SubscribeNotices streams notices until the client disconnects or the
// session closes.
func (s *ReaderService) SubscribeNotices(
	ctx context.Context,
	req *connect.Request[emptypb.Empty],
	stream *connect.ServerStream[readerv1.NoticeInfo],
) error {
	notices := s.reader.Notices()
	adapter := &noticeStreamAdapter{stream: stream}

	// Initial message carries the visible notice, if any
	initial := &readerv1.NoticeInfo{Initial: true}
	if n, ok := notices.Current(); ok {
		initial = toNoticeInfo(&n)
		initial.Initial = true
	}
	if err := adapter.send(initial); err != nil {
		return err
	}

	subscriptionID := notices.Subscribe(adapter)
	zlog.Debug().Msgf("connect: notice subscription started: subscription=%s", subscriptionID)

	select {
	case <-ctx.Done():
	case <-s.reader.Done():
	}

	notices.Unsubscribe(subscriptionID)
	zlog.Debug().Msgf("connect: notice subscription ended: subscription=%s", subscriptionID)
	return nil
}

func (s *ReaderService) chapterResponse(ctx context.Context, ch *verse.Chapter) (*readerv1.ChapterResponse, error) {
	list, err := s.reader.Bookmarks(ctx)
	if err != nil {
		return nil, err
	}
	active := s.reader.GetStatus().Playback.ActiveVerse

	resp := &readerv1.ChapterResponse{
		Chapter: toChapterSummary(ch.ChapterInfo),
		Verses:  make([]*readerv1.VerseInfo, len(ch.Verses)),
	}
	for i, v := range ch.Verses {
		resp.Verses[i] = &readerv1.VerseInfo{
			Number:          int32(v.Number),
			NumberInChapter: int32(v.NumberInChapter),
			Text:            v.Text,
			Translation:     v.Translation,
			Juz:             int32(v.Juz),
			Bookmarked:      list.Contains(v.Number),
			Playing:         v.Number == active,
		}
	}
	return resp, nil
}

func (s *ReaderService) playbackResponse() *readerv1.PlaybackResponse {
	pb := s.reader.GetStatus().Playback
	return &readerv1.PlaybackResponse{
		State:       pb.State.String(),
		ActiveVerse: int32(pb.ActiveVerse),
	}
}

// noticeStreamAdapter adapts connect.ServerStream to notice.Stream.
// Broadcasts may overlap, so sends are serialized.
type noticeStreamAdapter struct {
	mu     sync.Mutex
	stream *connect.ServerStream[readerv1.NoticeInfo]
}

func (a *noticeStreamAdapter) Send(n *notice.Notice) error {
	return a.send(toNoticeInfo(n))
}

func (a *noticeStreamAdapter) send(info *readerv1.NoticeInfo) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stream.Send(info)
}
