package connect

import (
	"context"
	"time"

	"connectrpc.com/connect"
	"github.com/cockroachdb/errors"

	"github.com/osa030/tilawah/internal/app/notice"
	"github.com/osa030/tilawah/internal/app/playback"
	"github.com/osa030/tilawah/internal/app/reader"
	"github.com/osa030/tilawah/internal/domain/bookmark"
	"github.com/osa030/tilawah/internal/domain/verse"
	readerv1 "github.com/osa030/tilawah/internal/gen/tilawah/reader/v1"
)

// toConnectError maps domain errors to connect codes.
func toConnectError(err error) error {
	if err == nil {
		return nil
	}

	var code connect.Code
	switch {
	case errors.Is(err, verse.ErrInvalidChapter):
		code = connect.CodeInvalidArgument
	case errors.Is(err, reader.ErrVerseNotFound), errors.Is(err, playback.ErrVerseNotFound):
		code = connect.CodeNotFound
	case errors.Is(err, reader.ErrNoChapter), errors.Is(err, playback.ErrNoChapter),
		errors.Is(err, reader.ErrChapterBounds):
		code = connect.CodeFailedPrecondition
	case errors.Is(err, playback.ErrClosed):
		code = connect.CodeUnavailable
	case errors.Is(err, context.Canceled):
		code = connect.CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		code = connect.CodeDeadlineExceeded
	default:
		code = connect.CodeInternal
	}
	return connect.NewError(code, err)
}

func toChapterSummary(c verse.ChapterInfo) *readerv1.ChapterSummary {
	return &readerv1.ChapterSummary{
		Number:                 int32(c.Number),
		Name:                   c.Name,
		EnglishName:            verse.NormalizeName(c.EnglishName),
		EnglishNameTranslation: c.EnglishNameTranslation,
		NumberOfVerses:         int32(c.NumberOfVerses),
		RevelationType:         c.RevelationType,
	}
}

func toBookmarkInfo(b bookmark.Bookmark) *readerv1.BookmarkInfo {
	return &readerv1.BookmarkInfo{
		VerseNumber:     int32(b.VerseNumber),
		NumberInChapter: int32(b.NumberInChapter),
		ChapterNumber:   int32(b.ChapterNumber),
		ChapterName:     b.ChapterName,
		VerseText:       b.VerseText,
		Translation:     b.Translation,
		Timestamp:       b.Timestamp,
	}
}

func toNoticeInfo(n *notice.Notice) *readerv1.NoticeInfo {
	return &readerv1.NoticeInfo{
		Id:          n.ID,
		SequenceNo:  n.SequenceNo,
		Action:      n.Action.String(),
		VerseNumber: int32(n.VerseNumber),
		Text:        n.Text,
		ExpiresAt:   n.ExpiresAt.Format(time.RFC3339),
		Cleared:     n.Cleared,
	}
}

func toStatusResponse(s *reader.Status) *readerv1.StatusResponse {
	resp := &readerv1.StatusResponse{
		SessionId:         s.View.SessionID,
		Phase:             s.View.Phase.String(),
		ChapterNumber:     int32(s.View.Chapter),
		ChapterName:       verse.NormalizeName(s.ChapterName),
		FocusVerse:        int32(s.View.FocusVerse),
		Error:             s.View.Error,
		PlaybackState:     s.Playback.State.String(),
		ActiveVerse:       int32(s.Playback.ActiveVerse),
		PendingVerse:      int32(s.Playback.PendingVerse),
		PermissionGranted: s.Playback.PermissionGranted,
		Provider:          s.ProviderName,
	}
	if t := s.View.PendingScroll; t != nil {
		resp.PendingScroll = &readerv1.ScrollTarget{
			ChapterNumber:   int32(t.Chapter),
			NumberInChapter: int32(t.NumberInChapter),
		}
	}
	if s.Notice != nil {
		resp.Notice = toNoticeInfo(s.Notice)
	}
	return resp
}

func toInteraction(in *readerv1.Interaction) (*playback.Interaction, error) {
	if in == nil {
		return nil, nil
	}
	g, err := playback.ParseGesture(in.Gesture)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	return &playback.Interaction{Gesture: g, Interactive: in.Interactive}, nil
}
