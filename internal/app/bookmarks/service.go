// Package bookmarks provides the persisted bookmark list.
package bookmarks

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/tilawah/internal/domain/bookmark"
	"github.com/osa030/tilawah/internal/domain/verse"
	"github.com/osa030/tilawah/internal/infra/kv"
)

// StoreKey is the key the whole bookmark list is stored under.
const StoreKey = "quran-bookmarks"

// Service manages the bookmark list. The list is loaded from the store once
// and written back in full after every change.
type Service struct {
	mu     sync.Mutex
	store  kv.Store
	clock  clockwork.Clock
	list   bookmark.List
	loaded bool
}

// NewService creates a new bookmark service.
func NewService(store kv.Store, clock clockwork.Clock) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{
		store: store,
		clock: clock,
	}
}

// List returns the bookmarks, newest first.
func (s *Service) List(ctx context.Context) (bookmark.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return nil, err
	}
	return append(bookmark.List(nil), s.list...), nil
}

// Contains reports whether the verse is bookmarked.
func (s *Service) Contains(ctx context.Context, verseNumber int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return false, err
	}
	return s.list.Contains(verseNumber), nil
}

// Add bookmarks the verse. Adding a bookmarked verse is a no-op and returns
// added == false.
func (s *Service) Add(ctx context.Context, v verse.Verse) (b bookmark.Bookmark, added bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return bookmark.Bookmark{}, false, err
	}
	return s.addLocked(ctx, v)
}

// Remove deletes the bookmark for the verse. Removing an absent bookmark is a
// no-op and returns false.
func (s *Service) Remove(ctx context.Context, verseNumber int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return false, err
	}
	return s.removeLocked(ctx, verseNumber)
}

// Toggle adds the verse if it is not bookmarked and removes it otherwise.
// Returns true when the verse is bookmarked afterwards.
func (s *Service) Toggle(ctx context.Context, v verse.Verse) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return false, err
	}
	if s.list.Contains(v.Number) {
		_, err := s.removeLocked(ctx, v.Number)
		return false, err
	}
	_, _, err := s.addLocked(ctx, v)
	return err == nil, err
}

// Must be called with lock held and the list loaded.
func (s *Service) addLocked(ctx context.Context, v verse.Verse) (bookmark.Bookmark, bool, error) {
	next, added := s.list.Add(bookmark.FromVerse(v), s.clock.Now())
	if !added {
		return bookmark.Bookmark{}, false, nil
	}
	if err := s.persistLocked(ctx, next); err != nil {
		return bookmark.Bookmark{}, false, err
	}
	zlog.Info().Msgf("bookmarks: added: verse=%d ref=%s", v.Number, v.Key())
	return next[0], true, nil
}

// Must be called with lock held and the list loaded.
func (s *Service) removeLocked(ctx context.Context, verseNumber int) (bool, error) {
	next, removed := s.list.Remove(verseNumber)
	if !removed {
		return false, nil
	}
	if err := s.persistLocked(ctx, next); err != nil {
		return false, err
	}
	zlog.Info().Msgf("bookmarks: removed: verse=%d", verseNumber)
	return true, nil
}

// loadLocked reads the list from the store on first use. A missing or
// unreadable document yields an empty list.
// Must be called with lock held.
func (s *Service) loadLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	data, err := s.store.Get(ctx, StoreKey)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		s.list = bookmark.List{}
	case err != nil:
		return errors.Wrap(err, "failed to load bookmarks")
	default:
		var list bookmark.List
		if err := json.Unmarshal(data, &list); err != nil {
			zlog.Warn().Msgf("bookmarks: discarding unreadable bookmark list: %v", err)
			list = bookmark.List{}
		}
		s.list = list.Restore()
	}

	s.loaded = true
	zlog.Debug().Msgf("bookmarks: loaded: count=%d", len(s.list))
	return nil
}

// persistLocked writes next to the store and makes it current on success.
// Must be called with lock held.
func (s *Service) persistLocked(ctx context.Context, next bookmark.List) error {
	data, err := json.Marshal(next)
	if err != nil {
		return errors.Wrap(err, "failed to encode bookmarks")
	}
	if err := s.store.Set(ctx, StoreKey, data); err != nil {
		return errors.Wrap(err, "failed to save bookmarks")
	}
	s.list = next
	return nil
}
