package bookmarks

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/tilawah/internal/domain/verse"
	"github.com/osa030/tilawah/internal/infra/kv"
)

// memStore is an in-memory kv.Store.
type memStore struct {
	data   map[string][]byte
	sets   int
	getErr error
	setErr error
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, kv.ErrNotFound
	}
	return v, nil
}

func (m *memStore) Set(ctx context.Context, key string, value []byte) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.sets++
	m.data[key] = value
	return nil
}

func (m *memStore) Close() error { return nil }

func testVerse(number, inChapter int) verse.Verse {
	return verse.Verse{
		Number:          number,
		NumberInChapter: inChapter,
		Text:            "text",
		Translation:     "translation",
		Chapter:         verse.ChapterInfo{Number: 2, EnglishName: "Al-Baqara"},
	}
}

func TestService_AddRemove(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	s := NewService(store, clock)

	b, added, err := s.Add(ctx, testVerse(262, 255))
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, 262, b.VerseNumber)
	assert.Equal(t, clock.Now().UnixMilli(), b.Timestamp)

	clock.Advance(time.Minute)
	_, added, err = s.Add(ctx, testVerse(263, 256))
	require.NoError(t, err)
	assert.True(t, added)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 263, list[0].VerseNumber, "newest first")
	assert.Equal(t, 262, list[1].VerseNumber)

	var persisted []map[string]any
	require.NoError(t, json.Unmarshal(store.data[StoreKey], &persisted))
	require.Len(t, persisted, 2)
	assert.EqualValues(t, 263, persisted[0]["ayahNumber"])
	assert.Equal(t, "Al-Baqara", persisted[0]["surahName"])

	removed, err := s.Remove(ctx, 262)
	require.NoError(t, err)
	assert.True(t, removed)

	list, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 3, store.sets)
}

func TestService_NoOps(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	s := NewService(store, clockwork.NewFakeClock())

	_, _, err := s.Add(ctx, testVerse(262, 255))
	require.NoError(t, err)
	before := string(store.data[StoreKey])

	_, added, err := s.Add(ctx, testVerse(262, 255))
	require.NoError(t, err)
	assert.False(t, added)

	removed, err := s.Remove(ctx, 999)
	require.NoError(t, err)
	assert.False(t, removed)

	assert.Equal(t, 1, store.sets)
	assert.Equal(t, before, string(store.data[StoreKey]))
}

func TestService_Toggle(t *testing.T) {
	ctx := context.Background()
	s := NewService(newMemStore(), clockwork.NewFakeClock())

	on, err := s.Toggle(ctx, testVerse(8, 1))
	require.NoError(t, err)
	assert.True(t, on)

	contains, err := s.Contains(ctx, 8)
	require.NoError(t, err)
	assert.True(t, contains)

	on, err = s.Toggle(ctx, testVerse(8, 1))
	require.NoError(t, err)
	assert.False(t, on)

	contains, err = s.Contains(ctx, 8)
	require.NoError(t, err)
	assert.False(t, contains)
}

func TestService_ToggleConcurrent(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	s := NewService(store, clockwork.NewFakeClock())

	const toggles = 50
	var (
		wg         sync.WaitGroup
		bookmarked atomic.Int32
	)
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			on, err := s.Toggle(ctx, testVerse(262, 255))
			assert.NoError(t, err)
			if on {
				bookmarked.Add(1)
			}
		}()
	}
	wg.Wait()

	// Every toggle flips the state exactly once
	assert.Equal(t, int32(toggles/2), bookmarked.Load())
	assert.Equal(t, toggles, store.sets)

	on, err := s.Contains(ctx, 262)
	require.NoError(t, err)
	assert.False(t, on)
}

func TestService_LoadsOnce(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.data[StoreKey] = []byte(`[
		{"ayahNumber":2,"numberInSurah":2,"surahNumber":1,"surahName":"Al-Faatiha","ayahText":"a","timestamp":1700000000000},
		{"ayahNumber":2,"numberInSurah":2,"surahNumber":1,"surahName":"Al-Faatiha","ayahText":"a","timestamp":1600000000000},
		{"ayahNumber":1,"numberInSurah":1,"surahNumber":1,"surahName":"Al-Faatiha","ayahText":"b","timestamp":1500000000000}
	]`)
	s := NewService(store, clockwork.NewFakeClock())

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, time.UnixMilli(1700000000000), list[0].CreatedAt)

	// Later store changes are not re-read
	store.data[StoreKey] = []byte(`[]`)
	list, err = s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestService_CorruptList(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.data[StoreKey] = []byte(`{"not":"a list"}`)
	s := NewService(store, clockwork.NewFakeClock())

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestService_StoreErrors(t *testing.T) {
	ctx := context.Background()

	store := newMemStore()
	store.getErr = errors.New("disk unavailable")
	s := NewService(store, clockwork.NewFakeClock())
	_, err := s.List(ctx)
	assert.Error(t, err)

	store = newMemStore()
	store.setErr = errors.New("disk full")
	s = NewService(store, clockwork.NewFakeClock())
	_, _, err = s.Add(ctx, testVerse(1, 1))
	require.Error(t, err)

	// The failed change is not visible
	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestService_FileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bookmarks.json")

	store, err := kv.OpenFile(path)
	require.NoError(t, err)
	s := NewService(store, clockwork.NewFakeClock())
	_, _, err = s.Add(ctx, testVerse(262, 255))
	require.NoError(t, err)

	store, err = kv.OpenFile(path)
	require.NoError(t, err)
	list, err := NewService(store, clockwork.NewFakeClock()).List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 262, list[0].VerseNumber)
}
