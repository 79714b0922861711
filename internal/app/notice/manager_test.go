package notice

import (
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStream struct {
	mu      sync.Mutex
	notices []Notice
	err     error
}

func (s *recordingStream) Send(n *Notice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, *n)
	return s.err
}

func (s *recordingStream) Notices() []Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Notice(nil), s.notices...)
}

func TestManager_ShowBroadcasts(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m := NewManager(clock, 0)
	defer m.Close()

	a, b := &recordingStream{}, &recordingStream{}
	m.Subscribe(a)
	idB := m.Subscribe(b)
	assert.Equal(t, 2, m.SubscriberCount())

	n := m.Show(ActionBookmark, 262, "Bookmark added")
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, uint64(1), n.SequenceNo)
	assert.Equal(t, clock.Now().Add(DefaultDuration), n.ExpiresAt)

	require.Len(t, a.Notices(), 1)
	assert.Equal(t, "Bookmark added", a.Notices()[0].Text)
	require.Len(t, b.Notices(), 1)

	m.Unsubscribe(idB)
	m.Show(ActionShare, 262, "Copied to clipboard!")
	assert.Len(t, a.Notices(), 2)
	assert.Len(t, b.Notices(), 1)
	assert.Equal(t, uint64(2), a.Notices()[1].SequenceNo)
}

func TestManager_NoticeExpires(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m := NewManager(clock, 2*time.Second)
	defer m.Close()

	s := &recordingStream{}
	m.Subscribe(s)

	n := m.Show(ActionPlay, 10, "Playing recitation")
	current, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, n.ID, current.ID)

	clock.Advance(1999 * time.Millisecond)
	_, ok = m.Current()
	assert.True(t, ok)

	clock.Advance(time.Millisecond)
	require.Eventually(t, func() bool {
		_, ok := m.Current()
		return !ok
	}, time.Second, 5*time.Millisecond)

	require.Eventually(t, func() bool { return len(s.Notices()) == 2 }, time.Second, 5*time.Millisecond)
	cleared := s.Notices()[1]
	assert.True(t, cleared.Cleared)
	assert.Equal(t, n.ID, cleared.ID)
	assert.Empty(t, cleared.Text)
}

func TestManager_NewNoticeReplacesCurrent(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m := NewManager(clock, 2*time.Second)
	defer m.Close()

	m.Show(ActionPlay, 10, "Playing recitation")
	clock.Advance(1500 * time.Millisecond)
	second := m.Show(ActionPlay, 10, "Playback stopped")

	// The first notice's deadline passes without clearing the replacement
	clock.Advance(time.Second)
	current, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, second.ID, current.ID)
	assert.Equal(t, "Playback stopped", current.Text)

	clock.Advance(time.Second)
	require.Eventually(t, func() bool {
		_, ok := m.Current()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestManager_FailingSubscriber(t *testing.T) {
	m := NewManager(clockwork.NewFakeClock(), 0)
	defer m.Close()

	bad := &recordingStream{err: errors.New("stream closed")}
	good := &recordingStream{}
	m.Subscribe(bad)
	m.Subscribe(good)

	m.Show(ActionShare, 1, "Failed to share")
	assert.Len(t, good.Notices(), 1)
	assert.Len(t, bad.Notices(), 1)
}

func TestManager_Close(t *testing.T) {
	m := NewManager(clockwork.NewFakeClock(), 0)
	m.Subscribe(&recordingStream{})
	m.Show(ActionPlay, 1, "Playing recitation")

	m.Close()
	assert.Zero(t, m.SubscriberCount())
	_, ok := m.Current()
	assert.False(t, ok)
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "play", ActionPlay.String())
	assert.Equal(t, "bookmark", ActionBookmark.String())
	assert.Equal(t, "share", ActionShare.String())
	assert.Equal(t, "unknown", Action(42).String())
}
