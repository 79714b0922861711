// Package notice provides transient advisory notices and their fan-out to
// subscribers.
package notice

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	zlog "github.com/rs/zerolog/log"
)

// DefaultDuration is how long a notice stays visible.
const DefaultDuration = 2 * time.Second

// sendTimeout bounds a single subscriber send.
const sendTimeout = 500 * time.Millisecond

// Action identifies the user action a notice reports on.
type Action int

const (
	ActionPlay Action = iota
	ActionBookmark
	ActionShare
)

// String returns the string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPlay:
		return "play"
	case ActionBookmark:
		return "bookmark"
	case ActionShare:
		return "share"
	default:
		return "unknown"
	}
}

// Notice is a transient advisory message.
type Notice struct {
	ID          string
	SequenceNo  uint64
	Action      Action
	VerseNumber int // 0 when not tied to a verse
	Text        string
	CreatedAt   time.Time
	ExpiresAt   time.Time
	Cleared     bool // Set on the notification that the notice expired or was replaced
}

// Stream represents a notice stream for a subscriber.
type Stream interface {
	Send(*Notice) error
}

// subscription represents a subscriber's subscription.
type subscription struct {
	id     string
	stream Stream
}

// Manager holds the current notice and broadcasts changes to subscribers.
type Manager struct {
	mu            sync.RWMutex
	subscriptions map[string]*subscription

	sequenceNo   uint64
	sequenceNoMu sync.Mutex

	clock    clockwork.Clock
	duration time.Duration

	currentMu sync.Mutex
	current   *Notice
	timer     clockwork.Timer
}

// NewManager creates a new notice manager.
func NewManager(clock clockwork.Clock, duration time.Duration) *Manager {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Manager{
		subscriptions: make(map[string]*subscription),
		clock:         clock,
		duration:      duration,
	}
}

// Show replaces the current notice and broadcasts it. The notice is cleared
// after the configured duration unless replaced first.
func (m *Manager) Show(action Action, verseNumber int, text string) *Notice {
	now := m.clock.Now()
	n := &Notice{
		ID:          uuid.New().String(),
		Action:      action,
		VerseNumber: verseNumber,
		Text:        text,
		CreatedAt:   now,
		ExpiresAt:   now.Add(m.duration),
	}

	m.currentMu.Lock()
	if m.timer != nil {
		m.timer.Stop()
	}
	m.current = n
	id := n.ID
	m.timer = m.clock.AfterFunc(m.duration, func() { m.expire(id) })
	m.currentMu.Unlock()

	zlog.Debug().Msgf("notice: show: action=%s verse=%d text=%q", action, verseNumber, text)
	m.Broadcast(n)
	return n
}

// expire clears the notice with the given id if it is still current.
func (m *Manager) expire(id string) {
	m.currentMu.Lock()
	n := m.current
	if n == nil || n.ID != id {
		m.currentMu.Unlock()
		return
	}
	m.current = nil
	m.timer = nil
	m.currentMu.Unlock()

	m.Broadcast(&Notice{
		ID:          n.ID,
		Action:      n.Action,
		VerseNumber: n.VerseNumber,
		CreatedAt:   n.CreatedAt,
		ExpiresAt:   n.ExpiresAt,
		Cleared:     true,
	})
}

// Current returns a copy of the visible notice, if any.
func (m *Manager) Current() (Notice, bool) {
	m.currentMu.Lock()
	defer m.currentMu.Unlock()
	if m.current == nil {
		return Notice{}, false
	}
	return *m.current, true
}

// Subscribe adds a new subscription and returns the subscription ID.
func (m *Manager) Subscribe(stream Stream) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New().String()
	m.subscriptions[id] = &subscription{
		id:     id,
		stream: stream,
	}
	return id
}

// Unsubscribe removes a subscription.
func (m *Manager) Unsubscribe(subscriptionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.subscriptions, subscriptionID)
}

// Broadcast stamps the notice with the next sequence number and sends it to
// all subscribers. Each send runs in its own goroutine bounded by a timeout.
func (m *Manager) Broadcast(n *Notice) {
	m.sequenceNoMu.Lock()
	m.sequenceNo++
	n.SequenceNo = m.sequenceNo
	m.sequenceNoMu.Unlock()

	m.mu.RLock()
	subs := make([]*subscription, 0, len(m.subscriptions))
	for _, sub := range m.subscriptions {
		subs = append(subs, sub)
	}
	m.mu.RUnlock()

	var wg sync.WaitGroup
	for _, sub := range subs {
		wg.Add(1)
		go func(s *subscription) {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
			defer cancel()

			done := make(chan error, 1)
			go func() {
				done <- s.stream.Send(n)
			}()

			select {
			case err := <-done:
				if err != nil {
					zlog.Debug().Msgf("notice: send failed: subscription=%s err=%v", s.id, err)
				}
			case <-ctx.Done():
				zlog.Debug().Msgf("notice: send timed out: subscription=%s", s.id)
			}
		}(sub)
	}
	wg.Wait()
}

// SubscriberCount returns the number of active subscribers.
func (m *Manager) SubscriberCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subscriptions)
}

// Close stops the expiry timer and removes all subscriptions.
func (m *Manager) Close() {
	m.currentMu.Lock()
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.current = nil
	m.currentMu.Unlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscriptions = make(map[string]*subscription)
}
