package view

import "sync"

// Manager manages view state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	sessionID string

	phase   Phase
	chapter int
	errMsg  string

	focusVerse    int
	pendingScroll *Target
}

// New creates a new view state manager.
func New(sessionID string) *Manager {
	return &Manager{
		sessionID: sessionID,
		phase:     PhaseEmpty,
	}
}

// GetPhase returns the current loading phase.
func (m *Manager) GetPhase() Phase {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.phase
}

// GetChapter returns the selected chapter number.
func (m *Manager) GetChapter() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.chapter
}

// StartLoading marks chapter as being fetched. The focus verse belongs to the
// previous chapter and is cleared.
func (m *Manager) StartLoading(chapter int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.phase = PhaseLoading
	m.chapter = chapter
	m.errMsg = ""
	m.focusVerse = 0
}

// SetReady marks chapter as loaded.
func (m *Manager) SetReady(chapter int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.phase = PhaseReady
	m.chapter = chapter
	m.errMsg = ""
}

// SetFailed records a failed fetch with a user-facing message.
func (m *Manager) SetFailed(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.phase = PhaseFailed
	m.errMsg = msg
}

// SetFocus sets the verse to bring into sight.
func (m *Manager) SetFocus(verseNumber int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.focusVerse = verseNumber
}

// GetFocus returns the verse to bring into sight (0 = none).
func (m *Manager) GetFocus() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.focusVerse
}

// SetPendingScroll records a target to focus once its chapter is loaded.
func (m *Manager) SetPendingScroll(t Target) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pendingScroll = &t
}

// TakePendingScroll returns and clears the pending target if it belongs to
// chapter.
func (m *Manager) TakePendingScroll(chapter int) (Target, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pendingScroll == nil || m.pendingScroll.Chapter != chapter {
		return Target{}, false
	}
	t := *m.pendingScroll
	m.pendingScroll = nil
	return t, true
}

// Snapshot returns a copy of the view state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Snapshot{
		SessionID:  m.sessionID,
		Phase:      m.phase,
		Chapter:    m.chapter,
		FocusVerse: m.focusVerse,
		Error:      m.errMsg,
	}
	if m.pendingScroll != nil {
		t := *m.pendingScroll
		s.PendingScroll = &t
	}
	return s
}
