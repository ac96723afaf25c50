package messaging

import (
	"sort"
	"sync"

	"smartgrocery/pkg/models"
)

// Session is the per-viewer state over the message service: full mirrors
// of both collections, the active thread selection and an in-flight send
// guard. All projections are recomputed on demand from the mirrors; the
// session holds no independent source of truth.
type Session struct {
	svc  *Service
	user *models.User

	mu             sync.Mutex
	threads        []models.Thread
	messages       []models.Message
	activeThreadID string
	sending        bool

	unsubscribe func()
}

// NewSession builds a session for user (nil for an unauthenticated
// viewer), performs the initial sync, subscribes to change broadcasts and
// auto-selects the first thread. Call Close when the viewer goes away.
func NewSession(svc *Service, user *models.User) *Session {
	s := &Session{svc: svc, user: user}
	s.resync()
	s.unsubscribe = svc.Subscribe(s.resync)

	s.mu.Lock()
	if s.activeThreadID == "" && len(s.threads) > 0 {
		s.activeThreadID = s.threads[0].ID
	}
	active := s.activeThreadID
	s.mu.Unlock()
	if active != "" {
		s.markRead(active)
	}
	return s
}

// Close deregisters the session from change broadcasts.
func (s *Session) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// resync re-pulls both collections in full. Runs on every broadcast and
// after every local mutation; no incremental diffing.
func (s *Session) resync() {
	threads := s.svc.Threads()
	messages := s.svc.Messages("")
	s.mu.Lock()
	s.threads = threads
	s.messages = messages
	// Default the selection the first time threads become non-empty, but
	// never override an explicit choice.
	if s.activeThreadID == "" && len(threads) > 0 {
		s.activeThreadID = threads[0].ID
	}
	s.mu.Unlock()
}

// ActiveThreadID returns the current selection, or "" when none.
func (s *Session) ActiveThreadID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeThreadID
}

// SetActiveThread selects a thread and immediately marks it read for the
// current user; read state updates the instant a thread becomes active.
func (s *Session) SetActiveThread(threadID string) {
	s.mu.Lock()
	s.activeThreadID = threadID
	s.mu.Unlock()
	if threadID != "" {
		s.markRead(threadID)
	}
}

func (s *Session) markRead(threadID string) {
	if s.user == nil {
		return
	}
	s.svc.MarkThreadRead(threadID, s.user.ID)
	s.resync()
}

// ActiveMessages returns the active thread's messages ascending by
// creation time. Ties keep insertion order: timestamps can collide at
// coarse clock granularity.
func (s *Session) ActiveMessages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeThreadID == "" {
		return nil
	}
	out := make([]models.Message, 0, len(s.messages))
	for _, m := range s.messages {
		if m.ThreadID == s.activeThreadID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// ThreadsWithLastMessage projects each thread with its latest message and
// sorts the list newest-activity-first; threads without messages sort
// last (epoch floor).
func (s *Session) ThreadsWithLastMessage() []models.ThreadWithLast {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ThreadWithLast, 0, len(s.threads))
	for _, th := range s.threads {
		var last *models.Message
		for i := range s.messages {
			m := s.messages[i]
			if m.ThreadID != th.ID {
				continue
			}
			// Later-or-equal wins so equal timestamps keep insertion order,
			// matching the ascending-sort-take-tail projection.
			if last == nil || !m.CreatedAt.Before(last.CreatedAt) {
				cp := m
				last = &cp
			}
		}
		out = append(out, models.ThreadWithLast{Thread: th, LastMessage: last})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return lastTime(out[i]) > lastTime(out[j])
	})
	return out
}

func lastTime(t models.ThreadWithLast) int64 {
	if t.LastMessage == nil {
		return 0
	}
	return t.LastMessage.CreatedAt.UnixNano()
}

// UnreadCount counts messages in the thread not yet read by the current
// user. Zero when no user is signed in.
func (s *Session) UnreadCount(threadID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return 0
	}
	n := 0
	for i := range s.messages {
		if s.messages[i].ThreadID == threadID && !s.messages[i].ReadByUser(s.user.ID) {
			n++
		}
	}
	return n
}

// Sending reports whether a send is in flight.
func (s *Session) Sending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sending
}

// SendMessage sends body on the active thread. Dropped when there is no
// user, no active thread, a blank body, or a send already in flight; at
// most one send is outstanding per session. Returns the new message, or
// nil when the send was dropped or rejected.
func (s *Session) SendMessage(body string) *models.Message {
	s.mu.Lock()
	if s.user == nil || s.activeThreadID == "" || s.sending || blank(body) {
		s.mu.Unlock()
		return nil
	}
	s.sending = true
	threadID := s.activeThreadID
	from := *s.user
	s.mu.Unlock()

	msg := s.svc.Send(SendParams{ThreadID: threadID, Body: body, From: from})

	// Converge the sender's own view without waiting for a broadcast
	// round-trip: re-sync and re-mark the active thread read.
	s.resync()
	s.markRead(threadID)

	s.mu.Lock()
	s.sending = false
	s.mu.Unlock()
	return msg
}

// CounterpartyName resolves the display label for a thread relative to
// the viewer: managers see the supplier, suppliers see the manager, and
// everyone else sees both names joined.
func (s *Session) CounterpartyName(th models.Thread) string {
	if s.user != nil {
		switch s.user.Role {
		case models.RoleManager:
			return th.SupplierName
		case models.RoleSupplier:
			return th.ManagerName
		}
	}
	return th.ManagerName + " ↔ " + th.SupplierName
}

// User returns the session's viewer, or nil.
func (s *Session) User() *models.User { return s.user }

func blank(body string) bool {
	for _, r := range body {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
