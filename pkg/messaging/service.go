// Package messaging implements the manager-supplier chat core: thread
// lookup, message construction, recipient derivation and read-receipt
// tracking over the persistent store, plus the per-viewer session state.
package messaging

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"smartgrocery/pkg/logger"
	"smartgrocery/pkg/models"
	"smartgrocery/pkg/notify"
	"smartgrocery/pkg/store"
)

// recipientRole flips the sender role to the thread counterparty. Any
// sender role outside this table (admin included) falls back to the
// thread's manager; downstream behavior depends on this exact default.
var recipientRole = map[models.Role]models.Role{
	models.RoleManager:  models.RoleSupplier,
	models.RoleSupplier: models.RoleManager,
}

// Service is the sole writer of the messaging collections. Mutations are
// read-modify-rewrite over whole collections, so mu serializes them:
// concurrent HTTP handlers must not interleave between read and write or
// appends get lost.
type Service struct {
	store    *store.Store
	notifier notify.Notifier

	mu sync.Mutex
}

func NewService(st *store.Store, n notify.Notifier) *Service {
	return &Service{store: st, notifier: n}
}

// Threads returns all threads, seeding the default thread on first use.
func (s *Service) Threads() []models.Thread {
	return s.store.ReadThreads()
}

// Messages returns the full message collection, or only the messages of
// one thread when threadID is non-empty. No ordering is imposed here;
// ordering is the session's responsibility.
func (s *Service) Messages(threadID string) []models.Message {
	msgs := s.store.ReadMessages()
	if threadID == "" {
		return msgs
	}
	out := make([]models.Message, 0, len(msgs))
	for _, m := range msgs {
		if m.ThreadID == threadID {
			out = append(out, m)
		}
	}
	return out
}

// SendParams carries one send request.
type SendParams struct {
	ThreadID string
	Body     string
	From     models.User
}

// Send validates the thread and body, derives the recipient from the
// sender role and appends the new message. Unknown threads and blank
// bodies are silent no-ops returning nil; they are user-input guards,
// not errors.
func (s *Service) Send(p SendParams) *models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	thread := findThread(s.store.ReadThreads(), p.ThreadID)
	body := strings.TrimSpace(p.Body)
	if thread == nil || body == "" {
		return nil
	}

	toRole, ok := recipientRole[p.From.Role]
	toUserID := thread.ManagerID
	if !ok {
		toRole = models.RoleManager
	} else if p.From.Role == models.RoleManager {
		toUserID = thread.SupplierID
	}

	msg := models.Message{
		ID:         "msg-" + uuid.NewString(),
		ThreadID:   p.ThreadID,
		FromUserID: p.From.ID,
		FromRole:   p.From.Role,
		ToUserID:   toUserID,
		ToRole:     toRole,
		Body:       body,
		CreatedAt:  time.Now().UTC(),
		// The sender implicitly reads their own message.
		ReadBy: []int{p.From.ID},
	}

	msgs := append(s.store.ReadMessages(), msg)
	if err := s.store.WriteMessages(msgs); err != nil {
		logger.Error("send_message_write_failed", "thread", p.ThreadID, "error", err)
		return nil
	}
	messagesSent.Inc()
	logger.Info("message_sent", "thread", p.ThreadID, "id", msg.ID, "from", p.From.ID, "to", toUserID)
	return &msg
}

// MarkThreadRead adds userID to the read set of every message in the
// thread that lacks it. The updated collection is persisted in a single
// write; the write happens even when nothing changed.
func (s *Service) MarkThreadRead(threadID string, userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.store.ReadMessages()
	for i := range msgs {
		if msgs[i].ThreadID == threadID && !msgs[i].ReadByUser(userID) {
			msgs[i].ReadBy = append(msgs[i].ReadBy, userID)
		}
	}
	if err := s.store.WriteMessages(msgs); err != nil {
		logger.Error("mark_thread_read_write_failed", "thread", threadID, "error", err)
	}
}

// Subscribe registers a callback for change broadcasts and returns its
// disposer.
func (s *Service) Subscribe(fn func()) func() {
	return s.notifier.Subscribe(fn)
}

func findThread(threads []models.Thread, id string) *models.Thread {
	for i := range threads {
		if threads[i].ID == id {
			return &threads[i]
		}
	}
	return nil
}
