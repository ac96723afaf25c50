package messaging

import (
	"strconv"
	"strings"
	"sync"
	"testing"

	"smartgrocery/pkg/models"
	"smartgrocery/pkg/notify"
	"smartgrocery/pkg/store"
)

var (
	manager  = models.User{ID: 2, Name: "Manager User", Role: models.RoleManager}
	supplier = models.User{ID: 3, Name: "Supplier User", Role: models.RoleSupplier}
	admin    = models.User{ID: 1, Name: "Admin User", Role: models.RoleAdmin}
)

const defaultThreadID = "thread-manager-2-supplier-3"

func newTestService(t *testing.T) *Service {
	t.Helper()
	broker := notify.NewBroker()
	st, err := store.Open(t.TempDir(), broker)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return NewService(st, broker)
}

func TestSendRejectsBlankBody(t *testing.T) {
	svc := newTestService(t)
	svc.Threads()

	for _, body := range []string{"", "   ", "\t\n"} {
		if msg := svc.Send(SendParams{ThreadID: defaultThreadID, Body: body, From: manager}); msg != nil {
			t.Fatalf("blank body %q produced message %+v", body, msg)
		}
	}
	if got := svc.Messages(""); len(got) != 0 {
		t.Fatalf("blank sends must not persist, got %d messages", len(got))
	}
}

func TestSendRejectsUnknownThread(t *testing.T) {
	svc := newTestService(t)
	svc.Threads()
	if msg := svc.Send(SendParams{ThreadID: "thread-nope", Body: "hello", From: manager}); msg != nil {
		t.Fatalf("unknown thread produced message %+v", msg)
	}
}

func TestSendTrimsBodyAndFillsMessage(t *testing.T) {
	svc := newTestService(t)
	svc.Threads()

	msg := svc.Send(SendParams{ThreadID: defaultThreadID, Body: "  hello there  ", From: manager})
	if msg == nil {
		t.Fatal("send returned nil")
	}
	if msg.Body != "hello there" {
		t.Fatalf("body not trimmed: %q", msg.Body)
	}
	if !strings.HasPrefix(msg.ID, "msg-") {
		t.Fatalf("unexpected id %q", msg.ID)
	}
	if len(msg.ReadBy) != 1 || msg.ReadBy[0] != manager.ID {
		t.Fatalf("sender must pre-read own message: %v", msg.ReadBy)
	}
	if msg.CreatedAt.IsZero() {
		t.Fatal("zero timestamp")
	}
}

func TestSendRecipientDerivation(t *testing.T) {
	cases := []struct {
		name     string
		from     models.User
		wantToID int
		wantRole models.Role
	}{
		{"manager to supplier", manager, 3, models.RoleSupplier},
		{"supplier to manager", supplier, 2, models.RoleManager},
		// Admin has no entry in the flip table and defaults to the
		// thread's manager.
		{"admin defaults to manager", admin, 2, models.RoleManager},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(t)
			svc.Threads()
			msg := svc.Send(SendParams{ThreadID: defaultThreadID, Body: "hi", From: tc.from})
			if msg == nil {
				t.Fatal("send returned nil")
			}
			if msg.ToUserID != tc.wantToID {
				t.Fatalf("toUserId = %d, want %d", msg.ToUserID, tc.wantToID)
			}
			if msg.ToRole != tc.wantRole {
				t.Fatalf("toRole = %q, want %q", msg.ToRole, tc.wantRole)
			}
			if msg.FromUserID != tc.from.ID || msg.FromRole != tc.from.Role {
				t.Fatalf("sender fields wrong: %+v", msg)
			}
		})
	}
}

func TestMessagesFiltersByThread(t *testing.T) {
	svc := newTestService(t)
	svc.Threads()
	svc.Send(SendParams{ThreadID: defaultThreadID, Body: "one", From: manager})
	svc.Send(SendParams{ThreadID: defaultThreadID, Body: "two", From: supplier})

	if got := svc.Messages(defaultThreadID); len(got) != 2 {
		t.Fatalf("thread filter: got %d, want 2", len(got))
	}
	if got := svc.Messages("thread-other"); len(got) != 0 {
		t.Fatalf("foreign thread filter: got %d, want 0", len(got))
	}
	if got := svc.Messages(""); len(got) != 2 {
		t.Fatalf("all messages: got %d, want 2", len(got))
	}
}

func TestMarkThreadReadIsMonotonicAndIdempotent(t *testing.T) {
	svc := newTestService(t)
	svc.Threads()
	svc.Send(SendParams{ThreadID: defaultThreadID, Body: "hello", From: manager})

	svc.MarkThreadRead(defaultThreadID, supplier.ID)
	svc.MarkThreadRead(defaultThreadID, supplier.ID)

	msgs := svc.Messages(defaultThreadID)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	m := msgs[0]
	if len(m.ReadBy) != 2 {
		t.Fatalf("readBy must not duplicate: %v", m.ReadBy)
	}
	if !m.ReadByUser(manager.ID) || !m.ReadByUser(supplier.ID) {
		t.Fatalf("readBy incomplete: %v", m.ReadBy)
	}
}

func TestConcurrentSendsAllPersist(t *testing.T) {
	svc := newTestService(t)
	svc.Threads()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			from := manager
			if i%2 == 1 {
				from = supplier
			}
			if msg := svc.Send(SendParams{ThreadID: defaultThreadID, Body: "m" + strconv.Itoa(i), From: from}); msg == nil {
				t.Errorf("send %d returned nil", i)
			}
		}(i)
	}
	wg.Wait()

	if got := len(svc.Messages(defaultThreadID)); got != n {
		t.Fatalf("store kept %d of %d concurrent sends", got, n)
	}
}

func TestConcurrentMarkReadDoesNotDropSends(t *testing.T) {
	svc := newTestService(t)
	svc.Threads()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(2 * n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			svc.Send(SendParams{ThreadID: defaultThreadID, Body: "m" + strconv.Itoa(i), From: manager})
		}(i)
		go func() {
			defer wg.Done()
			svc.MarkThreadRead(defaultThreadID, supplier.ID)
		}()
	}
	wg.Wait()

	if got := len(svc.Messages(defaultThreadID)); got != n {
		t.Fatalf("store kept %d of %d sends interleaved with read marks", got, n)
	}
}

func TestMarkThreadReadLeavesOtherThreadsAlone(t *testing.T) {
	svc := newTestService(t)
	svc.Threads()
	svc.Send(SendParams{ThreadID: defaultThreadID, Body: "hello", From: manager})

	svc.MarkThreadRead("thread-other", supplier.ID)
	m := svc.Messages(defaultThreadID)[0]
	if m.ReadByUser(supplier.ID) {
		t.Fatalf("foreign thread mark leaked: %v", m.ReadBy)
	}
}
