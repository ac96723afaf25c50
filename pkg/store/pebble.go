// Package store persists the messaging collections in a local Pebble
// database. Each collection lives under a single key as a whole JSON
// array; mutation discipline is read-modify-rewrite, with the change
// notifier as the only (advisory) coordination across contexts.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"

	"smartgrocery/pkg/logger"
	"smartgrocery/pkg/models"
	"smartgrocery/pkg/notify"
)

const (
	// ThreadsKey and MessagesKey are the storage slots for the two
	// canonical collections.
	ThreadsKey  = "sg_message_threads"
	MessagesKey = "sg_messages"
)

// Store owns the canonical thread and message collections. It is injected
// into the message service; one instance per process, composed at startup.
type Store struct {
	db       *pebble.DB
	notifier notify.Notifier
	path     string
}

// Open opens (or creates) the Pebble database at path. Every successful
// collection write triggers a broadcast on the given notifier.
func Open(path string, n notify.Notifier) (*Store, error) {
	logger.Info("opening_pebble_db", "path", path)
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		logger.Error("pebble_open_failed", "path", path, "error", err)
		return nil, err
	}
	return &Store{db: db, notifier: n, path: path}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	logger.Info("pebble_closed", "path", s.path)
	return err
}

// ReadThreads returns the stored thread collection. An empty store is
// seeded with exactly one default thread, persisted before returning;
// seeding only happens when the stored collection is genuinely empty.
func (s *Store) ReadThreads() []models.Thread {
	var threads []models.Thread
	s.readCollection(ThreadsKey, &threads)
	if len(threads) == 0 {
		threads = defaultThreads()
		if err := s.WriteThreads(threads); err != nil {
			logger.Error("seed_threads_failed", "error", err)
			return threads
		}
		seeds.Inc()
		logger.Info("seeded_default_thread", "id", threads[0].ID)
	}
	return threads
}

// ReadMessages returns the stored message collection.
func (s *Store) ReadMessages() []models.Message {
	var msgs []models.Message
	s.readCollection(MessagesKey, &msgs)
	if msgs == nil {
		msgs = []models.Message{}
	}
	return msgs
}

// WriteThreads replaces the thread collection and broadcasts the change.
func (s *Store) WriteThreads(threads []models.Thread) error {
	return s.writeCollection(ThreadsKey, threads)
}

// WriteMessages replaces the message collection and broadcasts the change.
func (s *Store) WriteMessages(msgs []models.Message) error {
	return s.writeCollection(MessagesKey, msgs)
}

// readCollection deserializes the named slot into out. Missing or
// malformed data leaves out untouched: a parse failure is logged and
// counted, never surfaced to the caller.
func (s *Store) readCollection(key string, out any) {
	v, closer, err := s.db.Get([]byte(key))
	if err != nil {
		if err != pebble.ErrNotFound {
			logger.Error("read_collection_failed", "key", key, "error", err)
			readFailures.Inc()
		}
		return
	}
	defer closer.Close()
	if err := json.Unmarshal(v, out); err != nil {
		logger.Error("read_collection_corrupt", "key", key, "error", err)
		readFailures.Inc()
	}
}

// writeCollection serializes value into the named slot, replacing prior
// contents. Write failures propagate: quota and disk errors are fatal for
// a local-only store. A successful write always broadcasts.
func (s *Store) writeCollection(key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.db.Set([]byte(key), b, pebble.Sync); err != nil {
		logger.Error("write_collection_failed", "key", key, "error", err)
		return err
	}
	writes.Inc()
	logger.Debug("collection_written", "key", key, "bytes", len(b))
	if s.notifier != nil {
		s.notifier.NotifyChange()
	}
	return nil
}

// DBSet writes a raw key/value pair. Low-level helper for admin tooling
// and tests.
func (s *Store) DBSet(key, value []byte) error {
	return s.db.Set(key, value, pebble.Sync)
}

func defaultThreads() []models.Thread {
	return []models.Thread{{
		ID:           "thread-manager-2-supplier-3",
		ManagerID:    2,
		ManagerName:  "Manager User",
		SupplierID:   3,
		SupplierName: "Supplier User",
		Topic:        "General supply",
		CreatedAt:    time.Now().UTC(),
	}}
}
