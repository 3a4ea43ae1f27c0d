// snapshot/snapshot.go

// Package snapshot keeps the most recent environmental record and answers
// the question "has anything changed since the last time I asked?".
// Comparison happens on the raw scaled integers, so measurement jitter
// below a kind's resolution never registers as a change.
package snapshot

import (
	"sync"

	"github.com/sirupsen/logrus"

	"sensordata-go/record"
)

// Store is safe for concurrent use. The records themselves are plain
// values; the lock only guards the previous-snapshot slot.
type Store struct {
	mu   sync.Mutex
	prev *record.Record
	log  *logrus.Logger
}

// NewStore returns a ready-to-use store. A nil logger is replaced with the
// logrus standard logger.
func NewStore(log *logrus.Logger) *Store {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Store{log: log}
}

// Update stores cur and reports whether it differs from the previously
// stored record. The first call always reports a change.
func (s *Store) Update(cur record.Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.prev != nil && *s.prev == cur {
		return false
	}
	first := s.prev == nil
	cp := cur
	s.prev = &cp

	s.log.WithFields(logrus.Fields{"first": first}).Debug("snapshot changed")
	return true
}

// Latest returns the last stored record, if any.
func (s *Store) Latest() (record.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.prev == nil {
		return record.Record{}, false
	}
	return *s.prev, true
}

// Reset drops the stored record so the next Update reports a change.
func (s *Store) Reset() {
	s.mu.Lock()
	s.prev = nil
	s.mu.Unlock()
}
