package homegraph

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Logger defines the logging interface used by the Store.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Store holds the current snapshot. Readers take the pointer once per
// request and see one consistent graph even while a new snapshot is being
// installed.
//
// All public methods are thread-safe.
type Store struct {
	current atomic.Pointer[Snapshot]

	subMu       sync.RWMutex
	subscribers []func(*Snapshot)

	logger Logger
}

// NewStore creates a store holding an empty snapshot.
func NewStore() *Store {
	s := &Store{logger: noopLogger{}}
	s.current.Store(NewSnapshot(nil, "empty"))
	return s
}

// SetLogger sets the logger for the store.
func (s *Store) SetLogger(logger Logger) {
	s.logger = logger
}

// Snapshot returns the snapshot installed most recently.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Replace installs snap and notifies subscribers synchronously.
func (s *Store) Replace(snap *Snapshot) {
	s.current.Store(snap)

	counts := snap.Counts()
	s.logger.Info("graph snapshot installed",
		"source", snap.Source,
		"homes", counts.Homes,
		"accessories", counts.Accessories,
	)

	s.subMu.RLock()
	subs := make([]func(*Snapshot), len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.RUnlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// Subscribe registers fn to be called after every Replace.
func (s *Store) Subscribe(fn func(*Snapshot)) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// LoadFile decodes the snapshot at path and installs it.
func (s *Store) LoadFile(d *Decoder, path string) error {
	snap, err := d.DecodeFile(path)
	if err != nil {
		return fmt.Errorf("loading graph snapshot: %w", err)
	}
	s.Replace(snap)
	return nil
}
