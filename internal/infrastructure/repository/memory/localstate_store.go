package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/sportsboard/internal/domain/localstate"
)

// LocalStateStore keeps local state for the life of the process.
type LocalStateStore struct {
	mu      sync.RWMutex
	entries map[localstate.Key]localstate.Entry
	now     func() time.Time
}

func NewLocalStateStore() *LocalStateStore {
	return &LocalStateStore{
		entries: make(map[localstate.Key]localstate.Entry),
		now:     time.Now,
	}
}

func (s *LocalStateStore) Get(_ context.Context, key localstate.Key) (localstate.Entry, bool, error) {
	if err := key.Validate(); err != nil {
		return localstate.Entry{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	if !ok {
		return localstate.Entry{}, false, nil
	}
	entry.Value = append([]byte(nil), entry.Value...)
	return entry, true, nil
}

func (s *LocalStateStore) Put(_ context.Context, key localstate.Key, value []byte) error {
	if err := key.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = localstate.Entry{
		Key:       key,
		Value:     append([]byte(nil), value...),
		UpdatedAt: s.now().UTC(),
	}
	return nil
}

func (s *LocalStateStore) Delete(_ context.Context, key localstate.Key) error {
	if err := key.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

func (s *LocalStateStore) ListByPrefix(_ context.Context, prefix string) ([]localstate.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]localstate.Entry, 0, len(s.entries))
	for key, entry := range s.entries {
		if !strings.HasPrefix(string(key), prefix) {
			continue
		}
		entry.Value = append([]byte(nil), entry.Value...)
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}
