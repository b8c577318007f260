package localstate

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrKeyRequired = errors.New("local state key is required")

type Key string

const (
	KeyLastPath      Key = "lastPath"
	KeySession       Key = "session"
	KeyFollowOverlay Key = "followingEventTable"
	KeyEventDraft    Key = "draft:event"
	KeyLoginDraft    Key = "draft:login"
	KeyRegisterDraft Key = "draft:register"
	filterPrefix         = "filter:"
)

// FilterKey is where the filter of one view is kept, e.g. FilterKey("schedule").
func FilterKey(view string) Key {
	return Key(filterPrefix + strings.TrimSpace(view))
}

// FilterPrefix matches every FilterKey.
func FilterPrefix() string {
	return filterPrefix
}

func (k Key) Validate() error {
	if strings.TrimSpace(string(k)) == "" {
		return ErrKeyRequired
	}
	return nil
}

// Entry is one persisted value. Value holds encoded JSON.
type Entry struct {
	Key       Key
	Value     []byte
	UpdatedAt time.Time
}

// Store persists small JSON values across restarts. Writes to the same key
// replace the previous value.
type Store interface {
	Get(ctx context.Context, key Key) (Entry, bool, error)
	Put(ctx context.Context, key Key, value []byte) error
	Delete(ctx context.Context, key Key) error
	ListByPrefix(ctx context.Context, prefix string) ([]Entry, error)
}
