package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/riskibarqy/sportsboard/internal/domain/user"
	"github.com/riskibarqy/sportsboard/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{Subject: "test", ExpiresAt: jwt.NewNumericDate(exp)}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func newPrefs() *PreferenceService {
	return NewPreferenceService(memory.NewLocalStateStore())
}

// signIn stores an active session for userID and returns it.
func signIn(t *testing.T, prefs *PreferenceService, userID string, isAdmin bool) user.Session {
	t.Helper()

	session := user.Session{
		UserID:   userID,
		Username: userID,
		Token:    signedToken(t, time.Now().Add(time.Hour)),
		IsAdmin:  isAdmin,
	}
	require.NoError(t, prefs.SaveSession(context.Background(), session))
	return session
}

type emitted struct {
	topic string
	args  []any
}

type fakeChannel struct {
	mu      sync.Mutex
	subs    map[string]map[int]func([]byte)
	nextID  int
	emits   []emitted
	emitErr error
	state   ConnectionState
}

func newFakeChannel() *fakeChannel {
	return &fakeChannel{
		subs:  make(map[string]map[int]func([]byte)),
		state: ConnectionConnected,
	}
}

func (c *fakeChannel) Subscribe(topic string, fn func([]byte)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.subs[topic] == nil {
		c.subs[topic] = make(map[int]func([]byte))
	}
	id := c.nextID
	c.nextID++
	c.subs[topic][id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs[topic], id)
	}
}

func (c *fakeChannel) Emit(_ context.Context, topic string, args ...any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.emitErr != nil {
		return c.emitErr
	}
	c.emits = append(c.emits, emitted{topic: topic, args: args})
	return nil
}

func (c *fakeChannel) State() ConnectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *fakeChannel) publish(topic string, payload []byte) {
	c.mu.Lock()
	handlers := make([]func([]byte), 0, len(c.subs[topic]))
	for _, fn := range c.subs[topic] {
		handlers = append(handlers, fn)
	}
	c.mu.Unlock()

	for _, fn := range handlers {
		fn(payload)
	}
}

func (c *fakeChannel) subscribers(topic string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs[topic])
}

func (c *fakeChannel) emitLog() []emitted {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]emitted(nil), c.emits...)
}

type countingRecorder struct {
	mu            sync.Mutex
	fetches       map[string]int
	notifications int
	superseded    int
	rollbacks     int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{fetches: make(map[string]int)}
}

func (r *countingRecorder) FeedFetch(outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetches[outcome]++
}

func (r *countingRecorder) FeedNotification(string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications++
}

func (r *countingRecorder) FeedSuperseded() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.superseded++
}

func (r *countingRecorder) FollowRollback() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rollbacks++
}

func (r *countingRecorder) count(outcome string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fetches[outcome]
}
