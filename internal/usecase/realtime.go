package usecase

import "context"

// Realtime topics. The server broadcasts new-event and delete-event to every
// client; clients emit create-event and delete-event with their bearer token.
const (
	TopicNewEvent    = "new-event"
	TopicDeleteEvent = "delete-event"
	TopicCreateEvent = "create-event"
	TopicError       = "error"
)

type ConnectionState string

const (
	ConnectionConnecting   ConnectionState = "connecting"
	ConnectionConnected    ConnectionState = "connected"
	ConnectionReconnecting ConnectionState = "reconnecting"
	ConnectionClosed       ConnectionState = "closed"
)

// RealtimeChannel is the single push connection shared by the process.
// Every Subscribe must be paired with a call to the returned unsubscribe.
type RealtimeChannel interface {
	Subscribe(topic string, fn func(payload []byte)) (unsubscribe func())
	Emit(ctx context.Context, topic string, args ...any) error
	State() ConnectionState
}

// FeedRecorder receives event feed measurements.
type FeedRecorder interface {
	FeedFetch(outcome string)
	FeedNotification(topic string)
	FeedSuperseded()
	FollowRollback()
}

type nopFeedRecorder struct{}

func (nopFeedRecorder) FeedFetch(string)        {}
func (nopFeedRecorder) FeedNotification(string) {}
func (nopFeedRecorder) FeedSuperseded()         {}
func (nopFeedRecorder) FollowRollback()         {}
