package station

import "github.com/google/uuid"

// Subscription is a handle for one registered callback on one channel. It is
// opaque to callers except as the argument to Unsubscribe; the ID and channel
// name exist for diagnostics only. A subscription belongs to the channel that
// created it for its entire lifetime.
type Subscription[T any] struct {
	id      string
	channel string
	fn      Handler[T]
	once    bool
}

func newSubscription[T any](channel string, fn Handler[T], once bool) *Subscription[T] {
	return &Subscription[T]{
		id:      uuid.NewString(),
		channel: channel,
		fn:      fn,
		once:    once,
	}
}

// ID returns the subscription's unique identifier.
func (s *Subscription[T]) ID() string { return s.id }

// ChannelName returns the name of the channel the subscription was created on.
func (s *Subscription[T]) ChannelName() string { return s.channel }
