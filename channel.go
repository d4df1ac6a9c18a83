package station

import (
	"sync"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Handler is a subscriber callback. It receives the payload passed to Publish.
type Handler[T any] func(T)

// None is the payload type for channels that carry no payload.
type None struct{}

// Ignore adapts a zero-argument callback so it can subscribe to any channel.
// The delivered payload is discarded.
func Ignore[T any](fn func()) Handler[T] {
	return func(T) { fn() }
}

// Channel is one named pub/sub line with its own ordered subscriber list.
// Delivery is synchronous and in subscribe order. All methods are safe for
// concurrent use; handlers run outside the channel's lock, so a handler may
// subscribe, unsubscribe, or publish, including on its own channel.
type Channel[T any] struct {
	name   string
	logger *zap.Logger
	tracer trace.Tracer

	mu   sync.Mutex
	subs []*Subscription[T]
}

// NewChannel creates an empty channel registered under name. Channels built
// this way are independent of any station; see the package documentation for
// composing them into a statically typed channel set.
func NewChannel[T any](name string, opts ...Option) *Channel[T] {
	o := applyOptions(opts)
	return &Channel[T]{
		name:   name,
		logger: o.logger,
		tracer: o.tracer,
	}
}

// Name returns the name the channel was registered under.
func (c *Channel[T]) Name() string { return c.name }

// Subscribe appends fn to the end of the subscriber sequence and returns its
// subscription handle.
func (c *Channel[T]) Subscribe(fn Handler[T]) *Subscription[T] {
	return c.add(fn, false)
}

// SubscribeOnce is Subscribe with automatic removal around the first
// delivery: the callback receives at most one payload ever, no matter how
// many publishes follow. The subscription is claimed (removed) just before
// its callback runs, so a re-entrant or concurrent publish cannot deliver
// to it a second time and a panicking callback still counts as consumed.
func (c *Channel[T]) SubscribeOnce(fn Handler[T]) *Subscription[T] {
	return c.add(fn, true)
}

func (c *Channel[T]) add(fn Handler[T], once bool) *Subscription[T] {
	sub := newSubscription(c.name, fn, once)

	c.mu.Lock()
	c.subs = append(c.subs, sub)
	n := len(c.subs)
	c.mu.Unlock()

	c.logger.Debug("subscriber added",
		zap.String("channel", c.name),
		zap.String("subscription", sub.id),
		zap.Bool("once", once),
		zap.Int("subscribers", n),
	)
	return sub
}

// Unsubscribe removes sub from the channel. Matching is by identity; a
// subscription that is nil, was already removed, or belongs to another
// channel is a silent no-op. A subscription removed while a publish is in
// flight receives no further deliveries within that publish if it has not
// yet been visited.
func (c *Channel[T]) Unsubscribe(sub *Subscription[T]) {
	if sub == nil {
		return
	}
	if c.remove(sub) {
		c.logger.Debug("subscriber removed",
			zap.String("channel", c.name),
			zap.String("subscription", sub.id),
		)
	}
}

// Publish delivers payload synchronously to every current subscriber, oldest
// first, then returns. Subscribers added by a handler during the call do not
// receive this payload; they join only future publishes. One-shot
// subscriptions are claimed before their handler runs, which makes their
// at-most-once guarantee hold even for overlapping or re-entrant publishes.
//
// If a handler panics, the panic propagates to the caller and the remaining
// subscribers of this call are not invoked; the subscriber sequence stays
// consistent either way.
func (c *Channel[T]) Publish(payload T) {
	span := c.startPublishSpan()

	c.mu.Lock()
	snapshot := make([]*Subscription[T], len(c.subs))
	copy(snapshot, c.subs)
	c.mu.Unlock()

	delivered := 0
	for _, sub := range snapshot {
		if sub.once {
			// Claim the one-shot slot; losing the claim means another
			// publish already delivered it.
			if !c.remove(sub) {
				continue
			}
		} else if !c.contains(sub) {
			// Removed after the snapshot was taken.
			continue
		}
		sub.fn(payload)
		delivered++
	}

	c.logger.Debug("published",
		zap.String("channel", c.name),
		zap.Int("subscribers", len(snapshot)),
		zap.Int("delivered", delivered),
	)
	span.end(len(snapshot), delivered)
}

// SubscriberCount returns the number of active subscribers.
func (c *Channel[T]) SubscriberCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

// Notify publishes on a channel that carries no payload.
func Notify(c *Channel[None]) {
	c.Publish(None{})
}

// remove deletes sub from the sequence, preserving the order of the rest.
// Reports whether the subscription was present.
func (c *Channel[T]) remove(sub *Subscription[T]) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, s := range c.subs {
		if s == sub {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Channel[T]) contains(sub *Subscription[T]) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range c.subs {
		if s == sub {
			return true
		}
	}
	return false
}
