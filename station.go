package station

// Station is a fixed collection of named channels created together. All
// channels share the payload type T; the channel set is immutable after
// construction.
type Station[T any] struct {
	channels map[string]*Channel[T]
	names    []string
}

// New builds a station with one empty channel per name, in the order given.
// Names must be unique within the call; a repeated name fails with
// *DuplicateChannelError and no station is returned. Options are applied to
// every channel.
func New[T any](names []string, opts ...Option) (*Station[T], error) {
	channels := make(map[string]*Channel[T], len(names))
	order := make([]string, 0, len(names))
	for _, name := range names {
		if _, dup := channels[name]; dup {
			return nil, &DuplicateChannelError{Name: name}
		}
		channels[name] = NewChannel[T](name, opts...)
		order = append(order, name)
	}
	return &Station[T]{channels: channels, names: order}, nil
}

// Channel returns the channel registered under name. Unknown names fail with
// *NoSuchChannelError; a channel is never created on first use.
func (s *Station[T]) Channel(name string) (*Channel[T], error) {
	ch, ok := s.channels[name]
	if !ok {
		return nil, &NoSuchChannelError{Name: name}
	}
	return ch, nil
}

// Names returns the channel names in declaration order.
func (s *Station[T]) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of channels.
func (s *Station[T]) Len() int {
	return len(s.channels)
}
