package station

import "fmt"

// DuplicateChannelError reports a channel name that was supplied more than
// once to New. Construction fails atomically: no station is returned.
type DuplicateChannelError struct {
	Name string
}

func (e *DuplicateChannelError) Error() string {
	return fmt.Sprintf("station: duplicate channel %q", e.Name)
}

// NoSuchChannelError reports a lookup of a channel name the station was not
// built with. Channels are never created on first use.
type NoSuchChannelError struct {
	Name string
}

func (e *NoSuchChannelError) Error() string {
	return fmt.Sprintf("station: no such channel %q", e.Name)
}
