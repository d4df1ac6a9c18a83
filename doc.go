// Package station provides a typed publish/subscribe registry: a fixed set of
// named channels with synchronous, in-process, insertion-ordered delivery.
//
// A Station is built once from a list of unique channel names; channels cannot
// be added or removed afterwards. Each Channel delivers payloads to callback
// subscribers in subscribe order, supports one-shot subscriptions, and
// tolerates subscribe/unsubscribe/publish from inside a handler.
//
// All channels of one Station share a payload type: Station[any] is the
// untyped form, Station[None] carries no payload. When channels need distinct
// payload types, build them individually with NewChannel and group them in a
// struct so that unknown channel names fail at compile time:
//
//	type Events struct {
//		Login  *station.Channel[User]
//		Logout *station.Channel[station.None]
//	}
//
//	events := Events{
//		Login:  station.NewChannel[User]("login"),
//		Logout: station.NewChannel[station.None]("logout"),
//	}
package station
