package signals

import (
	"weak"

	"github.com/oklog/ulid/v2"
)

// Connection is a handle to an attached observer. It holds only a weak
// reference, so it never keeps the observer or its signal alive. Copies share
// state; the zero Connection is permanently disconnected.
type Connection struct {
	id  ulid.ULID
	ref weak.Pointer[slot]
}

func newConnection(s *slot) Connection {
	return Connection{id: s.id, ref: weak.Make(s)}
}

// ID identifies the observer. IDs of one signal sort in attach order.
func (c Connection) ID() ulid.ULID {
	return c.id
}

// Connected reports whether the observer is still attached to its signal.
// It turns false after Disconnect, after the signal's DisconnectAll, or once
// the signal itself has been garbage collected.
func (c Connection) Connected() bool {
	s := c.ref.Value()
	return s != nil && !s.detached.Load()
}

// Disconnect detaches the observer. It is safe to call from any goroutine,
// from inside the observer itself, and more than once.
func (c Connection) Disconnect() {
	if s := c.ref.Value(); s != nil {
		s.disconnect()
	}
}

func (c Connection) Dispose() {
	c.Disconnect()
}
