package signals

import (
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/oklog/ulid/v2"
)

type slot struct {
	id       ulid.ULID
	detached atomic.Bool
	remove   func(*slot)
}

// disconnect removes the slot from its list. Only the first caller wins.
func (s *slot) disconnect() {
	if !s.detached.CompareAndSwap(false, true) {
		return
	}
	s.remove(s)
}

type entry[F any] struct {
	slot *slot
	fn   F
}

// slotList never changes an element a snapshot can see: removal works on a
// copy, so a slice obtained from snapshot stays valid while slots run without
// the lock.
type slotList[F any] struct {
	mu      sync.Mutex
	entries []entry[F]
	logger  *slog.Logger
}

func (l *slotList[F]) log() *slog.Logger {
	if l.logger == nil {
		return discardLogger
	}
	return l.logger
}

func (l *slotList[F]) attach(fn F) Connection {
	s := &slot{remove: l.remove}
	l.mu.Lock()
	s.id = ulid.Make()
	// Appending in place is safe: a snapshot never reads past its own length,
	// and remove always works on a clone.
	l.entries = append(l.entries, entry[F]{slot: s, fn: fn})
	n := len(l.entries)
	l.mu.Unlock()
	l.log().Debug("slot attached", slotAttr(s.id), countAttr("slots", n))
	return newConnection(s)
}

func (l *slotList[F]) remove(s *slot) {
	l.mu.Lock()
	i := slices.IndexFunc(l.entries, func(e entry[F]) bool { return e.slot == s })
	if i < 0 {
		l.mu.Unlock()
		return
	}
	l.entries = slices.Delete(slices.Clone(l.entries), i, i+1)
	n := len(l.entries)
	l.mu.Unlock()
	l.log().Debug("slot detached", slotAttr(s.id), countAttr("slots", n))
}

func (l *slotList[F]) snapshot() []entry[F] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.entries
}

func (l *slotList[F]) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *slotList[F]) clear() {
	l.mu.Lock()
	entries := l.entries
	l.entries = nil
	for _, e := range entries {
		e.slot.detached.Store(true)
	}
	l.mu.Unlock()
	if len(entries) > 0 {
		l.log().Debug("all slots detached", countAttr("detached", len(entries)))
	}
}
