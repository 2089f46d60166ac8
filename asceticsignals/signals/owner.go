package signals

import (
	"slices"
	"sync"

	"github.com/krew-solutions/ascetic-signals-go/asceticsignals/disposable"
)

// Owner records the connections made on behalf of the type embedding it and
// releases them all on Dispose. The zero value is ready to use. An Owner must
// not be copied after first use.
//
//	type Window struct {
//		signals.Owner
//	}
//
//	w := &Window{}
//	defer w.Dispose()
//	signals.AttachMethod(resized, (*Window).OnResize, w)
type Owner struct {
	mu          sync.Mutex
	connections []Connection
	resources   []disposable.Disposable
	disposed    bool
}

// RecordConnection ties conn to the owner's lifetime. If the owner has already
// been disposed, conn is disconnected immediately.
func (o *Owner) RecordConnection(conn Connection) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.disposed {
		conn.Disconnect()
		return
	}
	if len(o.connections) == cap(o.connections) {
		o.connections = slices.DeleteFunc(o.connections, func(c Connection) bool {
			return !c.Connected()
		})
	}
	o.connections = append(o.connections, conn)
}

// Track ties any other resource to the owner's lifetime. Tracked resources are
// disposed after the connections, in reverse order of tracking.
func (o *Owner) Track(resource disposable.Disposable) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.disposed {
		resource.Dispose()
		return
	}
	o.resources = append(o.resources, resource)
}

// Len returns the number of recorded connections that are still connected.
func (o *Owner) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := 0
	for _, c := range o.connections {
		if c.Connected() {
			n++
		}
	}
	return n
}

func (o *Owner) Disposed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.disposed
}

// Dispose disconnects every recorded connection, then disposes tracked
// resources outside the lock. Later calls are no-ops.
func (o *Owner) Dispose() {
	o.mu.Lock()
	if o.disposed {
		o.mu.Unlock()
		return
	}
	o.disposed = true
	for _, conn := range o.connections {
		conn.Disconnect()
	}
	resources := o.resources
	o.connections = nil
	o.resources = nil
	o.mu.Unlock()

	for i := len(resources) - 1; i >= 0; i-- {
		resources[i].Dispose()
	}
}
