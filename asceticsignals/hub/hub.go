package hub

import (
	"reflect"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/krew-solutions/ascetic-signals-go/asceticsignals/disposable"
	"github.com/krew-solutions/ascetic-signals-go/asceticsignals/signals"
)

// delivery carries one Publish through the signal. Handlers append their
// errors to it, so every handler runs even when an earlier one fails.
type delivery[S, E any] struct {
	session S
	event   E
	err     error
}

func NewHub[S any](opts ...signals.Option) *HubImp[S] {
	return &HubImp[S]{
		signals: make(map[reflect.Type]disconnector),
		opts:    opts,
	}
}

// HubImp routes events to subscribers by the event's static type. Each event
// type gets its own signal, so subscriptions of different types never
// interfere.
type HubImp[S any] struct {
	mu      sync.Mutex
	signals map[reflect.Type]disconnector
	opts    []signals.Option
}

type disconnector interface {
	DisconnectAll()
}

func signalFor[S, E any](h *HubImp[S], create bool) *signals.SignalImp[*delivery[S, E]] {
	eventType := reflect.TypeFor[E]()
	h.mu.Lock()
	defer h.mu.Unlock()
	if sig, ok := h.signals[eventType]; ok {
		return sig.(*signals.SignalImp[*delivery[S, E]])
	}
	if !create {
		return nil
	}
	opts := append(append([]signals.Option{}, h.opts...), signals.WithName(eventType.String()))
	sig := signals.NewSignal[*delivery[S, E]](opts...)
	h.signals[eventType] = sig
	return sig
}

func observe[S, E any](handler EventHandler[S, E]) signals.Observer[*delivery[S, E]] {
	if handler == nil {
		panic("hub: nil handler")
	}
	return func(d *delivery[S, E]) {
		if err := handler(d.session, d.event); err != nil {
			d.err = multierror.Append(d.err, err)
		}
	}
}

// Subscribe subscribes a typed event handler for events of type E.
func Subscribe[S, E any](h *HubImp[S], handler EventHandler[S, E]) signals.Connection {
	return signalFor[S, E](h, true).Attach(observe(handler))
}

// SubscribeOwned subscribes handler and records the connection with owner.
func SubscribeOwned[S, E any](h *HubImp[S], owner signals.Subscriber, handler EventHandler[S, E]) signals.Connection {
	return signalFor[S, E](h, true).AttachOwned(owner, observe(handler))
}

// SubscribeMethod binds method to instance and subscribes it. Disposing
// instance unsubscribes it.
func SubscribeMethod[S, E any, T signals.Subscriber](h *HubImp[S], method func(T, S, E) error, instance T) signals.Connection {
	return SubscribeOwned(h, instance, func(session S, event E) error {
		return method(instance, session, event)
	})
}

// Publish publishes an event to all subscribers of the event's type. Every
// subscriber is called; their errors are combined into one.
func Publish[S, E any](h *HubImp[S], session S, event E) error {
	sig := signalFor[S, E](h, false)
	if sig == nil {
		return nil
	}
	d := &delivery[S, E]{session: session, event: event}
	sig.Notify(d)
	if d.err != nil {
		return errors.Wrapf(d.err, "publish %v", reflect.TypeFor[E]())
	}
	return nil
}

// SubscriberCount returns the number of live subscriptions for events of type E.
func SubscriberCount[S, E any](h *HubImp[S]) int {
	sig := signalFor[S, E](h, false)
	if sig == nil {
		return 0
	}
	return sig.Len()
}

// Close unsubscribes every handler of every event type.
func (h *HubImp[S]) Close() {
	h.mu.Lock()
	all := disposable.NewCompositeDisposable()
	for _, sig := range h.signals {
		all.Add(disposable.NewDisposable(sig.DisconnectAll))
	}
	h.mu.Unlock()
	all.Dispose()
}
