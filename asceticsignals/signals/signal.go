package signals

// Notify semantics, shared by all arities: the observers attached when Notify
// starts are each called exactly once, in attach order, on the caller's
// goroutine. No lock is held while they run. Disconnecting during Notify
// takes effect from the next Notify; observers attached during Notify are
// first called by the next Notify.

type SignalImp[E any] struct {
	slots slotList[Observer[E]]
}

func NewSignal[E any](opts ...Option) *SignalImp[E] {
	s := &SignalImp[E]{}
	s.slots.logger = newLogger(opts)
	return s
}

func (s *SignalImp[E]) Attach(observer Observer[E]) Connection {
	if observer == nil {
		panic("signals: nil observer")
	}
	return s.slots.attach(observer)
}

func (s *SignalImp[E]) AttachOwned(owner Subscriber, observer Observer[E]) Connection {
	conn := s.Attach(observer)
	owner.RecordConnection(conn)
	return conn
}

func (s *SignalImp[E]) Notify(event E) {
	for _, e := range s.slots.snapshot() {
		e.fn(event)
	}
}

func (s *SignalImp[E]) Len() int {
	return s.slots.len()
}

// DisconnectAll detaches every observer. Outstanding connections report
// false afterwards.
func (s *SignalImp[E]) DisconnectAll() {
	s.slots.clear()
}

// AttachMethod binds method to instance and attaches it to s. The connection
// is recorded with instance, so disposing instance detaches it.
//
//	conn := signals.AttachMethod(sig, (*Window).OnResize, window)
func AttachMethod[T Subscriber, E any](s Signal[E], method func(T, E), instance T) Connection {
	return s.AttachOwned(instance, func(event E) {
		method(instance, event)
	})
}

type Signal0Imp struct {
	slots slotList[Observer0]
}

func NewSignal0(opts ...Option) *Signal0Imp {
	s := &Signal0Imp{}
	s.slots.logger = newLogger(opts)
	return s
}

func (s *Signal0Imp) Attach(observer Observer0) Connection {
	if observer == nil {
		panic("signals: nil observer")
	}
	return s.slots.attach(observer)
}

func (s *Signal0Imp) AttachOwned(owner Subscriber, observer Observer0) Connection {
	conn := s.Attach(observer)
	owner.RecordConnection(conn)
	return conn
}

func (s *Signal0Imp) Notify() {
	for _, e := range s.slots.snapshot() {
		e.fn()
	}
}

func (s *Signal0Imp) Len() int {
	return s.slots.len()
}

func (s *Signal0Imp) DisconnectAll() {
	s.slots.clear()
}

func AttachMethod0[T Subscriber](s Signal0, method func(T), instance T) Connection {
	return s.AttachOwned(instance, func() {
		method(instance)
	})
}

type Signal2Imp[A, B any] struct {
	slots slotList[Observer2[A, B]]
}

func NewSignal2[A, B any](opts ...Option) *Signal2Imp[A, B] {
	s := &Signal2Imp[A, B]{}
	s.slots.logger = newLogger(opts)
	return s
}

func (s *Signal2Imp[A, B]) Attach(observer Observer2[A, B]) Connection {
	if observer == nil {
		panic("signals: nil observer")
	}
	return s.slots.attach(observer)
}

func (s *Signal2Imp[A, B]) AttachOwned(owner Subscriber, observer Observer2[A, B]) Connection {
	conn := s.Attach(observer)
	owner.RecordConnection(conn)
	return conn
}

func (s *Signal2Imp[A, B]) Notify(a A, b B) {
	for _, e := range s.slots.snapshot() {
		e.fn(a, b)
	}
}

func (s *Signal2Imp[A, B]) Len() int {
	return s.slots.len()
}

func (s *Signal2Imp[A, B]) DisconnectAll() {
	s.slots.clear()
}

func AttachMethod2[T Subscriber, A, B any](s Signal2[A, B], method func(T, A, B), instance T) Connection {
	return s.AttachOwned(instance, func(a A, b B) {
		method(instance, a, b)
	})
}
