package signals

// CompositeConnection groups the connections made by CompositeSignalImp.
type CompositeConnection []Connection

// Connected reports whether any of the underlying connections is still live.
func (c CompositeConnection) Connected() bool {
	for _, conn := range c {
		if conn.Connected() {
			return true
		}
	}
	return false
}

func (c CompositeConnection) Disconnect() {
	for _, conn := range c {
		conn.Disconnect()
	}
}

func (c CompositeConnection) Dispose() {
	c.Disconnect()
}

type CompositeSignalImp[E any] struct {
	delegates []Signal[E]
}

func NewCompositeSignal[E any](delegates ...Signal[E]) *CompositeSignalImp[E] {
	return &CompositeSignalImp[E]{delegates: delegates}
}

func (s *CompositeSignalImp[E]) Attach(observer Observer[E]) CompositeConnection {
	connections := make(CompositeConnection, 0, len(s.delegates))
	for _, delegate := range s.delegates {
		connections = append(connections, delegate.Attach(observer))
	}
	return connections
}

func (s *CompositeSignalImp[E]) AttachOwned(owner Subscriber, observer Observer[E]) CompositeConnection {
	connections := make(CompositeConnection, 0, len(s.delegates))
	for _, delegate := range s.delegates {
		connections = append(connections, delegate.AttachOwned(owner, observer))
	}
	return connections
}

func (s *CompositeSignalImp[E]) Notify(event E) {
	for _, delegate := range s.delegates {
		delegate.Notify(event)
	}
}

func (s *CompositeSignalImp[E]) Len() int {
	n := 0
	for _, delegate := range s.delegates {
		n += delegate.Len()
	}
	return n
}

func (s *CompositeSignalImp[E]) DisconnectAll() {
	for _, delegate := range s.delegates {
		delegate.DisconnectAll()
	}
}
