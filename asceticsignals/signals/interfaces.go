package signals

type Observer0 func()

type Observer[E any] func(E)

type Observer2[A, B any] func(A, B)

type Signal0 interface {
	Attach(observer Observer0) Connection
	AttachOwned(owner Subscriber, observer Observer0) Connection
	Notify()
	Len() int
	DisconnectAll()
}

type Signal[E any] interface {
	Attach(observer Observer[E]) Connection
	AttachOwned(owner Subscriber, observer Observer[E]) Connection
	Notify(event E)
	Len() int
	DisconnectAll()
}

type Signal2[A, B any] interface {
	Attach(observer Observer2[A, B]) Connection
	AttachOwned(owner Subscriber, observer Observer2[A, B]) Connection
	Notify(a A, b B)
	Len() int
	DisconnectAll()
}

// Subscriber is implemented by types that want their connections released
// together with them. Embed Owner to get an implementation.
type Subscriber interface {
	RecordConnection(conn Connection)
}
