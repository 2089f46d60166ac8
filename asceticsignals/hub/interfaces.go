package hub

// EventHandler handles an event of type E.
type EventHandler[S, E any] = func(session S, event E) error
