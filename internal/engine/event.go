package engine

// Event is a multi-cast event with one argument. Listeners are keyed by
// the ID returned from AddListener so they can actually be removed
// (function values are not comparable in Go).
type Event[T any] struct {
	nextID    int
	listeners []eventListener[T]
}

type eventListener[T any] struct {
	id int
	fn func(T)
}

// AddListener registers a callback and returns an ID usable with RemoveListener.
func (e *Event[T]) AddListener(fn func(T)) int {
	if fn == nil {
		return -1
	}
	e.nextID++
	e.listeners = append(e.listeners, eventListener[T]{id: e.nextID, fn: fn})
	return e.nextID
}

// RemoveListener removes the callback registered under id.
func (e *Event[T]) RemoveListener(id int) {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

// RemoveAllListeners clears all listeners.
func (e *Event[T]) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls all registered listeners in registration order.
func (e *Event[T]) Invoke(arg T) {
	for _, l := range e.listeners {
		l.fn(arg)
	}
}

// ListenerCount returns the number of registered listeners.
func (e *Event[T]) ListenerCount() int {
	return len(e.listeners)
}
