package core

// Subscription identifies one registered callback in an Observers list.
// The zero value never identifies a live subscription.
type Subscription uint64

type registeredEvent[T any] struct {
	id       Subscription
	callback func(T)
}

// Observers is an ordered list of callbacks for events of type T.
// Callbacks run synchronously in subscription order. The list is owned by
// the render thread and is not safe for concurrent use.
type Observers[T any] struct {
	next   Subscription
	events []registeredEvent[T]
}

// Add registers a callback and returns the handle used to remove it.
func (o *Observers[T]) Add(callback func(T)) (Subscription, error) {
	if callback == nil {
		return 0, ErrInvalidSubscriber
	}
	o.next++
	o.events = append(o.events, registeredEvent[T]{id: o.next, callback: callback})
	return o.next, nil
}

// Remove unregisters the callback identified by sub. It returns false when
// sub is not registered.
func (o *Observers[T]) Remove(sub Subscription) bool {
	for i, e := range o.events {
		if e.id == sub {
			o.events = append(o.events[:i], o.events[i+1:]...)
			return true
		}
	}
	return false
}

// Notify delivers event to every subscriber, oldest first. Subscribers added
// or removed during delivery take effect on the next Notify.
func (o *Observers[T]) Notify(event T) {
	events := make([]registeredEvent[T], len(o.events))
	copy(events, o.events)
	for _, e := range events {
		e.callback(event)
	}
}

// Len reports the number of registered callbacks.
func (o *Observers[T]) Len() int {
	return len(o.events)
}
