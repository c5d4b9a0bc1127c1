// Package notify is a small typed observer used by the ordering engine in
// place of DOM events. Every component exposes one Notifier per event kind
// and renderers subscribe to the ones they draw.
package notify

// Notifier delivers values of type T to its subscribers synchronously and in
// subscription order. The zero value is ready to use. A Notifier is owned by
// a single component and is not safe for concurrent Subscribe/Notify.
type Notifier[T any] struct {
	nextID int
	subs   []subscription[T]
}

type subscription[T any] struct {
	id int
	fn func(T)
}

// Subscribe registers fn and returns a function that removes it again.
func (n *Notifier[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	n.nextID++
	id := n.nextID
	n.subs = append(n.subs, subscription[T]{id: id, fn: fn})

	return func() {
		for i, s := range n.subs {
			if s.id == id {
				n.subs = append(n.subs[:i:i], n.subs[i+1:]...)
				return
			}
		}
	}
}

// Notify calls every subscriber with v. Subscribers added or removed while
// notifying take effect from the next call.
func (n *Notifier[T]) Notify(v T) {
	subs := n.subs
	for _, s := range subs {
		s.fn(v)
	}
}

// Len reports the number of live subscriptions.
func (n *Notifier[T]) Len() int {
	return len(n.subs)
}
