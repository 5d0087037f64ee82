// Package observer provides a minimal synchronous observer list. Subscribers
// that arrive after the value has been set are replayed the current value so
// late-binding UI always starts in sync.
package observer

// Subject holds the last published value and its subscribers.
type Subject[T any] struct {
	value    T
	hasValue bool
	nextID   int
	subs     []subscription[T]
}

type subscription[T any] struct {
	id int
	fn func(T)
}

// NewSubject creates a subject seeded with an initial value.
func NewSubject[T any](initial T) *Subject[T] {
	return &Subject[T]{value: initial, hasValue: true}
}

// Subscribe registers fn and immediately calls it with the current value if
// one has been set. The returned func removes the subscription.
func (s *Subject[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	if s == nil || fn == nil {
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription[T]{id: id, fn: fn})
	if s.hasValue {
		fn(s.value)
	}
	return func() { s.remove(id) }
}

// Publish stores v and dispatches it to every subscriber in subscription order.
func (s *Subject[T]) Publish(v T) {
	if s == nil {
		return
	}
	s.value = v
	s.hasValue = true
	subs := append([]subscription[T](nil), s.subs...)
	for _, sub := range subs {
		sub.fn(v)
	}
}

// Value returns the last published value.
func (s *Subject[T]) Value() (T, bool) {
	if s == nil {
		var zero T
		return zero, false
	}
	return s.value, s.hasValue
}

// Len returns the number of active subscribers.
func (s *Subject[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.subs)
}

func (s *Subject[T]) remove(id int) {
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}
