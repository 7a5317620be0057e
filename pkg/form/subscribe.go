package form

import (
	"slices"
	"sync"
)

// Listener receives a snapshot after every handled event.
// Listeners run synchronously on the caller's goroutine and must not call back
// into the Controller.
type Listener func(FormState)

type subscription struct {
	id int
	fn Listener
}

// listeners keeps registration order. Only Subscribe and cancel may race with
// publish, since the rendering layer may unsubscribe from another goroutine.
type listeners struct {
	mu     sync.RWMutex
	nextID int
	subs   []subscription
}

func (l *listeners) add(fn Listener) (cancel func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	id := l.nextID
	l.subs = append(l.subs, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { l.remove(id) })
	}
}

func (l *listeners) remove(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.subs = slices.DeleteFunc(l.subs, func(s subscription) bool { return s.id == id })
}

func (l *listeners) publish(state FormState) {
	l.mu.RLock()
	subs := slices.Clone(l.subs)
	l.mu.RUnlock()

	for _, s := range subs {
		s.fn(state.Clone())
	}
}
