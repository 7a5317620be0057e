package web

import "sync"

// draftLocks serializes events per draft, since a form.Controller is
// single-owner.
type draftLocks struct {
	mu    sync.Mutex
	locks map[string]*draftLock
}

type draftLock struct {
	mu   sync.Mutex
	refs int
}

func newDraftLocks() *draftLocks {
	return &draftLocks{locks: make(map[string]*draftLock)}
}

func (l *draftLocks) lock(id string) (unlock func()) {
	l.mu.Lock()
	dl, ok := l.locks[id]
	if !ok {
		dl = &draftLock{}
		l.locks[id] = dl
	}
	dl.refs++
	l.mu.Unlock()

	dl.mu.Lock()
	return func() {
		dl.mu.Unlock()
		l.mu.Lock()
		if dl.refs--; dl.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
