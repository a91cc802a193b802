package reconcile

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/utils/errors"
)

type entry struct {
	mu       sync.Mutex
	owner    string
	session  *Session
	lastUsed time.Time
	// set once the entry leaves the registry
	closed atomic.Bool
}

// Registry holds the open sessions of all actors behind opaque handles.
type Registry struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*entry
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*entry),
	}
}

// Put stores the session for owner and returns its handle.
func (r *Registry) Put(owner string, s *Session) string {
	id := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.evictLocked()
	r.entries[id] = &entry{owner: owner, session: s, lastUsed: r.now()}
	return id
}

// With runs fn with exclusive access to the session. Unknown, expired and
// foreign handles all report ErrNotFound.
func (r *Registry) With(id, owner string, fn func(*Session) error) error {
	e, err := r.lookup(id, owner)
	if err != nil {
		return err
	}
	return r.run(e, fn)
}

func (r *Registry) lookup(id, owner string) (*entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evictLocked()
	e, ok := r.entries[id]
	if !ok || e.owner != owner {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return e, nil
}

// run holds the entry lock for fn. An entry evicted or removed after lookup
// is reported as ErrNotFound instead of editing a detached session.
func (r *Registry) run(e *entry, fn func(*Session) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed.Load() {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	e.lastUsed = r.now()
	return fn(e.session)
}

func (r *Registry) Remove(id, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok || e.owner != owner {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	e.closed.Store(true)
	delete(r.entries, id)
	return nil
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Registry) evictLocked() {
	if r.ttl <= 0 {
		return
	}
	cutoff := r.now().Add(-r.ttl)
	for id, e := range r.entries {
		// TryLock skips sessions that are in use right now
		if !e.mu.TryLock() {
			continue
		}
		expired := e.lastUsed.Before(cutoff)
		if expired {
			e.closed.Store(true)
		}
		e.mu.Unlock()
		if expired {
			delete(r.entries, id)
		}
	}
}
