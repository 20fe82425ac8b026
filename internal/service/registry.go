package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Registry keeps one resident value per key and runs callbacks for the same
// key one at a time. Idle entries with no callers are evicted by the janitor.
type Registry[T any] struct {
	mu      sync.Mutex
	entries map[string]*registryEntry[T]
	newFn   func(key string) T
	idleTTL time.Duration
	now     func() time.Time
}

type registryEntry[T any] struct {
	value    T
	slot     chan struct{}
	refs     int
	lastSeen time.Time
}

// NewRegistry creates a registry that builds values with newFn on first use
func NewRegistry[T any](newFn func(key string) T, idleTTL time.Duration) *Registry[T] {
	return &Registry[T]{
		entries: make(map[string]*registryEntry[T]),
		newFn:   newFn,
		idleTTL: idleTTL,
		now:     time.Now,
	}
}

// Do runs fn with exclusive access to the value for key.
// It returns ctx.Err() if the slot cannot be taken before ctx is done.
func (r *Registry[T]) Do(ctx context.Context, key string, fn func(T) error) error {
	ent := r.acquire(key)
	defer r.release(ent)

	select {
	case ent.slot <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-ent.slot }()

	return fn(ent.value)
}

func (r *Registry[T]) acquire(key string) *registryEntry[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	ent, ok := r.entries[key]
	if !ok {
		ent = &registryEntry[T]{
			value: r.newFn(key),
			slot:  make(chan struct{}, 1),
		}
		r.entries[key] = ent
	}
	ent.refs++
	ent.lastSeen = r.now()
	return ent
}

func (r *Registry[T]) release(ent *registryEntry[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ent.refs--
	ent.lastSeen = r.now()
}

// Len returns the number of resident entries
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Cleanup evicts entries idle for longer than the idle TTL
func (r *Registry[T]) Cleanup() int {
	if r.idleTTL <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.idleTTL)

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for k, ent := range r.entries {
		// An entry in use must stay so no second value for k can appear
		if ent.refs == 0 && ent.lastSeen.Before(cutoff) {
			delete(r.entries, k)
			evicted++
		}
	}
	return evicted
}

// StartJanitor evicts idle entries every interval until ctx is done
func (r *Registry[T]) StartJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 || r.idleTTL <= 0 {
		return
	}

	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if n := r.Cleanup(); n > 0 {
					log.Debug().Int("evicted", n).Msg("Evicted idle actors")
				}
			}
		}
	}()
}
