package actors

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

const defaultNameShards = 16

// Registry tracks live actors. Lookups by ID go through a single map; name
// lookups go through an xxhash-sharded index so concurrent readers on
// different names rarely contend. Spawn order is preserved so the host can
// schedule scripts deterministically.
type Registry struct {
	mu    sync.RWMutex
	byID  map[ID]*Actor
	order []ID

	shards []nameShard
}

type nameShard struct {
	mu   sync.RWMutex
	byID map[string]ID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	r := &Registry{
		byID:   make(map[ID]*Actor),
		shards: make([]nameShard, defaultNameShards),
	}
	for i := range r.shards {
		r.shards[i].byID = make(map[string]ID)
	}
	return r
}

func (r *Registry) shardFor(name string) *nameShard {
	return &r.shards[xxhash.Sum64String(name)%uint64(len(r.shards))]
}

// Add registers an actor. A later actor with the same name shadows earlier
// ones in name lookups until it is removed.
func (r *Registry) Add(a *Actor) {
	r.mu.Lock()
	r.byID[a.ID()] = a
	r.order = append(r.order, a.ID())
	r.mu.Unlock()

	sh := r.shardFor(a.Name())
	sh.mu.Lock()
	sh.byID[a.Name()] = a.ID()
	sh.mu.Unlock()
}

// Remove unregisters an actor by ID. Removing an unknown ID is a no-op. When
// the removed actor was shadowing others with its name, the earliest surviving
// actor with that name takes over name lookups.
func (r *Registry) Remove(id ID) {
	r.mu.Lock()
	a, ok := r.byID[id]
	if !ok {
		r.mu.Unlock()
		return
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	var heir ID
	var reindex bool
	for _, oid := range r.order {
		if other := r.byID[oid]; other != nil && other.Name() == a.Name() {
			heir, reindex = oid, true
			break
		}
	}
	r.mu.Unlock()

	sh := r.shardFor(a.Name())
	sh.mu.Lock()
	if sh.byID[a.Name()] == id {
		if reindex {
			sh.byID[a.Name()] = heir
		} else {
			delete(sh.byID, a.Name())
		}
	}
	sh.mu.Unlock()
}

// Get resolves an actor by ID.
func (r *Registry) Get(id ID) (*Actor, bool) {
	r.mu.RLock()
	a, ok := r.byID[id]
	r.mu.RUnlock()
	return a, ok
}

// GetByName resolves an actor by name.
func (r *Registry) GetByName(name string) (*Actor, bool) {
	sh := r.shardFor(name)
	sh.mu.RLock()
	id, ok := sh.byID[name]
	sh.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return r.Get(id)
}

// All returns the live actors in spawn order.
func (r *Registry) All() []*Actor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Actor, 0, len(r.order))
	for _, id := range r.order {
		if a, ok := r.byID[id]; ok {
			out = append(out, a)
		}
	}
	return out
}

// Len reports the number of live actors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
