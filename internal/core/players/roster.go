package players

import (
	"sync"

	"github.com/google/uuid"
)

// Player is a connected participant in the session.
type Player struct {
	ID   string
	Name string

	// seq is the join sequence number, used for master designation.
	seq uint64
}

// Roster is the local view of the multiplayer session: who is connected and
// which player is the master. The master is plain bookkeeping — the client
// elected to run minor shared chores — and carries no game-state authority.
//
// Designation is deterministic: the earliest-joined live player is master,
// and the role moves to the next earliest when the master leaves. Join and
// leave are driven by the host; scripts only read.
type Roster struct {
	mu      sync.RWMutex
	players map[string]*Player
	order   []string
	nextSeq uint64
	localID string
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{players: make(map[string]*Player)}
}

// Join adds a player and returns it. The first player to join becomes the
// master.
func (r *Roster) Join(name string) *Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := &Player{
		ID:   uuid.NewString(),
		Name: name,
		seq:  r.nextSeq,
	}
	r.nextSeq++
	r.players[p.ID] = p
	r.order = append(r.order, p.ID)
	return p
}

// Leave removes a player. If the master leaves, the earliest remaining
// player takes over. Unknown IDs are ignored.
func (r *Roster) Leave(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[id]; !ok {
		return
	}
	delete(r.players, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if r.localID == id {
		r.localID = ""
	}
}

// SetLocal marks which player this client controls.
func (r *Roster) SetLocal(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[id]; ok {
		r.localID = id
	}
}

// Local returns the player this client controls.
func (r *Roster) Local() (*Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.players[r.localID]
	return p, ok
}

// Get resolves a player by ID.
func (r *Roster) Get(id string) (*Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.players[id]
	return p, ok
}

// GetByName resolves a player by display name (first joined wins on
// duplicates).
func (r *Roster) GetByName(name string) (*Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if p := r.players[id]; p != nil && p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// All returns the players in join order.
func (r *Roster) All() []*Player {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Player, 0, len(r.order))
	for _, id := range r.order {
		if p, ok := r.players[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Master returns the current master player, if any player is connected.
func (r *Roster) Master() (*Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var master *Player
	for _, p := range r.players {
		if master == nil || p.seq < master.seq {
			master = p
		}
	}
	return master, master != nil
}

// IsMaster reports whether the given player is the master.
func (r *Roster) IsMaster(id string) bool {
	m, ok := r.Master()
	return ok && m.ID == id
}

// Len reports the number of connected players.
func (r *Roster) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}
