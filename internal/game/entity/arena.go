package entity

// ID is a stable handle into the arena. The generation guards against reuse:
// a stale ID whose slot has been recycled no longer resolves.
type ID struct {
	Index uint32
	Gen   uint32
}

type slot struct {
	gen  uint32
	live bool
	ent  Entity
}

// Arena is a slot-map entity store. Slots are recycled through a free list so
// the backing array never compacts; iteration order is slot order, and
// removing entities mid-iteration is safe because removal only clears a slot.
type Arena struct {
	slots []slot
	free  []uint32
	count int
}

// NewArena creates an arena with capacity for the expected active set.
func NewArena(capacity int) *Arena {
	return &Arena{
		slots: make([]slot, 0, capacity),
		free:  make([]uint32, 0, capacity/2),
	}
}

// Reset removes all entities and recycles every slot.
// Generations keep advancing so IDs from before the reset stay stale.
func (a *Arena) Reset() {
	a.free = a.free[:0]
	for i := range a.slots {
		if a.slots[i].live {
			a.slots[i].live = false
			a.slots[i].gen++
		}
		a.free = append(a.free, uint32(i))
	}
	a.count = 0
}

// Insert adds an entity and returns its ID. The entity's ID field is set.
func (a *Arena) Insert(e Entity) ID {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot{gen: 1})
		idx = uint32(len(a.slots) - 1)
	}

	s := &a.slots[idx]
	id := ID{Index: idx, Gen: s.gen}
	e.ID = id
	s.ent = e
	s.live = true
	a.count++
	return id
}

// Get resolves an ID to its entity. Stale or cleared IDs return false.
func (a *Arena) Get(id ID) (Entity, bool) {
	if int(id.Index) >= len(a.slots) {
		return Entity{}, false
	}
	s := a.slots[id.Index]
	if !s.live || s.gen != id.Gen {
		return Entity{}, false
	}
	return s.ent, true
}

// Remove deletes the entity behind the ID. Removing an already-removed or
// stale ID is a benign no-op; the return value reports whether a live entity
// was actually removed.
func (a *Arena) Remove(id ID) bool {
	if int(id.Index) >= len(a.slots) {
		return false
	}
	s := &a.slots[id.Index]
	if !s.live || s.gen != id.Gen {
		return false
	}
	s.live = false
	s.gen++
	a.free = append(a.free, id.Index)
	a.count--
	return true
}

// Len returns the number of live entities.
func (a *Arena) Len() int {
	return a.count
}

// Each calls fn for every live entity in slot order. fn may call Remove for
// any entity, including the current one.
func (a *Arena) Each(fn func(Entity)) {
	for i := range a.slots {
		if a.slots[i].live {
			fn(a.slots[i].ent)
		}
	}
}
