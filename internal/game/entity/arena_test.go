package entity

import "testing"

func TestArenaInsertGetRemove(t *testing.T) {
	a := NewArena(8)

	id := a.Insert(Entity{Kind: KindCollectible, Lane: LaneLeft, Depth: 10})
	if a.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", a.Len())
	}

	e, ok := a.Get(id)
	if !ok {
		t.Fatal("Get() failed for a live ID")
	}
	if e.Kind != KindCollectible || e.Lane != LaneLeft || e.Depth != 10 {
		t.Errorf("Get() returned wrong entity: %+v", e)
	}
	if e.ID != id {
		t.Errorf("Entity ID %+v should match handle %+v", e.ID, id)
	}

	if !a.Remove(id) {
		t.Error("Remove() of a live entity should report true")
	}
	if a.Len() != 0 {
		t.Errorf("Len() after remove = %d, expected 0", a.Len())
	}
	if _, ok := a.Get(id); ok {
		t.Error("Get() after remove should fail")
	}
}

func TestArenaDoubleRemoveIsNoOp(t *testing.T) {
	a := NewArena(4)
	id := a.Insert(Entity{Kind: KindLowObstacle})

	if !a.Remove(id) {
		t.Fatal("first Remove() should succeed")
	}
	if a.Remove(id) {
		t.Error("second Remove() should be a no-op")
	}
	if a.Len() != 0 {
		t.Errorf("Len() = %d after double remove, expected 0", a.Len())
	}
}

func TestArenaStaleIDAfterReuse(t *testing.T) {
	a := NewArena(4)
	old := a.Insert(Entity{Kind: KindCollectible})
	a.Remove(old)

	// Slot gets recycled for a new entity
	fresh := a.Insert(Entity{Kind: KindHighObstacle})
	if fresh.Index != old.Index {
		t.Fatalf("expected slot reuse: old index %d, fresh index %d", old.Index, fresh.Index)
	}

	if _, ok := a.Get(old); ok {
		t.Error("stale ID should not resolve after slot reuse")
	}
	if a.Remove(old) {
		t.Error("stale Remove() should be a no-op")
	}
	if _, ok := a.Get(fresh); !ok {
		t.Error("fresh ID should still resolve")
	}
}

func TestArenaRemoveDuringEach(t *testing.T) {
	a := NewArena(8)
	var ids []ID
	for i := 0; i < 5; i++ {
		ids = append(ids, a.Insert(Entity{Kind: KindCollectible, Depth: float64(i)}))
	}

	// Remove every visited entity while iterating
	visited := 0
	a.Each(func(e Entity) {
		visited++
		a.Remove(e.ID)
	})

	if visited != 5 {
		t.Errorf("Each visited %d entities, expected 5", visited)
	}
	if a.Len() != 0 {
		t.Errorf("Len() = %d after removal during iteration, expected 0", a.Len())
	}
	for _, id := range ids {
		if _, ok := a.Get(id); ok {
			t.Errorf("ID %+v should be gone", id)
		}
	}
}

func TestArenaReset(t *testing.T) {
	a := NewArena(4)
	id := a.Insert(Entity{Kind: KindScenery})

	a.Reset()
	if a.Len() != 0 {
		t.Errorf("Len() after Reset = %d, expected 0", a.Len())
	}
	if _, ok := a.Get(id); ok {
		t.Error("pre-reset ID should be stale")
	}

	// Arena stays usable
	id2 := a.Insert(Entity{Kind: KindCollectible})
	if _, ok := a.Get(id2); !ok {
		t.Error("insert after Reset should work")
	}
}
