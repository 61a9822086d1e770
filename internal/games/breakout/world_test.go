package breakout

import (
	"testing"
)

func TestWorldSpawnDespawn(t *testing.T) {
	w := NewWorld()

	a := w.Spawn(Entity{Kind: KindBrick})
	b := w.Spawn(Entity{Kind: KindBall})
	c := w.Spawn(Entity{Kind: KindBrick})

	if a == 0 || a == b || b == c {
		t.Fatalf("IDs must be unique and non-zero: %d %d %d", a, b, c)
	}
	if w.Len() != 3 || w.Count(KindBrick) != 2 {
		t.Fatalf("Len=%d bricks=%d", w.Len(), w.Count(KindBrick))
	}

	e, ok := w.Get(b)
	if !ok || e.ID != b || e.Kind != KindBall {
		t.Fatalf("Get(%d) = %+v, %v", b, e, ok)
	}

	if !w.Despawn(a) {
		t.Error("Despawn of a live entity should report true")
	}
	if w.Despawn(a) {
		t.Error("second Despawn should report false")
	}
	if _, ok := w.Get(a); ok {
		t.Error("despawned entity still reachable")
	}

	// Spawn order is kept for the survivors.
	var order []EntityID
	w.Each(func(e *Entity) { order = append(order, e.ID) })
	if len(order) != 2 || order[0] != b || order[1] != c {
		t.Errorf("order = %v, expected [%d %d]", order, b, c)
	}

	// IDs are not reused.
	if d := w.Spawn(Entity{Kind: KindText}); d == a {
		t.Error("despawned ID was reused")
	}
}

func TestWorldByKindOrder(t *testing.T) {
	w := NewWorld()
	ids := []EntityID{
		w.Spawn(Entity{Kind: KindBrick}),
		w.Spawn(Entity{Kind: KindWall}),
		w.Spawn(Entity{Kind: KindBrick}),
	}

	bricks := w.ByKind(KindBrick)
	if len(bricks) != 2 || bricks[0].ID != ids[0] || bricks[1].ID != ids[2] {
		t.Errorf("ByKind(brick) returned wrong entities")
	}
	if len(w.ByKind(KindPaddle)) != 0 {
		t.Error("ByKind(paddle) should be empty")
	}
}

func TestWorldSingle(t *testing.T) {
	w := NewWorld()
	id := w.Spawn(Entity{Kind: KindBall})

	if got := w.Single(KindBall); got.ID != id {
		t.Errorf("Single(ball).ID = %d, expected %d", got.ID, id)
	}

	assertPanics := func(name string) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: Single should panic", name)
			}
		}()
		w.Single(KindBall)
	}

	w.Spawn(Entity{Kind: KindBall})
	assertPanics("two balls")

	for _, e := range w.ByKind(KindBall) {
		w.Despawn(e.ID)
	}
	assertPanics("no ball")
}

func TestOwnedDespawnAll(t *testing.T) {
	w := NewWorld()
	var mine, other Owned

	mine.Spawn(w, Entity{Kind: KindText})
	gone := mine.Spawn(w, Entity{Kind: KindBrick})
	other.Spawn(w, Entity{Kind: KindText})

	// Already despawned entries are skipped.
	w.Despawn(gone)

	mine.DespawnAll(w)
	if len(mine) != 0 {
		t.Errorf("list not cleared: %v", mine)
	}
	if w.Len() != 1 {
		t.Errorf("Len = %d, expected only the other screen's entity", w.Len())
	}
	if _, ok := w.Get(other[0]); !ok {
		t.Error("entity owned by another list was removed")
	}
}
