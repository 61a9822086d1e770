package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// EntityID identifies an entity in a World. Zero is never issued.
type EntityID uint32

// Kind classifies entities.
type Kind int

const (
	KindBall Kind = iota
	KindPaddle
	KindWall
	KindBrick
	KindText
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindBall:
		return "ball"
	case KindPaddle:
		return "paddle"
	case KindWall:
		return "wall"
	case KindBrick:
		return "brick"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// TextRole says what a text node displays.
type TextRole int

const (
	RoleTitle TextRole = iota
	RoleMenuItem
	RoleVolume
	RoleHint
	RoleScore
	RoleLives
	RoleCountdown
	RoleBanner
)

// Anchor is where a text node is placed on the screen.
type Anchor int

const (
	AnchorCenter   Anchor = iota // centered, Line rows from the middle
	AnchorTopLeft                // HUD, left corner
	AnchorTopRight               // HUD, right corner
)

// TextNode is the UI part of a text entity.
type TextNode struct {
	Role       TextRole
	Label      string // static prefix, e.g. "Score: "
	Content    string
	Anchor     Anchor
	Line       int
	Color      core.Color // label color, and content color unless ValueColor is set
	ValueColor core.Color
	Selected   bool
}

// ContentColor returns the color used for Content.
func (t TextNode) ContentColor() core.Color {
	if t.ValueColor != core.ColorDefault {
		return t.ValueColor
	}
	return t.Color
}

// String returns the full text as displayed.
func (t TextNode) String() string {
	return t.Label + t.Content
}

// Entity is a single object in the World.
// Which fields matter depends on Kind.
type Entity struct {
	ID   EntityID
	Kind Kind

	Pos    core.Vec2
	Half   core.Vec2 // half extents for boxes
	Radius float64   // ball only

	Vel         core.Vec2
	HasVelocity bool

	Collider bool
	Deadly   bool
	Wall     WallSide

	Text TextNode
}

// Box returns the entity's collision box.
func (e *Entity) Box() core.Aabb {
	return core.NewAabb(e.Pos, e.Half)
}

// Circle returns the entity's bounding circle.
func (e *Entity) Circle() core.Circle {
	return core.NewCircle(e.Pos, e.Radius)
}

// World stores entities and keeps them in spawn order.
type World struct {
	next     EntityID
	entities map[EntityID]*Entity
	order    []EntityID
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{entities: make(map[EntityID]*Entity)}
}

// Spawn adds e to the world and returns its new ID.
func (w *World) Spawn(e Entity) EntityID {
	w.next++
	e.ID = w.next
	w.entities[e.ID] = &e
	w.order = append(w.order, e.ID)
	return e.ID
}

// Despawn removes an entity. It reports whether the entity existed.
func (w *World) Despawn(id EntityID) bool {
	if _, ok := w.entities[id]; !ok {
		return false
	}
	delete(w.entities, id)
	for i, other := range w.order {
		if other == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the entity with the given ID.
func (w *World) Get(id EntityID) (*Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.order)
}

// Count returns the number of live entities of a kind.
func (w *World) Count(kind Kind) int {
	n := 0
	for _, id := range w.order {
		if w.entities[id].Kind == kind {
			n++
		}
	}
	return n
}

// Each calls fn for every entity in spawn order.
// fn must not spawn or despawn.
func (w *World) Each(fn func(e *Entity)) {
	for _, id := range w.order {
		fn(w.entities[id])
	}
}

// ByKind returns the entities of a kind in spawn order.
func (w *World) ByKind(kind Kind) []*Entity {
	var out []*Entity
	for _, id := range w.order {
		if e := w.entities[id]; e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Single returns the only entity of a kind and panics unless exactly one exists.
func (w *World) Single(kind Kind) *Entity {
	var found *Entity
	n := 0
	for _, id := range w.order {
		if e := w.entities[id]; e.Kind == kind {
			found = e
			n++
		}
	}
	if n != 1 {
		panic(fmt.Sprintf("breakout: expected exactly one %s, found %d", kind, n))
	}
	return found
}

// Owned is the list of entities a screen created. Leaving the screen
// despawns exactly this list.
type Owned []EntityID

// Spawn spawns e into w and records its ID.
func (o *Owned) Spawn(w *World, e Entity) EntityID {
	id := w.Spawn(e)
	*o = append(*o, id)
	return id
}

// DespawnAll removes every recorded entity that is still alive and clears the list.
func (o *Owned) DespawnAll(w *World) {
	for _, id := range *o {
		w.Despawn(id)
	}
	*o = nil
}
