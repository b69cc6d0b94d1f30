// Package entity holds the catalog of world entities (obstacles,
// collectibles, scenery) and the per-segment spawner that populates new
// track segments. Entities live in a slot-map arena keyed by stable IDs so
// removal during iteration is explicit and safe.
package entity

import "github.com/Yanthir84/PawRun/internal/core"

// Kind classifies an entity. The classification is immutable after spawn and
// is consumed by the collision evaluator to pick the avoidance rule.
type Kind int

const (
	KindCollectible  Kind = iota // Coin: intersect to collect
	KindLowObstacle              // Ground-level: cleared by jumping
	KindHighObstacle             // Hanging: passed by sliding
	KindScenery                  // Decorative, never collides
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindCollectible:
		return "collectible"
	case KindLowObstacle:
		return "low-obstacle"
	case KindHighObstacle:
		return "high-obstacle"
	case KindScenery:
		return "scenery"
	default:
		return "unknown"
	}
}

// Lane indices for the three-lane corridor.
const (
	LaneLeft   = 0
	LaneCenter = 1
	LaneRight  = 2
	LaneCount  = 3
)

// LaneOffset maps a lane index to its world lateral offset: (lane-1)*width.
func LaneOffset(lane int, width float64) float64 {
	return (float64(lane) - 1) * width
}

// Entity is a spawned world object. Position and extents are fixed at spawn
// time; only membership in the arena changes afterwards.
type Entity struct {
	ID    ID
	Kind  Kind
	Lane  int     // Lane index for collidables; -1 for flanking scenery
	X     float64 // World lateral center
	Depth float64 // World forward center

	// Hitbox extents. BaseY is the height of the underside above the
	// ground, nonzero for hanging obstacles.
	W, H, D float64
	BaseY   float64
}

// Box returns the entity's world-space collision volume.
func (e Entity) Box() core.Box {
	return core.NewBox(e.X, e.BaseY, e.Depth, e.W, e.H, e.D)
}

// Collidable reports whether the entity participates in collision tests.
func (e Entity) Collidable() bool {
	return e.Kind != KindScenery
}
