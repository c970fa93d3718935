// Package physics is a small arcade-style rigid body world: circles with
// velocity, acceleration, linear drag, a speed cap, and world-bounds handling.
// Bodies are addressed through generation-checked refs so a stale ref is
// harmless after its body is destroyed.
package physics

import "github.com/vovakirdan/tui-asteroids/internal/core"

// BodyRef is an opaque handle to a body. The zero value refers to nothing.
type BodyRef struct {
	slot uint32
	gen  uint32
}

// Valid reports whether the ref was ever issued by a World.
func (r BodyRef) Valid() bool {
	return r.gen != 0
}

// Group tags a body for overlap queries.
type Group uint8

const (
	GroupPlayer Group = iota
	GroupBullet
	GroupAsteroid
	GroupPowerUp
)

// String returns the group name.
func (g Group) String() string {
	switch g {
	case GroupPlayer:
		return "player"
	case GroupBullet:
		return "bullet"
	case GroupAsteroid:
		return "asteroid"
	case GroupPowerUp:
		return "powerup"
	default:
		return "unknown"
	}
}

// BoundsMode selects how a body reacts to the world edges.
type BoundsMode uint8

const (
	BoundsNone    BoundsMode = iota // Leaves the field freely
	BoundsCollide                   // Stops at the edge
	BoundsBounce                    // Reflects off the edge
)

// BodySpec describes a body to create.
type BodySpec struct {
	Group    Group
	Pose     core.Pose
	Velocity core.Vec2
	Radius   float64
	Drag     float64 // Linear deceleration (units/s^2) on axes without acceleration
	MaxSpeed float64 // 0 means uncapped
	Bounds   BoundsMode
}

// Overlap is a pair of touching bodies, A from the first queried group.
type Overlap struct {
	A, B BodyRef
}

type body struct {
	gen    uint32
	alive  bool
	spec   BodySpec
	pose   core.Pose
	vel    core.Vec2
	acc    core.Vec2
	angVel float64
}
