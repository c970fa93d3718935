package asteroids

import (
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/physics"
)

// Backend is the simulation the game drives. It integrates motion, detects
// overlaps and handles world bounds; gameplay code only holds BodyRefs.
// Commands on refs that no longer exist must be ignored.
type Backend interface {
	CreateBody(spec physics.BodySpec) physics.BodyRef
	DestroyBody(ref physics.BodyRef)

	SetVelocity(ref physics.BodyRef, v core.Vec2)
	SetAngularVelocity(ref physics.BodyRef, radPerSec float64)
	SetAcceleration(ref physics.BodyRef, a core.Vec2)
	SetPose(ref physics.BodyRef, p core.Pose)

	Pose(ref physics.BodyRef) (core.Pose, bool)
	Velocity(ref physics.BodyRef) (core.Vec2, bool)

	// QueryOverlaps reports every touching pair between two groups, A from groupA.
	QueryOverlaps(groupA, groupB physics.Group) []physics.Overlap
	WrapAroundBounds(ref physics.BodyRef, margin float64)

	Step(dt time.Duration)
}

// BackendFactory builds a fresh backend for a world of the given size.
type BackendFactory func(width, height float64) Backend

// NewPhysicsBackend is the default factory.
func NewPhysicsBackend(width, height float64) Backend {
	return physics.NewWorld(width, height)
}
