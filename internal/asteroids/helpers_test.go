package asteroids

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/physics"
)

// scriptedBackend is a physics world whose overlap results can be pinned
// and whose steering calls are recorded.
type scriptedBackend struct {
	*physics.World
	overlaps map[[2]physics.Group][]physics.Overlap
	angVel   float64
	accel    core.Vec2
}

func newScriptedBackend() *scriptedBackend {
	return &scriptedBackend{
		World:    physics.NewWorld(800, 600),
		overlaps: make(map[[2]physics.Group][]physics.Overlap),
	}
}

func (b *scriptedBackend) QueryOverlaps(a, g physics.Group) []physics.Overlap {
	if ov, ok := b.overlaps[[2]physics.Group{a, g}]; ok {
		return ov
	}
	return b.World.QueryOverlaps(a, g)
}

func (b *scriptedBackend) SetAngularVelocity(ref physics.BodyRef, w float64) {
	b.angVel = w
	b.World.SetAngularVelocity(ref, w)
}

func (b *scriptedBackend) SetAcceleration(ref physics.BodyRef, a core.Vec2) {
	b.accel = a
	b.World.SetAcceleration(ref, a)
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

// newTestGame returns a reset game using the built-in defaults.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultAsteroidsConfig())
	g.Reset(testRuntime())
	return g
}

// placeLoneAsteroid replaces the field with one motionless asteroid at (x, y).
func placeLoneAsteroid(g *Game, x, y float64) Asteroid {
	g.pool.ClearAsteroids()
	g.pool.SpawnAsteroids(1, 0)
	a := g.pool.Asteroids()[0]
	g.backend.SetPose(a.Body, core.Pose{X: x, Y: y})
	return a
}

func stepN(g *Game, n int, in core.InputFrame) {
	for range n {
		g.Step(in)
	}
}

func msec(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
