package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/physics"
)

// Controller turns per-tick input into steering intents for the ship body.
type Controller struct {
	backend  Backend
	body     physics.BodyRef
	start    core.Pose
	turnRate float64 // rad/s
	thrust   float64
}

// NewController creates the ship body at its start pose.
func NewController(backend Backend, cfg config.PlayerConfig) *Controller {
	start := core.Pose{X: cfg.StartX, Y: cfg.StartY}
	body := backend.CreateBody(physics.BodySpec{
		Group:    physics.GroupPlayer,
		Pose:     start,
		Radius:   cfg.Radius,
		Drag:     cfg.Drag,
		MaxSpeed: cfg.MaxSpeed,
		Bounds:   physics.BoundsCollide,
	})
	return &Controller{
		backend:  backend,
		body:     body,
		start:    start,
		turnRate: core.DegToRad(cfg.TurnRateDeg),
		thrust:   cfg.Thrust,
	}
}

// Body returns the ship's backend body.
func (c *Controller) Body() physics.BodyRef {
	return c.body
}

// Pose returns the ship's current pose.
func (c *Controller) Pose() core.Pose {
	p, _ := c.backend.Pose(c.body)
	return p
}

// Update applies turn and thrust for this tick. Left wins over right;
// without thrust the acceleration is zeroed so drag takes over.
func (c *Controller) Update(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft):
		c.backend.SetAngularVelocity(c.body, -c.turnRate)
	case in.Has(core.ActionRight):
		c.backend.SetAngularVelocity(c.body, c.turnRate)
	default:
		c.backend.SetAngularVelocity(c.body, 0)
	}

	if in.Has(core.ActionThrust) {
		c.backend.SetAcceleration(c.body, core.VelocityFromRotation(c.Pose().Angle, c.thrust))
	} else {
		c.backend.SetAcceleration(c.body, core.Vec2{})
	}
}

// Respawn puts the ship back at its start pose at rest.
func (c *Controller) Respawn() {
	c.backend.SetPose(c.body, c.start)
	c.backend.SetVelocity(c.body, core.Vec2{})
	c.backend.SetAcceleration(c.body, core.Vec2{})
	c.backend.SetAngularVelocity(c.body, 0)
}
