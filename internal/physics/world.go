package physics

import (
	"math"
	"slices"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// World owns all bodies and advances them in fixed steps.
type World struct {
	width, height float64
	bodies        []body
	free          []uint32
	grid          spatialGrid
	scratch       []uint32
	stamp         []uint32
	queryID       uint32
}

// NewWorld creates an empty world of the given size.
func NewWorld(width, height float64) *World {
	return &World{
		width:  width,
		height: height,
		grid:   newSpatialGrid(width, height),
	}
}

// Size returns the world dimensions.
func (w *World) Size() (float64, float64) {
	return w.width, w.height
}

// CreateBody adds a body and returns its ref.
func (w *World) CreateBody(spec BodySpec) BodyRef {
	var slot uint32
	if n := len(w.free); n > 0 {
		slot = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		w.bodies = append(w.bodies, body{})
		w.stamp = append(w.stamp, 0)
		slot = uint32(len(w.bodies) - 1)
	}

	b := &w.bodies[slot]
	b.gen++
	b.alive = true
	b.spec = spec
	b.pose = spec.Pose
	b.vel = spec.Velocity
	b.acc = core.Vec2{}
	b.angVel = 0

	return BodyRef{slot: slot, gen: b.gen}
}

// get returns the live body for a ref, or nil when the ref is stale.
func (w *World) get(ref BodyRef) *body {
	if !ref.Valid() || int(ref.slot) >= len(w.bodies) {
		return nil
	}
	b := &w.bodies[ref.slot]
	if !b.alive || b.gen != ref.gen {
		return nil
	}
	return b
}

// Alive reports whether ref still names a body.
func (w *World) Alive(ref BodyRef) bool {
	return w.get(ref) != nil
}

// DestroyBody removes a body. Destroying a stale ref does nothing.
func (w *World) DestroyBody(ref BodyRef) {
	b := w.get(ref)
	if b == nil {
		return
	}
	b.alive = false
	w.free = append(w.free, ref.slot)
}

// Count returns the number of live bodies in a group.
func (w *World) Count(g Group) int {
	n := 0
	for i := range w.bodies {
		if w.bodies[i].alive && w.bodies[i].spec.Group == g {
			n++
		}
	}
	return n
}

// SetVelocity sets linear velocity.
func (w *World) SetVelocity(ref BodyRef, v core.Vec2) {
	if b := w.get(ref); b != nil {
		b.vel = v
	}
}

// SetAngularVelocity sets rotation speed in radians per second.
func (w *World) SetAngularVelocity(ref BodyRef, radPerSec float64) {
	if b := w.get(ref); b != nil {
		b.angVel = radPerSec
	}
}

// SetAcceleration sets linear acceleration.
func (w *World) SetAcceleration(ref BodyRef, a core.Vec2) {
	if b := w.get(ref); b != nil {
		b.acc = a
	}
}

// SetPose teleports a body.
func (w *World) SetPose(ref BodyRef, p core.Pose) {
	if b := w.get(ref); b != nil {
		b.pose = p
	}
}

// Pose returns the body pose and whether the ref is live.
func (w *World) Pose(ref BodyRef) (core.Pose, bool) {
	if b := w.get(ref); b != nil {
		return b.pose, true
	}
	return core.Pose{}, false
}

// Velocity returns the body velocity and whether the ref is live.
func (w *World) Velocity(ref BodyRef) (core.Vec2, bool) {
	if b := w.get(ref); b != nil {
		return b.vel, true
	}
	return core.Vec2{}, false
}

// Step advances every live body by dt.
func (w *World) Step(dt time.Duration) {
	sec := dt.Seconds()
	if sec <= 0 {
		return
	}
	for i := range w.bodies {
		b := &w.bodies[i]
		if !b.alive {
			continue
		}
		w.integrate(b, sec)
	}
}

func (w *World) integrate(b *body, sec float64) {
	b.vel.X = applyAxis(b.vel.X, b.acc.X, b.spec.Drag, sec)
	b.vel.Y = applyAxis(b.vel.Y, b.acc.Y, b.spec.Drag, sec)

	if limit := b.spec.MaxSpeed; limit > 0 {
		if speed := b.vel.Len(); speed > limit {
			b.vel = b.vel.Scale(limit / speed)
		}
	}

	b.pose.Angle += b.angVel * sec
	b.pose.X += b.vel.X * sec
	b.pose.Y += b.vel.Y * sec

	switch b.spec.Bounds {
	case BoundsCollide:
		w.collideBounds(b, false)
	case BoundsBounce:
		w.collideBounds(b, true)
	}
}

// applyAxis integrates acceleration on one axis, or drags it toward zero when idle.
func applyAxis(v, a, drag, sec float64) float64 {
	if a != 0 {
		return v + a*sec
	}
	if drag <= 0 || v == 0 {
		return v
	}
	dv := drag * sec
	if math.Abs(v) <= dv {
		return 0
	}
	if v > 0 {
		return v - dv
	}
	return v + dv
}

// collideBounds keeps a body inside the world, reflecting or stopping velocity.
func (w *World) collideBounds(b *body, bounce bool) {
	r := b.spec.Radius
	hit := func(v float64) float64 {
		if bounce {
			return -v
		}
		return 0
	}

	if b.pose.X < r {
		b.pose.X = r
		if b.vel.X < 0 {
			b.vel.X = hit(b.vel.X)
		}
	} else if b.pose.X > w.width-r {
		b.pose.X = w.width - r
		if b.vel.X > 0 {
			b.vel.X = hit(b.vel.X)
		}
	}

	if b.pose.Y < r {
		b.pose.Y = r
		if b.vel.Y < 0 {
			b.vel.Y = hit(b.vel.Y)
		}
	} else if b.pose.Y > w.height-r {
		b.pose.Y = w.height - r
		if b.vel.Y > 0 {
			b.vel.Y = hit(b.vel.Y)
		}
	}
}

// WrapAroundBounds moves a body that left the field by more than margin
// to the opposite side, just outside the margin.
func (w *World) WrapAroundBounds(ref BodyRef, margin float64) {
	b := w.get(ref)
	if b == nil {
		return
	}
	if b.pose.X < -margin {
		b.pose.X = w.width + margin
	} else if b.pose.X > w.width+margin {
		b.pose.X = -margin
	}
	if b.pose.Y < -margin {
		b.pose.Y = w.height + margin
	} else if b.pose.Y > w.height+margin {
		b.pose.Y = -margin
	}
}

// QueryOverlaps returns every touching pair between groups a and b,
// ordered by the a body then the b body creation slot.
func (w *World) QueryOverlaps(a, b Group) []Overlap {
	w.grid.clear()
	for i := range w.bodies {
		bd := &w.bodies[i]
		if bd.alive && bd.spec.Group == b {
			w.grid.insertCircle(bd.pose.X, bd.pose.Y, bd.spec.Radius, uint32(i))
		}
	}

	var out []Overlap
	for i := range w.bodies {
		ba := &w.bodies[i]
		if !ba.alive || ba.spec.Group != a {
			continue
		}

		w.queryID++
		w.scratch = w.grid.queryBuf(ba.pose.X, ba.pose.Y, ba.spec.Radius, w.scratch[:0])
		var candidates []uint32
		for _, slot := range w.scratch {
			if w.stamp[slot] == w.queryID || int(slot) == i {
				continue
			}
			w.stamp[slot] = w.queryID
			candidates = append(candidates, slot)
		}
		slices.Sort(candidates)

		for _, slot := range candidates {
			bb := &w.bodies[slot]
			if circlesOverlap(ba.pose.X, ba.pose.Y, ba.spec.Radius, bb.pose.X, bb.pose.Y, bb.spec.Radius) {
				out = append(out, Overlap{
					A: BodyRef{slot: uint32(i), gen: ba.gen},
					B: BodyRef{slot: slot, gen: bb.gen},
				})
			}
		}
	}
	return out
}
