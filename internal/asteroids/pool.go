package asteroids

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/physics"
)

// Pool owns every live bullet, asteroid and power-up and keeps the backend
// bodies in step with them.
type Pool struct {
	backend Backend
	rng     core.RNG
	cfg     config.AsteroidsConfig
	now     time.Duration

	bullets   []Bullet
	asteroids []Asteroid
	powerUps  []PowerUp
}

// NewPool creates an empty pool.
func NewPool(backend Backend, rng core.RNG, cfg config.AsteroidsConfig) *Pool {
	return &Pool{
		backend:   backend,
		rng:       rng,
		cfg:       cfg,
		bullets:   make([]Bullet, 0, cfg.Bullets.Capacity),
		asteroids: make([]Asteroid, 0, 16),
	}
}

// SetTime sets the session clock used to stamp new entities.
func (p *Pool) SetTime(now time.Duration) {
	p.now = now
}

// Bullets returns live bullets. The slice must not be modified.
func (p *Pool) Bullets() []Bullet { return p.bullets }

// Asteroids returns live asteroids. The slice must not be modified.
func (p *Pool) Asteroids() []Asteroid { return p.asteroids }

// PowerUps returns live power-ups. The slice must not be modified.
func (p *Pool) PowerUps() []PowerUp { return p.powerUps }

// SpawnAsteroids creates count asteroids with speed scaled by difficulty.
func (p *Pool) SpawnAsteroids(count int, difficulty float64) {
	for range count {
		p.spawnAsteroid(difficulty)
	}
}

func (p *Pool) spawnAsteroid(difficulty float64) {
	ac := p.cfg.Asteroids
	w, h := p.cfg.World.Width, p.cfg.World.Height

	x := float64(core.Between(p.rng, 0, int(w)))
	y := float64(core.Between(p.rng, 0, int(h)))

	// Keep clear of the ship's start point. The shifted sample is not rechecked.
	sx, sy := p.cfg.Player.StartX, p.cfg.Player.StartY
	if math.Abs(x-sx) < ac.ExclusionHalf && math.Abs(y-sy) < ac.ExclusionHalf {
		x += ac.ExclusionOffset
		y += ac.ExclusionOffset
	}

	shape := core.RandomPolygon(p.rng, core.PolygonSpec{
		MinSides:  ac.MinSides,
		MaxSides:  ac.MaxSides,
		MinRadius: ac.MinRadius,
		MaxRadius: ac.MaxRadius,
		JitterMin: ac.JitterMin,
		JitterMax: ac.JitterMax,
	})
	radius := shape.MeanRadius() * ac.BodyScale

	speed := ac.BaseSpeed * difficulty
	vel := core.Vec2{
		X: core.FloatBetween(p.rng, -speed, speed),
		Y: core.FloatBetween(p.rng, -speed, speed),
	}

	ref := p.backend.CreateBody(physics.BodySpec{
		Group:    physics.GroupAsteroid,
		Pose:     core.Pose{X: x, Y: y},
		Velocity: vel,
		Radius:   radius,
		Bounds:   physics.BoundsBounce,
	})
	p.asteroids = append(p.asteroids, Asteroid{Body: ref, Shape: shape, Radius: radius})
}

// SpawnBullet fires one bullet from the ship nose along origin heading plus
// angleOffset. Returns false when the pool is full.
func (p *Pool) SpawnBullet(origin core.Pose, angleOffset float64) bool {
	bc := p.cfg.Bullets
	if len(p.bullets) >= bc.Capacity {
		return false
	}

	angle := origin.Angle + angleOffset
	nose := core.LocalToWorld(
		core.Pose{X: origin.X, Y: origin.Y, Angle: angle},
		core.Vec2{X: bc.NoseOffsetX, Y: bc.NoseOffsetY},
	)

	ref := p.backend.CreateBody(physics.BodySpec{
		Group:    physics.GroupBullet,
		Pose:     core.Pose{X: nose.X, Y: nose.Y, Angle: angle},
		Velocity: core.VelocityFromRotation(angle, bc.Speed),
		Radius:   bc.Radius,
		Bounds:   physics.BoundsNone,
	})
	p.bullets = append(p.bullets, Bullet{Body: ref, SpawnedAt: p.now})
	return true
}

// Fire spawns a single shot, or a three-way spread when multiShot is set.
// Returns the number of bullets actually created.
func (p *Pool) Fire(origin core.Pose, multiShot bool) int {
	if !multiShot {
		if p.SpawnBullet(origin, 0) {
			return 1
		}
		return 0
	}

	spread := p.cfg.Bullets.Spread
	n := 0
	for _, offset := range []float64{-spread, 0, spread} {
		if p.SpawnBullet(origin, offset) {
			n++
		}
	}
	return n
}

// SpawnPowerUp drops a random power-up at (x, y).
func (p *Pool) SpawnPowerUp(x, y float64) {
	pc := p.cfg.PowerUps
	kind := PowerUpKind(p.rng.Intn(int(powerUpKinds)))
	vel := core.Vec2{
		X: core.FloatBetween(p.rng, -pc.MaxSpeed, pc.MaxSpeed),
		Y: core.FloatBetween(p.rng, -pc.MaxSpeed, pc.MaxSpeed),
	}

	ref := p.backend.CreateBody(physics.BodySpec{
		Group:    physics.GroupPowerUp,
		Pose:     core.Pose{X: x, Y: y},
		Velocity: vel,
		Radius:   pc.Radius,
		Bounds:   physics.BoundsBounce,
	})
	p.powerUps = append(p.powerUps, PowerUp{Body: ref, Kind: kind, SpawnedAt: p.now})
}

// Tick removes bullets and power-ups whose TTL has run out at now.
// Returns the number of entities expired.
func (p *Pool) Tick(now time.Duration) int {
	p.now = now
	bulletTTL := ms(p.cfg.Bullets.TTLMS)
	powerTTL := ms(p.cfg.PowerUps.TTLMS)
	expired := 0

	kept := p.bullets[:0]
	for _, b := range p.bullets {
		if now-b.SpawnedAt >= bulletTTL {
			p.backend.DestroyBody(b.Body)
			expired++
			continue
		}
		kept = append(kept, b)
	}
	p.bullets = kept

	keptPU := p.powerUps[:0]
	for _, pu := range p.powerUps {
		if now-pu.SpawnedAt >= powerTTL {
			p.backend.DestroyBody(pu.Body)
			expired++
			continue
		}
		keptPU = append(keptPU, pu)
	}
	p.powerUps = keptPU

	return expired
}

// Wrap applies the bullet and asteroid wrap margins.
func (p *Pool) Wrap() {
	for _, b := range p.bullets {
		p.backend.WrapAroundBounds(b.Body, p.cfg.Bullets.WrapMargin)
	}
	for _, a := range p.asteroids {
		p.backend.WrapAroundBounds(a.Body, p.cfg.Asteroids.WrapMargin)
	}
}

// Asteroid looks up a live asteroid by body.
func (p *Pool) Asteroid(ref physics.BodyRef) (Asteroid, bool) {
	for _, a := range p.asteroids {
		if a.Body == ref {
			return a, true
		}
	}
	return Asteroid{}, false
}

// PowerUp looks up a live power-up by body.
func (p *Pool) PowerUp(ref physics.BodyRef) (PowerUp, bool) {
	for _, pu := range p.powerUps {
		if pu.Body == ref {
			return pu, true
		}
	}
	return PowerUp{}, false
}

// HasBullet reports whether ref is a live bullet.
func (p *Pool) HasBullet(ref physics.BodyRef) bool {
	for _, b := range p.bullets {
		if b.Body == ref {
			return true
		}
	}
	return false
}

// Destroy removes whichever entity owns ref. Unknown refs are a no-op.
func (p *Pool) Destroy(ref physics.BodyRef) bool {
	for i, b := range p.bullets {
		if b.Body == ref {
			p.bullets = append(p.bullets[:i], p.bullets[i+1:]...)
			p.backend.DestroyBody(ref)
			return true
		}
	}
	for i, a := range p.asteroids {
		if a.Body == ref {
			p.asteroids = append(p.asteroids[:i], p.asteroids[i+1:]...)
			p.backend.DestroyBody(ref)
			return true
		}
	}
	for i, pu := range p.powerUps {
		if pu.Body == ref {
			p.powerUps = append(p.powerUps[:i], p.powerUps[i+1:]...)
			p.backend.DestroyBody(ref)
			return true
		}
	}
	return false
}

// ClearAsteroids destroys every live asteroid.
func (p *Pool) ClearAsteroids() int {
	n := len(p.asteroids)
	for _, a := range p.asteroids {
		p.backend.DestroyBody(a.Body)
	}
	p.asteroids = p.asteroids[:0]
	return n
}

// Clear destroys every pooled entity.
func (p *Pool) Clear() {
	for _, b := range p.bullets {
		p.backend.DestroyBody(b.Body)
	}
	for _, pu := range p.powerUps {
		p.backend.DestroyBody(pu.Body)
	}
	p.bullets = p.bullets[:0]
	p.powerUps = p.powerUps[:0]
	p.ClearAsteroids()
}

// ms converts config milliseconds to a duration.
func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
