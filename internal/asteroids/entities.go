package asteroids

import (
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/physics"
)

// PowerUpKind is the effect a power-up grants on pickup.
type PowerUpKind int

const (
	PowerUpMultiShot PowerUpKind = iota // Three-way fire for a while
	PowerUpNuke                         // One screen clear, held until used
	powerUpKinds
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpMultiShot:
		return "Multi-Shot"
	case PowerUpNuke:
		return "Nuke"
	default:
		return "?"
	}
}

// Glyph returns the display character for a power-up kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpMultiShot:
		return 'M'
	case PowerUpNuke:
		return 'N'
	default:
		return '?'
	}
}

// Color returns the display color for a power-up kind.
func (k PowerUpKind) Color() core.Color {
	if k == PowerUpMultiShot {
		return core.ColorGreen
	}
	return core.ColorRed
}

// Bullet is a live projectile.
type Bullet struct {
	Body      physics.BodyRef
	SpawnedAt time.Duration
}

// Asteroid is a live rock. Shape is in body-local coordinates.
type Asteroid struct {
	Body   physics.BodyRef
	Shape  core.Polygon
	Radius float64 // Collision radius
}

// PowerUp is a collectible drifting pickup.
type PowerUp struct {
	Body      physics.BodyRef
	Kind      PowerUpKind
	SpawnedAt time.Duration
}
