package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/physics"

// EventKind is a gameplay collision outcome.
type EventKind int

const (
	EventBulletHit EventKind = iota // Bullet (A) struck asteroid (B)
	EventPlayerHit                  // Ship (A) rammed asteroid (B)
	EventPickup                     // Ship (A) collected power-up (B)
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventBulletHit:
		return "bullet_hit"
	case EventPlayerHit:
		return "player_hit"
	case EventPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Event is one resolved overlap.
type Event struct {
	Kind EventKind
	A, B physics.BodyRef
}

// Resolver turns raw backend overlaps into gameplay events.
// Within one call every pair yields at most one event and no body takes
// part in more than one event.
type Resolver struct {
	backend Backend
	pool    *Pool
}

// NewResolver creates a resolver over the given backend and pool.
func NewResolver(backend Backend, pool *Pool) *Resolver {
	return &Resolver{backend: backend, pool: pool}
}

// Collect queries the three collision channels once. When shielded is set
// the ship cannot be hit, and at most one ship hit is reported per call.
func (r *Resolver) Collect(ship physics.BodyRef, shielded bool) []Event {
	consumed := make(map[physics.BodyRef]bool)
	seen := make(map[physics.Overlap]bool)
	var events []Event

	claim := func(ov physics.Overlap) bool {
		if seen[ov] || consumed[ov.A] || consumed[ov.B] {
			return false
		}
		seen[ov] = true
		return true
	}

	for _, ov := range r.backend.QueryOverlaps(physics.GroupBullet, physics.GroupAsteroid) {
		if !r.pool.HasBullet(ov.A) {
			continue
		}
		if _, ok := r.pool.Asteroid(ov.B); !ok {
			continue
		}
		if !claim(ov) {
			continue
		}
		consumed[ov.A] = true
		consumed[ov.B] = true
		events = append(events, Event{Kind: EventBulletHit, A: ov.A, B: ov.B})
	}

	if !shielded {
		for _, ov := range r.backend.QueryOverlaps(physics.GroupPlayer, physics.GroupAsteroid) {
			if ov.A != ship {
				continue
			}
			if _, ok := r.pool.Asteroid(ov.B); !ok || !claim(ov) {
				continue
			}
			events = append(events, Event{Kind: EventPlayerHit, A: ov.A, B: ov.B})
			break
		}
	}

	for _, ov := range r.backend.QueryOverlaps(physics.GroupPlayer, physics.GroupPowerUp) {
		if ov.A != ship {
			continue
		}
		if _, ok := r.pool.PowerUp(ov.B); !ok || !claim(ov) {
			continue
		}
		consumed[ov.B] = true
		events = append(events, Event{Kind: EventPickup, A: ov.A, B: ov.B})
	}

	return events
}
