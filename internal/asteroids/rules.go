package asteroids

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// State is the per-session gameplay state. Deadlines are absolute times on
// the session clock; a zero deadline means "not armed".
type State struct {
	Score             int
	Lives             int
	Difficulty        float64 // Speed multiplier for newly spawned asteroids
	MultiShotActive   bool
	MultiShotUntil    time.Duration
	HasNuke           bool
	LastLifeMilestone int // Score at the last bonus life
	GameOver          bool
	Kills             int
	NukesUsed         int

	DistressedUntil time.Duration
	RespawnPending  bool
	RespawnAt       time.Duration
	BannerUntil     time.Duration // "+1 Life!" notice
}

// Distressed reports whether the ship is in its post-hit window at now.
func (s *State) Distressed(now time.Duration) bool {
	return now < s.DistressedUntil
}

// BannerVisible reports whether the bonus-life notice is showing at now.
func (s *State) BannerVisible(now time.Duration) bool {
	return now < s.BannerUntil
}

// PowerStatus returns the HUD text for the held power-up.
func (s *State) PowerStatus() string {
	switch {
	case s.HasNuke:
		return "Nuke Ready (Press N)"
	case s.MultiShotActive:
		return "Multi-Shot"
	default:
		return "None"
	}
}

// Rules applies scoring, lives, power-ups and difficulty to a State.
type Rules struct {
	cfg   config.AsteroidsConfig
	curve *config.DifficultyCurve
	state *State
	pool  *Pool
	rng   core.RNG
	log   *log.Logger
}

// NewRules creates a rule engine bound to state and pool.
func NewRules(cfg config.AsteroidsConfig, state *State, pool *Pool, rng core.RNG, logger *log.Logger) *Rules {
	return &Rules{
		cfg:   cfg,
		curve: config.NewDifficultyCurve(cfg.Difficulty, cfg.Asteroids),
		state: state,
		pool:  pool,
		rng:   rng,
		log:   logger,
	}
}

// Reset puts the state back to a fresh session.
func (r *Rules) Reset() {
	*r.state = State{
		Lives:      r.cfg.Rules.StartLives,
		Difficulty: 1.0,
	}
}

// AddScore adds points and re-derives difficulty and bonus lives.
func (r *Rules) AddScore(points int, now time.Duration) {
	if points <= 0 {
		return
	}
	r.state.Score += points
	r.recomputeDifficulty()
	r.checkLifeMilestone(now)
}

func (r *Rules) recomputeDifficulty() {
	r.state.Difficulty = r.curve.Multiplier(r.state.Score)
}

// checkLifeMilestone grants one life when the score has entered a new
// milestone band since the last bonus, however far it jumped.
func (r *Rules) checkLifeMilestone(now time.Duration) {
	step := r.cfg.Rules.LifeMilestone
	if r.state.Score/step <= r.state.LastLifeMilestone/step {
		return
	}
	r.state.Lives++
	r.state.LastLifeMilestone = r.state.Score
	r.state.BannerUntil = now + ms(r.cfg.Rules.BonusBannerMS)
	r.log.Debug("bonus life", "score", r.state.Score, "lives", r.state.Lives)
}

// Apply executes one resolved collision. Events after game over are dropped.
func (r *Rules) Apply(ev Event, now time.Duration) {
	if r.state.GameOver {
		return
	}
	switch ev.Kind {
	case EventBulletHit:
		r.bulletHit(ev, now)
	case EventPlayerHit:
		r.playerHit(now)
	case EventPickup:
		r.pickup(ev, now)
	}
}

func (r *Rules) bulletHit(ev Event, now time.Duration) {
	pose, _ := r.pool.backend.Pose(ev.B)
	r.pool.Destroy(ev.A)
	r.pool.Destroy(ev.B)
	r.state.Kills++

	r.AddScore(r.cfg.Rules.KillPoints, now)
	r.pool.SpawnAsteroids(1, r.state.Difficulty)
	if core.Chance(r.rng, r.cfg.PowerUps.DropChance) {
		r.pool.SpawnPowerUp(pose.X, pose.Y)
	}
	r.log.Debug("asteroid destroyed", "score", r.state.Score, "difficulty", r.state.Difficulty)
}

func (r *Rules) playerHit(now time.Duration) {
	if r.state.Distressed(now) || r.state.Lives <= 0 {
		return
	}
	r.state.Lives--
	r.state.DistressedUntil = now + ms(r.cfg.Rules.DistressMS)
	r.log.Debug("player hit", "lives", r.state.Lives)

	if r.state.Lives == 0 {
		r.state.GameOver = true
		r.state.RespawnPending = false
		r.log.Debug("game over", "score", r.state.Score)
		return
	}
	r.state.RespawnPending = true
	r.state.RespawnAt = now + ms(r.cfg.Rules.RespawnDelayMS)
}

func (r *Rules) pickup(ev Event, now time.Duration) {
	pu, ok := r.pool.PowerUp(ev.B)
	if !ok {
		return
	}
	r.pool.Destroy(ev.B)

	switch pu.Kind {
	case PowerUpMultiShot:
		r.state.MultiShotActive = true
		r.state.MultiShotUntil = now + ms(r.cfg.PowerUps.MultiShotMS)
	case PowerUpNuke:
		r.state.HasNuke = true
	}
	r.log.Debug("power-up collected", "kind", pu.Kind)
}

// Nuke detonates a held nuke: every asteroid is cleared and a smaller,
// score-scaled wave replaces them. Returns false when no nuke is held.
func (r *Rules) Nuke(now time.Duration) bool {
	if r.state.GameOver || !r.state.HasNuke {
		return false
	}
	cleared := r.pool.ClearAsteroids()
	r.state.HasNuke = false
	r.state.NukesUsed++

	r.state.Score += r.cfg.Rules.NukePoints
	r.recomputeDifficulty()
	count := r.curve.NukeSpawnCount(r.state.Score)
	r.pool.SpawnAsteroids(count, r.state.Difficulty)
	r.checkLifeMilestone(now)

	r.log.Debug("nuke", "cleared", cleared, "spawned", count, "score", r.state.Score)
	return true
}

// Tick runs the deadline checks. Returns true when the ship should respawn now.
func (r *Rules) Tick(now time.Duration) bool {
	if r.state.MultiShotActive && now > r.state.MultiShotUntil {
		r.state.MultiShotActive = false
		r.log.Debug("multi-shot expired")
	}

	if r.state.RespawnPending && now >= r.state.RespawnAt {
		r.state.RespawnPending = false
		return r.state.Lives > 0
	}
	return false
}
