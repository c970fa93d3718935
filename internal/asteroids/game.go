// Package asteroids implements the Asteroids game: a drifting ship, rocks
// that split the field, timed power-ups and a score-driven difficulty curve.
// Motion and overlap detection are delegated to a Backend.
package asteroids

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game is one Asteroids session.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.AsteroidsConfig
	fixedCfg   *config.AsteroidsConfig
	preset     config.DifficultyPreset // Overrides difficultyPreset when set
	newBackend BackendFactory
	logger     *log.Logger

	backend  Backend
	rng      core.RNG
	pool     *Pool
	ctrl     *Controller
	resolver *Resolver
	rules    *Rules
	state    State

	now        time.Duration // Session clock, frozen while paused or over
	startedAt  time.Duration
	dt         time.Duration
	tick       uint64
	nextFireAt time.Duration
	paused     bool
	pauseHeld  bool
}

// New creates a game that loads its config on Reset.
func New() *Game {
	return &Game{
		newBackend: NewPhysicsBackend,
		logger:     log.New(io.Discard),
	}
}

// NewWithConfig creates a game with a fixed config, bypassing file lookup.
func NewWithConfig(cfg config.AsteroidsConfig) *Game {
	g := New()
	g.fixedCfg = &cfg
	return g
}

// SetLogger routes gameplay debug events. Nil restores the silent default.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
	if g.rules != nil {
		g.rules.log = l
	}
}

// SetPreset selects a difficulty preset for this game only, taking effect on
// the next Reset. Unknown names fall back to the package-level preset.
func (g *Game) SetPreset(name string) {
	g.preset = config.ParsePreset(name)
}

// SetBackendFactory replaces the simulation used from the next Reset on.
func (g *Game) SetBackendFactory(f BackendFactory) {
	g.newBackend = f
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroids"
}

// Reset initializes a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime.Normalized()
	g.cfg = g.loadConfig()
	g.dt = time.Second / time.Duration(g.runtime.TickRate)

	g.rng = core.NewSimpleRNG(g.runtime.Seed)
	g.backend = g.newBackend(g.cfg.World.Width, g.cfg.World.Height)
	g.pool = NewPool(g.backend, g.rng, g.cfg)
	g.ctrl = NewController(g.backend, g.cfg.Player)
	g.resolver = NewResolver(g.backend, g.pool)
	g.rules = NewRules(g.cfg, &g.state, g.pool, g.rng, g.logger)

	g.now = 0
	g.tick = 0
	g.startSession()
}

func (g *Game) loadConfig() config.AsteroidsConfig {
	if g.fixedCfg != nil {
		return *g.fixedCfg
	}

	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultAsteroidsConfig()
	}
	preset := g.preset
	if preset == "" {
		preset = difficultyPreset
	}
	if preset != "" {
		config.ApplyAsteroidsPreset(&cfg, preset)
	}
	return cfg
}

// startSession clears the field and seeds the opening wave.
func (g *Game) startSession() {
	g.pool.Clear()
	g.rules.Reset()
	g.ctrl.Respawn()
	g.pool.SetTime(g.now)
	g.pool.SpawnAsteroids(g.cfg.Asteroids.InitialCount, g.state.Difficulty)
	g.nextFireAt = g.now
	g.startedAt = g.now
	g.paused = false
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.startSession()
		g.logger.Debug("restart")
		return g.result()
	}

	pause := in.Has(core.ActionPause)
	if pause && !g.pauseHeld && !g.state.GameOver {
		g.paused = !g.paused
	}
	g.pauseHeld = pause

	if g.state.GameOver || g.paused {
		return g.result()
	}

	g.tick++
	g.now += g.dt
	g.pool.SetTime(g.now)

	g.ctrl.Update(in)

	if in.Has(core.ActionFire) && g.now > g.nextFireAt {
		g.pool.Fire(g.ctrl.Pose(), g.state.MultiShotActive)
		g.nextFireAt = g.now + ms(g.cfg.Player.FireIntervalMS)
	}

	if in.Has(core.ActionNuke) {
		g.rules.Nuke(g.now)
	}

	if g.rules.Tick(g.now) {
		g.ctrl.Respawn()
	}
	g.pool.Tick(g.now)

	g.backend.Step(g.dt)
	g.backend.WrapAroundBounds(g.ctrl.Body(), g.cfg.Player.WrapMargin)
	g.pool.Wrap()

	for _, ev := range g.resolver.Collect(g.ctrl.Body(), g.state.Distressed(g.now)) {
		g.rules.Apply(ev, g.now)
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Tick: g.tick}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Lives:    g.state.Lives,
		GameOver: g.state.GameOver,
		Paused:   g.paused,
	}
}

// Session returns a copy of the gameplay state.
func (g *Game) Session() State {
	return g.state
}

// Stats reports run totals for the score board.
func (g *Game) Stats() (kills int, played time.Duration) {
	return g.state.Kills, g.now - g.startedAt
}

// Now returns the session clock.
func (g *Game) Now() time.Duration {
	return g.now
}

// Register the game with the registry
func init() {
	registry.Register("asteroids", func() registry.Game {
		return New()
	})
}
