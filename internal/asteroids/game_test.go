package asteroids

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical sessions
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%90 < 20:
			inputs[i].Set(core.ActionLeft)
		case i%90 < 45:
			inputs[i].Set(core.ActionThrust)
		}
		if i%7 == 0 {
			inputs[i].Set(core.ActionFire)
		}
	}

	run := func(seed int64) Snapshot {
		rt := testRuntime()
		rt.Seed = seed
		g := NewWithConfig(config.DefaultAsteroidsConfig())
		g.Reset(rt)
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run(12345)
	snap2 := run(12345)
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: score %d/%d tick %d/%d", snap1.Score, snap2.Score, snap1.Tick, snap2.Tick)
	}

	snap3 := run(999)
	if snap1.Hash() == snap3.Hash() {
		t.Error("different seeds produced identical sessions")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t)
	snap := g.Snapshot()

	if snap.Score != 0 || snap.Lives != 3 || snap.Difficulty != 1.0 {
		t.Errorf("Reset state: score %d lives %d difficulty %v", snap.Score, snap.Lives, snap.Difficulty)
	}
	if len(snap.Asteroids) != 5 {
		t.Errorf("asteroids = %d, expected 5", len(snap.Asteroids))
	}
	if snap.Player.X != 400 || snap.Player.Y != 300 {
		t.Errorf("player at (%v, %v), expected (400, 300)", snap.Player.X, snap.Player.Y)
	}
	if g.ID() != "asteroids" || g.Title() != "Asteroids" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}

func TestBulletKillsAsteroid(t *testing.T) {
	g := newTestGame(t)
	target := placeLoneAsteroid(g, 450, 300)

	g.Step(core.InputOf(core.ActionFire))
	for i := 0; i < 60 && g.state.Score == 0; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.state.Score != 10 {
		t.Fatalf("Score = %d, expected 10", g.state.Score)
	}
	if g.state.Difficulty != 1.0 {
		t.Errorf("Difficulty = %v, expected 1.0", g.state.Difficulty)
	}
	if _, ok := g.pool.Asteroid(target.Body); ok {
		t.Error("hit asteroid still alive")
	}
	if got := len(g.pool.Asteroids()); got != 1 {
		t.Errorf("asteroids = %d, expected 1 replacement", got)
	}
	if got := len(g.pool.Bullets()); got != 0 {
		t.Errorf("bullets = %d, expected 0", got)
	}
}

func TestFireCadence(t *testing.T) {
	g := newTestGame(t)
	g.pool.ClearAsteroids()
	fire := core.InputOf(core.ActionFire)

	g.Step(fire)
	if got := len(g.pool.Bullets()); got != 1 {
		t.Fatalf("bullets after first tick = %d, expected 1", got)
	}

	// 200 ms at 60 ticks/s is 12 ticks; the next shot needs strictly more.
	stepN(g, 12, fire)
	if got := len(g.pool.Bullets()); got != 1 {
		t.Errorf("bullets within cooldown = %d, expected 1", got)
	}
	g.Step(fire)
	if got := len(g.pool.Bullets()); got != 2 {
		t.Errorf("bullets after cooldown = %d, expected 2", got)
	}
}

func TestBulletLifetimeAndCapacity(t *testing.T) {
	g := newTestGame(t)
	g.pool.ClearAsteroids()
	g.state.MultiShotActive = true
	g.state.MultiShotUntil = time.Hour

	fire := core.InputOf(core.ActionFire, core.ActionRight)
	reachedCap := false
	for range 600 {
		g.Step(fire)
		bullets := g.pool.Bullets()
		if len(bullets) > 20 {
			t.Fatalf("bullets = %d, expected <= 20", len(bullets))
		}
		if len(bullets) == 20 {
			reachedCap = true
		}
		for _, b := range bullets {
			if age := g.now - b.SpawnedAt; age >= 2*time.Second {
				t.Fatalf("bullet alive at age %v", age)
			}
		}
	}
	if !reachedCap {
		t.Error("pool never reached capacity under sustained multi-shot")
	}
}

func TestPowerUpPickup(t *testing.T) {
	g := newTestGame(t)
	g.pool.ClearAsteroids()
	g.pool.SpawnPowerUp(400, 300)
	g.pool.powerUps[0].Kind = PowerUpMultiShot

	g.Step(core.NewInputFrame())

	if len(g.pool.PowerUps()) != 0 {
		t.Error("power-up not consumed")
	}
	if !g.state.MultiShotActive || g.state.HasNuke {
		t.Errorf("MultiShotActive = %v, HasNuke = %v", g.state.MultiShotActive, g.state.HasNuke)
	}
	if g.state.MultiShotUntil != g.now+10*time.Second {
		t.Errorf("MultiShotUntil = %v, expected now+10s", g.state.MultiShotUntil)
	}
}

func TestPowerUpExpiresUnclaimed(t *testing.T) {
	g := newTestGame(t)
	g.pool.ClearAsteroids()
	g.pool.SpawnPowerUp(50, 50)
	g.backend.SetVelocity(g.pool.PowerUps()[0].Body, core.Vec2{})
	spawned := g.now

	for len(g.pool.PowerUps()) > 0 {
		g.Step(core.NewInputFrame())
		if g.now-spawned > 11*time.Second {
			t.Fatal("power-up never expired")
		}
	}
	if age := g.now - spawned; age < 10*time.Second || age >= 10*time.Second+g.dt {
		t.Errorf("power-up expired at age %v, expected 10s", age)
	}
}

func TestNukeThroughInput(t *testing.T) {
	g := newTestGame(t)
	nuke := core.InputOf(core.ActionNuke)

	g.Step(nuke)
	if g.state.Score != 0 || len(g.pool.Asteroids()) != 5 {
		t.Errorf("nuke without charge changed state: score %d, asteroids %d", g.state.Score, len(g.pool.Asteroids()))
	}

	g.pool.ClearAsteroids()
	g.state.HasNuke = true
	g.Step(nuke)
	if g.state.Score != 50 || g.state.HasNuke {
		t.Errorf("Score = %d, HasNuke = %v after nuke", g.state.Score, g.state.HasNuke)
	}
}

func TestPlayerDeathFreezesSession(t *testing.T) {
	g := newTestGame(t)
	placeLoneAsteroid(g, 410, 300)
	g.state.Lives = 1

	g.Step(core.NewInputFrame())

	if g.state.Lives != 0 || !g.state.GameOver {
		t.Fatalf("Lives = %d, GameOver = %v, expected 0/true", g.state.Lives, g.state.GameOver)
	}
	if !g.State().GameOver {
		t.Error("State().GameOver = false")
	}

	before := g.Snapshot()
	stepN(g, 120, core.InputOf(core.ActionThrust, core.ActionFire, core.ActionLeft, core.ActionNuke))
	after := g.Snapshot()

	if before.Hash() != after.Hash() {
		t.Error("session advanced after game over")
	}
	if after.Tick != before.Tick {
		t.Errorf("Tick = %d, expected %d", after.Tick, before.Tick)
	}
}

func TestPlayerHitRespawns(t *testing.T) {
	g := newTestGame(t)
	placeLoneAsteroid(g, 410, 300)

	g.Step(core.NewInputFrame())
	if g.state.Lives != 2 {
		t.Fatalf("Lives = %d, expected 2", g.state.Lives)
	}

	g.pool.ClearAsteroids()
	g.backend.SetPose(g.ctrl.Body(), core.Pose{X: 100, Y: 100})
	hitAt := g.now

	for g.now-hitAt < time.Second {
		if pose := g.ctrl.Pose(); pose.X == 400 && pose.Y == 300 {
			t.Fatalf("respawned early at %v", g.now-hitAt)
		}
		g.Step(core.NewInputFrame())
	}
	if pose := g.ctrl.Pose(); pose.X != 400 || pose.Y != 300 {
		t.Errorf("pose after respawn delay = %+v, expected start", pose)
	}
	if g.state.Distressed(g.now) {
		t.Error("still distressed after 1000 ms")
	}
}

func TestDistressBlocksRepeatHits(t *testing.T) {
	g := newTestGame(t)
	placeLoneAsteroid(g, 410, 300)

	stepN(g, 55, core.NewInputFrame())

	if g.state.Lives != 2 {
		t.Errorf("Lives = %d, expected 2 during distress", g.state.Lives)
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(t)
	g.state = State{
		Score:             1500,
		Lives:             0,
		Difficulty:        3,
		MultiShotActive:   true,
		HasNuke:           true,
		LastLifeMilestone: 1000,
		GameOver:          true,
	}
	g.pool.Fire(core.Pose{X: 400, Y: 300}, true)
	g.pool.SpawnPowerUp(10, 10)
	g.pool.SpawnAsteroids(4, 1)

	g.Step(core.InputOf(core.ActionRestart))

	s := g.Session()
	if s.Score != 0 || s.Lives != 3 || s.Difficulty != 1.0 || s.GameOver ||
		s.MultiShotActive || s.HasNuke || s.LastLifeMilestone != 0 {
		t.Errorf("state after restart = %+v", s)
	}
	if n := len(g.pool.Asteroids()); n != 5 {
		t.Errorf("asteroids = %d, expected 5", n)
	}
	if len(g.pool.Bullets())+len(g.pool.PowerUps()) != 0 {
		t.Error("bullets or power-ups survived restart")
	}

	g.Step(core.NewInputFrame())
	if g.Snapshot().Tick == 0 {
		t.Error("session did not resume after restart")
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t)
	pause := core.InputOf(core.ActionPause)

	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("Paused = false after pause press")
	}
	frozen := g.now
	stepN(g, 10, pause) // held key does not toggle again
	stepN(g, 10, core.NewInputFrame())
	if g.now != frozen || !g.State().Paused {
		t.Error("clock advanced while paused")
	}

	g.Step(pause)
	g.Step(core.NewInputFrame())
	if g.State().Paused || g.now == frozen {
		t.Error("session did not resume after second press")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"Score: 0", "Lives: 3", "Power: None", "→"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	g.state.GameOver = true
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("render missing game over box")
	}
}

func TestShipGlyph(t *testing.T) {
	tests := []struct {
		angle    float64
		expected rune
	}{
		{0, '→'},
		{1.5708, '↓'},
		{-1.5708, '↑'},
		{3.1416, '←'},
		{7 * 3.1416 / 4, '↗'},
	}
	for _, tt := range tests {
		if got := ShipGlyph(tt.angle); got != tt.expected {
			t.Errorf("ShipGlyph(%v) = %q, expected %q", tt.angle, got, tt.expected)
		}
	}
}

func TestSnapshotEncoding(t *testing.T) {
	g := newTestGame(t)
	stepN(g, 30, core.InputOf(core.ActionFire))
	snap := g.Snapshot()

	data, err := snap.Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	decoded, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot() error: %v", err)
	}
	if decoded.Score != snap.Score || decoded.Tick != snap.Tick || decoded.Power != snap.Power {
		t.Errorf("decoded header = %+v, expected %+v", decoded, snap)
	}
	if len(decoded.Bullets) != len(snap.Bullets) || len(decoded.Asteroids) != len(snap.Asteroids) {
		t.Fatalf("decoded bodies %d/%d, expected %d/%d",
			len(decoded.Bullets), len(decoded.Asteroids), len(snap.Bullets), len(snap.Asteroids))
	}
	if decoded.Asteroids[0] != snap.Asteroids[0] || decoded.Player != snap.Player {
		t.Error("decoded poses differ")
	}
}

func TestLoggerReceivesEvents(t *testing.T) {
	var buf bytes.Buffer
	g := newTestGame(t)
	g.SetLogger(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}))
	placeLoneAsteroid(g, 410, 300)

	g.Step(core.NewInputFrame())

	if !strings.Contains(buf.String(), "player hit") {
		t.Errorf("log = %q, expected player hit entry", buf.String())
	}
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create("asteroids")
	if err != nil {
		t.Fatalf("registry.Create() error: %v", err)
	}
	if g.Title() != "Asteroids" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestStepResultReportsTickAndLives(t *testing.T) {
	g := newTestGame(t)
	idle := core.NewInputFrame()

	res := g.Step(idle)
	if res.Tick != 1 {
		t.Errorf("Tick = %d, expected 1", res.Tick)
	}
	if res.State.Lives != g.cfg.Rules.StartLives {
		t.Errorf("Lives = %d, expected %d", res.State.Lives, g.cfg.Rules.StartLives)
	}

	g.Step(core.InputOf(core.ActionPause))
	res = g.Step(idle)
	if res.Tick != 1 {
		t.Errorf("Tick = %d while paused, expected 1", res.Tick)
	}
}

func TestSetPresetPerInstance(t *testing.T) {
	easy := New()
	easy.SetPreset("easy")
	easy.Reset(testRuntime())

	hard := New()
	hard.SetPreset("hard")
	hard.Reset(testRuntime())

	if easy.Session().Lives != 5 {
		t.Errorf("easy Lives = %d, expected 5", easy.Session().Lives)
	}
	if hard.Session().Lives != 2 {
		t.Errorf("hard Lives = %d, expected 2", hard.Session().Lives)
	}
}
