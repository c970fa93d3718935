package asteroids

import (
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// BodyView is the presentation view of one entity.
type BodyView struct {
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
	Angle  float64 `msgpack:"a,omitempty"`
	Radius float64 `msgpack:"r,omitempty"`
	Kind   string  `msgpack:"k,omitempty"`
}

// Snapshot is a read-only view of a session for presentation and tests.
// Times are session-clock milliseconds.
type Snapshot struct {
	Tick       uint64  `msgpack:"tick"`
	NowMS      int64   `msgpack:"now_ms"`
	Score      int     `msgpack:"score"`
	Lives      int     `msgpack:"lives"`
	Difficulty float64 `msgpack:"difficulty"`
	Power      string  `msgpack:"power"`
	MultiShot  bool    `msgpack:"multi_shot"`
	HasNuke    bool    `msgpack:"has_nuke"`
	GameOver   bool    `msgpack:"game_over"`
	Paused     bool    `msgpack:"paused"`
	Distressed bool    `msgpack:"distressed"`
	Banner     bool    `msgpack:"banner"`

	Player    BodyView   `msgpack:"player"`
	Bullets   []BodyView `msgpack:"bullets"`
	Asteroids []BodyView `msgpack:"asteroids"`
	PowerUps  []BodyView `msgpack:"powerups"`
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       g.tick,
		NowMS:      g.now.Milliseconds(),
		Score:      g.state.Score,
		Lives:      g.state.Lives,
		Difficulty: g.state.Difficulty,
		Power:      g.state.PowerStatus(),
		MultiShot:  g.state.MultiShotActive,
		HasNuke:    g.state.HasNuke,
		GameOver:   g.state.GameOver,
		Paused:     g.paused,
		Distressed: g.state.Distressed(g.now),
		Banner:     g.state.BannerVisible(g.now),
		Player:     poseView(g.ctrl.Pose()),
	}

	snap.Bullets = make([]BodyView, 0, len(g.pool.Bullets()))
	for _, b := range g.pool.Bullets() {
		if pose, ok := g.backend.Pose(b.Body); ok {
			snap.Bullets = append(snap.Bullets, poseView(pose))
		}
	}

	snap.Asteroids = make([]BodyView, 0, len(g.pool.Asteroids()))
	for _, a := range g.pool.Asteroids() {
		if pose, ok := g.backend.Pose(a.Body); ok {
			v := poseView(pose)
			v.Radius = a.Radius
			snap.Asteroids = append(snap.Asteroids, v)
		}
	}

	snap.PowerUps = make([]BodyView, 0, len(g.pool.PowerUps()))
	for _, pu := range g.pool.PowerUps() {
		if pose, ok := g.backend.Pose(pu.Body); ok {
			v := poseView(pose)
			v.Kind = pu.Kind.String()
			snap.PowerUps = append(snap.PowerUps, v)
		}
	}

	return snap
}

func poseView(p core.Pose) BodyView {
	return BodyView{X: p.X, Y: p.Y, Angle: p.Angle}
}

// Encode returns the msgpack encoding of the snapshot.
func (snap *Snapshot) Encode() ([]byte, error) {
	return msgpack.Marshal(snap)
}

// DecodeSnapshot parses a msgpack-encoded snapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	err := msgpack.Unmarshal(data, &snap)
	return snap, err
}

// Hash returns an FNV-1a digest of the encoded snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	data, err := snap.Encode()
	if err != nil {
		return 0
	}
	h := fnv.New64a()
	_, _ = h.Write(data)
	return h.Sum64()
}
