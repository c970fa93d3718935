// Package config provides YAML-based game configuration loading and
// difficulty management for the asteroids game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) when a loaded config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// AsteroidsConfig contains all configuration for the Asteroids game.
// Durations are in milliseconds, distances in world units, speeds in units/second.
type AsteroidsConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Asteroids  AsteroidConfig   `yaml:"asteroids"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Rules      RulesConfig      `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the play field.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the ship body and handling.
type PlayerConfig struct {
	StartX         float64 `yaml:"start_x"`
	StartY         float64 `yaml:"start_y"`
	Radius         float64 `yaml:"radius"`
	TurnRateDeg    float64 `yaml:"turn_rate_deg"` // Angular speed while turning
	Thrust         float64 `yaml:"thrust"`        // Forward acceleration
	MaxSpeed       float64 `yaml:"max_speed"`
	Drag           float64 `yaml:"drag"`
	FireIntervalMS int     `yaml:"fire_interval_ms"`
	WrapMargin     float64 `yaml:"wrap_margin"`
}

// BulletConfig defines projectiles and the bullet pool.
type BulletConfig struct {
	Speed       float64 `yaml:"speed"`
	TTLMS       int     `yaml:"ttl_ms"`
	Capacity    int     `yaml:"capacity"`
	Radius      float64 `yaml:"radius"`
	NoseOffsetX float64 `yaml:"nose_offset_x"`
	NoseOffsetY float64 `yaml:"nose_offset_y"`
	Spread      float64 `yaml:"spread"` // Multi-shot side angle, radians
	WrapMargin  float64 `yaml:"wrap_margin"`
}

// AsteroidConfig defines asteroid generation and spawning.
type AsteroidConfig struct {
	InitialCount     int     `yaml:"initial_count"`
	BaseSpeed        float64 `yaml:"base_speed"` // Per-axis speed bound before difficulty
	MinSides         int     `yaml:"min_sides"`
	MaxSides         int     `yaml:"max_sides"`
	MinRadius        int     `yaml:"min_radius"`
	MaxRadius        int     `yaml:"max_radius"`
	JitterMin        float64 `yaml:"jitter_min"`
	JitterMax        float64 `yaml:"jitter_max"`
	BodyScale        float64 `yaml:"body_scale"`       // Collision radius = mean vertex radius * scale
	ExclusionHalf    float64 `yaml:"exclusion_half"`   // Half-size of the no-spawn box at player start
	ExclusionOffset  float64 `yaml:"exclusion_offset"` // Translation applied to samples inside the box
	NukeBaseCount    int     `yaml:"nuke_base_count"`  // Respawn count after a nuke at score 0
	NukeScorePerRock int     `yaml:"nuke_score_per"`   // Score per extra respawned asteroid
	NukeMaxCount     int     `yaml:"nuke_max_count"`   // Respawn count cap
	WrapMargin       float64 `yaml:"wrap_margin"`
}

// PowerUpConfig defines power-up drops and effects.
type PowerUpConfig struct {
	DropChance  int     `yaml:"drop_chance"` // Percent per destroyed asteroid
	TTLMS       int     `yaml:"ttl_ms"`
	MaxSpeed    float64 `yaml:"max_speed"` // Per-axis speed bound
	Radius      float64 `yaml:"radius"`
	MultiShotMS int     `yaml:"multishot_ms"`
}

// RulesConfig defines scoring, lives, and timed feedback.
type RulesConfig struct {
	StartLives     int `yaml:"start_lives"`
	KillPoints     int `yaml:"kill_points"`
	NukePoints     int `yaml:"nuke_points"`
	LifeMilestone  int `yaml:"life_milestone"`
	DistressMS     int `yaml:"distress_ms"`
	BonusBannerMS  int `yaml:"bonus_banner_ms"`
	RespawnDelayMS int `yaml:"respawn_delay_ms"`
}

// DifficultyConfig defines the score-driven speed curve for new asteroids.
type DifficultyConfig struct {
	Enabled   bool    `yaml:"enabled"`
	StepScore int     `yaml:"step_score"` // Score per difficulty step
	StepGain  float64 `yaml:"step_gain"`  // Multiplier added per step
	Max       float64 `yaml:"max"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// Validate checks the config for values the game cannot run with.
func (c AsteroidsConfig) Validate() error {
	checks := []struct {
		ok    bool
		field string
	}{
		{c.World.Width > 0 && c.World.Height > 0, "world size"},
		{c.Player.MaxSpeed > 0, "player.max_speed"},
		{c.Player.FireIntervalMS >= 0, "player.fire_interval_ms"},
		{c.Bullets.Capacity > 0, "bullets.capacity"},
		{c.Bullets.TTLMS > 0, "bullets.ttl_ms"},
		{c.Asteroids.MinSides >= 3 && c.Asteroids.MaxSides >= c.Asteroids.MinSides, "asteroids sides"},
		{c.Asteroids.MinRadius > 0 && c.Asteroids.MaxRadius >= c.Asteroids.MinRadius, "asteroids radius"},
		{c.Asteroids.JitterMin > 0 && c.Asteroids.JitterMax >= c.Asteroids.JitterMin, "asteroids jitter"},
		{c.Asteroids.NukeScorePerRock > 0, "asteroids.nuke_score_per"},
		{c.PowerUps.DropChance >= 0 && c.PowerUps.DropChance <= 100, "powerups.drop_chance"},
		{c.PowerUps.TTLMS > 0, "powerups.ttl_ms"},
		{c.Rules.StartLives > 0, "rules.start_lives"},
		{c.Rules.LifeMilestone > 0, "rules.life_milestone"},
		{c.Difficulty.StepScore > 0, "difficulty.step_score"},
		{c.Difficulty.Max >= 1, "difficulty.max"},
	}

	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.field)
		}
	}
	return nil
}
