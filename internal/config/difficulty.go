package config

import "math"

// DifficultyCurve turns score into gameplay scaling values.
type DifficultyCurve struct {
	cfg  DifficultyConfig
	nuke AsteroidConfig
}

// NewDifficultyCurve creates a curve from the difficulty and asteroid sections.
func NewDifficultyCurve(cfg DifficultyConfig, asteroids AsteroidConfig) *DifficultyCurve {
	return &DifficultyCurve{cfg: cfg, nuke: asteroids}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyCurve) IsEnabled() bool {
	return d.cfg.Enabled
}

// Multiplier returns min(1 + floor(score/step)*gain, max).
// Disabled curves stay at 1.0; the result is always within [1, max].
func (d *DifficultyCurve) Multiplier(score int) float64 {
	if !d.cfg.Enabled || score <= 0 || d.cfg.StepScore <= 0 {
		return 1.0
	}
	steps := score / d.cfg.StepScore
	return clampF(1+float64(steps)*d.cfg.StepGain, 1.0, math.Max(1.0, d.cfg.Max))
}

// NukeSpawnCount returns how many asteroids replace a nuked field:
// min(base + floor(score/per), max).
func (d *DifficultyCurve) NukeSpawnCount(score int) int {
	per := d.nuke.NukeScorePerRock
	if per <= 0 {
		per = 1
	}
	n := d.nuke.NukeBaseCount + max(score, 0)/per
	if n > d.nuke.NukeMaxCount {
		n = d.nuke.NukeMaxCount
	}
	return n
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
