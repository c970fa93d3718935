package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the default Asteroids configuration.
// Mirrors defaults/asteroids.yaml and is used when the embedded YAML cannot be parsed.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			StartX:         400,
			StartY:         300,
			Radius:         12.5, // 25x25 hit box
			TurnRateDeg:    200,
			Thrust:         300,
			MaxSpeed:       300,
			Drag:           100,
			FireIntervalMS: 200,
			WrapMargin:     32,
		},
		Bullets: BulletConfig{
			Speed:       400,
			TTLMS:       2000,
			Capacity:    20,
			Radius:      3,
			NoseOffsetX: 13,
			NoseOffsetY: 1,
			Spread:      0.2,
			WrapMargin:  16,
		},
		Asteroids: AsteroidConfig{
			InitialCount:     5,
			BaseSpeed:        100,
			MinSides:         8,
			MaxSides:         12,
			MinRadius:        20,
			MaxRadius:        40,
			JitterMin:        0.7,
			JitterMax:        1.0,
			BodyScale:        0.8,
			ExclusionHalf:    100,
			ExclusionOffset:  200,
			NukeBaseCount:    3,
			NukeScorePerRock: 200,
			NukeMaxCount:     8,
			WrapMargin:       64,
		},
		PowerUps: PowerUpConfig{
			DropChance:  20,
			TTLMS:       10000,
			MaxSpeed:    50,
			Radius:      10,
			MultiShotMS: 10000,
		},
		Rules: RulesConfig{
			StartLives:     3,
			KillPoints:     10,
			NukePoints:     50,
			LifeMilestone:  1000,
			DistressMS:     1000,
			BonusBannerMS:  2000,
			RespawnDelayMS: 1000,
		},
		Difficulty: DifficultyConfig{
			Enabled:   true,
			StepScore: 100,
			StepGain:  0.2,
			Max:       3.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "asteroids":
		return defaultAsteroidsYAML
	default:
		return nil
	}
}
