package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// Kept in sync with the embedded defaults/runner.yaml; used as the last
// fallback if the embedded YAML cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:     25.0,
			JumpImpulse: 9.0,
			SlideTime:   0.8,
			LaneEase:    10.0,
		},
		Lanes: RunnerLanes{
			Width: 2.0,
		},
		Track: RunnerTrack{
			SegmentLength: 30.0,
			LookAhead:     90.0,
			CullMargin:    15.0,
		},
		Spawn: RunnerSpawn{
			ObstacleChance:  0.7,
			SceneryChance:   0.9,
			CollectibleBand: 0.4,
			LowBand:         0.75,
			CoinReward:      10,
		},
		Player: RunnerPlayer{
			Width:       1.0,
			Height:      1.8,
			SlideHeight: 0.9,
			Depth:       1.0,
		},
		Collision: RunnerCollision{
			ShrinkX:      0.2,
			ShrinkY:      0.1,
			ShrinkZ:      0.2,
			Clearance:    0.5,
			SlideCeiling: 0.3,
		},
		Difficulty: DifficultyConfig{
			BaseSpeed: 12.0,
			Ramp:      0.4,
			MaxSpeed:  30.0,
		},
		Camera: RunnerCamera{
			EaseX:  6.0,
			EaseY:  4.0,
			EaseZ:  12.0,
			Back:   6.5,
			Height: 3.2,
		},
	}
}

// GetDefaultYAML returns the embedded default runner YAML.
func GetDefaultYAML() []byte {
	return defaultRunnerYAML
}
