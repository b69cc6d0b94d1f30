package config

// NextSpeed advances a forward speed by one tick of the ramp. The increment
// is fixed per tick (Ramp scaled by dt) and the result saturates at MaxSpeed,
// so speed is monotonically non-decreasing up to the cap.
func (d DifficultyConfig) NextSpeed(current, dt float64) float64 {
	next := current + d.Ramp*dt
	if next > d.MaxSpeed {
		next = d.MaxSpeed
	}
	if next < current {
		return current
	}
	return next
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
// The fixed preset disables the ramp entirely.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Ramp *= 0.5
		cfg.Difficulty.MaxSpeed *= 0.8
	case DifficultyNormal:
		// Config values as-is
	case DifficultyHard:
		cfg.Difficulty.BaseSpeed *= 1.25
		cfg.Difficulty.Ramp *= 1.5
	case DifficultyFixed:
		cfg.Difficulty.Ramp = 0
	}
}
