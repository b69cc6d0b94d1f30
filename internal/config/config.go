// Package config provides YAML-based game configuration loading and
// difficulty presets for the runner.
package config

// RunnerConfig contains all tuning for the endless runner. Rates and speeds
// are expressed per second; the simulation scales them by the tick duration
// so behavior is independent of the configured tick rate.
type RunnerConfig struct {
	Physics    RunnerPhysics    `yaml:"physics"`
	Lanes      RunnerLanes      `yaml:"lanes"`
	Track      RunnerTrack      `yaml:"track"`
	Spawn      RunnerSpawn      `yaml:"spawn"`
	Player     RunnerPlayer     `yaml:"player"`
	Collision  RunnerCollision  `yaml:"collision"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Camera     RunnerCamera     `yaml:"camera"`
}

// RunnerPhysics defines vertical movement parameters.
type RunnerPhysics struct {
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration, units/s²
	JumpImpulse float64 `yaml:"jump_impulse"` // Upward velocity applied on jump, units/s
	SlideTime   float64 `yaml:"slide_time"`   // Slide duration in seconds
	LaneEase    float64 `yaml:"lane_ease"`    // Lateral smoothing rate, 1/s
}

// RunnerLanes defines the lane layout. The corridor always has three lanes;
// only their spacing is configurable.
type RunnerLanes struct {
	Width float64 `yaml:"width"` // World distance between adjacent lane centers
}

// RunnerTrack defines the segment streaming window.
type RunnerTrack struct {
	SegmentLength float64 `yaml:"segment_length"` // Forward length of one segment
	LookAhead     float64 `yaml:"look_ahead"`     // Generated distance kept ahead of the player
	CullMargin    float64 `yaml:"cull_margin"`    // Distance behind the player before removal
}

// RunnerSpawn defines per-segment entity placement odds. The type roll is a
// single uniform draw banded into collectible / low obstacle / high obstacle.
type RunnerSpawn struct {
	ObstacleChance  float64 `yaml:"obstacle_chance"`  // Chance a segment gets occupied lanes
	SceneryChance   float64 `yaml:"scenery_chance"`   // Chance of flanking decorations
	CollectibleBand float64 `yaml:"collectible_band"` // Roll below this spawns a collectible
	LowBand         float64 `yaml:"low_band"`         // Roll below this (and above the collectible band) spawns a low obstacle
	CoinReward      int     `yaml:"coin_reward"`      // Score per collectible
}

// RunnerPlayer defines the character footprint.
type RunnerPlayer struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SlideHeight float64 `yaml:"slide_height"` // Collapsed hitbox height while sliding
	Depth       float64 `yaml:"depth"`
}

// RunnerCollision defines hitbox forgiveness margins and avoidance gates.
// These are tuned values; there is no single canonical setting.
type RunnerCollision struct {
	ShrinkX      float64 `yaml:"shrink_x"`      // Lateral inward margin on the player volume
	ShrinkY      float64 `yaml:"shrink_y"`      // Vertical inward margin
	ShrinkZ      float64 `yaml:"shrink_z"`      // Forward inward margin
	Clearance    float64 `yaml:"clearance"`     // Min vertical offset for a jump to clear a low obstacle
	SlideCeiling float64 `yaml:"slide_ceiling"` // Max vertical offset for a slide to pass a high obstacle
}

// DifficultyConfig defines the speed ramp, the sole difficulty lever.
type DifficultyConfig struct {
	BaseSpeed float64 `yaml:"base_speed"` // Forward speed at run start, units/s
	Ramp      float64 `yaml:"ramp"`       // Speed gained per second, units/s²
	MaxSpeed  float64 `yaml:"max_speed"`  // Speed cap, units/s
}

// RunnerCamera defines per-axis camera smoothing toward the player.
type RunnerCamera struct {
	EaseX  float64 `yaml:"ease_x"` // Lateral smoothing rate, 1/s
	EaseY  float64 `yaml:"ease_y"` // Vertical smoothing rate, 1/s
	EaseZ  float64 `yaml:"ease_z"` // Forward smoothing rate, 1/s
	Back   float64 `yaml:"back"`   // Target distance behind the player
	Height float64 `yaml:"height"` // Target height above the ground
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
