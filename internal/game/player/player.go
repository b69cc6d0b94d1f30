// Package player implements the runner's character state machine: lane
// steering with eased lateral movement, and the Running/Jumping/Sliding
// vertical poses. Exactly one pose is active at any tick.
package player

import (
	"github.com/Yanthir84/PawRun/internal/config"
	"github.com/Yanthir84/PawRun/internal/core"
	"github.com/Yanthir84/PawRun/internal/game/audio"
	"github.com/Yanthir84/PawRun/internal/game/entity"
)

// Pose is the character's vertical/posture state.
type Pose int

const (
	PoseRunning Pose = iota
	PoseJumping
	PoseSliding
)

// String returns a human-readable name for the pose.
func (p Pose) String() string {
	switch p {
	case PoseRunning:
		return "running"
	case PoseJumping:
		return "jumping"
	case PoseSliding:
		return "sliding"
	default:
		return "unknown"
	}
}

// Player is the singleton character state, mutated every active tick.
type Player struct {
	physics   config.RunnerPhysics
	footprint config.RunnerPlayer
	laneWidth float64
	dt        float64
	sink      audio.Sink

	lane        int     // Target lane, always in [0, 2]
	lateral     float64 // Continuous lateral position, eases toward the lane offset
	vertOffset  float64 // Height above the ground, 0 while grounded
	vertVel     float64 // Vertical velocity, units/s
	pose        Pose
	slideTimer  float64 // Seconds of slide remaining
}

// New creates a player. The audio sink receives a cue for every accepted
// pose transition; pass audio.NullSink for silence.
func New(physics config.RunnerPhysics, footprint config.RunnerPlayer, laneWidth, dt float64, sink audio.Sink) *Player {
	if sink == nil {
		sink = audio.NullSink{}
	}
	p := &Player{
		physics:   physics,
		footprint: footprint,
		laneWidth: laneWidth,
		dt:        dt,
		sink:      sink,
	}
	p.Reset()
	return p
}

// Reset returns the player to the center lane, grounded and running.
func (p *Player) Reset() {
	p.lane = entity.LaneCenter
	p.lateral = entity.LaneOffset(p.lane, p.laneWidth)
	p.vertOffset = 0
	p.vertVel = 0
	p.pose = PoseRunning
	p.slideTimer = 0
}

// Apply consumes this tick's input. Lane changes take effect immediately as a
// new target lane and saturate at the corridor bounds; jump and slide are
// only accepted from the Running pose.
func (p *Player) Apply(in core.InputFrame) {
	if in.Has(core.ActionLaneLeft) && p.lane > entity.LaneLeft {
		p.lane--
	}
	if in.Has(core.ActionLaneRight) && p.lane < entity.LaneRight {
		p.lane++
	}

	if in.Has(core.ActionJump) && p.pose == PoseRunning {
		p.pose = PoseJumping
		p.vertVel = p.physics.JumpImpulse
		p.sink.Play(audio.CueJump)
	}

	if in.Has(core.ActionSlide) && p.pose == PoseRunning {
		p.pose = PoseSliding
		p.slideTimer = p.physics.SlideTime
		p.sink.Play(audio.CueSlide)
	}
}

// Integrate advances the vertical physics and lateral easing by one tick.
func (p *Player) Integrate() {
	switch p.pose {
	case PoseJumping:
		p.vertVel -= p.physics.Gravity * p.dt
		p.vertOffset += p.vertVel * p.dt
		if p.vertOffset <= 0 {
			p.vertOffset = 0
			p.vertVel = 0
			p.pose = PoseRunning
		}
	case PoseSliding:
		p.slideTimer -= p.dt
		if p.slideTimer <= 0 {
			p.slideTimer = 0
			p.pose = PoseRunning
		}
	}

	target := entity.LaneOffset(p.lane, p.laneWidth)
	p.lateral = core.Ease(p.lateral, target, p.physics.LaneEase, p.dt)
}

// Box returns the character's full footprint at the given forward depth.
// Sliding collapses the hitbox profile.
func (p *Player) Box(forward float64) core.Box {
	h := p.footprint.Height
	if p.pose == PoseSliding {
		h = p.footprint.SlideHeight
	}
	return core.NewBox(p.lateral, p.vertOffset, forward, p.footprint.Width, h, p.footprint.Depth)
}

// Lane returns the target lane index.
func (p *Player) Lane() int {
	return p.lane
}

// Lateral returns the continuous lateral position.
func (p *Player) Lateral() float64 {
	return p.lateral
}

// VerticalOffset returns the height above the ground.
func (p *Player) VerticalOffset() float64 {
	return p.vertOffset
}

// VerticalVelocity returns the current vertical velocity.
func (p *Player) VerticalVelocity() float64 {
	return p.vertVel
}

// Pose returns the current pose.
func (p *Player) Pose() Pose {
	return p.pose
}

// SlideRemaining returns the seconds left in the current slide.
func (p *Player) SlideRemaining() float64 {
	return p.slideTimer
}
