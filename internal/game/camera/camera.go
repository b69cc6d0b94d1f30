// Package camera implements the chase camera: a position that eases toward a
// target derived from the player, with independent smoothing per axis. It is
// purely presentational and consumes the same per-tick player state the
// renderer reads.
package camera

import (
	"github.com/Yanthir84/PawRun/internal/config"
	"github.com/Yanthir84/PawRun/internal/core"
)

// Camera is the smoothed view position.
type Camera struct {
	cfg config.RunnerCamera
	dt  float64

	X, Y, Z float64
}

// New creates a camera with the given smoothing configuration.
func New(cfg config.RunnerCamera, dt float64) *Camera {
	c := &Camera{cfg: cfg, dt: dt}
	c.Reset(0, 0)
	return c
}

// Reset snaps the camera to its target for the given player position.
func (c *Camera) Reset(playerX, playerForward float64) {
	c.X = playerX
	c.Y = c.cfg.Height
	c.Z = playerForward - c.cfg.Back
}

// Follow eases the camera toward a target derived from the player position.
// The lateral target tracks only part of the player's offset so the corridor
// stays framed; the vertical target lifts slightly with the jump.
func (c *Camera) Follow(playerX, playerY, playerForward float64) {
	targetX := playerX * 0.6
	targetY := c.cfg.Height + playerY*0.3
	targetZ := playerForward - c.cfg.Back

	c.X = core.Ease(c.X, targetX, c.cfg.EaseX, c.dt)
	c.Y = core.Ease(c.Y, targetY, c.cfg.EaseY, c.dt)
	c.Z = core.Ease(c.Z, targetZ, c.cfg.EaseZ, c.dt)
}
