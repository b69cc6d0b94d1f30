package camera

import (
	"math"
	"testing"

	"github.com/Yanthir84/PawRun/internal/config"
)

func TestFollowConvergesPerAxis(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Camera
	c := New(cfg, 1.0/60.0)

	// Player settled in the left lane at depth 100
	for i := 0; i < 60*5; i++ {
		c.Follow(-2.0, 0, 100)
	}

	if math.Abs(c.X-(-2.0*0.6)) > 0.01 {
		t.Errorf("camera X = %v, expected about %v", c.X, -2.0*0.6)
	}
	if math.Abs(c.Y-cfg.Height) > 0.01 {
		t.Errorf("camera Y = %v, expected about %v", c.Y, cfg.Height)
	}
	if math.Abs(c.Z-(100-cfg.Back)) > 0.01 {
		t.Errorf("camera Z = %v, expected about %v", c.Z, 100-cfg.Back)
	}
}

func TestFollowIsSmooth(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Camera
	c := New(cfg, 1.0/60.0)

	// A sudden lane change must not teleport the camera
	before := c.X
	c.Follow(2.0, 0, 0)
	moved := math.Abs(c.X - before)
	if moved >= math.Abs(2.0*0.6-before) {
		t.Errorf("camera jumped %v in one tick, expected smoothing", moved)
	}
	if moved == 0 {
		t.Error("camera should start moving toward the new target")
	}
}

func TestResetSnaps(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Camera
	c := New(cfg, 1.0/60.0)

	c.Reset(1.5, 200)
	if c.X != 1.5 || c.Z != 200-cfg.Back || c.Y != cfg.Height {
		t.Errorf("Reset left camera at (%v, %v, %v)", c.X, c.Y, c.Z)
	}
}
