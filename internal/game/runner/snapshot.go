package runner

import "github.com/Yanthir84/PawRun/internal/game/player"

// Snapshot captures the complete run state for determinism testing.
type Snapshot struct {
	Tick           uint64
	Score          int
	Speed          float64
	Forward        float64
	Lane           int
	Lateral        float64
	VerticalOffset float64
	Pose           player.Pose
	EntityCount    int
	SegmentCount   int
	SpawnedTo      float64
	GameOver       bool
	Paused         bool
}

// Snapshot returns the current run snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:           g.tick,
		Score:          g.score,
		Speed:          g.speed,
		Forward:        g.forward,
		Lane:           g.player.Lane(),
		Lateral:        g.player.Lateral(),
		VerticalOffset: g.player.VerticalOffset(),
		Pose:           g.player.Pose(),
		EntityCount:    g.arena.Len(),
		SegmentCount:   g.track.Len(),
		SpawnedTo:      g.track.SpawnedTo(),
		GameOver:       g.gameOver,
		Paused:         g.paused,
	}
}
