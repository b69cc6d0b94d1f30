package runner

import (
	"github.com/Yanthir84/PawRun/internal/core"
	"github.com/Yanthir84/PawRun/internal/game/audio"
	"github.com/Yanthir84/PawRun/internal/game/entity"
	"github.com/Yanthir84/PawRun/internal/game/player"
)

// evaluateCollisions tests the player volume against every live entity.
// Collectible hits score and despawn; obstacle hits end the run unless the
// pose-gated avoidance rule holds. First unavoided hit wins; there is no
// retry or rollback.
func (g *Game) evaluateCollisions() {
	col := g.cfg.Collision
	playerVol := g.player.Box(g.forward).Shrink(col.ShrinkX, col.ShrinkY, col.ShrinkZ)

	crashed := false
	g.arena.Each(func(e entity.Entity) {
		if crashed || !e.Collidable() {
			return
		}

		if e.Kind == entity.KindCollectible {
			if playerVol.Intersects(e.Box()) {
				g.collect(e)
			}
			return
		}

		if playerVol.Intersects(g.obstacleVolume(e)) && !g.avoided(e) {
			crashed = true
			g.endRun()
		}
	})
}

// obstacleVolume returns the obstacle's own shrunk volume. Obstacles give up
// half the player's lateral/forward margins; their vertical extent stays
// exact so the pose gates decide clearance.
func (g *Game) obstacleVolume(e entity.Entity) core.Box {
	col := g.cfg.Collision
	return e.Box().Shrink(col.ShrinkX/2, 0, col.ShrinkZ/2)
}

// avoided applies the obstacle-class avoidance rule for an intersecting
// obstacle: low obstacles are cleared only while jumping above the clearance
// threshold over the obstacle's base; high obstacles are passed only while
// sliding below the ceiling threshold.
func (g *Game) avoided(e entity.Entity) bool {
	switch e.Kind {
	case entity.KindLowObstacle:
		return g.player.Pose() == player.PoseJumping &&
			g.player.VerticalOffset() > e.BaseY+g.cfg.Collision.Clearance
	case entity.KindHighObstacle:
		return g.player.Pose() == player.PoseSliding &&
			g.player.VerticalOffset() < g.cfg.Collision.SlideCeiling
	default:
		return false
	}
}

// collect removes the entity, adds the fixed reward and notifies listeners.
func (g *Game) collect(e entity.Entity) {
	if !g.arena.Remove(e.ID) {
		return // Already gone this tick
	}
	g.score += g.cfg.Spawn.CoinReward
	g.sink.Play(audio.CueCollect)
	g.events.scoreUpdated(g.score)
}

// endRun freezes the simulation and reports the final score exactly once.
func (g *Game) endRun() {
	g.gameOver = true
	g.sink.Play(audio.CueCrash)
	if !g.finalReported {
		g.finalReported = true
		g.events.gameOver(g.score)
	}
}
