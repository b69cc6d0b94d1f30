package entity

import (
	"math/rand"

	"github.com/Yanthir84/PawRun/internal/config"
)

// Entity extents relative to the lane width. Collidables cover most of their
// lane; the hanging bar's underside sits just above slide height.
const (
	coinSize      = 0.6
	coinBaseY     = 0.4
	lowHeight     = 0.8
	lowDepth      = 0.8
	highHeight    = 1.2
	highBaseY     = 0.8
	highDepth     = 0.6
	laneCoverage  = 0.8 // Obstacle width as a fraction of lane width
	sceneryWidth  = 0.8
	sceneryHeight = 2.5
	sceneryDepth  = 1.0
	flankFactor   = 2.5 // Scenery offset from center, in lane widths
)

// Spawner populates newly generated segments with entities. Its random source
// is injectable (seeded) so spawn sequences are reproducible under test.
type Spawner struct {
	rng       *rand.Rand
	cfg       config.RunnerSpawn
	laneWidth float64
	arena     *Arena
}

// NewSpawner creates a spawner writing into the given arena.
func NewSpawner(seed int64, cfg config.RunnerSpawn, laneWidth float64, arena *Arena) *Spawner {
	return &Spawner{
		rng:       rand.New(rand.NewSource(seed)),
		cfg:       cfg,
		laneWidth: laneWidth,
		arena:     arena,
	}
}

// Reset reseeds the random source, restarting the spawn sequence.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Populate spawns entities for a segment covering [start, start+length) and
// returns their IDs so the segment can own their cleanup.
func (s *Spawner) Populate(start, length float64) []ID {
	var ids []ID

	if s.rng.Float64() < s.cfg.ObstacleChance {
		// 1-2 distinct lanes, shuffled
		count := 1 + s.rng.Intn(2)
		lanes := s.rng.Perm(LaneCount)[:count]
		for _, lane := range lanes {
			// Keep collidables away from segment seams
			depth := start + length*(0.25+0.5*s.rng.Float64())
			ids = append(ids, s.spawnCollidable(lane, depth))
		}
	}

	if s.rng.Float64() < s.cfg.SceneryChance {
		mid := start + length/2
		flank := s.laneWidth * flankFactor
		ids = append(ids,
			s.insertScenery(-flank, mid),
			s.insertScenery(flank, mid),
		)
	}

	return ids
}

// spawnCollidable draws the uniform type roll and maps it into the configured
// bands: collectible (low band), low obstacle (mid band), high obstacle
// (remaining band).
func (s *Spawner) spawnCollidable(lane int, depth float64) ID {
	roll := s.rng.Float64()
	x := LaneOffset(lane, s.laneWidth)

	e := Entity{
		Lane:  lane,
		X:     x,
		Depth: depth,
	}

	switch {
	case roll < s.cfg.CollectibleBand:
		e.Kind = KindCollectible
		e.W, e.H, e.D = coinSize, coinSize, coinSize
		e.BaseY = coinBaseY
	case roll < s.cfg.LowBand:
		e.Kind = KindLowObstacle
		e.W, e.H, e.D = s.laneWidth*laneCoverage, lowHeight, lowDepth
		e.BaseY = 0
	default:
		e.Kind = KindHighObstacle
		e.W, e.H, e.D = s.laneWidth*laneCoverage, highHeight, highDepth
		e.BaseY = highBaseY
	}

	return s.arena.Insert(e)
}

func (s *Spawner) insertScenery(x, depth float64) ID {
	return s.arena.Insert(Entity{
		Kind:  KindScenery,
		Lane:  -1,
		X:     x,
		Depth: depth,
		W:     sceneryWidth,
		H:     sceneryHeight,
		D:     sceneryDepth,
	})
}
