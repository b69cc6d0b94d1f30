// Package track implements the world streamer: a rolling window of
// fixed-length segments generated ahead of the player and culled behind it.
// The active segment count stays bounded no matter how far the run goes.
package track

import (
	"github.com/Yanthir84/PawRun/internal/config"
	"github.com/Yanthir84/PawRun/internal/game/entity"
)

// Segment is a fixed-length slice of generated world along the forward axis.
// It owns the IDs of the entities spawned into it so culling a segment can
// clean up its attachments.
type Segment struct {
	ID       int
	Start    float64
	Length   float64
	Entities []entity.ID
}

// End returns the forward coordinate of the segment's trailing edge.
func (s Segment) End() float64 {
	return s.Start + s.Length
}

// SpawnFunc populates a freshly generated segment and returns the IDs of the
// entities it created.
type SpawnFunc func(start, length float64) []entity.ID

// Streamer maintains the segment window. The spawn boundary only ever moves
// forward, so the same depth range is never generated twice.
type Streamer struct {
	cfg       config.RunnerTrack
	spawn     SpawnFunc
	segments  []Segment
	nextID    int
	spawnedTo float64
}

// NewStreamer creates a streamer that calls spawn for each new segment.
func NewStreamer(cfg config.RunnerTrack, spawn SpawnFunc) *Streamer {
	return &Streamer{
		cfg:      cfg,
		spawn:    spawn,
		segments: make([]Segment, 0, 8),
	}
}

// Reset clears all segments and regenerates the initial window covering the
// look-ahead distance from depth zero.
func (s *Streamer) Reset() {
	s.segments = s.segments[:0]
	s.nextID = 0
	s.spawnedTo = 0
	for s.spawnedTo < s.cfg.LookAhead {
		s.generate()
	}
}

// Advance generates at most one new segment if the deepest generated boundary
// is within the look-ahead distance of the player. Returns true if a segment
// was generated.
func (s *Streamer) Advance(playerDepth float64) bool {
	if s.spawnedTo-playerDepth >= s.cfg.LookAhead {
		return false
	}
	s.generate()
	return true
}

// generate synthesizes one fixed-length segment immediately beyond the spawn
// boundary and triggers entity spawning for it.
func (s *Streamer) generate() {
	seg := Segment{
		ID:     s.nextID,
		Start:  s.spawnedTo,
		Length: s.cfg.SegmentLength,
	}
	if s.spawn != nil {
		seg.Entities = s.spawn(seg.Start, seg.Length)
	}
	s.nextID++
	s.spawnedTo = seg.End()
	s.segments = append(s.segments, seg)
}

// Cull removes all segments whose trailing edge has passed behind the player
// by the cull margin and returns them so the caller can release their
// attached entities.
func (s *Streamer) Cull(playerDepth float64) []Segment {
	threshold := playerDepth - s.cfg.CullMargin

	n := 0
	for n < len(s.segments) && s.segments[n].End() < threshold {
		n++
	}
	if n == 0 {
		return nil
	}

	culled := make([]Segment, n)
	copy(culled, s.segments[:n])
	s.segments = append(s.segments[:0], s.segments[n:]...)
	return culled
}

// Lagging reports whether generation has fallen behind player movement by
// more than one segment length, which signals a scheduler stall.
func (s *Streamer) Lagging(playerDepth float64) bool {
	return s.spawnedTo-playerDepth < s.cfg.LookAhead-s.cfg.SegmentLength
}

// Segments returns the active window, ordered by start depth.
func (s *Streamer) Segments() []Segment {
	return s.segments
}

// Len returns the number of active segments.
func (s *Streamer) Len() int {
	return len(s.segments)
}

// SpawnedTo returns the monotonic spawn boundary.
func (s *Streamer) SpawnedTo() float64 {
	return s.spawnedTo
}
