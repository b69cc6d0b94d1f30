// Package audio defines the fire-and-forget cue boundary between the
// simulation and an external audio collaborator. The simulation emits
// discrete cues and never consumes a return value, so a slow or broken
// sink cannot affect the run.
package audio

import "io"

// Cue identifies a discrete audio event.
type Cue int

const (
	CueJump Cue = iota
	CueSlide
	CueCollect
	CueCrash
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueSlide:
		return "slide"
	case CueCollect:
		return "collect"
	case CueCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// Sink receives cues. Implementations must not block.
type Sink interface {
	Play(c Cue)
}

// NullSink discards all cues.
type NullSink struct{}

// Play implements Sink.
func (NullSink) Play(Cue) {}

// BellSink rings the terminal bell on a crash and stays silent otherwise.
// Write errors are ignored; cues are fire-and-forget.
type BellSink struct {
	W io.Writer
}

// Play implements Sink.
func (s BellSink) Play(c Cue) {
	if s.W == nil || c != CueCrash {
		return
	}
	s.W.Write([]byte{'\a'}) //nolint:errcheck // Best-effort, no feedback path
}

// Recorder captures cues in order for tests.
type Recorder struct {
	Cues []Cue
}

// Play implements Sink.
func (r *Recorder) Play(c Cue) {
	r.Cues = append(r.Cues, c)
}

// Count returns how many times the given cue was played.
func (r *Recorder) Count(c Cue) int {
	n := 0
	for _, got := range r.Cues {
		if got == c {
			n++
		}
	}
	return n
}
