// Package flavor supplies decorative game-over taglines. A remote text
// generator can plug in behind the Source interface; any failure there is
// isolated behind a static fallback and can never reach the simulation.
package flavor

import (
	"context"
	"math/rand"
	"time"
)

// Source produces a single tagline. Implementations may hit the network and
// must honor the context deadline.
type Source interface {
	Tagline(ctx context.Context) (string, error)
}

// fallbackLines are the built-in taglines used whenever no source is
// configured or the source fails.
var fallbackLines = []string{
	"The city never stops. Neither should you.",
	"Every run ends. The next one starts faster.",
	"Three lanes, one way forward.",
	"You tripped. The skyline didn't notice.",
	"Coins left behind are just motivation.",
}

// Static is a Source that rotates through the built-in lines.
type Static struct {
	rng *rand.Rand
}

// NewStatic creates a static source. Seed zero uses the current time.
func NewStatic(seed int64) *Static {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Static{rng: rand.New(rand.NewSource(seed))}
}

// Tagline implements Source and never fails.
func (s *Static) Tagline(context.Context) (string, error) {
	return fallbackLines[s.rng.Intn(len(fallbackLines))], nil
}

// Fetch resolves a tagline from src within the timeout, falling back to a
// built-in line on error, timeout, or panic. It never returns an empty
// string and never propagates a failure.
func Fetch(ctx context.Context, src Source, timeout time.Duration) (line string) {
	fallback := fallbackLines[0]

	defer func() {
		if recover() != nil {
			line = fallback
		}
	}()

	if src == nil {
		return fallback
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	got, err := src.Tagline(ctx)
	if err != nil || got == "" {
		return fallback
	}
	return got
}
