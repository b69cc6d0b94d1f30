package flavor

import (
	"context"
	"errors"
	"testing"
	"time"
)

type failingSource struct{}

func (failingSource) Tagline(context.Context) (string, error) {
	return "", errors.New("upstream unavailable")
}

type panickySource struct{}

func (panickySource) Tagline(context.Context) (string, error) {
	panic("collaborator bug")
}

type slowSource struct{}

func (slowSource) Tagline(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(10 * time.Second):
		return "too late", nil
	}
}

type okSource struct{ line string }

func (s okSource) Tagline(context.Context) (string, error) {
	return s.line, nil
}

func TestFetchUsesSource(t *testing.T) {
	got := Fetch(context.Background(), okSource{line: "custom"}, time.Second)
	if got != "custom" {
		t.Errorf("Fetch() = %q, expected the source line", got)
	}
}

func TestFetchFallsBackOnError(t *testing.T) {
	got := Fetch(context.Background(), failingSource{}, time.Second)
	if got == "" {
		t.Fatal("Fetch() returned empty on source failure")
	}
}

func TestFetchFallsBackOnPanic(t *testing.T) {
	got := Fetch(context.Background(), panickySource{}, time.Second)
	if got == "" {
		t.Fatal("Fetch() returned empty on source panic")
	}
}

func TestFetchFallsBackOnTimeout(t *testing.T) {
	start := time.Now()
	got := Fetch(context.Background(), slowSource{}, 50*time.Millisecond)
	if got == "" || got == "too late" {
		t.Fatalf("Fetch() = %q, expected fallback", got)
	}
	if time.Since(start) > 2*time.Second {
		t.Error("Fetch() did not honor its timeout")
	}
}

func TestFetchNilSource(t *testing.T) {
	if got := Fetch(context.Background(), nil, time.Second); got == "" {
		t.Fatal("Fetch() with nil source should use the fallback")
	}
}

func TestStaticNeverFails(t *testing.T) {
	s := NewStatic(42)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		line, err := s.Tagline(context.Background())
		if err != nil {
			t.Fatalf("Static Tagline() failed: %v", err)
		}
		if line == "" {
			t.Fatal("Static Tagline() returned empty")
		}
		seen[line] = true
	}
	if len(seen) < 2 {
		t.Error("Static source should rotate through lines")
	}
}
