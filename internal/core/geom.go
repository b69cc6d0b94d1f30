// Package core provides fundamental types and utilities for the runner
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned screen-space rectangle used for drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is an axis-aligned world-space volume used for collision detection.
// X runs across the lanes, Y is vertical (0 = ground), Z is the forward axis.
type Box struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// NewBox builds a box from a center (x, z) and a base height y.
// The box spans [y, y+h] vertically and is centered on x and z.
func NewBox(x, y, z, w, h, d float64) Box {
	return Box{
		MinX: x - w/2, MaxX: x + w/2,
		MinY: y, MaxY: y + h,
		MinZ: z - d/2, MaxZ: z + d/2,
	}
}

// Shrink returns a copy of the box contracted inward by the given margins on
// each axis. A margin larger than the half-extent collapses that axis to its
// center, which never intersects anything.
func (b Box) Shrink(mx, my, mz float64) Box {
	out := b
	out.MinX += mx
	out.MaxX -= mx
	out.MinY += my
	out.MaxY -= my
	out.MinZ += mz
	out.MaxZ -= mz
	if out.MinX > out.MaxX {
		c := (b.MinX + b.MaxX) / 2
		out.MinX, out.MaxX = c, c
	}
	if out.MinY > out.MaxY {
		c := (b.MinY + b.MaxY) / 2
		out.MinY, out.MaxY = c, c
	}
	if out.MinZ > out.MaxZ {
		c := (b.MinZ + b.MaxZ) / 2
		out.MinZ, out.MaxZ = c, c
	}
	return out
}

// Intersects reports overlap with another box on all three axes.
func (b Box) Intersects(other Box) bool {
	if b.MinX >= other.MaxX || other.MinX >= b.MaxX {
		return false
	}
	if b.MinY >= other.MaxY || other.MinY >= b.MaxY {
		return false
	}
	if b.MinZ >= other.MaxZ || other.MinZ >= b.MaxZ {
		return false
	}
	return true
}

// Ease moves current toward target with exponential smoothing. The rate is
// the smoothing factor in 1/seconds; dt is the tick duration in seconds.
// Convergence time is bounded and the result never overshoots the target.
func Ease(current, target, rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 {
		return current
	}
	return target + (current-target)*math.Exp(-rate*dt)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
