// Package world provides the toroidal battle board and its geometry.
package world

import "fmt"

const (
	// Default board dimensions
	DefaultWidth  = 30
	DefaultHeight = 20
)

// Position is a cell coordinate on the board.
// Positions produced by Size methods are always canonical (wrapped into range).
type Position struct {
	X, Y int
}

// String returns a human-readable coordinate.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size describes the board dimensions and owns all wrapped arithmetic.
// The board is a torus: leaving one edge re-enters on the opposite edge.
type Size struct {
	Width  int
	Height int
}

// DefaultSize returns the standard board dimensions.
func DefaultSize() Size {
	return Size{Width: DefaultWidth, Height: DefaultHeight}
}

// Cells returns the number of cells on the board.
func (s Size) Cells() int {
	return s.Width * s.Height
}

// Contains returns true if (x, y) is already in canonical range.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

// Wrap maps any integer coordinate onto the board.
func (s Size) Wrap(x, y int) Position {
	return Position{X: wrap(x, s.Width), Y: wrap(y, s.Height)}
}

// Index returns the flat cell index for a position (row-major).
func (s Size) Index(p Position) int {
	p = s.Wrap(p.X, p.Y)
	return p.X + p.Y*s.Width
}

// Add returns a + b, wrapped.
func (s Size) Add(a, b Position) Position {
	return s.Wrap(a.X+b.X, a.Y+b.Y)
}

// Sub returns a - b, wrapped.
func (s Size) Sub(a, b Position) Position {
	return s.Wrap(a.X-b.X, a.Y-b.Y)
}

// Distance returns the per-axis cyclic distance between a and b.
// Each axis is the shorter of the forward and backward walk.
// Callers combine the axes themselves (see Manhattan and Chebyshev).
func (s Size) Distance(a, b Position) Position {
	return Position{
		X: cyclicDistance(a.X, b.X, s.Width),
		Y: cyclicDistance(a.Y, b.Y, s.Height),
	}
}

// Manhattan returns the sum of the wrapped axis distances.
func (s Size) Manhattan(a, b Position) int {
	d := s.Distance(a, b)
	return d.X + d.Y
}

// Chebyshev returns the larger of the wrapped axis distances.
func (s Size) Chebyshev(a, b Position) int {
	d := s.Distance(a, b)
	return max(d.X, d.Y)
}

// Offset returns the signed shortest offset from a to b on each axis.
// Results lie in (-n/2, n/2]; on even axes the half-way point is positive.
func (s Size) Offset(a, b Position) (dx, dy int) {
	return signedOffset(a.X, b.X, s.Width), signedOffset(a.Y, b.Y, s.Height)
}

// Step returns the cell one step from p in direction d.
func (s Size) Step(p Position, d Direction) Position {
	dx, dy := d.Delta()
	return s.Wrap(p.X+dx, p.Y+dy)
}

// Positions returns every board position in row-major order.
func (s Size) Positions() []Position {
	out := make([]Position, 0, s.Cells())
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			out = append(out, Position{X: x, Y: y})
		}
	}
	return out
}

func wrap(v, n int) int {
	return (v%n + n) % n
}

func cyclicDistance(a, b, n int) int {
	forward := wrap(b-a, n)
	return min(forward, n-forward)
}

func signedOffset(a, b, n int) int {
	d := wrap(b-a, n)
	if d > n/2 {
		d -= n
	}
	return d
}
