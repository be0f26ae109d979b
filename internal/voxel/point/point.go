// Package point implements the integer lattice coordinate used by spans and
// chunks: three components, each in [0,15].
package point

import "fmt"

// Max is the highest valid value for any component.
const Max = 15

// Point is a coordinate in the 16x16x16 chunk lattice.
type Point struct {
	X, Y, Z int
}

// New constructs a Point, panicking if any component falls outside [0,15].
// Range violations are programmer errors, not something a caller recovers
// from, so no value is returned on failure.
func New(x, y, z int) Point {
	if x < 0 || x > Max || y < 0 || y > Max || z < 0 || z > Max {
		panic(fmt.Sprintf("point: component out of range: (%d,%d,%d)", x, y, z))
	}
	return Point{X: x, Y: y, Z: z}
}

// Pack encodes the point into its 12-bit form: (x<<8)|(y<<4)|z.
func (p Point) Pack() uint16 {
	return uint16(p.X<<8 | p.Y<<4 | p.Z)
}

// Equal reports componentwise equality.
func (p Point) Equal(o Point) bool {
	return p.X == o.X && p.Y == o.Y && p.Z == o.Z
}

// Less orders points lexicographically on (x, z, y), the order the span
// comparison in package span builds on.
func (p Point) Less(o Point) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	if p.Z != o.Z {
		return p.Z < o.Z
	}
	return p.Y < o.Y
}

// Min returns the componentwise minimum of p and o.
func Min(p, o Point) Point {
	return Point{X: minInt(p.X, o.X), Y: minInt(p.Y, o.Y), Z: minInt(p.Z, o.Z)}
}

// MaxPoint returns the componentwise maximum of p and o.
func MaxPoint(p, o Point) Point {
	return Point{X: maxInt(p.X, o.X), Y: maxInt(p.Y, o.Y), Z: maxInt(p.Z, o.Z)}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Clamp bounds each component to [0,15].
func Clamp(x, y, z int) Point {
	return Point{X: clampAxis(x), Y: clampAxis(y), Z: clampAxis(z)}
}

func clampAxis(v int) int {
	if v < 0 {
		return 0
	}
	if v > Max {
		return Max
	}
	return v
}
