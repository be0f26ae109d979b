// Package span implements the cuboid span: a single bit-packed value
// describing an axis-aligned inclusive region of the chunk lattice, tagged
// with a block id and six per-face visibility bits.
package span

import (
	"fmt"

	"voxelspan.dev/internal/voxel/point"
)

// Face identifies one of the six faces of a span's cuboid.
type Face int

const (
	FaceUp Face = iota
	FaceDown
	FaceNorth
	FaceSouth
	FaceWest
	FaceEast
)

// bit positions within the packed geometry word, per the encoding table.
const (
	shiftStartX = 26
	shiftStartY = 22
	shiftStartZ = 18
	shiftEndX   = 14
	shiftEndY   = 10
	shiftEndZ   = 6

	axisMask = 0xF

	bitUp    = 1 << 5
	bitDown  = 1 << 4
	bitNorth = 1 << 3
	bitSouth = 1 << 2
	bitWest  = 1 << 1
	bitEast  = 1 << 0

	allFacesVisible = bitUp | bitDown | bitNorth | bitSouth | bitWest | bitEast
)

func faceBit(f Face) uint32 {
	switch f {
	case FaceUp:
		return bitUp
	case FaceDown:
		return bitDown
	case FaceNorth:
		return bitNorth
	case FaceSouth:
		return bitSouth
	case FaceWest:
		return bitWest
	case FaceEast:
		return bitEast
	default:
		panic(fmt.Sprintf("span: unknown face %d", f))
	}
}

// Ordering is the result of comparing two spans' start corners.
type Ordering int

const (
	Before Ordering = iota
	Overlap
	After
)

// Span is a single machine word (32-bit geometry + 16-bit id) describing an
// inclusive axis-aligned cuboid tagged with a block id.
type Span struct {
	id   uint16
	word uint32
}

// New constructs a span over [start,end] with all six faces visible.
// Precondition (programmer error if violated): start <= end componentwise.
func New(id uint16, start, end point.Point) Span {
	if start.X > end.X || start.Y > end.Y || start.Z > end.Z {
		panic(fmt.Sprintf("span: inverted region start=%+v end=%+v", start, end))
	}
	var w uint32
	w |= uint32(start.X&axisMask) << shiftStartX
	w |= uint32(start.Y&axisMask) << shiftStartY
	w |= uint32(start.Z&axisMask) << shiftStartZ
	w |= uint32(end.X&axisMask) << shiftEndX
	w |= uint32(end.Y&axisMask) << shiftEndY
	w |= uint32(end.Z&axisMask) << shiftEndZ
	w |= allFacesVisible
	return Span{id: id, word: w}
}

// ID returns the span's block identifier.
func (s Span) ID() uint16 { return s.id }

// EncodeWord returns the raw 32-bit geometry+visibility word, exposed
// explicitly (rather than left implicit) for callers such as a snapshot
// codec that need the packed representation itself, per the shift-and-mask
// constants documented at the top of this file.
func EncodeWord(s Span) uint32 { return s.word }

// DecodeWord reconstructs a Span from a raw geometry+visibility word and an
// id, the inverse of EncodeWord. The word is trusted as-is: unlike New, it
// makes no check that start <= end.
func DecodeWord(id uint16, word uint32) Span {
	return Span{id: id, word: word}
}

// Start returns the inclusive minimum corner.
func (s Span) Start() point.Point {
	return point.Point{
		X: int((s.word >> shiftStartX) & axisMask),
		Y: int((s.word >> shiftStartY) & axisMask),
		Z: int((s.word >> shiftStartZ) & axisMask),
	}
}

// End returns the inclusive maximum corner.
func (s Span) End() point.Point {
	return point.Point{
		X: int((s.word >> shiftEndX) & axisMask),
		Y: int((s.word >> shiftEndY) & axisMask),
		Z: int((s.word >> shiftEndZ) & axisMask),
	}
}

// Visible reports whether the given face's bit is set.
func (s Span) Visible(f Face) bool {
	return s.word&faceBit(f) != 0
}

// SetVisible sets or clears the given face's bit.
func (s *Span) SetVisible(f Face, v bool) {
	if v {
		s.word |= faceBit(f)
	} else {
		s.word &^= faceBit(f)
	}
}

// Contains reports whether p lies within the span's cuboid, all axes
// inclusive.
func (s Span) Contains(p point.Point) bool {
	start, end := s.Start(), s.End()
	return start.X <= p.X && p.X <= end.X &&
		start.Y <= p.Y && p.Y <= end.Y &&
		start.Z <= p.Z && p.Z <= end.Z
}

// Intersects reports whether the two cuboids overlap on all three axes.
func (s Span) Intersects(o Span) bool {
	as, ae := s.Start(), s.End()
	bs, be := o.Start(), o.End()
	return as.X <= be.X && bs.X <= ae.X &&
		as.Y <= be.Y && bs.Y <= ae.Y &&
		as.Z <= be.Z && bs.Z <= ae.Z
}

// CanMerge reports whether s and o share the same id and are face-adjacent
// on exactly one axis while coinciding on the other two.
func (s Span) CanMerge(o Span) bool {
	if s.id != o.id {
		return false
	}
	as, ae := s.Start(), s.End()
	bs, be := o.Start(), o.End()

	adjX := ae.X+1 == bs.X || be.X+1 == as.X
	adjY := ae.Y+1 == bs.Y || be.Y+1 == as.Y
	adjZ := ae.Z+1 == bs.Z || be.Z+1 == as.Z

	sameYZ := as.Y == bs.Y && ae.Y == be.Y && as.Z == bs.Z && ae.Z == be.Z
	sameXZ := as.X == bs.X && ae.X == be.X && as.Z == bs.Z && ae.Z == be.Z
	sameXY := as.X == bs.X && ae.X == be.X && as.Y == bs.Y && ae.Y == be.Y

	if adjX && sameYZ {
		return true
	}
	if adjY && sameXZ {
		return true
	}
	if adjZ && sameXY {
		return true
	}
	return false
}

// Compare orders two spans lexicographically on their start corners, using
// the (x, z, y) axis order. Equal starts yield Overlap. The chunk package
// keeps its spans unordered and does not call Compare; no invariant relies
// on this ordering.
func (s Span) Compare(o Span) Ordering {
	as, bs := s.Start(), o.Start()
	if as.Equal(bs) {
		return Overlap
	}
	if as.Less(bs) {
		return Before
	}
	return After
}

// MergeResult models the "did a merge happen" outcome as a sum type rather
// than folding it into a sentinel span value that callers would have to
// know to check for.
type MergeResult struct {
	span   Span
	merged bool
}

// Merged reports whether a merge took place, and if so the resulting span.
func (r MergeResult) Merged() (Span, bool) { return r.span, r.merged }

// TryMerge returns the merged span if a and b can merge, or a "no merge"
// result otherwise. It never mutates a or b.
func TryMerge(a, b Span) MergeResult {
	if !a.CanMerge(b) {
		return MergeResult{}
	}
	merged := a
	merged.merge(b)
	return MergeResult{span: merged, merged: true}
}

// Merge fuses o into s in place. Precondition: s.CanMerge(o).
// Visibility bits are left as in the receiver; the mesher recomputes
// visibility rather than merge maintaining it incrementally.
func (s *Span) Merge(o Span) {
	if !s.CanMerge(o) {
		panic("span: Merge called on a non-mergeable pair")
	}
	s.merge(o)
}

func (s *Span) merge(o Span) {
	start := point.Min(s.Start(), o.Start())
	end := point.MaxPoint(s.End(), o.End())
	visible := s.word & allFacesVisible
	*s = New(s.id, start, end)
	s.word = (s.word &^ allFacesVisible) | visible
}

// Expand returns a copy of s with start decreased and end increased by one
// on each axis, clamped to [0,15]. Visibility bits are preserved.
func (s Span) Expand() Span {
	start, end := s.Start(), s.End()
	newStart := point.Clamp(start.X-1, start.Y-1, start.Z-1)
	newEnd := point.Clamp(end.X+1, end.Y+1, end.Z+1)
	out := New(s.id, newStart, newEnd)
	out.word = (out.word &^ allFacesVisible) | (s.word & allFacesVisible)
	return out
}

// Split returns the minimal axis-aligned decomposition of s \ exclude into
// at most six cuboids, in the fixed order west, east, north, south, up,
// down. Each remainder inherits s's id and is born with all faces visible.
// Split must not be called when exclude does not intersect s.
func (s Span) Split(exclude Span) []Span {
	a := s
	e := exclude
	as, ae := a.Start(), a.End()
	es, ee := e.Start(), e.End()
	// Clip exclude to s so that every remainder stays inside s even when
	// exclude extends beyond it.
	es = point.MaxPoint(es, as)
	ee = point.Min(ee, ae)

	var out []Span

	// west
	if as.X < es.X {
		out = append(out, New(a.id, as, point.New(es.X-1, ae.Y, ae.Z)))
	}
	// east
	if ae.X > ee.X {
		out = append(out, New(a.id, point.New(ee.X+1, as.Y, as.Z), ae))
	}
	// north
	if ae.Z > ee.Z {
		out = append(out, New(a.id, point.New(es.X, as.Y, ee.Z+1), point.New(ee.X, ae.Y, ae.Z)))
	}
	// south
	if as.Z < es.Z {
		out = append(out, New(a.id, point.New(es.X, as.Y, as.Z), point.New(ee.X, ae.Y, es.Z-1)))
	}
	// up
	if ae.Y > ee.Y {
		out = append(out, New(a.id, point.New(es.X, ee.Y+1, es.Z), point.New(ee.X, ae.Y, ee.Z)))
	}
	// down
	if as.Y < es.Y {
		out = append(out, New(a.id, point.New(es.X, as.Y, es.Z), point.New(ee.X, es.Y-1, ee.Z)))
	}

	return out
}
