package chunk

import (
	"voxelspan.dev/internal/voxel/point"
	"voxelspan.dev/internal/voxel/span"
)

var allFaces = [6]span.Face{
	span.FaceUp, span.FaceDown, span.FaceNorth, span.FaceSouth, span.FaceWest, span.FaceEast,
}

// GenerateQuads is the mesher interface: it returns one quad per visible
// face of every stored span. Visibility bits are recomputed from the
// current span set before quads are emitted (see RecomputeVisibility)
// rather than trusted from whatever a prior split or merge left them as,
// since mesh-facing state should never be a stale source of truth.
func (c *Chunk) GenerateQuads() []Quad {
	c.RecomputeVisibility()

	var quads []Quad
	for _, s := range c.spans {
		for _, f := range allFaces {
			if !s.Visible(f) {
				continue
			}
			quads = append(quads, Quad{ID: s.ID(), Corners: faceCorners(s, f)})
		}
	}
	return quads
}

// RecomputeVisibility recomputes each span's six visibility bits from the
// current span set: a face is exposed (visible) if any cell immediately
// beyond it is air or lies outside the chunk, and occluded only when every
// cell beyond it is covered by another span.
func (c *Chunk) RecomputeVisibility() {
	for i, s := range c.spans {
		for _, f := range allFaces {
			s.SetVisible(f, c.faceExposed(s, f))
		}
		c.spans[i] = s
	}
}

func (c *Chunk) faceExposed(s span.Span, f span.Face) bool {
	start, end := s.Start(), s.End()
	switch f {
	case span.FaceUp:
		if end.Y == point.Max {
			return true
		}
		return c.anyAirIn(start.X, end.X, end.Y+1, end.Y+1, start.Z, end.Z)
	case span.FaceDown:
		if start.Y == 0 {
			return true
		}
		return c.anyAirIn(start.X, end.X, start.Y-1, start.Y-1, start.Z, end.Z)
	case span.FaceNorth:
		if end.Z == point.Max {
			return true
		}
		return c.anyAirIn(start.X, end.X, start.Y, end.Y, end.Z+1, end.Z+1)
	case span.FaceSouth:
		if start.Z == 0 {
			return true
		}
		return c.anyAirIn(start.X, end.X, start.Y, end.Y, start.Z-1, start.Z-1)
	case span.FaceWest:
		if start.X == 0 {
			return true
		}
		return c.anyAirIn(start.X-1, start.X-1, start.Y, end.Y, start.Z, end.Z)
	case span.FaceEast:
		if end.X == point.Max {
			return true
		}
		return c.anyAirIn(end.X+1, end.X+1, start.Y, end.Y, start.Z, end.Z)
	default:
		return false
	}
}

// anyAirIn reports whether any cell in the inclusive box [x0,x1]x[y0,y1]x[z0,z1]
// reads air. The box is a thin one-cell-deep slab in every caller.
func (c *Chunk) anyAirIn(x0, x1, y0, y1, z0, z1 int) bool {
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			for z := z0; z <= z1; z++ {
				if c.GetBlock(point.New(x, y, z)) == 0 {
					return true
				}
			}
		}
	}
	return false
}

// faceCorners returns the four corners of the given face of s, in a fixed
// clockwise-from-outside winding.
func faceCorners(s span.Span, f span.Face) [4]point.Point {
	start, end := s.Start(), s.End()
	switch f {
	case span.FaceUp:
		return [4]point.Point{
			point.New(start.X, end.Y, start.Z),
			point.New(end.X, end.Y, start.Z),
			point.New(end.X, end.Y, end.Z),
			point.New(start.X, end.Y, end.Z),
		}
	case span.FaceDown:
		return [4]point.Point{
			point.New(start.X, start.Y, start.Z),
			point.New(start.X, start.Y, end.Z),
			point.New(end.X, start.Y, end.Z),
			point.New(end.X, start.Y, start.Z),
		}
	case span.FaceNorth:
		return [4]point.Point{
			point.New(start.X, start.Y, end.Z),
			point.New(start.X, end.Y, end.Z),
			point.New(end.X, end.Y, end.Z),
			point.New(end.X, start.Y, end.Z),
		}
	case span.FaceSouth:
		return [4]point.Point{
			point.New(start.X, start.Y, start.Z),
			point.New(end.X, start.Y, start.Z),
			point.New(end.X, end.Y, start.Z),
			point.New(start.X, end.Y, start.Z),
		}
	case span.FaceWest:
		return [4]point.Point{
			point.New(start.X, start.Y, start.Z),
			point.New(start.X, end.Y, start.Z),
			point.New(start.X, end.Y, end.Z),
			point.New(start.X, start.Y, end.Z),
		}
	case span.FaceEast:
		return [4]point.Point{
			point.New(end.X, start.Y, start.Z),
			point.New(end.X, start.Y, end.Z),
			point.New(end.X, end.Y, end.Z),
			point.New(end.X, end.Y, start.Z),
		}
	default:
		return [4]point.Point{}
	}
}
