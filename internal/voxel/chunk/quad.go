package chunk

import "voxelspan.dev/internal/voxel/point"

// Quad describes one rectangular, axis-aligned face of a span: the block id
// it belongs to and the four corner points of that face, wound consistently
// (clockwise as seen from outside the cuboid) so a downstream mesher can
// assume one winding convention across a run.
type Quad struct {
	ID      uint16
	Corners [4]point.Point
}
