// Package chunk implements the cuboid-span chunk: a 16x16x16 voxel volume
// stored as an unordered collection of axis-aligned cuboid spans, with the
// split/merge algebra from package span maintaining the collection under
// point and range writes.
package chunk

import (
	"voxelspan.dev/internal/voxel/point"
	"voxelspan.dev/internal/voxel/span"
)

// Chunk is an unordered sequence of spans covering a 16x16x16 lattice. The
// zero value is an empty chunk, the same value New returns.
type Chunk struct {
	spans []span.Span
}

// New returns an empty chunk (all cells air).
func New() *Chunk {
	return &Chunk{}
}

// GetBlock scans the span collection and returns the id of the first span
// containing p, or 0 (air) if none does. The non-overlap invariant means at
// most one span can ever contain a given cell.
func (c *Chunk) GetBlock(p point.Point) uint16 {
	for _, s := range c.spans {
		if s.Contains(p) {
			return s.ID()
		}
	}
	return 0
}

// SetBlock writes a single cell.
func (c *Chunk) SetBlock(p point.Point, id uint16) {
	c.SetBlockSpan(p, p, id)
}

// RemoveBlock writes 0 (air) to a single cell.
func (c *Chunk) RemoveBlock(p point.Point) {
	c.SetBlockSpan(p, p, 0)
}

// RemoveBlockSpan writes 0 (air) over an inclusive rectangular region.
func (c *Chunk) RemoveBlockSpan(start, end point.Point) {
	c.SetBlockSpan(start, end, 0)
}

// SetBlockSpan is the chunk's canonical write. It splits every existing span
// that overlaps [start,end], drops the writer entirely if id is 0 (a pure
// erase), otherwise inserts the writer and merges it with adjacent
// same-id, extent-compatible spans until no further merge applies.
func (c *Chunk) SetBlockSpan(start, end point.Point, id uint16) {
	w := span.New(id, start, end)

	// Split pass: operate over a snapshot of the current spans so that the
	// remainder cuboids produced by one split are never themselves tested
	// against the writer again (they cannot intersect it by construction).
	kept := make([]span.Span, 0, len(c.spans))
	for _, s := range c.spans {
		if s.Intersects(w) {
			kept = append(kept, s.Split(w)...)
		} else {
			kept = append(kept, s)
		}
	}
	c.spans = kept

	if id == 0 {
		return
	}

	// Insert.
	c.spans = append(c.spans, w)
	widx := len(c.spans) - 1

	// Merge pass: worklist seeded with the writer, restarting after every
	// successful merge until a full scan finds no candidate.
	for {
		mergedAny := false
		for i := range c.spans {
			if i == widx {
				continue
			}
			result := span.TryMerge(c.spans[widx], c.spans[i])
			merged, ok := result.Merged()
			if !ok {
				continue
			}
			c.spans[widx] = merged
			c.removeAt(i)
			if i < widx {
				widx--
			}
			mergedAny = true
			break
		}
		if !mergedAny {
			break
		}
	}
}

// removeAt drops the span at index i, preserving the relative order of the
// remaining elements so callers tracking an index (the merge pass's writer
// slot) can adjust it with a simple comparison.
func (c *Chunk) removeAt(i int) {
	c.spans = append(c.spans[:i], c.spans[i+1:]...)
}

// RemoveAllBlocks empties the chunk.
func (c *Chunk) RemoveAllBlocks() {
	c.spans = nil
}

// Clone produces an independent chunk with the same logical contents. The
// clone is built by re-inserting every span through the normal write path,
// so its span set may differ in structure (but never in per-cell value)
// from the receiver's.
func (c *Chunk) Clone() *Chunk {
	out := New()
	for _, s := range c.spans {
		out.SetBlockSpan(s.Start(), s.End(), s.ID())
	}
	return out
}

// DebugTotalSpans returns the current number of stored spans.
func (c *Chunk) DebugTotalSpans() int {
	return len(c.spans)
}

// Stats summarizes the chunk's span set for diagnostic reporting.
type Stats struct {
	SpanCount    int
	OccupiedCells int
	AirCells     int
	MaxSpanCells int
	MinSpanCells int
}

// Stats computes lightweight introspection numbers a driver/harness would
// want in a human-readable report.
func (c *Chunk) Stats() Stats {
	const totalCells = 16 * 16 * 16
	st := Stats{SpanCount: len(c.spans)}
	for i, s := range c.spans {
		vol := cellVolume(s)
		st.OccupiedCells += vol
		if i == 0 || vol > st.MaxSpanCells {
			st.MaxSpanCells = vol
		}
		if i == 0 || vol < st.MinSpanCells {
			st.MinSpanCells = vol
		}
	}
	st.AirCells = totalCells - st.OccupiedCells
	return st
}

func cellVolume(s span.Span) int {
	start, end := s.Start(), s.End()
	return (end.X - start.X + 1) * (end.Y - start.Y + 1) * (end.Z - start.Z + 1)
}
