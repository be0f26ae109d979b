package chunk

import (
	"testing"

	"voxelspan.dev/internal/voxel/point"
)

func p(x, y, z int) point.Point { return point.New(x, y, z) }

func TestSplitToSix(t *testing.T) {
	c := New()
	c.SetBlockSpan(p(0, 0, 0), p(15, 15, 15), 1)
	c.SetBlock(p(7, 7, 7), 0)

	if got := c.DebugTotalSpans(); got != 6 {
		t.Fatalf("DebugTotalSpans() = %d, want 6", got)
	}
	if got := c.GetBlock(p(7, 7, 7)); got != 0 {
		t.Fatalf("GetBlock(7,7,7) = %d, want 0", got)
	}
	if got := c.GetBlock(p(0, 0, 0)); got != 1 {
		t.Fatalf("GetBlock(0,0,0) = %d, want 1", got)
	}
}

func TestRestoreMerges(t *testing.T) {
	c := New()
	c.SetBlockSpan(p(0, 0, 0), p(15, 15, 15), 1)
	c.SetBlock(p(7, 7, 7), 0)
	c.SetBlock(p(7, 7, 7), 1)

	if got := c.DebugTotalSpans(); got != 1 {
		t.Fatalf("DebugTotalSpans() = %d, want 1", got)
	}
	if got := c.GetBlock(p(7, 7, 7)); got != 1 {
		t.Fatalf("GetBlock(7,7,7) = %d, want 1", got)
	}
}

func TestPointReads(t *testing.T) {
	c := New()
	written := []point.Point{
		p(0, 0, 0), p(1, 0, 0), p(15, 15, 15), p(15, 15, 14),
		p(15, 14, 15), p(15, 14, 14), p(4, 4, 4), p(7, 7, 7),
	}
	for _, pt := range written {
		c.SetBlock(pt, 1)
	}
	isWritten := func(pt point.Point) bool {
		for _, w := range written {
			if w.Equal(pt) {
				return true
			}
		}
		return false
	}
	for x := 0; x <= 15; x++ {
		for y := 0; y <= 15; y++ {
			for z := 0; z <= 15; z++ {
				pt := p(x, y, z)
				want := uint16(0)
				if isWritten(pt) {
					want = 1
				}
				if got := c.GetBlock(pt); got != want {
					t.Fatalf("GetBlock(%d,%d,%d) = %d, want %d", x, y, z, got, want)
				}
			}
		}
	}
}

func TestFullFillRead(t *testing.T) {
	c := New()
	c.SetBlockSpan(p(0, 0, 0), p(15, 15, 15), 5)
	for x := 0; x <= 15; x++ {
		for y := 0; y <= 15; y++ {
			for z := 0; z <= 15; z++ {
				if got := c.GetBlock(p(x, y, z)); got != 5 {
					t.Fatalf("GetBlock(%d,%d,%d) = %d, want 5", x, y, z, got)
				}
			}
		}
	}
}

func TestLineErase(t *testing.T) {
	c := New()
	c.SetBlockSpan(p(0, 0, 0), p(15, 15, 15), 9)
	c.RemoveBlockSpan(p(0, 5, 5), p(15, 5, 5))

	if got := c.GetBlock(p(0, 0, 0)); got != 9 {
		t.Fatalf("GetBlock(0,0,0) = %d, want 9", got)
	}
	if got := c.GetBlock(p(15, 15, 15)); got != 9 {
		t.Fatalf("GetBlock(15,15,15) = %d, want 9", got)
	}
	for x := 0; x <= 15; x++ {
		if got := c.GetBlock(p(x, 5, 5)); got != 0 {
			t.Fatalf("GetBlock(%d,5,5) = %d, want 0", x, got)
		}
	}
}

func TestQuadCount(t *testing.T) {
	c := New()
	c.SetBlockSpan(p(0, 0, 0), p(15, 15, 15), 1)
	if got := len(c.GenerateQuads()); got != 6 {
		t.Fatalf("GenerateQuads() = %d quads, want 6", got)
	}

	c.SetBlock(p(7, 7, 7), 0)
	if got := len(c.GenerateQuads()); got != 24 {
		t.Fatalf("GenerateQuads() = %d quads, want 24", got)
	}
}

func TestIdempotentIdenticalFill(t *testing.T) {
	c := New()
	c.SetBlockSpan(p(2, 2, 2), p(6, 6, 6), 3)
	first := c.DebugTotalSpans()
	c.SetBlockSpan(p(2, 2, 2), p(6, 6, 6), 3)
	if got := c.DebugTotalSpans(); got != first {
		t.Fatalf("re-applying identical fill changed span count: %d -> %d", first, got)
	}
	if got := c.GetBlock(p(4, 4, 4)); got != 3 {
		t.Fatalf("GetBlock(4,4,4) = %d, want 3", got)
	}
}

func TestFillThenEraseInverse(t *testing.T) {
	c := New()
	c.SetBlock(p(1, 1, 1), 7)
	c.SetBlockSpan(p(3, 3, 3), p(6, 6, 6), 2)
	c.SetBlockSpan(p(3, 3, 3), p(6, 6, 6), 0)

	for x := 3; x <= 6; x++ {
		for y := 3; y <= 6; y++ {
			for z := 3; z <= 6; z++ {
				if got := c.GetBlock(p(x, y, z)); got != 0 {
					t.Fatalf("GetBlock(%d,%d,%d) = %d, want 0 after erase", x, y, z, got)
				}
			}
		}
	}
	if got := c.GetBlock(p(1, 1, 1)); got != 7 {
		t.Fatalf("GetBlock(1,1,1) = %d, want 7 (unaffected by unrelated erase)", got)
	}
}

func TestWriteAirOnEmptyChunkIsNoop(t *testing.T) {
	c := New()
	c.SetBlock(p(0, 0, 0), 0)
	if got := c.DebugTotalSpans(); got != 0 {
		t.Fatalf("writing air to an empty chunk created %d spans, want 0", got)
	}
}

func TestSinglePlaneWrite(t *testing.T) {
	c := New()
	c.SetBlockSpan(p(0, 4, 0), p(15, 4, 15), 8)
	if got := c.GetBlock(p(7, 4, 7)); got != 8 {
		t.Fatalf("GetBlock(7,4,7) = %d, want 8", got)
	}
	if got := c.GetBlock(p(7, 3, 7)); got != 0 {
		t.Fatalf("GetBlock(7,3,7) = %d, want 0", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := New()
	c.SetBlockSpan(p(0, 0, 0), p(3, 3, 3), 4)
	clone := c.Clone()

	clone.SetBlock(p(0, 0, 0), 0)
	if got := c.GetBlock(p(0, 0, 0)); got != 4 {
		t.Fatalf("mutating the clone affected the original: GetBlock(0,0,0) = %d, want 4", got)
	}
	if got := clone.GetBlock(p(0, 0, 0)); got != 0 {
		t.Fatalf("clone did not observe its own write: GetBlock(0,0,0) = %d, want 0", got)
	}
}

func TestRemoveAllBlocks(t *testing.T) {
	c := New()
	c.SetBlockSpan(p(0, 0, 0), p(15, 15, 15), 1)
	c.RemoveAllBlocks()
	if got := c.DebugTotalSpans(); got != 0 {
		t.Fatalf("DebugTotalSpans() = %d, want 0 after RemoveAllBlocks", got)
	}
	if got := c.GetBlock(p(0, 0, 0)); got != 0 {
		t.Fatalf("GetBlock(0,0,0) = %d, want 0 after RemoveAllBlocks", got)
	}
}

func TestStats(t *testing.T) {
	c := New()
	c.SetBlockSpan(p(0, 0, 0), p(15, 15, 15), 1)
	st := c.Stats()
	if st.SpanCount != 1 {
		t.Fatalf("SpanCount = %d, want 1", st.SpanCount)
	}
	if st.OccupiedCells != 16*16*16 {
		t.Fatalf("OccupiedCells = %d, want %d", st.OccupiedCells, 16*16*16)
	}
	if st.AirCells != 0 {
		t.Fatalf("AirCells = %d, want 0", st.AirCells)
	}
}
