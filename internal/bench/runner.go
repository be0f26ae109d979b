package bench

import (
	"fmt"
	"log"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"voxelspan.dev/internal/voxel/chunk"
	"voxelspan.dev/internal/voxel/point"
)

// Report summarizes one chunkbench run for the harness's human-readable
// output.
type Report struct {
	RunID       string
	Iterations  int
	FillWrites  time.Duration
	CarveWrites time.Duration
	Quads       int
	Stats       chunk.Stats
}

// Run drives a fixed scripted sequence against c: a full fill, then
// `iterations` single-cell carves scattered across the volume using a
// simple deterministic PRNG seeded by seed, timing each phase. The caller
// owns c and keeps it after Run returns, so the same chunk can be
// persisted or served live. Run never reaches into the chunk's span
// representation, only its public API.
func Run(logger *log.Logger, c *chunk.Chunk, seed int64, fillID uint16, iterations int) Report {
	runID := uuid.New().String()
	logger.Printf("run %s: seed=%d fill_id=%d iterations=%d", runID, seed, fillID, iterations)

	fillStart := time.Now()
	c.SetBlockSpan(point.New(0, 0, 0), point.New(15, 15, 15), fillID)
	fillElapsed := time.Since(fillStart)

	rng := newRNG(uint64(seed))
	carveStart := time.Now()
	for i := 0; i < iterations; i++ {
		x, y, z := int(rng.next()%16), int(rng.next()%16), int(rng.next()%16)
		c.SetBlock(point.New(x, y, z), 0)
	}
	carveElapsed := time.Since(carveStart)

	quads := c.GenerateQuads()
	stats := c.Stats()

	logger.Printf("fill: %s, carves: %s (%s/op), spans=%d quads=%d",
		fillElapsed, carveElapsed, humanize.Comma(int64(carveElapsed/timeOrOne(iterations))),
		stats.SpanCount, len(quads))

	return Report{
		RunID:       runID,
		Iterations:  iterations,
		FillWrites:  fillElapsed,
		CarveWrites: carveElapsed,
		Quads:       len(quads),
		Stats:       stats,
	}
}

func timeOrOne(n int) time.Duration {
	if n <= 0 {
		return 1
	}
	return time.Duration(n)
}

// String renders a report the way a human reads a benchmark summary.
func (r Report) String() string {
	return fmt.Sprintf(
		"run=%s iterations=%d fill=%s carve=%s spans=%d air_cells=%s quads=%d",
		r.RunID, r.Iterations, r.FillWrites, r.CarveWrites,
		r.Stats.SpanCount, humanize.Comma(int64(r.Stats.AirCells)), r.Quads,
	)
}

// splitmix64-based scatter PRNG: deterministic, allocation-free, and
// seedable, with no dependency needed for a driver-local scatter pattern.
type rng struct{ state uint64 }

func newRNG(seed uint64) *rng { return &rng{state: seed + 0x9e3779b97f4a7c15} }

func (r *rng) next() uint64 {
	r.state += 0x9e3779b97f4a7c15
	z := r.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
