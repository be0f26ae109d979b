// Package snapshot exports/imports a chunk's span list as a versioned,
// zstd-compressed binary record using github.com/klauspost/compress/zstd.
// The core chunk package has no persistence of its own; this lives
// entirely in the bench/harness layer that consumes it through its
// public API.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"voxelspan.dev/internal/voxel/chunk"
	"voxelspan.dev/internal/voxel/point"
	"voxelspan.dev/internal/voxel/span"
)

// Version identifies the binary record layout below.
const Version = 1

// spanRecord is the on-disk shape of one span: a 32-bit geometry word plus
// a 16-bit id, mirroring the in-memory encoding from package span exactly.
type spanRecord struct {
	Word uint32
	ID   uint16
}

// Encode serializes c's contents, as a span list rebuilt from its cells by
// exportSpans, into a zstd-compressed binary blob: a 4-byte version, a
// 4-byte span count, then one 6-byte record per span.
func Encode(c *chunk.Chunk) ([]byte, error) {
	spans := exportSpans(c)

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, uint32(Version)); err != nil {
		return nil, err
	}
	if err := binary.Write(&buf, binary.LittleEndian, uint32(len(spans))); err != nil {
		return nil, err
	}
	for _, r := range spans {
		if err := binary.Write(&buf, binary.LittleEndian, r); err != nil {
			return nil, err
		}
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(buf.Bytes(), nil), nil
}

// Decode rebuilds a chunk from a blob produced by Encode, replaying every
// span through chunk.SetBlockSpan so the rebuilt chunk goes through the
// same split/merge path any other write would.
func Decode(blob []byte) (*chunk.Chunk, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(blob, nil)
	if err != nil {
		return nil, fmt.Errorf("snapshot: decompress: %w", err)
	}

	r := bytes.NewReader(raw)
	var version, count uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("snapshot: read version: %w", err)
	}
	if version != Version {
		return nil, fmt.Errorf("snapshot: unsupported version %d", version)
	}
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("snapshot: read span count: %w", err)
	}

	c := chunk.New()
	for i := uint32(0); i < count; i++ {
		var rec spanRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("snapshot: truncated span record %d of %d", i, count)
			}
			return nil, err
		}
		s := span.DecodeWord(rec.ID, rec.Word)
		c.SetBlockSpan(s.Start(), s.End(), s.ID())
	}
	return c, nil
}

// exportSpans rebuilds c's span list from its cell contents. The chunk
// package exposes no span iterator, so the snapshot layer works the same
// way any external reader must: from the boundaries GetBlock exposes. It
// clones the chunk (logically equivalent to the original) and drains the
// clone through a single flood-fill-by-span pass.
func exportSpans(c *chunk.Chunk) []spanRecord {
	src := c.Clone()
	var out []spanRecord
	for {
		s, ok := firstSpan(src)
		if !ok {
			break
		}
		out = append(out, spanRecord{Word: span.EncodeWord(s), ID: s.ID()})
		src.RemoveBlockSpan(s.Start(), s.End())
	}
	return out
}

// firstSpan finds one occupied cell and grows it to its full span extent by
// probing GetBlock, since chunk.Chunk exposes no span iterator directly.
func firstSpan(c *chunk.Chunk) (span.Span, bool) {
	for x := 0; x <= point.Max; x++ {
		for y := 0; y <= point.Max; y++ {
			for z := 0; z <= point.Max; z++ {
				id := c.GetBlock(point.New(x, y, z))
				if id == 0 {
					continue
				}
				return growSpan(c, point.New(x, y, z), id), true
			}
		}
	}
	return span.Span{}, false
}

// growSpan expands from a seed cell along x, then y, then z while every
// probed cell shares the same id, producing an axis-aligned cuboid of
// same-id cells with the seed as its minimum corner. The cuboid may cross
// the boundaries of the spans the chunk stores.
func growSpan(c *chunk.Chunk, seed point.Point, id uint16) span.Span {
	maxX := seed.X
	for maxX < point.Max && c.GetBlock(point.New(maxX+1, seed.Y, seed.Z)) == id {
		maxX++
	}
	maxY := seed.Y
	for maxY < point.Max && rowMatches(c, seed.X, maxX, maxY+1, seed.Z, id) {
		maxY++
	}
	maxZ := seed.Z
	for maxZ < point.Max && planeMatches(c, seed.X, maxX, seed.Y, maxY, maxZ+1, id) {
		maxZ++
	}
	return span.New(id, seed, point.New(maxX, maxY, maxZ))
}

func rowMatches(c *chunk.Chunk, x0, x1, y, z int, id uint16) bool {
	for x := x0; x <= x1; x++ {
		if c.GetBlock(point.New(x, y, z)) != id {
			return false
		}
	}
	return true
}

func planeMatches(c *chunk.Chunk, x0, x1, y0, y1, z int, id uint16) bool {
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			if c.GetBlock(point.New(x, y, z)) != id {
				return false
			}
		}
	}
	return true
}
