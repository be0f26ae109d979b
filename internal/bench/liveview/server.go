// Package liveview streams a chunk's visible quads to a connected debug
// client over a websocket (github.com/gorilla/websocket). A client sends
// chunkproto.RegionWriteRequest messages; the server applies each one to
// its chunk and pushes back an ack plus a fresh quad frame.
package liveview

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"voxelspan.dev/internal/chunkproto"
	"voxelspan.dev/internal/voxel/chunk"
	"voxelspan.dev/internal/voxel/point"
)

// Server serves a single shared chunk to any number of connected clients.
type Server struct {
	mu    sync.Mutex
	chunk *chunk.Chunk
	log   *log.Logger

	upgrader websocket.Upgrader
}

// NewServer wraps an existing chunk for live viewing/editing.
func NewServer(c *chunk.Chunk, logger *log.Logger) *Server {
	return &Server{
		chunk: c,
		log:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  32 * 1024,
			WriteBufferSize: 32 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
	}
}

// Handler returns the http.HandlerFunc to mount for the websocket endpoint.
func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		if err := s.sendFrame(conn, "initial"); err != nil {
			return
		}

		for {
			_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}

			base, err := chunkproto.DecodeBase(msg)
			if err != nil || base.Type != chunkproto.TypeRegionWrite {
				continue
			}
			var req chunkproto.RegionWriteRequest
			if err := json.Unmarshal(msg, &req); err != nil {
				continue
			}

			ack := s.applyWrite(req)
			if err := writeJSON(conn, ack); err != nil {
				return
			}
			if ack.Accepted {
				if err := s.sendFrame(conn, req.RunID); err != nil {
					return
				}
			}
		}
	}
}

func (s *Server) applyWrite(req chunkproto.RegionWriteRequest) chunkproto.RegionWriteAck {
	ack := chunkproto.RegionWriteAck{
		Type:            chunkproto.TypeAck,
		ProtocolVersion: chunkproto.Version,
		AckFor:          req.RunID,
	}

	if req.ID < 0 || req.ID > 0xFFFF {
		ack.Code = chunkproto.ErrBadID
		ack.Message = "id out of range"
		return ack
	}
	if !inRange(req.Start) || !inRange(req.End) {
		ack.Code = chunkproto.ErrBadRegion
		ack.Message = "start/end out of [0,15]"
		return ack
	}
	if req.Start[0] > req.End[0] || req.Start[1] > req.End[1] || req.Start[2] > req.End[2] {
		ack.Code = chunkproto.ErrBadRegion
		ack.Message = "inverted region"
		return ack
	}

	s.mu.Lock()
	s.chunk.SetBlockSpan(
		point.New(req.Start[0], req.Start[1], req.Start[2]),
		point.New(req.End[0], req.End[1], req.End[2]),
		uint16(req.ID),
	)
	spanCount := s.chunk.DebugTotalSpans()
	quadCount := len(s.chunk.GenerateQuads())
	s.mu.Unlock()

	ack.Accepted = true
	ack.SpanCount = spanCount
	ack.QuadCount = quadCount
	return ack
}

func inRange(p [3]int) bool {
	for _, v := range p {
		if v < 0 || v > point.Max {
			return false
		}
	}
	return true
}

func (s *Server) sendFrame(conn *websocket.Conn, runID string) error {
	s.mu.Lock()
	quads := s.chunk.GenerateQuads()
	s.mu.Unlock()

	frame := chunkproto.QuadFrame{
		Type:            chunkproto.TypeQuadFrame,
		ProtocolVersion: chunkproto.Version,
		RunID:           runID,
		Quads:           toWireQuads(quads),
	}
	return writeJSON(conn, frame)
}

func toWireQuads(quads []chunk.Quad) []chunkproto.QuadWire {
	out := make([]chunkproto.QuadWire, len(quads))
	for i, q := range quads {
		out[i] = chunkproto.QuadWire{ID: int(q.ID)}
		for c := 0; c < 4; c++ {
			out[i].Corners[c] = [3]int{q.Corners[c].X, q.Corners[c].Y, q.Corners[c].Z}
		}
	}
	return out
}

func writeJSON(conn *websocket.Conn, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	return conn.WriteMessage(websocket.TextMessage, b)
}
