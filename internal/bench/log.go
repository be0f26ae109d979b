// Package bench implements the chunk driver/harness: it runs a scripted
// sequence of writes against a chunk.Chunk, times each one, and reports
// the result. It is a consumer of the core voxel packages, never the
// other way around.
package bench

import (
	"log"
	"os"
)

// NewLogger builds a prefixed stdout logger the same way cmd/server does:
// no structured logging library, a fixed prefix and microsecond timestamps.
func NewLogger(prefix string) *log.Logger {
	return log.New(os.Stdout, "["+prefix+"] ", log.LstdFlags|log.Lmicroseconds)
}
