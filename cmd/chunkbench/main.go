// Command chunkbench drives a scripted sequence of writes against an
// in-memory chunk, reports timing and shape statistics, optionally records
// the run to SQLite, and can serve a live view of the resulting quads over
// a websocket. It plays the role cmd/server plays for the simulation: a
// flag-parsed entry point wiring config, persistence, and transport around
// a self-contained core.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"voxelspan.dev/internal/bench"
	"voxelspan.dev/internal/bench/config"
	"voxelspan.dev/internal/bench/liveview"
	"voxelspan.dev/internal/bench/snapshot"
	"voxelspan.dev/internal/bench/store"
	"voxelspan.dev/internal/voxel/chunk"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a chunkbench YAML config (optional, overrides -seed/-iterations/-fill_id)")
		seed       = flag.Int64("seed", 1, "PRNG seed for the carve phase")
		iterations = flag.Int("iterations", 1000, "number of single-cell carves to perform")
		fillID     = flag.Int("fill_id", 1, "block id used for the initial full fill")
		dbPath     = flag.String("db", "", "path to a SQLite database to record the run into (empty disables recording)")
		liveListen = flag.String("live", "", "http listen address for the live-view websocket (empty disables it)")
	)
	flag.Parse()

	logger := bench.NewLogger("chunkbench")

	cfg := config.Default()
	if strings.TrimSpace(*configPath) != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Fatalf("load config: %v", err)
		}
		cfg = loaded
	} else {
		cfg.Seed = *seed
		cfg.Iterations = *iterations
		cfg.FillID = *fillID
		if strings.TrimSpace(*liveListen) != "" {
			cfg.Live.Enabled = true
			cfg.Live.Listen = *liveListen
		}
	}

	c := chunk.New()
	report := bench.Run(logger, c, cfg.Seed, uint16(cfg.FillID), cfg.Iterations)
	logger.Printf("%s", report)

	var snapBlob []byte
	if strings.TrimSpace(cfg.SnapshotPath) != "" {
		blob, err := snapshot.Encode(c)
		if err != nil {
			logger.Fatalf("encode snapshot: %v", err)
		}
		if err := os.WriteFile(cfg.SnapshotPath, blob, 0o644); err != nil {
			logger.Fatalf("write snapshot: %v", err)
		}
		snapBlob = blob
		logger.Printf("snapshot written to %s (%d bytes)", cfg.SnapshotPath, len(blob))
	}

	if strings.TrimSpace(*dbPath) != "" {
		st, err := store.Open(*dbPath)
		if err != nil {
			logger.Fatalf("open store: %v", err)
		}
		defer st.Close()

		if err := st.InsertRun(store.Run{
			RunID:      report.RunID,
			Iterations: report.Iterations,
			FillNs:     report.FillWrites.Nanoseconds(),
			CarveNs:    report.CarveWrites.Nanoseconds(),
			SpanCount:  report.Stats.SpanCount,
			AirCells:   report.Stats.AirCells,
			QuadCount:  report.Quads,
			Snapshot:   snapBlob,
		}); err != nil {
			logger.Fatalf("insert run: %v", err)
		}
		logger.Printf("recorded run %s to %s", report.RunID, *dbPath)
	}

	if cfg.Live.Enabled {
		runLiveView(logger, c, cfg.Live.Listen)
	}
}

// runLiveView blocks serving the live-view websocket until interrupted,
// mirroring cmd/server's signal-driven shutdown.
func runLiveView(logger *log.Logger, c *chunk.Chunk, listen string) {
	ctx, cancel := signalContext()
	defer cancel()

	srv := liveview.NewServer(c, logger)
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", srv.Handler())

	httpSrv := &http.Server{
		Addr:              listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutCtx, shutCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutCancel()
		_ = httpSrv.Shutdown(shutCtx)
	}()

	logger.Printf("live view listening on %s", listen)
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("live view: %v", err)
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-ch
		cancel()
	}()
	return ctx, cancel
}
