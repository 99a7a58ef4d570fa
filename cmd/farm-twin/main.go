package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	"github.com/appengine-ltd/farm-twin/internal/api"
	"github.com/appengine-ltd/farm-twin/internal/farm"
	"github.com/appengine-ltd/farm-twin/internal/snapshot"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	_ = godotenv.Load()

	var (
		showVersion bool
		addr        string
		dbPath      string
		interval    time.Duration
		seed        int64
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&addr, "addr", getenv("FARM_ADDR", ":8080"), "HTTP listen address")
	flag.StringVar(&dbPath, "db", getenv("FARM_DB", "farm-twin.db"), "snapshot database path")
	flag.DurationVar(&interval, "interval", envDuration("FARM_TICK_INTERVAL", farm.DefaultTickInterval), "wall time per simulated day")
	flag.Int64Var(&seed, "seed", 0, "simulation RNG seed (0 = time-based)")
	flag.Parse()

	if showVersion {
		fmt.Printf("farm-twin %s (%s) %s\n", version, commit, date)
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := run(addr, dbPath, interval, seed, logger); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(addr, dbPath string, interval time.Duration, seed int64, logger *slog.Logger) error {
	store, err := snapshot.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open snapshot store: %w", err)
	}
	defer store.Close()

	f, err := farm.New(farm.DefaultFieldConfig(), farm.Options{Seed: seed, Logger: logger})
	if err != nil {
		return err
	}

	if snap, ok, loadErr := store.Load(); loadErr != nil {
		logger.Warn("snapshot load failed, starting fresh", "error", loadErr)
	} else if ok {
		if restoreErr := f.Restore(snap); restoreErr != nil {
			logger.Warn("snapshot rejected, starting fresh", "error", restoreErr)
		} else {
			logger.Info("snapshot restored", "day", snap.State.Day, "stage", snap.State.Stage.String())
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go farm.NewRunner(f, interval, store.Save).Run(ctx)

	srv := &http.Server{
		Addr:              addr,
		Handler:           api.NewServer(f, store, logger).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	state := f.State()
	logger.Info("farm-twin ready",
		"addr", addr,
		"interval", interval,
		"day", state.Day,
		"funds", humanize.Commaf(state.Funds),
	)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
