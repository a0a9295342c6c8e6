// Package main runs headless autopilot games and reports the results.
//
// Usage:
//
//	go run ./cmd/wolfsim [flags]
//
// Flags:
//
//	-ticks <n>            Ticks to simulate (default 36000, ten minutes at 60 TPS)
//	-seed <n>             Random seed, 0 picks one from the clock
//	-preset <name>        Rules preset: classic or shop
//	-config <path>        Rules file (YAML), defaults to WOLF_CONFIG
//	-metrics-addr <addr>  Serve /metrics and /healthz while running (e.g. :9090)
//	-hold                 Keep serving metrics after the run until interrupted
//	-json                 Print the report as JSON
//	-dump-config          Print the effective rules as YAML and exit
//	-verbose              Enable verbose logging
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/decker502/cryptowolf/internal/sim"
	"github.com/decker502/cryptowolf/pkg/config"
	"github.com/decker502/cryptowolf/pkg/game"
	"github.com/decker502/cryptowolf/pkg/metrics"
)

var (
	ticksFlag      = flag.Int("ticks", 36000, "Ticks to simulate")
	seedFlag       = flag.Int64("seed", 0, "Random seed (0 = time based)")
	presetFlag     = flag.String("preset", "", "Rules preset: classic or shop")
	configFlag     = flag.String("config", "", "Rules file (YAML), defaults to WOLF_CONFIG")
	metricsAddr    = flag.String("metrics-addr", "", "Serve Prometheus metrics on this address")
	holdFlag       = flag.Bool("hold", false, "Keep serving metrics after the run until interrupted")
	jsonFlag       = flag.Bool("json", false, "Print the report as JSON")
	dumpConfigFlag = flag.Bool("dump-config", false, "Print the effective rules and exit")
	verboseFlag    = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}
	if err := godotenv.Load(); err == nil {
		log.Printf("[Main] Loaded .env")
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "wolfsim: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rules, err := config.LoadRules(config.LoadOptions{Path: *configFlag, Preset: *presetFlag})
	if err != nil {
		return err
	}
	if *dumpConfigFlag {
		return config.WriteRules(os.Stdout, *rules)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	registry := prometheus.NewRegistry()
	metricsManager := metrics.NewManager(
		metrics.WithPrometheusRegistry(registry),
		metrics.WithConstLabels(map[string]string{"preset": rules.Preset}),
	)

	var server *http.Server
	if *metricsAddr != "" {
		server = &http.Server{
			Addr:              *metricsAddr,
			Handler:           metrics.NewRouter(registry),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("[Main] Metrics server stopped: %v", err)
			}
		}()
		log.Printf("[Main] Serving metrics on %s", *metricsAddr)
	}

	session := game.NewSession(game.SessionOptions{
		Rules: *rules,
		Rand:  rand.New(rand.NewSource(seed)),
	})
	session.AddListener(metricsManager)

	catcher := session.Catcher()
	pilot := sim.NewAutopilot(sim.DefaultOptions(), catcher.CenterX())
	report, runErr := sim.Run(ctx, session, pilot, *ticksFlag)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	if err := printReport(os.Stdout, report, rules.Preset, seed); err != nil {
		return err
	}

	if server != nil {
		if *holdFlag && ctx.Err() == nil {
			fmt.Fprintf(os.Stderr, "serving metrics on %s, press Ctrl-C to exit\n", *metricsAddr)
			<-ctx.Done()
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to stop metrics server: %w", err)
		}
	}
	return nil
}

func printReport(w io.Writer, report *sim.Report, preset string, seed int64) error {
	if *jsonFlag {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	_, err := fmt.Fprint(w, report.Summary(preset, seed))
	return err
}
