package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"interact3d/internal/config"
	"interact3d/internal/game"
	"interact3d/internal/interaction"
	"interact3d/internal/logging"
	"interact3d/internal/metrics"
	_ "interact3d/internal/scripts"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "scene/detector config (YAML); built-in scene when empty")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, sync, err := logging.Init(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer sync()
	log := logger.Sugar()

	var recorder interaction.Recorder
	if cfg.Metrics.Enabled {
		recorder = serveMetrics(cfg.Metrics.Addr, log)
	}

	if err := game.New(cfg, recorder, log).Run(); err != nil {
		log.Errorf("Game: %v", err)
		sync()
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func serveMetrics(addr string, log *zap.SugaredLogger) *metrics.PrometheusRecorder {
	reg := prometheus.NewRegistry()
	recorder := metrics.NewPrometheusRecorder(reg)

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	go func() {
		log.Infof("Metrics: serving on %s/metrics", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Warnf("Metrics: server stopped: %v", err)
		}
	}()
	return recorder
}
