package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"interact3d/internal/audio"
	"interact3d/internal/config"
	"interact3d/internal/interaction"
	"interact3d/internal/logging"
	"interact3d/internal/metrics"
	_ "interact3d/internal/scripts"
	"interact3d/internal/term"
	"interact3d/internal/world"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "scene/detector config (YAML); built-in scene when empty")
	logPath := flag.String("log", "interactterm.log", "log file, the terminal is owned by the UI")
	flag.Parse()

	if err := run(*configPath, *logPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, logPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	cfg.Logging.OutputPaths = []string{logPath}

	logger, sync, err := logging.Init(cfg.Logging)
	if err != nil {
		return err
	}
	defer sync()
	log := logger.Sugar()

	var recorder interaction.Recorder
	if cfg.Metrics.Enabled {
		recorder = serveMetrics(cfg.Metrics.Addr, log)
	}

	w := world.New()
	w.SetLogger(log)
	if err := w.Build(cfg, recorder); err != nil {
		return fmt.Errorf("build world: %w", err)
	}

	var chime *audio.Chime
	if cfg.Audio.Enabled {
		chime = audio.NewChime(log)
		_ = chime.Init() // logged, runs silent on failure
		defer chime.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Infof("Terminal: started with %d targets", w.Targets.Len())
	term.New(screen, w, chime, log).Run(ctx)
	return nil
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
