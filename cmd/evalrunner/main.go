package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/kirillkom/docintake-eval/internal/bootstrap"
	"github.com/kirillkom/docintake-eval/internal/config"
	"github.com/kirillkom/docintake-eval/internal/observability/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	logger := logging.Setup("docintake-eval", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(cfg, logger)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}

	if cfg.MetricsPort != "" {
		go func() {
			addr := ":" + cfg.MetricsPort
			logger.Info("metrics_listening", "addr", addr)
			mux := http.NewServeMux()
			mux.Handle("/metrics", app.Metrics.Handler())
			if err := http.ListenAndServe(addr, mux); err != nil {
				logger.Error("metrics_listener_failed", "error", err)
			}
		}()
	}

	report, err := app.EvalUC.Evaluate(ctx)
	if err != nil {
		logger.Error("run_failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("run %s: %d cases, %d failures\n", report.RunID, len(report.Cases), report.Failures)
	names := make([]string, 0, len(report.MetricMeans))
	for name := range report.MetricMeans {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-22s %.3f\n", name, report.MetricMeans[name])
	}

	if report.Failures > 0 {
		os.Exit(1)
	}
}
