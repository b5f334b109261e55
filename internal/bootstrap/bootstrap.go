package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/kirillkom/docintake-eval/internal/config"
	"github.com/kirillkom/docintake-eval/internal/core/ports"
	"github.com/kirillkom/docintake-eval/internal/core/usecase"
	"github.com/kirillkom/docintake-eval/internal/infrastructure/cases"
	"github.com/kirillkom/docintake-eval/internal/infrastructure/intake"
	"github.com/kirillkom/docintake-eval/internal/infrastructure/report"
	"github.com/kirillkom/docintake-eval/internal/infrastructure/resilience"
	"github.com/kirillkom/docintake-eval/internal/observability/metrics"
)

type App struct {
	Config  config.Config
	Logger  *slog.Logger
	Metrics *metrics.EvalMetrics

	EvalUC ports.EvalService
}

func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	evalMetrics := metrics.NewEvalMetrics("docintake-eval")

	resilienceCfg := resilience.DefaultConfig()
	resilienceCfg.MaxAttempts = cfg.RetryMaxAttempts
	resilienceCfg.BreakerEnabled = cfg.BreakerEnabled
	executor := resilience.NewExecutor(resilienceCfg)

	client := intake.New(cfg.APIURL, intake.Options{
		RequestTimeout:    cfg.RequestTimeout,
		RequestsPerSecond: cfg.RequestRPS,
		Executor:          executor,
	})

	caseSource, err := cases.NewLoader(cfg.CasesPath)
	if err != nil {
		return nil, fmt.Errorf("init case loader: %w", err)
	}
	fixtures := cases.NewFixtureDir(cfg.FixturesDir)

	poller := usecase.NewLifecyclePoller(client, usecase.PollerConfig{
		Interval:    cfg.PollInterval,
		Timeout:     cfg.PollTimeout,
		AutoApprove: cfg.AutoApproveReview,
		Reviewer:    cfg.Reviewer,
	}, evalMetrics, logger)

	runner := usecase.NewRunCaseUseCase(client, fixtures, poller, logger)

	var sink ports.ReportSink
	if cfg.ReportPath != "" {
		sink = report.NewXLSXSink(cfg.ReportPath, logger)
	}

	evalUC := usecase.NewEvaluateUseCase(caseSource, runner, client, sink, evalMetrics, logger)

	return &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: evalMetrics,
		EvalUC:  evalUC,
	}, nil
}
