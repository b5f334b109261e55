package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kirillkom/docintake-eval/internal/core/domain"
	"github.com/kirillkom/docintake-eval/internal/core/ports"
	"github.com/kirillkom/docintake-eval/internal/core/scoring"
)

// EvaluateUseCase runs every case once, scores each terminal result and
// aggregates per-metric means. A failing case is recorded and skipped; only
// precondition failures or context cancellation abort the run.
type EvaluateUseCase struct {
	cases    ports.CaseSource
	runner   ports.CaseRunner
	client   ports.SubmissionClient
	report   ports.ReportSink
	observer ports.RunObserver
	logger   *slog.Logger
}

func NewEvaluateUseCase(
	cases ports.CaseSource,
	runner ports.CaseRunner,
	client ports.SubmissionClient,
	report ports.ReportSink,
	observer ports.RunObserver,
	logger *slog.Logger,
) *EvaluateUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &EvaluateUseCase{
		cases:    cases,
		runner:   runner,
		client:   client,
		report:   report,
		observer: observer,
		logger:   logger,
	}
}

func (uc *EvaluateUseCase) Evaluate(ctx context.Context) (*domain.RunReport, error) {
	if err := uc.client.Health(ctx); err != nil {
		return nil, domain.WrapError(domain.ErrConfiguration, "health precondition", err)
	}

	cases, err := uc.cases.Load(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.RunReport{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
	sums := map[string]float64{}
	scored := 0

	for _, c := range cases {
		start := time.Now()
		output, runErr := uc.runner.Run(ctx, c)
		duration := time.Since(start)

		if runErr != nil && ctx.Err() != nil {
			return nil, ctx.Err()
		}

		result := domain.CaseResult{
			CaseName: c.Input.Name,
			Duration: duration,
		}

		if runErr != nil {
			result.Err = runErr
			report.Failures++
			uc.logger.Error("case_failed", "case", c.Input.Name, "error", runErr)
			if uc.observer != nil {
				uc.observer.CaseFinished(c.Input.Name, "error", duration)
			}
		} else {
			result.SubmissionID = output.SubmissionID
			result.Output = output
			result.Scores = scoring.ScoreAll(c.Input, output, c.Expected)
			for _, s := range result.Scores {
				sums[s.Name] += s.Value
			}
			scored++
			uc.logger.Info("case_scored",
				"case", c.Input.Name,
				"submission_id", output.SubmissionID,
				"status", output.Status,
				"review_required", output.ReviewRequired,
				"duration_ms", float64(duration.Microseconds())/1000.0,
			)
			if uc.observer != nil {
				uc.observer.CaseFinished(c.Input.Name, "ok", duration)
			}
		}

		report.Cases = append(report.Cases, result)
	}

	report.FinishedAt = time.Now().UTC()
	report.MetricMeans = make(map[string]float64, len(sums))
	for name, sum := range sums {
		report.MetricMeans[name] = sum / float64(scored)
	}

	if uc.observer != nil {
		uc.observer.RunFinished(report)
	}

	if uc.report != nil {
		location, err := uc.report.Write(ctx, report)
		if err != nil {
			uc.logger.Error("report_write_failed", "error", err)
		} else {
			uc.logger.Info("report_written", "location", location)
		}
	}

	return report, nil
}
