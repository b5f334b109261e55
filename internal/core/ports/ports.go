package ports

import (
	"context"

	"github.com/kirillkom/docintake-eval/internal/core/domain"
)

// SubmissionClient is the outbound contract against the intake API. Status
// and result reads are idempotent and may be retried by the implementation;
// Create and Approve are not.
type SubmissionClient interface {
	Create(ctx context.Context, fixture domain.Fixture) (string, error)
	GetStatus(ctx context.Context, submissionID string) (domain.Status, error)
	GetResult(ctx context.Context, submissionID string) (domain.SubmissionResult, error)
	Approve(ctx context.Context, submissionID, reviewer string) error
	Health(ctx context.Context) error
}

// CaseSource loads the ordered, non-empty case list for a run.
type CaseSource interface {
	Load(ctx context.Context) ([]domain.Case, error)
}

// FixtureStore reads the raw fixture file a case refers to.
type FixtureStore interface {
	Read(ctx context.Context, path string) (domain.Fixture, error)
}

// ReportSink writes a run report artifact and returns its location.
type ReportSink interface {
	Write(ctx context.Context, report *domain.RunReport) (string, error)
}
