package ports

import (
	"context"

	"github.com/kirillkom/docintake-eval/internal/core/domain"
)

// CaseRunner is the inbound contract for driving one case through the
// intake service to a terminal state.
type CaseRunner interface {
	Run(ctx context.Context, c domain.Case) (domain.NormalizedResult, error)
}

// EvalService is the inbound contract for a whole evaluation run.
type EvalService interface {
	Evaluate(ctx context.Context) (*domain.RunReport, error)
}
