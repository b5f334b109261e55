package ports

import (
	"time"

	"github.com/kirillkom/docintake-eval/internal/core/domain"
)

// RunObserver receives evaluation telemetry. Implementations must be cheap;
// they are called synchronously from the run loop.
type RunObserver interface {
	CaseFinished(caseName, outcome string, duration time.Duration)
	PollFinished(iterations int, approved bool)
	RunFinished(report *domain.RunReport)
}
