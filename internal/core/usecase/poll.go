package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kirillkom/docintake-eval/internal/core/domain"
	"github.com/kirillkom/docintake-eval/internal/core/ports"
)

type PollerConfig struct {
	Interval    time.Duration
	Timeout     time.Duration
	AutoApprove bool
	Reviewer    string
}

// LifecyclePoller drives one submission from creation to a terminal status.
// All per-submission state, including the send-once approval flag, is local
// to a WaitForTerminal call.
type LifecyclePoller struct {
	client   ports.SubmissionClient
	cfg      PollerConfig
	observer ports.RunObserver
	logger   *slog.Logger
}

func NewLifecyclePoller(client ports.SubmissionClient, cfg PollerConfig, observer ports.RunObserver, logger *slog.Logger) *LifecyclePoller {
	if logger == nil {
		logger = slog.Default()
	}
	return &LifecyclePoller{
		client:   client,
		cfg:      cfg,
		observer: observer,
		logger:   logger,
	}
}

// WaitForTerminal polls the submission's status until it is terminal, then
// performs exactly one result read and returns the normalized record.
//
// When the status is NEEDS_REVIEW and auto-approval is enabled, at most one
// approval is sent; the approval precedes the next status read rather than
// replacing it, since approving may trigger a transition but does not return
// the new state. The deadline is wall-clock elapsed time since the first
// iteration, checked once per iteration before sleeping; once exceeded no
// final read is attempted.
func (p *LifecyclePoller) WaitForTerminal(ctx context.Context, submissionID string) (domain.NormalizedResult, error) {
	start := time.Now()
	approvalSent := false
	reviewObserved := false
	iterations := 0

	for {
		iterations++
		status, err := p.client.GetStatus(ctx, submissionID)
		if err != nil {
			return domain.NormalizedResult{}, err
		}

		if status == domain.StatusNeedsReview {
			reviewObserved = true
			if p.cfg.AutoApprove && !approvalSent {
				if err := p.client.Approve(ctx, submissionID, p.cfg.Reviewer); err != nil {
					return domain.NormalizedResult{}, err
				}
				approvalSent = true
				p.logger.Info("review_approved", "submission_id", submissionID, "reviewer", p.cfg.Reviewer)
			}
		}

		if status.Terminal() {
			result, err := p.client.GetResult(ctx, submissionID)
			if err != nil {
				return domain.NormalizedResult{}, err
			}
			if p.observer != nil {
				p.observer.PollFinished(iterations, approvalSent)
			}
			return p.normalize(submissionID, status, result, approvalSent || reviewObserved), nil
		}

		if time.Since(start) > p.cfg.Timeout {
			return domain.NormalizedResult{}, domain.WrapError(
				domain.ErrTimeout,
				"wait for terminal status",
				fmt.Errorf("submission %s still %s after %s", submissionID, status, p.cfg.Timeout),
			)
		}

		select {
		case <-ctx.Done():
			return domain.NormalizedResult{}, ctx.Err()
		case <-time.After(p.cfg.Interval):
		}
	}
}

func (p *LifecyclePoller) normalize(submissionID string, status domain.Status, result domain.SubmissionResult, reviewRequired bool) domain.NormalizedResult {
	if result.Status != "" {
		status = result.Status
	}
	payload := result.Result
	if payload == nil {
		payload = map[string]any{}
	}
	return domain.NormalizedResult{
		SubmissionID:   submissionID,
		Status:         status,
		DocType:        result.DocType,
		Confidence:     result.Confidence,
		Result:         payload,
		RejectedReason: result.RejectedReason,
		ReviewRequired: reviewRequired,
	}
}
