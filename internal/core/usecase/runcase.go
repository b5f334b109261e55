package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/kirillkom/docintake-eval/internal/core/domain"
	"github.com/kirillkom/docintake-eval/internal/core/ports"
)

// RunCaseUseCase drives one evaluation case: read the fixture, submit it,
// and poll the submission to a terminal state.
type RunCaseUseCase struct {
	client   ports.SubmissionClient
	fixtures ports.FixtureStore
	poller   *LifecyclePoller
	logger   *slog.Logger
}

func NewRunCaseUseCase(
	client ports.SubmissionClient,
	fixtures ports.FixtureStore,
	poller *LifecyclePoller,
	logger *slog.Logger,
) *RunCaseUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &RunCaseUseCase{
		client:   client,
		fixtures: fixtures,
		poller:   poller,
		logger:   logger,
	}
}

func (uc *RunCaseUseCase) Run(ctx context.Context, c domain.Case) (domain.NormalizedResult, error) {
	fixture, err := uc.fixtures.Read(ctx, c.Input.FilePath)
	if err != nil {
		return domain.NormalizedResult{}, err
	}

	submissionID, err := uc.client.Create(ctx, fixture)
	if err != nil {
		return domain.NormalizedResult{}, err
	}
	if submissionID == "" {
		return domain.NormalizedResult{}, domain.WrapError(
			domain.ErrProtocol,
			"create submission",
			errors.New("upload accepted but no submission id returned"),
		)
	}

	uc.logger.Info("submission_created",
		"case", c.Input.Name,
		"submission_id", submissionID,
		"file", c.Input.FilePath,
	)

	return uc.poller.WaitForTerminal(ctx, submissionID)
}
