package intake

import (
	"context"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/kirillkom/docintake-eval/internal/core/domain"
	"github.com/kirillkom/docintake-eval/internal/infrastructure/resilience"
)

// Client talks to the document-intake API. Status, result and health reads
// are idempotent and go through the resilience executor; Create and Approve
// are not idempotent and are issued exactly once.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	requestTimeout time.Duration
	limiter        *rate.Limiter
	executor       *resilience.Executor
}

type Options struct {
	RequestTimeout    time.Duration
	RequestsPerSecond float64
	Executor          *resilience.Executor
}

func New(baseURL string, options Options) *Client {
	requestTimeout := options.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 20 * time.Second
	}
	var limiter *rate.Limiter
	if options.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(options.RequestsPerSecond), 1)
	}
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpClient:     &http.Client{},
		requestTimeout: requestTimeout,
		limiter:        limiter,
		executor:       options.Executor,
	}
}

type createResponse struct {
	DocumentID string `json:"document_id"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func (c *Client) Create(ctx context.Context, fixture domain.Fixture) (string, error) {
	var out createResponse
	if err := c.upload(ctx, "/v1/documents", fixture, &out); err != nil {
		return "", domain.WrapError(domain.ErrTransport, "create submission", err)
	}
	return out.DocumentID, nil
}

func (c *Client) GetStatus(ctx context.Context, submissionID string) (domain.Status, error) {
	var out statusResponse
	err := c.read(ctx, "intake.status", "/v1/documents/"+submissionID+"/status", &out)
	if err != nil {
		return "", domain.WrapError(domain.ErrTransport, "read submission status", err)
	}
	return domain.Status(strings.ToUpper(strings.TrimSpace(out.Status))), nil
}

func (c *Client) GetResult(ctx context.Context, submissionID string) (domain.SubmissionResult, error) {
	var out domain.SubmissionResult
	err := c.read(ctx, "intake.result", "/v1/documents/"+submissionID+"/result", &out)
	if err != nil {
		return domain.SubmissionResult{}, domain.WrapError(domain.ErrTransport, "read submission result", err)
	}
	return out, nil
}

func (c *Client) Approve(ctx context.Context, submissionID, reviewer string) error {
	payload := map[string]any{
		"decision": "approve",
		"reviewer": reviewer,
	}
	err := c.postJSON(ctx, "/v1/documents/"+submissionID+"/review", payload, nil)
	if err != nil {
		return domain.WrapError(domain.ErrTransport, "approve submission", err)
	}
	return nil
}

func (c *Client) Health(ctx context.Context) error {
	var out healthResponse
	if err := c.read(ctx, "intake.health", "/healthz", &out); err != nil {
		return domain.WrapError(domain.ErrTransport, "health check", err)
	}
	if !strings.EqualFold(strings.TrimSpace(out.Status), "ok") {
		return domain.WrapError(domain.ErrTransport, "health check", &HTTPStatusError{
			Operation: "health",
			Body:      "non-ok status: " + out.Status,
		})
	}
	return nil
}

// read issues an idempotent GET, retried per the executor's policy.
func (c *Client) read(ctx context.Context, operation, path string, out any) error {
	if c.executor == nil {
		return c.getJSON(ctx, path, out)
	}
	return c.executor.Execute(ctx, operation, func(callCtx context.Context) error {
		return c.getJSON(callCtx, path, out)
	}, classifyIntakeError)
}
