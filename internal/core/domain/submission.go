package domain

import "time"

type Status string

const (
	StatusUploaded    Status = "UPLOADED"
	StatusProcessing  Status = "PROCESSING"
	StatusNeedsReview Status = "NEEDS_REVIEW"
	StatusCompleted   Status = "COMPLETED"
	StatusRejected    Status = "REJECTED"
	StatusFailed      Status = "FAILED"
)

// Terminal reports whether no further status transition can occur.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusRejected, StatusFailed:
		return true
	default:
		return false
	}
}

// CaseInput identifies the fixture one evaluation case submits.
type CaseInput struct {
	Name     string `json:"name" yaml:"name"`
	DocType  string `json:"doc_type,omitempty" yaml:"doc_type,omitempty"`
	FilePath string `json:"file_path" yaml:"file_path"`
}

// Expectation is what a case expects back from the intake service.
// Zero values fall back to the scoring defaults (COMPLETED, 0.75).
type Expectation struct {
	Status        Status         `json:"status,omitempty" yaml:"status,omitempty"`
	DocType       string         `json:"doc_type,omitempty" yaml:"doc_type,omitempty"`
	MinConfidence float64        `json:"min_confidence,omitempty" yaml:"min_confidence,omitempty"`
	Result        map[string]any `json:"result,omitempty" yaml:"result,omitempty"`
}

type Case struct {
	Input    CaseInput   `json:"input" yaml:"input"`
	Expected Expectation `json:"expected" yaml:"expected"`
}

// Fixture is the raw file a case uploads.
type Fixture struct {
	Name     string
	MimeType string
	Data     []byte
}

// SubmissionResult is the intake service's terminal result payload, as read.
type SubmissionResult struct {
	Status         Status         `json:"status"`
	DocType        string         `json:"doc_type"`
	Confidence     float64        `json:"confidence"`
	Result         map[string]any `json:"result"`
	RejectedReason *string        `json:"rejected_reason"`
}

// NormalizedResult is the poller's output contract and the sole input to
// the scoring engine. Result is never nil, ReviewRequired is true exactly
// when NEEDS_REVIEW was observed during polling or an approval was sent.
type NormalizedResult struct {
	SubmissionID   string         `json:"submission_id"`
	Status         Status         `json:"status"`
	DocType        string         `json:"doc_type,omitempty"`
	Confidence     float64        `json:"confidence"`
	Result         map[string]any `json:"result"`
	RejectedReason *string        `json:"rejected_reason,omitempty"`
	ReviewRequired bool           `json:"review_required"`
}

type MetricScore struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// CaseResult records one case's evaluation. A failed case carries Err and
// no scores; it never aborts the rest of the run.
type CaseResult struct {
	CaseName     string           `json:"case_name"`
	SubmissionID string           `json:"submission_id,omitempty"`
	Output       NormalizedResult `json:"output"`
	Scores       []MetricScore    `json:"scores,omitempty"`
	Duration     time.Duration    `json:"duration"`
	Err          error            `json:"-"`
}

type RunReport struct {
	RunID       string             `json:"run_id"`
	StartedAt   time.Time          `json:"started_at"`
	FinishedAt  time.Time          `json:"finished_at"`
	Cases       []CaseResult       `json:"cases"`
	MetricMeans map[string]float64 `json:"metric_means"`
	Failures    int                `json:"failures"`
}
