package scoring

import (
	"github.com/kirillkom/docintake-eval/internal/core/domain"
)

const (
	defaultExpectedStatus = domain.StatusCompleted
	defaultMinConfidence  = 0.75
)

// MetricFunc is one scoring dimension. Implementations are pure and never
// fail: malformed or missing data degrades to 0.0 so one bad case cannot
// abort the scoring of others.
type MetricFunc func(input domain.CaseInput, output domain.NormalizedResult, expected domain.Expectation) float64

type Metric struct {
	Name  string
	Score MetricFunc
}

// Metrics returns the full metric set in report order.
func Metrics() []Metric {
	return []Metric{
		{Name: "status", Score: ScoreStatus},
		{Name: "doc_type", Score: ScoreDocType},
		{Name: "schema_conformance", Score: ScoreSchemaConformance},
		{Name: "field_accuracy", Score: ScoreFieldAccuracy},
		{Name: "validation_rules", Score: ScoreValidationRules},
		{Name: "confidence_threshold", Score: ScoreConfidenceThreshold},
		{Name: "review_avoidance", Score: ScoreReviewAvoidance},
	}
}

// ScoreAll evaluates every metric for one case.
func ScoreAll(input domain.CaseInput, output domain.NormalizedResult, expected domain.Expectation) []domain.MetricScore {
	metrics := Metrics()
	scores := make([]domain.MetricScore, 0, len(metrics))
	for _, m := range metrics {
		scores = append(scores, domain.MetricScore{
			Name:  m.Name,
			Value: m.Score(input, output, expected),
		})
	}
	return scores
}

// ScoreStatus is 1.0 iff the observed terminal status equals the expected
// one, defaulting the expectation to COMPLETED.
func ScoreStatus(_ domain.CaseInput, output domain.NormalizedResult, expected domain.Expectation) float64 {
	want := expected.Status
	if want == "" {
		want = defaultExpectedStatus
	}
	if output.Status == want {
		return 1.0
	}
	return 0.0
}

// ScoreDocType is 1.0 iff the observed classification equals the expected
// one verbatim; the fuzzy matching of field values does not apply to
// classification labels. An absent expectation scores 0.0, never "skipped".
func ScoreDocType(_ domain.CaseInput, output domain.NormalizedResult, expected domain.Expectation) float64 {
	if expected.DocType == "" {
		return 0.0
	}
	if output.DocType == expected.DocType {
		return 1.0
	}
	return 0.0
}

// ScoreSchemaConformance is 1.0 iff the result's key set is exactly covered
// by the registered field set for the resolved classification. Unknown
// classifications resolve to an empty field set, so any non-empty result
// fails.
func ScoreSchemaConformance(input domain.CaseInput, output domain.NormalizedResult, _ domain.Expectation) float64 {
	if output.Result == nil {
		return 0.0
	}
	fs := fieldSetFor(resolveDocType(input, output))
	if fs.Conforms(output.Result) {
		return 1.0
	}
	return 0.0
}

// ScoreFieldAccuracy is the fraction of expected result keys whose value
// matches the observed one. An empty expectation scores 0.0, not a vacuous
// 1.0.
func ScoreFieldAccuracy(_ domain.CaseInput, output domain.NormalizedResult, expected domain.Expectation) float64 {
	if len(expected.Result) == 0 || output.Result == nil {
		return 0.0
	}

	matched := 0
	for key, want := range expected.Result {
		if valuesMatch(want, output.Result[key]) {
			matched++
		}
	}
	return float64(matched) / float64(len(expected.Result))
}

// ScoreValidationRules applies the registered business-rule validator for
// the resolved classification. Unrecognized classifications score 0.0.
func ScoreValidationRules(input domain.CaseInput, output domain.NormalizedResult, _ domain.Expectation) float64 {
	if output.Result == nil {
		return 0.0
	}
	validate, ok := validatorFor(resolveDocType(input, output))
	if !ok {
		return 0.0
	}
	if validate(output.Result) {
		return 1.0
	}
	return 0.0
}

// ScoreConfidenceThreshold is 1.0 iff the observed confidence reaches the
// expected minimum, defaulting to 0.75. A missing confidence decodes to 0
// and fails.
func ScoreConfidenceThreshold(_ domain.CaseInput, output domain.NormalizedResult, expected domain.Expectation) float64 {
	threshold := expected.MinConfidence
	if threshold <= 0 {
		threshold = defaultMinConfidence
	}
	if output.Confidence >= threshold {
		return 1.0
	}
	return 0.0
}

// ScoreReviewAvoidance is 1.0 iff no human review was observed or triggered.
func ScoreReviewAvoidance(_ domain.CaseInput, output domain.NormalizedResult, _ domain.Expectation) float64 {
	if output.ReviewRequired {
		return 0.0
	}
	return 1.0
}

// resolveDocType prefers the classification the service assigned and falls
// back to the one declared on the case input.
func resolveDocType(input domain.CaseInput, output domain.NormalizedResult) string {
	if dt := normalizeString(output.DocType); dt != "" {
		return dt
	}
	return normalizeString(input.DocType)
}
