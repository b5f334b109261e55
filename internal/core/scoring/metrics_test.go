package scoring

import (
	"testing"

	"github.com/kirillkom/docintake-eval/internal/core/domain"
)

func completedOutput(docType string, result map[string]any) domain.NormalizedResult {
	return domain.NormalizedResult{
		SubmissionID: "sub-1",
		Status:       domain.StatusCompleted,
		DocType:      docType,
		Confidence:   0.9,
		Result:       result,
	}
}

func TestScoreStatusDefaultsToCompleted(t *testing.T) {
	out := completedOutput("payslip", map[string]any{})
	if got := ScoreStatus(domain.CaseInput{}, out, domain.Expectation{}); got != 1.0 {
		t.Fatalf("expected 1.0 for COMPLETED against default expectation, got %v", got)
	}

	out.Status = domain.StatusRejected
	if got := ScoreStatus(domain.CaseInput{}, out, domain.Expectation{}); got != 0.0 {
		t.Fatalf("expected 0.0 for REJECTED against default expectation, got %v", got)
	}
	if got := ScoreStatus(domain.CaseInput{}, out, domain.Expectation{Status: domain.StatusRejected}); got != 1.0 {
		t.Fatalf("expected 1.0 for REJECTED against REJECTED expectation, got %v", got)
	}
}

func TestScoreDocTypeAbsentExpectationScoresZero(t *testing.T) {
	out := completedOutput("payslip", map[string]any{})
	if got := ScoreDocType(domain.CaseInput{DocType: "payslip"}, out, domain.Expectation{}); got != 0.0 {
		t.Fatalf("absent expected classification must score 0.0, got %v", got)
	}
	if got := ScoreDocType(domain.CaseInput{}, out, domain.Expectation{DocType: "payslip"}); got != 1.0 {
		t.Fatalf("matching classification must score 1.0, got %v", got)
	}
	if got := ScoreDocType(domain.CaseInput{}, out, domain.Expectation{DocType: "invoice"}); got != 0.0 {
		t.Fatalf("mismatched classification must score 0.0, got %v", got)
	}
}

func TestScoreDocTypeComparesVerbatim(t *testing.T) {
	out := completedOutput("Payslip", map[string]any{})
	if got := ScoreDocType(domain.CaseInput{}, out, domain.Expectation{DocType: "payslip"}); got != 0.0 {
		t.Fatalf("classification labels must not be case-folded, got %v", got)
	}
	out.DocType = "payslip "
	if got := ScoreDocType(domain.CaseInput{}, out, domain.Expectation{DocType: "payslip"}); got != 0.0 {
		t.Fatalf("classification labels must not be trimmed, got %v", got)
	}
}

func TestScoreSchemaConformance(t *testing.T) {
	conforming := map[string]any{
		"employee_name":    "Jane Doe",
		"employer_name":    "Acme",
		"pay_period_start": "2024-01-01",
		"pay_period_end":   "2024-01-14",
		"gross_pay":        5000.0,
		"net_pay":          3800.0,
		"tax_withheld":     1200.0,
		"confidence":       0.9,
	}
	out := completedOutput("payslip", conforming)

	if got := ScoreSchemaConformance(domain.CaseInput{}, out, domain.Expectation{}); got != 1.0 {
		t.Fatalf("expected conforming payslip result to score 1.0, got %v", got)
	}

	// optional key stays conforming
	conforming["superannuation"] = 500.0
	if got := ScoreSchemaConformance(domain.CaseInput{}, out, domain.Expectation{}); got != 1.0 {
		t.Fatalf("optional key must not break conformance, got %v", got)
	}

	// any single unregistered key flips the score
	conforming["bonus"] = 100.0
	if got := ScoreSchemaConformance(domain.CaseInput{}, out, domain.Expectation{}); got != 0.0 {
		t.Fatalf("unregistered key must flip conformance to 0.0, got %v", got)
	}
	delete(conforming, "bonus")

	delete(conforming, "net_pay")
	if got := ScoreSchemaConformance(domain.CaseInput{}, out, domain.Expectation{}); got != 0.0 {
		t.Fatalf("missing required key must score 0.0, got %v", got)
	}
}

func TestScoreSchemaConformanceUnknownClassification(t *testing.T) {
	out := completedOutput("receipt", map[string]any{"total": 12.0})
	if got := ScoreSchemaConformance(domain.CaseInput{}, out, domain.Expectation{}); got != 0.0 {
		t.Fatalf("unknown classification with non-empty result must fail, got %v", got)
	}

	empty := completedOutput("receipt", map[string]any{})
	if got := ScoreSchemaConformance(domain.CaseInput{}, empty, domain.Expectation{}); got != 1.0 {
		t.Fatalf("unknown classification with empty result trivially conforms, got %v", got)
	}

	nilResult := completedOutput("receipt", nil)
	if got := ScoreSchemaConformance(domain.CaseInput{}, nilResult, domain.Expectation{}); got != 0.0 {
		t.Fatalf("nil result mapping must score 0.0, got %v", got)
	}
}

func TestScoreSchemaConformanceFallsBackToInputDocType(t *testing.T) {
	out := completedOutput("", map[string]any{"total": 12.0})
	in := domain.CaseInput{DocType: "invoice"}
	if got := ScoreSchemaConformance(in, out, domain.Expectation{}); got != 0.0 {
		t.Fatalf("invoice field set must apply via input fallback, got %v", got)
	}
}

func TestScoreFieldAccuracy(t *testing.T) {
	out := completedOutput("payslip", map[string]any{
		"gross_pay":    5000.0,
		"net_pay":      3800.0,
		"tax_withheld": 1200.0,
	})
	expected := domain.Expectation{Result: map[string]any{
		"gross_pay":    5000.0,
		"net_pay":      3800.0,
		"tax_withheld": 1200.0,
	}}

	if got := ScoreFieldAccuracy(domain.CaseInput{}, out, expected); got != 1.0 {
		t.Fatalf("identical values must score 1.0, got %v", got)
	}

	expected.Result["net_pay"] = 9999.0
	if got := ScoreFieldAccuracy(domain.CaseInput{}, out, expected); got < 0.66 || got > 0.67 {
		t.Fatalf("expected 2/3 accuracy, got %v", got)
	}
}

func TestScoreFieldAccuracyEmptyExpectationIsZero(t *testing.T) {
	out := completedOutput("payslip", map[string]any{"gross_pay": 5000.0})
	if got := ScoreFieldAccuracy(domain.CaseInput{}, out, domain.Expectation{}); got != 0.0 {
		t.Fatalf("empty expected result must score 0.0, not vacuous 1.0, got %v", got)
	}

	nilResult := completedOutput("payslip", nil)
	expected := domain.Expectation{Result: map[string]any{"gross_pay": 5000.0}}
	if got := ScoreFieldAccuracy(domain.CaseInput{}, nilResult, expected); got != 0.0 {
		t.Fatalf("nil observed result must score 0.0, got %v", got)
	}
}

func TestScoreConfidenceThreshold(t *testing.T) {
	out := completedOutput("payslip", map[string]any{})
	out.Confidence = 0.8
	if got := ScoreConfidenceThreshold(domain.CaseInput{}, out, domain.Expectation{}); got != 1.0 {
		t.Fatalf("0.8 against default 0.75 must pass, got %v", got)
	}

	out.Confidence = 0.7
	if got := ScoreConfidenceThreshold(domain.CaseInput{}, out, domain.Expectation{}); got != 0.0 {
		t.Fatalf("0.7 against default 0.75 must fail, got %v", got)
	}

	out.Confidence = 0.7
	if got := ScoreConfidenceThreshold(domain.CaseInput{}, out, domain.Expectation{MinConfidence: 0.6}); got != 1.0 {
		t.Fatalf("0.7 against explicit 0.6 must pass, got %v", got)
	}

	out.Confidence = 0
	if got := ScoreConfidenceThreshold(domain.CaseInput{}, out, domain.Expectation{}); got != 0.0 {
		t.Fatalf("missing confidence must fail the threshold, got %v", got)
	}
}

func TestScoreReviewAvoidanceComplementsReviewRequired(t *testing.T) {
	out := completedOutput("payslip", map[string]any{})
	for _, required := range []bool{false, true} {
		out.ReviewRequired = required
		score := ScoreReviewAvoidance(domain.CaseInput{}, out, domain.Expectation{})
		flag := 0.0
		if required {
			flag = 1.0
		}
		if score+flag != 1.0 {
			t.Fatalf("review_avoidance (%v) + review_required (%v) must sum to 1", score, flag)
		}
	}
}

func TestScoreAllPayslipScenario(t *testing.T) {
	in := domain.CaseInput{Name: "payslip1", FilePath: "fixtures/payslip1.txt"}
	out := completedOutput("payslip", map[string]any{
		"gross_pay":    5000.0,
		"net_pay":      3800.0,
		"tax_withheld": 1200.0,
	})
	expected := domain.Expectation{Result: map[string]any{
		"gross_pay":    5000.0,
		"net_pay":      3800.0,
		"tax_withheld": 1200.0,
	}}

	scores := ScoreAll(in, out, expected)
	byName := map[string]float64{}
	for _, s := range scores {
		byName[s.Name] = s.Value
	}
	if byName["field_accuracy"] != 1.0 {
		t.Fatalf("expected field_accuracy 1.0, got %v", byName["field_accuracy"])
	}
	if byName["status"] != 1.0 {
		t.Fatalf("expected status 1.0, got %v", byName["status"])
	}
	if len(scores) != 7 {
		t.Fatalf("expected 7 metrics, got %d", len(scores))
	}
}
