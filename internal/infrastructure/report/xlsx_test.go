package report

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/kirillkom/docintake-eval/internal/core/domain"
)

func sampleReport() *domain.RunReport {
	started := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return &domain.RunReport{
		RunID:      "run-abc",
		StartedAt:  started,
		FinishedAt: started.Add(45 * time.Second),
		Failures:   1,
		MetricMeans: map[string]float64{
			"status":         1.0,
			"field_accuracy": 0.75,
		},
		Cases: []domain.CaseResult{
			{
				CaseName:     "payslip ok",
				SubmissionID: "sub-1",
				Output: domain.NormalizedResult{
					Status:  domain.StatusCompleted,
					DocType: "payslip",
				},
				Scores: []domain.MetricScore{
					{Name: "status", Value: 1.0},
					{Name: "field_accuracy", Value: 0.75},
				},
				Duration: 12 * time.Second,
			},
			{
				CaseName: "broken upload",
				Duration: 2 * time.Second,
				Err:      errors.New("connection refused"),
			},
		},
	}
}

func TestXLSXSinkWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "run.xlsx")
	sink := NewXLSXSink(path, nil)

	location, err := sink.Write(context.Background(), sampleReport())
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if location != path {
		t.Fatalf("location = %q, want %q", location, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 {
		t.Fatalf("unexpected sheets: %v", sheets)
	}
	for _, name := range []string{"Summary", "Cases"} {
		if idx, err := f.GetSheetIndex(name); err != nil || idx < 0 {
			t.Fatalf("missing sheet %s in %v", name, sheets)
		}
	}

	runID, err := f.GetCellValue("Summary", "B1")
	if err != nil || runID != "run-abc" {
		t.Fatalf("Summary!B1 = %q, %v", runID, err)
	}

	caseName, err := f.GetCellValue("Cases", "A2")
	if err != nil || caseName != "payslip ok" {
		t.Fatalf("Cases!A2 = %q, %v", caseName, err)
	}
	errCell, err := f.GetCellValue("Cases", "G3")
	if err != nil || errCell != "connection refused" {
		t.Fatalf("Cases!G3 = %q, %v", errCell, err)
	}
}

func TestXLSXSinkWriteFailsOnBadPath(t *testing.T) {
	sink := NewXLSXSink(string([]byte{0}), nil)
	if _, err := sink.Write(context.Background(), sampleReport()); err == nil {
		t.Fatalf("expected an error for an unwritable path")
	}
}
