package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/kirillkom/docintake-eval/internal/core/domain"
	"github.com/kirillkom/docintake-eval/internal/core/scoring"
)

// XLSXSink writes the run report as an XLSX workbook: a summary sheet with
// per-metric means and a cases sheet with one row per case.
type XLSXSink struct {
	path   string
	logger *slog.Logger
}

func NewXLSXSink(path string, logger *slog.Logger) *XLSXSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &XLSXSink{path: path, logger: logger}
}

func (s *XLSXSink) Write(_ context.Context, r *domain.RunReport) (string, error) {
	f := excelize.NewFile()

	if err := s.writeSummary(f, r); err != nil {
		return "", err
	}
	if err := s.writeCases(f, r); err != nil {
		return "", err
	}
	// excelize creates a default "Sheet1" we never use
	_ = f.DeleteSheet("Sheet1")

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := f.SaveAs(s.path); err != nil {
		return "", fmt.Errorf("write report workbook: %w", err)
	}

	s.logger.Info("xlsx_report_saved", "path", s.path, "cases", len(r.Cases), "failures", r.Failures)
	return s.path, nil
}

func (s *XLSXSink) writeSummary(f *excelize.File, r *domain.RunReport) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}

	rows := [][]any{
		{"Run ID", r.RunID},
		{"Started", r.StartedAt.Format("2006-01-02 15:04:05 MST")},
		{"Finished", r.FinishedAt.Format("2006-01-02 15:04:05 MST")},
		{"Cases", len(r.Cases)},
		{"Failures", r.Failures},
		{},
		{"Metric", "Mean"},
	}

	names := make([]string, 0, len(r.MetricMeans))
	for name := range r.MetricMeans {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rows = append(rows, []any{name, r.MetricMeans[name]})
	}

	for i, row := range rows {
		for j, v := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	_ = f.SetColWidth(sheet, "A", "A", 24)
	_ = f.SetColWidth(sheet, "B", "B", 40)
	return nil
}

func (s *XLSXSink) writeCases(f *excelize.File, r *domain.RunReport) error {
	const sheet = "Cases"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create cases sheet: %w", err)
	}

	headers := []any{"Case", "Submission ID", "Status", "Doc Type", "Review Required", "Duration (s)", "Error"}
	for _, m := range scoring.Metrics() {
		headers = append(headers, m.Name)
	}
	for j, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(j+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, cr := range r.Cases {
		row := []any{
			cr.CaseName,
			cr.SubmissionID,
			string(cr.Output.Status),
			cr.Output.DocType,
			cr.Output.ReviewRequired,
			cr.Duration.Seconds(),
		}
		if cr.Err != nil {
			row = append(row, cr.Err.Error())
		} else {
			row = append(row, "")
		}
		for _, score := range cr.Scores {
			row = append(row, score.Value)
		}

		for j, v := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 28)
	_ = f.SetColWidth(sheet, "B", "B", 38)
	_ = f.SetColWidth(sheet, "G", "G", 60)
	return nil
}
