package services

import (
	"context"
	"fmt"

	"github.com/dhakad-labs/habitflow/internal/core/domain"
	"github.com/dhakad-labs/habitflow/internal/report"
)

// ReportService assembles exportable artifacts from a state snapshot.
type ReportService struct {
	stats *StatsService
}

func NewReportService(stats *StatsService) *ReportService {
	return &ReportService{stats: stats}
}

// Export renders the multi-page PDF report for the range and returns the
// artifact filename alongside its content.
func (s *ReportService) Export(ctx context.Context, rng domain.DateRange) (string, []byte, error) {
	snap, err := s.stats.LoadSnapshot(ctx)
	if err != nil {
		return "", nil, err
	}

	canvas := report.NewPDFCanvas()
	renderer := report.NewRenderer(canvas, snap.Habits, snap.Completions, snap.Sleep, rng)
	renderer.Render()

	data, err := canvas.Bytes()
	if err != nil {
		return "", nil, fmt.Errorf("finalize pdf: %w", err)
	}

	return report.Filename(rng), data, nil
}

// ExportCSV renders the per-day summary sheet for the range.
func (s *ReportService) ExportCSV(ctx context.Context, rng domain.DateRange) (string, []byte, error) {
	snap, err := s.stats.LoadSnapshot(ctx)
	if err != nil {
		return "", nil, err
	}

	data, err := report.WriteCSV(snap.Habits, snap.Completions, snap.Sleep, rng)
	if err != nil {
		return "", nil, fmt.Errorf("write csv: %w", err)
	}

	return report.CSVFilename(rng), data, nil
}
