package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"yourscinema-backend/internal/mood"
)

type ReportService interface {
	GenerateMoodReport(userID, name string) ([]byte, error)
}

type reportService struct {
	history HistoryService
	loc     *time.Location
	now     func() time.Time
}

// NewReportService renders dates in loc; nil means UTC.
func NewReportService(history HistoryService, loc *time.Location) ReportService {
	if loc == nil {
		loc = time.UTC
	}
	return &reportService{history: history, loc: loc, now: time.Now}
}

// GenerateMoodReport renders the user's mood history and watched list as a
// PDF document.
func (s *reportService) GenerateMoodReport(userID, name string) ([]byte, error) {
	summary, err := s.history.GetMoodSummary(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to build summary: %w", err)
	}
	history, err := s.history.GetMoodHistory(userID, 50)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mood history: %w", err)
	}
	watched, err := s.history.GetWatched(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch watched movies: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("YOURS CINEMA mood report", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, "YOURS CINEMA - Mood Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Prepared for %s on %s", name, s.now().In(s.loc).Format("2 Jan 2006"))))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Assessments completed: %d", summary.Total))
	pdf.Ln(7)
	if summary.Favorite != "" {
		pdf.Cell(0, 7, fmt.Sprintf("Most frequent mood: %s", mood.Mood(summary.Favorite).Title()))
		pdf.Ln(7)
	}
	pdf.Cell(0, 7, fmt.Sprintf("Movies watched: %d", summary.Watched))
	pdf.Ln(10)

	for _, c := range summary.Counts {
		pdf.CellFormat(40, 7, mood.Mood(c.Mood).Title(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", c.Count), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, "Recent moods")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 11)
	if len(history) == 0 {
		pdf.Cell(0, 7, "No assessments yet.")
		pdf.Ln(7)
	}
	for _, h := range history {
		pdf.CellFormat(60, 7, h.OccurredAt.In(s.loc).Format("2006-01-02 15:04 MST"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, mood.Mood(h.Mood).Title(), "1", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, "Watched list")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 11)
	if len(watched) == 0 {
		pdf.Cell(0, 7, "Nothing watched yet.")
		pdf.Ln(7)
	}
	for _, w := range watched {
		pdf.MultiCell(0, 7, tr("- "+w.MovieTitle), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
