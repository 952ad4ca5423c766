package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/lighttrack/internal/config"
	"github.com/akyairhashvil/lighttrack/internal/models"
	"github.com/akyairhashvil/lighttrack/internal/util"
	"github.com/go-pdf/fpdf"
)

// RangeReport is the data behind one PDF: every interval started in the range
// and the per-task totals.
type RangeReport struct {
	Range       util.DateRange
	Entries     []models.TimeInterval
	Stats       []models.TaskStats
	GeneratedAt time.Time
}

// TotalSeconds sums the per-task totals.
func (r RangeReport) TotalSeconds() int64 {
	var total int64
	for _, s := range r.Stats {
		total += s.TotalSeconds
	}
	return total
}

// WritePDF renders the report as A4 PDF into w.
func WritePDF(w io.Writer, r RangeReport) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, tr("Time Report: "+RangeTitle(r.Range)))
	pdf.Ln(12)

	// Totals
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Totals")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(r.Stats) == 0 {
		pdf.Cell(0, 8, "  - No completed intervals.")
		pdf.Ln(8)
	}
	for _, s := range r.Stats {
		pdf.CellFormat(120, 8, tr(s.TaskName), "", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%dx", s.EntryCount), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, FormatClock(s.TotalSeconds), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, "Total tracked: "+FormatDurationCompact(r.TotalSeconds()))
	pdf.Ln(12)

	// Entries, one block per day
	for _, day := range groupEntries(r.Entries) {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, displayDate(day.date))
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		for _, e := range day.entries {
			end := "running"
			if e.EndTime != nil {
				end = e.EndTime.Format("15:04")
			}
			line := fmt.Sprintf("%s - %-7s  %s  %s", e.StartTime.Format("15:04"), end,
				FormatClock(e.DurationSeconds), e.TaskName)
			pdf.MultiCell(0, 6, tr(line), "", "", false)
		}
		pdf.Ln(4)
	}

	if !r.GeneratedAt.IsZero() {
		pdf.SetFont("Arial", "I", 9)
		pdf.Cell(0, 8, "Generated "+r.GeneratedAt.Format(config.DisplayDateTime))
	}
	return pdf.Output(w)
}

// SavePDF writes the report into dir and returns the absolute file name.
func SavePDF(dir string, r RangeReport) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("report_%s", r.Range.From.Format(config.DateLayout))
	if !r.Range.Single() {
		name += "_" + r.Range.To.Format(config.DateLayout)
	}
	path := filepath.Join(dir, name+".pdf")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := WritePDF(f, r); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

type dayEntries struct {
	date    string
	entries []models.TimeInterval
}

// groupEntries splits start-ordered entries into consecutive day blocks.
func groupEntries(entries []models.TimeInterval) []dayEntries {
	var out []dayEntries
	for _, e := range entries {
		day := e.Date()
		if len(out) == 0 || out[len(out)-1].date != day {
			out = append(out, dayEntries{date: day})
		}
		out[len(out)-1].entries = append(out[len(out)-1].entries, e)
	}
	return out
}
