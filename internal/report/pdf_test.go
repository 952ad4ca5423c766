package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akyairhashvil/lighttrack/internal/models"
	"github.com/akyairhashvil/lighttrack/internal/testutil"
	"github.com/akyairhashvil/lighttrack/internal/util"
)

func sampleReport() RangeReport {
	running := testutil.NewInterval().Named("Running").StartedAt(day(2024, 1, 16, 11)).Open().Build()
	return RangeReport{
		Range: util.DateRange{From: day(2024, 1, 15, 0), To: day(2024, 1, 16, 0)},
		Entries: []models.TimeInterval{
			interval("DEV-1234 Fix login", day(2024, 1, 15, 9), 5400),
			interval("Überprüfung", day(2024, 1, 16, 9), 600),
			running,
		},
		Stats: []models.TaskStats{
			testutil.Stats("DEV-1234 Fix login", 5400, 1),
			testutil.Stats("Überprüfung", 600, 1),
		},
		GeneratedAt: day(2024, 1, 16, 12),
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, sampleReport()); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestWritePDFEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := RangeReport{Range: util.DateRange{From: day(2024, 1, 15, 0), To: day(2024, 1, 15, 0)}}
	if err := WritePDF(&buf, r); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected output for empty report")
	}
}

func TestSavePDF(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	path, err := SavePDF(dir, sampleReport())
	if err != nil {
		t.Fatalf("SavePDF failed: %v", err)
	}
	if !strings.HasSuffix(path, "report_2024-01-15_2024-01-16.pdf") {
		t.Fatalf("unexpected file name %q", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected non-empty file")
	}
}

func TestRangeReportTotal(t *testing.T) {
	if got := sampleReport().TotalSeconds(); got != 6000 {
		t.Fatalf("TotalSeconds = %d", got)
	}
}
