package services

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/terraincognita07/timetrackpro/internal/models"
)

func TestBuildExportDocument(t *testing.T) {
	t.Parallel()

	mood := 4
	entries := []models.TimeEntry{
		{ID: 1, Date: models.NewDate(2026, time.March, 2), StartTime: "08:00", EndTime: "18:00", HourlyRate: 190, Notes: "site visit", MoodRating: &mood},
		{ID: 2, Date: models.NewDate(2026, time.March, 3), StartTime: "00:00", EndTime: "00:00", Notes: "Volný den"},
	}
	report := models.MonthlyReport{Year: 2026, Month: 3, WorkDays: 22, WorkedMinutes: 600, TargetMinutes: 10560, OvertimeMinutes: -9960}
	user := models.User{Username: "worker", FullName: "Jana Worker"}
	now := time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)

	document, err := BuildExportDocument(user, entries, report, ExportOptions{IncludeSalary: true}, now)
	if err != nil {
		t.Fatalf("BuildExportDocument returned error: %v", err)
	}
	if document.Summary.TotalPayment == nil || *document.Summary.TotalPayment != 1900 {
		t.Fatalf("expected total payment 1900, got %v", document.Summary.TotalPayment)
	}
	if document.Summary.DaysWorked != 1 || document.Summary.Overtime != "-166:00" {
		t.Fatalf("unexpected summary %+v", document.Summary)
	}
	if len(document.Entries) != 2 || !document.Entries[1].DayOff {
		t.Fatalf("expected day off row to be exported, got %+v", document.Entries)
	}
	if document.Entries[0].Notes != "" {
		t.Fatalf("expected notes to be omitted, got %q", document.Entries[0].Notes)
	}

	var output bytes.Buffer
	if err := WriteExportCSV(&output, document); err != nil {
		t.Fatalf("WriteExportCSV returned error: %v", err)
	}
	records, err := csv.NewReader(&output).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header and 2 rows, got %d", len(records))
	}
	first := records[1]
	if first[0] != "2026-03-02" || first[3] != "10h" || first[4] != "600" || first[7] != "1900" || first[8] != "4" {
		t.Fatalf("unexpected first row %v", first)
	}
}

func TestBuildExportDocumentWithoutSalary(t *testing.T) {
	t.Parallel()

	entries := []models.TimeEntry{
		{ID: 1, Date: models.NewDate(2026, time.March, 2), StartTime: "08:00", EndTime: "12:00", HourlyRate: 190, Notes: "desk"},
	}
	document, err := BuildExportDocument(models.User{}, entries, models.MonthlyReport{}, ExportOptions{IncludeNotes: true}, time.Now())
	if err != nil {
		t.Fatalf("BuildExportDocument returned error: %v", err)
	}
	if document.Summary.TotalPayment != nil || document.Entries[0].Payment != nil || document.Entries[0].HourlyRate != nil {
		t.Fatalf("expected salary fields to be omitted, got %+v", document)
	}
	if document.Entries[0].Notes != "desk" {
		t.Fatalf("expected notes, got %q", document.Entries[0].Notes)
	}
}

func TestExportFilename(t *testing.T) {
	t.Parallel()

	if got := ExportFilename(2026, 3, "csv"); got != "timetrackpro-2026-03.csv" {
		t.Fatalf("unexpected filename %q", got)
	}
}
