package api

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"

	"github.com/terraincognita07/timetrackpro/internal/services"
)

func TestMonthStatsOverview(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "worker")

	for _, day := range []string{"2026-03-16", "2026-03-17", "2026-03-18"} {
		createEntry(t, app, token, timeEntryPayload{Date: day, StartTime: "08:00", EndTime: "16:00", HourlyRate: 250})
	}
	createEntry(t, app, token, timeEntryPayload{Date: "2026-03-19", StartTime: "00:00", EndTime: "00:00"})

	response := doRequest(t, app, http.MethodGet, "/api/stats/2026/3", token, nil)
	expectStatus(t, response, http.StatusOK)
	var overview services.MonthOverview
	decodeBody(t, response, &overview)

	if overview.DaysWorked != 3 || overview.EntryCount != 4 || overview.Report.WorkedMinutes != 1440 {
		t.Fatalf("unexpected overview %+v", overview)
	}
	if overview.TotalPayment != 6000 || overview.WorkedDisplay != "24h" || overview.TargetDisplay != "176h" {
		t.Fatalf("unexpected display values %+v", overview)
	}
	if overview.Streaks.Current != 3 || overview.Streaks.Best != 3 || overview.Streaks.ThisWeek != 3 || overview.Streaks.ThisMonth != 3 {
		t.Fatalf("unexpected streaks %+v", overview.Streaks)
	}

	user := doRequest(t, app, http.MethodGet, "/api/user", token, nil)
	expectStatus(t, user, http.StatusOK)
	var stored struct {
		BestStreak int `json:"bestStreak"`
	}
	decodeBody(t, user, &stored)
	if stored.BestStreak != 3 {
		t.Fatalf("expected best streak to be stored, got %d", stored.BestStreak)
	}
}

func TestExportCSV(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "worker")
	createEntry(t, app, token, timeEntryPayload{Date: "2026-03-02", StartTime: "08:00", EndTime: "09:30", HourlyRate: 200, Notes: "standup, review"})

	response := doRequest(t, app, http.MethodGet, "/api/export/2026/3/csv", token, nil)
	expectStatus(t, response, http.StatusOK)
	if disposition := response.Header.Get("Content-Disposition"); !strings.Contains(disposition, "timetrackpro-2026-03.csv") {
		t.Fatalf("unexpected content disposition %q", disposition)
	}

	records, err := csv.NewReader(response.Body).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 2 || strings.Join(records[0], ",") != strings.Join(services.ExportCSVHeaders, ",") {
		t.Fatalf("unexpected csv %v", records)
	}
	row := records[1]
	if row[0] != "2026-03-02" || row[3] != "1h 30m" || row[4] != "90" || row[7] != "300" || row[10] != "standup, review" {
		t.Fatalf("unexpected csv row %v", row)
	}
}

func TestExportJSONHonoursOptions(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "worker")
	createEntry(t, app, token, timeEntryPayload{Date: "2026-03-02", StartTime: "08:00", EndTime: "09:30", HourlyRate: 200, Notes: "private"})

	response := doRequest(t, app, http.MethodGet, "/api/export/2026/3/json?notes=false&salary=false", token, nil)
	expectStatus(t, response, http.StatusOK)
	var document services.ExportDocument
	decodeBody(t, response, &document)

	if document.Username != "worker" || document.Year != 2026 || document.Month != 3 || len(document.Entries) != 1 {
		t.Fatalf("unexpected document %+v", document)
	}
	if document.Entries[0].Notes != "" || document.Entries[0].Payment != nil || document.Summary.TotalPayment != nil {
		t.Fatalf("expected notes and salary to be omitted, got %+v", document.Entries[0])
	}
	if document.Summary.WorkedMinutes != 90 || document.Summary.Worked != "1h 30m" {
		t.Fatalf("unexpected summary %+v", document.Summary)
	}

	invalid := doRequest(t, app, http.MethodGet, "/api/export/2026/13/json", token, nil)
	expectStatus(t, invalid, http.StatusBadRequest)
}
