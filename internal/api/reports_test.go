package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/terraincognita07/timetrackpro/internal/models"
)

func TestMonthlyReportReconcilesWithEntries(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "worker")

	first := createEntry(t, app, token, timeEntryPayload{Date: "2026-03-02", StartTime: "08:00", EndTime: "09:30"})
	createEntry(t, app, token, timeEntryPayload{Date: "2026-03-02", StartTime: "13:00", EndTime: "14:00"})
	createEntry(t, app, token, timeEntryPayload{Date: "2026-03-03", StartTime: "00:00", EndTime: "00:00"})

	response := doRequest(t, app, http.MethodGet, "/api/monthly-reports/2026/3", token, nil)
	expectStatus(t, response, http.StatusOK)
	var report models.MonthlyReport
	decodeBody(t, response, &report)
	if report.WorkDays != 22 || report.TargetMinutes != 10560 || report.WorkedMinutes != 150 || report.OvertimeMinutes != 150-10560 {
		t.Fatalf("unexpected report %+v", report)
	}

	expectStatus(t, doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/time-entries/%d", first.ID), token, nil), http.StatusNoContent)

	response = doRequest(t, app, http.MethodGet, "/api/monthly-reports/2026/3", token, nil)
	expectStatus(t, response, http.StatusOK)
	var reconciled models.MonthlyReport
	decodeBody(t, response, &reconciled)
	if reconciled.ID != report.ID || reconciled.WorkedMinutes != 60 || reconciled.OvertimeMinutes != 60-10560 {
		t.Fatalf("expected report to follow the deleted entry, got %+v", reconciled)
	}
}

func TestMonthlyReportRejectsInvalidMonth(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "worker")

	for _, path := range []string{"/api/monthly-reports/2026/13", "/api/monthly-reports/2026/0", "/api/monthly-reports/1999/5"} {
		expectStatus(t, doRequest(t, app, http.MethodGet, path, token, nil), http.StatusBadRequest)
	}
}

func TestMonthlyReportAdjustAndList(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "worker")
	other := registerUser(t, app, "other")

	for _, path := range []string{"/api/monthly-reports/2026/1", "/api/monthly-reports/2026/3", "/api/monthly-reports/2025/12"} {
		expectStatus(t, doRequest(t, app, http.MethodGet, path, token, nil), http.StatusOK)
	}

	listed := doRequest(t, app, http.MethodGet, "/api/monthly-reports", token, nil)
	expectStatus(t, listed, http.StatusOK)
	var reports []models.MonthlyReport
	decodeBody(t, listed, &reports)
	if len(reports) != 3 || reports[0].Month != 3 || reports[2].Year != 2025 {
		t.Fatalf("expected newest first, got %+v", reports)
	}

	path := fmt.Sprintf("/api/monthly-reports/%d", reports[0].ID)
	invalid := doRequest(t, app, http.MethodPatch, path, token, map[string]any{"vacationDays": 40})
	expectStatus(t, invalid, http.StatusBadRequest)
	if field := readAPIError(t, invalid)["field"]; field != "vacationDays" {
		t.Fatalf("expected vacationDays field, got %q", field)
	}

	expectStatus(t, doRequest(t, app, http.MethodPatch, path, other, map[string]any{"vacationDays": 1}), http.StatusForbidden)

	adjusted := doRequest(t, app, http.MethodPatch, path, token, map[string]any{"vacationDays": 2, "carriedFromMinutes": 90})
	expectStatus(t, adjusted, http.StatusOK)
	var report models.MonthlyReport
	decodeBody(t, adjusted, &report)
	if report.VacationDays != 2 || report.CarriedFromMinutes != 90 || report.TargetMinutes != 10560 {
		t.Fatalf("unexpected adjusted report %+v", report)
	}
}
