package api

import (
	"fmt"
	"net/http"
	"testing"
)

func TestCreateEntryValidation(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "worker")

	cases := []struct {
		name    string
		payload timeEntryPayload
		field   string
	}{
		{name: "bad date", payload: timeEntryPayload{Date: "2026-13-01", StartTime: "08:00", EndTime: "09:00"}, field: "date"},
		{name: "bad clock", payload: timeEntryPayload{Date: "2026-03-02", StartTime: "8am", EndTime: "09:00"}, field: "startTime"},
		{name: "end before start", payload: timeEntryPayload{Date: "2026-03-02", StartTime: "17:00", EndTime: "09:00"}, field: "endTime"},
		{name: "negative rate", payload: timeEntryPayload{Date: "2026-03-02", StartTime: "08:00", EndTime: "09:00", HourlyRate: -1}, field: "hourlyRate"},
	}
	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			response := doRequest(t, app, http.MethodPost, "/api/time-entries", token, testCase.payload)
			expectStatus(t, response, http.StatusBadRequest)
			if field := readAPIError(t, response)["field"]; field != testCase.field {
				t.Fatalf("expected field %q, got %q", testCase.field, field)
			}
		})
	}
}

func TestEntryLifecycle(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "worker")

	created := createEntry(t, app, token, timeEntryPayload{Date: "2026-03-02", StartTime: "08:00", EndTime: "16:00", HourlyRate: 250, Notes: "  sprint  "})
	if created.ID == 0 || created.Date != "2026-03-02" || created.Notes != "sprint" {
		t.Fatalf("unexpected created entry %+v", created)
	}
	createEntry(t, app, token, timeEntryPayload{Date: "2026-04-01", StartTime: "08:00", EndTime: "09:00"})

	month := doRequest(t, app, http.MethodGet, "/api/time-entries/2026/3", token, nil)
	expectStatus(t, month, http.StatusOK)
	var march []entryResponse
	decodeBody(t, month, &march)
	if len(march) != 1 || march[0].ID != created.ID {
		t.Fatalf("expected only the march entry, got %+v", march)
	}

	path := fmt.Sprintf("/api/time-entries/%d", created.ID)
	patched := doRequest(t, app, http.MethodPatch, path, token, map[string]any{"endTime": "17:30"})
	expectStatus(t, patched, http.StatusOK)
	var updated entryResponse
	decodeBody(t, patched, &updated)
	if updated.EndTime != "17:30" || updated.StartTime != "08:00" || updated.HourlyRate != 250 {
		t.Fatalf("unexpected patched entry %+v", updated)
	}

	invalidPatch := doRequest(t, app, http.MethodPatch, path, token, map[string]any{"startTime": "18:00"})
	expectStatus(t, invalidPatch, http.StatusBadRequest)

	deleted := doRequest(t, app, http.MethodDelete, path, token, nil)
	expectStatus(t, deleted, http.StatusNoContent)

	missing := doRequest(t, app, http.MethodGet, path, token, nil)
	expectStatus(t, missing, http.StatusNotFound)

	all := doRequest(t, app, http.MethodGet, "/api/time-entries", token, nil)
	expectStatus(t, all, http.StatusOK)
	var remaining []entryResponse
	decodeBody(t, all, &remaining)
	if len(remaining) != 1 || remaining[0].Date != "2026-04-01" {
		t.Fatalf("unexpected remaining entries %+v", remaining)
	}
}

func TestEntryPatchClearsRatingWithZero(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "rater")

	mood := 4
	energy := 2
	created := createEntry(t, app, token, timeEntryPayload{Date: "2026-03-02", StartTime: "08:00", EndTime: "12:00", MoodRating: &mood, EnergyLevel: &energy})
	path := fmt.Sprintf("/api/time-entries/%d", created.ID)

	kept := doRequest(t, app, http.MethodPatch, path, token, map[string]any{"moodRating": nil})
	expectStatus(t, kept, http.StatusOK)
	var unchanged entryResponse
	decodeBody(t, kept, &unchanged)
	if unchanged.MoodRating == nil || *unchanged.MoodRating != 4 {
		t.Fatalf("expected null to leave the mood rating, got %+v", unchanged)
	}

	cleared := doRequest(t, app, http.MethodPatch, path, token, map[string]any{"moodRating": 0})
	expectStatus(t, cleared, http.StatusOK)
	var updated entryResponse
	decodeBody(t, cleared, &updated)
	if updated.MoodRating != nil || updated.EnergyLevel == nil || *updated.EnergyLevel != 2 {
		t.Fatalf("expected mood cleared and energy kept, got %+v", updated)
	}

	stored := doRequest(t, app, http.MethodGet, path, token, nil)
	expectStatus(t, stored, http.StatusOK)
	var reloaded entryResponse
	decodeBody(t, stored, &reloaded)
	if reloaded.MoodRating != nil {
		t.Fatalf("expected cleared mood to be persisted, got %+v", reloaded)
	}
}

func TestEntriesAreOwnerScoped(t *testing.T) {
	app, _ := newTestApp(t)
	owner := registerUser(t, app, "owner")
	intruder := registerUser(t, app, "intruder")

	entry := createEntry(t, app, owner, timeEntryPayload{Date: "2026-03-02", StartTime: "08:00", EndTime: "16:00"})
	path := fmt.Sprintf("/api/time-entries/%d", entry.ID)

	expectStatus(t, doRequest(t, app, http.MethodGet, path, intruder, nil), http.StatusForbidden)
	expectStatus(t, doRequest(t, app, http.MethodPatch, path, intruder, map[string]any{"notes": "mine"}), http.StatusForbidden)
	expectStatus(t, doRequest(t, app, http.MethodDelete, path, intruder, nil), http.StatusForbidden)
	expectStatus(t, doRequest(t, app, http.MethodGet, path, owner, nil), http.StatusOK)
}

func TestDayOffEntryDropsRate(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "worker")

	entry := createEntry(t, app, token, timeEntryPayload{Date: "2026-03-06", StartTime: "00:00", EndTime: "00:00", HourlyRate: 300, Notes: "Volný den"})
	if entry.HourlyRate != 0 {
		t.Fatalf("expected day off rate 0, got %d", entry.HourlyRate)
	}
}
