package services

import (
	"errors"
	"strings"
	"testing"
)

func intPointer(value int) *int {
	return &value
}

func stringPointer(value string) *string {
	return &value
}

func TestEntryServiceCreateValidation(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name  string
		input TimeEntryInput
		field string
		err   error
	}

	valid := TimeEntryInput{Date: "2026-03-02", StartTime: "08:00", EndTime: "16:00", HourlyRate: 190}
	with := func(change func(input *TimeEntryInput)) TimeEntryInput {
		input := valid
		change(&input)
		return input
	}

	tests := []testCase{
		{name: "missing date", input: with(func(input *TimeEntryInput) { input.Date = "" }), field: "date", err: ErrInvalidDate},
		{name: "date outside supported years", input: with(func(input *TimeEntryInput) { input.Date = "1999-12-31" }), field: "date", err: ErrInvalidDate},
		{name: "malformed start", input: with(func(input *TimeEntryInput) { input.StartTime = "8:00" }), field: "startTime", err: ErrInvalidClock},
		{name: "malformed end", input: with(func(input *TimeEntryInput) { input.EndTime = "25:00" }), field: "endTime", err: ErrInvalidClock},
		{name: "end before start", input: with(func(input *TimeEntryInput) { input.StartTime = "22:00"; input.EndTime = "06:00" }), field: "endTime", err: ErrEndBeforeStart},
		{name: "negative rate", input: with(func(input *TimeEntryInput) { input.HourlyRate = -1 }), field: "hourlyRate", err: ErrNegativeRate},
		{name: "mood too high", input: with(func(input *TimeEntryInput) { input.MoodRating = intPointer(6) }), field: "moodRating", err: ErrInvalidMood},
		{name: "energy too low", input: with(func(input *TimeEntryInput) { input.EnergyLevel = intPointer(0) }), field: "energyLevel", err: ErrInvalidEnergy},
		{name: "notes too long", input: with(func(input *TimeEntryInput) { input.Notes = strings.Repeat("x", MaxEntryNotesLength+1) }), field: "notes", err: ErrNotesTooLong},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			repo := newMemoryEntryRepository()
			service := NewEntryService(repo)
			_, err := service.Create(1, test.input)

			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if validationErr.Field != test.field || !errors.Is(err, test.err) {
				t.Fatalf("expected %s/%v, got %s/%v", test.field, test.err, validationErr.Field, validationErr.Err)
			}
			if len(repo.entries) != 0 {
				t.Fatalf("expected nothing stored, got %d entries", len(repo.entries))
			}
		})
	}
}

func TestEntryServiceCreateDayOffForcesZeroRate(t *testing.T) {
	t.Parallel()

	service := NewEntryService(newMemoryEntryRepository())
	entry, err := service.Create(1, TimeEntryInput{
		Date:       "2026-03-06",
		StartTime:  "00:00",
		EndTime:    "00:00",
		HourlyRate: 250,
		Notes:      "  Volný den ",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if entry.HourlyRate != 0 {
		t.Fatalf("expected day off rate 0, got %d", entry.HourlyRate)
	}
	if entry.Notes != "Volný den" {
		t.Fatalf("expected trimmed notes, got %q", entry.Notes)
	}

	listed, err := service.ListForMonth(1, 2026, 3)
	if err != nil {
		t.Fatalf("ListForMonth returned error: %v", err)
	}
	if len(listed) != 1 || listed[0].Notes != "Volný den" {
		t.Fatalf("expected the day off to be listed with its notes, got %+v", listed)
	}
}

func TestEntryServiceOwnership(t *testing.T) {
	t.Parallel()

	service := NewEntryService(newMemoryEntryRepository())
	entry, err := service.Create(1, TimeEntryInput{Date: "2026-03-02", StartTime: "08:00", EndTime: "16:00"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := service.Get(2, entry.ID); !errors.Is(err, ErrEntryForbidden) {
		t.Fatalf("expected ErrEntryForbidden on get, got %v", err)
	}
	if _, err := service.Update(2, entry.ID, TimeEntryPatch{Notes: stringPointer("mine now")}); !errors.Is(err, ErrEntryForbidden) {
		t.Fatalf("expected ErrEntryForbidden on update, got %v", err)
	}
	if err := service.Delete(2, entry.ID); !errors.Is(err, ErrEntryForbidden) {
		t.Fatalf("expected ErrEntryForbidden on delete, got %v", err)
	}
	if err := service.Delete(1, 999); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}

	stored, err := service.Get(1, entry.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if stored.Notes != "" {
		t.Fatalf("expected untouched notes, got %q", stored.Notes)
	}
}

func TestEntryServiceUpdatePatch(t *testing.T) {
	t.Parallel()

	service := NewEntryService(newMemoryEntryRepository())
	entry, err := service.Create(1, TimeEntryInput{Date: "2026-03-02", StartTime: "08:00", EndTime: "16:00", HourlyRate: 200, MoodRating: intPointer(3)})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := service.Update(1, entry.ID, TimeEntryPatch{EndTime: stringPointer("17:30"), EnergyLevel: intPointer(5)})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.EndTime != "17:30" || updated.StartTime != "08:00" || updated.HourlyRate != 200 {
		t.Fatalf("unexpected patched entry %+v", updated)
	}
	if updated.MoodRating == nil || *updated.MoodRating != 3 || updated.EnergyLevel == nil || *updated.EnergyLevel != 5 {
		t.Fatalf("unexpected ratings %+v", updated)
	}

	cleared, err := service.Update(1, entry.ID, TimeEntryPatch{MoodRating: intPointer(ClearRating)})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if cleared.MoodRating != nil || cleared.EnergyLevel == nil || *cleared.EnergyLevel != 5 {
		t.Fatalf("expected mood cleared and energy kept, got %+v", cleared)
	}
	var validationErr *ValidationError
	if _, err := service.Update(1, entry.ID, TimeEntryPatch{EnergyLevel: intPointer(-1)}); !errors.As(err, &validationErr) || validationErr.Field != "energyLevel" {
		t.Fatalf("expected energyLevel validation error, got %v", err)
	}

	_, err = service.Update(1, entry.ID, TimeEntryPatch{StartTime: stringPointer("18:00")})
	if !errors.Is(err, ErrEndBeforeStart) {
		t.Fatalf("expected merged entry to be rejected with ErrEndBeforeStart, got %v", err)
	}

	dayOff, err := service.Update(1, entry.ID, TimeEntryPatch{StartTime: stringPointer("00:00"), EndTime: stringPointer("00:00")})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if dayOff.HourlyRate != 0 {
		t.Fatalf("expected day off to clear the rate, got %d", dayOff.HourlyRate)
	}

	unchanged, err := service.Update(1, entry.ID, TimeEntryPatch{})
	if err != nil {
		t.Fatalf("empty Update returned error: %v", err)
	}
	if unchanged != dayOff {
		t.Fatalf("expected empty patch to return the stored entry")
	}
}

func TestEntryServiceWorkedDatesSkipsDayOff(t *testing.T) {
	t.Parallel()

	service := NewEntryService(newMemoryEntryRepository(
		entryOn(0, 2, "08:00", "16:00", 0),
		entryOn(0, 3, "00:00", "00:00", 0),
	))
	dates, err := service.WorkedDates(1)
	if err != nil {
		t.Fatalf("WorkedDates returned error: %v", err)
	}
	if len(dates) != 1 || dates[0].String() != "2026-03-02" {
		t.Fatalf("expected only 2026-03-02, got %v", dates)
	}
}
