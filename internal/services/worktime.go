package services

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/terraincognita07/timetrackpro/internal/models"
)

var ErrInvalidClock = errors.New("time must be HH:MM")

// ParseClock converts a 24h "HH:MM" wall-clock string into minutes since
// midnight.
func ParseClock(raw string) (int, error) {
	if len(raw) != 5 || raw[2] != ':' || !isDigits(raw[:2]) || !isDigits(raw[3:]) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, raw)
	}
	hours, _ := strconv.Atoi(raw[:2])
	minutes, _ := strconv.Atoi(raw[3:])
	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, raw)
	}
	return hours*60 + minutes, nil
}

func isDigits(value string) bool {
	for _, char := range value {
		if char < '0' || char > '9' {
			return false
		}
	}
	return value != ""
}

// MinutesBetween returns end minus start in minutes. There is no overnight
// wrap, so an end before the start gives a negative value.
func MinutesBetween(start string, end string) (int, error) {
	startMinutes, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	endMinutes, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	return endMinutes - startMinutes, nil
}

// IsDayOff reports whether start and end mark a non-working day.
func IsDayOff(start string, end string) bool {
	return start == models.DayOffClock && end == models.DayOffClock
}

// EntryMinutes is the worked duration of an entry, 0 for day-off entries.
func EntryMinutes(entry models.TimeEntry) (int, error) {
	if entry.IsDayOff() {
		return 0, nil
	}
	return MinutesBetween(entry.StartTime, entry.EndTime)
}

func splitMinutes(totalMinutes int) (negative bool, hours int, minutes int) {
	if totalMinutes < 0 {
		negative = true
		totalMinutes = -totalMinutes
	}
	return negative, totalMinutes / 60, totalMinutes % 60
}

// FormatDuration renders minutes as "8h 30m", dropping a zero part.
func FormatDuration(totalMinutes int) string {
	negative, hours, minutes := splitMinutes(totalMinutes)

	var text string
	switch {
	case hours == 0:
		text = fmt.Sprintf("%dm", minutes)
	case minutes == 0:
		text = fmt.Sprintf("%dh", hours)
	default:
		text = fmt.Sprintf("%dh %dm", hours, minutes)
	}
	if negative {
		return "-" + text
	}
	return text
}

// FormatSignedDuration renders minutes as "+H:MM" or "-H:MM", and "0:00" for
// zero.
func FormatSignedDuration(totalMinutes int) string {
	negative, hours, minutes := splitMinutes(totalMinutes)
	text := fmt.Sprintf("%d:%02d", hours, minutes)
	switch {
	case totalMinutes == 0:
		return text
	case negative:
		return "-" + text
	default:
		return "+" + text
	}
}
