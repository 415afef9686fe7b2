package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var ErrInvalidWorkDays = errors.New("work days must be distinct weekdays 1-7")

// WorkDays is the set of ISO weekdays (Monday=1) a user is expected to work.
// It is stored as a comma separated list such as "1,2,3,4,5".
type WorkDays []int

func DefaultWorkDays() WorkDays {
	return WorkDays{1, 2, 3, 4, 5}
}

func ParseWorkDays(raw string) (WorkDays, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return WorkDays{}, nil
	}

	parts := strings.Split(trimmed, ",")
	days := make(WorkDays, 0, len(parts))
	for _, part := range parts {
		day, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWorkDays, raw)
		}
		days = append(days, day)
	}
	return days.Normalize()
}

// Normalize validates the set and returns it sorted.
func (days WorkDays) Normalize() (WorkDays, error) {
	seen := make(map[int]struct{}, len(days))
	normalized := make(WorkDays, 0, len(days))
	for _, day := range days {
		if day < 1 || day > 7 {
			return nil, ErrInvalidWorkDays
		}
		if _, duplicate := seen[day]; duplicate {
			return nil, ErrInvalidWorkDays
		}
		seen[day] = struct{}{}
		normalized = append(normalized, day)
	}
	sort.Ints(normalized)
	return normalized, nil
}

func (days WorkDays) Contains(isoWeekday int) bool {
	for _, day := range days {
		if day == isoWeekday {
			return true
		}
	}
	return false
}

func (days WorkDays) String() string {
	parts := make([]string, 0, len(days))
	for _, day := range days {
		parts = append(parts, strconv.Itoa(day))
	}
	return strings.Join(parts, ",")
}

func (days WorkDays) Value() (driver.Value, error) {
	return days.String(), nil
}

func (days *WorkDays) Scan(src any) error {
	var raw string
	switch typed := src.(type) {
	case nil:
		*days = WorkDays{}
		return nil
	case string:
		raw = typed
	case []byte:
		raw = string(typed)
	default:
		return fmt.Errorf("scan work days: unsupported type %T", src)
	}

	parsed, err := ParseWorkDays(raw)
	if err != nil {
		return err
	}
	*days = parsed
	return nil
}
