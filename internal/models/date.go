package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid calendar date")

// Date is a calendar day with no time-of-day or location. The zero value is
// the unset date.
type Date struct {
	value time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{value: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date t falls on in its own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate accepts YYYY-MM-DD, or an RFC 3339 timestamp whose literal date
// part is used without converting between zones.
func ParseDate(raw string) (Date, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) > len(DateLayout) && trimmed[len(DateLayout)] == 'T' {
		if _, err := time.Parse(time.RFC3339, trimmed); err != nil {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
		}
		trimmed = trimmed[:len(DateLayout)]
	}

	parsed, err := time.Parse(DateLayout, trimmed)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return Date{value: parsed}, nil
}

func (date Date) Year() int          { return date.value.Year() }
func (date Date) Month() time.Month  { return date.value.Month() }
func (date Date) Day() int           { return date.value.Day() }
func (date Date) IsZero() bool       { return date.value.IsZero() }
func (date Date) Equal(o Date) bool  { return date.value.Equal(o.value) }
func (date Date) Before(o Date) bool { return date.value.Before(o.value) }
func (date Date) After(o Date) bool  { return date.value.After(o.value) }

// ISOWeekday numbers Monday as 1 and Sunday as 7.
func (date Date) ISOWeekday() int {
	weekday := int(date.value.Weekday())
	if weekday == 0 {
		return 7
	}
	return weekday
}

func (date Date) AddDays(days int) Date {
	return Date{value: date.value.AddDate(0, 0, days)}
}

// DaysUntil returns the number of calendar days from date to other.
func (date Date) DaysUntil(other Date) int {
	return int(other.value.Sub(date.value).Hours() / 24)
}

func (date Date) String() string {
	if date.IsZero() {
		return ""
	}
	return date.value.Format(DateLayout)
}

func (date Date) Value() (driver.Value, error) {
	if date.IsZero() {
		return nil, nil
	}
	return date.String(), nil
}

func (date *Date) Scan(src any) error {
	switch typed := src.(type) {
	case nil:
		*date = Date{}
		return nil
	case time.Time:
		*date = DateOf(typed)
		return nil
	case string:
		parsed, err := ParseDate(typed)
		if err != nil {
			return err
		}
		*date = parsed
		return nil
	case []byte:
		return date.Scan(string(typed))
	default:
		return fmt.Errorf("scan date: unsupported type %T", src)
	}
}

func (date Date) MarshalJSON() ([]byte, error) {
	if date.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(date.String())
}

func (date *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*date = Date{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*date = parsed
	return nil
}
