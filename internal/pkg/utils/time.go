package utils

import (
	"errors"
	"mommycare-service/internal/pkg/constvars"
	"strings"
	"time"
)

var errEmptyDate = errors.New("empty date")

// ParseDateOnly accepts either a YYYY-MM-DD date or an RFC3339 timestamp and
// returns midnight UTC of that calendar day.
func ParseDateOnly(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errEmptyDate
	}

	parsed, err := time.Parse(constvars.AppDateOnlyLayout, value)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return time.Time{}, err
		}
	}
	return StartOfDayUTC(parsed), nil
}

func StartOfDayUTC(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

