package dto

import (
	"strings"
	"time"

	"github.com/oksasatya/go-ddd-todo/pkg/serrors"
)

// TimeLayout is the wire format of every timestamp in a DTO.
const TimeLayout = time.RFC3339Nano

const dateOnlyLayout = "2006-01-02"

// FormatTime renders t in UTC using TimeLayout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime accepts an RFC 3339 timestamp or a plain calendar date.
func ParseTime(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, serrors.With(serrors.ErrValidation, "%s cannot be empty", field)
	}
	if t, err := time.Parse(TimeLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(dateOnlyLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, serrors.With(serrors.ErrValidation, "invalid %s: %s", field, s)
}
