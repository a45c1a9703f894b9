package valueobject

import (
	"regexp"
	"strings"

	"github.com/oksasatya/go-ddd-todo/pkg/serrors"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is a validated, lowercased email address. Two Emails that differ only
// in case are equal because the value is normalized at construction.
type Email struct{ value string }

// NewEmail validates raw and returns it lowercased.
func NewEmail(raw string) (Email, error) {
	if strings.TrimSpace(raw) == "" {
		return Email{}, serrors.With(serrors.ErrValidation, "email cannot be empty")
	}
	if !emailPattern.MatchString(raw) {
		return Email{}, serrors.With(serrors.ErrValidation, "invalid email format")
	}
	return Email{value: strings.ToLower(raw)}, nil
}

func (e Email) String() string         { return e.value }
func (e Email) IsZero() bool           { return e.value == "" }
func (e Email) Equals(other Email) bool { return e.value == other.value }
