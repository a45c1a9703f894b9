package valueobject

import (
	"strings"

	"github.com/oksasatya/go-ddd-todo/pkg/serrors"
)

// Priority ranks a todo. Values are ordered: PriorityHigh > PriorityMedium > PriorityLow.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

var priorityNames = map[Priority]string{
	PriorityLow:    "LOW",
	PriorityMedium: "MEDIUM",
	PriorityHigh:   "HIGH",
}

// ParsePriority parses s case-insensitively.
func ParsePriority(s string) (Priority, error) {
	upper := strings.ToUpper(s)
	for p, name := range priorityNames {
		if name == upper {
			return p, nil
		}
	}
	return 0, serrors.With(serrors.ErrValidation,
		"invalid priority value: %s. Valid values are: LOW, MEDIUM, HIGH", s)
}

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return "UNKNOWN"
}

func (p Priority) IsValid() bool {
	_, ok := priorityNames[p]
	return ok
}

// IsHigherThan reports whether p ranks strictly above other.
func (p Priority) IsHigherThan(other Priority) bool { return p > other }
