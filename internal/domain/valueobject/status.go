package valueobject

import (
	"strings"

	"github.com/oksasatya/go-ddd-todo/pkg/serrors"
)

// Status is the lifecycle state of a todo.
type Status int

const (
	StatusTodo Status = iota + 1
	StatusInProgress
	StatusDone
)

var statusNames = map[Status]string{
	StatusTodo:       "TODO",
	StatusInProgress: "IN_PROGRESS",
	StatusDone:       "DONE",
}

// DefaultStatus is the status of a freshly created todo.
func DefaultStatus() Status { return StatusTodo }

// ParseStatus parses s case-insensitively.
func ParseStatus(s string) (Status, error) {
	upper := strings.ToUpper(s)
	for st, name := range statusNames {
		if name == upper {
			return st, nil
		}
	}
	return 0, serrors.With(serrors.ErrValidation,
		"invalid status value: %s. Valid values are: TODO, IN_PROGRESS, DONE", s)
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s Status) IsTodo() bool       { return s == StatusTodo }
func (s Status) IsInProgress() bool { return s == StatusInProgress }
func (s Status) IsDone() bool       { return s == StatusDone }
