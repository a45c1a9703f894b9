package valueobject

import (
	"strings"

	"github.com/oksasatya/go-ddd-todo/pkg/serrors"
)

// Role is the authorization role of a user.
type Role int

const (
	RoleUser Role = iota + 1
	RoleAdmin
)

var roleNames = map[Role]string{
	RoleUser:  "USER",
	RoleAdmin: "ADMIN",
}

// DefaultRole is assigned to newly registered users.
func DefaultRole() Role { return RoleUser }

// ParseRole parses s case-insensitively.
func ParseRole(s string) (Role, error) {
	upper := strings.ToUpper(s)
	for r, name := range roleNames {
		if name == upper {
			return r, nil
		}
	}
	return 0, serrors.With(serrors.ErrValidation,
		"invalid role value: %s. Valid values are: USER, ADMIN", s)
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "UNKNOWN"
}

func (r Role) IsValid() bool {
	_, ok := roleNames[r]
	return ok
}

func (r Role) IsAdmin() bool { return r == RoleAdmin }
func (r Role) IsUser() bool  { return r == RoleUser }
