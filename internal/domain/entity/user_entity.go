package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	vo "github.com/oksasatya/go-ddd-todo/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-todo/pkg/serrors"
)

// MaxNameLength is the maximum number of characters of a user name.
const MaxNameLength = 50

// User is the aggregate root for the user domain.
// The password is kept as a value object; once a password has been changed
// through UpdatePassword only its bcrypt hash is held.
type User struct {
	id        vo.UserID
	name      string
	email     vo.Email
	password  vo.Password
	role      vo.Role
	createdAt time.Time
	updatedAt time.Time
}

// NewUser validates name and returns a user with the default role and a fresh id.
func NewUser(name string, email vo.Email, password vo.Password) (*User, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if email.IsZero() {
		return nil, serrors.With(serrors.ErrValidation, "email cannot be empty")
	}
	if password == nil {
		return nil, serrors.With(serrors.ErrValidation, "password cannot be empty")
	}

	now := time.Now()
	return &User{
		id:        vo.NewUserID(),
		name:      name,
		email:     email,
		password:  password,
		role:      vo.DefaultRole(),
		createdAt: now,
		updatedAt: now,
	}, nil
}

// UserSnapshot is the full persisted state of a user.
type UserSnapshot struct {
	ID        vo.UserID
	Name      string
	Email     vo.Email
	Password  vo.Password
	Role      vo.Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReconstituteUser rebuilds a user from storage without validation.
func ReconstituteUser(s UserSnapshot) *User {
	return &User{
		id:        s.ID,
		name:      s.Name,
		email:     s.Email,
		password:  s.Password,
		role:      s.Role,
		createdAt: s.CreatedAt,
		updatedAt: s.UpdatedAt,
	}
}

// Snapshot returns a copy of the user state.
func (u *User) Snapshot() UserSnapshot {
	return UserSnapshot{
		ID:        u.id,
		Name:      u.name,
		Email:     u.email,
		Password:  u.password,
		Role:      u.role,
		CreatedAt: u.createdAt,
		UpdatedAt: u.updatedAt,
	}
}

func (u *User) ID() vo.UserID         { return u.id }
func (u *User) Name() string          { return u.name }
func (u *User) Email() vo.Email       { return u.email }
func (u *User) Password() vo.Password { return u.password }
func (u *User) Role() vo.Role         { return u.role }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
func (u *User) IsAdmin() bool         { return u.role.IsAdmin() }

func (u *User) UpdateName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	u.name = name
	u.touch()
	return nil
}

func (u *User) UpdateEmail(email vo.Email) {
	u.email = email
	u.touch()
}

// UpdatePassword hashes p and stores the hashed form. Hashing is CPU bound.
func (u *User) UpdatePassword(p vo.Password) error {
	if p == nil {
		return serrors.With(serrors.ErrValidation, "password cannot be empty")
	}
	hash, err := p.Hash()
	if err != nil {
		return err
	}
	u.password = vo.HashedPasswordFrom(hash)
	u.touch()
	return nil
}

// ValidatePassword reports whether plain matches the stored password.
func (u *User) ValidatePassword(plain string) bool {
	if u.password == nil {
		return false
	}
	return u.password.Compare(plain)
}

func (u *User) PromoteToAdmin() error {
	if u.role.IsAdmin() {
		return serrors.With(serrors.ErrInvalidStateTransition, "user is already an admin")
	}
	u.role = vo.RoleAdmin
	u.touch()
	return nil
}

func (u *User) DemoteToUser() error {
	if u.role.IsUser() {
		return serrors.With(serrors.ErrInvalidStateTransition, "user is already a regular user")
	}
	u.role = vo.RoleUser
	u.touch()
	return nil
}

func (u *User) touch() { u.updatedAt = time.Now() }

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return serrors.With(serrors.ErrValidation, "name cannot be empty")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return serrors.With(serrors.ErrValidation, "name cannot be longer than %d characters", MaxNameLength)
	}
	return nil
}
