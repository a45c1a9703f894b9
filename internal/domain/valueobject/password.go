package valueobject

import (
	"crypto/subtle"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/go-ddd-todo/pkg/serrors"
)

// HashCost is the bcrypt cost used when a plain password is hashed.
const HashCost = 10

const (
	minPasswordLength = 8
	maxPasswordBytes  = 72
)

// Password is either a PlainPassword (validated user input, hashed lazily) or
// a HashedPassword (read back from storage, never re-validated).
type Password interface {
	// Compare reports whether plain matches. It never fails: a mismatch or a
	// malformed stored hash both yield false.
	Compare(plain string) bool
	// Hash returns the storage form of the password. Hashing a plain password
	// is CPU bound and happens on every call.
	Hash() (string, error)

	sealed()
}

// PlainPassword holds a password that passed the complexity rules.
type PlainPassword struct{ value string }

// NewPassword validates plain: at least 8 characters with an uppercase letter,
// a lowercase letter and a digit.
func NewPassword(plain string) (PlainPassword, error) {
	if strings.TrimSpace(plain) == "" {
		return PlainPassword{}, serrors.With(serrors.ErrValidation, "password cannot be empty")
	}
	if len(plain) < minPasswordLength {
		return PlainPassword{}, serrors.With(serrors.ErrValidation, "password must be at least %d characters long", minPasswordLength)
	}
	// bcrypt refuses inputs longer than 72 bytes
	if len(plain) > maxPasswordBytes {
		return PlainPassword{}, serrors.With(serrors.ErrValidation, "password must be at most %d bytes long", maxPasswordBytes)
	}

	var upper, lower, digit bool
	for _, r := range plain {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return PlainPassword{}, serrors.With(serrors.ErrValidation,
			"password must contain at least one uppercase letter, one lowercase letter, and one number")
	}

	return PlainPassword{value: plain}, nil
}

func (p PlainPassword) Compare(plain string) bool {
	return subtle.ConstantTimeCompare([]byte(p.value), []byte(plain)) == 1
}

func (p PlainPassword) Hash() (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p.value), HashCost)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInternal, err, "hash password")
	}
	return string(b), nil
}

func (PlainPassword) sealed() {}

// HashedPassword wraps a bcrypt hash loaded from storage.
type HashedPassword struct{ hash string }

// HashedPasswordFrom wraps an existing hash without any validation.
func HashedPasswordFrom(hash string) HashedPassword { return HashedPassword{hash: hash} }

func (p HashedPassword) Compare(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.hash), []byte(plain)) == nil
}

func (p HashedPassword) Hash() (string, error) { return p.hash, nil }

func (HashedPassword) sealed() {}
