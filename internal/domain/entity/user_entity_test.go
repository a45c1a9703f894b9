package entity_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-todo/internal/domain/entity"
	vo "github.com/oksasatya/go-ddd-todo/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-todo/pkg/serrors"
)

func mustEmail(t *testing.T, s string) vo.Email {
	t.Helper()
	e, err := vo.NewEmail(s)
	require.NoError(t, err)
	return e
}

func mustPassword(t *testing.T, s string) vo.PlainPassword {
	t.Helper()
	p, err := vo.NewPassword(s)
	require.NoError(t, err)
	return p
}

func TestNewUser(t *testing.T) {
	t.Parallel()

	email := mustEmail(t, "jane@example.com")
	pwd := mustPassword(t, "Password123")

	u, err := entity.NewUser("Jane", email, pwd)
	require.NoError(t, err)
	require.False(t, u.ID().IsZero())
	require.Equal(t, vo.RoleUser, u.Role())
	require.False(t, u.IsAdmin())
	require.Equal(t, u.CreatedAt(), u.UpdatedAt())
	require.True(t, u.ValidatePassword("Password123"))

	for _, name := range []string{
		"", "   ",
		strings.Repeat("n", entity.MaxNameLength+1),
		" " + strings.Repeat("n", entity.MaxNameLength) + " ",
	} {
		_, err := entity.NewUser(name, email, pwd)
		require.ErrorIs(t, err, serrors.ErrValidation, "name %q", name)
	}

	_, err = entity.NewUser(strings.Repeat("n", entity.MaxNameLength), email, pwd)
	require.NoError(t, err)

	_, err = entity.NewUser("Jane", vo.Email{}, pwd)
	require.ErrorIs(t, err, serrors.ErrValidation)
}

func TestUserRoleTransitions(t *testing.T) {
	t.Parallel()

	u, err := entity.NewUser("Jane", mustEmail(t, "jane@example.com"), mustPassword(t, "Password123"))
	require.NoError(t, err)

	require.ErrorIs(t, u.DemoteToUser(), serrors.ErrInvalidStateTransition)
	require.NoError(t, u.PromoteToAdmin())
	require.True(t, u.IsAdmin())
	require.ErrorIs(t, u.PromoteToAdmin(), serrors.ErrInvalidStateTransition)
	require.NoError(t, u.DemoteToUser())
	require.Equal(t, vo.RoleUser, u.Role())
}

func TestUserUpdatePasswordStoresHash(t *testing.T) {
	t.Parallel()

	u := entity.ReconstituteUser(entity.UserSnapshot{
		ID:        vo.NewUserID(),
		Name:      "Jane",
		Email:     mustEmail(t, "jane@example.com"),
		Password:  vo.HashedPasswordFrom("unused"),
		Role:      vo.RoleUser,
		CreatedAt: stale,
		UpdatedAt: stale,
	})

	require.NoError(t, u.UpdatePassword(mustPassword(t, "NewPassword9")))
	_, isHashed := u.Password().(vo.HashedPassword)
	require.True(t, isHashed, "stored password must be the hashed variant")
	require.True(t, u.ValidatePassword("NewPassword9"))
	require.False(t, u.ValidatePassword("Password123"))
	require.True(t, u.UpdatedAt().After(stale))
}

func TestUserUpdateNameAndEmail(t *testing.T) {
	t.Parallel()

	u := entity.ReconstituteUser(entity.UserSnapshot{
		ID:        vo.NewUserID(),
		Name:      "Jane",
		Email:     mustEmail(t, "jane@example.com"),
		Password:  vo.HashedPasswordFrom("h"),
		Role:      vo.RoleUser,
		CreatedAt: stale,
		UpdatedAt: stale,
	})

	require.ErrorIs(t, u.UpdateName(" "), serrors.ErrValidation)
	require.Equal(t, stale, u.UpdatedAt())

	require.NoError(t, u.UpdateName("Janet"))
	require.Equal(t, "Janet", u.Name())

	u.UpdateEmail(mustEmail(t, "janet@example.com"))
	require.Equal(t, "janet@example.com", u.Email().String())
	require.True(t, u.UpdatedAt().After(stale))

	snap := u.Snapshot()
	require.Equal(t, snap, entity.ReconstituteUser(snap).Snapshot())
}
