package dto

import (
	"github.com/oksasatya/go-ddd-todo/internal/domain/entity"
	vo "github.com/oksasatya/go-ddd-todo/internal/domain/valueobject"
)

type CreateUserDTO struct {
	Name     string `json:"name" binding:"required,username"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,strongpwd"`
}

// UpdateUserDTO carries a partial update; nil fields are left untouched.
type UpdateUserDTO struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,username"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty" binding:"omitempty,strongpwd"`
}

type LoginUserDTO struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserDTO is the serialized form of a user. The password never leaves the
// domain.
type UserDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// AuthUserDTO is returned by a successful login.
type AuthUserDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

func UserToDTO(u *entity.User) UserDTO {
	return UserDTO{
		ID:        u.ID().String(),
		Name:      u.Name(),
		Email:     u.Email().String(),
		Role:      u.Role().String(),
		CreatedAt: FormatTime(u.CreatedAt()),
		UpdatedAt: FormatTime(u.UpdatedAt()),
	}
}

func UserToAuthDTO(u *entity.User, token string) AuthUserDTO {
	return AuthUserDTO{
		ID:    u.ID().String(),
		Name:  u.Name(),
		Email: u.Email().String(),
		Role:  u.Role().String(),
		Token: token,
	}
}

// UserFromDTO rebuilds a user from its serialized form. The DTO has no
// password, so passwordHash comes from the caller.
func UserFromDTO(d UserDTO, passwordHash string) (*entity.User, error) {
	id, err := vo.ParseUserID(d.ID)
	if err != nil {
		return nil, err
	}
	email, err := vo.NewEmail(d.Email)
	if err != nil {
		return nil, err
	}
	role, err := vo.ParseRole(d.Role)
	if err != nil {
		return nil, err
	}
	created, err := ParseTime("created_at", d.CreatedAt)
	if err != nil {
		return nil, err
	}
	updated, err := ParseTime("updated_at", d.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return entity.ReconstituteUser(entity.UserSnapshot{
		ID:        id,
		Name:      d.Name,
		Email:     email,
		Password:  vo.HashedPasswordFrom(passwordHash),
		Role:      role,
		CreatedAt: created,
		UpdatedAt: updated,
	}), nil
}
