package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-todo/internal/application/dto"
	"github.com/oksasatya/go-ddd-todo/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-todo/internal/domain/repository"
	vo "github.com/oksasatya/go-ddd-todo/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-todo/pkg/serrors"
)

type CreateUserUseCase struct {
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewCreateUserUseCase(users repo.UserRepository, logger *logrus.Logger) *CreateUserUseCase {
	return &CreateUserUseCase{Users: users, Logger: loggerOrDiscard(logger)}
}

// Execute registers a new user. The password is hashed when the user is
// stored, never kept in plain text.
func (uc *CreateUserUseCase) Execute(ctx context.Context, in dto.CreateUserDTO) (*dto.UserDTO, error) {
	email, err := vo.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	password, err := vo.NewPassword(in.Password)
	if err != nil {
		return nil, err
	}

	existing, err := uc.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if existing != nil {
		return nil, serrors.With(serrors.ErrConflict, "user with email %s already exists", email)
	}

	u, err := entity.NewUser(in.Name, email, password)
	if err != nil {
		return nil, err
	}

	if err := uc.Users.Save(ctx, u); err != nil {
		uc.Logger.WithError(err).WithField("email", email.String()).Error("save user failed")
		return nil, fmt.Errorf("save user: %w", err)
	}
	uc.Logger.WithField("user_id", u.ID().String()).Info("user registered")

	out := dto.UserToDTO(u)
	return &out, nil
}

type GetUserByIDUseCase struct {
	Users repo.UserRepository
}

func NewGetUserByIDUseCase(users repo.UserRepository) *GetUserByIDUseCase {
	return &GetUserByIDUseCase{Users: users}
}

func (uc *GetUserByIDUseCase) Execute(ctx context.Context, id string) (*dto.UserDTO, error) {
	u, err := findUser(ctx, uc.Users, id)
	if err != nil {
		return nil, err
	}
	out := dto.UserToDTO(u)
	return &out, nil
}

type UpdateUserUseCase struct {
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewUpdateUserUseCase(users repo.UserRepository, logger *logrus.Logger) *UpdateUserUseCase {
	return &UpdateUserUseCase{Users: users, Logger: loggerOrDiscard(logger)}
}

// Execute applies the non-nil fields of in. Moving to an email owned by a
// different user is a conflict; keeping the current email is allowed.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, id string, in dto.UpdateUserDTO) (*dto.UserDTO, error) {
	u, err := findUser(ctx, uc.Users, id)
	if err != nil {
		return nil, err
	}

	var (
		email    vo.Email
		password vo.PlainPassword
	)
	if in.Email != nil {
		if email, err = vo.NewEmail(*in.Email); err != nil {
			return nil, err
		}
	}
	if in.Password != nil {
		if password, err = vo.NewPassword(*in.Password); err != nil {
			return nil, err
		}
	}

	if in.Name != nil {
		if err := u.UpdateName(*in.Name); err != nil {
			return nil, err
		}
	}
	if in.Email != nil && !email.Equals(u.Email()) {
		owner, err := uc.Users.FindByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("find user by email: %w", err)
		}
		if owner != nil && !owner.ID().Equals(u.ID()) {
			return nil, serrors.With(serrors.ErrConflict, "user with email %s already exists", email)
		}
		u.UpdateEmail(email)
	}
	if in.Password != nil {
		if err := u.UpdatePassword(password); err != nil {
			return nil, err
		}
	}

	if err := uc.Users.Save(ctx, u); err != nil {
		uc.Logger.WithError(err).WithField("user_id", id).Error("save user failed")
		return nil, fmt.Errorf("save user: %w", err)
	}

	out := dto.UserToDTO(u)
	return &out, nil
}

type DeleteUserUseCase struct {
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewDeleteUserUseCase(users repo.UserRepository, logger *logrus.Logger) *DeleteUserUseCase {
	return &DeleteUserUseCase{Users: users, Logger: loggerOrDiscard(logger)}
}

// Execute removes the user. Todos referencing the user are left in place.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, id string) error {
	u, err := findUser(ctx, uc.Users, id)
	if err != nil {
		return err
	}
	if err := uc.Users.Delete(ctx, u.ID()); err != nil {
		uc.Logger.WithError(err).WithField("user_id", id).Error("delete user failed")
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// PromoteUserUseCase grants the admin role to an existing user.
type PromoteUserUseCase struct {
	Users repo.UserRepository
}

func NewPromoteUserUseCase(users repo.UserRepository) *PromoteUserUseCase {
	return &PromoteUserUseCase{Users: users}
}

func (uc *PromoteUserUseCase) Execute(ctx context.Context, id string) (*dto.UserDTO, error) {
	u, err := findUser(ctx, uc.Users, id)
	if err != nil {
		return nil, err
	}
	if err := u.PromoteToAdmin(); err != nil {
		return nil, err
	}
	if err := uc.Users.Save(ctx, u); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	out := dto.UserToDTO(u)
	return &out, nil
}

func findUser(ctx context.Context, users repo.UserRepository, id string) (*entity.User, error) {
	uid, err := vo.ParseUserID(id)
	if err != nil {
		return nil, err
	}
	u, err := users.FindByID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if u == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user with id %s not found", id)
	}
	return u, nil
}
