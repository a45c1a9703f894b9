package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ddd-todo/internal/domain/entity"
	"github.com/oksasatya/go-ddd-todo/internal/domain/repository"
	vo "github.com/oksasatya/go-ddd-todo/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-todo/pkg/serrors"
)

const userColumns = `id, name, email, password_hash, role, created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByID(ctx context.Context, id vo.UserID) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id.String())
	return scanUser(row)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email vo.Email) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email.String())
	return scanUser(row)
}

// Save inserts the user or overwrites every column of an existing row.
func (r *UserRepository) Save(ctx context.Context, u *entity.User) error {
	s := u.Snapshot()
	hash, err := s.Password.Hash()
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			password_hash = EXCLUDED.password_hash,
			role = EXCLUDED.role,
			updated_at = EXCLUDED.updated_at
	`, s.ID.String(), s.Name, s.Email.String(), hash, s.Role.String(), s.CreatedAt, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return serrors.Wrap(serrors.ErrConflict, err, "user with email %s already exists", s.Email)
		}
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id vo.UserID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id.String()); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		id, name, email, hash, role string
		createdAt, updatedAt        time.Time
	)
	if err := row.Scan(&id, &name, &email, &hash, &role, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	uid, err := vo.ParseUserID(id)
	if err != nil {
		return nil, fmt.Errorf("stored user: %w", err)
	}
	mail, err := vo.NewEmail(email)
	if err != nil {
		return nil, fmt.Errorf("stored user %s: %w", id, err)
	}
	parsedRole, err := vo.ParseRole(role)
	if err != nil {
		return nil, fmt.Errorf("stored user %s: %w", id, err)
	}

	return entity.ReconstituteUser(entity.UserSnapshot{
		ID:        uid,
		Name:      name,
		Email:     mail,
		Password:  vo.HashedPasswordFrom(hash),
		Role:      parsedRole,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}), nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
