package elasticsearch

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-todo/internal/domain/entity"
	"github.com/oksasatya/go-ddd-todo/internal/domain/repository"
	vo "github.com/oksasatya/go-ddd-todo/internal/domain/valueobject"
)

// userIndex is the write side of UserDirectory.
type userIndex interface {
	Index(ctx context.Context, u *entity.User) error
	Remove(ctx context.Context, id vo.UserID) error
}

// IndexedUserRepository keeps the search index in step with the primary
// store. The store is authoritative: index failures are logged and dropped.
type IndexedUserRepository struct {
	repository.UserRepository
	index  userIndex
	logger *logrus.Logger
}

func NewIndexedUserRepository(inner repository.UserRepository, index userIndex, logger *logrus.Logger) *IndexedUserRepository {
	return &IndexedUserRepository{UserRepository: inner, index: index, logger: logger}
}

func (r *IndexedUserRepository) Save(ctx context.Context, u *entity.User) error {
	if err := r.UserRepository.Save(ctx, u); err != nil {
		return err
	}
	if err := r.index.Index(ctx, u); err != nil && r.logger != nil {
		r.logger.WithError(err).WithField("user_id", u.ID().String()).Warn("es index failed")
	}
	return nil
}

func (r *IndexedUserRepository) Delete(ctx context.Context, id vo.UserID) error {
	if err := r.UserRepository.Delete(ctx, id); err != nil {
		return err
	}
	if err := r.index.Remove(ctx, id); err != nil && r.logger != nil {
		r.logger.WithError(err).WithField("user_id", id.String()).Warn("es remove failed")
	}
	return nil
}

var _ repository.UserRepository = (*IndexedUserRepository)(nil)
