package repository

import (
	"context"
	"fmt"

	"github.com/ecohero-plus/ecohero-api/internal/domain"
	"github.com/ecohero-plus/ecohero-api/internal/repository/dao"
)

var ErrUserNotFound = dao.ErrUserNotFound

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id string) (dao.User, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, dao.User{
		Name:             user.Name,
		Age:              user.Age,
		Email:            user.Email,
		ParentEmail:      user.ParentEmail,
		IsParentApproved: user.IsParentApproved,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id domain.UserID) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id.String())
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:               domain.UserID(u.ID),
		Name:             u.Name,
		Age:              u.Age,
		Email:            u.Email,
		ParentEmail:      u.ParentEmail,
		IsParentApproved: u.IsParentApproved,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}
