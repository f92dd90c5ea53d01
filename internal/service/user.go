package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecohero-plus/ecohero-api/internal/domain"
	"github.com/ecohero-plus/ecohero-api/internal/repository"
)

var (
	ErrUserNotFound        = repository.ErrUserNotFound
	ErrInvalidAge          = errors.New("age must be between 0 and 120")
	ErrParentEmailRequired = errors.New("parent email required for under-18 users")
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id domain.UserID) (domain.User, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) Register(ctx context.Context, user domain.User) (domain.User, error) {
	if user.Age < 0 || user.Age > 120 {
		return domain.User{}, ErrInvalidAge
	}

	if user.IsMinor() && user.ParentEmail == "" {
		return domain.User{}, ErrParentEmailRequired
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *UserService) GetUser(ctx context.Context, id domain.UserID) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}
