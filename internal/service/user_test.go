package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecohero-plus/ecohero-api/internal/domain"
	"github.com/ecohero-plus/ecohero-api/internal/repository"
)

type fakeUserRepo struct {
	users map[domain.UserID]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[domain.UserID]domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	user.ID = domain.UserID(uuid.NewString())
	f.users[user.ID] = user

	return user, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id domain.UserID) (domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return domain.User{}, fmt.Errorf("f.FindByID -> %w", repository.ErrUserNotFound)
	}
	return user, nil
}

func TestUserService_Register(t *testing.T) {
	t.Run("minor without parent email is rejected", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo())

		_, err := svc.Register(context.Background(), domain.User{Name: "Maya", Age: 15})
		assert.ErrorIs(t, err, ErrParentEmailRequired)
	})

	t.Run("minor with parent email succeeds", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo())

		user, err := svc.Register(context.Background(), domain.User{
			Name:        "Maya",
			Age:         15,
			ParentEmail: "parent@example.com",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
	})

	t.Run("adult without parent email succeeds", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo())

		user, err := svc.Register(context.Background(), domain.User{Name: "Alex", Age: 30})
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
	})

	t.Run("age out of range is rejected", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo())

		for _, age := range []int{-1, 121} {
			_, err := svc.Register(context.Background(), domain.User{Name: "X", Age: age, ParentEmail: "p@example.com"})
			assert.ErrorIs(t, err, ErrInvalidAge, "age %d", age)
		}
	})
}

func TestUserService_GetUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	created, err := svc.Register(context.Background(), domain.User{Name: "Alex", Age: 30})
	require.NoError(t, err)

	found, err := svc.GetUser(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetUser(context.Background(), domain.UserID("8b9d6a60-3c3b-4d26-9f2d-5a4f2a1c9e99"))
	assert.ErrorIs(t, err, ErrUserNotFound)
}
