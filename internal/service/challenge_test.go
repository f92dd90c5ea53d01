package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecohero-plus/ecohero-api/internal/domain"
)

type fakeChallengeRepo struct {
	challenges []domain.Challenge
}

func (f *fakeChallengeRepo) Create(_ context.Context, challenge domain.Challenge) (domain.Challenge, error) {
	challenge.ID = domain.ChallengeID(uuid.NewString())
	f.challenges = append(f.challenges, challenge)

	return challenge, nil
}

func (f *fakeChallengeRepo) FindActive(_ context.Context, audience domain.Audience) ([]domain.Challenge, error) {
	var found []domain.Challenge
	for _, c := range f.challenges {
		if !c.IsActive {
			continue
		}
		if audience != "" && c.Audience != audience {
			continue
		}
		found = append(found, c)
	}

	return found, nil
}

func (f *fakeChallengeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.challenges)), nil
}

func TestChallengeService_Seed(t *testing.T) {
	repo := &fakeChallengeRepo{}
	svc := NewChallengeService(repo)

	result, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Seeded)
	assert.EqualValues(t, 6, result.Count)

	// Second call is a no-op reporting the existing count.
	result, err = svc.Seed(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Seeded)
	assert.EqualValues(t, 6, result.Count)
	assert.Len(t, repo.challenges, 6)

	for _, c := range repo.challenges {
		assert.True(t, c.IsActive)
		assert.GreaterOrEqual(t, c.Points, domain.MinChallengePoints)
		assert.LessOrEqual(t, c.Points, domain.MaxChallengePoints)
		assert.True(t, c.Audience.Valid())
	}
}

func TestChallengeService_ListActive(t *testing.T) {
	repo := &fakeChallengeRepo{}
	svc := NewChallengeService(repo)

	_, err := svc.Seed(context.Background())
	require.NoError(t, err)

	t.Run("no filter returns everything active", func(t *testing.T) {
		challenges, err := svc.ListActive(context.Background(), "")
		require.NoError(t, err)
		assert.Len(t, challenges, 6)
	})

	t.Run("kid filter narrows the list", func(t *testing.T) {
		challenges, err := svc.ListActive(context.Background(), "kid")
		require.NoError(t, err)
		assert.Len(t, challenges, 3)
		for _, c := range challenges {
			assert.Equal(t, domain.AudienceKid, c.Audience)
		}
	})

	t.Run("unknown audience value is ignored", func(t *testing.T) {
		challenges, err := svc.ListActive(context.Background(), "alien")
		require.NoError(t, err)
		assert.Len(t, challenges, 6)
	})
}
