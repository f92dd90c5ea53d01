package service

import (
	"context"
	"fmt"

	"github.com/ecohero-plus/ecohero-api/internal/domain"
)

type ChallengeRepository interface {
	Create(ctx context.Context, challenge domain.Challenge) (domain.Challenge, error)
	FindActive(ctx context.Context, audience domain.Audience) ([]domain.Challenge, error)
	Count(ctx context.Context) (int64, error)
}

type ChallengeService struct {
	repo ChallengeRepository
}

func NewChallengeService(repo ChallengeRepository) *ChallengeService {
	return &ChallengeService{
		repo: repo,
	}
}

// ListActive returns active challenges. Only "kid" and "adult" narrow the
// list; anything else returns all audiences, matching the public catalog
// behavior the mobile app expects.
func (s *ChallengeService) ListActive(ctx context.Context, audience string) ([]domain.Challenge, error) {
	filter := domain.Audience("")
	if a := domain.Audience(audience); a == domain.AudienceKid || a == domain.AudienceAdult {
		filter = a
	}

	challenges, err := s.repo.FindActive(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindActive -> %w", err)
	}

	return challenges, nil
}

// SeedResult reports what a seeding call did.
type SeedResult struct {
	Seeded bool
	Count  int64
}

// Seed inserts the default challenge set once. A non-empty challenge table
// makes it a no-op reporting the existing count.
func (s *ChallengeService) Seed(ctx context.Context) (SeedResult, error) {
	existing, err := s.repo.Count(ctx)
	if err != nil {
		return SeedResult{}, fmt.Errorf("s.repo.Count -> %w", err)
	}

	if existing > 0 {
		return SeedResult{Seeded: false, Count: existing}, nil
	}

	for _, challenge := range defaultChallenges {
		if _, err := s.repo.Create(ctx, challenge); err != nil {
			return SeedResult{}, fmt.Errorf("s.repo.Create -> %w", err)
		}
	}

	return SeedResult{Seeded: true, Count: int64(len(defaultChallenges))}, nil
}

var defaultChallenges = []domain.Challenge{
	{
		Title:       "Draw a poster about saving trees",
		Description: "Create a colorful poster that shows how trees help the planet.",
		Audience:    domain.AudienceKid,
		Points:      100,
		IsActive:    true,
	},
	{
		Title:       "Water a plant",
		Description: "Water a plant at home or school and take a photo.",
		Audience:    domain.AudienceKid,
		Points:      100,
		IsActive:    true,
	},
	{
		Title:       "Switch off lights before bed",
		Description: "Make it a habit to switch off unnecessary lights.",
		Audience:    domain.AudienceKid,
		Points:      50,
		IsActive:    true,
	},
	{
		Title:       "Plant a tree",
		Description: "Plant a tree in your community or backyard.",
		Audience:    domain.AudienceAdult,
		Points:      1000,
		IsActive:    true,
	},
	{
		Title:       "Recycle bottles",
		Description: "Recycle at least 10 plastic or glass bottles.",
		Audience:    domain.AudienceAdult,
		Points:      500,
		IsActive:    true,
	},
	{
		Title:       "Use bicycle/public transport",
		Description: "Choose a bike or public transport instead of a car for a trip.",
		Audience:    domain.AudienceAdult,
		Points:      300,
		IsActive:    true,
	},
}
