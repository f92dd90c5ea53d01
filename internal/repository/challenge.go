package repository

import (
	"context"
	"fmt"

	"github.com/ecohero-plus/ecohero-api/internal/domain"
	"github.com/ecohero-plus/ecohero-api/internal/repository/dao"
)

var ErrChallengeNotFound = dao.ErrChallengeNotFound

type ChallengeDAO interface {
	Insert(ctx context.Context, challenge dao.Challenge) (dao.Challenge, error)
	FindByID(ctx context.Context, id string) (dao.Challenge, error)
	FindActive(ctx context.Context, audience string) ([]dao.Challenge, error)
	Count(ctx context.Context) (int64, error)
}

type ChallengeRepository struct {
	dao ChallengeDAO
}

func NewChallengeRepository(dao ChallengeDAO) *ChallengeRepository {
	return &ChallengeRepository{
		dao: dao,
	}
}

func (r *ChallengeRepository) Create(ctx context.Context, challenge domain.Challenge) (domain.Challenge, error) {
	created, err := r.dao.Insert(ctx, dao.Challenge{
		Title:       challenge.Title,
		Description: challenge.Description,
		Audience:    string(challenge.Audience),
		Points:      challenge.Points,
		IsActive:    challenge.IsActive,
	})
	if err != nil {
		return domain.Challenge{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ChallengeRepository) FindByID(ctx context.Context, id domain.ChallengeID) (domain.Challenge, error) {
	found, err := r.dao.FindByID(ctx, id.String())
	if err != nil {
		return domain.Challenge{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ChallengeRepository) FindActive(ctx context.Context, audience domain.Audience) ([]domain.Challenge, error) {
	found, err := r.dao.FindActive(ctx, string(audience))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindActive -> %w", err)
	}

	challenges := make([]domain.Challenge, 0, len(found))
	for _, c := range found {
		challenges = append(challenges, r.daoToDomain(c))
	}

	return challenges, nil
}

func (r *ChallengeRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return count, nil
}

func (r *ChallengeRepository) daoToDomain(c dao.Challenge) domain.Challenge {
	return domain.Challenge{
		ID:          domain.ChallengeID(c.ID),
		Title:       c.Title,
		Description: c.Description,
		Audience:    domain.Audience(c.Audience),
		Points:      c.Points,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
