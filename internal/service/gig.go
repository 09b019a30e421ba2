package service

import (
	"context"
	"errors"
	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/repo"
	"gig-marketplace-api/internal/repo/repo_errors"
	"strings"
)

type GigService struct {
	gigRepo  repo.Gig
	userRepo repo.User
}

func NewGigService(repos *repo.Repositories) *GigService {
	return &GigService{
		gigRepo:  repos.Gig,
		userRepo: repos.User,
	}
}

func (s *GigService) CreateGig(ctx context.Context, input *entity.CreateGigInput) (*entity.GigOutputModel, error) {
	if input.Budget <= 0 {
		return nil, ErrInvalidBudget
	}
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, ErrMissingFields
	}

	exists, err := s.userRepo.DoesUserExistById(ctx, input.OwnerId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	id, err := s.gigRepo.CreateGig(ctx, input)
	if err != nil {
		return nil, err
	}

	gig, err := s.gigRepo.GetGigById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapGig(gig), nil
}

func (s *GigService) GetGigById(ctx context.Context, gigId string) (*entity.GigOutputModel, error) {
	gig, err := s.gigRepo.GetGigWithOwnerById(ctx, gigId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrGigNotFound
		}

		return nil, err
	}

	return mapGigWithOwner(gig), nil
}

func (s *GigService) GetOpenGigs(ctx context.Context, keyword string) ([]entity.GigOutputModel, error) {
	gigs, err := s.gigRepo.GetOpenGigs(ctx, keyword)
	if err != nil {
		return nil, err
	}

	return mapGigsWithOwner(gigs), nil
}

func (s *GigService) GetUserGigs(ctx context.Context, ownerId string) ([]entity.GigOutputModel, error) {
	gigs, err := s.gigRepo.GetGigsByOwnerId(ctx, ownerId)
	if err != nil {
		return nil, err
	}

	return mapGigs(gigs), nil
}
