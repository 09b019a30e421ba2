package service

import (
	"context"
	"errors"
	"gig-marketplace-api/internal/common"
	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/repo"
	"gig-marketplace-api/internal/repo/repo_errors"
	"strings"
)

type BidService struct {
	bidRepo  repo.Bid
	gigRepo  repo.Gig
	userRepo repo.User
	notifier Notifier
}

func NewBidService(repos *repo.Repositories, notifier Notifier) *BidService {
	return &BidService{
		bidRepo:  repos.Bid,
		gigRepo:  repos.Gig,
		userRepo: repos.User,
		notifier: notifier,
	}
}

// PlaceBid validates in a fixed order, first failing check wins.
func (s *BidService) PlaceBid(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error) {
	gig, err := s.gigRepo.GetGigById(ctx, input.GigId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrGigNotFound
		}

		return nil, err
	}

	if gig.Status != common.GigOpen {
		return nil, ErrGigNotOpenForBidding
	}

	if gig.OwnerId.String() == input.FreelancerId {
		return nil, ErrOwnGigBid
	}

	exists, err := s.bidRepo.HasBid(ctx, input.GigId, input.FreelancerId)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateBid
	}

	if input.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if strings.TrimSpace(input.Message) == "" {
		return nil, ErrEmptyMessage
	}

	bidderExists, err := s.userRepo.DoesUserExistById(ctx, input.FreelancerId)
	if err != nil {
		return nil, err
	}
	if !bidderExists {
		return nil, ErrUserNotFound
	}

	id, err := s.bidRepo.CreateBid(ctx, input)
	if err != nil {
		// two concurrent submissions can both pass HasBid; the unique
		// constraint decides the loser
		if errors.Is(err, repo_errors.ErrConflict) {
			return nil, ErrDuplicateBid
		}

		return nil, err
	}

	bid, err := s.bidRepo.GetBidById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapBid(bid), nil
}

func (s *BidService) GetBidsForGig(ctx context.Context, gigId string, requesterId string) ([]entity.BidOutputModel, error) {
	gig, err := s.gigRepo.GetGigById(ctx, gigId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrGigNotFound
		}

		return nil, err
	}

	if gig.OwnerId.String() != requesterId {
		return nil, ErrNotGigOwner
	}

	bids, err := s.bidRepo.GetGigBids(ctx, gigId)
	if err != nil {
		return nil, err
	}

	return mapBidsWithBidder(bids), nil
}

func (s *BidService) GetUserBids(ctx context.Context, freelancerId string) ([]entity.BidOutputModel, error) {
	bids, err := s.bidRepo.GetFreelancerBids(ctx, freelancerId)
	if err != nil {
		return nil, err
	}

	return mapBidsWithGig(bids), nil
}

// Hire runs the hire transition. The repo executes the mutation as one
// transaction whose commit point is a conditional update on the gig status,
// so of two concurrent hires on the same gig exactly one succeeds and the
// other comes back with ErrGigAlreadyAssigned.
func (s *BidService) Hire(ctx context.Context, bidId string, requesterId string) (*entity.HireOutputModel, error) {
	bid, err := s.bidRepo.GetBidById(ctx, bidId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrBidNotFound
		}

		return nil, err
	}

	gig, err := s.gigRepo.GetGigById(ctx, bid.GigId.String())
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrGigNotFound
		}

		return nil, err
	}

	if gig.OwnerId.String() != requesterId {
		return nil, ErrHireNotAllowed
	}

	err = s.gigRepo.AssignGig(ctx, gig.Id, bid.Id, bid.FreelancerId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotOpen) {
			return nil, ErrGigAlreadyAssigned
		}

		return nil, err
	}

	// fire-and-forget: the hire is durable regardless of delivery
	s.notifier.Publish(bid.FreelancerId.String(), entity.Notification{
		Type:    "hired",
		Message: "You have been hired for: " + gig.Title,
		GigId:   gig.Id.String(),
	})

	return &entity.HireOutputModel{
		GigId:   gig.Id.String(),
		Message: "Freelancer hired successfully",
	}, nil
}
