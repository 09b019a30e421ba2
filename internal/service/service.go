package service

import (
	"context"
	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/repo"
)

type Diagnostics interface {
	Ping() error
}

type Gig interface {
	CreateGig(ctx context.Context, input *entity.CreateGigInput) (*entity.GigOutputModel, error)
	GetGigById(ctx context.Context, gigId string) (*entity.GigOutputModel, error)
	GetOpenGigs(ctx context.Context, keyword string) ([]entity.GigOutputModel, error)
	GetUserGigs(ctx context.Context, ownerId string) ([]entity.GigOutputModel, error)
}

type Bid interface {
	PlaceBid(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error)
	GetBidsForGig(ctx context.Context, gigId string, requesterId string) ([]entity.BidOutputModel, error)
	GetUserBids(ctx context.Context, freelancerId string) ([]entity.BidOutputModel, error)
	Hire(ctx context.Context, bidId string, requesterId string) (*entity.HireOutputModel, error)
}

// Notifier is the push channel the hire fan-out publishes to.
type Notifier interface {
	Publish(userId string, event entity.Notification)
}

type Services struct {
	Diagnostics Diagnostics
	Gig         Gig
	Bid         Bid
}

func NewServices(repos *repo.Repositories, notifier Notifier) *Services {
	return &Services{
		Diagnostics: NewDiagnosticsService(repos),
		Gig:         NewGigService(repos),
		Bid:         NewBidService(repos, notifier),
	}
}
