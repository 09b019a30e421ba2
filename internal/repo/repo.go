package repo

import (
	"context"
	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/repo/pgdb"
	"gig-marketplace-api/pkg/postgres"

	"github.com/google/uuid"
)

type Diagnostics interface {
	Ping() error
}

type User interface {
	DoesUserExistById(ctx context.Context, id string) (bool, error)
}

type Gig interface {
	CreateGig(ctx context.Context, input *entity.CreateGigInput) (uuid.UUID, error)
	GetGigById(ctx context.Context, id string) (*entity.Gig, error)
	GetGigWithOwnerById(ctx context.Context, id string) (*entity.GigWithOwner, error)
	GetOpenGigs(ctx context.Context, keyword string) ([]entity.GigWithOwner, error)
	GetGigsByOwnerId(ctx context.Context, ownerId string) ([]entity.Gig, error)
	AssignGig(ctx context.Context, gigId uuid.UUID, bidId uuid.UUID, freelancerId uuid.UUID) error
}

type Bid interface {
	CreateBid(ctx context.Context, input *entity.CreateBidInput) (uuid.UUID, error)
	GetBidById(ctx context.Context, id string) (*entity.Bid, error)
	GetGigBids(ctx context.Context, gigId string) ([]entity.BidWithBidder, error)
	GetFreelancerBids(ctx context.Context, freelancerId string) ([]entity.BidWithGig, error)
	HasBid(ctx context.Context, gigId string, freelancerId string) (bool, error)
}

type Repositories struct {
	Diagnostics
	User
	Gig
	Bid
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics: pgdb.NewDiagnosticsRepo(p),
		User:        pgdb.NewUserRepo(p),
		Gig:         pgdb.NewGigRepo(p),
		Bid:         pgdb.NewBidRepo(p),
	}
}
