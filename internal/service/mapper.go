package service

import (
	"gig-marketplace-api/internal/entity"
)

func mapGig(g *entity.Gig) *entity.GigOutputModel {
	out := &entity.GigOutputModel{
		Id:          g.Id.String(),
		Title:       g.Title,
		Description: g.Description,
		Budget:      g.Budget,
		Status:      g.Status,
		OwnerId:     g.OwnerId.String(),
		CreatedAt:   g.CreatedAt,
	}
	if g.FreelancerId.Valid {
		out.FreelancerId = g.FreelancerId.UUID.String()
	}

	return out
}

func mapGigs(gigs []entity.Gig) []entity.GigOutputModel {
	s := make([]entity.GigOutputModel, 0)
	for _, gig := range gigs {
		s = append(s, *mapGig(&gig))
	}

	return s
}

func mapGigWithOwner(g *entity.GigWithOwner) *entity.GigOutputModel {
	out := mapGig(&g.Gig)
	out.Owner = &entity.UserOutputModel{
		Id:    g.OwnerId.String(),
		Name:  g.OwnerName,
		Email: g.OwnerEmail,
	}

	return out
}

func mapGigsWithOwner(gigs []entity.GigWithOwner) []entity.GigOutputModel {
	s := make([]entity.GigOutputModel, 0)
	for _, gig := range gigs {
		s = append(s, *mapGigWithOwner(&gig))
	}

	return s
}

func mapBid(b *entity.Bid) *entity.BidOutputModel {
	return &entity.BidOutputModel{
		Id:           b.Id.String(),
		GigId:        b.GigId.String(),
		FreelancerId: b.FreelancerId.String(),
		Message:      b.Message,
		Price:        b.Price,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
	}
}

func mapBidsWithBidder(bids []entity.BidWithBidder) []entity.BidOutputModel {
	s := make([]entity.BidOutputModel, 0)
	for _, bid := range bids {
		out := mapBid(&bid.Bid)
		out.Bidder = &entity.UserOutputModel{
			Id:    bid.FreelancerId.String(),
			Name:  bid.BidderName,
			Email: bid.BidderEmail,
		}
		s = append(s, *out)
	}

	return s
}

func mapBidsWithGig(bids []entity.BidWithGig) []entity.BidOutputModel {
	s := make([]entity.BidOutputModel, 0)
	for _, bid := range bids {
		out := mapBid(&bid.Bid)
		out.Gig = &entity.GigRefOutputModel{
			Id:      bid.GigId.String(),
			Title:   bid.GigTitle,
			Status:  bid.GigStatus,
			OwnerId: bid.GigOwnerId.String(),
		}
		s = append(s, *out)
	}

	return s
}
