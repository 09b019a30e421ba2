package entity

import (
	"github.com/google/uuid"
)

// db model
type Bid struct {
	Id           uuid.UUID `json:"id" db:"id"`
	GigId        uuid.UUID `json:"gigId" db:"gig_id"`
	FreelancerId uuid.UUID `json:"freelancerId" db:"freelancer_id"`
	Message      string    `json:"message" db:"message"`
	Price        float64   `json:"price" db:"price"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    string    `json:"createdAt" db:"created_at"`
}

// read model: bid joined with its author's display fields
type BidWithBidder struct {
	Bid
	BidderName  string
	BidderEmail string
}

// read model: bid joined with its parent gig's projection
type BidWithGig struct {
	Bid
	GigTitle   string
	GigStatus  string
	GigOwnerId uuid.UUID
}

// service + repo input model
type CreateBidInput struct {
	GigId        string  // given
	FreelancerId string  // given
	Message      string  // given
	Price        float64 // given
	// Id UUID sets automatically
	// Status sets to "pending"
	// CreatedAt sets automatically
}

// controller model
type BidOutputModel struct {
	Id           string             `json:"id"`
	GigId        string             `json:"gigId"`
	FreelancerId string             `json:"freelancerId"`
	Message      string             `json:"message"`
	Price        float64            `json:"price"`
	Status       string             `json:"status"`
	Bidder       *UserOutputModel   `json:"bidder,omitempty"`
	Gig          *GigRefOutputModel `json:"gig,omitempty"`
	CreatedAt    string             `json:"createdAt"`
}

// controller model returned by a successful hire
type HireOutputModel struct {
	GigId   string `json:"gigId"`
	Message string `json:"message"`
}
