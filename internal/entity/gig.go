package entity

import (
	"github.com/google/uuid"
)

// db model
type Gig struct {
	Id           uuid.UUID     `json:"id" db:"id"`
	Title        string        `json:"title" db:"title"`
	Description  string        `json:"description" db:"description"`
	Budget       float64       `json:"budget" db:"budget"`
	Status       string        `json:"status" db:"status"`
	OwnerId      uuid.UUID     `json:"ownerId" db:"owner_id"`
	FreelancerId uuid.NullUUID `json:"freelancerId" db:"freelancer_id"`
	CreatedAt    string        `json:"createdAt" db:"created_at"`
}

// read model: gig joined with its owner's display fields
type GigWithOwner struct {
	Gig
	OwnerName  string
	OwnerEmail string
}

// service + repo input model
type CreateGigInput struct {
	Title       string  // given
	Description string  // given
	Budget      float64 // given
	OwnerId     string  // given
	// Id UUID sets automatically
	// Status sets to "open"
	// CreatedAt sets automatically
}

// controller model
type GigOutputModel struct {
	Id           string           `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Budget       float64          `json:"budget"`
	Status       string           `json:"status"`
	OwnerId      string           `json:"ownerId"`
	FreelancerId string           `json:"freelancerId,omitempty"`
	Owner        *UserOutputModel `json:"owner,omitempty"`
	CreatedAt    string           `json:"createdAt"`
}

// minimal parent-gig projection attached to a freelancer's own bids
type GigRefOutputModel struct {
	Id      string `json:"id"`
	Title   string `json:"title"`
	Status  string `json:"status"`
	OwnerId string `json:"ownerId"`
}
