package common

const (
	GigOpen     = "open"
	GigAssigned = "assigned"

	BidPending  = "pending"
	BidHired    = "hired"
	BidRejected = "rejected"

	RoleClient     = "client"
	RoleFreelancer = "freelancer"
)

// GigTransitionAllowed reports whether a gig may move between the two statuses.
// Assigned is terminal: there is no un-hire and no close-without-hire path.
func GigTransitionAllowed(from, to string) bool {
	return from == GigOpen && to == GigAssigned
}

// BidTransitionAllowed reports whether a bid may move between the two statuses.
// Only pending bids change status; hired and rejected are terminal.
func BidTransitionAllowed(from, to string) bool {
	if from != BidPending {
		return false
	}

	return to == BidHired || to == BidRejected
}
