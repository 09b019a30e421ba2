package service

import "errors"

var (
	ErrGigNotFound = errors.New("gig not found")
	ErrBidNotFound = errors.New("bid not found")

	ErrGigNotOpenForBidding = errors.New("gig is not open for bidding")
	ErrGigAlreadyAssigned   = errors.New("gig is already assigned")

	ErrOwnGigBid      = errors.New("cannot bid on own gig")
	ErrNotGigOwner    = errors.New("user is not the gig owner")
	ErrHireNotAllowed = errors.New("user is not authorized to hire for this gig")

	ErrDuplicateBid = errors.New("already placed a bid on this gig")

	ErrUserNotFound = errors.New("user with given id not found")

	ErrInvalidPrice  = errors.New("price must be a positive number")
	ErrEmptyMessage  = errors.New("message must not be empty")
	ErrInvalidBudget = errors.New("budget must be a positive number")
	ErrMissingFields = errors.New("title and description are required")
)
