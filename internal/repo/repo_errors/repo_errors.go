package repo_errors

import "errors"

var (
	ErrNotFound = errors.New("entity not found")
	ErrConflict = errors.New("uniqueness constraint violated")

	// ErrNotOpen is returned by the conditional gig assignment when the
	// compare-and-swap on status loses: the gig was no longer open at commit.
	ErrNotOpen = errors.New("gig is not open")
)
