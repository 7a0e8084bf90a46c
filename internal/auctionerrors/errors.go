package auctionerrors

import (
	"errors"
	"fmt"
)

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrNoBids          = errors.New("no bids found for auction")
	ErrNoBilling       = errors.New("no billing record for auction")
)

// Business logic errors
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrInvalidInput    = errors.New("invalid input")
	ErrBidTooLow       = errors.New("bid amount too low")
	ErrInvalidState    = errors.New("operation conflicts with current state")
	ErrAccessDenied    = errors.New("access denied")
)

// BidTooLowError carries the minimum acceptable amount so callers can show the
// bidder what to bid next. Matches ErrBidTooLow under errors.Is.
type BidTooLowError struct {
	Minimum float64
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid amount too low: minimum acceptable bid is %.2f", e.Minimum)
}

func (e *BidTooLowError) Unwrap() error {
	return ErrBidTooLow
}
