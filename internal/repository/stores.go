package repository

import (
	model "auctionhouse/internal/models"
)

// AuctionStore holds auction records. UpdateAuction is the only mutation path
// for a live auction: apply runs under the store's write lock so the engine's
// read-validate-write sequence commits as one atomic conditional update.
type AuctionStore interface {
	AddAuction(auction model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	ListAuctions() []model.Auction
	UpdateAuction(auctionID string, apply func(auction *model.Auction) error) (model.Auction, error)
}

// BidLedger is the append-only record of committed bids.
type BidLedger interface {
	AppendBid(bid model.Bid) error
	GetBidsByAuction(auctionID string) ([]model.Bid, error)
}

// ActivityIndex tracks per-user auction sets: auctions the user bids on,
// auctions the user created, and auctions the user follows. Mutual exclusivity
// between those sets is the engine's job, not the store's.
type ActivityIndex interface {
	AddActiveBid(userID, auctionID string) error
	HasActiveBid(userID, auctionID string) bool
	AddActiveAuction(userID, auctionID string) error
	AddFollow(userID, auctionID string) error
	RemoveFollow(userID, auctionID string) error
	IsFollowing(userID, auctionID string) bool
}

// UserDirectory resolves user IDs to profile data for display purposes.
type UserDirectory interface {
	UpsertUser(user model.User) error
	GetUser(userID string) (model.User, error)
}

// BillingStore records billing state for auctions that closed with a winner.
type BillingStore interface {
	RecordBilling(billing model.BillingInfo) error
	GetBillingByAuction(auctionID string) (model.BillingInfo, error)
}
