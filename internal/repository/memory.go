package repository

import (
	"fmt"
	"sort"
	"sync"

	"auctionhouse/internal/auctionerrors"
	model "auctionhouse/internal/models"
)

// MemoryAuctionStore is a concurrency-safe in-memory implementation of AuctionStore
type MemoryAuctionStore struct {
	mu       sync.RWMutex
	auctions map[string]model.Auction // key: auctionID
}

// NewMemoryAuctionStore creates a new in-memory auction store
func NewMemoryAuctionStore() *MemoryAuctionStore {
	return &MemoryAuctionStore{
		auctions: make(map[string]model.Auction),
	}
}

// AddAuction stores a new auction record
func (s *MemoryAuctionStore) AddAuction(auction model.Auction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.auctions[auction.AuctionID]; ok {
		return fmt.Errorf("add auction %s: %w - auction already exists", auction.AuctionID, auctionerrors.ErrInvalidState)
	}
	s.auctions[auction.AuctionID] = auction
	return nil
}

// GetAuction returns a copy of the auction record
func (s *MemoryAuctionStore) GetAuction(auctionID string) (model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auction, ok := s.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// ListAuctions returns copies of all auction records
func (s *MemoryAuctionStore) ListAuctions() []model.Auction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(s.auctions))
	for _, a := range s.auctions {
		auctions = append(auctions, a)
	}
	return auctions
}

// UpdateAuction runs apply on the stored record under the write lock. If apply
// returns an error the record is left untouched and the error is returned
// unchanged, so callers can use it as an atomic compare-and-set.
func (s *MemoryAuctionStore) UpdateAuction(auctionID string, apply func(auction *model.Auction) error) (model.Auction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	auction, ok := s.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("update auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}

	if err := apply(&auction); err != nil {
		return model.Auction{}, err
	}

	s.auctions[auctionID] = auction
	return auction, nil
}

// MemoryBidLedger is a concurrency-safe in-memory implementation of BidLedger
type MemoryBidLedger struct {
	mu   sync.RWMutex
	bids map[string][]model.Bid // key: auctionID -> bids in commit order
}

// NewMemoryBidLedger creates a new in-memory bid ledger
func NewMemoryBidLedger() *MemoryBidLedger {
	return &MemoryBidLedger{
		bids: make(map[string][]model.Bid),
	}
}

// AppendBid appends a bid to the auction's ledger. The ledger is append-only;
// there is no update or delete.
func (l *MemoryBidLedger) AppendBid(bid model.Bid) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.bids[bid.AuctionID] = append(l.bids[bid.AuctionID], bid)
	return nil
}

// GetBidsByAuction returns the auction's bids ordered by bidding time.
// An auction with no bids yields an empty slice, not an error.
func (l *MemoryBidLedger) GetBidsByAuction(auctionID string) ([]model.Bid, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	bids := append([]model.Bid(nil), l.bids[auctionID]...)
	sort.SliceStable(bids, func(i, j int) bool {
		return bids[i].CreatedAt.Before(bids[j].CreatedAt)
	})
	return bids, nil
}

// MemoryActivityIndex is a concurrency-safe in-memory implementation of ActivityIndex.
// Membership is set-based: adds are idempotent and removes of absent entries are no-ops.
type MemoryActivityIndex struct {
	mu             sync.RWMutex
	activeBids     map[string]map[string]struct{} // key: userID -> set of auctionIDs bid on
	activeAuctions map[string]map[string]struct{} // key: userID -> set of auctionIDs created
	following      map[string]map[string]struct{} // key: userID -> set of auctionIDs followed
}

// NewMemoryActivityIndex creates a new in-memory activity index
func NewMemoryActivityIndex() *MemoryActivityIndex {
	return &MemoryActivityIndex{
		activeBids:     make(map[string]map[string]struct{}),
		activeAuctions: make(map[string]map[string]struct{}),
		following:      make(map[string]map[string]struct{}),
	}
}

func addToSet(sets map[string]map[string]struct{}, userID, auctionID string) {
	set, ok := sets[userID]
	if !ok {
		set = make(map[string]struct{})
		sets[userID] = set
	}
	set[auctionID] = struct{}{}
}

func setContains(sets map[string]map[string]struct{}, userID, auctionID string) bool {
	_, ok := sets[userID][auctionID]
	return ok
}

// AddActiveBid marks the auction as one the user has bid on
func (x *MemoryActivityIndex) AddActiveBid(userID, auctionID string) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	addToSet(x.activeBids, userID, auctionID)
	return nil
}

// HasActiveBid reports whether the user has bid on the auction
func (x *MemoryActivityIndex) HasActiveBid(userID, auctionID string) bool {
	x.mu.RLock()
	defer x.mu.RUnlock()

	return setContains(x.activeBids, userID, auctionID)
}

// AddActiveAuction marks the auction as one the user created
func (x *MemoryActivityIndex) AddActiveAuction(userID, auctionID string) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	addToSet(x.activeAuctions, userID, auctionID)
	return nil
}

// AddFollow adds the auction to the user's following set
func (x *MemoryActivityIndex) AddFollow(userID, auctionID string) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	addToSet(x.following, userID, auctionID)
	return nil
}

// RemoveFollow removes the auction from the user's following set if present
func (x *MemoryActivityIndex) RemoveFollow(userID, auctionID string) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	delete(x.following[userID], auctionID)
	return nil
}

// IsFollowing reports whether the user follows the auction
func (x *MemoryActivityIndex) IsFollowing(userID, auctionID string) bool {
	x.mu.RLock()
	defer x.mu.RUnlock()

	return setContains(x.following, userID, auctionID)
}

// MemoryUserDirectory is a concurrency-safe in-memory implementation of UserDirectory
type MemoryUserDirectory struct {
	mu    sync.RWMutex
	users map[string]model.User // key: userID
}

// NewMemoryUserDirectory creates a new in-memory user directory
func NewMemoryUserDirectory() *MemoryUserDirectory {
	return &MemoryUserDirectory{
		users: make(map[string]model.User),
	}
}

// UpsertUser inserts or replaces the user's profile record
func (d *MemoryUserDirectory) UpsertUser(user model.User) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.users[user.UserID] = user
	return nil
}

// GetUser returns the user's profile record
func (d *MemoryUserDirectory) GetUser(userID string) (model.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	user, ok := d.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return user, nil
}

// MemoryBillingStore is a concurrency-safe in-memory implementation of BillingStore
type MemoryBillingStore struct {
	mu      sync.RWMutex
	records map[string]model.BillingInfo // key: auctionID
}

// NewMemoryBillingStore creates a new in-memory billing store
func NewMemoryBillingStore() *MemoryBillingStore {
	return &MemoryBillingStore{
		records: make(map[string]model.BillingInfo),
	}
}

// RecordBilling stores the billing record for an auction. Recording twice for
// the same auction keeps the first record so a rerun of the closer is harmless.
func (s *MemoryBillingStore) RecordBilling(billing model.BillingInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[billing.AuctionID]; ok {
		return nil
	}
	s.records[billing.AuctionID] = billing
	return nil
}

// GetBillingByAuction returns the billing record for an auction
func (s *MemoryBillingStore) GetBillingByAuction(auctionID string) (model.BillingInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	billing, ok := s.records[auctionID]
	if !ok {
		return model.BillingInfo{}, fmt.Errorf("get billing for auction %s: %w", auctionID, auctionerrors.ErrNoBilling)
	}
	return billing, nil
}
