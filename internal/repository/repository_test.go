package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"auctionhouse/internal/auctionerrors"
	model "auctionhouse/internal/models"

	"github.com/stretchr/testify/require"
)

// Helper to create an open auction
func newAuction(auctionID, sellerID string, startingPrice float64) model.Auction {
	return model.Auction{
		AuctionID:     auctionID,
		AuctioneerID:  sellerID,
		ProductDetail: model.ProductDetail{ProductName: fmt.Sprintf("%s product", auctionID), Category: "misc"},
		StartingPrice: startingPrice,
		EndDate:       time.Now().Add(time.Hour),
		Status:        model.StatusBidding,
		IsOpenBid:     true,
	}
}

// Helper to create a bid
func newBid(bidID, auctionID, bidderID string, amount float64, createdAt time.Time) model.Bid {
	return model.Bid{
		BidID:     bidID,
		AuctionID: auctionID,
		BidderID:  bidderID,
		Amount:    amount,
		CreatedAt: createdAt,
	}
}

// Test MemoryAuctionStore basics
func TestMemoryAuctionStore_AddGet(t *testing.T) {
	t.Parallel()

	store := NewMemoryAuctionStore()
	require.NoError(t, store.AddAuction(newAuction("auction1", "seller1", 100)))

	t.Run("get_existing", func(t *testing.T) {
		auction, err := store.GetAuction("auction1")
		require.NoError(t, err)
		require.Equal(t, "seller1", auction.AuctioneerID)
	})

	t.Run("get_missing", func(t *testing.T) {
		_, err := store.GetAuction("missing")
		require.True(t, errors.Is(err, auctionerrors.ErrAuctionNotFound))
	})

	t.Run("duplicate_add_rejected", func(t *testing.T) {
		err := store.AddAuction(newAuction("auction1", "seller2", 200))
		require.True(t, errors.Is(err, auctionerrors.ErrInvalidState))
	})

	t.Run("list_returns_copies", func(t *testing.T) {
		listed := store.ListAuctions()
		require.Len(t, listed, 1)
		listed[0].CurrentPrice = 999999

		auction, err := store.GetAuction("auction1")
		require.NoError(t, err)
		require.Zero(t, auction.CurrentPrice)
	})
}

// Test UpdateAuction's conditional-update contract
func TestMemoryAuctionStore_UpdateAuction(t *testing.T) {
	t.Parallel()

	t.Run("apply_error_leaves_record_untouched", func(t *testing.T) {
		t.Parallel()

		store := NewMemoryAuctionStore()
		require.NoError(t, store.AddAuction(newAuction("auction1", "seller1", 100)))

		sentinel := errors.New("condition failed")
		_, err := store.UpdateAuction("auction1", func(a *model.Auction) error {
			a.CurrentPrice = 500
			return sentinel
		})
		require.True(t, errors.Is(err, sentinel))

		auction, err := store.GetAuction("auction1")
		require.NoError(t, err)
		require.Zero(t, auction.CurrentPrice)
	})

	t.Run("missing_auction", func(t *testing.T) {
		t.Parallel()

		store := NewMemoryAuctionStore()
		_, err := store.UpdateAuction("missing", func(a *model.Auction) error { return nil })
		require.True(t, errors.Is(err, auctionerrors.ErrAuctionNotFound))
	})

	// Concurrent conditional increments must never lose an update: with the
	// closure running under the write lock, every accepted update sees the
	// previous one's price.
	t.Run("concurrent_conditional_updates", func(t *testing.T) {
		t.Parallel()

		store := NewMemoryAuctionStore()
		require.NoError(t, store.AddAuction(newAuction("auction1", "seller1", 0)))

		var wg sync.WaitGroup
		concurrentCount := 100

		for i := 0; i < concurrentCount; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := store.UpdateAuction("auction1", func(a *model.Auction) error {
					a.CurrentPrice++
					return nil
				})
				require.NoError(t, err)
			}()
		}
		wg.Wait()

		auction, err := store.GetAuction("auction1")
		require.NoError(t, err)
		require.Equal(t, float64(concurrentCount), auction.CurrentPrice)
	})
}

// Test MemoryBidLedger append-only semantics and ordering
func TestMemoryBidLedger(t *testing.T) {
	t.Parallel()

	t.Run("empty_auction_yields_empty_slice", func(t *testing.T) {
		t.Parallel()

		ledger := NewMemoryBidLedger()
		bids, err := ledger.GetBidsByAuction("auction1")
		require.NoError(t, err)
		require.Empty(t, bids)
	})

	t.Run("returns_bids_ordered_by_time", func(t *testing.T) {
		t.Parallel()

		ledger := NewMemoryBidLedger()
		now := time.Now()

		// Appended out of time order
		require.NoError(t, ledger.AppendBid(newBid("bid2", "auction1", "user2", 200, now.Add(2*time.Second))))
		require.NoError(t, ledger.AppendBid(newBid("bid1", "auction1", "user1", 100, now)))
		require.NoError(t, ledger.AppendBid(newBid("bid3", "auction1", "user3", 300, now.Add(3*time.Second))))

		bids, err := ledger.GetBidsByAuction("auction1")
		require.NoError(t, err)
		require.Len(t, bids, 3)
		require.Equal(t, "bid1", bids[0].BidID)
		require.Equal(t, "bid2", bids[1].BidID)
		require.Equal(t, "bid3", bids[2].BidID)
	})

	t.Run("returned_slice_is_a_copy", func(t *testing.T) {
		t.Parallel()

		ledger := NewMemoryBidLedger()
		require.NoError(t, ledger.AppendBid(newBid("bid1", "auction1", "user1", 100, time.Now())))

		bids, err := ledger.GetBidsByAuction("auction1")
		require.NoError(t, err)
		bids[0].Amount = 999999

		again, err := ledger.GetBidsByAuction("auction1")
		require.NoError(t, err)
		require.Equal(t, 100.0, again[0].Amount)
	})

	t.Run("concurrent_appends", func(t *testing.T) {
		t.Parallel()

		ledger := NewMemoryBidLedger()
		var wg sync.WaitGroup
		concurrentCount := 50

		for i := 0; i < concurrentCount; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				b := newBid(fmt.Sprintf("bid-%d", i), "auction1", fmt.Sprintf("user-%d", i), float64(100+i), time.Now())
				require.NoError(t, ledger.AppendBid(b))
			}()
		}
		wg.Wait()

		bids, err := ledger.GetBidsByAuction("auction1")
		require.NoError(t, err)
		require.Len(t, bids, concurrentCount)
	})
}

// Test MemoryActivityIndex set semantics
func TestMemoryActivityIndex(t *testing.T) {
	t.Parallel()

	t.Run("active_bid_add_is_idempotent", func(t *testing.T) {
		t.Parallel()

		index := NewMemoryActivityIndex()
		require.False(t, index.HasActiveBid("user1", "auction1"))

		require.NoError(t, index.AddActiveBid("user1", "auction1"))
		require.NoError(t, index.AddActiveBid("user1", "auction1"))
		require.True(t, index.HasActiveBid("user1", "auction1"))
		require.False(t, index.HasActiveBid("user1", "auction2"))
		require.False(t, index.HasActiveBid("user2", "auction1"))
	})

	t.Run("follow_add_remove", func(t *testing.T) {
		t.Parallel()

		index := NewMemoryActivityIndex()
		require.NoError(t, index.AddFollow("user1", "auction1"))
		require.True(t, index.IsFollowing("user1", "auction1"))

		require.NoError(t, index.RemoveFollow("user1", "auction1"))
		require.False(t, index.IsFollowing("user1", "auction1"))

		// Removing an absent entry is a no-op
		require.NoError(t, index.RemoveFollow("user1", "auction1"))
		require.NoError(t, index.RemoveFollow("unknown-user", "auction1"))
	})

	t.Run("active_auction_tracking", func(t *testing.T) {
		t.Parallel()

		index := NewMemoryActivityIndex()
		require.NoError(t, index.AddActiveAuction("seller1", "auction1"))
		require.NoError(t, index.AddActiveAuction("seller1", "auction1"))
		// Active-auction membership does not leak into the bidding set
		require.False(t, index.HasActiveBid("seller1", "auction1"))
	})

	t.Run("concurrent_mutations", func(t *testing.T) {
		t.Parallel()

		index := NewMemoryActivityIndex()
		var wg sync.WaitGroup
		concurrentCount := 50

		for i := 0; i < concurrentCount; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				userID := fmt.Sprintf("user-%d", i)
				require.NoError(t, index.AddFollow(userID, "auction1"))
				require.NoError(t, index.AddActiveBid(userID, "auction2"))
				require.NoError(t, index.RemoveFollow(userID, "auction1"))
			}()
		}
		wg.Wait()

		for i := 0; i < concurrentCount; i++ {
			userID := fmt.Sprintf("user-%d", i)
			require.False(t, index.IsFollowing(userID, "auction1"))
			require.True(t, index.HasActiveBid(userID, "auction2"))
		}
	})
}

// Test MemoryUserDirectory
func TestMemoryUserDirectory(t *testing.T) {
	t.Parallel()

	directory := NewMemoryUserDirectory()

	_, err := directory.GetUser("user1")
	require.True(t, errors.Is(err, auctionerrors.ErrUserNotFound))

	require.NoError(t, directory.UpsertUser(model.User{UserID: "user1", DisplayName: "Alexandra"}))
	user, err := directory.GetUser("user1")
	require.NoError(t, err)
	require.Equal(t, "Alexandra", user.DisplayName)

	// Upsert replaces
	require.NoError(t, directory.UpsertUser(model.User{UserID: "user1", DisplayName: "Alex"}))
	user, err = directory.GetUser("user1")
	require.NoError(t, err)
	require.Equal(t, "Alex", user.DisplayName)
}

// Test MemoryBillingStore first-record-wins behavior
func TestMemoryBillingStore(t *testing.T) {
	t.Parallel()

	store := NewMemoryBillingStore()

	_, err := store.GetBillingByAuction("auction1")
	require.True(t, errors.Is(err, auctionerrors.ErrNoBilling))

	first := model.BillingInfo{AuctionID: "auction1", WinnerID: "user1", Price: 750, Status: model.BillingWaitPayment}
	require.NoError(t, store.RecordBilling(first))

	// A rerun of the closer must not overwrite the original record
	require.NoError(t, store.RecordBilling(model.BillingInfo{AuctionID: "auction1", WinnerID: "user2", Price: 999, Status: model.BillingFinished}))

	billing, err := store.GetBillingByAuction("auction1")
	require.NoError(t, err)
	require.Equal(t, first, billing)
}
