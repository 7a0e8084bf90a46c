package bidding

import (
	"errors"
	"fmt"
	"time"

	"auctionhouse/internal/auctionerrors"
	"auctionhouse/internal/identity"
	model "auctionhouse/internal/models"
	"auctionhouse/internal/repository"
	"auctionhouse/utils"
)

const (
	// antiSnipeExtension is how far the deadline is pushed once bidding
	// activity has crossed the auction's expected price.
	antiSnipeExtension = time.Hour

	// historyPrivacyWindow hides bids placed in the final minutes of a live
	// auction from the history view until the auction ends.
	historyPrivacyWindow = 5 * time.Minute

	// sideEffectAttempts bounds the retries for each post-commit step.
	sideEffectAttempts = 3
)

// Config carries engine policy knobs.
type Config struct {
	// AllowSellerBids lets an auctioneer bid on their own auction.
	// Disabled unless explicitly turned on.
	AllowSellerBids bool
}

// Engine validates and commits bids, derives minimum increments, applies the
// anti-snipe extension, and keeps the bid ledger and activity index consistent
// with the auction store.
type Engine struct {
	auctions repository.AuctionStore
	ledger   repository.BidLedger
	activity repository.ActivityIndex
	users    repository.UserDirectory
	billing  repository.BillingStore
	cfg      Config

	now func() time.Time
}

// NewEngine creates a bidding engine over the given stores.
func NewEngine(
	auctions repository.AuctionStore,
	ledger repository.BidLedger,
	activity repository.ActivityIndex,
	users repository.UserDirectory,
	billing repository.BillingStore,
	cfg Config,
) *Engine {
	return &Engine{
		auctions: auctions,
		ledger:   ledger,
		activity: activity,
		users:    users,
		billing:  billing,
		cfg:      cfg,
		now:      time.Now,
	}
}

// BidReceipt confirms a committed bid along with the auction state it produced.
type BidReceipt struct {
	Bid          model.Bid
	CurrentPrice float64
	EndDate      time.Time
}

// SubmitBid validates a bid against the auction's current state and commits it.
//
// The price/winner update is a single conditional update under the auction
// store's write lock: the amount is re-checked against the stored price at
// commit time, so two racing bids can never both win against a stale price and
// the committed price never decreases. The ledger append and activity-index
// updates run after the commit, sequentially, each with bounded retry.
func (e *Engine) SubmitBid(auctionID string, bidder identity.Identity, amount float64) (BidReceipt, error) {
	if !bidder.Resolved() {
		return BidReceipt{}, fmt.Errorf("bidding: %w", auctionerrors.ErrUnauthenticated)
	}
	if auctionID == "" {
		return BidReceipt{}, fmt.Errorf("bidding: %w - missing auction ID", auctionerrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return BidReceipt{}, fmt.Errorf("bidding: %w - non-positive bid amount", auctionerrors.ErrInvalidInput)
	}

	auction, err := e.auctions.GetAuction(auctionID)
	if err != nil {
		return BidReceipt{}, fmt.Errorf("bidding: submit bid: %w", err)
	}
	if auction.Status != model.StatusBidding {
		return BidReceipt{}, fmt.Errorf("bidding: auction %s is not open for bidding: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if !e.cfg.AllowSellerBids && auction.AuctioneerID == bidder.UserID {
		return BidReceipt{}, fmt.Errorf("bidding: %w - auctioneer may not bid on their own auction", auctionerrors.ErrInvalidState)
	}
	if minBid := MinAcceptableBid(auction); amount < minBid {
		return BidReceipt{}, &auctionerrors.BidTooLowError{Minimum: minBid}
	}

	now := e.now()

	updated, err := e.auctions.UpdateAuction(auctionID, func(a *model.Auction) error {
		if a.Status != model.StatusBidding {
			return fmt.Errorf("auction %s is not open for bidding: %w", auctionID, auctionerrors.ErrAuctionNotFound)
		}
		if minBid := MinAcceptableBid(*a); amount < minBid {
			return &auctionerrors.BidTooLowError{Minimum: minBid}
		}

		// The anti-snipe check reads the price before this bid is applied:
		// the bid that first crosses the expected price does not extend the
		// deadline, only subsequent bids do.
		if a.ExpectedPrice > 0 && a.CurrentPrice >= a.ExpectedPrice {
			a.EndDate = now.Add(antiSnipeExtension)
		}

		a.CurrentPrice = amount
		a.CurrentWinnerID = bidder.UserID
		return nil
	})
	if err != nil {
		return BidReceipt{}, fmt.Errorf("bidding: submit bid: %w", err)
	}

	bid := model.Bid{
		BidID:     utils.GenerateID(),
		AuctionID: auctionID,
		BidderID:  bidder.UserID,
		Amount:    amount,
		CreatedAt: now,
	}

	err = e.runPostCommit(auctionID, bidder.UserID, []postCommitStep{
		{"append ledger", func() error { return e.ledger.AppendBid(bid) }},
		{"upsert bidder", func() error {
			return e.users.UpsertUser(model.User{UserID: bidder.UserID, DisplayName: bidder.DisplayName})
		}},
		{"add active bid", func() error { return e.activity.AddActiveBid(bidder.UserID, auctionID) }},
		{"remove follow", func() error { return e.activity.RemoveFollow(bidder.UserID, auctionID) }},
	})
	if err != nil {
		return BidReceipt{}, err
	}

	return BidReceipt{Bid: bid, CurrentPrice: updated.CurrentPrice, EndDate: updated.EndDate}, nil
}

// postCommitStep is one side effect applied after the price update commits.
type postCommitStep struct {
	name string
	run  func() error
}

// runPostCommit applies the steps in order, retrying each a bounded number of
// times. A step that still fails leaves the store recoverable but inconsistent
// (the price update stands), so the failure is logged and surfaced rather than
// swallowed.
func (e *Engine) runPostCommit(auctionID, userID string, steps []postCommitStep) error {
	for _, step := range steps {
		var err error
		for attempt := 1; attempt <= sideEffectAttempts; attempt++ {
			if err = step.run(); err == nil {
				break
			}
		}
		if err != nil {
			utils.Error("post-commit step failed", map[string]any{
				"step":       step.name,
				"auction_id": auctionID,
				"user_id":    userID,
				"attempts":   sideEffectAttempts,
				"error":      err.Error(),
			})
			return fmt.Errorf("bidding: post-commit step %q failed after %d attempts: %w", step.name, sideEffectAttempts, err)
		}
	}
	return nil
}

// HistoryEntry is one redacted row of an auction's bid history.
type HistoryEntry struct {
	BidderName   string  `json:"bidderName"`
	BiddingDate  int64   `json:"biddingDate"` // epoch milliseconds
	BiddingPrice float64 `json:"biddingPrice"`
}

// BidHistory returns the auction's bids ordered by time, bidder names redacted.
//
// Closed-bid auctions are visible only to authenticated users with an active
// bid on the auction. While a live auction has less than five minutes left,
// bids placed inside that window are withheld; they become visible once the
// auction ends. An auction without bids yields an empty history, not an error.
func (e *Engine) BidHistory(auctionID string, requester identity.Identity) ([]HistoryEntry, error) {
	auction, err := e.auctions.GetAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("bidding: bid history: %w", err)
	}

	if !auction.IsOpenBid {
		if !requester.Resolved() {
			return nil, fmt.Errorf("bidding: closed-bid history: %w", auctionerrors.ErrUnauthenticated)
		}
		if !e.activity.HasActiveBid(requester.UserID, auctionID) {
			return nil, fmt.Errorf("bidding: closed-bid history is only visible to its bidders: %w", auctionerrors.ErrAccessDenied)
		}
	}

	bids, err := e.ledger.GetBidsByAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("bidding: bid history: %w", err)
	}

	now := e.now()
	withholding := now.Before(auction.EndDate) && auction.EndDate.Sub(now) <= historyPrivacyWindow

	history := make([]HistoryEntry, 0, len(bids))
	for _, bid := range bids {
		if withholding && auction.EndDate.Sub(bid.CreatedAt) <= historyPrivacyWindow {
			continue
		}
		name := bid.BidderID
		if user, err := e.users.GetUser(bid.BidderID); err == nil {
			name = user.DisplayName
		}
		history = append(history, HistoryEntry{
			BidderName:   RedactName(name),
			BiddingDate:  bid.CreatedAt.UnixMilli(),
			BiddingPrice: bid.Amount,
		})
	}
	return history, nil
}

// SetFollow adds or removes the auction from the user's following set.
//
// A user may not follow an auction they created or are actively bidding on.
// Unfollowing an auction that was never followed is a no-op success.
func (e *Engine) SetFollow(auctionID string, user identity.Identity, follow bool) error {
	if !user.Resolved() {
		return fmt.Errorf("bidding: %w", auctionerrors.ErrUnauthenticated)
	}

	auction, err := e.auctions.GetAuction(auctionID)
	if err != nil {
		return fmt.Errorf("bidding: set follow: %w", err)
	}
	if auction.Status != model.StatusBidding {
		return fmt.Errorf("bidding: auction %s is not open for bidding: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}

	if !follow {
		if err := e.activity.RemoveFollow(user.UserID, auctionID); err != nil {
			return fmt.Errorf("bidding: set follow: %w", err)
		}
		return nil
	}

	if auction.AuctioneerID == user.UserID {
		return fmt.Errorf("bidding: %w - auctioneer may not follow their own auction", auctionerrors.ErrInvalidState)
	}
	if e.activity.HasActiveBid(user.UserID, auctionID) {
		return fmt.Errorf("bidding: %w - user is already bidding on this auction", auctionerrors.ErrInvalidState)
	}

	if err := e.activity.AddFollow(user.UserID, auctionID); err != nil {
		return fmt.Errorf("bidding: set follow: %w", err)
	}
	return nil
}

// IsFollowing reports whether the user follows the auction.
func (e *Engine) IsFollowing(auctionID string, user identity.Identity) (bool, error) {
	if !user.Resolved() {
		return false, fmt.Errorf("bidding: %w", auctionerrors.ErrUnauthenticated)
	}
	if _, err := e.auctions.GetAuction(auctionID); err != nil {
		return false, fmt.Errorf("bidding: is following: %w", err)
	}
	return e.activity.IsFollowing(user.UserID, auctionID), nil
}

// AuctionDetail returns the auction record for display.
func (e *Engine) AuctionDetail(auctionID string) (model.Auction, error) {
	auction, err := e.auctions.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("bidding: auction detail: %w", err)
	}
	return auction, nil
}

// Refresh returns the effective current price and the server time, for clients
// polling a live auction.
func (e *Engine) Refresh(auctionID string) (float64, time.Time, error) {
	auction, err := e.auctions.GetAuction(auctionID)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("bidding: refresh: %w", err)
	}
	return auction.EffectivePrice(), e.now(), nil
}

// CreateAuctionParams carries the caller-supplied fields of a new auction.
type CreateAuctionParams struct {
	ProductName   string
	Category      string
	Description   string
	Pictures      []string
	StartingPrice float64
	BidStep       float64
	ExpectedPrice float64
	EndDate       time.Time
	IsOpenBid     bool
}

// CreateAuction opens a new auction owned by creator and records it in the
// creator's active-auctions set.
func (e *Engine) CreateAuction(creator identity.Identity, params CreateAuctionParams) (model.Auction, error) {
	if !creator.Resolved() {
		return model.Auction{}, fmt.Errorf("bidding: %w", auctionerrors.ErrUnauthenticated)
	}
	if params.ProductName == "" {
		return model.Auction{}, fmt.Errorf("bidding: %w - missing product name", auctionerrors.ErrInvalidInput)
	}
	if params.StartingPrice <= 0 {
		return model.Auction{}, fmt.Errorf("bidding: %w - non-positive starting price", auctionerrors.ErrInvalidInput)
	}

	now := e.now()
	if !params.EndDate.After(now) {
		return model.Auction{}, fmt.Errorf("bidding: %w - end date must be in the future", auctionerrors.ErrInvalidInput)
	}

	auction := model.Auction{
		AuctionID:    utils.GenerateID(),
		AuctioneerID: creator.UserID,
		ProductDetail: model.ProductDetail{
			ProductName: params.ProductName,
			Category:    params.Category,
			Description: params.Description,
			Pictures:    params.Pictures,
		},
		StartingPrice: params.StartingPrice,
		BidStep:       params.BidStep,
		ExpectedPrice: params.ExpectedPrice,
		StartDate:     now,
		EndDate:       params.EndDate,
		Status:        model.StatusBidding,
		IsOpenBid:     params.IsOpenBid,
	}

	if err := e.auctions.AddAuction(auction); err != nil {
		return model.Auction{}, fmt.Errorf("bidding: create auction: %w", err)
	}

	err := e.runPostCommit(auction.AuctionID, creator.UserID, []postCommitStep{
		{"upsert auctioneer", func() error {
			return e.users.UpsertUser(model.User{UserID: creator.UserID, DisplayName: creator.DisplayName})
		}},
		{"add active auction", func() error { return e.activity.AddActiveAuction(creator.UserID, auction.AuctionID) }},
	})
	if err != nil {
		return model.Auction{}, err
	}

	return auction, nil
}

// CloseExpired transitions every live auction whose deadline has passed to
// closed, and records a WaitPayment billing entry for each one that sold.
// Failures on individual auctions are logged and skipped so one bad record
// cannot wedge the sweep. Returns the number of auctions closed.
func (e *Engine) CloseExpired(now time.Time) int {
	closed := 0
	for _, auction := range e.auctions.ListAuctions() {
		if auction.Status != model.StatusBidding || auction.EndDate.After(now) {
			continue
		}

		updated, err := e.auctions.UpdateAuction(auction.AuctionID, func(a *model.Auction) error {
			if a.Status != model.StatusBidding || a.EndDate.After(now) {
				return fmt.Errorf("auction %s no longer eligible for closing: %w", a.AuctionID, auctionerrors.ErrInvalidState)
			}
			a.Status = model.StatusClosed
			return nil
		})
		if err != nil {
			if !errors.Is(err, auctionerrors.ErrInvalidState) {
				utils.Error("failed to close expired auction", map[string]any{
					"auction_id": auction.AuctionID,
					"error":      err.Error(),
				})
			}
			continue
		}
		closed++

		if updated.HasBid() {
			err := e.billing.RecordBilling(model.BillingInfo{
				AuctionID: updated.AuctionID,
				WinnerID:  updated.CurrentWinnerID,
				Price:     updated.CurrentPrice,
				Status:    model.BillingWaitPayment,
			})
			if err != nil {
				utils.Error("failed to record billing for closed auction", map[string]any{
					"auction_id": updated.AuctionID,
					"winner_id":  updated.CurrentWinnerID,
					"error":      err.Error(),
				})
			}
		}
	}
	return closed
}

// BillingForAuction returns the billing record of a closed auction. Only the
// winner and the auctioneer may see it.
func (e *Engine) BillingForAuction(auctionID string, requester identity.Identity) (model.BillingInfo, error) {
	if !requester.Resolved() {
		return model.BillingInfo{}, fmt.Errorf("bidding: %w", auctionerrors.ErrUnauthenticated)
	}

	auction, err := e.auctions.GetAuction(auctionID)
	if err != nil {
		return model.BillingInfo{}, fmt.Errorf("bidding: billing: %w", err)
	}

	billing, err := e.billing.GetBillingByAuction(auctionID)
	if err != nil {
		return model.BillingInfo{}, fmt.Errorf("bidding: billing: %w", err)
	}

	if requester.UserID != billing.WinnerID && requester.UserID != auction.AuctioneerID {
		return model.BillingInfo{}, fmt.Errorf("bidding: billing is only visible to the winner and the auctioneer: %w", auctionerrors.ErrAccessDenied)
	}
	return billing, nil
}
