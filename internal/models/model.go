package models

import "time"

// Auction statuses
const (
	StatusBidding = "bidding"
	StatusClosed  = "closed"
)

// User represents a registered marketplace user
type User struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// ProductDetail describes the item being auctioned. The bidding engine treats it
// as opaque metadata.
type ProductDetail struct {
	ProductName string   `json:"product_name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Pictures    []string `json:"pictures,omitempty"`
}

// Auction represents a single auction record.
//
// CurrentPrice and CurrentWinnerID are zero until the first bid lands; the
// effective price for bid comparison is StartingPrice until then (see
// EffectivePrice). BidStep of zero means the engine derives the step from the
// price magnitude. ExpectedPrice of zero means no anti-snipe threshold is
// configured.
type Auction struct {
	AuctionID       string        `json:"auction_id"`
	AuctioneerID    string        `json:"auctioneer_id"`
	ProductDetail   ProductDetail `json:"product_detail"`
	StartingPrice   float64       `json:"starting_price"`
	CurrentPrice    float64       `json:"current_price"`
	CurrentWinnerID string        `json:"current_winner_id"`
	BidStep         float64       `json:"bid_step"`
	ExpectedPrice   float64       `json:"expected_price"`
	StartDate       time.Time     `json:"start_date"`
	EndDate         time.Time     `json:"end_date"`
	Status          string        `json:"status"`
	IsOpenBid       bool          `json:"is_open_bid"`
}

// HasBid reports whether at least one bid has been committed.
func (a Auction) HasBid() bool {
	return a.CurrentWinnerID != ""
}

// EffectivePrice returns CurrentPrice once a bid exists, StartingPrice before that.
func (a Auction) EffectivePrice() float64 {
	if a.HasBid() {
		return a.CurrentPrice
	}
	return a.StartingPrice
}

// Bid represents one committed bid. Bids are append-only: never edited or deleted.
type Bid struct {
	BidID     string    `json:"bid_id"`
	AuctionID string    `json:"auction_id"`
	BidderID  string    `json:"bidder_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// Billing statuses, in lifecycle order. The engine only records status; payment
// and delivery processing happen elsewhere.
const (
	BillingWaitPayment     = "WaitPayment"
	BillingWaitConfirmSlip = "WaitConfirmSlip"
	BillingWaitShipping    = "WaitShipping"
	BillingWaitReceive     = "WaitReceive"
	BillingFinished        = "Finished"
)

// BillingInfo is created when a closed auction has a winner.
type BillingInfo struct {
	AuctionID    string  `json:"auction_id"`
	WinnerID     string  `json:"winner_id"`
	Price        float64 `json:"price"`
	ReceiverName string  `json:"receiver_name,omitempty"`
	Address      string  `json:"address,omitempty"`
	Status       string  `json:"status"`
}
