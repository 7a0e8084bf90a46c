package helpers

// Request/Response DTOs.
//
// Field names on the bid, history, and follow wire formats are fixed by the
// public API contract (biddingPrice, bidderName, string-encoded follow flag).

type PlaceBidRequest struct {
	BiddingPrice float64 `json:"biddingPrice" binding:"required,gt=0"`
}

type BidReceiptResponse struct {
	BidID        string  `json:"bid_id"`
	AuctionID    string  `json:"auction_id"`
	BidderID     string  `json:"bidder_id"`
	CurrentPrice float64 `json:"current_price"`
	EndDate      string  `json:"end_date"` // RFC3339
	CreatedAt    string  `json:"created_at"`
}

type FollowRequest struct {
	Follow string `json:"follow" binding:"required,oneof=true false"`
}

type FollowStatusResponse struct {
	Following string `json:"following"`
}

type CreateAuctionRequest struct {
	ProductName   string   `json:"product_name" binding:"required"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Pictures      []string `json:"pictures"`
	StartingPrice float64  `json:"starting_price" binding:"required,gt=0"`
	BidStep       float64  `json:"bid_step" binding:"gte=0"`
	ExpectedPrice float64  `json:"expected_price" binding:"gte=0"`
	EndDate       int64    `json:"end_date" binding:"required"` // epoch seconds
	IsOpenBid     *bool    `json:"is_open_bid"`                 // defaults to open
}

type CreateAuctionResponse struct {
	AuctionID string `json:"auction_id"`
	EndDate   string `json:"end_date"` // RFC3339
}

type AuctionDetailResponse struct {
	ProductName   string   `json:"product_name"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Pictures      []string `json:"pictures,omitempty"`
	AuctioneerID  string   `json:"auctioneer_id"`
	BidStep       float64  `json:"bid_step"`
	EndDate       string   `json:"end_date"` // RFC3339
	CurrentPrice  float64  `json:"current_price"`
	Status        string   `json:"status"`
	IsOpenBid     bool     `json:"is_open_bid"`
	StartingPrice float64  `json:"starting_price"`
}

type RefreshResponse struct {
	CurrentPrice float64 `json:"current_price"`
	DateNow      int64   `json:"date_now"` // epoch milliseconds
}

type BillingResponse struct {
	AuctionID string  `json:"auction_id"`
	WinnerID  string  `json:"winner_id"`
	Price     float64 `json:"price"`
	Status    string  `json:"status"`
}
