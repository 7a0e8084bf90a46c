// Package listing is a read-only projection over the auction store for
// browsing and search. It never writes, and it may trail the very latest
// committed price.
package listing

import (
	"sort"
	"strings"
	"time"

	model "auctionhouse/internal/models"
	"auctionhouse/internal/repository"
)

// PageSize is the fixed number of rows per result page.
const PageSize = 35

// Sort options accepted by Search.
const (
	SortHighestBid    = "highest_bid"
	SortLowestBid     = "lowest_bid"
	SortNewest        = "newest"
	SortTimeRemaining = "time_remaining"
)

// Query filters and orders a listing request. Name takes precedence over
// Category when both are set. Page numbers start at 1.
type Query struct {
	Name     string
	Category string
	Sort     string
	Page     int
}

// Row is one listing entry shaped for display.
type Row struct {
	AuctionID     string  `json:"auction_id"`
	ProductName   string  `json:"product_name"`
	Category      string  `json:"category"`
	CoverPicture  string  `json:"cover_picture,omitempty"`
	EndDate       int64   `json:"end_date"`       // epoch milliseconds
	TimeRemaining int64   `json:"time_remaining"` // milliseconds until EndDate
	CurrentPrice  float64 `json:"current_price"`
	IsWinning     bool    `json:"is_winning"`
}

// Result is one page of listing rows with pagination counts.
type Result struct {
	PageCount int   `json:"page_count"`
	ItemCount int   `json:"item_count"`
	Auctions  []Row `json:"auction_list"`
}

// Service produces listing pages from auction state.
type Service struct {
	auctions repository.AuctionStore
	now      func() time.Time
}

// NewService creates a listing service reading from the given auction store.
func NewService(auctions repository.AuctionStore) *Service {
	return &Service{auctions: auctions, now: time.Now}
}

// Search returns a page of live auctions matching the query, with per-row
// winning status for the requesting user (empty requesterID for anonymous).
func (s *Service) Search(query Query, requesterID string) Result {
	now := s.now()

	rows := make([]Row, 0)
	starts := make(map[string]time.Time)
	for _, auction := range s.auctions.ListAuctions() {
		if auction.Status != model.StatusBidding {
			continue
		}
		if !matches(auction, query) {
			continue
		}

		cover := ""
		if len(auction.ProductDetail.Pictures) > 0 {
			cover = auction.ProductDetail.Pictures[0]
		}
		rows = append(rows, Row{
			AuctionID:     auction.AuctionID,
			ProductName:   auction.ProductDetail.ProductName,
			Category:      auction.ProductDetail.Category,
			CoverPicture:  cover,
			EndDate:       auction.EndDate.UnixMilli(),
			TimeRemaining: auction.EndDate.Sub(now).Milliseconds(),
			CurrentPrice:  auction.EffectivePrice(),
			IsWinning:     requesterID != "" && auction.CurrentWinnerID == requesterID,
		})
		starts[auction.AuctionID] = auction.StartDate
	}

	sortRows(rows, starts, query.Sort)

	page := query.Page
	if page < 1 {
		page = 1
	}
	itemCount := len(rows)
	pageCount := (itemCount + PageSize - 1) / PageSize

	return Result{
		PageCount: pageCount,
		ItemCount: itemCount,
		Auctions:  paginate(rows, page),
	}
}

func matches(auction model.Auction, query Query) bool {
	if query.Name != "" {
		return strings.Contains(
			strings.ToLower(auction.ProductDetail.ProductName),
			strings.ToLower(query.Name),
		)
	}
	if query.Category != "" {
		return auction.ProductDetail.Category == query.Category
	}
	return true
}

func sortRows(rows []Row, starts map[string]time.Time, order string) {
	switch order {
	case SortLowestBid:
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].CurrentPrice < rows[j].CurrentPrice })
	case SortNewest:
		sort.SliceStable(rows, func(i, j int) bool {
			return starts[rows[i].AuctionID].After(starts[rows[j].AuctionID])
		})
	case SortTimeRemaining:
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].TimeRemaining < rows[j].TimeRemaining })
	default: // SortHighestBid
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].CurrentPrice > rows[j].CurrentPrice })
	}
}

func paginate(rows []Row, page int) []Row {
	start := (page - 1) * PageSize
	if start >= len(rows) {
		return []Row{}
	}
	end := start + PageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}
