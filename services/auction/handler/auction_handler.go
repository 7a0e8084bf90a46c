package handler

import (
	"net/http"
	"strconv"
	"time"

	"auctionhouse/internal/bidding"
	"auctionhouse/internal/identity"
	"auctionhouse/internal/listing"
	model "auctionhouse/internal/models"
	"auctionhouse/services/auction/helpers"
	"auctionhouse/utils"

	"github.com/gin-gonic/gin"
)

// IdentityContextKey is where the auth middleware stores the resolved identity
// in the gin context.
const IdentityContextKey = "identity"

type BiddingEngineInterface interface {
	SubmitBid(auctionID string, bidder identity.Identity, amount float64) (bidding.BidReceipt, error)
	BidHistory(auctionID string, requester identity.Identity) ([]bidding.HistoryEntry, error)
	SetFollow(auctionID string, user identity.Identity, follow bool) error
	IsFollowing(auctionID string, user identity.Identity) (bool, error)
	AuctionDetail(auctionID string) (model.Auction, error)
	Refresh(auctionID string) (float64, time.Time, error)
	CreateAuction(creator identity.Identity, params bidding.CreateAuctionParams) (model.Auction, error)
	BillingForAuction(auctionID string, requester identity.Identity) (model.BillingInfo, error)
}

type ListingServiceInterface interface {
	Search(query listing.Query, requesterID string) listing.Result
}

type AuctionHandler struct {
	engine   BiddingEngineInterface
	listings ListingServiceInterface
}

func NewAuctionHandler(engine BiddingEngineInterface, listings ListingServiceInterface) *AuctionHandler {
	return &AuctionHandler{engine: engine, listings: listings}
}

// identityFrom returns the identity stored by the auth middleware, or the
// zero (unauthenticated) identity when none was resolved.
func identityFrom(c *gin.Context) identity.Identity {
	if v, ok := c.Get(IdentityContextKey); ok {
		if id, ok := v.(identity.Identity); ok {
			return id
		}
	}
	return identity.Identity{}
}

// SubmitBidHandler handles POST /auctions/:auction_id/bids
func (h *AuctionHandler) SubmitBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bidder := identityFrom(c)

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitBidHandler", err)
		return
	}

	receipt, err := h.engine.SubmitBid(auctionID, bidder, req.BiddingPrice)
	if err != nil {
		helpers.RespondError(c, "SubmitBidHandler", err, map[string]any{
			"auction_id": auctionID,
			"user_id":    bidder.UserID,
			"amount":     req.BiddingPrice,
		})
		return
	}

	resp := helpers.BidReceiptResponse{
		BidID:        receipt.Bid.BidID,
		AuctionID:    receipt.Bid.AuctionID,
		BidderID:     receipt.Bid.BidderID,
		CurrentPrice: receipt.CurrentPrice,
		EndDate:      receipt.EndDate.UTC().Format(time.RFC3339),
		CreatedAt:    receipt.Bid.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid recorded successfully")
	helpers.LogSuccess("SubmitBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     receipt.Bid.BidID,
		"auction_id": auctionID,
		"user_id":    bidder.UserID,
		"amount":     req.BiddingPrice,
	})
}

// GetBidHistoryHandler handles GET /auctions/:auction_id/bid-history
func (h *AuctionHandler) GetBidHistoryHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	requester := identityFrom(c)

	history, err := h.engine.BidHistory(auctionID, requester)
	if err != nil {
		helpers.RespondError(c, "GetBidHistoryHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, history, "bid history retrieved successfully")
	helpers.LogSuccess("GetBidHistoryHandler", "bid history retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(history),
	})
}

// GetAuctionDetailHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionDetailHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	auction, err := h.engine.AuctionDetail(auctionID)
	if err != nil {
		helpers.RespondError(c, "GetAuctionDetailHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	resp := helpers.AuctionDetailResponse{
		ProductName:   auction.ProductDetail.ProductName,
		Category:      auction.ProductDetail.Category,
		Description:   auction.ProductDetail.Description,
		Pictures:      auction.ProductDetail.Pictures,
		AuctioneerID:  auction.AuctioneerID,
		BidStep:       bidding.MinBidStep(auction),
		EndDate:       auction.EndDate.UTC().Format(time.RFC3339),
		CurrentPrice:  auction.EffectivePrice(),
		Status:        auction.Status,
		IsOpenBid:     auction.IsOpenBid,
		StartingPrice: auction.StartingPrice,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "auction retrieved successfully")
}

// RefreshHandler handles GET /auctions/:auction_id/refresh
func (h *AuctionHandler) RefreshHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	price, now, err := h.engine.Refresh(auctionID)
	if err != nil {
		helpers.RespondError(c, "RefreshHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	resp := helpers.RefreshResponse{CurrentPrice: price, DateNow: now.UnixMilli()}
	utils.JSONResponse(c, http.StatusOK, resp, "auction refreshed successfully")
}

// PostFollowHandler handles POST /auctions/:auction_id/follow
func (h *AuctionHandler) PostFollowHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	user := identityFrom(c)

	var req helpers.FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PostFollowHandler", err)
		return
	}

	// follow is string-encoded on the wire; binding restricts it to true/false
	follow, _ := strconv.ParseBool(req.Follow)

	if err := h.engine.SetFollow(auctionID, user, follow); err != nil {
		helpers.RespondError(c, "PostFollowHandler", err, map[string]any{
			"auction_id": auctionID,
			"user_id":    user.UserID,
			"follow":     req.Follow,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "follow updated successfully")
	helpers.LogSuccess("PostFollowHandler", "follow updated successfully", map[string]any{
		"auction_id": auctionID,
		"user_id":    user.UserID,
		"follow":     req.Follow,
	})
}

// GetFollowHandler handles GET /auctions/:auction_id/follow
func (h *AuctionHandler) GetFollowHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	user := identityFrom(c)

	following, err := h.engine.IsFollowing(auctionID, user)
	if err != nil {
		helpers.RespondError(c, "GetFollowHandler", err, map[string]any{
			"auction_id": auctionID,
			"user_id":    user.UserID,
		})
		return
	}

	resp := helpers.FollowStatusResponse{Following: strconv.FormatBool(following)}
	utils.JSONResponse(c, http.StatusOK, resp, "follow status retrieved successfully")
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	creator := identityFrom(c)

	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	isOpenBid := true
	if req.IsOpenBid != nil {
		isOpenBid = *req.IsOpenBid
	}

	auction, err := h.engine.CreateAuction(creator, bidding.CreateAuctionParams{
		ProductName:   req.ProductName,
		Category:      req.Category,
		Description:   req.Description,
		Pictures:      req.Pictures,
		StartingPrice: req.StartingPrice,
		BidStep:       req.BidStep,
		ExpectedPrice: req.ExpectedPrice,
		EndDate:       time.Unix(req.EndDate, 0),
		IsOpenBid:     isOpenBid,
	})
	if err != nil {
		helpers.RespondError(c, "CreateAuctionHandler", err, map[string]any{"user_id": creator.UserID})
		return
	}

	resp := helpers.CreateAuctionResponse{
		AuctionID: auction.AuctionID,
		EndDate:   auction.EndDate.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"user_id":    creator.UserID,
	})
}

// SearchAuctionsHandler handles GET /auctions
func (h *AuctionHandler) SearchAuctionsHandler(c *gin.Context) {
	requester := identityFrom(c)

	page := 1
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		page = p
	}

	result := h.listings.Search(listing.Query{
		Name:     c.Query("name"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
		Page:     page,
	}, requester.UserID)

	utils.JSONResponse(c, http.StatusOK, result, "auctions retrieved successfully")
}

// GetBillingHandler handles GET /auctions/:auction_id/billing
func (h *AuctionHandler) GetBillingHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	requester := identityFrom(c)

	billing, err := h.engine.BillingForAuction(auctionID, requester)
	if err != nil {
		helpers.RespondError(c, "GetBillingHandler", err, map[string]any{
			"auction_id": auctionID,
			"user_id":    requester.UserID,
		})
		return
	}

	resp := helpers.BillingResponse{
		AuctionID: billing.AuctionID,
		WinnerID:  billing.WinnerID,
		Price:     billing.Price,
		Status:    billing.Status,
	}
	utils.JSONResponse(c, http.StatusOK, resp, "billing retrieved successfully")
}
