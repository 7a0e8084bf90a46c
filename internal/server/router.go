package server

import (
	"auctionhouse/internal/bidding"
	"auctionhouse/internal/identity"
	"auctionhouse/internal/listing"
	handler "auctionhouse/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(engine *bidding.Engine, listings *listing.Service, provider identity.Provider) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(engine, listings)

	auctions := router.Group("/auctions")
	{
		auctions.GET("", AuthOptional(provider), auctionHandler.SearchAuctionsHandler)
		auctions.POST("", AuthRequired(provider), auctionHandler.CreateAuctionHandler)

		auctions.GET("/:auction_id", auctionHandler.GetAuctionDetailHandler)
		auctions.GET("/:auction_id/refresh", auctionHandler.RefreshHandler)

		auctions.POST("/:auction_id/bids", AuthRequired(provider), auctionHandler.SubmitBidHandler)
		auctions.GET("/:auction_id/bid-history", AuthOptional(provider), auctionHandler.GetBidHistoryHandler)

		auctions.GET("/:auction_id/follow", AuthRequired(provider), auctionHandler.GetFollowHandler)
		auctions.POST("/:auction_id/follow", AuthRequired(provider), auctionHandler.PostFollowHandler)

		auctions.GET("/:auction_id/billing", AuthRequired(provider), auctionHandler.GetBillingHandler)
	}

	return router
}
