package main

import (
	"fmt"
	"os"
	"time"

	"auctionhouse/internal/bidding"
	"auctionhouse/internal/identity"
	"auctionhouse/internal/listing"
	model "auctionhouse/internal/models"
	"auctionhouse/internal/repository"
	"auctionhouse/internal/server"
	"auctionhouse/utils"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	provider, err := identity.NewJWTProvider(jwtSecret())
	if err != nil {
		utils.Fatal("failed to initialize identity provider", map[string]any{"error": err.Error()})
	}

	auctions := repository.NewMemoryAuctionStore()
	ledger := repository.NewMemoryBidLedger()
	activity := repository.NewMemoryActivityIndex()
	users := repository.NewMemoryUserDirectory()
	billing := repository.NewMemoryBillingStore()

	prepopulateAuctions(auctions, users)

	engine := bidding.NewEngine(auctions, ledger, activity, users, billing, bidding.Config{
		AllowSellerBids: os.Getenv("ALLOW_SELLER_BIDS") == "true",
	})
	listings := listing.NewService(auctions)

	go runCloser(engine)

	router := server.SetupRouter(engine, listings, provider)

	port := getPort()
	fmt.Printf("Starting auction server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// runCloser sweeps for expired auctions once a minute.
func runCloser(engine *bidding.Engine) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for now := range ticker.C {
		if closed := engine.CloseExpired(now); closed > 0 {
			utils.Info("closed expired auctions", map[string]any{"count": closed})
		}
	}
}

// prepopulateAuctions adds sample auctions and users to the in-memory stores
func prepopulateAuctions(auctions *repository.MemoryAuctionStore, users *repository.MemoryUserDirectory) {
	now := time.Now()

	seedUsers := []model.User{
		{UserID: "seller1", DisplayName: "Alexandra"},
		{UserID: "seller2", DisplayName: "Benjamin"},
	}
	for _, u := range seedUsers {
		if err := users.UpsertUser(u); err != nil {
			utils.Warn("failed to seed user", map[string]any{"user_id": u.UserID, "error": err.Error()})
		}
	}

	seedAuctions := []model.Auction{
		{
			AuctionID:     "auction1",
			AuctioneerID:  "seller1",
			ProductDetail: model.ProductDetail{ProductName: "Film camera", Category: "electronics", Description: "1970s rangefinder, working meter"},
			StartingPrice: 1500,
			ExpectedPrice: 4000,
			StartDate:     now,
			EndDate:       now.Add(48 * time.Hour),
			Status:        model.StatusBidding,
			IsOpenBid:     true,
		},
		{
			AuctionID:     "auction2",
			AuctioneerID:  "seller2",
			ProductDetail: model.ProductDetail{ProductName: "Mechanical keyboard", Category: "electronics", Description: "custom build, lubed switches"},
			StartingPrice: 6000,
			StartDate:     now,
			EndDate:       now.Add(24 * time.Hour),
			Status:        model.StatusBidding,
			IsOpenBid:     true,
		},
		{
			AuctionID:     "auction3",
			AuctioneerID:  "seller1",
			ProductDetail: model.ProductDetail{ProductName: "Vinyl box set", Category: "music", Description: "sealed, limited pressing"},
			StartingPrice: 900,
			BidStep:       100,
			StartDate:     now,
			EndDate:       now.Add(72 * time.Hour),
			Status:        model.StatusBidding,
			IsOpenBid:     false,
		},
	}

	for _, auction := range seedAuctions {
		if err := auctions.AddAuction(auction); err != nil {
			utils.Warn("failed to seed auction", map[string]any{"auction_id": auction.AuctionID, "error": err.Error()})
		}
	}
}

// jwtSecret returns the token-signing secret from env, with a dev fallback
func jwtSecret() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	utils.Warn("JWT_SECRET not set, using development secret", nil)
	return "dev-secret"
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
