package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"auctionhouse/internal/bidding"
	"auctionhouse/internal/identity"
	"auctionhouse/internal/listing"
	model "auctionhouse/internal/models"
	"auctionhouse/internal/repository"
	"auctionhouse/internal/server"

	"github.com/gin-gonic/gin"
)

const testJWTSecret = "integration-test-secret"

// TestEnv bundles the router with the engine and token signer so tests can
// seed state and mint credentials for any user.
type TestEnv struct {
	Router   *gin.Engine
	Engine   *bidding.Engine
	Provider *identity.JWTProvider
	Auctions *repository.MemoryAuctionStore
}

// SetupTestEnv initializes the full HTTP stack over in-memory stores and seeds
// it with the given auctions.
func SetupTestEnv(t *testing.T, cfg bidding.Config, auctions ...model.Auction) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auctionStore := repository.NewMemoryAuctionStore()
	for _, a := range auctions {
		if err := auctionStore.AddAuction(a); err != nil {
			t.Fatalf("failed to seed auction %s: %v", a.AuctionID, err)
		}
	}

	engine := bidding.NewEngine(
		auctionStore,
		repository.NewMemoryBidLedger(),
		repository.NewMemoryActivityIndex(),
		repository.NewMemoryUserDirectory(),
		repository.NewMemoryBillingStore(),
		cfg,
	)

	provider, err := identity.NewJWTProvider(testJWTSecret)
	if err != nil {
		t.Fatalf("failed to create token provider: %v", err)
	}

	return &TestEnv{
		Router:   server.SetupRouter(engine, listing.NewService(auctionStore), provider),
		Engine:   engine,
		Provider: provider,
		Auctions: auctionStore,
	}
}

// Token mints a bearer token for the given user.
func (env *TestEnv) Token(t *testing.T, userID, displayName string) string {
	t.Helper()
	token, err := env.Provider.Sign(identity.Identity{UserID: userID, DisplayName: displayName}, time.Hour)
	if err != nil {
		t.Fatalf("failed to sign token for %s: %v", userID, err)
	}
	return token
}

// ExecuteRequestAndParse executes an HTTP request on the env's router and
// parses the JSON response. An empty token leaves the request anonymous.
func (env *TestEnv) ExecuteRequestAndParse(t *testing.T, method, url string, body any, token string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// openAuction builds a live open-bid auction ending an hour from now.
func openAuction(auctionID, sellerID, name string, startingPrice float64) model.Auction {
	now := time.Now()
	return model.Auction{
		AuctionID:     auctionID,
		AuctioneerID:  sellerID,
		ProductDetail: model.ProductDetail{ProductName: name, Category: "misc"},
		StartingPrice: startingPrice,
		StartDate:     now,
		EndDate:       now.Add(time.Hour),
		Status:        model.StatusBidding,
		IsOpenBid:     true,
	}
}
