package perftests

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"auctionhouse/internal/bidding"
	"auctionhouse/internal/identity"
	model "auctionhouse/internal/models"
	"auctionhouse/internal/repository"
)

func newBenchEngine(numAuctions int, startingPrice float64) (*bidding.Engine, *repository.MemoryAuctionStore) {
	auctions := repository.NewMemoryAuctionStore()
	engine := bidding.NewEngine(
		auctions,
		repository.NewMemoryBidLedger(),
		repository.NewMemoryActivityIndex(),
		repository.NewMemoryUserDirectory(),
		repository.NewMemoryBillingStore(),
		bidding.Config{},
	)

	now := time.Now()
	for i := 0; i < numAuctions; i++ {
		_ = auctions.AddAuction(model.Auction{
			AuctionID:     fmt.Sprintf("auction_%d", i),
			AuctioneerID:  "seller_bench",
			ProductDetail: model.ProductDetail{ProductName: fmt.Sprintf("bench product %d", i), Category: "bench"},
			StartingPrice: startingPrice,
			StartDate:     now,
			EndDate:       now.Add(24 * time.Hour),
			Status:        model.StatusBidding,
			IsOpenBid:     true,
		})
	}
	return engine, auctions
}

func benchBidder(userID string) identity.Identity {
	return identity.Identity{UserID: userID, DisplayName: "Bench User"}
}

// Benchmark 1: SubmitBid - Isolated Auctions (Low Contention - Micro Benchmark)
func Benchmark_SubmitBid_Isolated(b *testing.B) {
	// Starting price 100 derives a minimum step of 50
	engine, _ := newBenchEngine(b.N, 100)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		auctionID := fmt.Sprintf("auction_%d", i)
		bidder := benchBidder(fmt.Sprintf("user_%d", i))
		amount := float64(150 + rand.Intn(100))
		if _, err := engine.SubmitBid(auctionID, bidder, amount); err != nil {
			b.Fatalf("failed to submit bid: %v", err)
		}
	}
}

// Benchmark 2: SubmitBid - Shared Auction (High Contention - Concurrency Benchmark)
func Benchmark_SubmitBid_ConcurrentSharedAuction(b *testing.B) {
	engine, _ := newBenchEngine(1, 100)

	b.ReportAllocs()
	b.ResetTimer()

	// Each reservation jumps at least one full minimum step ahead, so most
	// racing bids clear the re-check at commit time.
	var lastBid int64 = 100

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			bidder := benchBidder(fmt.Sprintf("user_parallel_%d", rnd.Int()))
			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(50)+500))
			_, _ = engine.SubmitBid("auction_0", bidder, float64(nextBid))
		}
	})
}

// Benchmark 3: Refresh - Single-Threaded (Low Contention)
func Benchmark_Refresh_SingleThreaded(b *testing.B) {
	engine, _ := newBenchEngine(b.N, 100)

	for i := 0; i < b.N; i++ {
		auctionID := fmt.Sprintf("auction_%d", i)
		bidder := benchBidder(fmt.Sprintf("user_%d", i))
		_, _ = engine.SubmitBid(auctionID, bidder, 200)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		auctionID := fmt.Sprintf("auction_%d", i)
		if _, _, err := engine.Refresh(auctionID); err != nil {
			b.Fatalf("failed to refresh: %v", err)
		}
	}
}

// Benchmark 4: BidHistory - Concurrent (High Contention)
func Benchmark_BidHistory_ConcurrentSharedAuction(b *testing.B) {
	engine, _ := newBenchEngine(1, 100)

	price := 100.0
	for j := 0; j < 100; j++ {
		price += 500
		bidder := benchBidder(fmt.Sprintf("user_%d", j))
		if _, err := engine.SubmitBid("auction_0", bidder, price); err != nil {
			b.Fatalf("failed to seed bid: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	requester := benchBidder("reader")

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := engine.BidHistory("auction_0", requester); err != nil {
				b.Fatalf("failed to read bid history: %v", err)
			}
		}
	})
}

// Benchmark 5: Mixed Workload (Readers + Writers concurrently)
func Benchmark_MixedWorkload_SharedAuction(b *testing.B) {
	engine, _ := newBenchEngine(1, 100)

	price := 100.0
	for j := 0; j < 50; j++ {
		price += 500
		bidder := benchBidder(fmt.Sprintf("user_seed_%d", j))
		_, _ = engine.SubmitBid("auction_0", bidder, price)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid = int64(price)

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			opType := rnd.Intn(10)
			switch {
			case opType < 3:
				bidder := benchBidder(fmt.Sprintf("user_writer_%d", rnd.Int()))
				nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(50)+500))
				_, _ = engine.SubmitBid("auction_0", bidder, float64(nextBid))
			default:
				if _, _, err := engine.Refresh("auction_0"); err != nil {
					b.Fatalf("failed to refresh: %v", err)
				}
			}
		}
	})
}
