package bidding

import (
	"math"

	model "auctionhouse/internal/models"
)

// Flat increment applied below the magnitude-scaling threshold.
const (
	flatMinStep       = 50.0
	magnitudeBoundary = 5000.0
)

// MinBidStep returns the minimum increment the next bid must add on top of the
// auction's effective price. An explicitly configured step wins; otherwise the
// step is derived from the price magnitude. Pure: consulted on every validation.
func MinBidStep(auction model.Auction) float64 {
	if auction.BidStep > 0 {
		return auction.BidStep
	}
	return derivedMinStep(auction.EffectivePrice())
}

// MinAcceptableBid returns the smallest amount that qualifies as the next bid.
func MinAcceptableBid(auction model.Auction) float64 {
	return auction.EffectivePrice() + MinBidStep(auction)
}

// derivedMinStep scales the increment with the price's order of magnitude so the
// next bid lands on a round boundary: a step two orders below the digit count,
// times the price rounded up at its leading digit. Prices under the boundary get
// the flat 50-unit step.
func derivedMinStep(price float64) float64 {
	if price < magnitudeBoundary {
		return flatMinStep
	}
	digits := math.Ceil(math.Log10(price))
	return math.Pow(10, digits-3) * math.Ceil(price/math.Pow(10, digits-1))
}
