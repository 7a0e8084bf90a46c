package bidding

import (
	"testing"

	model "auctionhouse/internal/models"

	"github.com/stretchr/testify/require"
)

// Tests MinBidStep
func TestMinBidStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		auction  model.Auction
		wantStep float64
	}{
		{
			name:     "explicit_step_wins",
			auction:  model.Auction{BidStep: 250, StartingPrice: 100},
			wantStep: 250,
		},
		{
			name:     "explicit_step_wins_over_magnitude_rule",
			auction:  model.Auction{BidStep: 10, StartingPrice: 100, CurrentPrice: 12000, CurrentWinnerID: "user1"},
			wantStep: 10,
		},
		{
			name:     "flat_step_below_boundary",
			auction:  model.Auction{StartingPrice: 100, CurrentPrice: 4999, CurrentWinnerID: "user1"},
			wantStep: 50,
		},
		{
			name:     "flat_step_tiny_price",
			auction:  model.Auction{StartingPrice: 1},
			wantStep: 50,
		},
		{
			name:     "magnitude_step_at_boundary",
			auction:  model.Auction{StartingPrice: 100, CurrentPrice: 5000, CurrentWinnerID: "user1"},
			wantStep: 50,
		},
		{
			name:     "magnitude_step_five_digits",
			auction:  model.Auction{StartingPrice: 100, CurrentPrice: 12000, CurrentWinnerID: "user1"},
			wantStep: 200,
		},
		{
			name:     "magnitude_step_four_digits",
			auction:  model.Auction{StartingPrice: 100, CurrentPrice: 7300, CurrentWinnerID: "user1"},
			wantStep: 80,
		},
		{
			name:     "no_bids_uses_starting_price",
			auction:  model.Auction{StartingPrice: 12000},
			wantStep: 200,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.wantStep, MinBidStep(tc.auction))
		})
	}
}

// The deriver is consulted on every validation, so same input must always give
// the same output.
func TestMinBidStep_Deterministic(t *testing.T) {
	t.Parallel()

	auction := model.Auction{StartingPrice: 100, CurrentPrice: 87654, CurrentWinnerID: "user1"}
	first := MinBidStep(auction)
	for i := 0; i < 100; i++ {
		require.Equal(t, first, MinBidStep(auction))
	}
}

// Tests MinAcceptableBid
func TestMinAcceptableBid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		auction model.Auction
		want    float64
	}{
		{
			name:    "no_bids_starting_price_plus_flat_step",
			auction: model.Auction{StartingPrice: 1500},
			want:    1550,
		},
		{
			name:    "current_price_plus_derived_step",
			auction: model.Auction{StartingPrice: 100, CurrentPrice: 12000, CurrentWinnerID: "user1"},
			want:    12200,
		},
		{
			name:    "current_price_plus_explicit_step",
			auction: model.Auction{StartingPrice: 100, BidStep: 100, CurrentPrice: 900, CurrentWinnerID: "user1"},
			want:    1000,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, MinAcceptableBid(tc.auction))
		})
	}
}
