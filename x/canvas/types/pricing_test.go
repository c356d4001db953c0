package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"pixelchain/x/canvas/types"
)

func TestNextPrice(t *testing.T) {
	tests := []struct {
		name  string
		price int64
		rate  uint64
		want  int64
	}{
		{"genesis price at 5%", 1_000_000, 500, 1_050_000},
		{"second bump compounds", 1_050_000, 500, 1_102_500},
		{"multiplication before division", 1_999, 500, 2_098},
		{"full rate doubles", 1_000, 10_000, 2_000},
		{"tiny price can stall", 19, 500, 19},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := types.NextPrice(math.NewInt(tc.price), tc.rate)
			require.True(t, got.Equal(math.NewInt(tc.want)), "got %s", got)
		})
	}
}

func TestNextPriceNeverDecreases(t *testing.T) {
	price := math.NewInt(1_000_000)
	for i := 0; i < 100; i++ {
		next := types.NextPrice(price, types.DefaultPriceIncreaseRate)
		require.True(t, next.GTE(price))
		price = next
	}
	// 100 compounding 5% bumps from 1_000_000: well past 100x genesis.
	require.True(t, price.GT(math.NewInt(100_000_000)))
}

func TestRewardCut(t *testing.T) {
	tests := []struct {
		name        string
		total       int64
		rate        uint64
		wantReward  int64
		wantReserve int64
	}{
		{"two genesis cells", 2_000_000, 1_000, 200_000, 1_800_000},
		{"bumped single cell", 1_050_000, 1_000, 105_000, 945_000},
		{"truncation favors the reserve", 9, 1_000, 0, 9},
		{"full rate pools everything", 500, 10_000, 500, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reward, reserve := types.RewardCut(math.NewInt(tc.total), tc.rate)
			require.True(t, reward.Equal(math.NewInt(tc.wantReward)), "reward %s", reward)
			require.True(t, reserve.Equal(math.NewInt(tc.wantReserve)), "reserve %s", reserve)
			require.True(t, reward.Add(reserve).Equal(math.NewInt(tc.total)))
		})
	}
}
