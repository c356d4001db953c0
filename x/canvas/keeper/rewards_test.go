package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"pixelchain/x/canvas/keeper"
	"pixelchain/x/canvas/types"
)

// TestRewardAccrualAfterClaim pins the accumulator arithmetic across a claim
// boundary: a drained player keeps accruing from later batches at their full
// contribution weight.
func TestRewardAccrualAfterClaim(t *testing.T) {
	f := initFixture(t)
	ms := keeper.NewMsgServerImpl(f.keeper)

	addrA, addrAStr := f.newAddr(t, "accrualA")
	addrB, addrBStr := f.newAddr(t, "accrualB")
	f.fund(addrA, 10_000_000)
	f.fund(addrB, 10_000_000)

	_, err := ms.UpdatePixels(f.ctx, &types.MsgUpdatePixels{
		Creator: addrAStr,
		Pixels: []types.PixelUpdate{
			{X: 0, Y: 0, Color: 0x101010},
			{X: 1, Y: 0, Color: 0x202020},
		},
		ExpectedEditionId: 0,
	})
	require.NoError(t, err)

	resp, err := ms.ClaimReward(f.ctx, &types.MsgClaimReward{Creator: addrAStr})
	require.NoError(t, err)
	require.Equal(t, "200000", resp.Amount)

	// B pays 1_000_000 for a fresh cell; 100_000 lands on the pool split
	// over 3 contribution units. A holds 2 of them.
	_, err = ms.UpdatePixels(f.ctx, &types.MsgUpdatePixels{
		Creator:           addrBStr,
		Pixels:            []types.PixelUpdate{{X: 5, Y: 5, Color: 0x303030}},
		ExpectedEditionId: 1,
	})
	require.NoError(t, err)

	playerA, err := f.keeper.GetPlayerByAddress(f.ctx, addrAStr)
	require.NoError(t, err)
	claimableA, err := f.keeper.ClaimableReward(f.ctx, playerA)
	require.NoError(t, err)
	require.True(t, claimableA.Equal(math.NewInt(66_666)), "got %s", claimableA)

	playerB, err := f.keeper.GetPlayerByAddress(f.ctx, addrBStr)
	require.NoError(t, err)
	claimableB, err := f.keeper.ClaimableReward(f.ctx, playerB)
	require.NoError(t, err)
	require.True(t, claimableB.Equal(math.NewInt(33_333)), "got %s", claimableB)
}

// TestRewardConservation walks a multi-player sequence and checks the ledger
// never over-promises: claimable balances plus claimed history never exceed
// the rewards actually added, and integer truncation loses at most one unit
// per player per batch.
func TestRewardConservation(t *testing.T) {
	f := initFixture(t)
	ms := keeper.NewMsgServerImpl(f.keeper)

	painters := make([]string, 3)
	for i, seed := range []string{"conserveA", "conserveB", "conserveC"} {
		addr, addrStr := f.newAddr(t, seed)
		f.fund(addr, 1_000_000_000)
		painters[i] = addrStr
	}

	batches := []struct {
		painter int
		pixels  []types.PixelUpdate
	}{
		{0, []types.PixelUpdate{{X: 0, Y: 0, Color: 0x01}, {X: 1, Y: 1, Color: 0x02}}},
		{1, []types.PixelUpdate{{X: 0, Y: 0, Color: 0x03}}},
		{2, []types.PixelUpdate{{X: 2, Y: 2, Color: 0x04}, {X: 0, Y: 0, Color: 0x05}, {X: 3, Y: 3, Color: 0x06}}},
		{0, []types.PixelUpdate{{X: 3, Y: 3, Color: 0x07}}},
		{1, []types.PixelUpdate{{X: 1, Y: 1, Color: 0x08}, {X: 2, Y: 2, Color: 0x09}}},
	}

	for i, b := range batches {
		_, err := ms.UpdatePixels(f.ctx, &types.MsgUpdatePixels{
			Creator:           painters[b.painter],
			Pixels:            b.pixels,
			ExpectedEditionId: uint64(i),
		})
		require.NoError(t, err)

		// Let a claim interleave halfway through.
		if i == 2 {
			_, err := ms.ClaimReward(f.ctx, &types.MsgClaimReward{Creator: painters[0]})
			require.NoError(t, err)
		}

		added, err := f.keeper.TotalRewardAdded.Get(f.ctx)
		require.NoError(t, err)
		claimed := math.ZeroInt()
		if c, err := f.keeper.TotalRewardClaimed.Get(f.ctx); err == nil {
			claimed = c
		}

		outstanding := math.ZeroInt()
		for _, p := range painters {
			player, err := f.keeper.GetPlayerByAddress(f.ctx, p)
			if err != nil {
				continue
			}
			claimable, err := f.keeper.ClaimableReward(f.ctx, player)
			require.NoError(t, err)
			require.False(t, claimable.IsNegative())
			outstanding = outstanding.Add(claimable)
		}

		promised := outstanding.Add(claimed)
		require.True(t, promised.LTE(added), "batch %d: promised %s > added %s", i, promised, added)
		loss := added.Sub(promised)
		require.True(t, loss.LTE(math.NewInt(int64(len(painters)*(i+1)))), "batch %d: truncation loss %s", i, loss)
	}

	// The pool can always honor every outstanding claim.
	for _, p := range painters {
		player, err := f.keeper.GetPlayerByAddress(f.ctx, p)
		require.NoError(t, err)
		claimable, err := f.keeper.ClaimableReward(f.ctx, player)
		require.NoError(t, err)
		if claimable.IsPositive() {
			_, err = ms.ClaimReward(f.ctx, &types.MsgClaimReward{Creator: p})
			require.NoError(t, err)
		}
	}
	require.False(t, f.balanceOf(types.ModuleName).IsNegative())
}
