package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pixelchain/x/canvas/types"
)

func TestPlayerIdsAreDense(t *testing.T) {
	f := initFixture(t)

	seeds := []string{"wallet_one", "wallet_two", "wallet_three"}
	for i, seed := range seeds {
		_, addrStr := f.newAddr(t, seed)
		player, err := f.keeper.GetOrCreatePlayer(f.ctx, addrStr)
		require.NoError(t, err)
		// Id 0 belongs to the sink, so wallets start at 1 with no gaps.
		require.Equal(t, uint32(i+1), player.Id)
		require.Equal(t, addrStr, player.Address)
		require.Equal(t, uint32(0), player.Contribution)
		require.True(t, player.RewardDebt.IsZero())
	}

	count, err := f.keeper.PlayerCount(f.ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(4), count)
}

func TestGetOrCreatePlayerIdempotent(t *testing.T) {
	f := initFixture(t)

	_, addrStr := f.newAddr(t, "repeat_wallet")
	first, err := f.keeper.GetOrCreatePlayer(f.ctx, addrStr)
	require.NoError(t, err)
	second, err := f.keeper.GetOrCreatePlayer(f.ctx, addrStr)
	require.NoError(t, err)
	require.Equal(t, first.Id, second.Id)

	count, err := f.keeper.PlayerCount(f.ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(2), count)
}

func TestWalletLookups(t *testing.T) {
	f := initFixture(t)

	_, addrStr := f.newAddr(t, "lookup_wallet")
	player, err := f.keeper.GetOrCreatePlayer(f.ctx, addrStr)
	require.NoError(t, err)

	wallet, err := f.keeper.WalletOf(f.ctx, player.Id)
	require.NoError(t, err)
	require.Equal(t, addrStr, wallet)

	byAddr, err := f.keeper.GetPlayerByAddress(f.ctx, addrStr)
	require.NoError(t, err)
	require.Equal(t, player.Id, byAddr.Id)

	_, err = f.keeper.WalletOf(f.ctx, 99)
	require.ErrorIs(t, err, types.ErrNotFound)

	_, unknown := f.newAddr(t, "unknown_wallet")
	_, err = f.keeper.GetPlayerByAddress(f.ctx, unknown)
	require.ErrorIs(t, err, types.ErrNotFound)
}
