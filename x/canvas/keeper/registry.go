package keeper

import (
	"context"
	"errors"
	"strconv"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"pixelchain/x/canvas/types"
)

// GetOrCreatePlayer returns the ledger record for a wallet, allocating the
// next dense id on the wallet's first write. Records are never destroyed.
func (k Keeper) GetOrCreatePlayer(ctx context.Context, addr string) (types.Player, error) {
	id, err := k.PlayerIds.Get(ctx, addr)
	if err == nil {
		return k.Players.Get(ctx, id)
	}
	if !errors.Is(err, collections.ErrNotFound) {
		return types.Player{}, err
	}

	next, err := k.PlayerCounter.Next(ctx)
	if err != nil {
		return types.Player{}, err
	}
	if next > types.MaxPlayerId {
		return types.Player{}, errorsmod.Wrap(types.ErrCapacityExceeded, "player id space exhausted")
	}

	player := types.NewPlayer(uint32(next), addr)
	if err := k.setPlayer(ctx, player); err != nil {
		return types.Player{}, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventPlayerJoined,
			sdk.NewAttribute(types.AttrPlayer, addr),
			sdk.NewAttribute(types.AttrPlayerID, strconv.FormatUint(next, 10)),
		),
	)
	return player, nil
}

// GetPlayerByAddress is the O(1) wallet lookup.
func (k Keeper) GetPlayerByAddress(ctx context.Context, addr string) (types.Player, error) {
	id, err := k.PlayerIds.Get(ctx, addr)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Player{}, errorsmod.Wrapf(types.ErrNotFound, "player %s", addr)
		}
		return types.Player{}, err
	}
	return k.Players.Get(ctx, id)
}

// WalletOf is the O(1) inverse lookup from a dense id to its wallet.
func (k Keeper) WalletOf(ctx context.Context, id uint32) (string, error) {
	player, err := k.Players.Get(ctx, id)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return "", errorsmod.Wrapf(types.ErrNotFound, "player id %d", id)
		}
		return "", err
	}
	return player.Address, nil
}

// PlayerCount returns the number of registered wallets, the sink included.
func (k Keeper) PlayerCount(ctx context.Context) (uint64, error) {
	return k.PlayerCounter.Peek(ctx)
}

func (k Keeper) setPlayer(ctx context.Context, player types.Player) error {
	if err := k.Players.Set(ctx, player.Id, player); err != nil {
		return err
	}
	return k.PlayerIds.Set(ctx, player.Address, player.Id)
}

// registerSink claims id 0 for the payment sink account. Called once at
// genesis before any wallet can register.
func (k Keeper) registerSink(ctx context.Context, sinkAddr string) error {
	count, err := k.PlayerCounter.Peek(ctx)
	if err != nil {
		return err
	}
	if count != 0 {
		return errorsmod.Wrap(types.ErrInvalidRequest, "sink must be the first registered player")
	}
	if _, err := k.PlayerCounter.Next(ctx); err != nil {
		return err
	}
	return k.setPlayer(ctx, types.NewPlayer(0, sinkAddr))
}
