package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"pixelchain/x/canvas/types"
)

// ClaimReward withdraws the caller's entire claimable balance from the pool.
// State is settled before the transfer; if the transfer fails the tx aborts
// and the settlement reverts with it.
func (k *msgServer) ClaimReward(ctx context.Context, msg *types.MsgClaimReward) (*types.MsgClaimRewardResponse, error) {
	creatorAddr, err := k.addressCodec.StringToBytes(msg.Creator)
	if err != nil {
		return nil, errorsmod.Wrap(err, "invalid creator address")
	}

	player, err := k.GetPlayerByAddress(ctx, msg.Creator)
	if err != nil {
		if errorsmod.IsOf(err, types.ErrNotFound) {
			return nil, types.ErrNothingToClaim
		}
		return nil, err
	}

	amount, err := k.settleClaim(ctx, &player)
	if err != nil {
		return nil, err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	coins := sdk.NewCoins(sdk.NewCoin(params.Denom, amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, creatorAddr, coins); err != nil {
		return nil, errorsmod.Wrap(types.ErrRewardTransfer, err.Error())
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventClaimReward,
			sdk.NewAttribute(types.AttrPlayer, msg.Creator),
			sdk.NewAttribute(types.AttrAmount, amount.String()),
		),
	)

	return &types.MsgClaimRewardResponse{Amount: amount.String()}, nil
}
