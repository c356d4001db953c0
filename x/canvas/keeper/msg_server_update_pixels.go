package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"pixelchain/x/canvas/types"
)

// UpdatePixels handles a batch of cell overwrites. The whole handler is one
// atomic unit: any error reverts every store write and bank transfer below,
// and the events are dropped with them.
func (k *msgServer) UpdatePixels(ctx context.Context, msg *types.MsgUpdatePixels) (*types.MsgUpdatePixelsResponse, error) {
	creatorAddr, err := k.addressCodec.StringToBytes(msg.Creator)
	if err != nil {
		return nil, errorsmod.Wrap(err, "invalid creator address")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to load params")
	}

	// Validation first: nothing below may run on a bad batch.
	if len(msg.Pixels) == 0 {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "at least one pixel update is required")
	}
	if len(msg.Pixels) > params.MaxPixelsPerUpdate() {
		return nil, errorsmod.Wrapf(types.ErrTooManyPixels, "%d updates, max %d", len(msg.Pixels), params.MaxPixelsPerUpdate())
	}
	for _, px := range msg.Pixels {
		if px.X >= params.CanvasSize || px.Y >= params.CanvasSize {
			return nil, errorsmod.Wrapf(types.ErrCoordinateOutOfRange, "(%d,%d) on a %dx%d canvas", px.X, px.Y, params.CanvasSize, params.CanvasSize)
		}
		if px.Color > types.MaxColor {
			return nil, errorsmod.Wrapf(types.ErrInvalidColor, "%#x", px.Color)
		}
	}

	// Optimistic-concurrency fence: a batch built against a stale canvas view
	// names a stale edition id and is rejected before any mutation.
	nextEdition, err := k.NextEditionID(ctx)
	if err != nil {
		return nil, err
	}
	if msg.ExpectedEditionId != nextEdition {
		return nil, errorsmod.Wrapf(types.ErrEditionMismatch, "expected %d, next is %d", msg.ExpectedEditionId, nextEdition)
	}

	player, err := k.GetOrCreatePlayer(ctx, msg.Creator)
	if err != nil {
		return nil, err
	}

	// Apply writes in input order. A cell hit twice in one batch is priced
	// and re-priced sequentially, so its price compounds within the batch.
	totalPrice := math.ZeroInt()
	for _, px := range msg.Pixels {
		cell, err := k.GetCell(ctx, px.X, px.Y)
		if err != nil {
			return nil, err
		}
		totalPrice = totalPrice.Add(cell.Price)
		cell.Color = px.Color
		cell.Owner = player.Id
		cell.Price = types.NextPrice(cell.Price, params.PriceIncreaseRate)
		if err := k.SetCell(ctx, px.X, px.Y, cell); err != nil {
			return nil, err
		}
	}

	reward, reserve := types.RewardCut(totalPrice, params.RewardRate)

	spendable := k.bankKeeper.SpendableCoins(ctx, creatorAddr)
	cost := sdk.NewCoins(sdk.NewCoin(params.Denom, totalPrice))
	if !spendable.IsAllGTE(cost) {
		return nil, errorsmod.Wrapf(types.ErrInsufficientFund, "batch costs %s", cost)
	}

	if reward.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(params.Denom, reward))
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, creatorAddr, types.ModuleName, coins); err != nil {
			return nil, errorsmod.Wrap(types.ErrRewardTransfer, err.Error())
		}
	}
	if reserve.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(params.Denom, reserve))
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, creatorAddr, types.ReserveName, coins); err != nil {
			return nil, errorsmod.Wrap(types.ErrReserveTransfer, err.Error())
		}
	}

	colors, err := k.ColorGrid(ctx)
	if err != nil {
		return nil, err
	}
	editionID, err := k.MintEdition(ctx, msg.Creator, colors, uint32(len(msg.Pixels)), reserve)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to mint edition")
	}

	if err := k.addPlayerReward(ctx, &player, uint32(len(msg.Pixels)), reward); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventUpdatePixels,
			sdk.NewAttribute(types.AttrPlayer, msg.Creator),
			sdk.NewAttribute(types.AttrPixelCount, strconv.Itoa(len(msg.Pixels))),
			sdk.NewAttribute(types.AttrTotalPrice, totalPrice.String()),
			sdk.NewAttribute(types.AttrReward, reward.String()),
		),
	)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventEditionMinted,
			sdk.NewAttribute(types.AttrEditionID, strconv.FormatUint(editionID, 10)),
			sdk.NewAttribute(types.AttrPlayer, msg.Creator),
			sdk.NewAttribute(types.AttrReserve, reserve.String()),
		),
	)

	return &types.MsgUpdatePixelsResponse{
		PixelCount: uint32(len(msg.Pixels)),
		TotalPrice: totalPrice.String(),
		Reward:     reward.String(),
		EditionId:  editionID,
	}, nil
}
