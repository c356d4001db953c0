package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	"pixelchain/x/canvas/types"
)

// UpdateParams is authority-gated; typically the gov module account.
func (k *msgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	authority, err := k.addressCodec.BytesToString(k.authority)
	if err != nil {
		return nil, err
	}
	if msg.Authority != authority {
		return nil, errorsmod.Wrapf(types.ErrInvalidSigner, "got %s", msg.Authority)
	}
	if err := msg.Params.Validate(); err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, err.Error())
	}

	// The grid never shrinks under live state: written cells outside a
	// smaller canvas would become unreachable.
	current, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	if msg.Params.CanvasSize < current.CanvasSize {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "canvas_size cannot shrink")
	}

	if err := k.Params.Set(ctx, msg.Params); err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}
