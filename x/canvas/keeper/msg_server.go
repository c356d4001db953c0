package keeper

import (
	"pixelchain/x/canvas/types"
)

type msgServer struct {
	Keeper
}

var _ types.MsgServer = &msgServer{}

func NewMsgServerImpl(k Keeper) types.MsgServer {
	return &msgServer{Keeper: k}
}
