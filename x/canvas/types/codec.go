package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
)

var (
	ModuleCdc = codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
)

func RegisterLegacyAminoCodec(_ *codec.LegacyAmino) {}
func RegisterCodec(_ *codec.LegacyAmino)            {}

// RegisterInterfaces is a no-op until the msg service descriptors are
// generated; handlers are wired directly through the keeper's MsgServer.
func RegisterInterfaces(_ codectypes.InterfaceRegistry) {}
