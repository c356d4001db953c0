package keeper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	collcodec "cosmossdk.io/collections/codec"
	"cosmossdk.io/core/address"
	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"pixelchain/x/canvas/types"
)

// jsonValue is the collections value codec for the module's hand-written
// state types. They are stored as JSON bytes because they are not protobuf
// messages and we're implementing this without modifying the proto files.
type jsonValue[T any] struct {
	typeName string
}

func (c jsonValue[T]) Encode(value T) ([]byte, error) { return json.Marshal(value) }
func (c jsonValue[T]) Decode(bz []byte) (T, error) {
	var v T
	err := json.Unmarshal(bz, &v)
	return v, err
}
func (c jsonValue[T]) EncodeJSON(value T) ([]byte, error) { return c.Encode(value) }
func (c jsonValue[T]) DecodeJSON(bz []byte) (T, error)    { return c.Decode(bz) }
func (c jsonValue[T]) Stringify(value T) string {
	bz, _ := json.Marshal(value)
	return string(bz)
}
func (c jsonValue[T]) ValueType() string { return c.typeName }

var (
	_ collcodec.ValueCodec[types.Params] = jsonValue[types.Params]{}
	_ collcodec.ValueCodec[types.Cell]   = jsonValue[types.Cell]{}
)

// Keeper owns the canvas ledger state machine: the cell grid, the player
// registry, the reward accumulator, and the edition history.
type Keeper struct {
	storeService corestore.KVStoreService
	cdc          codec.Codec
	addressCodec address.Codec
	// Address capable of executing a MsgUpdateParams message.
	// Typically, this should be the x/gov module account.
	authority []byte

	// Bank keeper moves payment units; nft keeper backs edition snapshots.
	bankKeeper types.BankKeeper
	nftKeeper  types.NFTKeeper

	Schema collections.Schema
	Params collections.Item[types.Params]

	// Cell grid, keyed (x, y).
	Cells collections.Map[collections.Pair[uint32, uint32], types.Cell]

	// Player registry: dense ids with the wallet index as inverse lookup.
	Players       collections.Map[uint32, types.Player]
	PlayerIds     collections.Map[string, uint32]
	PlayerCounter collections.Sequence

	// Reward accumulator scalars.
	TotalContribution        collections.Item[uint64]
	AccRewardPerContribution collections.Item[math.Int]
	TotalRewardAdded         collections.Item[math.Int]
	TotalRewardClaimed       collections.Item[math.Int]

	// Edition history.
	EditionCounter collections.Sequence
	Editions       collections.Map[uint64, types.Edition]
}

// NewKeeper creates a new canvas module Keeper instance
func NewKeeper(
	storeService corestore.KVStoreService,
	cdc codec.Codec,
	addressCodec address.Codec,
	authority []byte,
	bankKeeper types.BankKeeper,
	nftKeeper types.NFTKeeper,
) Keeper {
	if _, err := addressCodec.BytesToString(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address %x: %s", authority, err))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		cdc:          cdc,
		addressCodec: addressCodec,
		authority:    authority,
		bankKeeper:   bankKeeper,
		nftKeeper:    nftKeeper,

		Params: collections.NewItem(sb, types.ParamsKey, "params", jsonValue[types.Params]{typeName: "canvas/Params"}),
		Cells: collections.NewMap(sb, types.CellKeyPrefix, "cells",
			collections.PairKeyCodec(collections.Uint32Key, collections.Uint32Key),
			jsonValue[types.Cell]{typeName: "canvas/Cell"}),
		Players:                  collections.NewMap(sb, types.PlayerKeyPrefix, "players", collections.Uint32Key, jsonValue[types.Player]{typeName: "canvas/Player"}),
		PlayerIds:                collections.NewMap(sb, types.PlayerIdKeyPrefix, "player_ids", collections.StringKey, collections.Uint32Value),
		PlayerCounter:            collections.NewSequence(sb, types.PlayerCounterKey, "player_counter"),
		TotalContribution:        collections.NewItem(sb, types.TotalContributionKey, "total_contribution", collections.Uint64Value),
		AccRewardPerContribution: collections.NewItem(sb, types.AccRewardPerContributionKey, "acc_reward_per_contribution", sdk.IntValue),
		TotalRewardAdded:         collections.NewItem(sb, types.TotalRewardAddedKey, "total_reward_added", sdk.IntValue),
		TotalRewardClaimed:       collections.NewItem(sb, types.TotalRewardClaimedKey, "total_reward_claimed", sdk.IntValue),
		EditionCounter:           collections.NewSequence(sb, types.EditionCounterKey, "edition_counter"),
		Editions:                 collections.NewMap(sb, types.EditionKeyPrefix, "editions", collections.Uint64Key, jsonValue[types.Edition]{typeName: "canvas/Edition"}),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() []byte {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// GetParams returns current params or defaults when unset.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.DefaultParams(), nil
		}
		return types.Params{}, err
	}
	return params, nil
}

// SetParams validates and stores module params.
func (k Keeper) SetParams(ctx context.Context, p types.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return k.Params.Set(ctx, p)
}

func (k Keeper) getTotalContribution(ctx context.Context) (uint64, error) {
	total, err := k.TotalContribution.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return total, nil
}

func (k Keeper) getIntItem(ctx context.Context, item collections.Item[math.Int]) (math.Int, error) {
	v, err := item.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.Int{}, err
	}
	return v, nil
}
