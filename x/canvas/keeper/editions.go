package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"cosmossdk.io/x/nft"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"pixelchain/x/canvas/render"
	"pixelchain/x/canvas/types"
)

// NextEditionID peeks the edition sequence without advancing it. This is the
// fencing token update batches must carry.
func (k Keeper) NextEditionID(ctx context.Context) (uint64, error) {
	return k.EditionCounter.Peek(ctx)
}

// MintEdition records an immutable snapshot of the canvas and mints the
// matching nft to the batch owner. The token URI is the rendered canvas as a
// base64 SVG data URI.
func (k Keeper) MintEdition(ctx context.Context, owner string, colors [][]uint32, pixelCount uint32, value math.Int) (uint64, error) {
	if !k.nftKeeper.HasClass(ctx, types.EditionClassId) {
		class := nft.Class{
			Id:          types.EditionClassId,
			Name:        "Canvas Editions",
			Symbol:      "CANVAS",
			Description: "Historical snapshots of the shared canvas",
		}
		if err := k.nftKeeper.SaveClass(ctx, class); err != nil {
			return 0, err
		}
	}

	id, err := k.EditionCounter.Next(ctx)
	if err != nil {
		return 0, err
	}

	ownerBytes, err := k.addressCodec.StringToBytes(owner)
	if err != nil {
		return 0, errorsmod.Wrap(err, "invalid edition owner address")
	}
	token := nft.NFT{
		ClassId: types.EditionClassId,
		Id:      fmt.Sprintf("edition-%d", id),
		Uri:     render.SVGBase64(colors),
	}
	if err := k.nftKeeper.Mint(ctx, token, sdk.AccAddress(ownerBytes)); err != nil {
		return 0, err
	}

	edition := types.Edition{
		Id:         id,
		Owner:      owner,
		PixelCount: pixelCount,
		Value:      value,
		Colors:     colors,
		CreatedAt:  sdk.UnwrapSDKContext(ctx).BlockTime().Unix(),
	}
	if err := k.Editions.Set(ctx, id, edition); err != nil {
		return 0, err
	}
	return id, nil
}

// GetEdition returns one historical snapshot.
func (k Keeper) GetEdition(ctx context.Context, id uint64) (types.Edition, error) {
	edition, err := k.Editions.Get(ctx, id)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Edition{}, errorsmod.Wrapf(types.ErrNotFound, "edition %d", id)
		}
		return types.Edition{}, err
	}
	return edition, nil
}
