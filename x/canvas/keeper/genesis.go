package keeper

import (
	"context"

	"cosmossdk.io/collections"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"pixelchain/x/canvas/types"
)

// InitGenesis writes the full module state. On a fresh chain it registers
// the payment sink at id 0 and materializes every cell at the genesis price,
// so the grid is fully defined before the first write.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}

	if len(genState.Players) == 0 {
		sinkAddr, err := k.addressCodec.BytesToString(authtypes.NewModuleAddress(types.SinkName))
		if err != nil {
			return err
		}
		if err := k.registerSink(ctx, sinkAddr); err != nil {
			return err
		}
	} else {
		for _, player := range genState.Players {
			if err := k.setPlayer(ctx, player); err != nil {
				return err
			}
		}
		if err := k.PlayerCounter.Set(ctx, uint64(len(genState.Players))); err != nil {
			return err
		}
	}

	n := genState.Params.CanvasSize
	for y := uint32(0); y < n; y++ {
		for x := uint32(0); x < n; x++ {
			cell := types.Cell{Color: 0, Owner: 0, Price: genState.Params.GenesisPrice}
			if err := k.Cells.Set(ctx, collections.Join(x, y), cell); err != nil {
				return err
			}
		}
	}
	for _, gc := range genState.Cells {
		if err := k.Cells.Set(ctx, collections.Join(gc.X, gc.Y), gc.Cell); err != nil {
			return err
		}
	}

	if err := k.TotalContribution.Set(ctx, genState.TotalContribution); err != nil {
		return err
	}
	if err := k.AccRewardPerContribution.Set(ctx, genState.AccRewardPerContribution); err != nil {
		return err
	}
	if err := k.TotalRewardAdded.Set(ctx, genState.TotalRewardAdded); err != nil {
		return err
	}
	if err := k.TotalRewardClaimed.Set(ctx, genState.TotalRewardClaimed); err != nil {
		return err
	}

	for _, edition := range genState.Editions {
		if err := k.Editions.Set(ctx, edition.Id, edition); err != nil {
			return err
		}
	}
	return k.EditionCounter.Set(ctx, genState.NextEditionId)
}

// ExportGenesis walks the full persisted state surface.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genState := types.DefaultGenesis()

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	genState.Params = params

	err = k.Cells.Walk(ctx, nil, func(key collections.Pair[uint32, uint32], cell types.Cell) (bool, error) {
		genState.Cells = append(genState.Cells, types.GenesisCell{X: key.K1(), Y: key.K2(), Cell: cell})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.Players.Walk(ctx, nil, func(_ uint32, player types.Player) (bool, error) {
		genState.Players = append(genState.Players, player)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	if genState.TotalContribution, err = k.getTotalContribution(ctx); err != nil {
		return nil, err
	}
	if genState.AccRewardPerContribution, err = k.getIntItem(ctx, k.AccRewardPerContribution); err != nil {
		return nil, err
	}
	if genState.TotalRewardAdded, err = k.getIntItem(ctx, k.TotalRewardAdded); err != nil {
		return nil, err
	}
	if genState.TotalRewardClaimed, err = k.getIntItem(ctx, k.TotalRewardClaimed); err != nil {
		return nil, err
	}

	err = k.Editions.Walk(ctx, nil, func(_ uint64, edition types.Edition) (bool, error) {
		genState.Editions = append(genState.Editions, edition)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	if genState.NextEditionId, err = k.EditionCounter.Peek(ctx); err != nil {
		return nil, err
	}

	return genState, nil
}
