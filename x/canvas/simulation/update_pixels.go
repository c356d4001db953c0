package simulation

import (
	"math/rand"

	"github.com/cosmos/cosmos-sdk/baseapp"
	"github.com/cosmos/cosmos-sdk/client"
	sdk "github.com/cosmos/cosmos-sdk/types"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"
	"github.com/cosmos/cosmos-sdk/x/simulation"

	"pixelchain/x/canvas/keeper"
	"pixelchain/x/canvas/types"
)

// SimulateMsgUpdatePixels simulates a player painting a small random batch.
func SimulateMsgUpdatePixels(
	ak types.AuthKeeper,
	bk types.BankKeeper,
	k keeper.Keeper,
	txGen client.TxConfig,
) simtypes.Operation {
	return func(r *rand.Rand, app *baseapp.BaseApp, ctx sdk.Context, accs []simtypes.Account, chainID string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		simAccount, _ := simtypes.RandomAcc(r, accs)

		params, err := k.GetParams(ctx)
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, "update_pixels", "failed to load params"), nil, err
		}

		nextEdition, err := k.NextEditionID(ctx)
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, "update_pixels", "failed to read edition counter"), nil, err
		}

		// 1..4 random pixels per batch keeps the cost small enough for
		// randomly funded sim accounts.
		count := r.Intn(4) + 1
		pixels := make([]types.PixelUpdate, 0, count)
		cost := sdk.NewCoins()
		for i := 0; i < count; i++ {
			x := uint32(r.Intn(int(params.CanvasSize)))
			y := uint32(r.Intn(int(params.CanvasSize)))
			cell, err := k.GetCell(ctx, x, y)
			if err != nil {
				return simtypes.NoOpMsg(types.ModuleName, "update_pixels", "failed to read cell"), nil, err
			}
			cost = cost.Add(sdk.NewCoin(params.Denom, cell.Price))
			pixels = append(pixels, types.PixelUpdate{X: x, Y: y, Color: uint32(r.Intn(types.MaxColor + 1))})
		}

		msg := &types.MsgUpdatePixels{
			Creator:           simAccount.Address.String(),
			Pixels:            pixels,
			ExpectedEditionId: nextEdition,
		}

		spendable := bk.SpendableCoins(ctx, simAccount.Address)
		if !spendable.IsAllGTE(cost) {
			return simtypes.NoOpMsg(types.ModuleName, sdk.MsgTypeURL(msg), "insufficient balance for batch"), nil, nil
		}

		txCtx := simulation.OperationInput{
			R:               r,
			App:             app,
			TxGen:           txGen,
			Cdc:             nil,
			Msg:             msg,
			Context:         ctx,
			SimAccount:      simAccount,
			AccountKeeper:   ak,
			Bankkeeper:      bk,
			ModuleName:      types.ModuleName,
			CoinsSpentInMsg: cost,
		}

		return simulation.GenAndDeliverTxWithRandFees(txCtx)
	}
}
