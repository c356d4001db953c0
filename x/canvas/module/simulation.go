package module

import (
	"encoding/json"
	"math/rand"

	"github.com/cosmos/cosmos-sdk/types/module"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"
	"github.com/cosmos/cosmos-sdk/x/simulation"

	canvassimulation "pixelchain/x/canvas/simulation"
	"pixelchain/x/canvas/types"
)

// GenerateGenesisState creates a randomized GenState of the module.
func (AppModule) GenerateGenesisState(simState *module.SimulationState) {
	canvasGenesis := types.DefaultGenesis()
	bz, err := json.Marshal(canvasGenesis)
	if err != nil {
		panic(err)
	}
	simState.GenState[types.ModuleName] = bz
}

// RegisterStoreDecoder registers a decoder.
func (am AppModule) RegisterStoreDecoder(_ simtypes.StoreDecoderRegistry) {}

// WeightedOperations returns all the canvas module operations with their respective weights.
func (am AppModule) WeightedOperations(simState module.SimulationState) []simtypes.WeightedOperation {
	operations := make([]simtypes.WeightedOperation, 0)

	const (
		opWeightMsgUpdatePixels          = "op_weight_msg_canvas_update_pixels"
		defaultWeightMsgUpdatePixels int = 100
	)
	var weightMsgUpdatePixels int
	simState.AppParams.GetOrGenerate(opWeightMsgUpdatePixels, &weightMsgUpdatePixels, nil,
		func(_ *rand.Rand) {
			weightMsgUpdatePixels = defaultWeightMsgUpdatePixels
		},
	)
	operations = append(operations, simulation.NewWeightedOperation(
		weightMsgUpdatePixels,
		canvassimulation.SimulateMsgUpdatePixels(am.authKeeper, am.bankKeeper, am.keeper, simState.TxConfig),
	))

	const (
		opWeightMsgClaimReward          = "op_weight_msg_canvas_claim_reward"
		defaultWeightMsgClaimReward int = 30
	)
	var weightMsgClaimReward int
	simState.AppParams.GetOrGenerate(opWeightMsgClaimReward, &weightMsgClaimReward, nil,
		func(_ *rand.Rand) {
			weightMsgClaimReward = defaultWeightMsgClaimReward
		},
	)
	operations = append(operations, simulation.NewWeightedOperation(
		weightMsgClaimReward,
		canvassimulation.SimulateMsgClaimReward(am.authKeeper, am.bankKeeper, am.keeper, simState.TxConfig),
	))

	return operations
}

// ProposalMsgs returns msgs used for governance proposals for simulations.
func (am AppModule) ProposalMsgs(simState module.SimulationState) []simtypes.WeightedProposalMsg {
	return []simtypes.WeightedProposalMsg{}
}
