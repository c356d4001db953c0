package types

import (
	"cosmossdk.io/math"
)

// GenesisCell pins one cell's state to its coordinates for import/export.
type GenesisCell struct {
	X    uint32 `json:"x"`
	Y    uint32 `json:"y"`
	Cell Cell   `json:"cell"`
}

// GenesisState is the full persisted state surface of the module.
type GenesisState struct {
	Params                   Params        `json:"params"`
	Cells                    []GenesisCell `json:"cells"`
	Players                  []Player      `json:"players"`
	TotalContribution        uint64        `json:"total_contribution"`
	AccRewardPerContribution math.Int      `json:"acc_reward_per_contribution"`
	TotalRewardAdded         math.Int      `json:"total_reward_added"`
	TotalRewardClaimed       math.Int      `json:"total_reward_claimed"`
	Editions                 []Edition     `json:"editions"`
	NextEditionId            uint64        `json:"next_edition_id"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:                   DefaultParams(),
		Cells:                    []GenesisCell{},
		Players:                  []Player{},
		TotalContribution:        0,
		AccRewardPerContribution: math.ZeroInt(),
		TotalRewardAdded:         math.ZeroInt(),
		TotalRewardClaimed:       math.ZeroInt(),
		Editions:                 []Edition{},
		NextEditionId:            0,
	}
}
