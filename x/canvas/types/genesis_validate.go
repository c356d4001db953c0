package types

import (
	"fmt"
)

func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	size := gs.Params.CanvasSize
	for _, gc := range gs.Cells {
		if gc.X >= size || gc.Y >= size {
			return fmt.Errorf("cell (%d,%d) outside the %dx%d canvas", gc.X, gc.Y, size, size)
		}
		if gc.Cell.Color > MaxColor {
			return fmt.Errorf("cell (%d,%d) color %#x outside the 24-bit range", gc.X, gc.Y, gc.Cell.Color)
		}
		if gc.Cell.Price.IsNil() || gc.Cell.Price.LT(gs.Params.GenesisPrice) {
			return fmt.Errorf("cell (%d,%d) price below the genesis price", gc.X, gc.Y)
		}
	}

	// Player ids must be dense: exactly 0..count-1, with the sink at id 0.
	seen := make(map[uint32]bool, len(gs.Players))
	var total uint64
	for _, p := range gs.Players {
		if p.Id >= uint32(len(gs.Players)) || seen[p.Id] {
			return fmt.Errorf("player id %d is not dense", p.Id)
		}
		seen[p.Id] = true
		if p.Address == "" {
			return fmt.Errorf("player %d has an empty address", p.Id)
		}
		if p.RewardDebt.IsNil() || p.RewardClaimed.IsNil() {
			return fmt.Errorf("player %d has unset reward fields", p.Id)
		}
		total += uint64(p.Contribution)
	}
	if len(gs.Players) > 0 && !seen[0] {
		return fmt.Errorf("player id 0 (payment sink) is missing")
	}
	if total != gs.TotalContribution {
		return fmt.Errorf("total contribution %d does not match the player sum %d", gs.TotalContribution, total)
	}

	if gs.AccRewardPerContribution.IsNil() || gs.AccRewardPerContribution.IsNegative() {
		return fmt.Errorf("acc_reward_per_contribution must be non-negative")
	}
	if gs.TotalRewardAdded.IsNil() || gs.TotalRewardClaimed.IsNil() {
		return fmt.Errorf("reward totals must be set")
	}

	if uint64(len(gs.Editions)) > gs.NextEditionId {
		return fmt.Errorf("more editions than the edition counter allows")
	}
	for _, e := range gs.Editions {
		if e.Id >= gs.NextEditionId {
			return fmt.Errorf("edition id %d beyond the edition counter", e.Id)
		}
	}
	return nil
}
