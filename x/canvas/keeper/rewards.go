package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"pixelchain/x/canvas/types"
)

// ClaimableReward answers "what can this player withdraw now" in O(1):
// acc * contribution / 1e18 - rewardDebt.
func (k Keeper) ClaimableReward(ctx context.Context, player types.Player) (math.Int, error) {
	acc, err := k.getIntItem(ctx, k.AccRewardPerContribution)
	if err != nil {
		return math.Int{}, err
	}
	return accruedReward(acc, player.Contribution).Sub(player.RewardDebt), nil
}

// addPlayerReward applies one batch's contribution delta and pooled reward in
// O(1) regardless of how many players exist. The ordering is load-bearing:
//  1. snapshot the player's pending reward under the old accumulator,
//  2. bump the player's contribution and the global total,
//  3. recompute rewardDebt so the pending amount survives the bump,
//  4. fold the new reward into the accumulator at the new total.
// The acting player therefore starts accruing from this very reward at their
// new contribution weight; see the ledger tests for the pinned arithmetic.
func (k Keeper) addPlayerReward(ctx context.Context, player *types.Player, contribution uint32, reward math.Int) error {
	pending, err := k.ClaimableReward(ctx, *player)
	if err != nil {
		return err
	}

	if uint64(player.Contribution)+uint64(contribution) > types.MaxPlayerId {
		return errorsmod.Wrap(types.ErrCapacityExceeded, "contribution counter would overflow 32 bits")
	}
	player.Contribution += contribution

	total, err := k.getTotalContribution(ctx)
	if err != nil {
		return err
	}
	total += uint64(contribution)
	if err := k.TotalContribution.Set(ctx, total); err != nil {
		return err
	}

	acc, err := k.getIntItem(ctx, k.AccRewardPerContribution)
	if err != nil {
		return err
	}
	player.RewardDebt = accruedReward(acc, player.Contribution).Sub(pending)
	if err := k.setPlayer(ctx, *player); err != nil {
		return err
	}

	if reward.IsPositive() {
		// total > 0 here: the contribution bump above ran first.
		acc = acc.Add(reward.Mul(types.RewardPrecision).Quo(math.NewIntFromUint64(total)))
		if err := k.AccRewardPerContribution.Set(ctx, acc); err != nil {
			return err
		}

		added, err := k.getIntItem(ctx, k.TotalRewardAdded)
		if err != nil {
			return err
		}
		if err := k.TotalRewardAdded.Set(ctx, added.Add(reward)); err != nil {
			return err
		}
	}
	return nil
}

// settleClaim zeroes the player's claimable balance and records the
// withdrawal. The caller is responsible for the actual token transfer; a
// transfer failure aborts the tx and reverts this mutation with it.
func (k Keeper) settleClaim(ctx context.Context, player *types.Player) (math.Int, error) {
	amount, err := k.ClaimableReward(ctx, *player)
	if err != nil {
		return math.Int{}, err
	}
	if !amount.IsPositive() {
		return math.Int{}, types.ErrNothingToClaim
	}

	acc, err := k.getIntItem(ctx, k.AccRewardPerContribution)
	if err != nil {
		return math.Int{}, err
	}
	player.RewardClaimed = player.RewardClaimed.Add(amount)
	player.RewardDebt = accruedReward(acc, player.Contribution)
	if err := k.setPlayer(ctx, *player); err != nil {
		return math.Int{}, err
	}

	claimed, err := k.getIntItem(ctx, k.TotalRewardClaimed)
	if err != nil {
		return math.Int{}, err
	}
	if err := k.TotalRewardClaimed.Set(ctx, claimed.Add(amount)); err != nil {
		return math.Int{}, err
	}
	return amount, nil
}

func accruedReward(acc math.Int, contribution uint32) math.Int {
	return acc.Mul(math.NewIntFromUint64(uint64(contribution))).Quo(types.RewardPrecision)
}
