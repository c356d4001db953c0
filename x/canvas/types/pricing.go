package types

import (
	"cosmossdk.io/math"
)

// RateDenominator is the fixed denominator for the price-increase and reward
// rates (basis points: 500 = 5%).
const RateDenominator = 10_000

// RewardPrecision is the fixed-point scale of the reward-per-contribution
// accumulator.
var RewardPrecision = math.NewIntWithDecimal(1, 18)

// NextPrice returns the price of a cell after one overwrite at the current
// price. The multiplication runs before the division so small rates don't
// truncate to zero; math.Int is 256-bit checked, so the intermediate product
// cannot silently wrap.
func NextPrice(price math.Int, increaseRate uint64) math.Int {
	bump := price.Mul(math.NewIntFromUint64(increaseRate)).Quo(math.NewInt(RateDenominator))
	return price.Add(bump)
}

// RewardCut splits a batch's total price into the pooled reward and the
// reserve forwarded to the edition side.
func RewardCut(totalPrice math.Int, rewardRate uint64) (reward, reserve math.Int) {
	reward = totalPrice.Mul(math.NewIntFromUint64(rewardRate)).Quo(math.NewInt(RateDenominator))
	return reward, totalPrice.Sub(reward)
}
