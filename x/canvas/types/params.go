package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params holds configurable parameters for the canvas module.
type Params struct {
	Denom             string   `json:"denom"`               // payment token denom
	CanvasSize        uint32   `json:"canvas_size"`         // N for the N x N grid
	GenesisPrice      math.Int `json:"genesis_price"`       // starting price of every cell
	PriceIncreaseRate uint64   `json:"price_increase_rate"` // per-overwrite bump, over RateDenominator
	RewardRate        uint64   `json:"reward_rate"`         // pooled share of each payment, over RateDenominator
}

// Default parameter values: 16x16 grid, 1.0 token genesis price, 5% price
// bump per overwrite, 10% of every payment pooled.
const (
	DefaultDenom                    = "upixel"
	DefaultCanvasSize        uint32 = 16
	DefaultPriceIncreaseRate uint64 = 500
	DefaultRewardRate        uint64 = 1_000
)

// DefaultGenesisPrice returns the default starting cell price (1_000_000upixel).
func DefaultGenesisPrice() math.Int { return math.NewInt(1_000_000) }

// DefaultParams returns default module parameters.
func DefaultParams() Params {
	return Params{
		Denom:             DefaultDenom,
		CanvasSize:        DefaultCanvasSize,
		GenesisPrice:      DefaultGenesisPrice(),
		PriceIncreaseRate: DefaultPriceIncreaseRate,
		RewardRate:        DefaultRewardRate,
	}
}

// MaxPixelsPerUpdate returns the batch size cap, the full canvas.
func (p Params) MaxPixelsPerUpdate() int {
	return int(p.CanvasSize) * int(p.CanvasSize)
}

// Validate performs basic validation of module parameters. The canvas size
// cap keeps batch totals and grid projections bounded.
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.Denom); err != nil {
		return fmt.Errorf("invalid denom: %w", err)
	}
	if p.CanvasSize == 0 || p.CanvasSize > 256 {
		return fmt.Errorf("canvas_size must be between 1 and 256")
	}
	if p.GenesisPrice.IsNil() || !p.GenesisPrice.IsPositive() {
		return fmt.Errorf("genesis_price must be positive")
	}
	if p.PriceIncreaseRate == 0 || p.PriceIncreaseRate > RateDenominator {
		return fmt.Errorf("price_increase_rate must be within (0, %d]", RateDenominator)
	}
	if p.RewardRate == 0 || p.RewardRate > RateDenominator {
		return fmt.Errorf("reward_rate must be within (0, %d]", RateDenominator)
	}
	return nil
}
