package types

import (
	"fmt"

	"cosmossdk.io/math"
	paramstypes "github.com/cosmos/cosmos-sdk/x/params/types"
)

// Parameter keys
var (
	KeyDenom             = []byte("Denom")
	KeyCanvasSize        = []byte("CanvasSize")
	KeyGenesisPrice      = []byte("GenesisPrice")
	KeyPriceIncreaseRate = []byte("PriceIncreaseRate")
	KeyRewardRate        = []byte("RewardRate")
)

// ParamKeyTable returns the parameter key table.
func ParamKeyTable() paramstypes.KeyTable {
	return paramstypes.NewKeyTable().RegisterParamSet(&Params{})
}

// ParamSetPairs implements params.ParamSet.
func (p *Params) ParamSetPairs() paramstypes.ParamSetPairs {
	return paramstypes.ParamSetPairs{
		paramstypes.NewParamSetPair(KeyDenom, &p.Denom, validateDenomParam),
		paramstypes.NewParamSetPair(KeyCanvasSize, &p.CanvasSize, validateCanvasSize),
		paramstypes.NewParamSetPair(KeyGenesisPrice, &p.GenesisPrice, validatePositiveInt("genesis_price")),
		paramstypes.NewParamSetPair(KeyPriceIncreaseRate, &p.PriceIncreaseRate, validateRate("price_increase_rate")),
		paramstypes.NewParamSetPair(KeyRewardRate, &p.RewardRate, validateRate("reward_rate")),
	}
}

func validateDenomParam(i interface{}) error {
	v, ok := i.(string)
	if !ok {
		return fmt.Errorf("invalid parameter type for denom")
	}
	if v == "" {
		return fmt.Errorf("denom cannot be empty")
	}
	return nil
}

func validateCanvasSize(i interface{}) error {
	v, ok := i.(uint32)
	if !ok {
		return fmt.Errorf("invalid parameter type for canvas_size")
	}
	if v == 0 || v > 256 {
		return fmt.Errorf("canvas_size must be between 1 and 256")
	}
	return nil
}

func validatePositiveInt(name string) paramstypes.ValueValidatorFn {
	return func(i interface{}) error {
		v, ok := i.(math.Int)
		if !ok {
			return fmt.Errorf("invalid parameter type for %s", name)
		}
		if v.IsNil() || !v.IsPositive() {
			return fmt.Errorf("%s must be positive", name)
		}
		return nil
	}
}

func validateRate(name string) paramstypes.ValueValidatorFn {
	return func(i interface{}) error {
		v, ok := i.(uint64)
		if !ok {
			return fmt.Errorf("invalid parameter type for %s", name)
		}
		if v == 0 || v > RateDenominator {
			return fmt.Errorf("%s must be within (0, %d]", name, RateDenominator)
		}
		return nil
	}
}
