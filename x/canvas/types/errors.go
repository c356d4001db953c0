package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	ErrInvalidRequest       = errorsmod.Register(ModuleName, 1, "invalid request")
	ErrNotFound             = errorsmod.Register(ModuleName, 2, "not found")
	ErrTooManyPixels        = errorsmod.Register(ModuleName, 3, "too many pixel updates in one batch")
	ErrCoordinateOutOfRange = errorsmod.Register(ModuleName, 4, "coordinate outside the canvas")
	ErrInvalidColor         = errorsmod.Register(ModuleName, 5, "color outside the 24-bit range")
	ErrEditionMismatch      = errorsmod.Register(ModuleName, 6, "expected edition id does not match the next edition")
	ErrCapacityExceeded     = errorsmod.Register(ModuleName, 7, "player id or contribution counter capacity exceeded")
	ErrNothingToClaim       = errorsmod.Register(ModuleName, 8, "nothing to claim")
	ErrInsufficientFund     = errorsmod.Register(ModuleName, 9, "insufficient funds")
	ErrRewardTransfer       = errorsmod.Register(ModuleName, 10, "reward transfer failed")
	ErrReserveTransfer      = errorsmod.Register(ModuleName, 11, "reserve transfer failed")
	ErrInvalidSigner        = errorsmod.Register(ModuleName, 12, "expected gov account as only signer for proposal message")
)
