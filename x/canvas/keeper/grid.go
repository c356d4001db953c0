package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"pixelchain/x/canvas/types"
)

// GetCell returns the cell at (x, y). A cell that was never written reads as
// unowned at the genesis price, so the full grid is defined from block one.
func (k Keeper) GetCell(ctx context.Context, x, y uint32) (types.Cell, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return types.Cell{}, err
	}
	if x >= params.CanvasSize || y >= params.CanvasSize {
		return types.Cell{}, errorsmod.Wrapf(types.ErrCoordinateOutOfRange, "(%d,%d) on a %dx%d canvas", x, y, params.CanvasSize, params.CanvasSize)
	}

	cell, err := k.Cells.Get(ctx, collections.Join(x, y))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Cell{Color: 0, Owner: 0, Price: params.GenesisPrice}, nil
		}
		return types.Cell{}, err
	}
	return cell, nil
}

// SetCell overwrites the cell at (x, y). No side effects beyond the one cell.
func (k Keeper) SetCell(ctx context.Context, x, y uint32, cell types.Cell) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if x >= params.CanvasSize || y >= params.CanvasSize {
		return errorsmod.Wrapf(types.ErrCoordinateOutOfRange, "(%d,%d) on a %dx%d canvas", x, y, params.CanvasSize, params.CanvasSize)
	}
	return k.Cells.Set(ctx, collections.Join(x, y), cell)
}

// ColorGrid materializes the full row-major color projection (grid[y][x]).
func (k Keeper) ColorGrid(ctx context.Context) ([][]uint32, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	n := params.CanvasSize
	grid := make([][]uint32, n)
	for y := uint32(0); y < n; y++ {
		grid[y] = make([]uint32, n)
		for x := uint32(0); x < n; x++ {
			cell, err := k.GetCell(ctx, x, y)
			if err != nil {
				return nil, err
			}
			grid[y][x] = cell.Color
		}
	}
	return grid, nil
}

// OwnerGrid materializes the full row-major owner-id projection.
func (k Keeper) OwnerGrid(ctx context.Context) ([][]uint32, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	n := params.CanvasSize
	grid := make([][]uint32, n)
	for y := uint32(0); y < n; y++ {
		grid[y] = make([]uint32, n)
		for x := uint32(0); x < n; x++ {
			cell, err := k.GetCell(ctx, x, y)
			if err != nil {
				return nil, err
			}
			grid[y][x] = cell.Owner
		}
	}
	return grid, nil
}

// PriceGrid materializes the full row-major price projection.
func (k Keeper) PriceGrid(ctx context.Context) ([][]math.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	n := params.CanvasSize
	grid := make([][]math.Int, n)
	for y := uint32(0); y < n; y++ {
		grid[y] = make([]math.Int, n)
		for x := uint32(0); x < n; x++ {
			cell, err := k.GetCell(ctx, x, y)
			if err != nil {
				return nil, err
			}
			grid[y][x] = cell.Price
		}
	}
	return grid, nil
}
