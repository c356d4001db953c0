package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"pixelchain/x/canvas/render"
	"pixelchain/x/canvas/types"
)

func (q queryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	params, err := q.k.GetParams(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryParamsResponse{Params: params}, nil
}

func (q queryServer) Cell(ctx context.Context, req *types.QueryCellRequest) (*types.QueryCellResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	cell, err := q.k.GetCell(ctx, req.X, req.Y)
	if err != nil {
		if errorsmod.IsOf(err, types.ErrCoordinateOutOfRange) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryCellResponse{Cell: cell}, nil
}

func (q queryServer) Canvas(ctx context.Context, req *types.QueryCanvasRequest) (*types.QueryCanvasResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	colors, err := q.k.ColorGrid(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	owners, err := q.k.OwnerGrid(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	priceGrid, err := q.k.PriceGrid(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	prices := make([][]string, len(priceGrid))
	for y, row := range priceGrid {
		prices[y] = make([]string, len(row))
		for x, p := range row {
			prices[y][x] = p.String()
		}
	}
	return &types.QueryCanvasResponse{Colors: colors, Owners: owners, Prices: prices}, nil
}

func (q queryServer) Player(ctx context.Context, req *types.QueryPlayerRequest) (*types.QueryPlayerResponse, error) {
	if req == nil || req.Address == "" {
		return nil, status.Error(codes.InvalidArgument, "address required")
	}
	player, err := q.k.GetPlayerByAddress(ctx, req.Address)
	if err != nil {
		if errorsmod.IsOf(err, types.ErrNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	claimable, err := q.k.ClaimableReward(ctx, player)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryPlayerResponse{Player: player, Claimable: claimable.String()}, nil
}

func (q queryServer) Ledger(ctx context.Context, req *types.QueryLedgerRequest) (*types.QueryLedgerResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	ledger := types.Ledger{}
	var err error
	if ledger.TotalContribution, err = q.k.getTotalContribution(ctx); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if ledger.AccRewardPerContribution, err = q.k.getIntItem(ctx, q.k.AccRewardPerContribution); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if ledger.TotalRewardAdded, err = q.k.getIntItem(ctx, q.k.TotalRewardAdded); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if ledger.TotalRewardClaimed, err = q.k.getIntItem(ctx, q.k.TotalRewardClaimed); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if ledger.PlayerCount, err = q.k.PlayerCount(ctx); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if ledger.NextEditionId, err = q.k.NextEditionID(ctx); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryLedgerResponse{Ledger: ledger}, nil
}

func (q queryServer) Edition(ctx context.Context, req *types.QueryEditionRequest) (*types.QueryEditionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	edition, err := q.k.GetEdition(ctx, req.Id)
	if err != nil {
		if errorsmod.IsOf(err, types.ErrNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryEditionResponse{Edition: edition}, nil
}

func (q queryServer) CanvasSVG(ctx context.Context, req *types.QueryCanvasSVGRequest) (*types.QueryCanvasSVGResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	colors, err := q.k.ColorGrid(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if req.Base64 {
		return &types.QueryCanvasSVGResponse{Svg: render.SVGBase64(colors)}, nil
	}
	return &types.QueryCanvasSVGResponse{Svg: string(render.SVG(colors))}, nil
}
