package types

import (
	"context"
)

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryCellRequest struct {
	X uint32 `json:"x"`
	Y uint32 `json:"y"`
}

type QueryCellResponse struct {
	Cell Cell `json:"cell"`
}

type QueryCanvasRequest struct{}

// QueryCanvasResponse materializes the three full N x N projections in one
// consistent snapshot. Prices are decimal strings.
type QueryCanvasResponse struct {
	Colors [][]uint32 `json:"colors"`
	Owners [][]uint32 `json:"owners"`
	Prices [][]string `json:"prices"`
}

type QueryPlayerRequest struct {
	Address string `json:"address"`
}

type QueryPlayerResponse struct {
	Player    Player `json:"player"`
	Claimable string `json:"claimable"`
}

type QueryLedgerRequest struct{}

type QueryLedgerResponse struct {
	Ledger Ledger `json:"ledger"`
}

type QueryEditionRequest struct {
	Id uint64 `json:"id"`
}

type QueryEditionResponse struct {
	Edition Edition `json:"edition"`
}

type QueryCanvasSVGRequest struct {
	Base64 bool `json:"base64"`
}

type QueryCanvasSVGResponse struct {
	Svg string `json:"svg"`
}

// QueryServer implements the canvas Query RPCs.
type QueryServer interface {
	Params(ctx context.Context, req *QueryParamsRequest) (*QueryParamsResponse, error)
	Cell(ctx context.Context, req *QueryCellRequest) (*QueryCellResponse, error)
	Canvas(ctx context.Context, req *QueryCanvasRequest) (*QueryCanvasResponse, error)
	Player(ctx context.Context, req *QueryPlayerRequest) (*QueryPlayerResponse, error)
	Ledger(ctx context.Context, req *QueryLedgerRequest) (*QueryLedgerResponse, error)
	Edition(ctx context.Context, req *QueryEditionRequest) (*QueryEditionResponse, error)
	CanvasSVG(ctx context.Context, req *QueryCanvasSVGRequest) (*QueryCanvasSVGResponse, error)
}
