package keeper_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"pixelchain/x/canvas/keeper"
	"pixelchain/x/canvas/types"
)

func TestQueryParams(t *testing.T) {
	f := initFixture(t)
	qs := keeper.NewQueryServerImpl(f.keeper)

	resp, err := qs.Params(f.ctx, &types.QueryParamsRequest{})
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams(), resp.Params)

	_, err = qs.Params(f.ctx, nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestQueryCell(t *testing.T) {
	f := initFixture(t)
	qs := keeper.NewQueryServerImpl(f.keeper)

	resp, err := qs.Cell(f.ctx, &types.QueryCellRequest{X: 4, Y: 4})
	require.NoError(t, err)
	require.Equal(t, uint32(0), resp.Cell.Owner)
	require.True(t, resp.Cell.Price.Equal(types.DefaultGenesisPrice()))

	_, err = qs.Cell(f.ctx, &types.QueryCellRequest{X: 99, Y: 0})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestQueryCanvasAndSVG(t *testing.T) {
	f := initFixture(t)
	ms := keeper.NewMsgServerImpl(f.keeper)
	qs := keeper.NewQueryServerImpl(f.keeper)

	addr, addrStr := f.newAddr(t, "queryartist")
	f.fund(addr, 10_000_000)
	_, err := ms.UpdatePixels(f.ctx, &types.MsgUpdatePixels{
		Creator:           addrStr,
		Pixels:            []types.PixelUpdate{{X: 2, Y: 7, Color: 0x123456}},
		ExpectedEditionId: 0,
	})
	require.NoError(t, err)

	resp, err := qs.Canvas(f.ctx, &types.QueryCanvasRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Colors, 16)
	require.Equal(t, uint32(0x123456), resp.Colors[7][2])
	require.Equal(t, uint32(1), resp.Owners[7][2])
	require.Equal(t, "1050000", resp.Prices[7][2])
	require.Equal(t, "1000000", resp.Prices[0][0])

	svg, err := qs.CanvasSVG(f.ctx, &types.QueryCanvasSVGRequest{})
	require.NoError(t, err)
	require.Contains(t, svg.Svg, "#123456")

	encoded, err := qs.CanvasSVG(f.ctx, &types.QueryCanvasSVGRequest{Base64: true})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(encoded.Svg, "data:image/svg+xml;base64,"))
}

func TestQueryPlayerAndLedger(t *testing.T) {
	f := initFixture(t)
	ms := keeper.NewMsgServerImpl(f.keeper)
	qs := keeper.NewQueryServerImpl(f.keeper)

	addr, addrStr := f.newAddr(t, "querywallet")
	f.fund(addr, 10_000_000)
	_, err := ms.UpdatePixels(f.ctx, &types.MsgUpdatePixels{
		Creator:           addrStr,
		Pixels:            []types.PixelUpdate{{X: 0, Y: 0, Color: 0x1}, {X: 1, Y: 0, Color: 0x2}},
		ExpectedEditionId: 0,
	})
	require.NoError(t, err)

	player, err := qs.Player(f.ctx, &types.QueryPlayerRequest{Address: addrStr})
	require.NoError(t, err)
	require.Equal(t, uint32(2), player.Player.Contribution)
	require.Equal(t, "200000", player.Claimable)

	_, unknownStr := f.newAddr(t, "queryunknown")
	_, err = qs.Player(f.ctx, &types.QueryPlayerRequest{Address: unknownStr})
	require.Equal(t, codes.NotFound, status.Code(err))

	_, err = qs.Player(f.ctx, &types.QueryPlayerRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	ledger, err := qs.Ledger(f.ctx, &types.QueryLedgerRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(2), ledger.Ledger.TotalContribution)
	require.Equal(t, uint64(2), ledger.Ledger.PlayerCount)
	require.Equal(t, uint64(1), ledger.Ledger.NextEditionId)
	require.Equal(t, "200000", ledger.Ledger.TotalRewardAdded.String())
	require.True(t, ledger.Ledger.TotalRewardClaimed.IsZero())
}

func TestQueryEdition(t *testing.T) {
	f := initFixture(t)
	ms := keeper.NewMsgServerImpl(f.keeper)
	qs := keeper.NewQueryServerImpl(f.keeper)

	addr, addrStr := f.newAddr(t, "editionquery")
	f.fund(addr, 10_000_000)
	_, err := ms.UpdatePixels(f.ctx, &types.MsgUpdatePixels{
		Creator:           addrStr,
		Pixels:            []types.PixelUpdate{{X: 6, Y: 6, Color: 0x654321}},
		ExpectedEditionId: 0,
	})
	require.NoError(t, err)

	resp, err := qs.Edition(f.ctx, &types.QueryEditionRequest{Id: 0})
	require.NoError(t, err)
	require.Equal(t, addrStr, resp.Edition.Owner)
	require.Equal(t, uint32(0x654321), resp.Edition.Colors[6][6])

	_, err = qs.Edition(f.ctx, &types.QueryEditionRequest{Id: 42})
	require.Equal(t, codes.NotFound, status.Code(err))
}
