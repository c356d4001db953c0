package cli

import (
	"encoding/json"
	"os"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cobra"

	"pixelchain/x/canvas/render"
	"pixelchain/x/canvas/types"
)

func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the canvas module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(getParamsCmd())
	cmd.AddCommand(getRenderCmd())
	return cmd
}

func getParamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Shows the parameters of the module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(types.ParamsKey.Bytes(), types.StoreKey)
			if err != nil || len(bz) == 0 {
				// If unset or unavailable, fall back to defaults.
				out, _ := json.Marshal(types.DefaultParams())
				return clientCtx.PrintString(string(out) + "\n")
			}

			// Stored as JSON (collections codec).
			var p types.Params
			if err := json.Unmarshal(bz, &p); err != nil {
				return clientCtx.PrintString(string(bz) + "\n")
			}
			out, _ := json.Marshal(p)
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func getRenderCmd() *cobra.Command {
	var asBase64 bool

	cmd := &cobra.Command{
		Use:   "render [color-grid.json]",
		Short: "Render a color grid file (JSON [][]uint32) as SVG markup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var colors [][]uint32
			if err := json.Unmarshal(bz, &colors); err != nil {
				return err
			}
			if asBase64 {
				cmd.Println(render.SVGBase64(colors))
				return nil
			}
			cmd.Println(string(render.SVG(colors)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asBase64, "base64", false, "emit a base64 data URI instead of raw markup")
	return cmd
}
