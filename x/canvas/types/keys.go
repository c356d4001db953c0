package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name. The module account under this name
	// holds the shared reward pool.
	ModuleName = "canvas"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for the module
	RouterKey = ModuleName

	// ReserveName is the module account that holds the reserve portion of
	// every payment on behalf of the edition-issuance side.
	ReserveName = "canvas_reserve"

	// SinkName is the module account backing player id 0, the payment sink
	// that owns every cell nobody has written yet.
	SinkName = "canvas_sink"

	// EditionClassId is the nft class all canvas edition snapshots are minted under.
	EditionClassId = "canvas-editions"

	// GovModuleName duplicates the gov module's name to avoid a dependency with x/gov.
	GovModuleName = "gov"
)

var (
	ParamsKey                   = collections.NewPrefix("canvas_params")
	CellKeyPrefix               = collections.NewPrefix("canvas_cells")
	PlayerKeyPrefix             = collections.NewPrefix("canvas_players")
	PlayerIdKeyPrefix           = collections.NewPrefix("canvas_player_ids")
	PlayerCounterKey            = collections.NewPrefix("canvas_player_counter")
	TotalContributionKey        = collections.NewPrefix("canvas_total_contribution")
	AccRewardPerContributionKey = collections.NewPrefix("canvas_acc_reward")
	TotalRewardAddedKey         = collections.NewPrefix("canvas_reward_added")
	TotalRewardClaimedKey       = collections.NewPrefix("canvas_reward_claimed")
	EditionCounterKey           = collections.NewPrefix("canvas_edition_counter")
	EditionKeyPrefix            = collections.NewPrefix("canvas_editions")
)
