package types

import (
	"cosmossdk.io/math"
)

// MaxColor is the largest 24-bit RGB value a cell can hold.
const MaxColor = 0xFFFFFF

// MaxPlayerId bounds the dense player id space to 32 bits.
const MaxPlayerId = 1<<32 - 1

// Cell is one addressable canvas position.
// Note: cells are stored as JSON bytes because Cell is not a protobuf message
// and we're implementing this without modifying the proto files.
type Cell struct {
	Color uint32   `json:"color"`
	Owner uint32   `json:"owner"`
	Price math.Int `json:"price"`
}

// Player is the per-wallet ledger record. Ids are dense and assigned in
// first-write order; id 0 is reserved for the payment sink.
type Player struct {
	Id            uint32   `json:"id"`
	Address       string   `json:"address"`
	Contribution  uint32   `json:"contribution"`
	RewardDebt    math.Int `json:"reward_debt"`
	RewardClaimed math.Int `json:"reward_claimed"`
}

// NewPlayer returns a zeroed player record for the given id and wallet.
func NewPlayer(id uint32, address string) Player {
	return Player{
		Id:            id,
		Address:       address,
		Contribution:  0,
		RewardDebt:    math.ZeroInt(),
		RewardClaimed: math.ZeroInt(),
	}
}

// PixelUpdate is a single cell write inside an update batch.
type PixelUpdate struct {
	X     uint32 `json:"x"`
	Y     uint32 `json:"y"`
	Color uint32 `json:"color"`
}

// Edition is an immutable historical snapshot of the full canvas, recorded
// each time an update batch succeeds.
type Edition struct {
	Id         uint64     `json:"id"`
	Owner      string     `json:"owner"`
	PixelCount uint32     `json:"pixel_count"`
	Value      math.Int   `json:"value"`
	Colors     [][]uint32 `json:"colors"`
	CreatedAt  int64      `json:"created_at"`
}

// Ledger is the read-only projection of the global reward accounting scalars.
type Ledger struct {
	TotalContribution        uint64   `json:"total_contribution"`
	AccRewardPerContribution math.Int `json:"acc_reward_per_contribution"`
	TotalRewardAdded         math.Int `json:"total_reward_added"`
	TotalRewardClaimed       math.Int `json:"total_reward_claimed"`
	PlayerCount              uint64   `json:"player_count"`
	NextEditionId            uint64   `json:"next_edition_id"`
}
