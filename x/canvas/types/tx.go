package types

import (
	"context"
	"fmt"
)

// MsgUpdatePixels is the only mutating entry point of the canvas ledger: a
// batch of cell writes fenced by the caller's expected next edition id.
type MsgUpdatePixels struct {
	Creator           string        `json:"creator"`
	Pixels            []PixelUpdate `json:"pixels"`
	ExpectedEditionId uint64        `json:"expected_edition_id"`
}

type MsgUpdatePixelsResponse struct {
	PixelCount uint32 `json:"pixel_count"`
	TotalPrice string `json:"total_price"`
	Reward     string `json:"reward"`
	EditionId  uint64 `json:"edition_id"`
}

// MsgClaimReward withdraws the caller's entire claimable reward balance.
type MsgClaimReward struct {
	Creator string `json:"creator"`
}

type MsgClaimRewardResponse struct {
	Amount string `json:"amount"`
}

// MsgUpdateParams is an authority-gated params update.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

// MsgServer implements the canvas Msg RPCs.
type MsgServer interface {
	UpdatePixels(ctx context.Context, msg *MsgUpdatePixels) (*MsgUpdatePixelsResponse, error)
	ClaimReward(ctx context.Context, msg *MsgClaimReward) (*MsgClaimRewardResponse, error)
	UpdateParams(ctx context.Context, msg *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// Hand-written proto shims so the messages satisfy sdk.Msg until the service
// descriptors are generated.

func (m *MsgUpdatePixels) Reset()         { *m = MsgUpdatePixels{} }
func (m *MsgUpdatePixels) String() string { return fmt.Sprintf("%+v", *m) }
func (m *MsgUpdatePixels) ProtoMessage()  {}

func (m *MsgClaimReward) Reset()         { *m = MsgClaimReward{} }
func (m *MsgClaimReward) String() string { return fmt.Sprintf("%+v", *m) }
func (m *MsgClaimReward) ProtoMessage()  {}

func (m *MsgUpdateParams) Reset()         { *m = MsgUpdateParams{} }
func (m *MsgUpdateParams) String() string { return fmt.Sprintf("%+v", *m) }
func (m *MsgUpdateParams) ProtoMessage()  {}
