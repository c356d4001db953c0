package types

const (
	EventUpdatePixels  = "canvas.update_pixels"
	EventClaimReward   = "canvas.claim_reward"
	EventEditionMinted = "canvas.edition_minted"
	EventPlayerJoined  = "canvas.player_joined"
)

const (
	AttrPlayer     = "player"
	AttrPlayerID   = "player_id"
	AttrPixelCount = "pixel_count"
	AttrTotalPrice = "total_price"
	AttrReward     = "reward"
	AttrReserve    = "reserve"
	AttrAmount     = "amount"
	AttrEditionID  = "edition_id"
)
