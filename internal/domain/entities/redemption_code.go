package entities

import "time"

// CodeIssuer tags every code minted by this storefront so the bot side can
// tell purchases apart from admin-granted codes.
const CodeIssuer = "JOJO_VENDAS"

// CodeValidity is the redemption window granted at mint time.
const CodeValidity = 30 * 24 * time.Hour

// RedemptionCode is a Purple Coins voucher persisted in DynamoDB and
// consumed by the external Discord bot.
//
// Storage model (DynamoDB):
//   - PK: code
//
// UsedByDiscordID and UsedAt are owned and written exclusively by the bot;
// this service only ever creates code rows, it never updates or deletes them.

type RedemptionCode struct {
	Code             string     `json:"code"`
	PurpleCoinsValue int        `json:"purple_coins_value"`
	CreatedBy        string     `json:"created_by"`
	Description      string     `json:"description,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	ExpiresAt        time.Time  `json:"expires_at"`
	UsedByDiscordID  string     `json:"used_by_discord_id,omitempty"`
	UsedAt           *time.Time `json:"used_at,omitempty"`
}
