package geckoterminal_dto

// TokenInfoResponseRaw is the envelope of the GeckoTerminal token-info endpoint.
type TokenInfoResponseRaw struct {
	Data *TokenInfoDataRaw `json:"data"`
}

// TokenInfoDataRaw is the JSON:API resource object.
type TokenInfoDataRaw struct {
	ID         string                  `json:"id"`
	Type       string                  `json:"type"`
	Attributes *TokenInfoAttributesRaw `json:"attributes"`
}

// TokenInfoAttributesRaw holds the token profile. Every field may be absent or null.
type TokenInfoAttributesRaw struct {
	Address        string   `json:"address"`
	Name           string   `json:"name"`
	Symbol         string   `json:"symbol"`
	ImageURL       *string  `json:"image_url"`
	Description    *string  `json:"description"`
	Websites       []string `json:"websites"`
	TwitterHandle  *string  `json:"twitter_handle"`
	TelegramHandle *string  `json:"telegram_handle"`
	DiscordURL     *string  `json:"discord_url"`
	GTScore        *float64 `json:"gt_score"`
}
