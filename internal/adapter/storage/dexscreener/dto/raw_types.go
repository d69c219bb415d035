package dexscreener_dto

// PairRaw is one element of the token-pairs response as received from DexScreener.
// Only the fields the mapper reads are declared; everything else is ignored.
type PairRaw struct {
	ChainID     string        `json:"chainId"`
	DexID       string        `json:"dexId"`
	PairAddress string        `json:"pairAddress"`
	BaseToken   *TokenRaw     `json:"baseToken,omitempty"`
	Liquidity   *LiquidityRaw `json:"liquidity,omitempty"`
	Info        *InfoRaw      `json:"info,omitempty"`
}

// TokenRaw identifies one side of a pair.
type TokenRaw struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

// LiquidityRaw holds pool liquidity figures.
type LiquidityRaw struct {
	USD float64 `json:"usd"`
}

// InfoRaw is the embedded token profile carried by a pair.
type InfoRaw struct {
	ImageURL  *string      `json:"imageUrl,omitempty"`
	Header    *string      `json:"header,omitempty"`
	OpenGraph *string      `json:"openGraph,omitempty"`
	Websites  []WebsiteRaw `json:"websites,omitempty"`
	Socials   []SocialRaw  `json:"socials,omitempty"`
}

// WebsiteRaw is a labelled project link.
type WebsiteRaw struct {
	Label string `json:"label,omitempty"`
	URL   string `json:"url"`
}

// SocialRaw is a social link. Older payloads use type+url, newer ones platform+handle.
type SocialRaw struct {
	Type     string `json:"type,omitempty"`
	Platform string `json:"platform,omitempty"`
	Handle   string `json:"handle,omitempty"`
	URL      string `json:"url,omitempty"`
}
