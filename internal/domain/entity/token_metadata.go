package entity

// SocialPlatform tags the network a social link points to.
type SocialPlatform string

// Constants for the platforms providers report explicitly.
const (
	PlatformTwitter  SocialPlatform = "twitter"
	PlatformTelegram SocialPlatform = "telegram"
	PlatformDiscord  SocialPlatform = "discord"
)

// TokenMetadata is the unified, provider-independent description of a token.
type TokenMetadata struct {
	Logo     *string   `json:"logo"`
	Websites []Website `json:"websites"`
	Socials  []Social  `json:"socials"`
}

// Website is a single project website. Duplicates are kept as reported.
type Website struct {
	URL string `json:"url"`
}

// Social is a link to a token's presence on a social platform.
type Social struct {
	Platform SocialPlatform `json:"platform"`
	Type     string         `json:"type,omitempty"`
	Handle   string         `json:"handle"`
	URL      string         `json:"url"`
}

// EmptyTokenMetadata returns the terminal "nothing found" value: null logo and empty, non-nil lists.
func EmptyTokenMetadata() TokenMetadata {
	return TokenMetadata{
		Logo:     nil,
		Websites: []Website{},
		Socials:  []Social{},
	}
}

// IsUsable reports whether the metadata carries a logo or at least one social link.
func (m TokenMetadata) IsUsable() bool {
	return (m.Logo != nil && *m.Logo != "") || len(m.Socials) > 0
}

// IsEmpty reports whether the metadata carries nothing at all.
func (m TokenMetadata) IsEmpty() bool {
	return (m.Logo == nil || *m.Logo == "") && len(m.Websites) == 0 && len(m.Socials) == 0
}

// Normalized returns a copy whose nil lists are replaced by empty ones so that it serializes as [] not null.
func (m TokenMetadata) Normalized() TokenMetadata {
	if m.Websites == nil {
		m.Websites = []Website{}
	}
	if m.Socials == nil {
		m.Socials = []Social{}
	}
	return m
}
