package geckoterminal

import (
	dto "tokenmeta-proxy/internal/adapter/storage/geckoterminal/dto"
	"tokenmeta-proxy/internal/domain/entity"
)

const (
	twitterProfileBase  = "https://twitter.com/"
	telegramProfileBase = "https://t.me/"
)

// toDomainMetadata converts token-info attributes into the unified metadata shape.
// Socials are emitted in fixed order: twitter, telegram, discord. No usability filter is applied.
func toDomainMetadata(attrs *dto.TokenInfoAttributesRaw) entity.TokenMetadata {
	md := entity.EmptyTokenMetadata()
	if attrs == nil {
		return md
	}

	if nonEmpty(attrs.ImageURL) {
		logo := *attrs.ImageURL
		md.Logo = &logo
	}

	if nonEmpty(attrs.TwitterHandle) {
		md.Socials = append(md.Socials, entity.Social{
			Platform: entity.PlatformTwitter,
			Handle:   *attrs.TwitterHandle,
			URL:      twitterProfileBase + *attrs.TwitterHandle,
		})
	}
	if nonEmpty(attrs.TelegramHandle) {
		md.Socials = append(md.Socials, entity.Social{
			Platform: entity.PlatformTelegram,
			Handle:   *attrs.TelegramHandle,
			URL:      telegramProfileBase + *attrs.TelegramHandle,
		})
	}
	if nonEmpty(attrs.DiscordURL) {
		md.Socials = append(md.Socials, entity.Social{
			Platform: entity.PlatformDiscord,
			Handle:   "",
			URL:      *attrs.DiscordURL,
		})
	}

	md.Websites = make([]entity.Website, 0, len(attrs.Websites))
	for _, site := range attrs.Websites {
		md.Websites = append(md.Websites, entity.Website{URL: site})
	}

	return md
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}
