package dexscreener

import (
	"net/url"
	"strings"

	dto "tokenmeta-proxy/internal/adapter/storage/dexscreener/dto"
	"tokenmeta-proxy/internal/domain/entity"
)

// hasUsableInfo reports whether a pair's info carries an image URL or at least one social link.
func hasUsableInfo(pair dto.PairRaw) bool {
	if pair.Info == nil {
		return false
	}
	return nonEmpty(pair.Info.ImageURL) || len(pair.Info.Socials) > 0
}

// firstUsablePair returns the first pair satisfying hasUsableInfo, in the order DexScreener listed them.
// This is a first-match search, not a ranking by liquidity or volume.
func firstUsablePair(pairs []dto.PairRaw) (dto.PairRaw, bool) {
	for _, p := range pairs {
		if hasUsableInfo(p) {
			return p, true
		}
	}
	return dto.PairRaw{}, false
}

// toDomainMetadata converts a pair's info block into the unified metadata shape.
func toDomainMetadata(info *dto.InfoRaw) entity.TokenMetadata {
	md := entity.EmptyTokenMetadata()
	if info == nil {
		return md
	}

	if nonEmpty(info.ImageURL) {
		logo := *info.ImageURL
		md.Logo = &logo
	}

	md.Websites = make([]entity.Website, 0, len(info.Websites))
	for _, w := range info.Websites {
		md.Websites = append(md.Websites, entity.Website{URL: w.URL})
	}

	md.Socials = make([]entity.Social, 0, len(info.Socials))
	for _, s := range info.Socials {
		md.Socials = append(md.Socials, toDomainSocial(s))
	}

	return md
}

func toDomainSocial(raw dto.SocialRaw) entity.Social {
	platform := raw.Platform
	subType := ""
	if platform == "" {
		platform = raw.Type
	} else if raw.Type != "" && !strings.EqualFold(raw.Type, raw.Platform) {
		subType = raw.Type
	}

	handle := raw.Handle
	if handle == "" {
		handle = handleFromURL(raw.URL)
	}

	return entity.Social{
		Platform: entity.SocialPlatform(strings.ToLower(platform)),
		Type:     subType,
		Handle:   strings.TrimPrefix(handle, "@"),
		URL:      raw.URL,
	}
}

// handleFromURL takes the last non-empty path segment, e.g. https://x.com/foo -> foo.
func handleFromURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return ""
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}
