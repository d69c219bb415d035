package port

import (
	"context"

	"tokenmeta-proxy/internal/domain/entity"
)

// MetadataService defines the interface for resolving token metadata across upstream providers.
type MetadataService interface {
	// ResolveTokenMetadata returns the best available metadata for ref. It never fails:
	// when no provider answers, the empty metadata value is returned.
	ResolveTokenMetadata(ctx context.Context, ref entity.TokenRef) entity.TokenMetadata
}
