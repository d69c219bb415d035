package repository

import (
	"context"

	"tokenmeta-proxy/internal/domain/entity"
)

// MetadataProvider defines the interface for an upstream source of token metadata.
type MetadataProvider interface {
	// Name returns the provider label used in logs and metrics.
	Name() string

	// LookupMetadata performs a single lookup. It never returns an error: failures are reported
	// through the lookup outcome.
	LookupMetadata(ctx context.Context, ref entity.TokenRef) entity.MetadataLookup
}
