package geckoterminal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	dto "tokenmeta-proxy/internal/adapter/storage/geckoterminal/dto"
	"tokenmeta-proxy/internal/adapter/storage/upstream"
	"tokenmeta-proxy/internal/config"
	"tokenmeta-proxy/internal/domain/entity"
	domainRepo "tokenmeta-proxy/internal/domain/repository"
	"tokenmeta-proxy/internal/domain/service"
	"tokenmeta-proxy/internal/pkg/apperrors"

	"go.uber.org/zap"
)

// ProviderName labels GeckoTerminal in logs and metrics.
const ProviderName = "geckoterminal"

// apiVersionAccept pins the GeckoTerminal response schema.
const apiVersionAccept = "application/json;version=20230302"

// Compile-time check
var _ domainRepo.MetadataProvider = (*Repository)(nil)

// Repository looks up token metadata from GeckoTerminal's token-info endpoint.
type Repository struct {
	client   *upstream.Client
	networks service.ChainSlugTable
	logger   *zap.Logger
}

// NewRepository creates a new GeckoTerminal repository instance.
func NewRepository(cfg config.ProvidersConfig, logger *zap.Logger) *Repository {
	named := logger.Named("GeckoTerminalStorage")
	return &Repository{
		client:   upstream.NewClient(cfg.GeckoTerminal, cfg.GetRequestTimeout(), named),
		networks: service.GeckoTerminalNetworks,
		logger:   named,
	}
}

// Name returns the provider label.
func (r *Repository) Name() string {
	return ProviderName
}

// LookupMetadata normalizes the chain to a GeckoTerminal network and fetches the token profile.
// A successful response is a hit even when it carries no logo and no socials.
func (r *Repository) LookupMetadata(ctx context.Context, ref entity.TokenRef) entity.MetadataLookup {
	network := r.networks.Normalize(ref.Chain)
	path := fmt.Sprintf("/api/v2/networks/%s/tokens/%s/info", url.PathEscape(network), url.PathEscape(ref.Address))

	body, err := r.client.GetJSON(ctx, path, map[string]string{"Accept": apiVersionAccept})
	if err != nil {
		r.logger.Warn("GeckoTerminal lookup failed",
			zap.String("network", network),
			zap.String("address", ref.Address),
			zap.Error(err),
		)
		return entity.LookupFailedFrom(ProviderName, err)
	}

	var raw dto.TokenInfoResponseRaw
	if err := json.Unmarshal(body, &raw); err != nil {
		r.logger.Warn("Failed to unmarshal GeckoTerminal token info",
			zap.String("network", network),
			zap.String("address", ref.Address),
			zap.ByteString("bodySample", body[:min(512, len(body))]),
			zap.Error(err),
		)
		return entity.LookupFailedFrom(ProviderName,
			fmt.Errorf("%w: geckoterminal token info payload: %v", apperrors.ErrInvalidInput, err),
		)
	}

	if raw.Data == nil || raw.Data.Attributes == nil {
		r.logger.Debug("GeckoTerminal response has no attributes",
			zap.String("network", network),
			zap.String("address", ref.Address),
		)
		return entity.LookupMissFrom(ProviderName)
	}

	md := toDomainMetadata(raw.Data.Attributes)
	r.logger.Debug("GeckoTerminal metadata found",
		zap.String("network", network),
		zap.String("address", ref.Address),
		zap.Bool("usable", md.IsUsable()),
	)
	return entity.LookupHitFrom(ProviderName, md)
}
