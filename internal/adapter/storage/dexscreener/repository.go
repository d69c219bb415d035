package dexscreener

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"tokenmeta-proxy/internal/adapter/storage/upstream"
	dto "tokenmeta-proxy/internal/adapter/storage/dexscreener/dto"
	"tokenmeta-proxy/internal/config"
	"tokenmeta-proxy/internal/domain/entity"
	domainRepo "tokenmeta-proxy/internal/domain/repository"
	"tokenmeta-proxy/internal/pkg/apperrors"

	"go.uber.org/zap"
)

// ProviderName labels DexScreener in logs and metrics.
const ProviderName = "dexscreener"

// Compile-time check
var _ domainRepo.MetadataProvider = (*Repository)(nil)

// Repository looks up token metadata embedded in DexScreener trading pairs.
type Repository struct {
	client *upstream.Client
	logger *zap.Logger
}

// NewRepository creates a new DexScreener repository instance.
func NewRepository(cfg config.ProvidersConfig, logger *zap.Logger) *Repository {
	named := logger.Named("DexScreenerStorage")
	return &Repository{
		client: upstream.NewClient(cfg.DexScreener, cfg.GetRequestTimeout(), named),
		logger: named,
	}
}

// Name returns the provider label.
func (r *Repository) Name() string {
	return ProviderName
}

// LookupMetadata fetches the pairs for ref and takes metadata from the first pair with usable info.
func (r *Repository) LookupMetadata(ctx context.Context, ref entity.TokenRef) entity.MetadataLookup {
	path := fmt.Sprintf("/token-pairs/v1/%s/%s", url.PathEscape(ref.Chain.String()), url.PathEscape(ref.Address))

	body, err := r.client.GetJSON(ctx, path, nil)
	if err != nil {
		r.logger.Warn("DexScreener lookup failed",
			zap.String("chain", ref.Chain.String()),
			zap.String("address", ref.Address),
			zap.Error(err),
		)
		return entity.LookupFailedFrom(ProviderName, err)
	}

	var pairs []dto.PairRaw
	if err := json.Unmarshal(body, &pairs); err != nil {
		r.logger.Warn("Failed to unmarshal DexScreener pairs",
			zap.String("chain", ref.Chain.String()),
			zap.String("address", ref.Address),
			zap.ByteString("bodySample", body[:min(512, len(body))]),
			zap.Error(err),
		)
		return entity.LookupFailedFrom(ProviderName,
			fmt.Errorf("%w: dexscreener pairs payload is not a list: %v", apperrors.ErrInvalidInput, err),
		)
	}

	pair, ok := firstUsablePair(pairs)
	if !ok {
		r.logger.Debug("No DexScreener pair with usable info",
			zap.String("chain", ref.Chain.String()),
			zap.String("address", ref.Address),
			zap.Int("pairCount", len(pairs)),
		)
		return entity.LookupMissFrom(ProviderName)
	}

	md := toDomainMetadata(pair.Info)
	if !md.IsUsable() {
		return entity.LookupMissFrom(ProviderName)
	}

	r.logger.Debug("DexScreener metadata found",
		zap.String("chain", ref.Chain.String()),
		zap.String("address", ref.Address),
		zap.String("pairAddress", pair.PairAddress),
	)
	return entity.LookupHitFrom(ProviderName, md)
}
