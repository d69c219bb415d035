package http

import (
	"encoding/json"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"tokenmeta-proxy/internal/application/port"
	"tokenmeta-proxy/internal/config"
	"tokenmeta-proxy/internal/domain/entity"
	domainRepo "tokenmeta-proxy/internal/domain/repository"
	"tokenmeta-proxy/internal/observability"
)

const (
	contentTypeJSON  = "application/json"
	headerCacheState = "X-Cache"

	missingParamsMessage = "Missing chain or address"
)

type errorResponse struct {
	Error string `json:"error"`
}

// TokenMetadataHandler serves resolved token metadata over HTTP.
type TokenMetadataHandler struct {
	service      port.MetadataService
	cacheRepo    domainRepo.CacheRepository
	cacheTTL     time.Duration
	cacheControl string
	metrics      *observability.Metrics
	logger       *zap.Logger
}

// NewTokenMetadataHandler creates the handler. cacheRepo may be nil, and it is ignored when caching is disabled.
// Empty results are never cached.
func NewTokenMetadataHandler(
	svc port.MetadataService,
	cacheRepo domainRepo.CacheRepository,
	cfg config.Config,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *TokenMetadataHandler {
	if !cfg.Cache.Enabled {
		cacheRepo = nil
	}
	return &TokenMetadataHandler{
		service:      svc,
		cacheRepo:    cacheRepo,
		cacheTTL:     cfg.Cache.GetDefaultExpiration(),
		cacheControl: cfg.Server.CacheControl,
		metrics:      metrics,
		logger:       logger.Named("TokenMetadataHandler"),
	}
}

// GetTokenMetadata handles GET ?chain=&address=. Only missing parameters produce an error status.
func (h *TokenMetadataHandler) GetTokenMetadata(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	ref, err := entity.NewTokenRef(string(args.Peek("chain")), string(args.Peek("address")))
	if err != nil {
		h.logger.Debug("Rejecting token metadata request", zap.Error(err))
		h.writeJSON(ctx, fasthttp.StatusBadRequest, errorResponse{Error: missingParamsMessage})
		return
	}

	key := ref.CacheKey()
	if h.cacheRepo != nil {
		body, found, err := h.cacheRepo.GetResponse(ctx, key)
		if err != nil {
			h.logger.Warn("Cache error when getting token metadata", zap.String("key", key), zap.Error(err))
		}
		if found {
			h.metrics.RecordResponseCacheHit()
			h.writeCached(ctx, body, "HIT")
			return
		}
	}

	md := h.service.ResolveTokenMetadata(ctx, ref)
	body, err := json.Marshal(md)
	if err != nil {
		h.logger.Error("Failed to encode token metadata", zap.String("key", key), zap.Error(err))
		ctx.Error("Internal Server Error", fasthttp.StatusInternalServerError)
		return
	}

	// An empty result usually means both providers were unavailable; it must not outlive the request.
	if h.cacheRepo != nil && !md.IsEmpty() {
		if err := h.cacheRepo.SetResponse(ctx, key, body, h.cacheTTL); err != nil {
			h.logger.Warn("Failed to cache token metadata", zap.String("key", key), zap.Error(err))
		}
	}
	h.writeCached(ctx, body, "MISS")
}

func (h *TokenMetadataHandler) writeCached(ctx *fasthttp.RequestCtx, body []byte, cacheState string) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType(contentTypeJSON)
	if h.cacheControl != "" {
		ctx.Response.Header.Set(fasthttp.HeaderCacheControl, h.cacheControl)
	}
	if h.cacheRepo != nil {
		ctx.Response.Header.Set(headerCacheState, cacheState)
	}
	ctx.SetBody(body)
}

func (h *TokenMetadataHandler) writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
		ctx.Error("Internal Server Error", fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType(contentTypeJSON)
	ctx.SetBody(body)
}
