package http

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	handler "tokenmeta-proxy/internal/adapter/handler/http"
	"tokenmeta-proxy/internal/observability"
)

// Route paths.
const (
	TokenMetadataPath = "/api/token-metadata"
	HealthPath        = "/health"
	MetricsPath       = "/metrics"
)

// RegisterRoutes sets up the token metadata route, the health check and, when metrics is non-nil, /metrics.
func RegisterRoutes(r *router.Router, h *handler.TokenMetadataHandler, metrics *observability.Metrics, logger *zap.Logger) {
	logger.Info("Setting up application-specific routes...")
	r.SaveMatchedRoutePath = true

	r.GET(TokenMetadataPath, h.GetTokenMetadata)

	logger.Info("Setting up health check route...")
	r.GET(HealthPath, func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("OK")
	})

	if metrics != nil {
		logger.Info("Setting up metrics route...")
		r.GET(MetricsPath, fasthttpadaptor.NewFastHTTPHandler(metrics.Handler()))
	}

	logger.Info("All routes registered.")
}

// NewHandler builds the router and wraps it with the standard middleware chain.
func NewHandler(
	h *handler.TokenMetadataHandler,
	corsOrigin string,
	metrics *observability.Metrics,
	logger *zap.Logger,
) fasthttp.RequestHandler {
	r := router.New()
	RegisterRoutes(r, h, metrics, logger)

	return Chain(r.Handler,
		RequestID(),
		AccessLog(logger),
		CORS(corsOrigin),
		Instrument(metrics),
	)
}
