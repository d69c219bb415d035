package http

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	handler "tokenmeta-proxy/internal/adapter/handler/http"
	"tokenmeta-proxy/internal/adapter/storage/memory"
	"tokenmeta-proxy/internal/config"
	"tokenmeta-proxy/internal/domain/entity"
	"tokenmeta-proxy/internal/observability"
)

type countingService struct {
	calls int
}

func (s *countingService) ResolveTokenMetadata(context.Context, entity.TokenRef) entity.TokenMetadata {
	s.calls++
	logo := "http://x/logo.png"
	return entity.TokenMetadata{Logo: &logo, Websites: []entity.Website{}, Socials: []entity.Social{}}
}

func newTestServerHandler(t *testing.T, metrics *observability.Metrics) (fasthttp.RequestHandler, *countingService) {
	t.Helper()
	cfg := config.Config{
		Server: config.ServerConfig{CORSOrigin: "https://app.example", CacheControl: "public, max-age=60"},
		Cache:  config.CacheConfig{Enabled: true, DefaultExpiration: time.Minute, CleanupInterval: time.Minute},
	}
	svc := &countingService{}
	logger := zap.NewNop()
	h := handler.NewTokenMetadataHandler(svc, memory.NewCacheRepository(cfg.Cache, logger), cfg, metrics, logger)
	return NewHandler(h, cfg.Server.CORSOrigin, metrics, logger), svc
}

func serve(h fasthttp.RequestHandler, method, uri string, headers map[string]string) *fasthttp.RequestCtx {
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	h(ctx)
	return ctx
}

func TestRouter_Health(t *testing.T) {
	h, _ := newTestServerHandler(t, nil)

	ctx := serve(h, fasthttp.MethodGet, HealthPath, nil)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "OK", string(ctx.Response.Body()))
}

func TestRouter_RequestID(t *testing.T) {
	h, _ := newTestServerHandler(t, nil)

	generated := serve(h, fasthttp.MethodGet, HealthPath, nil)
	_, err := uuid.Parse(string(generated.Response.Header.Peek(HeaderRequestID)))
	assert.NoError(t, err)

	echoed := serve(h, fasthttp.MethodGet, HealthPath, map[string]string{HeaderRequestID: "req-123"})
	assert.Equal(t, "req-123", string(echoed.Response.Header.Peek(HeaderRequestID)))
	assert.Equal(t, "req-123", RequestIDFrom(echoed))
}

func TestRouter_CORSPreflight(t *testing.T) {
	h, svc := newTestServerHandler(t, nil)

	ctx := serve(h, fasthttp.MethodOptions, TokenMetadataPath+"?chain=ethereum&address=0xT", nil)

	assert.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())
	assert.Equal(t, "https://app.example", string(ctx.Response.Header.Peek(fasthttp.HeaderAccessControlAllowOrigin)))
	assert.Equal(t, 0, svc.calls)
}

func TestRouter_TokenMetadataCachedAcrossRequests(t *testing.T) {
	h, svc := newTestServerHandler(t, nil)
	uri := TokenMetadataPath + "?chain=ethereum&address=0xT"

	first := serve(h, fasthttp.MethodGet, uri, nil)
	second := serve(h, fasthttp.MethodGet, uri, nil)

	assert.Equal(t, fasthttp.StatusOK, first.Response.StatusCode())
	assert.Equal(t, "https://app.example", string(first.Response.Header.Peek(fasthttp.HeaderAccessControlAllowOrigin)))
	assert.Equal(t, "HIT", string(second.Response.Header.Peek("X-Cache")))
	assert.Equal(t, `{"logo":"http://x/logo.png","websites":[],"socials":[]}`, string(second.Response.Body()))
	assert.Equal(t, 1, svc.calls)
}

func TestRouter_BadRequestThroughRouter(t *testing.T) {
	h, svc := newTestServerHandler(t, nil)

	ctx := serve(h, fasthttp.MethodGet, TokenMetadataPath+"?chain=ethereum", nil)

	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	assert.Equal(t, `{"error":"Missing chain or address"}`, string(ctx.Response.Body()))
	assert.Equal(t, 0, svc.calls)
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	metrics := observability.NewMetrics("tokenmeta")
	h, _ := newTestServerHandler(t, metrics)

	serve(h, fasthttp.MethodGet, TokenMetadataPath+"?chain=ethereum&address=0xT", nil)
	serve(h, fasthttp.MethodGet, "/nope", nil)
	ctx := serve(h, fasthttp.MethodGet, MetricsPath, nil)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	body := string(ctx.Response.Body())
	assert.True(t, strings.Contains(body, `route="/api/token-metadata",status="200"`), body)
	assert.True(t, strings.Contains(body, `route="unmatched",status="404"`), body)
}

func TestRouter_NoMetricsRouteWhenDisabled(t *testing.T) {
	h, _ := newTestServerHandler(t, nil)

	ctx := serve(h, fasthttp.MethodGet, MetricsPath, nil)

	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}
