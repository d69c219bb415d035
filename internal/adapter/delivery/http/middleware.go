package http

import (
	"time"

	"github.com/fasthttp/router"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"tokenmeta-proxy/internal/observability"
)

// HeaderRequestID carries the per-request correlation id.
const HeaderRequestID = "X-Request-ID"

const (
	requestIDKey   = "requestID"
	unmatchedRoute = "unmatched"
)

// Middleware decorates a request handler.
type Middleware func(next fasthttp.RequestHandler) fasthttp.RequestHandler

// Chain applies mws so that the first one is outermost.
func Chain(h fasthttp.RequestHandler, mws ...Middleware) fasthttp.RequestHandler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// RequestID reuses an incoming X-Request-ID or assigns a new UUID, and echoes it on the response.
func RequestID() Middleware {
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			id := string(ctx.Request.Header.Peek(HeaderRequestID))
			if id == "" {
				id = uuid.NewString()
			}
			ctx.SetUserValue(requestIDKey, id)
			ctx.Response.Header.Set(HeaderRequestID, id)
			next(ctx)
		}
	}
}

// RequestIDFrom returns the id assigned by RequestID, or "" outside of it.
func RequestIDFrom(ctx *fasthttp.RequestCtx) string {
	id, _ := ctx.UserValue(requestIDKey).(string)
	return id
}

// AccessLog logs one line per request once it has been served.
func AccessLog(logger *zap.Logger) Middleware {
	named := logger.Named("AccessLog")
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			start := time.Now()
			next(ctx)
			named.Info("Request served",
				zap.ByteString("method", ctx.Method()),
				zap.ByteString("uri", ctx.RequestURI()),
				zap.Int("status", ctx.Response.StatusCode()),
				zap.Duration("elapsed", time.Since(start)),
				zap.String("requestId", RequestIDFrom(ctx)),
			)
		}
	}
}

// CORS allows cross-origin GETs from origin and answers preflight requests directly.
func CORS(origin string) Middleware {
	if origin == "" {
		origin = "*"
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			ctx.Response.Header.Set(fasthttp.HeaderAccessControlAllowOrigin, origin)
			ctx.Response.Header.Set(fasthttp.HeaderAccessControlAllowMethods, "GET, OPTIONS")
			ctx.Response.Header.Set(fasthttp.HeaderAccessControlAllowHeaders, "Content-Type, "+HeaderRequestID)
			ctx.Response.Header.Set(fasthttp.HeaderAccessControlExposeHeaders, HeaderRequestID)

			if ctx.IsOptions() {
				ctx.SetStatusCode(fasthttp.StatusNoContent)
				return
			}
			next(ctx)
		}
	}
}

// Instrument records request latency labelled by the matched route.
func Instrument(metrics *observability.Metrics) Middleware {
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			start := time.Now()
			next(ctx)
			route, ok := ctx.UserValue(router.MatchedRoutePathParam).(string)
			if !ok || route == "" {
				route = unmatchedRoute
			}
			metrics.RecordHTTPRequest(route, ctx.Response.StatusCode(), time.Since(start))
		}
	}
}
