package upstream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tokenmeta-proxy/internal/config"
	"tokenmeta-proxy/internal/pkg/apperrors"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const defaultTimeout = 15 * time.Second

// Client performs read-only JSON requests against a single upstream API.
type Client struct {
	client       *fasthttp.Client
	baseURL      string
	apiKey       string
	apiKeyHeader string
	timeout      time.Duration
	logger       *zap.Logger
}

// NewClient creates a client for the provider at cfg.URL.
// A non-empty cfg.APIKey is sent on every request in cfg.APIKeyHeader.
func NewClient(cfg config.ProviderConfig, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		client: &fasthttp.Client{
			Name:                "tokenmeta-proxy",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: 30 * time.Second,
		},
		baseURL:      strings.TrimRight(cfg.URL, "/"),
		apiKey:       cfg.APIKey,
		apiKeyHeader: cfg.APIKeyHeader,
		timeout:      timeout,
		logger:       logger,
	}
}

// BaseURL returns the upstream base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetJSON issues a GET for path (relative to the base URL) and returns the body of a 2xx response.
// The returned slice is owned by the caller.
func (c *Client) GetJSON(ctx context.Context, path string, headers map[string]string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	fullURL := c.baseURL + path
	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	req.Header.Set(fasthttp.HeaderAcceptEncoding, "gzip")
	if c.apiKey != "" && c.apiKeyHeader != "" {
		req.Header.Set(c.apiKeyHeader, c.apiKey)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	timeout := c.timeout
	if deadline, hasDeadline := ctx.Deadline(); hasDeadline {
		requestTimeout := time.Until(deadline)
		if requestTimeout > 0 && requestTimeout < timeout {
			timeout = requestTimeout
		}
	}

	c.logger.Debug("Fetching from upstream", zap.String("url", fullURL), zap.Duration("timeout", timeout))

	if err := c.client.DoTimeout(req, resp, timeout); err != nil {
		if errors.Is(err, fasthttp.ErrTimeout) || errors.Is(err, fasthttp.ErrDialTimeout) {
			return nil, fmt.Errorf("%w: request to %s timed out after %v: %v",
				apperrors.ErrTimeout, fullURL, timeout, err,
			)
		}
		return nil, fmt.Errorf("%w: request to %s failed: %v",
			apperrors.ErrExternalServiceFailure, fullURL, err,
		)
	}

	status := resp.StatusCode()
	switch {
	case status == fasthttp.StatusNotFound:
		return nil, fmt.Errorf("%w: %s returned status %d", apperrors.ErrNotFound, fullURL, status)
	case status == fasthttp.StatusUnauthorized || status == fasthttp.StatusForbidden:
		return nil, fmt.Errorf("%w: %s returned status %d", apperrors.ErrUnauthorized, fullURL, status)
	case status < 200 || status > 299:
		return nil, fmt.Errorf("%w: %s returned status %d", apperrors.ErrExternalServiceFailure, fullURL, status)
	}

	contentEncoding := resp.Header.Peek(fasthttp.HeaderContentEncoding)
	if bytes.EqualFold(contentEncoding, []byte("gzip")) {
		body, err := resp.BodyGunzip()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to decompress response from %s: %v",
				apperrors.ErrExternalServiceFailure, fullURL, err,
			)
		}
		return body, nil
	}

	return append([]byte(nil), resp.Body()...), nil
}
