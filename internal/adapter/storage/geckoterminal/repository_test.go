package geckoterminal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tokenmeta-proxy/internal/config"
	"tokenmeta-proxy/internal/domain/entity"
)

func newTestRepository(url string) *Repository {
	return NewRepository(config.ProvidersConfig{
		RequestTimeout: 2 * time.Second,
		GeckoTerminal:  config.ProviderConfig{URL: url},
	}, zap.NewNop())
}

func serveInfo(t *testing.T, wantPath string, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantPath, r.URL.Path)
		assert.Equal(t, apiVersionAccept, r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRepository_MapsAttributes(t *testing.T) {
	body := `{"data":{"id":"solana_So111","type":"token","attributes":{
		"image_url":"http://g/logo.png",
		"websites":["https://b.io","https://a.io"],
		"twitter_handle":"abc",
		"telegram_handle":"abcchat",
		"discord_url":"https://discord.gg/abc"
	}}}`
	server := serveInfo(t, "/api/v2/networks/solana/tokens/So111/info", http.StatusOK, body)

	lookup := newTestRepository(server.URL).LookupMetadata(context.Background(),
		entity.TokenRef{Chain: "solana", Address: "So111"})

	require.Equal(t, entity.LookupHit, lookup.Outcome)
	assert.Equal(t, ProviderName, lookup.Provider)
	require.NotNil(t, lookup.Metadata.Logo)
	assert.Equal(t, "http://g/logo.png", *lookup.Metadata.Logo)
	assert.Equal(t, []entity.Website{{URL: "https://b.io"}, {URL: "https://a.io"}}, lookup.Metadata.Websites)
	assert.Equal(t, []entity.Social{
		{Platform: entity.PlatformTwitter, Handle: "abc", URL: "https://twitter.com/abc"},
		{Platform: entity.PlatformTelegram, Handle: "abcchat", URL: "https://t.me/abcchat"},
		{Platform: entity.PlatformDiscord, Handle: "", URL: "https://discord.gg/abc"},
	}, lookup.Metadata.Socials)
}

func TestRepository_NormalizesChain(t *testing.T) {
	cases := map[string]string{
		"ethereum": "eth",
		"Polygon":  "polygon_pos",
		"fantom":   "fantom",
	}
	for chain, network := range cases {
		t.Run(chain, func(t *testing.T) {
			server := serveInfo(t, "/api/v2/networks/"+network+"/tokens/0xT/info", http.StatusOK,
				`{"data":{"attributes":{"twitter_handle":"x"}}}`)

			lookup := newTestRepository(server.URL).LookupMetadata(context.Background(),
				entity.TokenRef{Chain: entity.ChainID(chain), Address: "0xT"})

			assert.True(t, lookup.Found())
		})
	}
}

func TestRepository_EmptyAttributesStillHit(t *testing.T) {
	server := serveInfo(t, "/api/v2/networks/eth/tokens/0xT/info", http.StatusOK,
		`{"data":{"attributes":{"image_url":null,"websites":[],"twitter_handle":null}}}`)

	lookup := newTestRepository(server.URL).LookupMetadata(context.Background(),
		entity.TokenRef{Chain: "ethereum", Address: "0xT"})

	require.Equal(t, entity.LookupHit, lookup.Outcome)
	assert.Equal(t, entity.EmptyTokenMetadata(), lookup.Metadata)
}

func TestRepository_MissingDataIsMiss(t *testing.T) {
	for name, body := range map[string]string{
		"no data":       `{}`,
		"null data":     `{"data":null}`,
		"no attributes": `{"data":{"id":"x"}}`,
	} {
		t.Run(name, func(t *testing.T) {
			server := serveInfo(t, "/api/v2/networks/eth/tokens/0xT/info", http.StatusOK, body)

			lookup := newTestRepository(server.URL).LookupMetadata(context.Background(),
				entity.TokenRef{Chain: "ethereum", Address: "0xT"})

			assert.Equal(t, entity.LookupMiss, lookup.Outcome)
		})
	}
}

func TestRepository_FailuresAreSwallowed(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		server := serveInfo(t, "/api/v2/networks/eth/tokens/0xT/info", http.StatusNotFound,
			`{"errors":[{"status":"404","title":"Not Found"}]}`)

		lookup := newTestRepository(server.URL).LookupMetadata(context.Background(),
			entity.TokenRef{Chain: "ethereum", Address: "0xT"})

		assert.Equal(t, entity.LookupFailed, lookup.Outcome)
		assert.Error(t, lookup.Err)
	})

	t.Run("malformed body", func(t *testing.T) {
		server := serveInfo(t, "/api/v2/networks/eth/tokens/0xT/info", http.StatusOK, `not json`)

		lookup := newTestRepository(server.URL).LookupMetadata(context.Background(),
			entity.TokenRef{Chain: "ethereum", Address: "0xT"})

		assert.Equal(t, entity.LookupFailed, lookup.Outcome)
	})
}
