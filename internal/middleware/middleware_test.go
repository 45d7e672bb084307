package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/theater-seat-booking/internal/config"
)

func newEchoContext(method, target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestEncodeDecodePayload(t *testing.T) {
	hdr := http.Header{"Content-Type": []string{"application/json"}}
	body := []byte(`[{"seat_number":1}]`)

	payload, err := encodePayload(http.StatusOK, hdr, body)
	require.NoError(t, err)

	status, gotHdr, gotBody, ok := decodePayload(payload)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", gotHdr.Get("Content-Type"))
	assert.Equal(t, body, gotBody)
}

func TestDecodePayloadRejectsGarbage(t *testing.T) {
	_, _, _, ok := decodePayload([]byte{1, 2, 3})
	assert.False(t, ok, "short payload")

	// Header length pointing past the buffer.
	payload, err := encodePayload(http.StatusOK, http.Header{}, nil)
	require.NoError(t, err)
	_, _, _, ok = decodePayload(payload[:6])
	assert.False(t, ok, "truncated payload")
}

func TestCacheKeyFrom(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}

	c1 := newEchoContext(http.MethodGet, "/seats?show_id=1&screen_id=1")
	c1.SetPath("/seats")
	c2 := newEchoContext(http.MethodGet, "/seats?show_id=1&screen_id=2")
	c2.SetPath("/seats")

	k1 := cacheKeyFrom(cfg, c1)
	k2 := cacheKeyFrom(cfg, c2)
	assert.NotEqual(t, k1, k2, "query string must contribute to the key")
	assert.Equal(t, k1, cacheKeyFrom(cfg, c1), "key is stable for the same request")

	// Route-only strategy collapses the two requests onto one key.
	cfg.KeyStrategy = "route"
	assert.Equal(t, cacheKeyFrom(cfg, c1), cacheKeyFrom(cfg, c2))
}

func TestNewRedisCacheDisabledIsPassthrough(t *testing.T) {
	mw := NewRedisCache(config.CacheConfig{Enabled: false}, nil)

	c := newEchoContext(http.MethodGet, "/shows")
	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "ok")
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Empty(t, c.Response().Header().Get("X-Cache"))
}

func TestBuildRateKey(t *testing.T) {
	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip_route"}

	c := newEchoContext(http.MethodPost, "/book")
	c.SetPath("/book")
	c.Request().RemoteAddr = "203.0.113.7:4711"

	assert.Equal(t, "rl:ip:203.0.113.7:route:POST /book", buildRateKey(cfg, c))

	cfg.KeyStrategy = "ip"
	assert.Equal(t, "rl:ip:203.0.113.7", buildRateKey(cfg, c))

	cfg.KeyStrategy = "route"
	assert.Equal(t, "rl:route:POST /book", buildRateKey(cfg, c))
}

func TestNewTokenBucketDisabledIsPassthrough(t *testing.T) {
	mw := NewTokenBucket(config.RateLimitConfig{Enabled: false}, nil)

	c := newEchoContext(http.MethodPost, "/book")
	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
}
