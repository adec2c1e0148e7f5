package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"deadparty-backend/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memoryCache is an in-process stand-in for the Redis client.
type memoryCache struct {
	mu       sync.Mutex
	entries  map[string][]byte
	counters map[string]int64
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		entries:  make(map[string][]byte),
		counters: make(map[string]int64),
	}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = raw
	return nil
}

func (m *memoryCache) Increment(ctx context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[key]++
	return m.counters[key], nil
}

func (m *memoryCache) Expire(ctx context.Context, key string, ttl time.Duration) error { return nil }

func (m *memoryCache) Ping(ctx context.Context) error { return nil }

func TestPageCacheKeyIgnoresQueryOrder(t *testing.T) {
	t.Parallel()

	keyFor := func(target, cookie string) string {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		if cookie != "" {
			req.Header.Set("Cookie", cookie)
		}
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = req
		return pageCacheKey(c)
	}

	require.Equal(t,
		keyFor("/api/v1/articles?category=edm&search=rave", ""),
		keyFor("/api/v1/articles?search=rave&category=edm", ""),
	)
	require.NotEqual(t,
		keyFor("/api/v1/articles?category=edm", ""),
		keyFor("/api/v1/articles?category=country", ""),
	)
	require.NotEqual(t,
		keyFor("/api/v1/articles", "session=a"),
		keyFor("/api/v1/articles", "session=b"),
	)
}

func TestPageCacheServesSecondRequestFromStore(t *testing.T) {
	t.Parallel()
	store := newMemoryCache()
	hits := 0

	router := gin.New()
	router.GET("/things", PageCache(store, time.Minute), func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"hits": hits})
	})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/things", nil))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/things", nil))
	require.Equal(t, http.StatusOK, second.Code)
	require.Equal(t, "HIT", second.Header().Get("X-Cache"))
	require.Equal(t, first.Body.String(), second.Body.String())
	require.Equal(t, 1, hits)
}

func TestPageCacheSkipsErrorResponses(t *testing.T) {
	t.Parallel()
	store := newMemoryCache()
	hits := 0

	router := gin.New()
	router.GET("/missing", PageCache(store, time.Minute), func(c *gin.Context) {
		hits++
		c.JSON(http.StatusNotFound, gin.H{"error": "nope"})
	})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	}
	require.Equal(t, 2, hits)
}

func TestRequestIDPropagation(t *testing.T) {
	t.Parallel()

	var fromContext string
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		fromContext = c.GetString(ContextRequestIDKey)
		c.Status(http.StatusNoContent)
	})

	// A supplied id is propagated to the context and echoed back.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	router.ServeHTTP(rec, req)
	require.Equal(t, "abc-123", fromContext)
	require.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))

	// Without one, a uuid is generated.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, fromContext, rec.Header().Get("X-Request-ID"))
	_, err := uuid.Parse(fromContext)
	require.NoError(t, err)
}

func authTestRouter(manager *jwt.Manager) (*gin.Engine, *uuid.UUID) {
	var seen uuid.UUID
	router := gin.New()
	router.POST("/comments", AuthMiddleware(manager), func(c *gin.Context) {
		id, ok := GetUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user id"})
			return
		}
		seen = id
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	return router, &seen
}

func requireUnauthorized(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.False(t, body.Success)
	require.Equal(t, "UNAUTHORIZED", body.Error.Code)
}

func TestAuthMiddlewareRejectsUnauthenticated(t *testing.T) {
	t.Parallel()
	manager := jwt.NewManager("test-secret", time.Minute, time.Hour)
	router, _ := authTestRouter(manager)

	// No Authorization header.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/comments", nil))
	requireUnauthorized(t, rec)

	// Malformed header.
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/comments", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(rec, req)
	requireUnauthorized(t, rec)

	// Token signed with a different secret.
	forged, err := jwt.NewManager("other-secret", time.Minute, time.Hour).
		GenerateAccessToken(uuid.NewString(), "a@b.c", "member")
	require.NoError(t, err)
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/comments", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	router.ServeHTTP(rec, req)
	requireUnauthorized(t, rec)

	// Refresh tokens do not grant access.
	refresh, err := manager.GenerateRefreshToken(uuid.NewString())
	require.NoError(t, err)
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/comments", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	router.ServeHTTP(rec, req)
	requireUnauthorized(t, rec)
}

func TestAuthMiddlewarePassesValidToken(t *testing.T) {
	t.Parallel()
	manager := jwt.NewManager("test-secret", time.Minute, time.Hour)
	router, seen := authTestRouter(manager)

	userID := uuid.New()
	token, err := manager.GenerateAccessToken(userID.String(), "a@b.c", "member")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/comments", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, userID, *seen)
}

func TestRateLimitReturns429OverLimit(t *testing.T) {
	t.Parallel()
	store := newMemoryCache()

	router := gin.New()
	router.GET("/ping", RateLimit(store, 3, time.Minute), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	for i := 1; i <= 3; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusOK, rec.Code, fmt.Sprintf("request %d", i))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
}
