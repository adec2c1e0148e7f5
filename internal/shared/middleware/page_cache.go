package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"deadparty-backend/pkg/cache"
)

const pageCachePrefix = "page:"

// cachedPage is the response blob stored in Redis.
type cachedPage struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// PageCache caches successful GET responses in Redis for the given TTL.
// The key covers method, path, query string and the Cookie header, so two
// callers with different session cookies never share an entry. Entries expire
// on their own timer; writes do not invalidate them.
func PageCache(store cache.Cache, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := pageCacheKey(c)

		var page cachedPage
		found, err := store.Get(c.Request.Context(), key, &page)
		if err == nil && found {
			c.Header("X-Cache", "HIT")
			c.Data(page.Status, page.ContentType, page.Body)
			c.Abort()
			return
		}

		writer := &pageCacheWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		if writer.Status() != http.StatusOK {
			return
		}

		page = cachedPage{
			Status:      writer.Status(),
			ContentType: writer.Header().Get("Content-Type"),
			Body:        writer.body.Bytes(),
		}
		if err := store.Set(c.Request.Context(), key, page, ttl); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to store page cache entry")
		}
	}
}

// pageCacheKey builds the exact request signature: method, path, sorted query
// parameters and the raw Cookie header.
func pageCacheKey(c *gin.Context) string {
	query := c.Request.URL.Query()
	params := make([]string, 0, len(query))
	for k, vs := range query {
		for _, v := range vs {
			params = append(params, k+"="+v)
		}
	}
	sort.Strings(params)

	signature := strings.Join([]string{
		c.Request.Method,
		c.Request.URL.Path,
		strings.Join(params, "&"),
		c.GetHeader("Cookie"),
	}, "|")

	sum := sha256.Sum256([]byte(signature))
	return pageCachePrefix + hex.EncodeToString(sum[:])
}

type pageCacheWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *pageCacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *pageCacheWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
