package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"shopstack.backend/pkg/redis"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	// LockDuration is the time we hold the lock while processing
	LockDuration = 30 * time.Second
	// RetentionDuration is how long we keep the response
	RetentionDuration = 24 * time.Hour
)

var (
	redisGet   = redis.Get
	redisSet   = redis.Set
	redisSetNX = redis.SetNX
	redisDel   = redis.Del
)

type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// idempotencyScope keys the cache per tenant so two stores reusing the same
// Idempotency-Key value never collide. The public registration route has no
// identity yet and shares one namespace.
func idempotencyScope(c *gin.Context) string {
	if identity, ok := GetIdentity(c); ok {
		return identity.StoreID.String()
	}
	return "public"
}

// IdempotencyMiddleware replays the cached response for a repeated
// Idempotency-Key instead of running the handler twice. Requests without the
// header pass straight through.
func IdempotencyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		storageKey := fmt.Sprintf("idempotency:%s:%s", idempotencyScope(c), key)
		ctx := c.Request.Context()

		val, err := redisGet(ctx, storageKey)
		if err == nil {
			if val == "processing" {
				c.AbortWithStatusJSON(http.StatusConflict, gin.H{
					"code":    "IDEMPOTENCY_CONFLICT",
					"message": "request already in progress",
				})
				return
			}

			// replay the stored response with its original status
			status, body := decodeCached(val)
			c.Header("Content-Type", "application/json")
			c.Header("X-Idempotency-Hit", "true")
			c.String(status, body)
			c.Abort()
			return
		} else if err.Error() != "redis: nil" {
			// redis unavailable; fail open
			c.Next()
			return
		}

		success, err := redisSetNX(ctx, storageKey, "processing", LockDuration)
		if err != nil || !success {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "IDEMPOTENCY_CONFLICT",
				"message": "request already in progress",
			})
			return
		}

		w := &responseWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			cached := strconv.Itoa(c.Writer.Status()) + "\n" + w.body.String()
			_ = redisSet(ctx, storageKey, cached, RetentionDuration)
		} else {
			// non-2xx outcomes are retryable
			_ = redisDel(ctx, storageKey)
		}
	}
}

// decodeCached splits a "<status>\n<body>" cache entry. Entries written
// before the status was stored replay as 200.
func decodeCached(val string) (int, string) {
	if i := strings.IndexByte(val, '\n'); i > 0 {
		if status, err := strconv.Atoi(val[:i]); err == nil {
			return status, val[i+1:]
		}
	}
	return http.StatusOK, val
}
