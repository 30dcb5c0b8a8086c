package middleware

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go-stationops/internal/shared/apperror"
	"go-stationops/internal/shared/contextutil"
	"go-stationops/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyHeader = "Idempotency-Key"

	idempotencyLockTTL = 30 * time.Second
)

var errRequestInFlight = apperror.New(apperror.CodeConflict, "Request is already being processed", http.StatusConflict)

type bodyCaptureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored response of a POST that carried the same
// Idempotency-Key for the same principal and route. Only 2xx responses are
// stored. Redis failures let the request through.
func Idempotency(rdb redis.Cmdable, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := strings.TrimSpace(c.GetHeader(IdempotencyHeader))
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		log := contextutil.GetLogger(ctx, zap.L())

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), c.GetString(ContextPrincipalID), idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(ctx, cacheKey).Result()
		switch {
		case err == nil:
			if status, body, ok := decodeCached(val); ok {
				c.Header("Idempotent-Replay", "true")
				c.Data(status, "application/json; charset=utf-8", body)
				c.Abort()
				return
			}
		case !errors.Is(err, redis.Nil):
			log.Warn("idempotency cache unavailable", zap.Error(err))
			c.Next()
			return
		}

		acquired, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			log.Warn("idempotency lock unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !acquired {
			response.Abort(c, errRequestInFlight)
			return
		}

		w := &bodyCaptureWriter{ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		// the request context may already be cancelled here
		bg := context.WithoutCancel(ctx)
		if status := w.Status(); status >= 200 && status < 300 {
			if err := rdb.Set(bg, cacheKey, encodeCached(status, w.body.Bytes()), ttl).Err(); err != nil {
				log.Warn("idempotency store failed", zap.Error(err))
			}
		}
		if err := rdb.Del(bg, lockKey).Err(); err != nil {
			log.Warn("idempotency unlock failed", zap.Error(err))
		}
	}
}

// cached form: "<status>\n<body>"
func encodeCached(status int, body []byte) string {
	return strconv.Itoa(status) + "\n" + string(body)
}

func decodeCached(val string) (int, []byte, bool) {
	head, body, found := strings.Cut(val, "\n")
	if !found {
		return 0, nil, false
	}
	status, err := strconv.Atoi(head)
	if err != nil {
		return 0, nil, false
	}
	return status, []byte(body), true
}
