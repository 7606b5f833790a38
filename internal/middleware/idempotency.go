package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"lt-att-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// IdempotencyResultKey dipakai handler untuk menitipkan body sukses agar bisa di-replay.
	IdempotencyResultKey = "idempotency_result"

	idempotencyTTL     = 24 * time.Hour
	idempotencyLockTTL = 30 * time.Second
)

type idempotentReplay struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// Idempotency mencegah POST ganda dengan header Idempotency-Key yang sama:
// request kedua mendapat ulang respons pertama, request paralel ditolak 409.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	log := zap.L().Named("middleware.idempotency")
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), c.GetString("user_id"), idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			var replay idempotentReplay
			if json.Unmarshal([]byte(val), &replay) == nil {
				c.Header("Idempotent-Replayed", "true")
				response.Success(c, replay.Status, replay.Data, nil)
				c.Abort()
				return
			}
		}

		// SetNX: jika lock sudah ada berarti request lain dengan key yang sama sedang berjalan
		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			log.Warn("idempotency lock unavailable, continuing without it", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Error(c, http.StatusConflict, "PROCESSING", "Request with this Idempotency-Key is still being processed", nil)
			c.Abort()
			return
		}
		defer rdb.Del(ctx, lockKey)

		c.Next()

		result, ok := c.Get(IdempotencyResultKey)
		if !ok || c.Writer.Status() >= http.StatusMultipleChoices {
			return
		}
		data, err := json.Marshal(result)
		if err != nil {
			return
		}
		payload, _ := json.Marshal(idempotentReplay{Status: c.Writer.Status(), Data: data})
		if err := rdb.Set(ctx, cacheKey, payload, idempotencyTTL).Err(); err != nil {
			log.Warn("store idempotent response failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}
}
