package qrcode

import (
	"context"
	"errors"
	"time"

	qrcodeerrors "lt-att-backend/internal/qrcode/errors"

	"github.com/bsm/redislock"
	"go.uber.org/zap"
)

// Locker serialises window rotation for one (branch, type) across instances.
type Locker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}

type redisLocker struct {
	client *redislock.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisLocker(client *redislock.Client, ttl time.Duration) Locker {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &redisLocker{client: client, ttl: ttl, logger: zap.L().Named("qrcode.lock")}
}

func (l *redisLocker) Lock(ctx context.Context, key string) (func(), error) {
	lock, err := l.client.Obtain(ctx, key, l.ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, qrcodeerrors.ErrGenerationInProgress
	}
	if err != nil {
		return nil, err
	}

	return func() {
		// context baru: release tetap jalan walau request ctx sudah cancel
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := lock.Release(releaseCtx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			l.logger.Warn("release qr lock failed", zap.String("key", key), zap.Error(err))
		}
	}, nil
}

func lockKey(branch, qrType string) string {
	return "qr:" + branch + ":" + qrType
}
