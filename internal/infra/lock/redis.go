package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix префикс ключей блокировок в Redis
const DefaultKeyPrefix = "car_rental:lock:"

// releaseScript удаляет ключ только если он всё ещё принадлежит владельцу токена
const releaseScript = `if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end`

// releaseTimeout ограничивает освобождение блокировки после отмены контекста запроса
const releaseTimeout = 2 * time.Second

// Options параметры блокировки
// MaxWait = 0 означает одну попытку без ожидания
type Options struct {
	TTL           time.Duration
	MaxWait       time.Duration
	RetryInterval time.Duration
	KeyPrefix     string
}

// RedisLocker распределённая блокировка на SET NX PX
// Ключ живёт не дольше TTL, поэтому упавший процесс не держит автомобиль вечно
type RedisLocker struct {
	client   redis.Cmdable
	opts     Options
	newToken func() string
	logger   Logger
}

// NewRedisLocker создает блокировку поверх клиента Redis
func NewRedisLocker(client redis.Cmdable, opts Options, logger Logger) *RedisLocker {
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = DefaultKeyPrefix
	}
	return &RedisLocker{
		client:   client,
		opts:     opts,
		newToken: uuid.NewString,
		logger:   logger,
	}
}

// Acquire берёт все ключи или ни одного
func (l *RedisLocker) Acquire(ctx context.Context, keys ...string) (ReleaseFunc, error) {
	token := l.newToken()
	keys = normalizeKeys(keys)

	acquired := make([]string, 0, len(keys))
	for _, key := range keys {
		if err := l.acquireOne(ctx, l.opts.KeyPrefix+key, token); err != nil {
			l.release(ctx, acquired, token)
			return nil, err
		}
		acquired = append(acquired, l.opts.KeyPrefix+key)
	}

	var once sync.Once
	return func() { once.Do(func() { l.release(ctx, acquired, token) }) }, nil
}

func (l *RedisLocker) acquireOne(ctx context.Context, key, token string) error {
	deadline := time.Now().Add(l.opts.MaxWait)

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.opts.TTL).Result()
		if err != nil {
			return fmt.Errorf("%w: set %s: %w", ErrLockBackend, key, err)
		}
		if ok {
			return nil
		}

		if l.opts.MaxWait <= 0 || !time.Now().Before(deadline) {
			return fmt.Errorf("%w: %s", ErrLockTimeout, key)
		}

		timer := time.NewTimer(l.opts.RetryInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (l *RedisLocker) release(ctx context.Context, keys []string, token string) {
	if len(keys) == 0 {
		return
	}

	releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()

	// Освобождаем в обратном порядке
	for i := len(keys) - 1; i >= 0; i-- {
		deleted, err := l.client.Eval(releaseCtx, releaseScript, []string{keys[i]}, token).Int64()
		if err != nil {
			l.logger.Error("RedisLocker: failed to release %s: %v", keys[i], err)
			continue
		}
		if deleted == 0 {
			l.logger.Warn("RedisLocker: lock %s expired before release", keys[i])
		}
	}
}
