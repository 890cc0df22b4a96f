package lock

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// LocalLocker блокировка по ключу внутри одного процесса
// Используется с хранилищем в памяти и когда Redis выключен
type LocalLocker struct {
	mu      sync.Mutex
	entries map[string]*localEntry
	maxWait time.Duration
}

type localEntry struct {
	slot chan struct{}
	refs int
}

// NewLocalLocker создает блокировку внутри процесса
// maxWait = 0 означает одну попытку без ожидания
func NewLocalLocker(maxWait time.Duration) *LocalLocker {
	return &LocalLocker{
		entries: make(map[string]*localEntry),
		maxWait: maxWait,
	}
}

// Acquire берёт все ключи или ни одного
func (l *LocalLocker) Acquire(ctx context.Context, keys ...string) (ReleaseFunc, error) {
	keys = normalizeKeys(keys)

	acquired := make([]string, 0, len(keys))
	for _, key := range keys {
		if err := l.acquireOne(ctx, key); err != nil {
			l.release(acquired)
			return nil, err
		}
		acquired = append(acquired, key)
	}

	var once sync.Once
	return func() { once.Do(func() { l.release(acquired) }) }, nil
}

func (l *LocalLocker) acquireOne(ctx context.Context, key string) error {
	e := l.ref(key)

	select {
	case e.slot <- struct{}{}:
		return nil
	default:
	}

	if l.maxWait <= 0 {
		l.unref(key)
		return fmt.Errorf("%w: %s", ErrLockTimeout, key)
	}

	timer := time.NewTimer(l.maxWait)
	defer timer.Stop()

	select {
	case e.slot <- struct{}{}:
		return nil
	case <-ctx.Done():
		l.unref(key)
		return ctx.Err()
	case <-timer.C:
		l.unref(key)
		return fmt.Errorf("%w: %s", ErrLockTimeout, key)
	}
}

func (l *LocalLocker) release(keys []string) {
	for i := len(keys) - 1; i >= 0; i-- {
		l.mu.Lock()
		e := l.entries[keys[i]]
		l.mu.Unlock()

		<-e.slot
		l.unref(keys[i])
	}
}

func (l *LocalLocker) ref(key string) *localEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		e = &localEntry{slot: make(chan struct{}, 1)}
		l.entries[key] = e
	}
	e.refs++
	return e
}

func (l *LocalLocker) unref(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.entries[key]
	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
}
