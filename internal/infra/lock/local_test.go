package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker_AcquireRelease(t *testing.T) {
	l := NewLocalLocker(0)
	ctx := context.Background()

	release, err := l.Acquire(ctx, "car:1", "user:1")
	require.NoError(t, err)

	_, err = l.Acquire(ctx, "user:1")
	assert.ErrorIs(t, err, ErrLockTimeout)

	_, err = l.Acquire(ctx, "car:1", "car:0")
	assert.ErrorIs(t, err, ErrLockTimeout)

	// car:0 был взят первым и отпущен после неудачи с car:1
	release2, err := l.Acquire(ctx, "car:0")
	require.NoError(t, err)
	release2()

	release()
	release()

	release, err = l.Acquire(ctx, "car:1", "user:1")
	require.NoError(t, err)
	release()

	assert.Empty(t, l.entries)
}

func TestLocalLocker_DuplicateKeys(t *testing.T) {
	l := NewLocalLocker(0)

	release, err := l.Acquire(context.Background(), "car:1", "car:1")
	require.NoError(t, err)
	release()

	assert.Empty(t, l.entries)
}

func TestLocalLocker_WaitsForRelease(t *testing.T) {
	l := NewLocalLocker(time.Second)
	ctx := context.Background()

	release, err := l.Acquire(ctx, "car:1")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		r, err := l.Acquire(ctx, "car:1")
		if err == nil {
			r()
		}
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	release()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("waiter was not woken up")
	}
}

func TestLocalLocker_ContextCancelled(t *testing.T) {
	l := NewLocalLocker(time.Minute)

	release, err := l.Acquire(context.Background(), "car:1")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = l.Acquire(ctx, "car:1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLocalLocker_MutualExclusion(t *testing.T) {
	l := NewLocalLocker(5 * time.Second)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		inside  int
		maxSeen int
		mu      sync.Mutex
	)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Acquire(ctx, "user:1", "car:1")
			if !assert.NoError(t, err) {
				return
			}
			defer release()

			mu.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
	assert.Empty(t, l.entries)
}

func TestNormalizeKeys(t *testing.T) {
	assert.Equal(t, []string{"car:a", "user:b"}, normalizeKeys([]string{"user:b", "car:a", "user:b"}))
	assert.Empty(t, normalizeKeys(nil))
}
