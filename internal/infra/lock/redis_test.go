package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/pkg/logger"
)

const testToken = "token-1"

func newTestRedisLocker(t *testing.T, opts Options) (*RedisLocker, redismock.ClientMock) {
	t.Helper()
	client, mock := redismock.NewClientMock()
	l := NewRedisLocker(client, opts, logger.NewNop())
	l.newToken = func() string { return testToken }
	return l, mock
}

func TestRedisLocker_AcquireRelease(t *testing.T) {
	l, mock := newTestRedisLocker(t, Options{TTL: 5 * time.Second})

	mock.ExpectSetNX(DefaultKeyPrefix+"car:1", testToken, 5*time.Second).SetVal(true)
	mock.ExpectSetNX(DefaultKeyPrefix+"user:1", testToken, 5*time.Second).SetVal(true)
	mock.ExpectEval(releaseScript, []string{DefaultKeyPrefix + "user:1"}, testToken).SetVal(int64(1))
	mock.ExpectEval(releaseScript, []string{DefaultKeyPrefix + "car:1"}, testToken).SetVal(int64(1))

	release, err := l.Acquire(context.Background(), "user:1", "car:1")
	require.NoError(t, err)
	release()
	release()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisLocker_BusyKeyReleasesAcquired(t *testing.T) {
	l, mock := newTestRedisLocker(t, Options{TTL: time.Second, KeyPrefix: "test:"})

	mock.ExpectSetNX("test:car:1", testToken, time.Second).SetVal(true)
	mock.ExpectSetNX("test:user:1", testToken, time.Second).SetVal(false)
	mock.ExpectEval(releaseScript, []string{"test:car:1"}, testToken).SetVal(int64(1))

	release, err := l.Acquire(context.Background(), "car:1", "user:1")
	assert.ErrorIs(t, err, ErrLockTimeout)
	assert.Nil(t, release)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisLocker_RetriesUntilFree(t *testing.T) {
	l, mock := newTestRedisLocker(t, Options{
		TTL:           time.Second,
		MaxWait:       time.Second,
		RetryInterval: time.Millisecond,
	})

	mock.ExpectSetNX(DefaultKeyPrefix+"car:1", testToken, time.Second).SetVal(false)
	mock.ExpectSetNX(DefaultKeyPrefix+"car:1", testToken, time.Second).SetVal(true)

	_, err := l.Acquire(context.Background(), "car:1")
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisLocker_BackendError(t *testing.T) {
	l, mock := newTestRedisLocker(t, Options{TTL: time.Second})

	mock.ExpectSetNX(DefaultKeyPrefix+"car:1", testToken, time.Second).SetErr(errors.New("connection refused"))

	_, err := l.Acquire(context.Background(), "car:1")
	assert.ErrorIs(t, err, ErrLockBackend)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisLocker_ExpiredBeforeRelease(t *testing.T) {
	l, mock := newTestRedisLocker(t, Options{TTL: time.Second})

	mock.ExpectSetNX(DefaultKeyPrefix+"car:1", testToken, time.Second).SetVal(true)
	mock.ExpectEval(releaseScript, []string{DefaultKeyPrefix + "car:1"}, testToken).SetVal(int64(0))

	release, err := l.Acquire(context.Background(), "car:1")
	require.NoError(t, err)
	release()

	assert.NoError(t, mock.ExpectationsWereMet())
}
