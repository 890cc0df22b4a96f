package lock

import "errors"

var (
	// ErrLockTimeout возвращается, когда ключ не удалось взять за отведённое время
	ErrLockTimeout = errors.New("lock: timed out waiting for lock")

	// ErrLockBackend возвращается при ошибках Redis
	ErrLockBackend = errors.New("lock: backend error")
)
