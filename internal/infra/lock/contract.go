package lock

import (
	"context"
	"sort"

	"github.com/google/uuid"
)

// Locker сериализует операции по ключам (car:<id>, user:<id>)
// Acquire берёт все ключи в отсортированном порядке, чтобы исключить взаимную блокировку
type Locker interface {
	Acquire(ctx context.Context, keys ...string) (ReleaseFunc, error)
}

// ReleaseFunc освобождает все ключи, взятые одним вызовом Acquire
type ReleaseFunc func()

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CarKey ключ блокировки автомобиля
func CarKey(id uuid.UUID) string {
	return "car:" + id.String()
}

// UserKey ключ блокировки пользователя
func UserKey(id uuid.UUID) string {
	return "user:" + id.String()
}

// normalizeKeys сортирует ключи и убирает дубликаты
func normalizeKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
