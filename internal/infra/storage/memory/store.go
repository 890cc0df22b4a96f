package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// Store хранилище в памяти процесса
// Значения хранятся копиями, наружу отдаются тоже копии
type Store struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]domain.User
	cars     map[uuid.UUID]domain.Car
	bookings map[uuid.UUID]domain.Booking

	// txMu сериализует транзакции
	txMu sync.Mutex
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		users:    make(map[uuid.UUID]domain.User),
		cars:     make(map[uuid.UUID]domain.Car),
		bookings: make(map[uuid.UUID]domain.Booking),
	}
}

type journalKey struct{}

// journal список отмен для изменений, сделанных внутри транзакции
type journal struct {
	undo []func()
}

func journalFrom(ctx context.Context) (*journal, bool) {
	j, ok := ctx.Value(journalKey{}).(*journal)
	return j, ok
}

// record запоминает отмену изменения, если код выполняется в транзакции
// Вызывается под s.mu
func record(ctx context.Context, undo func()) {
	if j, ok := journalFrom(ctx); ok {
		j.undo = append(j.undo, undo)
	}
}

// rollback откатывает изменения транзакции в обратном порядке
func (s *Store) rollback(j *journal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(j.undo) - 1; i >= 0; i-- {
		j.undo[i]()
	}
	j.undo = nil
}
