package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	userRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/user"
)

// UserRepository репозиторий пользователей в памяти
// Возвращает те же ошибки, что и репозиторий PostgreSQL
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return &user, nil
}

func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id := user.ID
	prev, existed := r.store.users[id]
	r.store.users[id] = *user

	record(ctx, func() {
		if existed {
			r.store.users[id] = prev
		} else {
			delete(r.store.users, id)
		}
	})
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	prev, ok := r.store.users[id]
	if !ok {
		return userRepo.ErrUserNotFound
	}
	delete(r.store.users, id)

	record(ctx, func() { r.store.users[id] = prev })
	return nil
}
