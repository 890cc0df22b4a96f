package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	carRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/car"
)

// CarRepository репозиторий автомобилей в памяти
type CarRepository struct {
	store *Store
}

func NewCarRepository(store *Store) *CarRepository {
	return &CarRepository{store: store}
}

func (r *CarRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Car, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	car, ok := r.store.cars[id]
	if !ok {
		return nil, carRepo.ErrCarNotFound
	}
	return &car, nil
}

// FindAll возвращает все автомобили в том же порядке, что и PostgreSQL: марка, модель, id
func (r *CarRepository) FindAll(_ context.Context) ([]*domain.Car, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cars := make([]*domain.Car, 0, len(r.store.cars))
	for _, c := range r.store.cars {
		car := c
		cars = append(cars, &car)
	}

	sort.Slice(cars, func(i, j int) bool {
		if cars[i].Brand != cars[j].Brand {
			return cars[i].Brand < cars[j].Brand
		}
		if cars[i].Model != cars[j].Model {
			return cars[i].Model < cars[j].Model
		}
		return cars[i].ID.String() < cars[j].ID.String()
	})

	return cars, nil
}

func (r *CarRepository) Save(ctx context.Context, car *domain.Car) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id := car.ID
	prev, existed := r.store.cars[id]
	r.store.cars[id] = *car

	record(ctx, func() {
		if existed {
			r.store.cars[id] = prev
		} else {
			delete(r.store.cars, id)
		}
	})
	return nil
}
