package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/booking"
)

// BookingRepository репозиторий бронирований в памяти
type BookingRepository struct {
	store *Store
}

func NewBookingRepository(store *Store) *BookingRepository {
	return &BookingRepository{store: store}
}

func (r *BookingRepository) Save(ctx context.Context, booking *domain.Booking) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id := booking.ID
	prev, existed := r.store.bookings[id]
	r.store.bookings[id] = *booking

	record(ctx, func() {
		if existed {
			r.store.bookings[id] = prev
		} else {
			delete(r.store.bookings, id)
		}
	})
	return nil
}

func (r *BookingRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	booking, ok := r.store.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return &booking, nil
}

func (r *BookingRepository) FindByUserAndRangeOverlap(_ context.Context, userID uuid.UUID, dateRange domain.DateRange) ([]*domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool {
		return b.User.ID == userID && b.Range.Overlaps(dateRange)
	}), nil
}

func (r *BookingRepository) FindByCarAndRangeOverlap(_ context.Context, carID uuid.UUID, dateRange domain.DateRange) ([]*domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool {
		return b.Car.ID == carID && b.Range.Overlaps(dateRange)
	}), nil
}

func (r *BookingRepository) FindByUserID(_ context.Context, userID uuid.UUID) ([]*domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool { return b.User.ID == userID }), nil
}

func (r *BookingRepository) FindByCarID(_ context.Context, carID uuid.UUID) ([]*domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool { return b.Car.ID == carID }), nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	prev, ok := r.store.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(r.store.bookings, id)

	record(ctx, func() { r.store.bookings[id] = prev })
	return nil
}

// filter возвращает копии подходящих бронирований, отсортированные по дате начала и времени создания
func (r *BookingRepository) filter(match func(b *domain.Booking) bool) []*domain.Booking {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.store.bookings {
		booking := b
		if match(&booking) {
			result = append(result, &booking)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		si, sj := result[i].Range.Start(), result[j].Range.Start()
		if !si.Equal(sj) {
			return si.Before(sj)
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result
}
