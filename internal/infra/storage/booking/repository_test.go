package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/pkg/dbmetrics"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixtureBooking(t *testing.T) *domain.Booking {
	t.Helper()
	r, err := domain.NewDateRange(day(2028, 6, 1), day(2028, 6, 5))
	require.NoError(t, err)

	return &domain.Booking{
		ID: uuid.New(),
		User: domain.User{
			ID:      uuid.New(),
			Name:    "Alice",
			Email:   "alice@example.com",
			License: domain.DrivingLicense{Number: "AB123", ExpiryDate: day(2030, 1, 1)},
		},
		Car: domain.Car{
			ID:        uuid.New(),
			Brand:     "Toyota",
			Model:     "Corolla",
			PeakPrice: 9843,
			MidPrice:  7689,
			OffPrice:  5365,
		},
		Range:      r,
		TotalPrice: 49215,
		CreatedAt:  day(2028, 1, 1),
	}
}

func bookingRows(bookings ...*domain.Booking) *sqlmock.Rows {
	rows := sqlmock.NewRows(columns)
	for _, b := range bookings {
		rows.AddRow(
			b.ID.String(),
			b.User.ID.String(), b.User.Name, b.User.Email, b.User.License.Number, b.User.License.ExpiryDate,
			b.Car.ID.String(), b.Car.Brand, b.Car.Model,
			int64(b.Car.PeakPrice), int64(b.Car.MidPrice), int64(b.Car.OffPrice),
			b.Range.Start(), b.Range.End(),
			int64(b.TotalPrice),
			b.CreatedAt,
		)
	}
	return rows
}

func TestRepository_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	b := fixtureBooking(t)

	mock.ExpectExec(`INSERT INTO bookings \(id,user_id,user_name`).
		WithArgs(
			b.ID,
			b.User.ID, "Alice", "alice@example.com", "AB123", day(2030, 1, 1),
			b.Car.ID, "Toyota", "Corolla",
			int64(9843), int64(7689), int64(5365),
			day(2028, 6, 1), day(2028, 6, 5),
			int64(49215),
			b.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), b))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	b := fixtureBooking(t)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE id = \$1$`).
		WithArgs(b.ID).
		WillReturnRows(bookingRows(b))

	got, err := repo.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err = repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_GetByID_InvalidRange(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	b := fixtureBooking(t)

	rows := sqlmock.NewRows(columns).AddRow(
		b.ID.String(),
		b.User.ID.String(), "Alice", "alice@example.com", "AB123", day(2030, 1, 1),
		b.Car.ID.String(), "Toyota", "Corolla", 1, 1, 1,
		day(2028, 6, 5), day(2028, 6, 1),
		5, b.CreatedAt,
	)
	mock.ExpectQuery(`SELECT .+ FROM bookings`).WithArgs(b.ID).WillReturnRows(rows)

	_, err = repo.GetByID(context.Background(), b.ID)
	assert.ErrorIs(t, err, ErrInvalidRow)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestRepository_FindByCarAndRangeOverlap(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	b := fixtureBooking(t)
	requested, err := domain.NewDateRange(day(2028, 6, 5), day(2028, 6, 9))
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE car_id = \$1 AND start_date <= \$2 AND end_date >= \$3 ORDER BY start_date ASC$`).
		WithArgs(b.Car.ID, day(2028, 6, 9), day(2028, 6, 5)).
		WillReturnRows(bookingRows(b))

	got, err := repo.FindByCarAndRangeOverlap(context.Background(), b.Car.ID, requested)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByUserAndRangeOverlap_ForUpdateInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	userID := uuid.New()
	requested, err := domain.NewDateRange(day(2028, 6, 1), day(2028, 6, 5))
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE user_id = \$1 AND start_date <= \$2 AND end_date >= \$3 ORDER BY start_date ASC FOR UPDATE`).
		WithArgs(userID, day(2028, 6, 5), day(2028, 6, 1)).
		WillReturnRows(sqlmock.NewRows(columns))
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)

	got, err := repo.FindByUserAndRangeOverlap(dbmetrics.WithTx(context.Background(), tx), userID, requested)
	require.NoError(t, err)
	assert.Empty(t, got)
	require.NoError(t, tx.Rollback())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	b := fixtureBooking(t)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE user_id = \$1 ORDER BY start_date ASC, created_at ASC`).
		WithArgs(b.User.ID).
		WillReturnRows(bookingRows(b))

	got, err := repo.FindByUserID(context.Background(), b.User.ID)
	require.NoError(t, err)
	assert.Equal(t, []*domain.Booking{b}, got)
}

func TestRepository_FindByCarID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	carID := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE car_id = \$1 ORDER BY start_date ASC, created_at ASC`).
		WithArgs(carID).
		WillReturnRows(sqlmock.NewRows(columns))

	got, err := repo.FindByCarID(context.Background(), carID)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM bookings WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM bookings WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), id))
	assert.ErrorIs(t, repo.Delete(context.Background(), id), ErrBookingNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
