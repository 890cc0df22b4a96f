package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CarRentalService/pkg/psqlbuilder"
)

// Бронирование хранит снимок пользователя и автомобиля на момент создания
var columns = []string{
	"id",
	"user_id",
	"user_name",
	"user_email",
	"license_number",
	"license_expiry",
	"car_id",
	"car_brand",
	"car_model",
	"car_peak_price_cents",
	"car_mid_price_cents",
	"car_off_price_cents",
	"start_date",
	"end_date",
	"total_price_cents",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Save сохраняет новое бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Save(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(columns...).
		Values(
			booking.ID,
			booking.User.ID,
			booking.User.Name,
			booking.User.Email,
			booking.User.License.Number,
			booking.User.License.ExpiryDate,
			booking.Car.ID,
			booking.Car.Brand,
			booking.Car.Model,
			int64(booking.Car.PeakPrice),
			int64(booking.Car.MidPrice),
			int64(booking.Car.OffPrice),
			booking.Range.Start(),
			booking.Range.End(),
			int64(booking.TotalPrice),
			booking.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE) для отмены
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// FindByUserAndRangeOverlap возвращает бронирования пользователя, пересекающиеся с периодом
func (r *Repository) FindByUserAndRangeOverlap(ctx context.Context, userID uuid.UUID, dateRange domain.DateRange) ([]*domain.Booking, error) {
	return r.findOverlapping(ctx, "FindByUserAndRangeOverlap", squirrel.Eq{"user_id": userID}, dateRange)
}

// FindByCarAndRangeOverlap возвращает бронирования автомобиля, пересекающиеся с периодом
func (r *Repository) FindByCarAndRangeOverlap(ctx context.Context, carID uuid.UUID, dateRange domain.DateRange) ([]*domain.Booking, error) {
	return r.findOverlapping(ctx, "FindByCarAndRangeOverlap", squirrel.Eq{"car_id": carID}, dateRange)
}

// FindByUserID возвращает все бронирования пользователя (сначала ближайшие)
func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error) {
	return r.find(ctx, "FindByUserID", psqlbuilder.Select(columns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("start_date ASC", "created_at ASC"))
}

// FindByCarID возвращает все бронирования автомобиля (сначала ближайшие)
func (r *Repository) FindByCarID(ctx context.Context, carID uuid.UUID) ([]*domain.Booking, error) {
	return r.find(ctx, "FindByCarID", psqlbuilder.Select(columns...).
		From("bookings").
		Where(squirrel.Eq{"car_id": carID}).
		OrderBy("start_date ASC", "created_at ASC"))
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// findOverlapping выбирает бронирования по фильтру, пересекающиеся с периодом (границы включительно)
// Если используется транзакция, добавляем FOR UPDATE для блокировки найденных строк
func (r *Repository) findOverlapping(ctx context.Context, op string, filter squirrel.Eq, dateRange domain.DateRange) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From("bookings").
		Where(filter).
		Where(squirrel.LtOrEq{"start_date": dateRange.End()}).
		Where(squirrel.GtOrEq{"end_date": dateRange.Start()}).
		OrderBy("start_date ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return r.find(ctx, op, selectBuilder)
}

func (r *Repository) find(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan booking: %w", ErrScanRow, op, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %w", ErrScanRow, op, err)
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking            domain.Booking
		peak, mid, off     int64
		startDate, endDate time.Time
		totalPrice         int64
	)

	err := row.Scan(
		&booking.ID,
		&booking.User.ID,
		&booking.User.Name,
		&booking.User.Email,
		&booking.User.License.Number,
		&booking.User.License.ExpiryDate,
		&booking.Car.ID,
		&booking.Car.Brand,
		&booking.Car.Model,
		&peak,
		&mid,
		&off,
		&startDate,
		&endDate,
		&totalPrice,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	dateRange, err := domain.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: booking %s: %w", ErrInvalidRow, booking.ID, err)
	}

	booking.Car.PeakPrice = domain.Money(peak)
	booking.Car.MidPrice = domain.Money(mid)
	booking.Car.OffPrice = domain.Money(off)
	booking.Range = dateRange
	booking.TotalPrice = domain.Money(totalPrice)

	return &booking, nil
}
