package car

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CarRentalService/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"brand",
	"model",
	"stock",
	"peak_price_cents",
	"mid_price_cents",
	"off_price_cents",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с автомобилями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория автомобилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает автомобиль по ID
// Внутри транзакции строка блокируется (FOR UPDATE), чтобы остаток не изменился до коммита
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("cars").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	car, err := scanCar(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan car: %w", ErrScanRow, err)
	}

	return car, nil
}

// FindAll возвращает все автомобили, отсортированные по марке и модели
func (r *Repository) FindAll(ctx context.Context) ([]*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("cars").
		OrderBy("brand ASC", "model ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindAll - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	cars := make([]*domain.Car, 0)
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: FindAll - scan car: %w", ErrScanRow, err)
		}
		cars = append(cars, car)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindAll - rows iteration: %w", ErrScanRow, err)
	}

	return cars, nil
}

// Save создает автомобиль или обновляет существующий (по ID)
func (r *Repository) Save(ctx context.Context, car *domain.Car) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cars").
		Columns(columns...).
		Values(
			car.ID,
			car.Brand,
			car.Model,
			car.Stock,
			int64(car.PeakPrice),
			int64(car.MidPrice),
			int64(car.OffPrice),
			car.CreatedAt,
			car.UpdatedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			brand = EXCLUDED.brand,
			model = EXCLUDED.model,
			stock = EXCLUDED.stock,
			peak_price_cents = EXCLUDED.peak_price_cents,
			mid_price_cents = EXCLUDED.mid_price_cents,
			off_price_cents = EXCLUDED.off_price_cents,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %w", ErrExecQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCar(row rowScanner) (*domain.Car, error) {
	var (
		car                  domain.Car
		peak, mid, off       int64
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&car.ID,
		&car.Brand,
		&car.Model,
		&car.Stock,
		&peak,
		&mid,
		&off,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	car.PeakPrice = domain.Money(peak)
	car.MidPrice = domain.Money(mid)
	car.OffPrice = domain.Money(off)
	car.CreatedAt = createdAt.Time
	car.UpdatedAt = updatedAt.Time

	return &car, nil
}
