package user

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

var userColumns = []string{"id", "name", "email", "license_number", "license_expiry", "created_at", "updated_at"}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()
	expiry := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT id, name, email, license_number, license_expiry, created_at, updated_at FROM users WHERE id = \$1$`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(id.String(), "Alice", "alice@example.com", "AB123", expiry, now, now))

	user, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, id, user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, domain.DrivingLicense{Number: "AB123", ExpiryDate: expiry}, user.License)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM users WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err = repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRepository_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now().UTC()
	user := &domain.User{
		ID:        uuid.New(),
		Name:      "Alice",
		Email:     "alice@example.com",
		License:   domain.DrivingLicense{Number: "AB123", ExpiryDate: now.AddDate(2, 0, 0)},
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec(`INSERT INTO users .+ ON CONFLICT \(id\) DO UPDATE SET`).
		WithArgs(user.ID, "Alice", "alice@example.com", "AB123", user.License.ExpiryDate, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), user))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), id))
	assert.ErrorIs(t, repo.Delete(context.Background(), id), ErrUserNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
