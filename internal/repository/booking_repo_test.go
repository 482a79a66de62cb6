package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/godownhub/marketplace/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

// The transition path relies on the read actually taking a row lock; the
// expectation only matches a SELECT carrying the locking clause.
func TestFindByIDForUpdate_EmitsRowLock(t *testing.T) {
	gdb, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "warehouse_id", "merchant_id", "status"}).
		AddRow(101, 8, 21, "PENDING")
	mock.ExpectQuery(`SELECT .* FROM "bookings" .*FOR UPDATE`).WillReturnRows(rows)

	repo := NewBookingRepository(gdb)
	booking, err := repo.FindByIDForUpdate(context.Background(), gdb, 101)

	require.NoError(t, err)
	assert.Equal(t, uint(101), booking.ID)
	assert.Equal(t, models.StatusPending, booking.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
