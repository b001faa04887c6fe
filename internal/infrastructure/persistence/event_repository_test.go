package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/studiosnap/backend/internal/domain/shared"
)

// newMockEventRepository creates a GormEventRepository with a mocked SQL connection
func newMockEventRepository(t *testing.T) (*GormEventRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormEventRepository(gormDB), mock, mockDB
}

func TestGormEventRepository_FindByIDForTenant(t *testing.T) {
	t.Run("finds existing booking", func(t *testing.T) {
		repo, mock, mockDB := newMockEventRepository(t)
		defer mockDB.Close()

		eventID := uuid.New()
		tenantID := uuid.New()
		eventDate := time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows([]string{"id", "tenant_id", "client_name", "event_type", "event_date", "total_amount", "advance_amount"}).
			AddRow(eventID, tenantID, "Asha Verma", "Wedding", eventDate, decimal.NewFromInt(85000), decimal.NewFromInt(25000))

		mock.ExpectQuery(`SELECT \* FROM "events" WHERE tenant_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, eventID, 1).
			WillReturnRows(rows)

		event, err := repo.FindByIDForTenant(context.Background(), tenantID, eventID)

		assert.NoError(t, err)
		require.NotNil(t, event)
		assert.Equal(t, "Asha Verma", event.ClientName)
		assert.True(t, event.TotalAmount.Equal(decimal.NewFromInt(85000)))
		assert.True(t, event.BalanceDue().Equal(decimal.NewFromInt(60000)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("does not leak bookings across tenants", func(t *testing.T) {
		repo, mock, mockDB := newMockEventRepository(t)
		defer mockDB.Close()

		eventID := uuid.New()
		otherTenant := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "events" WHERE tenant_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(otherTenant, eventID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		event, err := repo.FindByIDForTenant(context.Background(), otherTenant, eventID)

		assert.Nil(t, event)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormEventRepository_FindAllForTenant(t *testing.T) {
	t.Run("rejects unlisted sort field", func(t *testing.T) {
		repo, mock, mockDB := newMockEventRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()

		// An unknown order_by must fall back to the default column
		mock.ExpectQuery(`SELECT \* FROM "events" WHERE tenant_id = \$1 ORDER BY event_date DESC LIMIT .*`).
			WithArgs(tenantID, 20).
			WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "client_name", "event_date", "total_amount", "advance_amount"}))

		filter := shared.DefaultFilter()
		filter.OrderBy = "total_amount; DROP TABLE events"

		events, err := repo.FindAllForTenant(context.Background(), tenantID, filter)

		assert.NoError(t, err)
		assert.Empty(t, events)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("applies search and pagination", func(t *testing.T) {
		repo, mock, mockDB := newMockEventRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "events" WHERE tenant_id = \$1 AND \(client_name ILIKE \$2 OR venue ILIKE \$3\) ORDER BY event_date DESC LIMIT \$4 OFFSET \$5`).
			WithArgs(tenantID, "%Asha%", "%Asha%", 10, 10).
			WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "client_name", "event_date", "total_amount", "advance_amount"}))

		filter := shared.Filter{Page: 2, PageSize: 10, Search: "Asha", OrderDir: "desc"}

		_, err := repo.FindAllForTenant(context.Background(), tenantID, filter)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormEventRepository_FindInWindow(t *testing.T) {
	repo, mock, mockDB := newMockEventRepository(t)
	defer mockDB.Close()

	tenantID := uuid.New()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "tenant_id", "client_name", "event_date", "total_amount", "advance_amount"}).
		AddRow(uuid.New(), tenantID, "Rohan Mehta", from.AddDate(0, 2, 0), decimal.NewFromInt(40000), decimal.NewFromInt(10000))

	mock.ExpectQuery(`SELECT \* FROM "events" WHERE tenant_id = \$1 AND event_date >= \$2 ORDER BY event_date ASC`).
		WithArgs(tenantID, from).
		WillReturnRows(rows)

	events, err := repo.FindInWindow(context.Background(), tenantID, &from, nil)

	assert.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Rohan Mehta", events[0].ClientName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
