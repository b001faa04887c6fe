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
	"github.com/studiosnap/backend/internal/domain/studio"
)

// newMockExpenseRepository creates a GormExpenseRepository with a mocked SQL connection
func newMockExpenseRepository(t *testing.T) (*GormExpenseRepository, sqlmock.Sqlmock, *sql.DB) {
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

	return NewGormExpenseRepository(gormDB), mock, mockDB
}

func TestGormExpenseRepository_FindByIDForTenant(t *testing.T) {
	t.Run("finds existing expense", func(t *testing.T) {
		repo, mock, mockDB := newMockExpenseRepository(t)
		defer mockDB.Close()

		expenseID := uuid.New()
		tenantID := uuid.New()
		expenseDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows([]string{"id", "tenant_id", "category", "amount", "method", "expense_date", "source"}).
			AddRow(expenseID, tenantID, "Travel", decimal.NewFromInt(1200), "Cash", expenseDate, studio.ExpenseSourceManual)

		mock.ExpectQuery(`SELECT \* FROM "expenses" WHERE tenant_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, expenseID, 1).
			WillReturnRows(rows)

		expense, err := repo.FindByIDForTenant(context.Background(), tenantID, expenseID)

		assert.NoError(t, err)
		require.NotNil(t, expense)
		assert.Equal(t, expenseID, expense.ID)
		assert.Equal(t, "Travel", expense.Category)
		assert.True(t, expense.Amount.Equal(decimal.NewFromInt(1200)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing expense", func(t *testing.T) {
		repo, mock, mockDB := newMockExpenseRepository(t)
		defer mockDB.Close()

		expenseID := uuid.New()
		tenantID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "expenses" WHERE tenant_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, expenseID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		expense, err := repo.FindByIDForTenant(context.Background(), tenantID, expenseID)

		assert.Nil(t, expense)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormExpenseRepository_FindInWindow(t *testing.T) {
	t.Run("applies both bounds", func(t *testing.T) {
		repo, mock, mockDB := newMockExpenseRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 6, 30, 23, 59, 59, 999000000, time.UTC)

		rows := sqlmock.NewRows([]string{"id", "tenant_id", "category", "amount", "expense_date", "source"}).
			AddRow(uuid.New(), tenantID, "Rent", decimal.NewFromInt(15000), from.AddDate(0, 0, 4), studio.ExpenseSourceManual).
			AddRow(uuid.New(), tenantID, "Travel", decimal.NewFromInt(900), from.AddDate(0, 0, 10), studio.ExpenseSourceManual)

		mock.ExpectQuery(`SELECT \* FROM "expenses" WHERE tenant_id = \$1 AND expense_date >= \$2 AND expense_date <= \$3 ORDER BY expense_date ASC`).
			WithArgs(tenantID, from, to).
			WillReturnRows(rows)

		expenses, err := repo.FindInWindow(context.Background(), tenantID, &from, &to)

		assert.NoError(t, err)
		assert.Len(t, expenses, 2)
		assert.Equal(t, "Rent", expenses[0].Category)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil bounds query only by tenant", func(t *testing.T) {
		repo, mock, mockDB := newMockExpenseRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "expenses" WHERE tenant_id = \$1 ORDER BY expense_date ASC`).
			WithArgs(tenantID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "category", "amount", "expense_date", "source"}))

		expenses, err := repo.FindInWindow(context.Background(), tenantID, nil, nil)

		assert.NoError(t, err)
		assert.Empty(t, expenses)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormExpenseRepository_DeleteForTenant(t *testing.T) {
	t.Run("deletes existing expense", func(t *testing.T) {
		repo, mock, mockDB := newMockExpenseRepository(t)
		defer mockDB.Close()

		expenseID := uuid.New()
		tenantID := uuid.New()

		mock.ExpectExec(`DELETE FROM "expenses" WHERE tenant_id = \$1 AND id = \$2`).
			WithArgs(tenantID, expenseID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteForTenant(context.Background(), tenantID, expenseID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound when nothing deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockExpenseRepository(t)
		defer mockDB.Close()

		expenseID := uuid.New()
		tenantID := uuid.New()

		mock.ExpectExec(`DELETE FROM "expenses" WHERE tenant_id = \$1 AND id = \$2`).
			WithArgs(tenantID, expenseID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteForTenant(context.Background(), tenantID, expenseID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormExpenseRepository_DeleteBySource(t *testing.T) {
	t.Run("removes payroll mirror row", func(t *testing.T) {
		repo, mock, mockDB := newMockExpenseRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		sourceID := uuid.New()

		mock.ExpectExec(`DELETE FROM "expenses" WHERE tenant_id = \$1 AND source = \$2 AND source_id = \$3`).
			WithArgs(tenantID, studio.ExpenseSourceStaff, sourceID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteBySource(context.Background(), tenantID, studio.ExpenseSourceStaff, sourceID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing mirror row is not an error", func(t *testing.T) {
		repo, mock, mockDB := newMockExpenseRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		sourceID := uuid.New()

		mock.ExpectExec(`DELETE FROM "expenses" WHERE tenant_id = \$1 AND source = \$2 AND source_id = \$3`).
			WithArgs(tenantID, studio.ExpenseSourceFreelancer, sourceID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteBySource(context.Background(), tenantID, studio.ExpenseSourceFreelancer, sourceID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormExpenseRepository_CountForTenant(t *testing.T) {
	repo, mock, mockDB := newMockExpenseRepository(t)
	defer mockDB.Close()

	tenantID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "expenses" WHERE tenant_id = \$1`).
		WithArgs(tenantID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountForTenant(context.Background(), tenantID, shared.Filter{})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
