package studio

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiosnap/backend/internal/domain/shared"
	"github.com/studiosnap/backend/internal/domain/studio"
)

func TestExpenseService_Create(t *testing.T) {
	repo := newMemExpenseRepo()
	publisher := &capturingPublisher{}
	svc := NewExpenseService(repo, publisher)
	tenantID := uuid.New()

	resp, err := svc.Create(context.Background(), tenantID, CreateExpenseRequest{
		Category:    "Travel",
		Description: "Outstation shoot fuel",
		Amount:      decimal.NewFromInt(3200),
		Method:      "Cash",
		ExpenseDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "Travel", resp.Category)
	assert.Equal(t, studio.ExpenseSourceManual, resp.Source)
	assert.Nil(t, resp.SourceID)

	event := publisher.lastSourceChange()
	require.NotNil(t, event)
	assert.Equal(t, studio.TableExpenses, event.Table)
	assert.Equal(t, studio.ChangeActionCreated, event.Action)
}

func TestExpenseService_Update_RejectsMirrorRow(t *testing.T) {
	repo := newMemExpenseRepo()
	svc := NewExpenseService(repo, &capturingPublisher{})
	tenantID := uuid.New()

	sourceID := uuid.New()
	mirror, err := studio.NewMirroredExpense(tenantID, "Staff Payments", "Payout to Arjun Pillai",
		decimal.NewFromInt(18000), "Cash", time.Now(), studio.ExpenseSourceStaff, sourceID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), mirror))

	category := "Rent"
	_, err = svc.Update(context.Background(), tenantID, mirror.ID, UpdateExpenseRequest{
		Category: &category,
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_ALLOWED", domainErr.Code)
}

func TestExpenseService_Delete_RejectsMirrorRow(t *testing.T) {
	repo := newMemExpenseRepo()
	svc := NewExpenseService(repo, &capturingPublisher{})
	tenantID := uuid.New()

	sourceID := uuid.New()
	mirror, err := studio.NewMirroredExpense(tenantID, "Freelancer Payments", "Payout to Divya Menon",
		decimal.NewFromInt(6500), "Cash", time.Now(), studio.ExpenseSourceFreelancer, sourceID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), mirror))

	err = svc.Delete(context.Background(), tenantID, mirror.ID)
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_ALLOWED", domainErr.Code)
	assert.Len(t, repo.items, 1)
}

func TestExpenseService_Delete_ManualRow(t *testing.T) {
	repo := newMemExpenseRepo()
	publisher := &capturingPublisher{}
	svc := NewExpenseService(repo, publisher)
	tenantID := uuid.New()

	created, err := svc.Create(context.Background(), tenantID, CreateExpenseRequest{
		Category:    "Rent",
		Amount:      decimal.NewFromInt(25000),
		ExpenseDate: time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), tenantID, created.ID))
	assert.Empty(t, repo.items)

	event := publisher.lastSourceChange()
	require.NotNil(t, event)
	assert.Equal(t, studio.ChangeActionDeleted, event.Action)
}
