package workorder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WorkshopSystems01/workshop-tracker/internal/httperr"
	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
)

type fakeOrderRepo struct {
	orders    []*models.Order
	saveCalls int
}

func (f *fakeOrderRepo) GetForBranch(_ context.Context, orderID uint, branchID uint) (*models.Order, error) {
	for _, o := range f.orders {
		if o.ID == orderID && o.BranchID == branchID {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) ListByDateRange(_ context.Context, branchID uint, from, to time.Time) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.BranchID == branchID && !o.CreatedAt.Before(from) && o.CreatedAt.Before(to) {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) Save(_ context.Context, _ *models.Order) error {
	f.saveCalls++
	return nil
}

func TestCompleteOrder(t *testing.T) {
	created := time.Now().Add(-95 * time.Minute)
	order := &models.Order{ID: 1, BranchID: 1, Status: "created", CreatedAt: created, EstimatedDurationMin: 60}
	repo := &fakeOrderRepo{orders: []*models.Order{order}}

	uc := NewCompleteOrder(repo, nil)

	got, err := uc.Execute(context.Background(), 1, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)
	require.NotNil(t, got.CompletedAt)
	require.NotNil(t, got.ActualDurationMin)
	assert.Equal(t, 95, *got.ActualDurationMin)
	assert.Equal(t, 1, repo.saveCalls)
}

func TestCompleteOrderInvalidState(t *testing.T) {
	order := &models.Order{ID: 1, BranchID: 1, Status: "cancelled"}
	repo := &fakeOrderRepo{orders: []*models.Order{order}}

	uc := NewCompleteOrder(repo, nil)

	_, err := uc.Execute(context.Background(), 1, 10, 1)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Equal(t, 0, repo.saveCalls)
}

func TestCancelOrder(t *testing.T) {
	order := &models.Order{ID: 1, BranchID: 1, Status: "in_progress"}
	repo := &fakeOrderRepo{orders: []*models.Order{order}}

	uc := NewCancelOrder(repo, nil)

	got, err := uc.Execute(context.Background(), 1, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", got.Status)
	require.NotNil(t, got.CancelledAt)
}

func TestCancelOrderNotFound(t *testing.T) {
	uc := NewCancelOrder(&fakeOrderRepo{}, nil)

	_, err := uc.Execute(context.Background(), 1, 10, 42)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "order_not_found"))
}

func TestListOrdersByDate(t *testing.T) {
	loc, _ := time.LoadLocation("Africa/Dar_es_Salaam")
	inDay := time.Date(2026, 3, 10, 14, 0, 0, 0, loc)
	outOfDay := time.Date(2026, 3, 11, 1, 0, 0, 0, loc)

	repo := &fakeOrderRepo{orders: []*models.Order{
		{ID: 1, BranchID: 1, CreatedAt: inDay},
		{ID: 2, BranchID: 1, CreatedAt: outOfDay},
		{ID: 3, BranchID: 2, CreatedAt: inDay},
	}}

	uc := NewListOrdersByDate(repo)

	orders, err := uc.Execute(context.Background(), 1, "2026-03-10", "Africa/Dar_es_Salaam")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, uint(1), orders[0].ID)

	_, err = uc.Execute(context.Background(), 1, "10/03/2026", "")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestOrderMetrics(t *testing.T) {
	created := time.Now().Add(-2 * time.Hour)
	done := created.Add(90 * time.Minute)
	order := &models.Order{
		ID:                   1,
		BranchID:             1,
		Status:               "completed",
		CreatedAt:            created,
		CompletedAt:          &done,
		EstimatedDurationMin: 60,
	}
	repo := &fakeOrderRepo{orders: []*models.Order{order}}

	uc := NewOrderMetrics(repo)

	m, err := uc.Execute(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 60, m.EstimatedDurationMin)
	require.NotNil(t, m.ActualDurationMin)
	assert.Equal(t, 90, *m.ActualDurationMin)
	require.NotNil(t, m.Variance)
	assert.True(t, m.Variance.IsOverrun)
	assert.False(t, m.ETAMet)
}
