package workorder

import (
	"context"

	domain "github.com/WorkshopSystems01/workshop-tracker/internal/domain/workorder"
	"github.com/WorkshopSystems01/workshop-tracker/internal/eta"
	"github.com/WorkshopSystems01/workshop-tracker/internal/httperr"
)

// ======================================================
// USE CASE
// ======================================================

type OrderMetrics struct {
	repo domain.Repository
}

func NewOrderMetrics(repo domain.Repository) *OrderMetrics {
	return &OrderMetrics{repo: repo}
}

func (uc *OrderMetrics) Execute(
	ctx context.Context,
	branchID uint,
	orderID uint,
) (*eta.Metrics, error) {

	order, err := uc.repo.GetForBranch(ctx, orderID, branchID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, httperr.ErrBusiness("order_not_found")
	}

	m := eta.OrderMetrics(order.CreatedAt, order.CompletedAt, order.EstimatedDurationMin)
	return &m, nil
}
