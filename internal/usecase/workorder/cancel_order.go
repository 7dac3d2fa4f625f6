package workorder

import (
	"context"

	"github.com/WorkshopSystems01/workshop-tracker/internal/audit"
	domain "github.com/WorkshopSystems01/workshop-tracker/internal/domain/workorder"
	"github.com/WorkshopSystems01/workshop-tracker/internal/httperr"
	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
	"github.com/WorkshopSystems01/workshop-tracker/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

type CancelOrder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelOrder(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelOrder {
	return &CancelOrder{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelOrder) Execute(
	ctx context.Context,
	branchID uint,
	userID uint,
	orderID uint,
) (*models.Order, error) {

	order, err := uc.repo.GetForBranch(ctx, orderID, branchID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, httperr.ErrBusiness("order_not_found")
	}

	if err := domain.Cancel(order, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.Save(ctx, order); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BranchID: branchID,
		UserID:   &userID,
		Action:   "order_cancelled",
		Entity:   "order",
		EntityID: &order.ID,
	})

	return order, nil
}
