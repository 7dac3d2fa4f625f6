package linkage

import (
	"context"
	"fmt"

	"github.com/WorkshopSystems01/workshop-tracker/internal/audit"
	domain "github.com/WorkshopSystems01/workshop-tracker/internal/domain/linkage"
	"github.com/WorkshopSystems01/workshop-tracker/internal/httperr"
	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
)

// ======================================================
// RESULT
// ======================================================

type ReconcileResult struct {
	Action      domain.Action
	Customer    *models.Customer
	RedirectURL string
	Message     string
}

// ======================================================
// USE CASE
// ======================================================

// ReconcileOrder repoints an order at a newly identified customer when
// the current one is temporary or different. Divergence is always
// surfaced as a redirect — extracted data is never merged into another
// customer's record.
type ReconcileOrder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReconcileOrder(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ReconcileOrder {
	return &ReconcileOrder{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ReconcileOrder) Execute(
	ctx context.Context,
	branchID uint,
	userID uint,
	orderID uint,
	newCustomerID uint,
) (*ReconcileResult, error) {

	order, err := uc.repo.GetOrderForBranch(ctx, orderID, branchID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, httperr.ErrBusiness("order_not_found")
	}

	identified, err := uc.repo.GetCustomerByID(ctx, branchID, newCustomerID)
	if err != nil {
		return nil, err
	}
	if identified == nil {
		return nil, httperr.ErrBusiness("customer_not_found")
	}

	decision := domain.Decide(&order.Customer, identified)
	if decision.Action == domain.ActionNoChange {
		return &ReconcileResult{
			Action:   domain.ActionNoChange,
			Customer: identified,
		}, nil
	}

	// Repoint, never merge. The previous customer record stays intact;
	// a link event answers "why did this order's customer change?".
	if err := uc.repo.RelinkOrderCustomer(ctx, order.ID, identified.ID); err != nil {
		return nil, err
	}

	if err := uc.repo.RecordLinkEvent(ctx, &models.CustomerLinkEvent{
		BranchID:           branchID,
		OrderID:            order.ID,
		PreviousCustomerID: order.CustomerID,
		NewCustomerID:      identified.ID,
		Reason:             decision.Reason,
	}); err != nil {
		return nil, err
	}

	// The plate follows the order: its vehicle now belongs to the
	// identified customer.
	if order.VehicleID != nil {
		if err := uc.repo.ReassignVehicleOwner(ctx, *order.VehicleID, identified.ID); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		BranchID: branchID,
		UserID:   &userID,
		Action:   "order_relinked",
		Entity:   "order",
		EntityID: &order.ID,
		Metadata: map[string]any{
			"previous_customer_id": order.CustomerID,
			"new_customer_id":      identified.ID,
			"reason":               decision.Reason,
		},
	})

	return &ReconcileResult{
		Action:      domain.ActionRelinkAndRedirect,
		Customer:    identified,
		RedirectURL: fmt.Sprintf("/customers/%d", identified.ID),
		Message:     fmt.Sprintf("Order %s is now linked to %s. Continuing on their profile.", order.Number(), identified.FullName),
	}, nil
}
