package invoice

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/WorkshopSystems01/workshop-tracker/internal/audit"
	domain "github.com/WorkshopSystems01/workshop-tracker/internal/domain/invoicing"
	"github.com/WorkshopSystems01/workshop-tracker/internal/httperr"
	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type AddItemInput struct {
	BranchID  uint
	UserID    uint
	InvoiceID uint

	ItemCode    string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// ======================================================
// USE CASE
// ======================================================

// ManageItems adds and removes draft line items, recomputing the
// invoice totals after every change.
type ManageItems struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewManageItems(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ManageItems {
	return &ManageItems{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ManageItems) AddItem(
	ctx context.Context,
	in AddItemInput,
) (*models.Invoice, error) {

	inv, err := uc.repo.GetForBranch(ctx, in.InvoiceID, in.BranchID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, httperr.ErrBusiness("invoice_not_found")
	}
	if err := domain.CanEditItems(inv); err != nil {
		return nil, err
	}

	if in.Description == "" {
		return nil, httperr.ErrBusiness("description_required")
	}

	qty := in.Quantity
	if !qty.IsPositive() {
		qty = decimal.NewFromInt(1)
	}

	item := &models.InvoiceLineItem{
		InvoiceID:   inv.ID,
		ItemCode:    in.ItemCode,
		Description: in.Description,
		Quantity:    qty,
		UnitPrice:   in.UnitPrice,
		LineTotal:   qty.Mul(in.UnitPrice).Round(2),
	}
	if err := uc.repo.AddLineItem(ctx, item); err != nil {
		return nil, err
	}

	return uc.recalculate(ctx, in.BranchID, in.UserID, inv, "invoice_item_added")
}

func (uc *ManageItems) DeleteItem(
	ctx context.Context,
	branchID uint,
	userID uint,
	invoiceID uint,
	itemID uint,
) (*models.Invoice, error) {

	inv, err := uc.repo.GetForBranch(ctx, invoiceID, branchID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, httperr.ErrBusiness("invoice_not_found")
	}
	if err := domain.CanEditItems(inv); err != nil {
		return nil, err
	}

	if err := uc.repo.DeleteLineItem(ctx, inv.ID, itemID); err != nil {
		return nil, err
	}

	return uc.recalculate(ctx, branchID, userID, inv, "invoice_item_removed")
}

func (uc *ManageItems) recalculate(
	ctx context.Context,
	branchID uint,
	userID uint,
	inv *models.Invoice,
	action string,
) (*models.Invoice, error) {

	items, err := uc.repo.ListLineItems(ctx, inv.ID)
	if err != nil {
		return nil, err
	}

	inv.LineItems = items
	inv.CalculateTotals(items)

	if err := uc.repo.Save(ctx, inv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BranchID: branchID,
		UserID:   &userID,
		Action:   action,
		Entity:   "invoice",
		EntityID: &inv.ID,
	})

	return inv, nil
}
