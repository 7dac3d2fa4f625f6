package invoice

import (
	"context"

	"github.com/WorkshopSystems01/workshop-tracker/internal/audit"
	domain "github.com/WorkshopSystems01/workshop-tracker/internal/domain/invoicing"
	"github.com/WorkshopSystems01/workshop-tracker/internal/httperr"
	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
	"github.com/WorkshopSystems01/workshop-tracker/internal/timezone"
)

// ======================================================
// FINALIZE
// ======================================================

type FinalizeInvoice struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewFinalizeInvoice(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *FinalizeInvoice {
	return &FinalizeInvoice{
		repo:  repo,
		audit: audit,
	}
}

func (uc *FinalizeInvoice) Execute(
	ctx context.Context,
	branchID uint,
	userID uint,
	invoiceID uint,
) (*models.Invoice, error) {

	inv, err := uc.repo.GetForBranch(ctx, invoiceID, branchID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, httperr.ErrBusiness("invoice_not_found")
	}

	if err := domain.Finalize(inv, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.Save(ctx, inv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BranchID: branchID,
		UserID:   &userID,
		Action:   "invoice_issued",
		Entity:   "invoice",
		EntityID: &inv.ID,
	})

	return inv, nil
}

// ======================================================
// CANCEL
// ======================================================

type CancelInvoice struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelInvoice(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelInvoice {
	return &CancelInvoice{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelInvoice) Execute(
	ctx context.Context,
	branchID uint,
	userID uint,
	invoiceID uint,
) (*models.Invoice, error) {

	inv, err := uc.repo.GetForBranch(ctx, invoiceID, branchID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, httperr.ErrBusiness("invoice_not_found")
	}

	if err := domain.Cancel(inv); err != nil {
		return nil, err
	}

	if err := uc.repo.Save(ctx, inv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BranchID: branchID,
		UserID:   &userID,
		Action:   "invoice_cancelled",
		Entity:   "invoice",
		EntityID: &inv.ID,
	})

	return inv, nil
}

// ======================================================
// RECENT LIST
// ======================================================

type ListRecentInvoices struct {
	repo domain.Repository
}

func NewListRecentInvoices(repo domain.Repository) *ListRecentInvoices {
	return &ListRecentInvoices{repo: repo}
}

func (uc *ListRecentInvoices) Execute(
	ctx context.Context,
	branchID uint,
	limit int,
) ([]models.Invoice, error) {
	return uc.repo.ListRecent(ctx, branchID, limit)
}
