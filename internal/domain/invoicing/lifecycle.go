package invoicing

import (
	"time"

	"github.com/WorkshopSystems01/workshop-tracker/internal/httperr"
	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
)

// ===============================
// Invoice Lifecycle
// ===============================

// Finalize promotes a draft to issued. An invoice with no line items
// cannot be issued.
func Finalize(inv *models.Invoice, now time.Time) error {
	if inv.Status != models.InvoiceStatusDraft {
		return httperr.ErrBusiness("invalid_state")
	}
	if len(inv.LineItems) == 0 {
		return httperr.ErrBusiness("empty_invoice")
	}

	inv.Status = models.InvoiceStatusIssued
	inv.InvoiceDate = now
	return nil
}

func Cancel(inv *models.Invoice) error {
	if inv.Status == models.InvoiceStatusCancelled {
		return httperr.ErrBusiness("invalid_state")
	}

	inv.Status = models.InvoiceStatusCancelled
	return nil
}

// CanEditItems limits line-item mutation to drafts.
func CanEditItems(inv *models.Invoice) error {
	if inv.Status != models.InvoiceStatusDraft {
		return httperr.ErrBusiness("invoice_not_draft")
	}
	return nil
}
