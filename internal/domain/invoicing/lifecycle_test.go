package invoicing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WorkshopSystems01/workshop-tracker/internal/httperr"
	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
)

func TestFinalizeDraftWithItems(t *testing.T) {
	inv := &models.Invoice{
		Status:    models.InvoiceStatusDraft,
		LineItems: []models.InvoiceLineItem{{Description: "Oil change"}},
	}

	now := time.Now()
	require.NoError(t, Finalize(inv, now))
	assert.Equal(t, models.InvoiceStatusIssued, inv.Status)
	assert.Equal(t, now, inv.InvoiceDate)
}

func TestFinalizeRejectsEmptyInvoice(t *testing.T) {
	inv := &models.Invoice{Status: models.InvoiceStatusDraft}

	err := Finalize(inv, time.Now())
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "empty_invoice"))
	assert.Equal(t, models.InvoiceStatusDraft, inv.Status)
}

func TestFinalizeRejectsNonDraft(t *testing.T) {
	inv := &models.Invoice{
		Status:    models.InvoiceStatusIssued,
		LineItems: []models.InvoiceLineItem{{Description: "Oil change"}},
	}

	err := Finalize(inv, time.Now())
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancel(t *testing.T) {
	inv := &models.Invoice{Status: models.InvoiceStatusIssued}
	require.NoError(t, Cancel(inv))
	assert.Equal(t, models.InvoiceStatusCancelled, inv.Status)

	err := Cancel(inv)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCanEditItems(t *testing.T) {
	assert.NoError(t, CanEditItems(&models.Invoice{Status: models.InvoiceStatusDraft}))

	err := CanEditItems(&models.Invoice{Status: models.InvoiceStatusIssued})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invoice_not_draft"))
}
