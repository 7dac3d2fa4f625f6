package invoice

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/WorkshopSystems01/workshop-tracker/internal/audit"
	invoicing "github.com/WorkshopSystems01/workshop-tracker/internal/domain/invoicing"
	domainlink "github.com/WorkshopSystems01/workshop-tracker/internal/domain/linkage"
	"github.com/WorkshopSystems01/workshop-tracker/internal/extraction"
	"github.com/WorkshopSystems01/workshop-tracker/internal/identity"
	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
	"github.com/WorkshopSystems01/workshop-tracker/internal/timezone"
	"github.com/WorkshopSystems01/workshop-tracker/internal/usecase/linkage"
)

// ======================================================
// INPUT / RESULT
// ======================================================

type CreateFromExtractionInput struct {
	BranchID uint
	UserID   uint

	// OrderID links the invoice to a started order; 0 means standalone.
	OrderID uint

	DocumentKey string
	Header      extraction.Header
	Items       []extraction.LineItem
	TaxRate     decimal.Decimal
}

type CreateFromExtractionResult struct {
	// Relinked is set when identifying the extracted customer repointed
	// the order; the caller redirects instead of showing the invoice.
	Relinked    bool            `json:"relinked"`
	RedirectURL string          `json:"redirect_url,omitempty"`
	Message     string          `json:"message,omitempty"`
	CustomerID  uint            `json:"customer_id,omitempty"`
	Invoice     *models.Invoice `json:"invoice,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

// CreateFromExtraction turns extracted invoice data into a draft
// invoice. The extracted customer identity goes through the matcher
// first, and when the target order currently belongs to someone else
// (typically a plate placeholder) the order is reconciled before the
// invoice is written.
type CreateFromExtraction struct {
	links     domainlink.Repository
	invoices  invoicing.Repository
	matcher   *linkage.FindDuplicate
	reconcile *linkage.ReconcileOrder
	audit     *audit.Dispatcher
}

func NewCreateFromExtraction(
	links domainlink.Repository,
	invoices invoicing.Repository,
	audit *audit.Dispatcher,
) *CreateFromExtraction {
	return &CreateFromExtraction{
		links:     links,
		invoices:  invoices,
		matcher:   linkage.NewFindDuplicate(links),
		reconcile: linkage.NewReconcileOrder(links, audit),
		audit:     audit,
	}
}

func (uc *CreateFromExtraction) Execute(
	ctx context.Context,
	in CreateFromExtractionInput,
) (*CreateFromExtractionResult, error) {

	customer, err := uc.resolveCustomer(ctx, in)
	if err != nil {
		return nil, err
	}

	var (
		orderID   *uint
		vehicleID *uint
	)
	if in.OrderID != 0 {
		rec, err := uc.reconcile.Execute(ctx, in.BranchID, in.UserID, in.OrderID, customer.ID)
		if err != nil {
			return nil, err
		}
		if rec.Action == domainlink.ActionRelinkAndRedirect {
			return &CreateFromExtractionResult{
				Relinked:    true,
				RedirectURL: rec.RedirectURL,
				Message:     rec.Message,
				CustomerID:  rec.Customer.ID,
			}, nil
		}

		order, err := uc.links.GetOrderForBranch(ctx, in.OrderID, in.BranchID)
		if err != nil {
			return nil, err
		}
		if order != nil {
			orderID = &order.ID
			vehicleID = order.VehicleID
		}
	}

	inv := uc.buildInvoice(in, customer, orderID, vehicleID)
	if err := uc.invoices.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BranchID: in.BranchID,
		UserID:   &in.UserID,
		Action:   "invoice_created",
		Entity:   "invoice",
		EntityID: &inv.ID,
		Metadata: map[string]any{"source": "extraction"},
	})

	return &CreateFromExtractionResult{
		CustomerID: customer.ID,
		Invoice:    inv,
	}, nil
}

// resolveCustomer reuses an existing record when the extracted identity
// matches one, otherwise registers the extracted customer.
func (uc *CreateFromExtraction) resolveCustomer(
	ctx context.Context,
	in CreateFromExtractionInput,
) (*models.Customer, error) {

	match, err := uc.matcher.Execute(ctx, linkage.FindDuplicateInput{
		BranchID: in.BranchID,
		FullName: in.Header.CustomerName,
		Phone:    in.Header.Phone,
	})
	if err != nil {
		return nil, err
	}
	if match != nil {
		return match, nil
	}

	customer := &models.Customer{
		BranchID:        in.BranchID,
		FullName:        in.Header.CustomerName,
		NameNormalized:  identity.NormalizeName(in.Header.CustomerName),
		Phone:           in.Header.Phone,
		PhoneNormalized: identity.NormalizePhone(in.Header.Phone),
		Email:           in.Header.Email,
		Address:         in.Header.Address,
		CustomerType:    models.CustomerTypeIndividual,
	}
	if err := uc.links.CreateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (uc *CreateFromExtraction) buildInvoice(
	in CreateFromExtractionInput,
	customer *models.Customer,
	orderID *uint,
	vehicleID *uint,
) *models.Invoice {

	now := timezone.Now()

	inv := &models.Invoice{
		BranchID:    in.BranchID,
		OrderID:     orderID,
		CustomerID:  customer.ID,
		VehicleID:   vehicleID,
		Reference:   in.Header.Reference,
		Status:      models.InvoiceStatusDraft,
		InvoiceDate: now,
		TaxRate:     in.TaxRate,
		Terms:       models.DefaultInvoiceTerms,
		DocumentKey: in.DocumentKey,
		CreatedByID: &in.UserID,
	}
	inv.GenerateNumber(now)

	for _, item := range in.Items {
		inv.LineItems = append(inv.LineItems, buildLineItem(item))
	}
	inv.CalculateTotals(inv.LineItems)

	return inv
}

// buildLineItem maps an extracted row onto a stored line item. Missing
// quantity means a single unit; unit price is derived from the row
// value.
func buildLineItem(item extraction.LineItem) models.InvoiceLineItem {
	qty := decimal.NewFromInt(1)
	if item.Qty != nil && item.Qty.IsPositive() {
		qty = *item.Qty
	}

	total := decimal.Zero
	if item.Value != nil {
		total = *item.Value
	}

	unit := total
	if !qty.Equal(decimal.NewFromInt(1)) && !qty.IsZero() {
		unit = total.Div(qty).Round(2)
	}

	return models.InvoiceLineItem{
		ItemCode:    item.ItemCode,
		Description: item.Description,
		Quantity:    qty,
		UnitPrice:   unit,
		LineTotal:   total,
	}
}
