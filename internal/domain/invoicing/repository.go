package invoicing

import (
	"context"

	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
)

// Repository covers invoice persistence. Lookups return (nil, nil)
// when nothing matches.
type Repository interface {
	CreateInvoice(ctx context.Context, invoice *models.Invoice) error
	GetForBranch(ctx context.Context, invoiceID uint, branchID uint) (*models.Invoice, error)
	Save(ctx context.Context, invoice *models.Invoice) error
	ListRecent(ctx context.Context, branchID uint, limit int) ([]models.Invoice, error)

	AddLineItem(ctx context.Context, item *models.InvoiceLineItem) error
	DeleteLineItem(ctx context.Context, invoiceID uint, itemID uint) error
	ListLineItems(ctx context.Context, invoiceID uint) ([]models.InvoiceLineItem, error)
}
