package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/WorkshopSystems01/workshop-tracker/internal/domain/invoicing"
	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
)

type InvoicingGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*InvoicingGormRepository)(nil)

func NewInvoicingGormRepository(db *gorm.DB) *InvoicingGormRepository {
	return &InvoicingGormRepository{db: db}
}

func (r *InvoicingGormRepository) CreateInvoice(
	ctx context.Context,
	invoice *models.Invoice,
) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *InvoicingGormRepository) GetForBranch(
	ctx context.Context,
	invoiceID uint,
	branchID uint,
) (*models.Invoice, error) {

	var invoice models.Invoice
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Vehicle").
		Preload("Order").
		Preload("LineItems").
		Where("id = ? AND branch_id = ?", invoiceID, branchID).
		First(&invoice).Error

	return firstResult(&invoice, err)
}

func (r *InvoicingGormRepository) Save(
	ctx context.Context,
	invoice *models.Invoice,
) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

func (r *InvoicingGormRepository) ListRecent(
	ctx context.Context,
	branchID uint,
	limit int,
) ([]models.Invoice, error) {

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var invoices []models.Invoice
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("LineItems").
		Where("branch_id = ?", branchID).
		Order("created_at DESC").
		Limit(limit).
		Find(&invoices).Error

	return invoices, err
}

func (r *InvoicingGormRepository) AddLineItem(
	ctx context.Context,
	item *models.InvoiceLineItem,
) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *InvoicingGormRepository) DeleteLineItem(
	ctx context.Context,
	invoiceID uint,
	itemID uint,
) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND invoice_id = ?", itemID, invoiceID).
		Delete(&models.InvoiceLineItem{}).Error
}

func (r *InvoicingGormRepository) ListLineItems(
	ctx context.Context,
	invoiceID uint,
) ([]models.InvoiceLineItem, error) {

	var items []models.InvoiceLineItem
	err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("id ASC").
		Find(&items).Error

	return items, err
}
