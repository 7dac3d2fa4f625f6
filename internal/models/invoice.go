package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusIssued    = "issued"
	InvoiceStatusCancelled = "cancelled"
)

// DefaultInvoiceTerms is prefilled when an invoice is created without
// explicit terms.
const DefaultInvoiceTerms = "NOTE 1 : Payment in TSHS accepted at the prevailing rate on the date of payment. " +
	"2 : Proforma Invoice is Valid for 2 weeks from date of Proforma. " +
	"3 : Discount is Valid only for the above Quantity. " +
	"4 : Duty and VAT exemption documents to be submitted with the Purchase Order."

type Invoice struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BranchID uint `gorm:"index" json:"branch_id"`

	OrderID *uint  `json:"order_id"`
	Order   *Order `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"order,omitempty"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	VehicleID *uint    `json:"vehicle_id"`
	Vehicle   *Vehicle `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"vehicle,omitempty"`

	InvoiceNumber string `gorm:"size:30;uniqueIndex" json:"invoice_number"`
	Reference     string `gorm:"size:50" json:"reference"`
	Status        string `gorm:"size:20;default:'draft'" json:"status"`

	InvoiceDate time.Time  `json:"invoice_date"`
	DueDate     *time.Time `json:"due_date"`

	TaxRate  decimal.Decimal `gorm:"type:numeric(5,2)" json:"tax_rate"`
	Subtotal decimal.Decimal `gorm:"type:numeric(14,2)" json:"subtotal"`
	TaxTotal decimal.Decimal `gorm:"type:numeric(14,2)" json:"tax_total"`
	Total    decimal.Decimal `gorm:"type:numeric(14,2)" json:"total"`

	AttendedBy    string `gorm:"size:100" json:"attended_by"`
	KindAttention string `gorm:"size:100" json:"kind_attention"`
	Notes         string `gorm:"size:1000" json:"notes"`
	Terms         string `gorm:"size:1000" json:"terms"`

	// DocumentKey is the object-storage key of the uploaded source
	// document this invoice was extracted from, if any.
	DocumentKey string `gorm:"size:100" json:"document_key,omitempty"`

	LineItems []InvoiceLineItem `json:"line_items"`

	CreatedByID *uint `json:"created_by_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type InvoiceLineItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	InvoiceID uint `gorm:"index" json:"invoice_id"`

	ItemCode    string          `gorm:"size:30" json:"item_code"`
	Description string          `gorm:"size:255" json:"description"`
	Quantity    decimal.Decimal `gorm:"type:numeric(12,2)" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(14,2)" json:"unit_price"`
	LineTotal   decimal.Decimal `gorm:"type:numeric(14,2)" json:"line_total"`

	CreatedAt time.Time `json:"created_at"`
}

// GenerateNumber assigns a unique invoice number of the form
// INV-YYYYMM-XXXXXXXX.
func (i *Invoice) GenerateNumber(now time.Time) {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	i.InvoiceNumber = fmt.Sprintf("INV-%s-%s", now.Format("200601"), suffix)
}

// CalculateTotals recomputes subtotal, tax and total from line items.
func (i *Invoice) CalculateTotals(items []InvoiceLineItem) {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.LineTotal)
	}
	i.Subtotal = subtotal
	i.TaxTotal = subtotal.Mul(i.TaxRate).Div(decimal.NewFromInt(100)).Round(2)
	i.Total = i.Subtotal.Add(i.TaxTotal)
}
