package models

import (
	"fmt"
	"time"
)

const (
	OrderTypeService = "service"
	OrderTypeSales   = "sales"
)

type Order struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BranchID uint `gorm:"index" json:"branch_id"`

	// CustomerID is mutable over the order lifecycle: the linkage
	// reconciler repoints it when a real customer is identified. Every
	// repoint is recorded as a CustomerLinkEvent.
	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	VehicleID *uint    `json:"vehicle_id"`
	Vehicle   *Vehicle `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"vehicle,omitempty"`

	OrderNumber string `gorm:"size:30" json:"order_number"`
	Type        string `gorm:"size:20;default:'service'" json:"type"`
	Status      string `gorm:"size:20;default:'created'" json:"status"`
	Description string `gorm:"size:1000" json:"description"`

	EstimatedDurationMin int  `json:"estimated_duration_min"`
	ActualDurationMin    *int `json:"actual_duration_min"`

	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Number falls back to ORD<id> when no explicit number was assigned.
func (o *Order) Number() string {
	if o.OrderNumber != "" {
		return o.OrderNumber
	}
	return fmt.Sprintf("ORD%d", o.ID)
}
