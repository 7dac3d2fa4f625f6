package models

import "time"

// CustomerLinkEvent is the append-only trail of order relinks, so the
// system can answer "why did this order's customer change?".
type CustomerLinkEvent struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BranchID uint `gorm:"index" json:"branch_id"`
	OrderID  uint `gorm:"index" json:"order_id"`

	PreviousCustomerID uint   `json:"previous_customer_id"`
	NewCustomerID      uint   `json:"new_customer_id"`
	Reason             string `gorm:"size:50" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
