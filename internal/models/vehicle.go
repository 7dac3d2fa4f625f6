package models

import "time"

// Vehicle is owned by exactly one customer at a time. Plate is stored
// normalized (uppercase, no whitespace).
type Vehicle struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BranchID uint `gorm:"index:idx_vehicles_branch_plate,priority:1" json:"branch_id"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	Plate string `gorm:"size:20;not null;index:idx_vehicles_branch_plate,priority:2" json:"plate"`
	Make  string `gorm:"size:50" json:"make"`
	Model string `gorm:"size:50" json:"model"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
