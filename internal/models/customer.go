package models

import "time"

const (
	CustomerTypeIndividual   = "individual"
	CustomerTypeOrganization = "organization"
)

// Customer is an identity record scoped to a branch. A temporary
// customer is a placeholder created from a plate-only order start; it
// stays addressable by id but is excluded from search, matching and
// plate resolution.
type Customer struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BranchID uint `gorm:"index:idx_customers_branch_phone,priority:1;index:idx_customers_branch_name,priority:1;index:idx_customers_branch_tax,priority:1" json:"branch_id"`

	FullName       string `gorm:"size:150;not null" json:"full_name"`
	NameNormalized string `gorm:"size:150;index:idx_customers_branch_name,priority:2" json:"-"`

	Phone           string `gorm:"size:25" json:"phone"`
	PhoneNormalized string `gorm:"size:25;index:idx_customers_branch_phone,priority:2" json:"-"`

	CustomerType        string `gorm:"size:20;default:'individual'" json:"customer_type"`
	OrganizationName    string `gorm:"size:150" json:"organization_name"`
	TaxNumber           string `gorm:"size:50" json:"tax_number"`
	TaxNumberNormalized string `gorm:"size:50;index:idx_customers_branch_tax,priority:2" json:"-"`

	Email   string `gorm:"size:100" json:"email"`
	Address string `gorm:"size:255" json:"address"`

	IsTemporary bool   `gorm:"default:false;index" json:"is_temporary"`
	SourcePlate string `gorm:"size:20" json:"source_plate,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
