package linkage

import (
	"context"

	domain "github.com/WorkshopSystems01/workshop-tracker/internal/domain/linkage"
	"github.com/WorkshopSystems01/workshop-tracker/internal/identity"
	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type FindDuplicateInput struct {
	BranchID uint

	FullName         string
	Phone            string
	OrganizationName string
	TaxNumber        string
	CustomerType     string
}

// ======================================================
// USE CASE
// ======================================================

// FindDuplicate resolves whether a prospective customer already exists
// in the branch. Precedence: tax number (organizations), then phone,
// then name. Temporary customers are never returned. Read-only.
type FindDuplicate struct {
	repo domain.Repository
}

func NewFindDuplicate(repo domain.Repository) *FindDuplicate {
	return &FindDuplicate{repo: repo}
}

// Execute returns the oldest matching real customer, or nil when the
// submitted attributes match nothing.
func (uc *FindDuplicate) Execute(
	ctx context.Context,
	in FindDuplicateInput,
) (*models.Customer, error) {

	// 1. Tax number is the strongest signal and skips name/phone.
	if in.CustomerType == models.CustomerTypeOrganization {
		if tax := identity.NormalizeTaxNumber(in.TaxNumber); tax != "" {
			match, err := uc.repo.FindOrganizationByTaxNumber(ctx, in.BranchID, tax)
			if err != nil {
				return nil, err
			}
			if match != nil {
				return match, nil
			}
		}
	}

	// 2. Normalized phone equality.
	if phone := identity.NormalizePhone(in.Phone); phone != "" {
		match, err := uc.repo.FindRealCustomerByPhone(ctx, in.BranchID, phone)
		if err != nil {
			return nil, err
		}
		if match != nil {
			return match, nil
		}
	}

	// 3. Name equality is a heuristic fallback; the caller surfaces it
	// as a soft redirect, never a hard failure.
	if name := identity.NormalizeName(in.FullName); name != "" {
		match, err := uc.repo.FindRealCustomerByName(ctx, in.BranchID, name)
		if err != nil {
			return nil, err
		}
		if match != nil {
			return match, nil
		}
	}

	return nil, nil
}
