package linkage

import (
	"context"

	domain "github.com/WorkshopSystems01/workshop-tracker/internal/domain/linkage"
	"github.com/WorkshopSystems01/workshop-tracker/internal/identity"
	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
)

type PlateMatch struct {
	Customer *models.Customer
	Vehicle  *models.Vehicle
}

// ResolvePlate finds the customer currently associated with a plate.
// A plate held by a temporary customer reports as not found so callers
// create a fresh record instead of surfacing placeholder data.
// Idempotent and side-effect free.
type ResolvePlate struct {
	repo domain.Repository
}

func NewResolvePlate(repo domain.Repository) *ResolvePlate {
	return &ResolvePlate{repo: repo}
}

func (uc *ResolvePlate) Execute(
	ctx context.Context,
	branchID uint,
	plateNumber string,
) (*PlateMatch, error) {

	plate := identity.NormalizePlate(plateNumber)
	if plate == "" {
		// absence of input is not a lookup failure
		return nil, nil
	}

	vehicle, err := uc.repo.FindVehicleByPlate(ctx, branchID, plate)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, nil
	}

	owner, err := uc.repo.GetCustomerByID(ctx, branchID, vehicle.CustomerID)
	if err != nil {
		return nil, err
	}
	if owner == nil || owner.IsTemporary {
		return nil, nil
	}

	return &PlateMatch{Customer: owner, Vehicle: vehicle}, nil
}
