package linkage

import (
	"context"

	domain "github.com/WorkshopSystems01/workshop-tracker/internal/domain/linkage"
	"github.com/WorkshopSystems01/workshop-tracker/internal/identity"
	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
)

// SearchStartedOrders lists open ("created") orders whose vehicle
// carries the given plate, for invoice-creation autocomplete.
type SearchStartedOrders struct {
	repo domain.Repository
}

func NewSearchStartedOrders(repo domain.Repository) *SearchStartedOrders {
	return &SearchStartedOrders{repo: repo}
}

func (uc *SearchStartedOrders) Execute(
	ctx context.Context,
	branchID uint,
	plateNumber string,
) ([]models.Order, error) {

	plate := identity.NormalizePlate(plateNumber)
	if plate == "" {
		return nil, nil
	}

	return uc.repo.ListStartedOrdersForPlate(ctx, branchID, plate)
}
