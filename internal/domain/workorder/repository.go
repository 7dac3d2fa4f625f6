package workorder

import (
	"context"
	"time"

	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
)

// Repository covers order lifecycle reads and writes. Lookups return
// (nil, nil) when nothing matches.
type Repository interface {
	GetForBranch(ctx context.Context, orderID uint, branchID uint) (*models.Order, error)
	ListByDateRange(ctx context.Context, branchID uint, from, to time.Time) ([]models.Order, error)
	Save(ctx context.Context, order *models.Order) error
}
