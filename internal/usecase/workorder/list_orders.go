package workorder

import (
	"context"
	"time"

	domain "github.com/WorkshopSystems01/workshop-tracker/internal/domain/workorder"
	"github.com/WorkshopSystems01/workshop-tracker/internal/httperr"
	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
	"github.com/WorkshopSystems01/workshop-tracker/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

// ListOrdersByDate returns the branch's orders for one calendar day in
// the branch timezone.
type ListOrdersByDate struct {
	repo domain.Repository
}

func NewListOrdersByDate(repo domain.Repository) *ListOrdersByDate {
	return &ListOrdersByDate{repo: repo}
}

func (uc *ListOrdersByDate) Execute(
	ctx context.Context,
	branchID uint,
	date string,
	tz string,
) ([]models.Order, error) {

	loc := timezone.Location(tz)

	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	from := day
	to := day.AddDate(0, 0, 1)

	return uc.repo.ListByDateRange(ctx, branchID, from, to)
}
