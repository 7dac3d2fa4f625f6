package workorder

import (
	"time"

	"github.com/WorkshopSystems01/workshop-tracker/internal/eta"
	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(o *models.Order, now time.Time) error {
	if err := CanCancel(Status(o.Status)); err != nil {
		return err
	}

	o.Status = string(StatusCancelled)
	o.CancelledAt = &now
	return nil
}

func Complete(o *models.Order, now time.Time) error {
	if err := CanComplete(Status(o.Status)); err != nil {
		return err
	}

	o.Status = string(StatusCompleted)
	o.CompletedAt = &now
	o.ActualDurationMin = eta.ActualDuration(o.CreatedAt, o.CompletedAt)
	return nil
}
