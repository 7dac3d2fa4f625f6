package workorder

import "github.com/WorkshopSystems01/workshop-tracker/internal/httperr"

// ===============================
// Order Status
// ===============================

type Status string

const (
	StatusCreated    Status = "created"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// ===============================
// Validations
// ===============================

func CanCancel(current Status) error {
	if current != StatusCreated && current != StatusInProgress {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusCreated && current != StatusInProgress {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusCreated
}
