package linkage

import (
	"context"
	"fmt"

	domain "github.com/WorkshopSystems01/workshop-tracker/internal/domain/linkage"
	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
)

// ======================================================
// RESULT
// ======================================================

type GateResult struct {
	State       domain.GateState
	Found       bool
	Customer    *models.Customer
	RedirectURL string
	Message     string
}

// ======================================================
// USE CASE
// ======================================================

// RegistrationGate runs the duplicate check that sits between step 1
// (identity entry) and step 2 (intent) of customer registration. When
// the requester's branch differs from the target branch the answer is
// a plain denial so existing customers are never leaked across
// branches.
type RegistrationGate struct {
	matcher *FindDuplicate
}

func NewRegistrationGate(repo domain.Repository) *RegistrationGate {
	return &RegistrationGate{matcher: NewFindDuplicate(repo)}
}

func (uc *RegistrationGate) Execute(
	ctx context.Context,
	tokenBranchID uint,
	in FindDuplicateInput,
) (*GateResult, error) {

	hasAccess := tokenBranchID == in.BranchID

	var match *models.Customer
	if hasAccess {
		var err error
		match, err = uc.matcher.Execute(ctx, in)
		if err != nil {
			return nil, err
		}
	}

	state := domain.AdvanceFromChecking(match, hasAccess)
	switch state {
	case domain.StateAccessDenied:
		return &GateResult{
			State:   state,
			Message: "You do not have access to this branch.",
		}, nil

	case domain.StateRedirectToExisting:
		return &GateResult{
			State:       state,
			Found:       true,
			Customer:    match,
			RedirectURL: fmt.Sprintf("/customers/%d", match.ID),
			Message:     fmt.Sprintf("%s is already registered. Continuing on their profile.", match.FullName),
		}, nil

	default:
		return &GateResult{State: state}, nil
	}
}
