package linkage

import "github.com/WorkshopSystems01/workshop-tracker/internal/models"

// ===============================
// Registration Step Gate
// ===============================

// GateState models the first registration step:
// step1_entry → step1_checking → {step2_intent | redirect_to_existing}.
// redirect_to_existing and access_denied end the flow; wizard
// navigation beyond step2_intent lives in the HTTP layer.
type GateState string

const (
	StateStep1Entry         GateState = "step1_entry"
	StateStep1Checking      GateState = "step1_checking"
	StateStep2Intent        GateState = "step2_intent"
	StateRedirectToExisting GateState = "redirect_to_existing"
	StateAccessDenied       GateState = "access_denied"
)

// AdvanceFromChecking decides the outgoing edge of step1_checking.
// Without branch access the existing customer must not leak, so the
// caller gets a generic denial carrying no identifying details.
func AdvanceFromChecking(duplicate *models.Customer, hasBranchAccess bool) GateState {
	if !hasBranchAccess {
		return StateAccessDenied
	}
	if duplicate != nil {
		return StateRedirectToExisting
	}
	return StateStep2Intent
}
