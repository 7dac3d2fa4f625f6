package linkage

import "github.com/WorkshopSystems01/workshop-tracker/internal/models"

type Action string

const (
	ActionNoChange          Action = "no_change"
	ActionRelinkAndRedirect Action = "relink_and_redirect"
)

// Relink reasons recorded on the CustomerLinkEvent trail.
const (
	ReasonTemporaryResolved  = "temporary_customer_resolved"
	ReasonCustomerDivergence = "customer_divergence"
)

type Decision struct {
	Action Action
	Reason string
}

// Decide applies the reconciliation rule: an order whose current
// customer is temporary, or differs from the newly identified one, is
// repointed — never silently merged. Only a real customer already
// linked yields no change.
func Decide(current *models.Customer, identified *models.Customer) Decision {
	if current != nil && !current.IsTemporary && current.ID == identified.ID {
		return Decision{Action: ActionNoChange}
	}

	reason := ReasonCustomerDivergence
	if current == nil || current.IsTemporary {
		reason = ReasonTemporaryResolved
	}

	return Decision{Action: ActionRelinkAndRedirect, Reason: reason}
}
