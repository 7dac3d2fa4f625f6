package linkage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
)

func TestDecide(t *testing.T) {
	real := &models.Customer{ID: 7, FullName: "Jane Doe"}
	temp := &models.Customer{ID: 3, FullName: "Plate ABC123", IsTemporary: true, SourcePlate: "ABC123"}
	other := &models.Customer{ID: 9, FullName: "John Smith"}

	tests := []struct {
		name       string
		current    *models.Customer
		identified *models.Customer
		action     Action
		reason     string
	}{
		{"same real customer", real, real, ActionNoChange, ""},
		{"temporary current", temp, real, ActionRelinkAndRedirect, ReasonTemporaryResolved},
		{"different real customer", other, real, ActionRelinkAndRedirect, ReasonCustomerDivergence},
		{"no current customer", nil, real, ActionRelinkAndRedirect, ReasonTemporaryResolved},
		{"temporary with same id still relinks", temp, temp, ActionRelinkAndRedirect, ReasonTemporaryResolved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.current, tt.identified)
			assert.Equal(t, tt.action, d.Action)
			assert.Equal(t, tt.reason, d.Reason)
		})
	}
}

func TestAdvanceFromChecking(t *testing.T) {
	existing := &models.Customer{ID: 1}

	assert.Equal(t, StateStep2Intent, AdvanceFromChecking(nil, true))
	assert.Equal(t, StateRedirectToExisting, AdvanceFromChecking(existing, true))
	assert.Equal(t, StateAccessDenied, AdvanceFromChecking(existing, false))
	assert.Equal(t, StateAccessDenied, AdvanceFromChecking(nil, false))
}
