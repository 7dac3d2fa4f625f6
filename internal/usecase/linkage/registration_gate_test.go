package linkage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/WorkshopSystems01/workshop-tracker/internal/domain/linkage"
)

func TestRegistrationGateRedirectsToExisting(t *testing.T) {
	repo := newFakeRepo()
	jane := repo.addCustomer(realCustomer(1, "Jane Doe", "555-0100"))

	uc := NewRegistrationGate(repo)

	res, err := uc.Execute(context.Background(), 1, FindDuplicateInput{
		BranchID: 1,
		FullName: "Jane Doe",
		Phone:    "5550100",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StateRedirectToExisting, res.State)
	assert.True(t, res.Found)
	assert.Equal(t, jane.ID, res.Customer.ID)
	assert.NotEmpty(t, res.RedirectURL)
	assert.NotEmpty(t, res.Message)
}

func TestRegistrationGateProceedsWhenClean(t *testing.T) {
	uc := NewRegistrationGate(newFakeRepo())

	res, err := uc.Execute(context.Background(), 1, FindDuplicateInput{
		BranchID: 1,
		FullName: "Jane Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StateStep2Intent, res.State)
	assert.False(t, res.Found)
}

func TestRegistrationGateDeniesCrossBranchWithoutLeaking(t *testing.T) {
	repo := newFakeRepo()
	repo.addCustomer(realCustomer(2, "Jane Doe", "555-0100"))

	uc := NewRegistrationGate(repo)

	// token is for branch 1, target is branch 2 where Jane exists
	res, err := uc.Execute(context.Background(), 1, FindDuplicateInput{
		BranchID: 2,
		FullName: "Jane Doe",
		Phone:    "555-0100",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StateAccessDenied, res.State)
	assert.False(t, res.Found)
	assert.Nil(t, res.Customer)
	assert.Empty(t, res.RedirectURL)
	assert.NotContains(t, res.Message, "Jane")
}
