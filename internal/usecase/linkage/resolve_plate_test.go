package linkage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WorkshopSystems01/workshop-tracker/internal/identity"
	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
)

func TestResolvePlateMatch(t *testing.T) {
	repo := newFakeRepo()
	owner := repo.addCustomer(realCustomer(1, "Jane Doe", "555-0100"))
	vehicle := repo.addVehicle(models.Vehicle{
		BranchID:   1,
		CustomerID: owner.ID,
		Plate:      "ABC123",
		Make:       "Toyota",
		Model:      "Hilux",
	})

	uc := NewResolvePlate(repo)

	// lookup is case-insensitive and whitespace-tolerant
	match, err := uc.Execute(context.Background(), 1, " abc 123 ")
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, owner.ID, match.Customer.ID)
	assert.Equal(t, vehicle.ID, match.Vehicle.ID)
}

func TestResolvePlateTemporaryOwnerReportsNotFound(t *testing.T) {
	repo := newFakeRepo()
	temp := repo.addCustomer(models.Customer{
		BranchID:    1,
		FullName:    identity.TemporaryCustomerName("ABC123"),
		IsTemporary: true,
		SourcePlate: "ABC123",
	})
	repo.addVehicle(models.Vehicle{BranchID: 1, CustomerID: temp.ID, Plate: "ABC123"})

	uc := NewResolvePlate(repo)

	match, err := uc.Execute(context.Background(), 1, "abc123")
	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestResolvePlateBranchScoping(t *testing.T) {
	repo := newFakeRepo()
	owner := repo.addCustomer(realCustomer(1, "Jane Doe", "555-0100"))
	repo.addVehicle(models.Vehicle{BranchID: 1, CustomerID: owner.ID, Plate: "ABC123"})

	uc := NewResolvePlate(repo)

	match, err := uc.Execute(context.Background(), 2, "ABC123")
	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestResolvePlateEmptyInput(t *testing.T) {
	uc := NewResolvePlate(newFakeRepo())

	match, err := uc.Execute(context.Background(), 1, "   ")
	require.NoError(t, err)
	assert.Nil(t, match)
}
