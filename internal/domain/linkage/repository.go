package linkage

import (
	"context"

	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
)

// Repository is the persistence boundary for customer identity
// resolution and order linkage. Lookup methods return (nil, nil) when
// nothing matches: a negative result is not an error. All inputs that
// feed equality comparisons (phone, name, tax number, plate) are
// expected pre-normalized by the caller.
type Repository interface {
	// -------- Customer matching --------
	FindOrganizationByTaxNumber(
		ctx context.Context,
		branchID uint,
		taxNumber string,
	) (*models.Customer, error)

	// FindRealCustomerByPhone and FindRealCustomerByName exclude
	// temporary customers and return the oldest match.
	FindRealCustomerByPhone(
		ctx context.Context,
		branchID uint,
		phone string,
	) (*models.Customer, error)

	FindRealCustomerByName(
		ctx context.Context,
		branchID uint,
		name string,
	) (*models.Customer, error)

	GetCustomerByID(
		ctx context.Context,
		branchID uint,
		id uint,
	) (*models.Customer, error)

	CreateCustomer(
		ctx context.Context,
		customer *models.Customer,
	) error

	// -------- Vehicle / plate --------
	FindVehicleByPlate(
		ctx context.Context,
		branchID uint,
		plate string,
	) (*models.Vehicle, error)

	CreateVehicle(
		ctx context.Context,
		vehicle *models.Vehicle,
	) error

	ReassignVehicleOwner(
		ctx context.Context,
		vehicleID uint,
		customerID uint,
	) error

	// -------- Order --------
	GetOrderForBranch(
		ctx context.Context,
		orderID uint,
		branchID uint,
	) (*models.Order, error)

	CreateOrder(
		ctx context.Context,
		order *models.Order,
	) error

	// RelinkOrderCustomer repoints the order's customer reference in a
	// single-column update; it never touches either customer record.
	RelinkOrderCustomer(
		ctx context.Context,
		orderID uint,
		customerID uint,
	) error

	RecordLinkEvent(
		ctx context.Context,
		event *models.CustomerLinkEvent,
	) error

	ListStartedOrdersForPlate(
		ctx context.Context,
		branchID uint,
		plate string,
	) ([]models.Order, error)
}
