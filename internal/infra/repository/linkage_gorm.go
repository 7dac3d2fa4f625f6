package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/WorkshopSystems01/workshop-tracker/internal/domain/linkage"
	"github.com/WorkshopSystems01/workshop-tracker/internal/domain/workorder"
	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
)

type LinkageGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*LinkageGormRepository)(nil)

func NewLinkageGormRepository(db *gorm.DB) *LinkageGormRepository {
	return &LinkageGormRepository{db: db}
}

// --------------------------------------------------
// Customer matching
// --------------------------------------------------

func (r *LinkageGormRepository) FindOrganizationByTaxNumber(
	ctx context.Context,
	branchID uint,
	taxNumber string,
) (*models.Customer, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where(
			"branch_id = ? AND customer_type = ? AND tax_number_normalized = ?",
			branchID, models.CustomerTypeOrganization, taxNumber,
		).
		Order("id ASC").
		First(&customer).Error

	return firstResult(&customer, err)
}

func (r *LinkageGormRepository) FindRealCustomerByPhone(
	ctx context.Context,
	branchID uint,
	phone string,
) (*models.Customer, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where(
			"branch_id = ? AND phone_normalized = ? AND is_temporary = false",
			branchID, phone,
		).
		Order("id ASC").
		First(&customer).Error

	return firstResult(&customer, err)
}

func (r *LinkageGormRepository) FindRealCustomerByName(
	ctx context.Context,
	branchID uint,
	name string,
) (*models.Customer, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where(
			"branch_id = ? AND name_normalized = ? AND is_temporary = false",
			branchID, name,
		).
		Order("id ASC").
		First(&customer).Error

	return firstResult(&customer, err)
}

func (r *LinkageGormRepository) GetCustomerByID(
	ctx context.Context,
	branchID uint,
	id uint,
) (*models.Customer, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("id = ? AND branch_id = ?", id, branchID).
		First(&customer).Error

	return firstResult(&customer, err)
}

func (r *LinkageGormRepository) CreateCustomer(
	ctx context.Context,
	customer *models.Customer,
) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// --------------------------------------------------
// Vehicle / plate
// --------------------------------------------------

func (r *LinkageGormRepository) FindVehicleByPlate(
	ctx context.Context,
	branchID uint,
	plate string,
) (*models.Vehicle, error) {

	var vehicle models.Vehicle
	err := r.db.WithContext(ctx).
		Where("branch_id = ? AND plate = ?", branchID, plate).
		Order("id ASC").
		First(&vehicle).Error

	return firstResult(&vehicle, err)
}

func (r *LinkageGormRepository) CreateVehicle(
	ctx context.Context,
	vehicle *models.Vehicle,
) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

func (r *LinkageGormRepository) ReassignVehicleOwner(
	ctx context.Context,
	vehicleID uint,
	customerID uint,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Vehicle{}).
		Where("id = ?", vehicleID).
		Update("customer_id", customerID).Error
}

// --------------------------------------------------
// Order
// --------------------------------------------------

func (r *LinkageGormRepository) GetOrderForBranch(
	ctx context.Context,
	orderID uint,
	branchID uint,
) (*models.Order, error) {

	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Vehicle").
		Where("id = ? AND branch_id = ?", orderID, branchID).
		First(&order).Error

	return firstResult(&order, err)
}

func (r *LinkageGormRepository) CreateOrder(
	ctx context.Context,
	order *models.Order,
) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// RelinkOrderCustomer is a single-column update: the order starts
// referencing the new customer and nothing else changes.
func (r *LinkageGormRepository) RelinkOrderCustomer(
	ctx context.Context,
	orderID uint,
	customerID uint,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("customer_id", customerID).Error
}

func (r *LinkageGormRepository) RecordLinkEvent(
	ctx context.Context,
	event *models.CustomerLinkEvent,
) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *LinkageGormRepository) ListStartedOrdersForPlate(
	ctx context.Context,
	branchID uint,
	plate string,
) ([]models.Order, error) {

	var orders []models.Order
	err := r.db.WithContext(ctx).
		Joins("JOIN vehicles ON vehicles.id = orders.vehicle_id").
		Where(
			"orders.branch_id = ? AND orders.status = ? AND vehicles.plate = ?",
			branchID, string(workorder.StatusCreated), plate,
		).
		Preload("Customer").
		Preload("Vehicle").
		Order("orders.created_at DESC").
		Find(&orders).Error

	return orders, err
}

// firstResult maps gorm's record-not-found onto the (nil, nil)
// negative-result convention of the domain repository.
func firstResult[T any](v *T, err error) (*T, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}
