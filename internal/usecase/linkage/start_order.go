package linkage

import (
	"context"

	"github.com/WorkshopSystems01/workshop-tracker/internal/audit"
	domain "github.com/WorkshopSystems01/workshop-tracker/internal/domain/linkage"
	"github.com/WorkshopSystems01/workshop-tracker/internal/domain/workorder"
	"github.com/WorkshopSystems01/workshop-tracker/internal/eta"
	"github.com/WorkshopSystems01/workshop-tracker/internal/httperr"
	"github.com/WorkshopSystems01/workshop-tracker/internal/identity"
	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
	"github.com/WorkshopSystems01/workshop-tracker/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type StartOrderInput struct {
	BranchID uint
	UserID   uint

	// Either an explicit customer, full customer attributes, or a bare
	// plate (which anchors the order to a temporary customer).
	CustomerID uint
	FullName   string
	Phone      string

	PlateNumber  string
	VehicleMake  string
	VehicleModel string

	Type                 string
	Description          string
	EstimatedDurationMin int
}

// ======================================================
// USE CASE
// ======================================================

// StartOrder opens a work order. When only a plate is known it reuses
// the plate's real owner if one exists, otherwise it creates a
// temporary placeholder customer named after the plate.
type StartOrder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewStartOrder(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *StartOrder {
	return &StartOrder{
		repo:  repo,
		audit: audit,
	}
}

func (uc *StartOrder) Execute(
	ctx context.Context,
	in StartOrderInput,
) (*models.Order, error) {

	plate := identity.NormalizePlate(in.PlateNumber)

	customer, err := uc.resolveCustomer(ctx, in, plate)
	if err != nil {
		return nil, err
	}

	vehicle, err := uc.resolveVehicle(ctx, in, plate, customer)
	if err != nil {
		return nil, err
	}

	orderType := in.Type
	if orderType == "" {
		orderType = models.OrderTypeService
	}

	estimated := in.EstimatedDurationMin
	if estimated <= 0 {
		estimated = eta.DefaultServiceMinutes
	}

	now := timezone.Now()
	order := &models.Order{
		BranchID:             in.BranchID,
		CustomerID:           customer.ID,
		Type:                 orderType,
		Status:               string(workorder.InitialStatus()),
		Description:          in.Description,
		EstimatedDurationMin: estimated,
		StartedAt:            &now,
	}
	if vehicle != nil {
		order.VehicleID = &vehicle.ID
	}

	if err := uc.repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	order.Customer = *customer
	order.Vehicle = vehicle

	uc.audit.Dispatch(audit.Event{
		BranchID: in.BranchID,
		UserID:   &in.UserID,
		Action:   "order_started",
		Entity:   "order",
		EntityID: &order.ID,
	})

	return order, nil
}

// resolveCustomer picks the order's initial customer: explicit id,
// matched/created real customer, or a plate-derived placeholder.
func (uc *StartOrder) resolveCustomer(
	ctx context.Context,
	in StartOrderInput,
	plate string,
) (*models.Customer, error) {

	if in.CustomerID != 0 {
		customer, err := uc.repo.GetCustomerByID(ctx, in.BranchID, in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, httperr.ErrBusiness("customer_not_found")
		}
		return customer, nil
	}

	if in.FullName != "" || in.Phone != "" {
		matcher := NewFindDuplicate(uc.repo)
		match, err := matcher.Execute(ctx, FindDuplicateInput{
			BranchID: in.BranchID,
			FullName: in.FullName,
			Phone:    in.Phone,
		})
		if err != nil {
			return nil, err
		}
		if match != nil {
			return match, nil
		}

		customer := &models.Customer{
			BranchID:        in.BranchID,
			FullName:        in.FullName,
			NameNormalized:  identity.NormalizeName(in.FullName),
			Phone:           in.Phone,
			PhoneNormalized: identity.NormalizePhone(in.Phone),
			CustomerType:    models.CustomerTypeIndividual,
		}
		if err := uc.repo.CreateCustomer(ctx, customer); err != nil {
			return nil, err
		}
		return customer, nil
	}

	if plate == "" {
		return nil, httperr.ErrBusiness("customer_or_plate_required")
	}

	// Plate-only start: reuse the real owner when the plate is known.
	resolver := NewResolvePlate(uc.repo)
	match, err := resolver.Execute(ctx, in.BranchID, plate)
	if err != nil {
		return nil, err
	}
	if match != nil {
		return match.Customer, nil
	}

	temp := &models.Customer{
		BranchID:       in.BranchID,
		FullName:       identity.TemporaryCustomerName(plate),
		NameNormalized: identity.NormalizeName(identity.TemporaryCustomerName(plate)),
		CustomerType:   models.CustomerTypeIndividual,
		IsTemporary:    true,
		SourcePlate:    plate,
	}
	if err := uc.repo.CreateCustomer(ctx, temp); err != nil {
		return nil, err
	}
	return temp, nil
}

func (uc *StartOrder) resolveVehicle(
	ctx context.Context,
	in StartOrderInput,
	plate string,
	customer *models.Customer,
) (*models.Vehicle, error) {

	if plate == "" {
		return nil, nil
	}

	vehicle, err := uc.repo.FindVehicleByPlate(ctx, in.BranchID, plate)
	if err != nil {
		return nil, err
	}
	if vehicle != nil {
		return vehicle, nil
	}

	vehicle = &models.Vehicle{
		BranchID:   in.BranchID,
		CustomerID: customer.ID,
		Plate:      plate,
		Make:       in.VehicleMake,
		Model:      in.VehicleModel,
	}
	if err := uc.repo.CreateVehicle(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}
