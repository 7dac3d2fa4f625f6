package linkage

import (
	"context"

	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
)

// fakeRepo is an in-memory linkage.Repository used by the use case
// tests. Write counters let tests assert that no-op paths stay no-op.
type fakeRepo struct {
	customers []*models.Customer
	vehicles  []*models.Vehicle
	orders    []*models.Order
	events    []*models.CustomerLinkEvent

	nextID uint

	relinkCalls   int
	reassignCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1}
}

func (f *fakeRepo) id() uint {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeRepo) addCustomer(c models.Customer) *models.Customer {
	c.ID = f.id()
	stored := c
	f.customers = append(f.customers, &stored)
	return &stored
}

func (f *fakeRepo) addVehicle(v models.Vehicle) *models.Vehicle {
	v.ID = f.id()
	stored := v
	f.vehicles = append(f.vehicles, &stored)
	return &stored
}

func (f *fakeRepo) addOrder(o models.Order) *models.Order {
	o.ID = f.id()
	stored := o
	f.orders = append(f.orders, &stored)
	return &stored
}

func (f *fakeRepo) FindOrganizationByTaxNumber(_ context.Context, branchID uint, taxNumber string) (*models.Customer, error) {
	for _, c := range f.customers {
		if c.BranchID == branchID &&
			c.CustomerType == models.CustomerTypeOrganization &&
			c.TaxNumberNormalized == taxNumber {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) FindRealCustomerByPhone(_ context.Context, branchID uint, phone string) (*models.Customer, error) {
	for _, c := range f.customers {
		if c.BranchID == branchID && !c.IsTemporary && c.PhoneNormalized == phone {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) FindRealCustomerByName(_ context.Context, branchID uint, name string) (*models.Customer, error) {
	for _, c := range f.customers {
		if c.BranchID == branchID && !c.IsTemporary && c.NameNormalized == name {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) GetCustomerByID(_ context.Context, branchID uint, id uint) (*models.Customer, error) {
	for _, c := range f.customers {
		if c.BranchID == branchID && c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) CreateCustomer(_ context.Context, customer *models.Customer) error {
	customer.ID = f.id()
	f.customers = append(f.customers, customer)
	return nil
}

func (f *fakeRepo) FindVehicleByPlate(_ context.Context, branchID uint, plate string) (*models.Vehicle, error) {
	for _, v := range f.vehicles {
		if v.BranchID == branchID && v.Plate == plate {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) CreateVehicle(_ context.Context, vehicle *models.Vehicle) error {
	vehicle.ID = f.id()
	f.vehicles = append(f.vehicles, vehicle)
	return nil
}

func (f *fakeRepo) ReassignVehicleOwner(_ context.Context, vehicleID uint, customerID uint) error {
	f.reassignCalls++
	for _, v := range f.vehicles {
		if v.ID == vehicleID {
			v.CustomerID = customerID
		}
	}
	return nil
}

func (f *fakeRepo) GetOrderForBranch(_ context.Context, orderID uint, branchID uint) (*models.Order, error) {
	for _, o := range f.orders {
		if o.ID == orderID && o.BranchID == branchID {
			copied := *o
			for _, c := range f.customers {
				if c.ID == o.CustomerID {
					copied.Customer = *c
				}
			}
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) CreateOrder(_ context.Context, order *models.Order) error {
	order.ID = f.id()
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeRepo) RelinkOrderCustomer(_ context.Context, orderID uint, customerID uint) error {
	f.relinkCalls++
	for _, o := range f.orders {
		if o.ID == orderID {
			o.CustomerID = customerID
		}
	}
	return nil
}

func (f *fakeRepo) RecordLinkEvent(_ context.Context, event *models.CustomerLinkEvent) error {
	event.ID = f.id()
	f.events = append(f.events, event)
	return nil
}

func (f *fakeRepo) ListStartedOrdersForPlate(_ context.Context, branchID uint, plate string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.BranchID != branchID || o.Status != "created" || o.VehicleID == nil {
			continue
		}
		for _, v := range f.vehicles {
			if v.ID == *o.VehicleID && v.Plate == plate {
				out = append(out, *o)
			}
		}
	}
	return out, nil
}
