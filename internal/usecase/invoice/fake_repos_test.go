package invoice

import (
	"context"

	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
)

// fakeStore holds customers, vehicles, orders and invoices in memory
// and implements both the linkage and the invoicing repositories.
type fakeStore struct {
	customers []*models.Customer
	vehicles  []*models.Vehicle
	orders    []*models.Order
	events    []*models.CustomerLinkEvent
	invoices  []*models.Invoice
	items     []*models.InvoiceLineItem

	nextID uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1}
}

func (f *fakeStore) id() uint {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeStore) addCustomer(c models.Customer) *models.Customer {
	c.ID = f.id()
	stored := c
	f.customers = append(f.customers, &stored)
	return &stored
}

func (f *fakeStore) addVehicle(v models.Vehicle) *models.Vehicle {
	v.ID = f.id()
	stored := v
	f.vehicles = append(f.vehicles, &stored)
	return &stored
}

func (f *fakeStore) addOrder(o models.Order) *models.Order {
	o.ID = f.id()
	stored := o
	f.orders = append(f.orders, &stored)
	return &stored
}

func (f *fakeStore) addInvoice(i models.Invoice) *models.Invoice {
	i.ID = f.id()
	stored := i
	f.invoices = append(f.invoices, &stored)
	return &stored
}

// --------------------------------------------------
// linkage.Repository
// --------------------------------------------------

func (f *fakeStore) FindOrganizationByTaxNumber(_ context.Context, branchID uint, taxNumber string) (*models.Customer, error) {
	for _, c := range f.customers {
		if c.BranchID == branchID &&
			c.CustomerType == models.CustomerTypeOrganization &&
			c.TaxNumberNormalized == taxNumber {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindRealCustomerByPhone(_ context.Context, branchID uint, phone string) (*models.Customer, error) {
	for _, c := range f.customers {
		if c.BranchID == branchID && !c.IsTemporary && c.PhoneNormalized == phone {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindRealCustomerByName(_ context.Context, branchID uint, name string) (*models.Customer, error) {
	for _, c := range f.customers {
		if c.BranchID == branchID && !c.IsTemporary && c.NameNormalized == name {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetCustomerByID(_ context.Context, branchID uint, id uint) (*models.Customer, error) {
	for _, c := range f.customers {
		if c.BranchID == branchID && c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateCustomer(_ context.Context, customer *models.Customer) error {
	customer.ID = f.id()
	f.customers = append(f.customers, customer)
	return nil
}

func (f *fakeStore) FindVehicleByPlate(_ context.Context, branchID uint, plate string) (*models.Vehicle, error) {
	for _, v := range f.vehicles {
		if v.BranchID == branchID && v.Plate == plate {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateVehicle(_ context.Context, vehicle *models.Vehicle) error {
	vehicle.ID = f.id()
	f.vehicles = append(f.vehicles, vehicle)
	return nil
}

func (f *fakeStore) ReassignVehicleOwner(_ context.Context, vehicleID uint, customerID uint) error {
	for _, v := range f.vehicles {
		if v.ID == vehicleID {
			v.CustomerID = customerID
		}
	}
	return nil
}

func (f *fakeStore) GetOrderForBranch(_ context.Context, orderID uint, branchID uint) (*models.Order, error) {
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

func (f *fakeStore) CreateOrder(_ context.Context, order *models.Order) error {
	order.ID = f.id()
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeStore) RelinkOrderCustomer(_ context.Context, orderID uint, customerID uint) error {
	for _, o := range f.orders {
		if o.ID == orderID {
			o.CustomerID = customerID
		}
	}
	return nil
}

func (f *fakeStore) RecordLinkEvent(_ context.Context, event *models.CustomerLinkEvent) error {
	event.ID = f.id()
	f.events = append(f.events, event)
	return nil
}

func (f *fakeStore) ListStartedOrdersForPlate(_ context.Context, branchID uint, plate string) ([]models.Order, error) {
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

// --------------------------------------------------
// invoicing.Repository
// --------------------------------------------------

func (f *fakeStore) CreateInvoice(_ context.Context, invoice *models.Invoice) error {
	invoice.ID = f.id()
	f.invoices = append(f.invoices, invoice)
	for i := range invoice.LineItems {
		invoice.LineItems[i].ID = f.id()
		invoice.LineItems[i].InvoiceID = invoice.ID
		item := invoice.LineItems[i]
		f.items = append(f.items, &item)
	}
	return nil
}

func (f *fakeStore) GetForBranch(_ context.Context, invoiceID uint, branchID uint) (*models.Invoice, error) {
	for _, inv := range f.invoices {
		if inv.ID == invoiceID && inv.BranchID == branchID {
			copied := *inv
			copied.LineItems = nil
			for _, item := range f.items {
				if item.InvoiceID == inv.ID {
					copied.LineItems = append(copied.LineItems, *item)
				}
			}
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Save(_ context.Context, invoice *models.Invoice) error {
	for i, inv := range f.invoices {
		if inv.ID == invoice.ID {
			copied := *invoice
			f.invoices[i] = &copied
		}
	}
	return nil
}

func (f *fakeStore) ListRecent(_ context.Context, branchID uint, limit int) ([]models.Invoice, error) {
	var out []models.Invoice
	for i := len(f.invoices) - 1; i >= 0; i-- {
		if f.invoices[i].BranchID == branchID {
			out = append(out, *f.invoices[i])
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeStore) AddLineItem(_ context.Context, item *models.InvoiceLineItem) error {
	item.ID = f.id()
	f.items = append(f.items, item)
	return nil
}

func (f *fakeStore) DeleteLineItem(_ context.Context, invoiceID uint, itemID uint) error {
	kept := f.items[:0]
	for _, item := range f.items {
		if !(item.ID == itemID && item.InvoiceID == invoiceID) {
			kept = append(kept, item)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeStore) ListLineItems(_ context.Context, invoiceID uint) ([]models.InvoiceLineItem, error) {
	var out []models.InvoiceLineItem
	for _, item := range f.items {
		if item.InvoiceID == invoiceID {
			out = append(out, *item)
		}
	}
	return out, nil
}
