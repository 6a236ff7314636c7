package memory

import (
	"github.com/kestrelworks/mrpplan/internal/domain/entities"
	"github.com/kestrelworks/mrpplan/internal/domain/repositories"
)

// DemandRepository is an in-memory store of sales order lines.
type DemandRepository struct {
	lines []entities.SalesOrderLine
}

// NewDemandRepository creates an empty in-memory demand repository.
func NewDemandRepository() *DemandRepository {
	return &DemandRepository{}
}

var _ repositories.DemandRepository = (*DemandRepository)(nil)

// LoadSalesOrders replaces the repository contents.
func (r *DemandRepository) LoadSalesOrders(lines []entities.SalesOrderLine) error {
	r.lines = lines
	return nil
}

// AllSalesOrders returns every loaded sales order line.
func (r *DemandRepository) AllSalesOrders() []entities.SalesOrderLine {
	return r.lines
}

// PurchaseRepository is an in-memory store of open purchase orders.
type PurchaseRepository struct {
	purchases []entities.OpenPurchase
}

// NewPurchaseRepository creates an empty in-memory purchase repository.
func NewPurchaseRepository() *PurchaseRepository {
	return &PurchaseRepository{}
}

var _ repositories.PurchaseRepository = (*PurchaseRepository)(nil)

// LoadOpenPurchases replaces the repository contents.
func (r *PurchaseRepository) LoadOpenPurchases(purchases []entities.OpenPurchase) error {
	r.purchases = purchases
	return nil
}

// AllOpenPurchases returns every loaded open purchase.
func (r *PurchaseRepository) AllOpenPurchases() []entities.OpenPurchase {
	return r.purchases
}
