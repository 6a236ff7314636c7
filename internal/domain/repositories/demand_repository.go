package repositories

import "github.com/kestrelworks/mrpplan/internal/domain/entities"

// DemandRepository provides access to customer sales order lines.
type DemandRepository interface {
	AllSalesOrders() []entities.SalesOrderLine
	LoadSalesOrders(lines []entities.SalesOrderLine) error
}

// PurchaseRepository provides access to open purchase orders.
type PurchaseRepository interface {
	AllOpenPurchases() []entities.OpenPurchase
	LoadOpenPurchases(purchases []entities.OpenPurchase) error
}
