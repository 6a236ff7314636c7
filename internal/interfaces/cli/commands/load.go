package commands

import (
	"fmt"
	"path/filepath"

	"github.com/kestrelworks/mrpplan/internal/application/dto"
	"github.com/kestrelworks/mrpplan/internal/infrastructure/repositories/csv"
)

// scenarioFiles enumerates the five fixed-name input CSV tables a
// scenario directory provides: one file per table.
type scenarioFiles struct {
	ItemMaster  string
	BOM         string
	Inventory   string
	Purchases   string
	SalesOrders string
}

func resolveScenarioFiles(dir string) scenarioFiles {
	return scenarioFiles{
		ItemMaster:  filepath.Join(dir, "item_master.csv"),
		BOM:         filepath.Join(dir, "bom.csv"),
		Inventory:   filepath.Join(dir, "inventory.csv"),
		Purchases:   filepath.Join(dir, "purchases.csv"),
		SalesOrders: filepath.Join(dir, "sales_orders.csv"),
	}
}

// loadScenario reads every CSV input table for a scenario directory
// into a dto.PlanRequest, leaving CustomerFilter and AsOfDate for the
// caller to fill in.
func loadScenario(dir string) (*dto.PlanRequest, error) {
	files := resolveScenarioFiles(dir)
	loader := csv.NewLoader()

	items, err := loader.LoadItemMaster(files.ItemMaster)
	if err != nil {
		return nil, fmt.Errorf("loading item master: %w", err)
	}
	bomEdges, err := loader.LoadBOM(files.BOM)
	if err != nil {
		return nil, fmt.Errorf("loading BOM: %w", err)
	}
	inventory, err := loader.LoadInventory(files.Inventory)
	if err != nil {
		return nil, fmt.Errorf("loading inventory: %w", err)
	}
	purchases, err := loader.LoadPurchases(files.Purchases)
	if err != nil {
		return nil, fmt.Errorf("loading purchases: %w", err)
	}
	salesOrders, err := loader.LoadSalesOrders(files.SalesOrders)
	if err != nil {
		return nil, fmt.Errorf("loading sales orders: %w", err)
	}

	return &dto.PlanRequest{
		Items:       items,
		BOMEdges:    bomEdges,
		SalesOrders: salesOrders,
		Purchases:   purchases,
		Inventory:   inventory,
	}, nil
}
