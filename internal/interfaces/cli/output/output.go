// Package output renders a completed planning run to text, JSON, or
// CSV: one function per format, writing to stdout or, when an output
// directory is configured, to files there (CSV: one file per table;
// JSON: a single plan.json). Text output always goes to stdout.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kestrelworks/mrpplan/internal/application/dto"
)

// Config controls where and how a PlanResult is rendered.
type Config struct {
	Format    string // "text", "json", or "csv"
	OutputDir string // if set, json and csv write files here instead of stdout; text ignores it
	Verbose   bool
}

// Render writes result in the configured format.
func Render(result *dto.PlanResult, cfg Config) error {
	switch cfg.Format {
	case "text":
		return renderText(result, cfg)
	case "json":
		return renderJSON(result, cfg)
	case "csv":
		return renderCSV(result, cfg)
	default:
		return fmt.Errorf("unsupported output format: %s", cfg.Format)
	}
}

func renderText(result *dto.PlanResult, cfg Config) error {
	fmt.Printf("MRP run %s\n", result.RunID)
	fmt.Printf("================================================\n\n")

	fmt.Printf("BOM hierarchy rows: %d (%d cycles excluded)\n", len(result.Hierarchy), len(result.Cycles))
	for _, c := range result.Cycles {
		fmt.Printf("  cycle excluded: %d -> %d\n", c.ParentID, c.ChildID)
	}
	fmt.Println()

	fmt.Printf("Transactions: %d rows\n", len(result.Transactions))
	if cfg.Verbose {
		for _, t := range result.Transactions {
			fmt.Printf("  [%d] %-12s %s  gross=%s sched=%s net=%s recv=%s rel=%s start=%s end=%s\n",
				t.OrderSeq, t.ItemNo_, t.Date.Format("2006-01-02"),
				t.GrossRequirements, t.ScheduledReceipts, t.NetRequirements,
				t.PlannedOrderReceipts, t.PlannedOrderReleases,
				t.StartingInventory, t.EndingInventory)
		}
	}
	fmt.Println()

	fmt.Printf("Ending inventory:\n")
	for _, inv := range result.InventorySummary {
		fmt.Printf("  %-12s %s\n", inv.ItemNo_, inv.EndingInventory)
	}
	fmt.Println()

	fmt.Printf("Expedites: %d\n", len(result.Expedites))
	for _, e := range result.Expedites {
		fmt.Printf("  %-12s required=%s qty=%s\n", e.ItemNo_, e.RequiredDate.Format("2006-01-02"), e.ExpediteQty)
	}
	fmt.Println()

	fmt.Printf("Planned purchases: %d\n", len(result.Purchases))
	for _, p := range result.Purchases {
		fmt.Printf("  %-12s place=%s receive=%s qty=%s\n", p.ItemNo_, p.PlacementDate.Format("2006-01-02"), p.ExpectedReceiptDate.Format("2006-01-02"), p.Qty)
	}

	if len(result.Diagnostics) > 0 {
		fmt.Printf("\nDiagnostics: %d\n", len(result.Diagnostics))
		for _, d := range result.Diagnostics {
			fmt.Printf("  [%s] %s\n", d.Kind, d.Message)
		}
	}

	return nil
}

func renderJSON(result *dto.PlanResult, cfg Config) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling plan result: %w", err)
	}
	if cfg.OutputDir == "" {
		fmt.Println(string(data))
		return nil
	}
	return writeFile(cfg.OutputDir, "plan.json", data)
}

func renderCSV(result *dto.PlanResult, cfg Config) error {
	transactionRows := [][]string{
		{"Transaction Type", "Order", "Item", "Date", "Gross Requirements", "Scheduled Receipts", "Net Requirements", "Planned Order Receipts", "Planned Order Releases", "Starting Inventory", "Ending Inventory"},
	}
	for _, t := range result.Transactions {
		transactionRows = append(transactionRows, []string{
			t.TransactionType, fmt.Sprint(t.OrderSeq), t.ItemNo_, t.Date.Format("2006-01-02"),
			t.GrossRequirements.String(), t.ScheduledReceipts.String(), t.NetRequirements.String(),
			t.PlannedOrderReceipts.String(), t.PlannedOrderReleases.String(),
			t.StartingInventory.String(), t.EndingInventory.String(),
		})
	}

	hierarchyRows := [][]string{
		{"Order", "Production Index", "Level", "Parent Index", "Child Index", "QTY Per", "Total Quantity"},
	}
	for _, h := range result.Hierarchy {
		hierarchyRows = append(hierarchyRows, []string{
			fmt.Sprint(h.OrderSeq), fmt.Sprint(h.TopItemID), fmt.Sprint(h.Level),
			fmt.Sprint(h.ParentID), fmt.Sprint(h.ChildID), h.QtyPer.String(), h.CumulativeQty.String(),
		})
	}

	inventoryRows := [][]string{{"No_", "Ending Inventory"}}
	for _, inv := range result.InventorySummary {
		inventoryRows = append(inventoryRows, []string{inv.ItemNo_, inv.EndingInventory.String()})
	}

	expediteRows := [][]string{{"Item", "Required Date", "Expedite Quantity"}}
	for _, e := range result.Expedites {
		expediteRows = append(expediteRows, []string{e.ItemNo_, e.RequiredDate.Format("2006-01-02"), e.ExpediteQty.String()})
	}

	purchaseRows := [][]string{{"Item", "Purchase Quantity", "Placement Date", "Expected Receipt Date"}}
	for _, p := range result.Purchases {
		purchaseRows = append(purchaseRows, []string{p.ItemNo_, p.Qty.String(), p.PlacementDate.Format("2006-01-02"), p.ExpectedReceiptDate.Format("2006-01-02")})
	}

	tables := []struct {
		name string
		rows [][]string
	}{
		{"plan.csv", transactionRows},
		{"bom_hierarchy.csv", hierarchyRows},
		{"inventory_out.csv", inventoryRows},
		{"expedites.csv", expediteRows},
		{"purchases_out.csv", purchaseRows},
	}

	if cfg.OutputDir == "" {
		for _, table := range tables {
			fmt.Printf("--- %s ---\n", table.name)
			w := csv.NewWriter(os.Stdout)
			if err := w.WriteAll(table.rows); err != nil {
				return fmt.Errorf("writing %s: %w", table.name, err)
			}
			fmt.Println()
		}
		return nil
	}

	for _, table := range tables {
		if err := writeCSVFile(cfg.OutputDir, table.name, table.rows); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(dir, name string, data []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func writeCSVFile(dir, name string, rows [][]string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
