// Package csv loads the engine's five input tables (item master, BOM,
// inventory, open purchases, sales orders) from CSV files: one Load*
// method per table, header validation up front, one parse helper per
// row.
package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kestrelworks/mrpplan/internal/domain/entities"
)

const dateLayout = "2006-01-02"

// Loader reads the engine's CSV input tables from disk.
type Loader struct{}

// NewLoader creates a new CSV loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadItemMaster loads item_master.csv: index,no,purchase_output,lead_time_days
func (l *Loader) LoadItemMaster(filename string) ([]*entities.Item, error) {
	records, err := readCSV(filename)
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"index", "no", "purchase_output", "lead_time_days"}
	if len(records) < 1 {
		return nil, &entities.InputShapeError{Reason: "item_master.csv is empty"}
	}
	if !validateHeader(records[0], expectedHeader) {
		return nil, &entities.InputShapeError{
			Reason: fmt.Sprintf("item_master.csv header mismatch: expected %v, got %v", expectedHeader, records[0]),
		}
	}
	if len(records) < 2 {
		return nil, &entities.InputShapeError{Reason: "item_master.csv must have at least one data row"}
	}

	var items []*entities.Item
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("item_master.csv row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}
		item, err := parseItem(record)
		if err != nil {
			return nil, fmt.Errorf("item_master.csv row %d: %w", i+2, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// LoadBOM loads bom.csv: parent_index,child_index,total
func (l *Loader) LoadBOM(filename string) ([]entities.BOMEdge, error) {
	records, err := readCSV(filename)
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"parent_index", "child_index", "total"}
	if len(records) < 1 || !validateHeader(records[0], expectedHeader) {
		return nil, &entities.InputShapeError{Reason: fmt.Sprintf("bom.csv header mismatch: expected %v", expectedHeader)}
	}

	var edges []entities.BOMEdge
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("bom.csv row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}
		parentID, err := parseItemID(record[0])
		if err != nil {
			return nil, fmt.Errorf("bom.csv row %d: invalid parent_index: %w", i+2, err)
		}
		childID, err := parseItemID(record[1])
		if err != nil {
			return nil, fmt.Errorf("bom.csv row %d: invalid child_index: %w", i+2, err)
		}
		qty, err := parseDecimal(record[2])
		if err != nil {
			return nil, fmt.Errorf("bom.csv row %d: invalid total: %w", i+2, err)
		}
		edges = append(edges, entities.BOMEdge{ParentID: parentID, ChildID: childID, QtyPer: qty})
	}
	return edges, nil
}

// LoadInventory loads inventory.csv: index,total_quantity
func (l *Loader) LoadInventory(filename string) ([]entities.InventorySnapshot, error) {
	records, err := readCSV(filename)
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"index", "total_quantity"}
	if len(records) < 1 || !validateHeader(records[0], expectedHeader) {
		return nil, &entities.InputShapeError{Reason: fmt.Sprintf("inventory.csv header mismatch: expected %v", expectedHeader)}
	}

	var snapshots []entities.InventorySnapshot
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("inventory.csv row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}
		itemID, err := parseItemID(record[0])
		if err != nil {
			return nil, fmt.Errorf("inventory.csv row %d: invalid index: %w", i+2, err)
		}
		qty, err := parseDecimal(record[1])
		if err != nil {
			return nil, fmt.Errorf("inventory.csv row %d: invalid total_quantity: %w", i+2, err)
		}
		snapshots = append(snapshots, entities.InventorySnapshot{ItemID: itemID, OnHandQty: qty})
	}
	return snapshots, nil
}

// LoadPurchases loads purchases.csv: index,expected_receipt_date,qty,document_no
func (l *Loader) LoadPurchases(filename string) ([]entities.OpenPurchase, error) {
	records, err := readCSV(filename)
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"index", "expected_receipt_date", "qty", "document_no"}
	if len(records) < 1 || !validateHeader(records[0], expectedHeader) {
		return nil, &entities.InputShapeError{Reason: fmt.Sprintf("purchases.csv header mismatch: expected %v", expectedHeader)}
	}

	var purchases []entities.OpenPurchase
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("purchases.csv row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}
		itemID, err := parseItemID(record[0])
		if err != nil {
			return nil, fmt.Errorf("purchases.csv row %d: invalid index: %w", i+2, err)
		}
		receiptDate, err := time.Parse(dateLayout, record[1])
		if err != nil {
			return nil, fmt.Errorf("purchases.csv row %d: invalid expected_receipt_date: %w", i+2, err)
		}
		qty, err := parseDecimal(record[2])
		if err != nil {
			return nil, fmt.Errorf("purchases.csv row %d: invalid qty: %w", i+2, err)
		}
		purchases = append(purchases, entities.OpenPurchase{
			ItemID:              itemID,
			ExpectedReceiptDate: entities.Truncate(receiptDate),
			Qty:                 qty,
			DocumentNo_:         record[3],
		})
	}
	return purchases, nil
}

// LoadSalesOrders loads sales_orders.csv: index,no,customer,document_no,date,qty
func (l *Loader) LoadSalesOrders(filename string) ([]entities.SalesOrderLine, error) {
	records, err := readCSV(filename)
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"index", "no", "customer", "document_no", "date", "qty"}
	if len(records) < 1 || !validateHeader(records[0], expectedHeader) {
		return nil, &entities.InputShapeError{Reason: fmt.Sprintf("sales_orders.csv header mismatch: expected %v", expectedHeader)}
	}

	var lines []entities.SalesOrderLine
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("sales_orders.csv row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}
		itemID, err := parseItemID(record[0])
		if err != nil {
			return nil, fmt.Errorf("sales_orders.csv row %d: invalid index: %w", i+2, err)
		}
		date, err := time.Parse(dateLayout, record[4])
		if err != nil {
			return nil, fmt.Errorf("sales_orders.csv row %d: invalid date: %w", i+2, err)
		}
		qty, err := parseDecimal(record[5])
		if err != nil {
			return nil, fmt.Errorf("sales_orders.csv row %d: invalid qty: %w", i+2, err)
		}
		lines = append(lines, entities.SalesOrderLine{
			ItemID:      itemID,
			No_:         record[1],
			Customer:    record[2],
			DocumentNo_: record[3],
			Date:        entities.Truncate(date),
			Qty:         qty,
		})
	}
	return lines, nil
}

func readCSV(filename string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return records, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}
	return true
}

func parseItemID(s string) (entities.ItemID, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	return entities.ItemID(v), nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

func parseItem(record []string) (*entities.Item, error) {
	itemID, err := parseItemID(record[0])
	if err != nil {
		return nil, fmt.Errorf("invalid index: %w", err)
	}
	policy, err := entities.ParsePolicy(strings.TrimSpace(record[2]))
	if err != nil {
		return nil, err
	}
	leadTime, err := strconv.Atoi(strings.TrimSpace(record[3]))
	if err != nil {
		return nil, fmt.Errorf("invalid lead_time_days: %s", record[3])
	}
	return &entities.Item{
		ID:           itemID,
		No_:          record[1],
		Policy:       policy,
		LeadTimeDays: leadTime,
	}, nil
}
