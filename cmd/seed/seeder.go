// cmd/seed/seeder.go
package main

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
)

func logSuccess(msg string) {
	log.Printf("seed: %s", msg)
}

// readCSV opens path and returns the header column map plus a row iterator.
func readCSV(path string) (*csv.Reader, map[string]int, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		f.Close()
		return nil, nil, nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	colMap := make(map[string]int, len(header))
	for i, col := range header {
		colMap[strings.ToLower(strings.TrimSpace(col))] = i
	}

	return reader, colMap, f, nil
}

func requireColumns(colMap map[string]int, cols ...string) error {
	for _, col := range cols {
		if _, ok := colMap[col]; !ok {
			return fmt.Errorf("missing required column: %s", col)
		}
	}
	return nil
}

// runItemSeeder upserts the item catalog. Expected columns:
// name,sku,current_stock,reorder_point,safety_stock,unit_cost,lead_time_days,category,supplier
func runItemSeeder(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	reader, colMap, f, err := readCSV(c.String("file"))
	if err != nil {
		return err
	}
	defer f.Close()

	if err := requireColumns(colMap, "name", "sku"); err != nil {
		return err
	}

	getValue := func(record []string, col string) string {
		if idx, ok := colMap[col]; ok && idx < len(record) {
			return strings.TrimSpace(record[idx])
		}
		return ""
	}
	getInt := func(record []string, col string) int {
		f, _ := strconv.ParseFloat(getValue(record, col), 64)
		return int(f)
	}
	getFloat := func(record []string, col string) float64 {
		f, _ := strconv.ParseFloat(getValue(record, col), 64)
		return f
	}

	query := `
		INSERT INTO app_inventory_items (
			name, sku, current_stock, reorder_point, safety_stock,
			unit_cost, lead_time_days, category, supplier, last_updated
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (sku) DO UPDATE SET
			name = EXCLUDED.name,
			current_stock = EXCLUDED.current_stock,
			reorder_point = EXCLUDED.reorder_point,
			safety_stock = EXCLUDED.safety_stock,
			unit_cost = EXCLUDED.unit_cost,
			lead_time_days = EXCLUDED.lead_time_days,
			category = EXCLUDED.category,
			supplier = EXCLUDED.supplier,
			last_updated = NOW()
	`

	count := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read CSV record: %w", err)
		}

		_, err = db.ExecContext(c.Context, query,
			getValue(record, "name"), getValue(record, "sku"),
			getInt(record, "current_stock"), getInt(record, "reorder_point"),
			getInt(record, "safety_stock"), getFloat(record, "unit_cost"),
			getInt(record, "lead_time_days"), getValue(record, "category"),
			getValue(record, "supplier"),
		)
		if err != nil {
			return fmt.Errorf("failed to upsert item %s: %w", getValue(record, "sku"), err)
		}
		count++
	}

	logSuccess(fmt.Sprintf("%d items seeded", count))
	return nil
}

// runDemandSeeder appends demand history. Expected columns: sku,date,quantity
// with dates as YYYY-MM-DD. SKUs must already exist in the catalog.
func runDemandSeeder(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	reader, colMap, f, err := readCSV(c.String("file"))
	if err != nil {
		return err
	}
	defer f.Close()

	if err := requireColumns(colMap, "sku", "date", "quantity"); err != nil {
		return err
	}

	itemIDs, err := loadItemIDs(c, db)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(c.Context, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(c.Context,
		`INSERT INTO app_demand_history (item_id, date, quantity) VALUES ($1, $2, $3)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	count := 0
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read CSV record: %w", err)
		}

		sku := strings.TrimSpace(record[colMap["sku"]])
		itemID, ok := itemIDs[sku]
		if !ok {
			return fmt.Errorf("line %d: unknown sku %q", line, sku)
		}

		date, err := time.Parse("2006-01-02", strings.TrimSpace(record[colMap["date"]]))
		if err != nil {
			return fmt.Errorf("line %d: invalid date: %w", line, err)
		}

		quantity, err := strconv.Atoi(strings.TrimSpace(record[colMap["quantity"]]))
		if err != nil {
			return fmt.Errorf("line %d: invalid quantity: %w", line, err)
		}

		if _, err := stmt.ExecContext(c.Context, itemID, date, quantity); err != nil {
			return fmt.Errorf("line %d: failed to insert demand record: %w", line, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	logSuccess(fmt.Sprintf("%d demand records seeded", count))
	return nil
}

func loadItemIDs(c *cli.Context, db *sql.DB) (map[string]int64, error) {
	rows, err := db.QueryContext(c.Context, `SELECT id, sku FROM app_inventory_items`)
	if err != nil {
		return nil, fmt.Errorf("failed to load item catalog: %w", err)
	}
	defer rows.Close()

	itemIDs := make(map[string]int64)
	for rows.Next() {
		var (
			id  int64
			sku string
		)
		if err := rows.Scan(&id, &sku); err != nil {
			return nil, err
		}
		itemIDs[sku] = id
	}
	return itemIDs, rows.Err()
}
