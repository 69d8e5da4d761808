// internal/repository/postgres/store.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/warelens/backend-go/internal/domain"
	"github.com/warelens/backend-go/internal/repository"
)

// Store is the durable repository.Store backed by Postgres.
type Store struct {
	db *DB
}

func NewStore(db *DB) *Store {
	return &Store{db: db}
}

var _ repository.Store = (*Store)(nil)

func (s *Store) Items(ctx context.Context) ([]domain.InventoryItem, error) {
	query := `
		SELECT id, name, sku, current_stock, reorder_point, safety_stock,
		       unit_cost, lead_time_days, category, supplier, last_updated
		FROM app_inventory_items
		ORDER BY id
	`

	var items []domain.InventoryItem
	if err := sqlx.SelectContext(ctx, s.db, &items, query); err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}

	return items, nil
}

func (s *Store) ItemByID(ctx context.Context, id int64) (domain.InventoryItem, error) {
	query := `
		SELECT id, name, sku, current_stock, reorder_point, safety_stock,
		       unit_cost, lead_time_days, category, supplier, last_updated
		FROM app_inventory_items
		WHERE id = $1
	`

	var item domain.InventoryItem
	if err := sqlx.GetContext(ctx, s.db, &item, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.InventoryItem{}, repository.ErrNotFound
		}
		return domain.InventoryItem{}, fmt.Errorf("failed to get item %d: %w", id, err)
	}

	return item, nil
}

func (s *Store) CreateItem(ctx context.Context, item *domain.InventoryItem) error {
	query := `
		INSERT INTO app_inventory_items (
			name, sku, current_stock, reorder_point, safety_stock,
			unit_cost, lead_time_days, category, supplier, last_updated
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	item.LastUpdated = time.Now()
	err := s.db.QueryRowContext(ctx, query,
		item.Name, item.SKU, item.CurrentStock, item.ReorderPoint, item.SafetyStock,
		item.UnitCost, item.LeadTimeDays, item.Category, item.Supplier, item.LastUpdated,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	return nil
}

func (s *Store) UpdateStock(ctx context.Context, id int64, currentStock int) error {
	query := `
		UPDATE app_inventory_items
		SET current_stock = $2, last_updated = NOW()
		WHERE id = $1
	`

	res, err := s.db.ExecContext(ctx, query, id, currentStock)
	if err != nil {
		return fmt.Errorf("failed to update stock for item %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (s *Store) DemandHistory(ctx context.Context, itemID int64) ([]domain.DemandRecord, error) {
	query := `
		SELECT id, item_id, date, quantity
		FROM app_demand_history
		WHERE item_id = $1
		ORDER BY date
	`

	var records []domain.DemandRecord
	if err := sqlx.SelectContext(ctx, s.db, &records, query, itemID); err != nil {
		return nil, fmt.Errorf("failed to get demand history for item %d: %w", itemID, err)
	}

	return records, nil
}

// AppendDemand inserts demand records in one transaction. History is
// append-only; there is no update path.
func (s *Store) AppendDemand(ctx context.Context, records []domain.DemandRecord) error {
	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		query := `
			INSERT INTO app_demand_history (item_id, date, quantity)
			VALUES ($1, $2, $3)
		`

		stmt, err := tx.PrepareContext(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer stmt.Close()

		for _, rec := range records {
			if _, err := stmt.ExecContext(ctx, rec.ItemID, rec.Date, rec.Quantity); err != nil {
				return fmt.Errorf("failed to insert demand record: %w", err)
			}
		}

		return nil
	})
}

func (s *Store) Orders(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT id, item_id, quantity, status, order_date, expected_delivery_date, cost
		FROM app_orders
		ORDER BY order_date DESC
	`

	var orders []domain.Order
	if err := sqlx.SelectContext(ctx, s.db, &orders, query); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

func (s *Store) OrderByID(ctx context.Context, id int64) (domain.Order, error) {
	query := `
		SELECT id, item_id, quantity, status, order_date, expected_delivery_date, cost
		FROM app_orders
		WHERE id = $1
	`

	var order domain.Order
	if err := sqlx.GetContext(ctx, s.db, &order, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, repository.ErrNotFound
		}
		return domain.Order{}, fmt.Errorf("failed to get order %d: %w", id, err)
	}

	return order, nil
}

func (s *Store) CreateOrder(ctx context.Context, order *domain.Order) error {
	query := `
		INSERT INTO app_orders (item_id, quantity, status, order_date, expected_delivery_date, cost)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		order.ItemID, order.Quantity, order.Status, order.OrderDate,
		order.ExpectedDeliveryDate, order.Cost,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

func (s *Store) UpdateOrder(ctx context.Context, order *domain.Order) error {
	query := `
		UPDATE app_orders
		SET item_id = $2, quantity = $3, status = $4, expected_delivery_date = $5, cost = $6
		WHERE id = $1
	`

	res, err := s.db.ExecContext(ctx, query,
		order.ID, order.ItemID, order.Quantity, order.Status,
		order.ExpectedDeliveryDate, order.Cost,
	)
	if err != nil {
		return fmt.Errorf("failed to update order %d: %w", order.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteOrder(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM app_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (s *Store) HealthCheck(ctx context.Context) error {
	return s.db.HealthCheck(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
