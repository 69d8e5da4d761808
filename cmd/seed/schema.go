// cmd/seed/schema.go
package main

import (
	"github.com/urfave/cli/v2"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS app_inventory_items (
	id             BIGSERIAL PRIMARY KEY,
	name           TEXT NOT NULL,
	sku            TEXT NOT NULL UNIQUE,
	current_stock  INTEGER NOT NULL DEFAULT 0,
	reorder_point  INTEGER NOT NULL DEFAULT 0,
	safety_stock   INTEGER NOT NULL DEFAULT 0,
	unit_cost      DOUBLE PRECISION NOT NULL DEFAULT 0,
	lead_time_days INTEGER NOT NULL DEFAULT 0,
	category       TEXT NOT NULL DEFAULT '',
	supplier       TEXT NOT NULL DEFAULT '',
	last_updated   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS app_demand_history (
	id       BIGSERIAL PRIMARY KEY,
	item_id  BIGINT NOT NULL REFERENCES app_inventory_items(id) ON DELETE CASCADE,
	date     DATE NOT NULL,
	quantity INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_demand_history_item_date
	ON app_demand_history (item_id, date);

CREATE TABLE IF NOT EXISTS app_orders (
	id                     BIGSERIAL PRIMARY KEY,
	item_id                BIGINT NOT NULL REFERENCES app_inventory_items(id) ON DELETE CASCADE,
	quantity               INTEGER NOT NULL,
	status                 TEXT NOT NULL DEFAULT 'pending',
	order_date             TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	expected_delivery_date TIMESTAMPTZ,
	cost                   DOUBLE PRECISION NOT NULL DEFAULT 0
);
`

func runSchema(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(c.Context, schemaDDL); err != nil {
		return err
	}

	logSuccess("schema created")
	return nil
}
