package database

import (
	"context"
	"fmt"
	"minitienda_server/structs/tables"
)

// EnsureSchema creates the catalog/order tables when they do not exist yet.
// Referential actions encode the delete policies: categories and products
// are protected while referenced (RESTRICT), customers and orders cascade
// into their dependents.
func EnsureSchema(ctx context.Context, db *DB) error {
	if _, err := db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS "pgcrypto"`); err != nil {
		return fmt.Errorf("failed to enable pgcrypto: %w", err)
	}

	if _, err := db.NewCreateTable().
		Model((*tables.Category)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to create categories table: %w", err)
	}

	if _, err := db.NewCreateTable().
		Model((*tables.Product)(nil)).
		IfNotExists().
		ForeignKey(`("category_id") REFERENCES "categories" ("id") ON DELETE RESTRICT`).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to create products table: %w", err)
	}

	if _, err := db.NewCreateTable().
		Model((*tables.Customer)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to create customers table: %w", err)
	}

	if _, err := db.NewCreateTable().
		Model((*tables.Order)(nil)).
		IfNotExists().
		ForeignKey(`("customer_id") REFERENCES "customers" ("id") ON DELETE CASCADE`).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to create orders table: %w", err)
	}

	if _, err := db.NewCreateTable().
		Model((*tables.OrderItem)(nil)).
		IfNotExists().
		ForeignKey(`("order_id") REFERENCES "orders" ("id") ON DELETE CASCADE`).
		ForeignKey(`("product_id") REFERENCES "products" ("id") ON DELETE RESTRICT`).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to create order_items table: %w", err)
	}

	if err := ensureIndexes(ctx, db); err != nil {
		return err
	}

	return ensureConstraints(ctx, db)
}

func ensureIndexes(ctx context.Context, db *DB) error {
	if _, err := db.NewCreateIndex().
		Model((*tables.Product)(nil)).
		Index("products_slug_idx").
		Column("slug").
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to create slug index: %w", err)
	}

	if _, err := db.NewCreateIndex().
		Model((*tables.Product)(nil)).
		Index("products_is_active_idx").
		Column("is_active").
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to create is_active index: %w", err)
	}

	return nil
}

func ensureConstraints(ctx context.Context, db *DB) error {
	// ADD CONSTRAINT has no IF NOT EXISTS, so drop-then-add keeps this idempotent
	statements := []string{
		`ALTER TABLE order_items DROP CONSTRAINT IF EXISTS order_items_quantity_check`,
		`ALTER TABLE order_items ADD CONSTRAINT order_items_quantity_check CHECK (quantity >= 1)`,
		`ALTER TABLE products DROP CONSTRAINT IF EXISTS products_price_check`,
		`ALTER TABLE products ADD CONSTRAINT products_price_check CHECK (price >= 0)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply constraint: %w", err)
		}
	}

	return nil
}
