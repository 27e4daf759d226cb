package postgres

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrations returns the ordered schema migrations. IDs are never renamed once released.
func Migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "202601050001_create_users",
			Migrate: execAll(`CREATE TABLE IF NOT EXISTS users (
				id uuid PRIMARY KEY,
				username varchar(100) NOT NULL,
				password_hash varchar(255) NOT NULL,
				role varchar(20) NOT NULL CHECK (role IN ('Customer', 'Seller', 'Admin', 'SuperAdmin')),
				is_active boolean NOT NULL DEFAULT true,
				level integer NOT NULL DEFAULT 1 CHECK (level >= 1),
				deactivated_at timestamptz,
				deactivated_by uuid,
				created_at timestamptz NOT NULL DEFAULT now(),
				updated_at timestamptz NOT NULL DEFAULT now(),
				version integer NOT NULL DEFAULT 1
			)`,
				`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users (username)`,
			),
			Rollback: execAll(`DROP TABLE IF EXISTS users`),
		},
		{
			ID: "202601050002_create_products",
			Migrate: execAll(`CREATE TABLE IF NOT EXISTS products (
				id uuid PRIMARY KEY,
				title varchar(200) NOT NULL,
				category varchar(100) NOT NULL DEFAULT '',
				brand varchar(100) NOT NULL DEFAULT '',
				price numeric(18,2) NOT NULL CHECK (price >= 0),
				stock integer NOT NULL DEFAULT 0 CHECK (stock >= 0),
				product_image varchar(500) NOT NULL DEFAULT '',
				owner_id uuid NOT NULL REFERENCES users (id),
				is_active boolean NOT NULL DEFAULT true,
				created_at timestamptz NOT NULL DEFAULT now(),
				updated_at timestamptz NOT NULL DEFAULT now()
			)`,
				`CREATE INDEX IF NOT EXISTS idx_products_owner_id ON products (owner_id)`,
			),
			Rollback: execAll(`DROP TABLE IF EXISTS products`),
		},
		{
			ID: "202601050003_create_orders",
			Migrate: execAll(`CREATE TABLE IF NOT EXISTS orders (
				id uuid PRIMARY KEY,
				user_id uuid NOT NULL REFERENCES users (id),
				status varchar(20) NOT NULL CHECK (status IN ('Pending', 'Paid', 'Canceled')),
				total_amount numeric(18,2) NOT NULL,
				paid_at timestamptz,
				payment_reference varchar(100),
				customer_name varchar(200),
				address_line1 varchar(300),
				city varchar(100),
				country varchar(100),
				phone varchar(50),
				created_at timestamptz NOT NULL DEFAULT now(),
				updated_at timestamptz NOT NULL DEFAULT now()
			)`,
				`CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders (user_id)`,
				`CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at DESC)`,
				`CREATE TABLE IF NOT EXISTS order_lines (
				order_id uuid NOT NULL REFERENCES orders (id),
				product_id uuid NOT NULL REFERENCES products (id),
				position integer NOT NULL,
				quantity integer NOT NULL CHECK (quantity > 0),
				unit_price numeric(18,2) NOT NULL,
				PRIMARY KEY (order_id, product_id)
			)`,
				`CREATE INDEX IF NOT EXISTS idx_order_lines_product_id ON order_lines (product_id)`,
			),
			Rollback: execAll(`DROP TABLE IF EXISTS order_lines`, `DROP TABLE IF EXISTS orders`),
		},
		{
			ID: "202601120001_orders_version",
			Migrate: execAll(
				`ALTER TABLE orders ADD COLUMN IF NOT EXISTS version integer NOT NULL DEFAULT 1`,
			),
			Rollback: execAll(`ALTER TABLE orders DROP COLUMN IF EXISTS version`),
		},
		{
			ID: "202601200001_orders_idempotency_key",
			Migrate: execAll(
				`ALTER TABLE orders ADD COLUMN IF NOT EXISTS idempotency_key varchar(100)`,
				`CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_user_idempotency_key
					ON orders (user_id, idempotency_key) WHERE idempotency_key IS NOT NULL`,
			),
			Rollback: execAll(
				`DROP INDEX IF EXISTS idx_orders_user_idempotency_key`,
				`ALTER TABLE orders DROP COLUMN IF EXISTS idempotency_key`,
			),
		},
	}
}

// Migrate applies every pending migration.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, Migrations())
	if err := m.Migrate(); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

// RollbackLast reverts the most recently applied migration.
func RollbackLast(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, Migrations())
	if err := m.RollbackLast(); err != nil {
		return errors.Wrap(err, "failed to roll back last migration")
	}

	return nil
}

func execAll(statements ...string) func(*gorm.DB) error {
	return func(tx *gorm.DB) error {
		for _, stmt := range statements {
			if err := tx.Exec(stmt).Error; err != nil {
				return errors.WithStack(err)
			}
		}

		return nil
	}
}
