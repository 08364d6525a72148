package postgres

import (
	"context"

	"github.com/xraph/grove/migrate"
)

// Migrations is the grove migration group for the Poolbook store.
var Migrations = migrate.NewGroup("poolbook")

func init() {
	Migrations.MustRegister(
		&migrate.Migration{
			Name:    "create_poolbook_pools",
			Version: "20240101000001",
			Up: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
CREATE TABLE IF NOT EXISTS poolbook_pools (
    id               BIGINT PRIMARY KEY,
    name             TEXT NOT NULL DEFAULT '',
    asset            TEXT NOT NULL DEFAULT '',
    total_balance    NUMERIC(39,0) NOT NULL DEFAULT 0,
    subscriber_count INT NOT NULL DEFAULT 0,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_poolbook_pools_asset ON poolbook_pools (asset);
`)
				return err
			},
			Down: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `DROP TABLE IF EXISTS poolbook_pools`)
				return err
			},
		},
		&migrate.Migration{
			Name:    "create_poolbook_subscriptions",
			Version: "20240101000002",
			Up: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
CREATE TABLE IF NOT EXISTS poolbook_subscriptions (
    pool_id      BIGINT NOT NULL,
    subscriber   TEXT NOT NULL,
    amount       NUMERIC(39,0) NOT NULL DEFAULT 0,
    period       TEXT NOT NULL DEFAULT '',
    last_payment TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (pool_id, subscriber)
);

CREATE INDEX IF NOT EXISTS idx_poolbook_subs_subscriber ON poolbook_subscriptions (subscriber);
`)
				return err
			},
			Down: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `DROP TABLE IF EXISTS poolbook_subscriptions`)
				return err
			},
		},
		&migrate.Migration{
			Name:    "create_poolbook_pool_count",
			Version: "20240101000003",
			Up: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
CREATE TABLE IF NOT EXISTS poolbook_pool_count (
    id    INT PRIMARY KEY CHECK (id = 1),
    count BIGINT NOT NULL DEFAULT 0
);
`)
				return err
			},
			Down: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `DROP TABLE IF EXISTS poolbook_pool_count`)
				return err
			},
		},
	)
}
