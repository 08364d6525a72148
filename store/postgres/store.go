// Package postgres provides a PostgreSQL-backed Store via Grove ORM.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/xraph/grove"
	"github.com/xraph/grove/drivers/pgdriver"
	"github.com/xraph/grove/migrate"

	poolbook "github.com/xraph/poolbook"
	"github.com/xraph/poolbook/id"
	"github.com/xraph/poolbook/pool"
	pbstore "github.com/xraph/poolbook/store"
	"github.com/xraph/poolbook/subscription"
)

// compile-time interface check
var _ pbstore.Store = (*Store)(nil)

// Store implements store.Store using PostgreSQL via Grove ORM.
type Store struct {
	db *grove.DB
	pg *pgdriver.PgDB
}

// New creates a new PostgreSQL store backed by Grove ORM.
func New(db *grove.DB) *Store {
	return &Store{
		db: db,
		pg: pgdriver.Unwrap(db),
	}
}

// DB returns the underlying grove database for direct access.
func (s *Store) DB() *grove.DB { return s.db }

// Migrate creates the required tables and indexes using the grove orchestrator.
func (s *Store) Migrate(ctx context.Context) error {
	executor, err := migrate.NewExecutorFor(s.pg)
	if err != nil {
		return fmt.Errorf("poolbook/postgres: create migration executor: %w", err)
	}
	orch := migrate.NewOrchestrator(executor, Migrations)
	if _, err := orch.Migrate(ctx); err != nil {
		return fmt.Errorf("poolbook/postgres: migration failed: %w", err)
	}
	return nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ==================== Pool Store ====================

func (s *Store) CreatePool(ctx context.Context, p *pool.Pool) error {
	m := toPoolModel(p)
	_, err := s.pg.NewInsert(m).Exec(ctx)
	return err
}

func (s *Store) GetPool(ctx context.Context, poolID uint64) (*pool.Pool, error) {
	m := new(poolModel)
	err := s.pg.NewSelect(m).
		Where("id = $1", poolID).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, poolbook.ErrPoolNotFound
		}
		return nil, err
	}
	return fromPoolModel(m)
}

func (s *Store) UpdatePool(ctx context.Context, p *pool.Pool) error {
	m := toPoolModel(p)
	m.UpdatedAt = now()
	res, err := s.pg.NewUpdate(m).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return poolbook.ErrPoolNotFound
	}
	return nil
}

func (s *Store) ListPools(ctx context.Context, opts pool.ListOpts) ([]*pool.Pool, error) {
	var models []poolModel
	q := s.pg.NewSelect(&models)

	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}
	q = q.OrderExpr("id ASC")

	if err := q.Scan(ctx); err != nil {
		return nil, err
	}

	result := make([]*pool.Pool, len(models))
	for i := range models {
		p, err := fromPoolModel(&models[i])
		if err != nil {
			return nil, err
		}
		result[i] = p
	}
	return result, nil
}

// ==================== Counter Store ====================

func (s *Store) PoolCount(ctx context.Context) (uint64, error) {
	m := new(poolCountModel)
	err := s.pg.NewSelect(m).
		Where("id = $1", 1).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return 0, nil
		}
		return 0, err
	}
	return m.Count, nil
}

func (s *Store) SetPoolCount(ctx context.Context, count uint64) error {
	m := &poolCountModel{ID: 1, Count: count}
	_, err := s.pg.NewInsert(m).
		OnConflict("(id) DO UPDATE").
		Set("count = EXCLUDED.count").
		Exec(ctx)
	return err
}

// ==================== Subscription Store ====================

func (s *Store) CreateSubscription(ctx context.Context, sub *subscription.Subscription) error {
	m := toSubscriptionModel(sub)
	_, err := s.pg.NewInsert(m).Exec(ctx)
	return err
}

func (s *Store) GetSubscription(ctx context.Context, poolID uint64, subscriber id.AccountID) (*subscription.Subscription, error) {
	m := new(subscriptionModel)
	err := s.pg.NewSelect(m).
		Where("pool_id = $1", poolID).
		Where("subscriber = $2", subscriber.String()).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, poolbook.ErrSubscriptionNotFound
		}
		return nil, err
	}
	return fromSubscriptionModel(m)
}

func (s *Store) UpdateSubscription(ctx context.Context, sub *subscription.Subscription) error {
	t := now()
	res, err := s.pg.NewUpdate((*subscriptionModel)(nil)).
		Set("amount = $1", sub.Amount.String()).
		Set("period = $2", string(sub.Period)).
		Set("last_payment = $3", sub.LastPayment).
		Set("updated_at = $4", t).
		Where("pool_id = $5", sub.PoolID).
		Where("subscriber = $6", sub.Subscriber.String()).
		Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return poolbook.ErrSubscriptionNotFound
	}
	return nil
}

func (s *Store) ListSubscriptions(ctx context.Context, poolID uint64, opts subscription.ListOpts) ([]*subscription.Subscription, error) {
	var models []subscriptionModel
	q := s.pg.NewSelect(&models).Where("pool_id = $1", poolID)

	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}
	q = q.OrderExpr("subscriber ASC")

	if err := q.Scan(ctx); err != nil {
		return nil, err
	}

	result := make([]*subscription.Subscription, len(models))
	for i := range models {
		sub, err := fromSubscriptionModel(&models[i])
		if err != nil {
			return nil, err
		}
		result[i] = sub
	}
	return result, nil
}

// ==================== Helpers ====================

// now returns the current UTC time.
func now() time.Time {
	return time.Now().UTC()
}

// isNoRows checks for the standard sql.ErrNoRows sentinel.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
