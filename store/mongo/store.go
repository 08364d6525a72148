// Package mongo provides a MongoDB-backed Store via Grove ORM.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/xraph/grove"
	"github.com/xraph/grove/drivers/mongodriver"

	poolbook "github.com/xraph/poolbook"
	"github.com/xraph/poolbook/id"
	"github.com/xraph/poolbook/pool"
	pbstore "github.com/xraph/poolbook/store"
	"github.com/xraph/poolbook/subscription"
)

// Collection name constants.
const (
	colPools         = "poolbook_pools"
	colSubscriptions = "poolbook_subscriptions"
	colPoolCount     = "poolbook_pool_count"
)

// compile-time interface check
var _ pbstore.Store = (*Store)(nil)

// Store implements store.Store using MongoDB via Grove ORM.
type Store struct {
	db  *grove.DB
	mdb *mongodriver.MongoDB
}

// New creates a new MongoDB store backed by Grove ORM.
func New(db *grove.DB) *Store {
	return &Store{
		db:  db,
		mdb: mongodriver.Unwrap(db),
	}
}

// DB returns the underlying grove database for direct access.
func (s *Store) DB() *grove.DB { return s.db }

// Migrate creates indexes for all poolbook collections.
func (s *Store) Migrate(ctx context.Context) error {
	indexes := migrationIndexes()

	for col, models := range indexes {
		if len(models) == 0 {
			continue
		}
		_, err := s.mdb.Collection(col).Indexes().CreateMany(ctx, models)
		if err != nil {
			return fmt.Errorf("poolbook/mongo: migrate %s indexes: %w", col, err)
		}
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
	_, err := s.mdb.NewInsert(m).Exec(ctx)
	if err != nil {
		return fmt.Errorf("poolbook/mongo: create pool: %w", err)
	}
	return nil
}

func (s *Store) GetPool(ctx context.Context, poolID uint64) (*pool.Pool, error) {
	var m poolModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"_id": poolID}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, poolbook.ErrPoolNotFound
		}
		return nil, fmt.Errorf("poolbook/mongo: get pool: %w", err)
	}
	return fromPoolModel(&m)
}

func (s *Store) UpdatePool(ctx context.Context, p *pool.Pool) error {
	m := toPoolModel(p)
	m.UpdatedAt = now()

	res, err := s.mdb.NewUpdate(m).
		Filter(bson.M{"_id": m.ID}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("poolbook/mongo: update pool: %w", err)
	}
	if res.MatchedCount() == 0 {
		return poolbook.ErrPoolNotFound
	}
	return nil
}

func (s *Store) ListPools(ctx context.Context, opts pool.ListOpts) ([]*pool.Pool, error) {
	var models []poolModel

	q := s.mdb.NewFind(&models).
		Filter(bson.M{}).
		Sort(bson.D{{Key: "_id", Value: 1}})

	if opts.Limit > 0 {
		q = q.Limit(int64(opts.Limit))
	}
	if opts.Offset > 0 {
		q = q.Skip(int64(opts.Offset))
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("poolbook/mongo: list pools: %w", err)
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
	var m poolCountModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"_id": 1}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("poolbook/mongo: pool count: %w", err)
	}
	return m.Count, nil
}

func (s *Store) SetPoolCount(ctx context.Context, count uint64) error {
	_, err := s.mdb.NewUpdate((*poolCountModel)(nil)).
		Filter(bson.M{"_id": 1}).
		SetUpdate(bson.M{"$set": bson.M{
			"_id":   1,
			"count": count,
		}}).
		Upsert().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("poolbook/mongo: set pool count: %w", err)
	}
	return nil
}

// ==================== Subscription Store ====================

func (s *Store) CreateSubscription(ctx context.Context, sub *subscription.Subscription) error {
	m := toSubscriptionModel(sub)
	_, err := s.mdb.NewInsert(m).Exec(ctx)
	if err != nil {
		return fmt.Errorf("poolbook/mongo: create subscription: %w", err)
	}
	return nil
}

func (s *Store) GetSubscription(ctx context.Context, poolID uint64, subscriber id.AccountID) (*subscription.Subscription, error) {
	var m subscriptionModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"_id": subKey(poolID, subscriber.String())}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, poolbook.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("poolbook/mongo: get subscription: %w", err)
	}
	return fromSubscriptionModel(&m)
}

func (s *Store) UpdateSubscription(ctx context.Context, sub *subscription.Subscription) error {
	m := toSubscriptionModel(sub)
	m.UpdatedAt = now()

	res, err := s.mdb.NewUpdate(m).
		Filter(bson.M{"_id": m.ID}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("poolbook/mongo: update subscription: %w", err)
	}
	if res.MatchedCount() == 0 {
		return poolbook.ErrSubscriptionNotFound
	}
	return nil
}

func (s *Store) ListSubscriptions(ctx context.Context, poolID uint64, opts subscription.ListOpts) ([]*subscription.Subscription, error) {
	var models []subscriptionModel

	q := s.mdb.NewFind(&models).
		Filter(bson.M{"pool_id": poolID}).
		Sort(bson.D{{Key: "subscriber", Value: 1}})

	if opts.Limit > 0 {
		q = q.Limit(int64(opts.Limit))
	}
	if opts.Offset > 0 {
		q = q.Skip(int64(opts.Offset))
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("poolbook/mongo: list subscriptions: %w", err)
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

// isNoDocuments checks if an error wraps mongo.ErrNoDocuments.
func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// migrationIndexes returns the index definitions for all poolbook collections.
func migrationIndexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		colPools: {
			{Keys: bson.D{{Key: "asset", Value: 1}}},
		},
		colSubscriptions: {
			{
				Keys:    bson.D{{Key: "pool_id", Value: 1}, {Key: "subscriber", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "subscriber", Value: 1}}},
		},
		colPoolCount: {},
	}
}
